package websocket

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/entity"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const readTimeout = 2 * time.Second

type testServer struct {
	coordinator *usecase.Coordinator
	url         string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	return newWrappedTestServer(t, func(c *usecase.Coordinator) coordinator { return c })
}

// newWrappedTestServer serves the coordinator returned by wrap, while Stats still reads the real one.
func newWrappedTestServer(t *testing.T, wrap func(*usecase.Coordinator) coordinator) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	coordinator := usecase.NewCoordinator(logger, nil, nil)

	server := httptest.NewServer(New(logger, wrap(coordinator), 16).Routes())
	t.Cleanup(server.Close)

	return &testServer{
		coordinator: coordinator,
		url:         "ws" + strings.TrimPrefix(server.URL, "http"),
	}
}

func (that *testServer) dial(t *testing.T, path string) *websocket.Conn {
	t.Helper()

	conn, resp, err := websocket.DefaultDialer.Dial(that.url+path, nil)
	require.NoError(t, err)
	_ = resp.Body.Close()

	t.Cleanup(func() {
		_ = conn.Close()
	})

	return conn
}

// dialWaiting connects a client and waits until the coordinator has queued it, so arrival order is fixed.
func (that *testServer) dialWaiting(t *testing.T, path string, waiting int) *websocket.Conn {
	t.Helper()

	conn := that.dial(t, path)
	require.Eventually(t, func() bool {
		return that.coordinator.Stats().Waiting == waiting
	}, readTimeout, 10*time.Millisecond)

	return conn
}

func (that *testServer) pair(t *testing.T) (*websocket.Conn, *websocket.Conn) {
	t.Helper()

	first := that.dialWaiting(t, "/ws/1/0", 1)
	second := that.dial(t, "/ws/2/0")

	readOutbound(t, first)
	readOutbound(t, second)

	return first, second
}

func readOutbound(t *testing.T, conn *websocket.Conn) entity.Outbound {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(readTimeout)))

	var msg entity.Outbound
	require.NoError(t, conn.ReadJSON(&msg))

	return msg
}

func TestServer_Join(t *testing.T) {
	// Given: a running server
	srv := newTestServer(t)

	// When: client 1 connects, then client 2
	first := srv.dialWaiting(t, "/ws/1/0", 1)
	second := srv.dial(t, "/ws/2/0")

	// Then: client 1 plays X, client 2 plays O, X moves first
	join := readOutbound(t, first)
	assert.Equal(t, entity.MethodJoin, join.Method)
	assert.Equal(t, entity.SymbolX, join.Symbol)
	assert.Equal(t, entity.SymbolX, join.Turn)
	require.NotNil(t, join.OpponentID)
	assert.Equal(t, int64(2), *join.OpponentID)

	join = readOutbound(t, second)
	assert.Equal(t, entity.SymbolO, join.Symbol)
	assert.Equal(t, entity.SymbolX, join.Turn)
}

func TestServer_Result(t *testing.T) {
	t.Run("X wins", func(t *testing.T) {
		// Given: a paired session
		srv := newTestServer(t)
		first, second := srv.pair(t)

		// When: X submits a winning board
		require.NoError(t, first.WriteMessage(websocket.TextMessage,
			[]byte(`{"method":"move","board":["X","X","X","","","","","",""],"symbol":"X","turn":"O"}`)))

		// Then: both receive the result with the board
		for _, conn := range []*websocket.Conn{first, second} {
			result := readOutbound(t, conn)
			assert.Equal(t, entity.MethodResult, result.Method)
			assert.Equal(t, "X win", result.Message)
			require.NotNil(t, result.Board)
			assert.Equal(t, entity.Board{entity.SymbolX, entity.SymbolX, entity.SymbolX}, *result.Board)
		}
	})

	t.Run("Draw", func(t *testing.T) {
		srv := newTestServer(t)
		first, second := srv.pair(t)

		require.NoError(t, first.WriteMessage(websocket.TextMessage,
			[]byte(`{"method":"move","board":["X","O","X","O","X","O","O","X","O"],"symbol":"X","turn":"O"}`)))

		assert.Equal(t, "Draw", readOutbound(t, first).Message)
		assert.Equal(t, "Draw", readOutbound(t, second).Message)
	})
}

func TestServer_MalformedMessageKeepsConnection(t *testing.T) {
	// Given: a paired session
	srv := newTestServer(t)
	first, second := srv.pair(t)

	// When: X sends garbage and then a valid move
	require.NoError(t, first.WriteMessage(websocket.TextMessage, []byte(`not json`)))
	require.NoError(t, first.WriteMessage(websocket.TextMessage,
		[]byte(`{"method":"move","board":["","","","","X","","","",""],"symbol":"X","turn":"O"}`)))

	// Then: the garbage is dropped and the move still produces an update
	update := readOutbound(t, second)
	assert.Equal(t, entity.MethodUpdate, update.Method)
	assert.Equal(t, entity.SymbolO, update.Turn)
}

func TestServer_Disconnect(t *testing.T) {
	// Given: a paired session
	srv := newTestServer(t)
	first, second := srv.pair(t)

	// When: client 1 goes away
	require.NoError(t, first.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
	_ = first.Close()

	// Then: client 2 is told its opponent left
	left := readOutbound(t, second)
	assert.Equal(t, entity.MethodLeft, left.Method)
	assert.Equal(t, "opponent left", left.Message)

	require.Eventually(t, func() bool {
		return srv.coordinator.Stats().Clients == 1
	}, readTimeout, 10*time.Millisecond)
}

func TestServer_DuplicateIdentifier(t *testing.T) {
	// Given: a connected client 1
	srv := newTestServer(t)
	srv.dialWaiting(t, "/ws/1/0", 1)

	// When: another connection claims id 1
	duplicate := srv.dial(t, "/ws/1/0")

	// Then: it is closed with a policy violation and the original stays queued
	require.NoError(t, duplicate.SetReadDeadline(time.Now().Add(readTimeout)))
	_, _, err := duplicate.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.ClosePolicyViolation), "unexpected error: %v", err)

	stats := srv.coordinator.Stats()
	assert.Equal(t, 1, stats.Clients)
	assert.Equal(t, 1, stats.Waiting)
}

func TestServer_StaleMoveIsDropped(t *testing.T) {
	// Given: a client waiting alone
	srv := newTestServer(t)
	conn := srv.dialWaiting(t, "/ws/1/0", 1)

	// When: it sends a move with no opponent
	require.NoError(t, conn.WriteMessage(websocket.TextMessage,
		[]byte(`{"method":"move","board":["X","","","","","","","",""],"symbol":"X","turn":"O"}`)))

	// Then: nothing comes back and the client is still connected
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(300*time.Millisecond)))
	_, _, err := conn.ReadMessage()
	var netErr interface{ Timeout() bool }
	require.ErrorAs(t, err, &netErr)
	assert.True(t, netErr.Timeout())
	assert.Equal(t, 1, srv.coordinator.Stats().Clients)
}

func TestServer_OtherRoom(t *testing.T) {
	// Given: a running server
	srv := newTestServer(t)

	// When: two clients join room 7
	srv.dial(t, "/ws/1/7")
	srv.dial(t, "/ws/2/7")

	// Then: they are room members but nobody is paired
	require.Eventually(t, func() bool {
		return srv.coordinator.Stats().Rooms["7"] == 2
	}, readTimeout, 10*time.Millisecond)
	assert.Equal(t, 0, srv.coordinator.Stats().Sessions)
}

func TestServer_InvalidClientID(t *testing.T) {
	srv := newTestServer(t)

	_, resp, err := websocket.DefaultDialer.Dial(srv.url+"/ws/abc/0", nil)

	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_StartStopsWithContext(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := New(logger, usecase.NewCoordinator(logger, nil, nil), 1)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start(ctx, "0")
	}()

	cancel()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout):
		t.Fatal("server did not stop")
	}
}
