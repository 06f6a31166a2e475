package websocket

import (
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/entity"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// connection pumps frames between one websocket and the coordinator. Only writePump writes data frames.
type connection struct {
	logger *slog.Logger
	ws     *websocket.Conn

	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

func newConnection(logger *slog.Logger, ws *websocket.Conn, buffer int) *connection {
	return &connection{
		logger: logger,
		ws:     ws,
		send:   make(chan []byte, buffer),
		done:   make(chan struct{}),
	}
}

// Send queues msg without blocking. A full buffer or a closed connection drops the message.
func (that *connection) Send(msg entity.Outbound) bool {
	data, err := json.Marshal(msg)
	if err != nil {
		that.logger.Error("failed to marshal message", "method", msg.Method, "error", err)
		return false
	}

	select {
	case <-that.done:
		return false
	default:
	}

	select {
	case that.send <- data:
		return true
	default:
		that.logger.Warn("send buffer is full, message dropped", "method", msg.Method)
		return false
	}
}

// readPump hands every payload to handle. Payloads over maxMessageSize are discarded and the connection stays open.
func (that *connection) readPump(handle func(data []byte)) {
	_ = that.ws.SetReadDeadline(time.Now().Add(pongWait))
	that.ws.SetPongHandler(func(string) error {
		return that.ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, reader, err := that.ws.NextReader()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseNoStatusReceived) {
				that.logger.Warn("connection closed unexpectedly", "error", err)
			}
			return
		}

		data, err := io.ReadAll(io.LimitReader(reader, maxMessageSize+1))
		if err != nil {
			that.logger.Debug("failed to read message", "error", err)
			return
		}

		if len(data) > maxMessageSize {
			discarded, err := io.Copy(io.Discard, reader)
			if err != nil {
				that.logger.Debug("failed to discard oversized message", "error", err)
				return
			}

			that.logger.Warn("dropping oversized message", "size", int64(len(data))+discarded, "limit", maxMessageSize)
			continue
		}

		handle(data)
	}
}

func (that *connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = that.ws.Close()
	}()

	for {
		select {
		case data := <-that.send:
			_ = that.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := that.ws.WriteMessage(websocket.TextMessage, data); err != nil {
				that.logger.Debug("failed to write message", "error", err)
				return
			}
		case <-ticker.C:
			_ = that.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := that.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-that.done:
			return
		}
	}
}

// reject closes a connection that never entered the game.
func (that *connection) reject(code int, reason string) {
	msg := websocket.FormatCloseMessage(code, reason)
	if err := that.ws.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait)); err != nil {
		that.logger.Debug("failed to write close frame", "error", err)
	}

	that.close()
	_ = that.ws.Close()
}

func (that *connection) close() {
	that.closeOnce.Do(func() {
		close(that.done)
	})
}
