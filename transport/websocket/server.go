package websocket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/entity"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/matchmaking"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

type coordinator interface {
	Connect(ctx context.Context, clientID int64, roomID string, conn matchmaking.Conn) error
	HandleMessage(ctx context.Context, clientID int64, msg entity.Inbound) error
	Disconnect(ctx context.Context, clientID int64)
}

type Server struct {
	logger      *slog.Logger
	coordinator coordinator
	upgrader    websocket.Upgrader
	sendBuffer  int
}

func New(logger *slog.Logger, coordinator coordinator, sendBuffer int) *Server {
	return &Server{
		logger:      logger.With("component", "websocket"),
		coordinator: coordinator,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},
		sendBuffer: sendBuffer,
	}
}

func (that *Server) Routes() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)

	router.Get("/ws/{client_id}", that.serveWS)
	router.Get("/ws/{client_id}/{room_id}", that.serveWS)

	return router
}

// Start - starts WebSocket server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down websocket server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	clientID, err := strconv.ParseInt(chi.URLParam(r, "client_id"), 10, 64)
	if err != nil {
		http.Error(w, "client id must be an integer", http.StatusBadRequest)
		return
	}

	roomID := chi.URLParam(r, "room_id")
	if roomID == "" {
		roomID = usecase.DefaultRoom
	}

	log := that.logger.With("method", "serveWS", "clientID", clientID, "roomID", roomID)

	ws, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	ctx := r.Context()
	conn := newConnection(log, ws, that.sendBuffer)

	if err = that.coordinator.Connect(ctx, clientID, roomID, conn); err != nil {
		log.Warn("connection refused", "error", err)
		conn.reject(websocket.ClosePolicyViolation, "client id is already connected")
		return
	}

	log.Info("WebSocket connection established")

	go conn.writePump()

	defer func() {
		if rec := recover(); rec != nil {
			log.Error("connection handler panicked", "panic", rec)
		}

		that.coordinator.Disconnect(context.WithoutCancel(ctx), clientID)
		conn.close()

		log.Info("WebSocket connection closed")
	}()

	conn.readPump(func(data []byte) {
		msg, err := Decode(data)
		if err != nil {
			log.Warn("dropping malformed message", "error", err)
			return
		}

		if err = that.coordinator.HandleMessage(ctx, clientID, msg); err != nil {
			log.Warn("message rejected", "error", err)
		}
	})
}
