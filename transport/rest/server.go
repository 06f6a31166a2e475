package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const (
	requestTimeout  = 30 * time.Second
	shutdownTimeout = 10 * time.Second
)

type Server struct {
	logger   *slog.Logger
	handlers *Handlers
}

func New(logger *slog.Logger, handlers *Handlers) *Server {
	return &Server{
		logger:   logger.With("component", "rest"),
		handlers: handlers,
	}
}

func (that *Server) Routes() http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(that.logRequests)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(requestTimeout))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	router.Get("/ping", that.handlers.Ping)
	router.Get("/stats", that.handlers.Stats)
	router.Get("/matches/{client_id}", that.handlers.MatchHistory)

	router.Route("/leaderboard", func(r chi.Router) {
		r.Get("/", that.handlers.ListLeaderboard)
		r.Get("/{user_id}", that.handlers.GetUserStat)
		r.Post("/{user_id}", that.handlers.CreateUserStat)
		r.Put("/{user_id}", that.handlers.UpdateUserStat)
		r.Delete("/{user_id}", that.handlers.DeleteUserStat)
	})
	router.Put("/leaderboard-sort", that.handlers.SortLeaderboard)

	router.Post("/purchase", that.handlers.Purchase)

	return router
}

// Start - starts HTTP server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: requestTimeout + 5*time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down HTTP server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		started := time.Now()

		next.ServeHTTP(ww, r)

		that.logger.Debug("request served",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(started),
			"requestID", middleware.GetReqID(r.Context()),
		)
	})
}
