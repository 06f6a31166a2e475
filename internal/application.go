package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/config"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/entity"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/repository"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/service"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/transport/kafka"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-matchmaker/transport/rest"
	"github.com/rocketscienceinc/tictactoe-matchmaker/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

type eventPublisher interface {
	Publish(ctx context.Context, event entity.MatchEvent) error
	io.Closer
}

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedis(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	postgresStorage, err := storage.NewPostgres(ctx, conf.Postgres.DSN)
	if err != nil {
		return fmt.Errorf("could not connect to postgres storage: %w", err)
	}

	defer func() {
		if err = postgresStorage.Close(); err != nil {
			log.Error("could not close postgres storage", "error", err)
		}
	}()

	var publisher eventPublisher = kafka.NopPublisher{}
	if conf.KafkaEnabled() {
		publisher = kafka.NewPublisher(logger, conf.Kafka.Brokers, conf.Kafka.Topic)
	}

	defer func() {
		if err = publisher.Close(); err != nil {
			log.Error("could not close event publisher", "error", err)
		}
	}()

	matchRepo := repository.NewMatchRepository(redisStorage, conf.Redis.HistoryTTL)
	leaderboardRepo := repository.NewLeaderboardRepository(postgresStorage)

	coordinator := usecase.NewCoordinator(logger, matchRepo, publisher)
	leaderboardService := service.NewLeaderboardService(logger, leaderboardRepo)
	purchaseService := service.NewPurchaseService(logger, conf.Purchase.AccessKey)

	handlers := rest.NewHandlers(logger, leaderboardService, purchaseService, matchRepo, coordinator)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.New(logger, handlers).Start(ctx, conf.HTTPPort); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, coordinator, conf.SendBuffer)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
