package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/entity"
	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher emits match lifecycle events keyed by session id.
type Publisher struct {
	logger *slog.Logger
	writer messageWriter
}

func NewPublisher(logger *slog.Logger, brokers []string, topic string) *Publisher {
	log := logger.With("component", "kafka")

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Async:        true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				log.Error("kafka async write failed", "messages", len(messages), "error", err)
			}
		},
	}

	return &Publisher{
		logger: log,
		writer: writer,
	}
}

func (that *Publisher) Publish(ctx context.Context, event entity.MatchEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = that.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.SessionID),
		Value: value,
		Time:  event.At,
	})
	if err != nil {
		return fmt.Errorf("failed to write %s event: %w", event.Type, err)
	}

	return nil
}

func (that *Publisher) Close() error {
	if err := that.writer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka writer: %w", err)
	}

	return nil
}

// NopPublisher is used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, entity.MatchEvent) error {
	return nil
}

func (NopPublisher) Close() error {
	return nil
}
