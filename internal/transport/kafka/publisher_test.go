package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/entity"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (that *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	that.msgs = append(that.msgs, msgs...)
	return that.err
}

func (that *fakeWriter) Close() error {
	return nil
}

func newTestPublisher(writer messageWriter) *Publisher {
	return &Publisher{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		writer: writer,
	}
}

func TestPublisher_Publish(t *testing.T) {
	t.Run("Event is keyed by session", func(t *testing.T) {
		// Given: a publisher over a fake writer
		writer := &fakeWriter{}
		publisher := newTestPublisher(writer)
		event := entity.MatchEvent{
			Type:      entity.EventMatchFinished,
			SessionID: "session-1",
			PlayerX:   1,
			PlayerO:   2,
			Outcome:   "X win",
			At:        time.Unix(1700000000, 0).UTC(),
		}

		// When: an event is published
		err := publisher.Publish(context.Background(), event)

		// Then: one message keyed by the session id carries the JSON event
		require.NoError(t, err)
		require.Len(t, writer.msgs, 1)
		assert.Equal(t, []byte("session-1"), writer.msgs[0].Key)

		var decoded entity.MatchEvent
		require.NoError(t, json.Unmarshal(writer.msgs[0].Value, &decoded))
		assert.Equal(t, event.Type, decoded.Type)
		assert.Equal(t, event.Outcome, decoded.Outcome)
		assert.Equal(t, event.PlayerO, decoded.PlayerO)
	})

	t.Run("Writer failure is wrapped", func(t *testing.T) {
		writer := &fakeWriter{err: errors.New("broker unavailable")}
		publisher := newTestPublisher(writer)

		err := publisher.Publish(context.Background(), entity.MatchEvent{Type: entity.EventMatchStarted})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "broker unavailable")
	})
}

func TestNopPublisher(t *testing.T) {
	assert.NoError(t, NopPublisher{}.Publish(context.Background(), entity.MatchEvent{}))
	assert.NoError(t, NopPublisher{}.Close())
}
