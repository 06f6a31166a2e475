package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/entity"
)

const historyLimit = 50

type MatchRepository interface {
	Save(ctx context.Context, record *entity.MatchRecord) error
	GetByID(ctx context.Context, id string) (*entity.MatchRecord, error)
	ListByClient(ctx context.Context, clientID int64, limit int64) ([]*entity.MatchRecord, error)
}

type dbMatch struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMatchRepository - ttl of zero keeps records forever.
func NewMatchRepository(client *redis.Client, ttl time.Duration) MatchRepository {
	return &dbMatch{
		client: client,
		ttl:    ttl,
	}
}

func matchKey(id string) string {
	return "match:" + id
}

func historyKey(clientID int64) string {
	return "history:" + strconv.FormatInt(clientID, 10)
}

func (that *dbMatch) Save(ctx context.Context, record *entity.MatchRecord) error {
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("could not marshal match: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, matchKey(record.ID), recordJSON, that.ttl)

		for _, clientID := range []int64{record.PlayerX, record.PlayerO} {
			key := historyKey(clientID)
			pipe.LPush(ctx, key, record.ID)
			pipe.LTrim(ctx, key, 0, historyLimit-1)
			if that.ttl > 0 {
				pipe.Expire(ctx, key, that.ttl)
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save match: %w", err)
	}

	return nil
}

func (that *dbMatch) GetByID(ctx context.Context, id string) (*entity.MatchRecord, error) {
	response, err := that.client.Get(ctx, matchKey(id)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrMatchNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get match by id: %w", err)
	}

	var record entity.MatchRecord
	if err = json.Unmarshal([]byte(response), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match: %w", err)
	}

	return &record, nil
}

// ListByClient returns the most recent matches first. Records that already expired are skipped.
func (that *dbMatch) ListByClient(ctx context.Context, clientID int64, limit int64) ([]*entity.MatchRecord, error) {
	if limit <= 0 || limit > historyLimit {
		limit = historyLimit
	}

	ids, err := that.client.LRange(ctx, historyKey(clientID), 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list match history: %w", err)
	}

	records := make([]*entity.MatchRecord, 0, len(ids))
	for _, id := range ids {
		record, err := that.GetByID(ctx, id)
		if errors.Is(err, apperror.ErrMatchNotFound) {
			continue
		}

		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	return records, nil
}
