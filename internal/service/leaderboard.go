package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/entity"
)

type LeaderboardService interface {
	List(ctx context.Context) ([]*entity.LeaderboardEntry, error)
	GetByUserID(ctx context.Context, userID int64) (*entity.LeaderboardEntry, error)
	CreateIfAbsent(ctx context.Context, entry *entity.LeaderboardEntry) error
	UpdateStat(ctx context.Context, userID int64, stat string, value int) error
	Delete(ctx context.Context, userID int64) error
	Sort(ctx context.Context) ([]*entity.LeaderboardEntry, error)
}

type leaderboardRepo interface {
	List(ctx context.Context) ([]*entity.LeaderboardEntry, error)
	GetByUserID(ctx context.Context, userID int64) (*entity.LeaderboardEntry, error)
	Create(ctx context.Context, entry *entity.LeaderboardEntry) error
	UpdateStat(ctx context.Context, userID int64, stat string, value int) error
	DeleteByUserID(ctx context.Context, userID int64) error
	Sort(ctx context.Context) ([]*entity.LeaderboardEntry, error)
}

type leaderboardService struct {
	logger          *slog.Logger
	leaderboardRepo leaderboardRepo
}

func NewLeaderboardService(logger *slog.Logger, leaderboardRepo leaderboardRepo) LeaderboardService {
	return &leaderboardService{
		logger:          logger.With("component", "leaderboard"),
		leaderboardRepo: leaderboardRepo,
	}
}

func (that *leaderboardService) List(ctx context.Context) ([]*entity.LeaderboardEntry, error) {
	entries, err := that.leaderboardRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaderboard: %w", err)
	}

	return entries, nil
}

func (that *leaderboardService) GetByUserID(ctx context.Context, userID int64) (*entity.LeaderboardEntry, error) {
	entry, err := that.leaderboardRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user statistic: %w", err)
	}

	return entry, nil
}

// CreateIfAbsent - stores the entry unless the user already has one; an existing entry is left untouched.
func (that *leaderboardService) CreateIfAbsent(ctx context.Context, entry *entity.LeaderboardEntry) error {
	log := that.logger.With("method", "CreateIfAbsent", "userID", entry.UserID)

	err := that.leaderboardRepo.Create(ctx, entry)
	if errors.Is(err, apperror.ErrStatAlreadyExist) {
		log.Debug("user statistic already exists")
		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to create user statistic: %w", err)
	}

	log.Info("user statistic created")

	return nil
}

// UpdateStat - a missing user is reported before an unknown stat name.
func (that *leaderboardService) UpdateStat(ctx context.Context, userID int64, stat string, value int) error {
	if _, err := that.leaderboardRepo.GetByUserID(ctx, userID); err != nil {
		return fmt.Errorf("failed to get user statistic: %w", err)
	}

	if !entity.IsKnownStat(stat) {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidStatName, stat)
	}

	if err := that.leaderboardRepo.UpdateStat(ctx, userID, stat, value); err != nil {
		return fmt.Errorf("failed to update user statistic: %w", err)
	}

	return nil
}

func (that *leaderboardService) Delete(ctx context.Context, userID int64) error {
	if err := that.leaderboardRepo.DeleteByUserID(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete user statistic: %w", err)
	}

	return nil
}

func (that *leaderboardService) Sort(ctx context.Context) ([]*entity.LeaderboardEntry, error) {
	log := that.logger.With("method", "Sort")

	entries, err := that.leaderboardRepo.Sort(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sort leaderboard: %w", err)
	}

	log.Info("leaderboard sorted", "entries", len(entries))

	return entries, nil
}
