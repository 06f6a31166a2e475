package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/entity"
)

const uniqueViolation = "23505"

type LeaderboardRepository interface {
	List(ctx context.Context) ([]*entity.LeaderboardEntry, error)
	GetByUserID(ctx context.Context, userID int64) (*entity.LeaderboardEntry, error)
	Create(ctx context.Context, entry *entity.LeaderboardEntry) error
	UpdateStat(ctx context.Context, userID int64, stat string, value int) error
	DeleteByUserID(ctx context.Context, userID int64) error
	Sort(ctx context.Context) ([]*entity.LeaderboardEntry, error)
}

type dbLeaderboard struct {
	db *sql.DB
}

func NewLeaderboardRepository(db *sql.DB) LeaderboardRepository {
	return &dbLeaderboard{
		db: db,
	}
}

const selectEntries = `SELECT user_id, position, name, last_name, img_url, score FROM leaderboard`

type rowScanner interface {
	Scan(dest ...any) error
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func scanEntry(row rowScanner) (*entity.LeaderboardEntry, error) {
	var entry entity.LeaderboardEntry
	if err := row.Scan(&entry.UserID, &entry.Position, &entry.Name, &entry.LastName, &entry.ImgURL, &entry.Score); err != nil {
		return nil, err
	}

	return &entry, nil
}

func queryEntries(ctx context.Context, q queryer, query string) ([]*entity.LeaderboardEntry, error) {
	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	entries := make([]*entity.LeaderboardEntry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %w", err)
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leaderboard: %w", err)
	}

	return entries, nil
}

func (that *dbLeaderboard) List(ctx context.Context) ([]*entity.LeaderboardEntry, error) {
	return queryEntries(ctx, that.db, selectEntries+` ORDER BY position, user_id`)
}

func (that *dbLeaderboard) GetByUserID(ctx context.Context, userID int64) (*entity.LeaderboardEntry, error) {
	row := that.db.QueryRowContext(ctx, selectEntries+` WHERE user_id = $1`, userID)

	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.ErrStatNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard entry: %w", err)
	}

	return entry, nil
}

func (that *dbLeaderboard) Create(ctx context.Context, entry *entity.LeaderboardEntry) error {
	query := `INSERT INTO leaderboard (user_id, position, name, last_name, img_url, score) VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := that.db.ExecContext(ctx, query, entry.UserID, entry.Position, entry.Name, entry.LastName, entry.ImgURL, entry.Score)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return apperror.ErrStatAlreadyExist
	}

	if err != nil {
		return fmt.Errorf("failed to create leaderboard entry: %w", err)
	}

	return nil
}

func (that *dbLeaderboard) UpdateStat(ctx context.Context, userID int64, stat string, value int) error {
	var query string

	switch stat {
	case entity.StatPosition:
		query = `UPDATE leaderboard SET position = $1 WHERE user_id = $2`
	case entity.StatScore:
		query = `UPDATE leaderboard SET score = $1 WHERE user_id = $2`
	default:
		return fmt.Errorf("%w: %s", apperror.ErrInvalidStatName, stat)
	}

	result, err := that.db.ExecContext(ctx, query, value, userID)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", stat, err)
	}

	return expectAffected(result)
}

func (that *dbLeaderboard) DeleteByUserID(ctx context.Context, userID int64) error {
	result, err := that.db.ExecContext(ctx, `DELETE FROM leaderboard WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete leaderboard entry: %w", err)
	}

	return expectAffected(result)
}

// Sort assigns positions 1..n by score, highest first, ties broken by user id.
func (that *dbLeaderboard) Sort(ctx context.Context) ([]*entity.LeaderboardEntry, error) {
	tx, err := that.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		UPDATE leaderboard AS l
		SET position = ranked.rn
		FROM (
			SELECT user_id, ROW_NUMBER() OVER (ORDER BY score DESC, user_id ASC) AS rn
			FROM leaderboard
		) AS ranked
		WHERE l.user_id = ranked.user_id`

	if _, err = tx.ExecContext(ctx, query); err != nil {
		return nil, fmt.Errorf("failed to assign positions: %w", err)
	}

	entries, err := queryEntries(ctx, tx, selectEntries+` ORDER BY position`)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit positions: %w", err)
	}

	return entries, nil
}

func expectAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}

	if affected == 0 {
		return apperror.ErrStatNotFound
	}

	return nil
}
