package repository

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/entity"
	"github.com/rocketscienceinc/tictactoe-matchmaker/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaderboardRepository_Create(t *testing.T) {
	ctx, st := suite.NewPostgres(t)

	leaderboardRepo := NewLeaderboardRepository(st.DB)

	// Given: a new entry
	entry := &entity.LeaderboardEntry{UserID: 10, Position: 1, Name: "Ada", LastName: "Lovelace", ImgURL: "a.png", Score: 5}

	// When: it is created
	err := leaderboardRepo.Create(ctx, entry)

	// Then: it can be read back
	require.NoError(t, err)

	saved, err := leaderboardRepo.GetByUserID(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, entry, saved)

	t.Run("Create_Duplicate", func(t *testing.T) {
		// When: the same user is created again
		err := leaderboardRepo.Create(ctx, &entity.LeaderboardEntry{UserID: 10, Score: 99})

		// Then: the unique violation is reported and the entry is untouched
		require.ErrorIs(t, err, apperror.ErrStatAlreadyExist)

		saved, err := leaderboardRepo.GetByUserID(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, 5, saved.Score)
	})
}

func TestLeaderboardRepository_UpdateStat(t *testing.T) {
	ctx, st := suite.NewPostgres(t)

	leaderboardRepo := NewLeaderboardRepository(st.DB)
	require.NoError(t, leaderboardRepo.Create(ctx, &entity.LeaderboardEntry{UserID: 1, Score: 1}))

	t.Run("UpdateStat_Score", func(t *testing.T) {
		// When: the score is updated
		err := leaderboardRepo.UpdateStat(ctx, 1, entity.StatScore, 42)

		// Then: the new score is stored
		require.NoError(t, err)

		saved, err := leaderboardRepo.GetByUserID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 42, saved.Score)
	})

	t.Run("UpdateStat_InvalidName", func(t *testing.T) {
		err := leaderboardRepo.UpdateStat(ctx, 1, "name", 1)

		require.ErrorIs(t, err, apperror.ErrInvalidStatName)
	})

	t.Run("UpdateStat_NotFound", func(t *testing.T) {
		err := leaderboardRepo.UpdateStat(ctx, 404, entity.StatPosition, 1)

		require.ErrorIs(t, err, apperror.ErrStatNotFound)
	})
}

func TestLeaderboardRepository_DeleteByUserID(t *testing.T) {
	ctx, st := suite.NewPostgres(t)

	leaderboardRepo := NewLeaderboardRepository(st.DB)
	require.NoError(t, leaderboardRepo.Create(ctx, &entity.LeaderboardEntry{UserID: 1}))

	// When: the entry is deleted twice
	first := leaderboardRepo.DeleteByUserID(ctx, 1)
	second := leaderboardRepo.DeleteByUserID(ctx, 1)

	// Then: the second delete finds nothing
	require.NoError(t, first)
	require.ErrorIs(t, second, apperror.ErrStatNotFound)

	_, err := leaderboardRepo.GetByUserID(ctx, 1)
	require.ErrorIs(t, err, apperror.ErrStatNotFound)
}

func TestLeaderboardRepository_Sort(t *testing.T) {
	ctx, st := suite.NewPostgres(t)

	leaderboardRepo := NewLeaderboardRepository(st.DB)

	// Given: entries with unordered positions
	require.NoError(t, leaderboardRepo.Create(ctx, &entity.LeaderboardEntry{UserID: 1, Position: 1, Score: 10}))
	require.NoError(t, leaderboardRepo.Create(ctx, &entity.LeaderboardEntry{UserID: 2, Position: 2, Score: 30}))
	require.NoError(t, leaderboardRepo.Create(ctx, &entity.LeaderboardEntry{UserID: 3, Position: 3, Score: 20}))
	require.NoError(t, leaderboardRepo.Create(ctx, &entity.LeaderboardEntry{UserID: 4, Position: 4, Score: 20}))

	// When: the leaderboard is sorted
	sorted, err := leaderboardRepo.Sort(ctx)

	// Then: positions follow the score, ties by user id
	require.NoError(t, err)
	require.Len(t, sorted, 4)

	var order []int64
	for i, entry := range sorted {
		order = append(order, entry.UserID)
		assert.Equal(t, i+1, entry.Position)
	}
	assert.Equal(t, []int64{2, 3, 4, 1}, order)

	listed, err := leaderboardRepo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, sorted, listed)
}
