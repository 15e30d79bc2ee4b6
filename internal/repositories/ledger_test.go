package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-eco-challenge/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestChallengeRepositories(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	reader := NewChallengeReadRepository(db)
	writer := NewChallengeWriteRepository(db)

	seeded, err := reader.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, seeded, 5)
	for _, c := range seeded {
		assert.Equal(t, models.SystemAuthor, c.CreatedBy)
		assert.True(t, c.Difficulty.Valid())
	}

	saved, err := writer.Save(ctx, "Take a shorter shower.", models.DifficultyLow, "ana")
	assert.NoError(t, err)
	assert.Equal(t, "ana", saved.CreatedBy)
	assert.Equal(t, models.DifficultyLow, saved.Difficulty)

	all, err := reader.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 6)
	assert.Equal(t, saved.ChallengeID, all[0].ChallengeID, "newest challenge comes first")

	got, err := reader.GetByID(ctx, saved.ChallengeID)
	assert.NoError(t, err)
	assert.Equal(t, saved.Description, got.Description)

	missing, err := reader.GetByID(ctx, 999999)
	assert.NoError(t, err)
	assert.Nil(t, missing)

	_, err = writer.Save(ctx, "bad", models.Difficulty("Extreme"), "ana")
	assert.Error(t, err)
}

func TestCompletionAndBadgeRepositories(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID, err := NewUserWriteRepository(db).Save(ctx, "ana", "hash")
	assert.NoError(t, err)

	completions := NewCompletionWriteRepository(db)
	completionReader := NewCompletionReadRepository(db)
	badges := NewBadgeWriteRepository(db)
	badgeReader := NewBadgeReadRepository(db)

	day1 := time.Date(2026, 10, 14, 23, 30, 0, 0, time.UTC)
	day2 := day1.Add(2 * time.Hour)

	t.Run("dedup per calendar day", func(t *testing.T) {
		exists, err := completionReader.ExistsForDay(ctx, userID, 1, day1)
		assert.NoError(t, err)
		assert.False(t, exists)

		assert.NoError(t, completions.Save(ctx, userID, 1, 10, day1))

		exists, err = completionReader.ExistsForDay(ctx, userID, 1, day1)
		assert.NoError(t, err)
		assert.True(t, exists)

		err = completions.Save(ctx, userID, 1, 10, day1)
		assert.ErrorIs(t, err, ErrCompletionExists)

		exists, err = completionReader.ExistsForDay(ctx, userID, 1, day2)
		assert.NoError(t, err)
		assert.False(t, exists, "next calendar day is a new dedup window")
		assert.NoError(t, completions.Save(ctx, userID, 1, 10, day2))
		assert.NoError(t, completions.Save(ctx, userID, 2, 10, day2))
	})

	t.Run("count and daily points", func(t *testing.T) {
		count, err := completionReader.CountByUser(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), count)

		days, err := completionReader.DailyPointsByUser(ctx, userID)
		assert.NoError(t, err)
		if assert.Len(t, days, 2) {
			assert.Equal(t, "2026-10-14", days[0].Day.Format(dayLayout))
			assert.Equal(t, int64(10), days[0].Points)
			assert.Equal(t, "2026-10-15", days[1].Day.Format(dayLayout))
			assert.Equal(t, int64(20), days[1].Points)
		}
	})

	t.Run("badges are idempotent", func(t *testing.T) {
		awarded, err := badges.Award(ctx, userID, "Novice Activist")
		assert.NoError(t, err)
		assert.True(t, awarded)

		awarded, err = badges.Award(ctx, userID, "Novice Activist")
		assert.NoError(t, err)
		assert.False(t, awarded)

		list, err := badgeReader.ListByUser(ctx, userID)
		assert.NoError(t, err)
		if assert.Len(t, list, 1) {
			assert.Equal(t, "Novice Activist", list[0].Badge)
		}
	})

	t.Run("unknown user violates foreign key", func(t *testing.T) {
		err := completions.Save(ctx, uuid.New(), 1, 10, day1)
		assert.Error(t, err)
		assert.False(t, errors.Is(err, ErrCompletionExists))
	})
}

func TestTransactor_RollsBackAgainstPostgres(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID, err := NewUserWriteRepository(db).Save(ctx, "ana", "hash")
	assert.NoError(t, err)

	tr := NewTransactor(db, 3)
	users := NewUserWriteRepository(db)
	completions := NewCompletionWriteRepository(db)

	boom := errors.New("boom")
	err = tr.WithinTx(ctx, func(ctx context.Context) error {
		if err := completions.Save(ctx, userID, 1, 10, time.Now()); err != nil {
			return err
		}
		if _, err := users.AddPoints(ctx, userID, 10); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var points int64
	assert.NoError(t, db.Get(&points, `SELECT points FROM users WHERE id = $1`, userID))
	assert.Equal(t, int64(0), points)

	var count int
	assert.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM completions WHERE user_id = $1`, userID))
	assert.Equal(t, 0, count)
}

func TestMigrate_Idempotent(t *testing.T) {
	db, dsn, cleanup := setupPostgresDSN(t)
	defer cleanup()

	assert.NoError(t, Migrate(dsn))

	var count int
	assert.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM challenges`))
	assert.Equal(t, 5, count, "seed must not run twice")
}
