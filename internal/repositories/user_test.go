package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUserRepositories(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	writer := NewUserWriteRepository(db)
	reader := NewUserReadRepository(db)

	id, err := writer.Save(ctx, "ana", "hash")
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	t.Run("duplicate username", func(t *testing.T) {
		_, err := writer.Save(ctx, "ana", "other-hash")
		assert.ErrorIs(t, err, ErrUsernameTaken)

		var count int
		assert.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM users WHERE username = 'ana'`))
		assert.Equal(t, 1, count)
	})

	t.Run("get by username", func(t *testing.T) {
		user, err := reader.GetByUsername(ctx, "ana")
		assert.NoError(t, err)
		if assert.NotNil(t, user) {
			assert.Equal(t, id, user.UserID)
			assert.Equal(t, "hash", user.PasswordHash)
			assert.Equal(t, int64(0), user.Points)
		}
	})

	t.Run("missing user", func(t *testing.T) {
		user, err := reader.GetByUsername(ctx, "nobody")
		assert.NoError(t, err)
		assert.Nil(t, user)

		user, err = reader.GetByID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("add points", func(t *testing.T) {
		total, err := writer.AddPoints(ctx, id, 10)
		assert.NoError(t, err)
		assert.Equal(t, int64(10), total)

		total, err = writer.AddPoints(ctx, id, 10)
		assert.NoError(t, err)
		assert.Equal(t, int64(20), total)

		user, err := reader.GetByID(ctx, id)
		assert.NoError(t, err)
		assert.Equal(t, int64(20), user.Points)
	})
}
