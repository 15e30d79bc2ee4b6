package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-eco-challenge/internal/models"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsername returns the user with the given username, or nil if there is none.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT id, username, password_hash, points, created_at
		FROM users
		WHERE username = $1
	`
	return r.get(ctx, query, username)
}

// GetByID returns the user with the given id, or nil if there is none.
// Inside a transaction the row is locked so concurrent point updates queue up.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	query := `
		SELECT id, username, password_hash, points, created_at
		FROM users
		WHERE id = $1
	`
	if GetTxFromContext(ctx) != nil {
		query += " FOR UPDATE"
	}
	return r.get(ctx, query, userID)
}

func (r *UserReadRepository) get(ctx context.Context, query string, arg any) (*models.UserDB, error) {
	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &user, query, arg)

	logQuery(query, []any{arg}, user.UserID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and returns its id. Returns ErrUsernameTaken if the username is in use.
func (r *UserWriteRepository) Save(ctx context.Context, username, passwordHash string) (uuid.UUID, error) {
	const query = `
		INSERT INTO users (id, username, password_hash, points, created_at)
		VALUES ($1, $2, $3, 0, NOW())
		RETURNING id
	`
	args := []any{uuid.New(), username, passwordHash}

	var id uuid.UUID
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &id, query, args...)

	logQuery(query, []any{args[0], username}, id, err)

	if isUniqueViolation(err) {
		return uuid.Nil, ErrUsernameTaken
	}
	return id, err
}

// AddPoints increments the user's running total and returns the new value.
func (r *UserWriteRepository) AddPoints(ctx context.Context, userID uuid.UUID, points int64) (int64, error) {
	const query = `
		UPDATE users
		SET points = points + $2
		WHERE id = $1
		RETURNING points
	`

	var total int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &total, query, userID, points)

	logQuery(query, []any{userID, points}, total, err)

	return total, err
}
