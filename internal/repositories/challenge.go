package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-eco-challenge/internal/models"
)

// ChallengeReadRepository handles catalog read operations
type ChallengeReadRepository struct {
	db *sqlx.DB
}

func NewChallengeReadRepository(db *sqlx.DB) *ChallengeReadRepository {
	return &ChallengeReadRepository{db: db}
}

// List returns all challenges, newest first.
func (r *ChallengeReadRepository) List(ctx context.Context) ([]models.ChallengeDB, error) {
	const query = `
		SELECT id, description, difficulty, created_by, created_at
		FROM challenges
		ORDER BY id DESC
	`

	challenges := []models.ChallengeDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &challenges, query)

	logQuery(query, nil, len(challenges), err)

	return challenges, err
}

// GetByID returns the challenge with the given id, or nil if there is none.
func (r *ChallengeReadRepository) GetByID(ctx context.Context, challengeID int64) (*models.ChallengeDB, error) {
	const query = `
		SELECT id, description, difficulty, created_by, created_at
		FROM challenges
		WHERE id = $1
	`

	var challenge models.ChallengeDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &challenge, query, challengeID)

	logQuery(query, []any{challengeID}, challenge.ChallengeID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &challenge, nil
}

// ChallengeWriteRepository handles catalog write operations
type ChallengeWriteRepository struct {
	db *sqlx.DB
}

func NewChallengeWriteRepository(db *sqlx.DB) *ChallengeWriteRepository {
	return &ChallengeWriteRepository{db: db}
}

// Save inserts a challenge and returns the stored row.
func (r *ChallengeWriteRepository) Save(ctx context.Context, description string, difficulty models.Difficulty, createdBy string) (*models.ChallengeDB, error) {
	const query = `
		INSERT INTO challenges (description, difficulty, created_by, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, description, difficulty, created_by, created_at
	`
	args := []any{description, string(difficulty), createdBy}

	var challenge models.ChallengeDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &challenge, query, args...)

	logQuery(query, args, challenge.ChallengeID, err)

	if err != nil {
		return nil, err
	}
	return &challenge, nil
}
