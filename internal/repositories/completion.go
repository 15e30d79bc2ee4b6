package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-eco-challenge/internal/models"
)

const dayLayout = "2006-01-02"

// CompletionReadRepository handles completion ledger reads
type CompletionReadRepository struct {
	db *sqlx.DB
}

func NewCompletionReadRepository(db *sqlx.DB) *CompletionReadRepository {
	return &CompletionReadRepository{db: db}
}

// ExistsForDay reports whether the user already completed the challenge on the given calendar day.
func (r *CompletionReadRepository) ExistsForDay(ctx context.Context, userID uuid.UUID, challengeID int64, day time.Time) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1
			FROM completions
			WHERE user_id = $1 AND challenge_id = $2 AND completed_on = $3::date
		)
	`
	args := []any{userID, challengeID, day.Format(dayLayout)}

	var exists bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &exists, query, args...)

	logQuery(query, args, exists, err)

	return exists, err
}

// CountByUser returns the number of completions the user has across all days.
func (r *CompletionReadRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	const query = `
		SELECT COUNT(*)
		FROM completions
		WHERE user_id = $1
	`

	var count int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &count, query, userID)

	logQuery(query, []any{userID}, count, err)

	return count, err
}

// DailyPointsByUser returns the points earned per day, oldest day first.
func (r *CompletionReadRepository) DailyPointsByUser(ctx context.Context, userID uuid.UUID) ([]models.DailyPoints, error) {
	const query = `
		SELECT completed_on AS day, SUM(points)::BIGINT AS points
		FROM completions
		WHERE user_id = $1
		GROUP BY completed_on
		ORDER BY completed_on ASC
	`

	days := []models.DailyPoints{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &days, query, userID)

	logQuery(query, []any{userID}, len(days), err)

	return days, err
}

// CompletionWriteRepository appends to the completion ledger
type CompletionWriteRepository struct {
	db *sqlx.DB
}

func NewCompletionWriteRepository(db *sqlx.DB) *CompletionWriteRepository {
	return &CompletionWriteRepository{db: db}
}

// Save appends a completion. Returns ErrCompletionExists when the user already
// completed the challenge on that day.
func (r *CompletionWriteRepository) Save(ctx context.Context, userID uuid.UUID, challengeID, points int64, day time.Time) error {
	const query = `
		INSERT INTO completions (user_id, challenge_id, points, completed_on, created_at)
		VALUES ($1, $2, $3, $4::date, NOW())
	`
	args := []any{userID, challengeID, points, day.Format(dayLayout)}

	res, err := executor(ctx, r.db).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	if isUniqueViolation(err) {
		return ErrCompletionExists
	}
	return err
}
