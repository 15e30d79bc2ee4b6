package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-eco-challenge/internal/models"
)

// BadgeReadRepository handles badge ledger reads
type BadgeReadRepository struct {
	db *sqlx.DB
}

func NewBadgeReadRepository(db *sqlx.DB) *BadgeReadRepository {
	return &BadgeReadRepository{db: db}
}

// ListByUser returns the user's badges in award order.
func (r *BadgeReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.BadgeDB, error) {
	const query = `
		SELECT id, user_id, badge, awarded_at
		FROM badges
		WHERE user_id = $1
		ORDER BY awarded_at ASC, id ASC
	`

	badges := []models.BadgeDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &badges, query, userID)

	logQuery(query, []any{userID}, len(badges), err)

	return badges, err
}

// BadgeWriteRepository appends to the badge ledger
type BadgeWriteRepository struct {
	db *sqlx.DB
}

func NewBadgeWriteRepository(db *sqlx.DB) *BadgeWriteRepository {
	return &BadgeWriteRepository{db: db}
}

// Award inserts the badge unless the user already holds it.
// It reports whether a new row was written.
func (r *BadgeWriteRepository) Award(ctx context.Context, userID uuid.UUID, badge string) (bool, error) {
	const query = `
		INSERT INTO badges (user_id, badge, awarded_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, badge) DO NOTHING
	`
	args := []any{userID, badge}

	res, err := executor(ctx, r.db).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected == 1, nil
}
