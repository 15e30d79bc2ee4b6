package models

import (
	"time"

	"github.com/google/uuid"
)

// BadgeDB represents an awarded badge. At most one row exists per (user, badge).
type BadgeDB struct {
	BadgeID   int64     `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Badge     string    `json:"badge" db:"badge"`
	AwardedAt time.Time `json:"awarded_at" db:"awarded_at"`
}
