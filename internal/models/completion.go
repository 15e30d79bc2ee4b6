package models

import (
	"time"

	"github.com/google/uuid"
)

// CompletionDB represents a completion ledger row. Rows are append-only.
type CompletionDB struct {
	CompletionID int64     `json:"id" db:"id"`
	UserID       uuid.UUID `json:"user_id" db:"user_id"`
	ChallengeID  int64     `json:"challenge_id" db:"challenge_id"`
	Points       int64     `json:"points" db:"points"`
	CompletedOn  time.Time `json:"completed_on" db:"completed_on"` // Calendar day used for dedup
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// DailyPoints is the sum of points a user earned on a single day.
type DailyPoints struct {
	Day    time.Time `db:"day"`
	Points int64     `db:"points"`
}

// CompletionResult is the outcome of completing a challenge.
// AlreadyCompletedToday is an ordinary outcome: nothing was written and Points holds the current total.
type CompletionResult struct {
	Completed             bool
	AlreadyCompletedToday bool
	Points                int64
	BadgeAwarded          string
}
