package models

import "time"

// Difficulty is the effort level of a challenge.
type Difficulty string

// Supported difficulty levels
const (
	DifficultyLow    Difficulty = "Low"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHigh   Difficulty = "High"
)

// SystemAuthor marks challenges shipped with the catalog.
const SystemAuthor = "system"

// Valid reports whether d is one of the supported levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyLow, DifficultyMedium, DifficultyHigh:
		return true
	}
	return false
}

// ChallengeDB represents a challenge row in the database. Challenges are never updated.
type ChallengeDB struct {
	ChallengeID int64      `json:"id" db:"id"`                   // Primary key
	Description string     `json:"description" db:"description"` // What the user has to do
	Difficulty  Difficulty `json:"difficulty" db:"difficulty"`   // Low, Medium or High
	CreatedBy   string     `json:"created_by" db:"created_by"`   // Username of the author or "system"
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`   // Creation timestamp
}
