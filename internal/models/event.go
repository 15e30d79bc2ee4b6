package models

// CompletionEvent is published after a completion has been committed.
type CompletionEvent struct {
	EventID      string `json:"event_id"`                // EventID is a unique identifier for the event.
	Timestamp    int64  `json:"timestamp"`               // Timestamp is the Unix timestamp (in seconds) of the commit.
	UserID       string `json:"user_id"`                 // UserID is the user who completed the challenge.
	ChallengeID  int64  `json:"challenge_id"`            // ChallengeID is the completed challenge.
	Points       int64  `json:"points"`                  // Points awarded by this completion.
	TotalPoints  int64  `json:"total_points"`            // TotalPoints is the user's total after the award.
	BadgeAwarded string `json:"badge_awarded,omitempty"` // BadgeAwarded is set when the completion unlocked a badge.
}
