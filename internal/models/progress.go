package models

// Dashboard summarises a user's progress.
type Dashboard struct {
	Username string   `json:"username"`
	Points   int64    `json:"points"`
	Badges   []string `json:"badges"`
}

// Stats is the per-day points series used by the progress chart.
type Stats struct {
	Labels []string `json:"labels"`
	Values []int64  `json:"values"`
}
