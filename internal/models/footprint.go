package models

// Footprint is an estimate of a user's ecological footprint.
type Footprint struct {
	Result         float64 `json:"result"`
	Recommendation string  `json:"recommendation"`
}
