package carbs

import "time"

// IntakeEntry records how many carbohydrate grams were actually consumed
// during one activity, keyed by the activity ID.
type IntakeEntry struct {
	ActivityID int64     `json:"activityId"`
	CarbGrams  int       `json:"carbGrams"`
	Notes      string    `json:"notes,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// Guidelines is the singleton supplementation config, read before every
// aggregation. Runs at or below MinDurationMinutes need no supplementation.
type Guidelines struct {
	CarbsPer30Min      float64   `json:"carbsPer30Min"`
	MinDurationMinutes int       `json:"minDurationMinutes"`
	Enabled            bool      `json:"enabled"`
	Timestamp          time.Time `json:"timestamp"`
}

// DefaultGuidelines is the built-in starting point, established on first use
// before any aggregation path runs.
func DefaultGuidelines() Guidelines {
	return Guidelines{
		CarbsPer30Min:      30.0,
		MinDurationMinutes: 60,
		Enabled:            true,
	}
}
