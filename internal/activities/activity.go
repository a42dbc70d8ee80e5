package activities

import (
	"strings"
	"time"
)

// Activity is a single workout as reported by the fitness platform,
// mirrored locally as-is.
type Activity struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	StartDate     time.Time `json:"start_date"`
	DistanceM     float64   `json:"distance"`
	MovingTimeSec int       `json:"moving_time"`
	ElapsedSec    int       `json:"elapsed_time"`
	AvgSpeed      float64   `json:"average_speed,omitempty"`
	AvgHeartRate  float64   `json:"average_heartrate,omitempty"`
	AvgWatts      float64   `json:"average_watts,omitempty"`
}

func (a Activity) IsRun() bool {
	return strings.EqualFold(a.Type, "run")
}

// MovingMinutes returns the moving time in minutes; 0 when the platform
// did not report a moving time for this activity.
func (a Activity) MovingMinutes() float64 {
	if a.MovingTimeSec <= 0 {
		return 0
	}
	return float64(a.MovingTimeSec) / 60.0
}
