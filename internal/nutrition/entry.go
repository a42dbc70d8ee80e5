package nutrition

import "time"

type Adherence string

const (
	AdherenceExcellent Adherence = "excellent"
	AdherenceGood      Adherence = "good"
	AdherencePoor      Adherence = "poor"
	AdherenceFailed    Adherence = "failed"
	AdherenceNotSet    Adherence = "not-set"
)

type DayType string

const (
	DayTypeTraining DayType = "training"
	DayTypeCarbLoad DayType = "carb-load"
	DayTypeRest     DayType = "rest"
)

// meal slots are fixed, pattern analysis only ever looks at these four
var MealSlots = []string{"breakfast", "lunch", "dinner", "snacks"}

type MealRating struct {
	Rating int    `json:"rating"`
	Notes  string `json:"notes,omitempty"`
}

// DailyTrackingEntry is one athlete day, keyed by its ISO date. A rating of 0
// means the day was never rated, consumers treat it as absence. Saving always
// replaces the whole record, including nested meal ratings.
type DailyTrackingEntry struct {
	Date            string                `json:"date"`
	Rating          int                   `json:"rating"`
	Notes           string                `json:"notes,omitempty"`
	Adherence       Adherence             `json:"adherence"`
	PlannedCalories int                   `json:"plannedCalories"`
	ActualCalories  int                   `json:"actualCalories"`
	DayType         DayType               `json:"dayType"`
	Meals           map[string]MealRating `json:"meals,omitempty"`
	Timestamp       time.Time             `json:"timestamp"`
}

// Goals holds the free text nutrition targets shown on the dashboard.
// The aggregations never read them.
type Goals struct {
	WeeklyWeightTarget string    `json:"weeklyWeightTarget,omitempty"`
	MacroTargets       string    `json:"macroTargets,omitempty"`
	Notes              string    `json:"notes,omitempty"`
	Timestamp          time.Time `json:"timestamp"`
}
