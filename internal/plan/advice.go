package plan

// AdviceInput carries the cycle-level aggregates the advice ladder works on.
type AdviceInput struct {
	AvgDailyRating      float64
	AdherencePercentage int
	CarbCompliance      int
	CarbTracking        int
	DaysToRace          int
}

// Advice returns workout-adaptation hints selected by fixed threshold ladders,
// checked top-down, first match wins per category.
func Advice(in AdviceInput) []string {
	var hints []string

	switch {
	case in.DaysToRace <= 14:
		hints = append(hints, "Race is close: taper volume, keep intensity touches short.")
	case in.DaysToRace <= 42:
		hints = append(hints, "Peak phase: prioritize long runs with race-pace segments.")
	default:
		hints = append(hints, "Base phase: build weekly volume gradually.")
	}

	switch {
	case in.AvgDailyRating >= 7 && in.AdherencePercentage >= 70:
		hints = append(hints, "Nutrition is on track, keep the current routine.")
	case in.AvgDailyRating >= 5:
		hints = append(hints, "Nutrition is wobbling: plan meals the evening before.")
	default:
		hints = append(hints, "Nutrition adherence is low, fix that before adding training load.")
	}

	switch {
	case in.CarbTracking < 50:
		hints = append(hints, "Log in-run carbs on more long runs to make fueling data useful.")
	case in.CarbCompliance >= 80:
		hints = append(hints, "Fueling compliance is strong, rehearse the race-day plan as-is.")
	case in.CarbCompliance >= 60:
		hints = append(hints, "Fueling is close: add one extra gel on the longest run.")
	default:
		hints = append(hints, "Under-fueling long runs, raise intra-run carb intake.")
	}

	return hints
}
