package carbs

import (
	"errors"
	"math"
	"time"

	"github.com/wandersoncferreira/marathon-tracker/internal/activities"
	"github.com/wandersoncferreira/marathon-tracker/internal/plan"
)

// ErrNoGuidelines marks an aggregation attempted without established
// guidelines. That is a programmer error class problem, callers must create
// the defaults before any carb computation path runs.
var ErrNoGuidelines = errors.New("carb guidelines not configured")

const (
	LevelExcellent = "excellent"
	LevelGood      = "good"
	LevelFair      = "fair"
	LevelPoor      = "poor"
)

const (
	MsgCycleTrackMore = "Try to log your in-run carbs more consistently."
	MsgCycleExcellent = "Excellent fueling, right on target!"
	MsgCycleGood      = "Good fueling overall."
	MsgCycleFocus     = "Focus on hitting your carb targets."
)

type Compliance struct {
	Percentage int    `json:"percentage"`
	Level      string `json:"level"`
	Difference int    `json:"difference"`
}

// TrackingRecord is the per-activity join of a supplementation-eligible run
// with whatever intake was logged for it.
type TrackingRecord struct {
	ActivityID      int64       `json:"activityId"`
	ActivityName    string      `json:"activityName"`
	Date            string      `json:"date"`
	DurationMinutes float64     `json:"durationMinutes"`
	Expected        int         `json:"expected"`
	Tracked         bool        `json:"tracked"`
	Actual          int         `json:"actual"`
	Notes           string      `json:"notes,omitempty"`
	Compliance      *Compliance `json:"compliance,omitempty"`
}

type WeeklyCarbStats struct {
	WeekStart            string `json:"weekStart"`
	TotalActivities      int    `json:"totalActivities"`
	TrackedActivities    int    `json:"trackedActivities"`
	CompliantActivities  int    `json:"compliantActivities"`
	TotalExpected        int    `json:"totalExpected"`
	TotalActual          int    `json:"totalActual"`
	TrackingPercentage   int    `json:"trackingPercentage"`
	CompliancePercentage int    `json:"compliancePercentage"`
	OverallCompliance    int    `json:"overallCompliance"`
}

type CycleCarbStats struct {
	TotalActivities      int    `json:"totalActivities"`
	TrackedActivities    int    `json:"trackedActivities"`
	CompliantActivities  int    `json:"compliantActivities"`
	TotalExpected        int    `json:"totalExpected"`
	TotalActual          int    `json:"totalActual"`
	TrackingPercentage   int    `json:"trackingPercentage"`
	CompliancePercentage int    `json:"compliancePercentage"`
	OverallCompliance    int    `json:"overallCompliance"`
	Message              string `json:"message"`
}

func EmptyCycleStats() CycleCarbStats {
	return CycleCarbStats{Message: MsgCycleTrackMore}
}

// ExpectedCarbs returns the grams a run of the given duration calls for.
// The threshold only gates whether supplementation applies at all, the
// period count is always full 30 minute buckets of the whole duration.
func ExpectedCarbs(durationMinutes float64, guidelines *Guidelines) (int, error) {
	if guidelines == nil {
		return 0, ErrNoGuidelines
	}
	if durationMinutes <= float64(guidelines.MinDurationMinutes) {
		return 0, nil
	}
	periods := math.Floor(durationMinutes / 30)
	return int(math.Round(periods * guidelines.CarbsPer30Min)), nil
}

// ComplianceFor grades actual against expected intake. Nil when expected is 0,
// compliance is not applicable to a run that needed no supplementation.
func ComplianceFor(actual, expected int) *Compliance {
	if expected == 0 {
		return nil
	}

	percentage := int(math.Round(float64(actual) / float64(expected) * 100))

	// bands are inclusive at the lower bound, checked top-down
	var level string
	switch {
	case percentage >= 90:
		level = LevelExcellent
	case percentage >= 70:
		level = LevelGood
	case percentage >= 50:
		level = LevelFair
	default:
		level = LevelPoor
	}

	return &Compliance{
		Percentage: percentage,
		Level:      level,
		Difference: actual - expected,
	}
}

// BuildTracking joins supplementation-eligible runs (strictly longer than the
// guideline threshold) against their logged intake. Activities without a
// reported moving time end up with zero minutes and never pass the gate.
func BuildTracking(
	activityList []activities.Activity,
	intake map[int64]IntakeEntry,
	guidelines *Guidelines,
) ([]TrackingRecord, error) {
	if guidelines == nil {
		return nil, ErrNoGuidelines
	}

	records := make([]TrackingRecord, 0, len(activityList))
	for _, activity := range activityList {
		minutes := activity.MovingMinutes()
		if !activity.IsRun() || minutes <= float64(guidelines.MinDurationMinutes) {
			continue
		}

		expected, err := ExpectedCarbs(minutes, guidelines)
		if err != nil {
			return nil, err
		}

		record := TrackingRecord{
			ActivityID:      activity.ID,
			ActivityName:    activity.Name,
			Date:            activity.StartDate.UTC().Format(plan.DateLayout),
			DurationMinutes: minutes,
			Expected:        expected,
		}
		if entry, ok := intake[activity.ID]; ok {
			record.Tracked = true
			record.Actual = entry.CarbGrams
			record.Notes = entry.Notes
			record.Compliance = ComplianceFor(entry.CarbGrams, expected)
		}
		records = append(records, record)
	}

	return records, nil
}

// ComputeWeeklyStats buckets the records into Monday starting weeks, keyed by
// the week start ISO date.
func ComputeWeeklyStats(records []TrackingRecord) map[string]WeeklyCarbStats {
	weeks := make(map[string][]TrackingRecord)
	for _, record := range records {
		date, err := time.ParseInLocation(plan.DateLayout, record.Date, time.UTC)
		if err != nil {
			continue
		}
		weekStart := plan.WeekStart(date).Format(plan.DateLayout)
		weeks[weekStart] = append(weeks[weekStart], record)
	}

	stats := make(map[string]WeeklyCarbStats, len(weeks))
	for weekStart, weekRecords := range weeks {
		total, tracked, compliant, totalExpected, totalActual := aggregate(weekRecords)
		stats[weekStart] = WeeklyCarbStats{
			WeekStart:            weekStart,
			TotalActivities:      total,
			TrackedActivities:    tracked,
			CompliantActivities:  compliant,
			TotalExpected:        totalExpected,
			TotalActual:          totalActual,
			TrackingPercentage:   ratioPct(tracked, total),
			CompliancePercentage: ratioPct(compliant, tracked),
			OverallCompliance:    ratioPct(totalActual, totalExpected),
		}
	}
	return stats
}

// ComputeCycleStats runs the weekly formulas over the whole record set and
// grades the cycle. The tracking consistency check deliberately comes before
// the compliance bands, spotty logging trumps a good compliance number.
func ComputeCycleStats(records []TrackingRecord) CycleCarbStats {
	total, tracked, compliant, totalExpected, totalActual := aggregate(records)

	stats := CycleCarbStats{
		TotalActivities:      total,
		TrackedActivities:    tracked,
		CompliantActivities:  compliant,
		TotalExpected:        totalExpected,
		TotalActual:          totalActual,
		TrackingPercentage:   ratioPct(tracked, total),
		CompliancePercentage: ratioPct(compliant, tracked),
		OverallCompliance:    ratioPct(totalActual, totalExpected),
	}

	switch {
	case stats.TrackingPercentage < 50:
		stats.Message = MsgCycleTrackMore
	case stats.CompliancePercentage >= 80:
		stats.Message = MsgCycleExcellent
	case stats.CompliancePercentage >= 60:
		stats.Message = MsgCycleGood
	default:
		stats.Message = MsgCycleFocus
	}

	return stats
}

func aggregate(records []TrackingRecord) (total, tracked, compliant, totalExpected, totalActual int) {
	for _, record := range records {
		total++
		if !record.Tracked {
			continue
		}
		tracked++
		totalExpected += record.Expected
		totalActual += record.Actual
		if record.Compliance != nil && record.Compliance.Percentage >= 70 {
			compliant++
		}
	}
	return total, tracked, compliant, totalExpected, totalActual
}

func ratioPct(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}
