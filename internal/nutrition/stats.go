package nutrition

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/wandersoncferreira/marathon-tracker/internal/plan"
)

// ErrBadDateRange marks cycle date bounds that cannot be parsed or make no
// sense. Handlers catch it and fall back to empty stats instead of failing
// the whole dashboard.
var ErrBadDateRange = errors.New("bad cycle date range")

const daysPerWeek = 7

const (
	MsgWeeklyExcellent = "Excellent nutrition this week! Keep it up."
	MsgWeeklyGreatWork = "Great work, you are on track this week."
	MsgWeeklyProgress  = "Making progress, stay consistent."
	MsgWeeklyImprove   = "Nutrition needs to improve this week."
	MsgWeeklyNoData    = "No nutrition data tracked yet this week."

	MsgCycleOutstanding = "Outstanding adherence across the cycle!"
	MsgCycleSolid       = "Solid adherence, keep going."
	MsgCycleProgress    = "Good progress overall."
	MsgCycleTrackMore   = "Try to track your nutrition more consistently."
	MsgCycleQuality     = "Focus on the quality of your meals."
)

type WeeklyStats struct {
	AverageRating       float64 `json:"averageRating"`
	DaysTracked         int     `json:"daysTracked"`
	AdherencePercentage int     `json:"adherencePercentage"`
	OnTrack             bool    `json:"onTrack"`
	Message             string  `json:"message"`
}

type CycleStats struct {
	TotalDays           int     `json:"totalDays"`
	DaysTracked         int     `json:"daysTracked"`
	AverageRating       float64 `json:"averageRating"`
	ExcellentDays       int     `json:"excellentDays"`
	GoodDays            int     `json:"goodDays"`
	PoorDays            int     `json:"poorDays"`
	FailedDays          int     `json:"failedDays"`
	AdherencePercentage int     `json:"adherencePercentage"`
	OnTrack             bool    `json:"onTrack"`
	Message             string  `json:"message"`
}

type MealIssue struct {
	Date   string `json:"date"`
	Rating int    `json:"rating"`
	Notes  string `json:"notes,omitempty"`
}

type MealPattern struct {
	Meal      string      `json:"meal"`
	AvgRating float64     `json:"avgRating"`
	Count     int         `json:"count"`
	Issues    []MealIssue `json:"issues"`
}

type MealPatternSummary struct {
	MostProblematic *MealPattern  `json:"mostProblematic,omitempty"`
	BestPerforming  *MealPattern  `json:"bestPerforming,omitempty"`
	SortedMeals     []MealPattern `json:"sortedMeals"`
}

// EmptyWeeklyStats is what handlers show when there is nothing to aggregate
// or a recoverable aggregation problem occurred.
func EmptyWeeklyStats() WeeklyStats {
	return WeeklyStats{Message: MsgWeeklyNoData}
}

func EmptyCycleStats() CycleStats {
	return CycleStats{Message: MsgCycleTrackMore}
}

// ComputeWeeklyStats aggregates one week of tracking. Only entries with a
// rating above 0 count as tracked, an unrated day is the same as a missing
// one. The adherence denominator is always the full 7 day week, no matter
// how many entries were passed in.
func ComputeWeeklyStats(entries []DailyTrackingEntry) WeeklyStats {
	var ratingSum, validCount int
	for _, entry := range entries {
		if entry.Rating > 0 {
			ratingSum += entry.Rating
			validCount++
		}
	}

	if validCount == 0 {
		return EmptyWeeklyStats()
	}

	avgRating := round1(float64(ratingSum) / float64(validCount))
	adherencePct := roundPct(float64(validCount) / daysPerWeek * 100)

	// ladder is checked top-down, first match wins
	var message string
	switch {
	case avgRating >= 8 && validCount >= 6:
		message = MsgWeeklyExcellent
	case avgRating >= 7 && validCount >= 5:
		message = MsgWeeklyGreatWork
	case avgRating >= 5:
		message = MsgWeeklyProgress
	default:
		message = MsgWeeklyImprove
	}

	return WeeklyStats{
		AverageRating:       avgRating,
		DaysTracked:         validCount,
		AdherencePercentage: adherencePct,
		OnTrack:             avgRating >= 7 && validCount >= 5,
		Message:             message,
	}
}

// ComputeCycleStats aggregates the whole training cycle between the two ISO
// dates. Unlike the weekly view, every persisted entry counts as tracked here
// and rating 0 entries pull the average down, they just never land in any of
// the four rating buckets.
func ComputeCycleStats(startDate, endDate string, entries []DailyTrackingEntry) (CycleStats, error) {
	start, err := time.ParseInLocation(plan.DateLayout, startDate, time.UTC)
	if err != nil {
		return CycleStats{}, fmt.Errorf("%w: start date %q: %s", ErrBadDateRange, startDate, err)
	}
	end, err := time.ParseInLocation(plan.DateLayout, endDate, time.UTC)
	if err != nil {
		return CycleStats{}, fmt.Errorf("%w: end date %q: %s", ErrBadDateRange, endDate, err)
	}
	if end.Before(start) {
		return CycleStats{}, fmt.Errorf("%w: end %s before start %s", ErrBadDateRange, endDate, startDate)
	}

	totalDays := int(math.Ceil(end.Sub(start).Hours() / 24))

	stats := CycleStats{
		TotalDays:   totalDays,
		DaysTracked: len(entries),
	}

	var ratingSum int
	for _, entry := range entries {
		ratingSum += entry.Rating
		switch {
		case entry.Rating >= 8:
			stats.ExcellentDays++
		case entry.Rating >= 6:
			stats.GoodDays++
		case entry.Rating >= 4:
			stats.PoorDays++
		case entry.Rating > 0:
			stats.FailedDays++
		}
	}

	if len(entries) > 0 {
		stats.AverageRating = round1(float64(ratingSum) / float64(len(entries)))
	}
	if totalDays > 0 {
		stats.AdherencePercentage = roundPct(float64(stats.DaysTracked) / float64(totalDays) * 100)
	}
	stats.OnTrack = stats.AverageRating >= 7 && stats.AdherencePercentage >= 70

	switch {
	case stats.AverageRating >= 8 && stats.AdherencePercentage >= 80:
		stats.Message = MsgCycleOutstanding
	case stats.AverageRating >= 7 && stats.AdherencePercentage >= 70:
		stats.Message = MsgCycleSolid
	case stats.AverageRating >= 6:
		stats.Message = MsgCycleProgress
	case stats.AdherencePercentage < 50:
		stats.Message = MsgCycleTrackMore
	default:
		stats.Message = MsgCycleQuality
	}

	return stats, nil
}

// ComputeMealPatterns ranks the four meal slots by how well they were rated
// and surfaces the two most recent problem occurrences per meal.
func ComputeMealPatterns(entries []DailyTrackingEntry) MealPatternSummary {
	patterns := make([]MealPattern, 0, len(MealSlots))
	for _, meal := range MealSlots {
		pattern := MealPattern{Meal: meal, Issues: []MealIssue{}}
		var ratingSum int
		for _, entry := range entries {
			mealRating, ok := entry.Meals[meal]
			if !ok || mealRating.Rating <= 0 {
				continue
			}
			ratingSum += mealRating.Rating
			pattern.Count++
			if mealRating.Rating < 7 {
				pattern.Issues = append(pattern.Issues, MealIssue{
					Date:   entry.Date,
					Rating: mealRating.Rating,
					Notes:  mealRating.Notes,
				})
			}
		}
		if pattern.Count > 0 {
			pattern.AvgRating = round1(float64(ratingSum) / float64(pattern.Count))
		}
		// most recent issues first, keep two for display
		sort.SliceStable(pattern.Issues, func(i, j int) bool {
			return pattern.Issues[i].Date > pattern.Issues[j].Date
		})
		if len(pattern.Issues) > 2 {
			pattern.Issues = pattern.Issues[:2]
		}
		patterns = append(patterns, pattern)
	}

	// rated meals ascending by average, unrated ones go last
	sort.SliceStable(patterns, func(i, j int) bool {
		if (patterns[i].Count > 0) != (patterns[j].Count > 0) {
			return patterns[i].Count > 0
		}
		return patterns[i].AvgRating < patterns[j].AvgRating
	})

	summary := MealPatternSummary{SortedMeals: patterns}
	for i := range patterns {
		if patterns[i].Count == 0 {
			continue
		}
		if summary.MostProblematic == nil {
			summary.MostProblematic = &patterns[i]
		}
		summary.BestPerforming = &patterns[i]
	}
	return summary
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func roundPct(x float64) int {
	return int(math.Round(x))
}
