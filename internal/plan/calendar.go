package plan

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// DateLayout is the ISO date format used for all date-keyed records and API params.
const DateLayout = "2006-01-02"

var ErrRaceBeforeStart = errors.New("race date before plan start date")

// Calendar holds the training cycle bounds. It is loaded once at startup from
// config and passed explicitly to whoever needs date-range bounds; there is no
// ambient global calendar.
type Calendar struct {
	StartDate time.Time
	RaceDate  time.Time
}

func NewCalendar(startDate, raceDate string) (*Calendar, error) {
	start, err := time.ParseInLocation(DateLayout, startDate, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("parse plan start date: %w", err)
	}
	race, err := time.ParseInLocation(DateLayout, raceDate, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("parse race date: %w", err)
	}
	if race.Before(start) {
		return nil, ErrRaceBeforeStart
	}
	return &Calendar{
		StartDate: start,
		RaceDate:  race,
	}, nil
}

// TotalDays is the training cycle length in days, not the count of tracked entries.
func (c *Calendar) TotalDays() int {
	return int(math.Ceil(c.RaceDate.Sub(c.StartDate).Hours() / 24))
}

func (c *Calendar) DaysToRace(now time.Time) int {
	days := int(math.Ceil(c.RaceDate.Sub(now).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}

func (c *Calendar) StartDateISO() string {
	return c.StartDate.Format(DateLayout)
}

func (c *Calendar) RaceDateISO() string {
	return c.RaceDate.Format(DateLayout)
}

// WeekStart returns the Monday of the week containing t, at midnight UTC.
// Sunday maps back 6 days, any other weekday maps back weekday-1 days.
func WeekStart(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := int(day.Weekday()) - 1
	if day.Weekday() == time.Sunday {
		offset = 6
	}
	return day.AddDate(0, 0, -offset)
}
