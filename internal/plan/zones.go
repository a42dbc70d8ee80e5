package plan

import (
	"fmt"
	"strconv"
	"strings"
)

type PaceZone string

const (
	ZoneRecovery PaceZone = "recovery"
	ZoneEasy     PaceZone = "easy"
	ZoneSteady   PaceZone = "steady"
	ZoneTempo    PaceZone = "tempo"
	ZoneInterval PaceZone = "interval"
)

// PaceZones classifies run paces relative to a configured threshold pace.
type PaceZones struct {
	thresholdSecPerKm float64
}

// NewPaceZones takes the threshold pace as "min:sec" per kilometer, e.g. "4:30".
func NewPaceZones(thresholdPace string) (*PaceZones, error) {
	parts := strings.Split(thresholdPace, ":")
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid threshold pace %q, expected min:sec", thresholdPace)
	}
	minutes, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil, fmt.Errorf("invalid threshold pace minutes %q: %w", parts[0], err)
	}
	seconds, err := strconv.Atoi(parts[1])
	if err != nil || seconds < 0 || seconds > 59 {
		return nil, fmt.Errorf("invalid threshold pace seconds %q", parts[1])
	}
	return &PaceZones{
		thresholdSecPerKm: float64(minutes*60 + seconds),
	}, nil
}

// ClassifyPace maps an average speed in meters per second to a pace zone.
// Zone bands are ratios of the run pace to the threshold pace, checked top-down.
func (pz *PaceZones) ClassifyPace(metersPerSec float64) PaceZone {
	if metersPerSec <= 0 {
		return ZoneRecovery
	}
	secPerKm := 1000.0 / metersPerSec
	ratio := secPerKm / pz.thresholdSecPerKm

	switch {
	case ratio >= 1.35:
		return ZoneRecovery
	case ratio >= 1.2:
		return ZoneEasy
	case ratio >= 1.05:
		return ZoneSteady
	case ratio >= 0.97:
		return ZoneTempo
	default:
		return ZoneInterval
	}
}
