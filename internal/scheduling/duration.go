package scheduling

import (
	"time"

	"github.com/flownote/flownote/internal/domain/entities"
)

// Block lengths in hours per effort category.
const (
	durationSmall  = 0.5
	durationMedium = 1.5
	durationLarge  = 3.0
)

// MinBlockHours is the floor for any block duration; resize can never shrink
// a block below fifteen minutes.
const MinBlockHours = 0.25

// EffortDuration maps an effort category to a block length in hours. A nil or
// unrecognized effort falls back to the medium duration; known reports whether
// the input was recognized so the caller can log a diagnostic. Falling back is
// never an error.
func EffortDuration(effort *entities.Effort) (hours float64, known bool) {
	if effort == nil {
		return durationMedium, false
	}
	switch *effort {
	case entities.EffortSmall:
		return durationSmall, true
	case entities.EffortMedium:
		return durationMedium, true
	case entities.EffortLarge:
		return durationLarge, true
	default:
		return durationMedium, false
	}
}

func hoursToDuration(hours float64) time.Duration {
	return time.Duration(hours * float64(time.Hour))
}

// roundToQuarter rounds a minute count to the nearest quarter hour, half up.
func roundToQuarter(minutes int) int {
	return ((minutes + 7) / 15) * 15
}

func dayMidnight(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
}
