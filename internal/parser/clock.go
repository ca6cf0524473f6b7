package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"flightcast-service/internal/refdata"
	"flightcast-service/pkg/logger"
)

const minutesPerDay = 24 * 60

var (
	clockRe    = regexp.MustCompile(`(?i)^(\d{1,2})[:.](\d{2})(?:\s*(am|pm))?$`)
	durationRe = regexp.MustCompile(`(?i)^(\d+)h\s*(\d+)?m?`)
)

// ParseClockMinutes parses an HH:MM / H.MM clock string, with an optional
// am/pm suffix, into minutes since midnight.
func ParseClockMinutes(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == "N/A" {
		return 0, false
	}
	m := clockRe.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	switch strings.ToLower(m[3]) {
	case "pm":
		if hour != 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, false
	}
	return hour*60 + minute, true
}

// FormatMinutes renders elapsed minutes as the "XhYm" human string.
func FormatMinutes(total int) string {
	return fmt.Sprintf("%dh %dm", total/60, total%60)
}

// ParseDurationMinutes parses an "XhYm" string back into minutes.
func ParseDurationMinutes(s string) (int, bool) {
	m := durationRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, false
	}
	hours, _ := strconv.Atoi(m[1])
	minutes := 0
	if m[2] != "" {
		minutes, _ = strconv.Atoi(m[2])
	}
	return hours*60 + minutes, true
}

// DurationEngine computes true elapsed flight time, arrival day offsets and
// layover ground time from clock strings. Timezone offsets come from the
// reference store; all results degrade to "N/A" / 0 on unparsable input.
type DurationEngine struct {
	ref    *refdata.Store
	logger logger.Logger
}

// NewDurationEngine creates a duration engine backed by the reference store.
func NewDurationEngine(ref *refdata.Store, log logger.Logger) *DurationEngine {
	return &DurationEngine{ref: ref, logger: log}
}

// Calculate computes the true elapsed time between a departure and arrival
// clock time, correcting for the timezone difference between the two
// airports. daysOffset shifts the arrival forward by whole days; when zero,
// an arrival clock earlier than departure is assumed to be next-day. When
// checkUltraLong is set, apparent durations over 24h are retried with one
// fewer day if that yields a plausible sub-24h result (single-segment sanity
// cap; disabled for whole multi-day journeys).
func (e *DurationEngine) Calculate(depTime, arrTime, depAirport, arrAirport string, daysOffset int, flightDate time.Time, checkUltraLong bool) string {
	dep, ok := ParseClockMinutes(depTime)
	if !ok {
		return "N/A"
	}
	arr, ok := ParseClockMinutes(arrTime)
	if !ok {
		return "N/A"
	}
	if daysOffset > 0 {
		arr += daysOffset * minutesPerDay
	} else if arr < dep {
		arr += minutesPerDay
	}

	depTz := e.ref.OffsetHours(depAirport, flightDate)
	arrTz := e.ref.OffsetHours(arrAirport, flightDate)
	tzDiffMinutes := int((arrTz - depTz) * 60)

	actual := (arr - dep) - tzDiffMinutes
	if checkUltraLong && actual > minutesPerDay {
		alt := actual - minutesPerDay
		if alt > 0 && alt < minutesPerDay {
			e.logger.Debug("Ultra-long duration corrected",
				"apparentMinutes", actual, "correctedMinutes", alt,
				"route", depAirport+"-"+arrAirport)
			actual = alt
		}
	}
	if actual < 0 {
		actual += minutesPerDay
	}
	return FormatMinutes(actual)
}

// DayOffset decides how many calendar days separate departure and arrival.
// A known duration is the most reliable discriminator; without one, clock
// arithmetic alone distinguishes a midnight crossing from a mere timezone
// difference.
func (e *DurationEngine) DayOffset(depTime, arrTime, durationStr, depAirport, arrAirport string, flightDate time.Time) int {
	dep, ok := ParseClockMinutes(depTime)
	if !ok {
		return 0
	}
	arr, ok := ParseClockMinutes(arrTime)
	if !ok {
		return 0
	}

	depTz := e.ref.OffsetHours(depAirport, flightDate)
	arrTz := e.ref.OffsetHours(arrAirport, flightDate)
	tzDiffHours := arrTz - depTz

	if durationStr != "" && durationStr != "N/A" {
		if durMinutes, ok := ParseDurationMinutes(durationStr); ok {
			depHours := float64(dep) / 60.0
			apparentGain := float64(durMinutes)/60.0 + tzDiffHours
			daysCrossed := int((depHours + apparentGain) / 24.0)
			if daysCrossed < 0 {
				return 0
			}
			return daysCrossed
		}
	}

	apparentDiffHours := float64(arr-dep) / 60.0
	if apparentDiffHours < -12 {
		return 1
	}
	return 0
}

// Layover computes ground time between a previous arrival and the next
// departure at the same airport. The two clocks share a timezone so no
// offset correction applies; daysBetween handles a layover that crosses
// midnight.
func (e *DurationEngine) Layover(prevArrTime, nextDepTime string, daysBetween int) string {
	arr, ok := ParseClockMinutes(prevArrTime)
	if !ok {
		return "N/A"
	}
	dep, ok := ParseClockMinutes(nextDepTime)
	if !ok {
		return "N/A"
	}
	if daysBetween > 0 {
		dep += daysBetween * minutesPerDay
	} else if dep < arr {
		dep += minutesPerDay
	}
	total := dep - arr
	if total < 0 {
		total += minutesPerDay
	}
	return FormatMinutes(total)
}
