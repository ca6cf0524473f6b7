package parser

import (
	"testing"
	"time"

	"flightcast-service/internal/refdata"
	"flightcast-service/pkg/logger"
)

// nopLogger discards everything; test output stays readable.
type nopLogger struct{}

func (nopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Fatal(msg string, keysAndValues ...interface{}) {}
func (nopLogger) With(keysAndValues ...interface{}) logger.Logger {
	return nopLogger{}
}

func testStore() *refdata.Store {
	return refdata.NewStore(nopLogger{})
}

func testEngine() *DurationEngine {
	return NewDurationEngine(testStore(), nopLogger{})
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestParseClockMinutes(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"09:00", 540, true},
		{"9.30", 570, true},
		{"23:59", 1439, true},
		{"11:30 pm", 1410, true},
		{"11:30 PM", 1410, true},
		{"12:15 am", 15, true},
		{"12:15 pm", 735, true},
		{"24:00", 0, false},
		{"09:60", 0, false},
		{"N/A", 0, false},
		{"", 0, false},
		{"morning", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseClockMinutes(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseClockMinutes(%q) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseDurationMinutes(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"2h 30m", 150, true},
		{"2h30m", 150, true},
		{"5h", 300, true},
		{"0h 45m", 45, true},
		{"N/A", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseDurationMinutes(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseDurationMinutes(%q) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFormatMinutes(t *testing.T) {
	if got := FormatMinutes(150); got != "2h 30m" {
		t.Errorf("FormatMinutes(150) = %q, want %q", got, "2h 30m")
	}
	if got := FormatMinutes(45); got != "0h 45m" {
		t.Errorf("FormatMinutes(45) = %q, want %q", got, "0h 45m")
	}
}

func TestCalculate_SameTimezone(t *testing.T) {
	e := testEngine()
	got := e.Calculate("09:00", "11:30", "DEL", "BOM", 0, date(2026, time.January, 5), true)
	if got != "2h 30m" {
		t.Errorf("Calculate DEL-BOM = %q, want %q", got, "2h 30m")
	}
}

func TestCalculate_AcrossTimezones(t *testing.T) {
	e := testEngine()

	// DEL +5:30 to SIN +8:00, overnight
	got := e.Calculate("23:15", "06:15", "DEL", "SIN", 1, date(2026, time.January, 5), true)
	if got != "4h 30m" {
		t.Errorf("Calculate DEL-SIN = %q, want %q", got, "4h 30m")
	}

	// PRG CEST +2 to AUH +4, same day
	got = e.Calculate("11:20", "19:05", "PRG", "AUH", 0, date(2026, time.April, 18), true)
	if got != "5h 45m" {
		t.Errorf("Calculate PRG-AUH = %q, want %q", got, "5h 45m")
	}

	// AUH +4 to BLR +5:30, arrival next day
	got = e.Calculate("21:35", "03:15", "AUH", "BLR", 1, date(2026, time.April, 18), true)
	if got != "4h 10m" {
		t.Errorf("Calculate AUH-BLR = %q, want %q", got, "4h 10m")
	}
}

func TestCalculate_ImplicitNextDay(t *testing.T) {
	e := testEngine()
	// No explicit offset, arrival clock earlier than departure
	got := e.Calculate("23:15", "06:15", "DEL", "SIN", 0, date(2026, time.January, 5), true)
	if got != "4h 30m" {
		t.Errorf("Calculate implicit next-day = %q, want %q", got, "4h 30m")
	}
}

func TestCalculate_UltraLongCorrection(t *testing.T) {
	e := testEngine()
	// An inflated two-day offset on a same-timezone hop comes back under 24h.
	got := e.Calculate("10:00", "09:00", "DEL", "BOM", 2, date(2026, time.January, 5), true)
	if got != "23h 0m" {
		t.Errorf("Calculate ultra-long corrected = %q, want %q", got, "23h 0m")
	}
	// Disabled for whole journeys: the multi-day total stands.
	got = e.Calculate("10:00", "09:00", "DEL", "BOM", 2, date(2026, time.January, 5), false)
	if got != "47h 0m" {
		t.Errorf("Calculate ultra-long uncorrected = %q, want %q", got, "47h 0m")
	}
}

func TestCalculate_UnparsableInput(t *testing.T) {
	e := testEngine()
	if got := e.Calculate("N/A", "11:30", "DEL", "BOM", 0, date(2026, time.January, 5), true); got != "N/A" {
		t.Errorf("Calculate with bad departure = %q, want N/A", got)
	}
}

func TestDayOffset(t *testing.T) {
	e := testEngine()
	d := date(2026, time.April, 18)

	// Known duration keeps a late evening departure on the same day.
	if got := e.DayOffset("11:20", "19:05", "5h 45m", "PRG", "AUH", d); got != 0 {
		t.Errorf("DayOffset PRG-AUH = %d, want 0", got)
	}

	// Late departure plus duration crosses midnight.
	if got := e.DayOffset("21:35", "03:15", "4h 10m", "AUH", "BLR", d); got != 1 {
		t.Errorf("DayOffset AUH-BLR = %d, want 1", got)
	}

	// No duration: a large negative clock swing means next-day arrival.
	if got := e.DayOffset("23:15", "06:15", "", "DEL", "SIN", d); got != 1 {
		t.Errorf("DayOffset DEL-SIN clock-only = %d, want 1", got)
	}

	// No duration, small positive swing: same day.
	if got := e.DayOffset("09:00", "11:30", "", "DEL", "BOM", d); got != 0 {
		t.Errorf("DayOffset DEL-BOM clock-only = %d, want 0", got)
	}

	if got := e.DayOffset("N/A", "11:30", "", "DEL", "BOM", d); got != 0 {
		t.Errorf("DayOffset with bad clock = %d, want 0", got)
	}
}

func TestLayover(t *testing.T) {
	e := testEngine()
	if got := e.Layover("19:05", "21:35", 0); got != "2h 30m" {
		t.Errorf("Layover = %q, want %q", got, "2h 30m")
	}
	// Crosses midnight without an explicit day gap
	if got := e.Layover("23:50", "01:20", 0); got != "1h 30m" {
		t.Errorf("Layover across midnight = %q, want %q", got, "1h 30m")
	}
	// Explicit full-day gap
	if got := e.Layover("19:05", "18:05", 1); got != "23h 0m" {
		t.Errorf("Layover with day gap = %q, want %q", got, "23h 0m")
	}
	if got := e.Layover("N/A", "21:35", 0); got != "N/A" {
		t.Errorf("Layover with bad clock = %q, want N/A", got)
	}
}
