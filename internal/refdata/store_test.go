package refdata

import (
	"testing"
	"time"

	"flightcast-service/pkg/logger"
)

type nopLogger struct{}

func (nopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Fatal(msg string, keysAndValues ...interface{}) {}
func (nopLogger) With(keysAndValues ...interface{}) logger.Logger {
	return nopLogger{}
}

func TestStoreLookups(t *testing.T) {
	s := NewStore(nopLogger{})

	if !s.IsAirport("DEL") || !s.IsAirport("del") {
		t.Error("IsAirport(DEL) must be true regardless of case")
	}
	if s.IsAirport("ZZZ") {
		t.Error("IsAirport(ZZZ) = true, want false")
	}

	if name, ok := s.AirportName("CCU"); !ok || name != "Kolkata" {
		t.Errorf("AirportName(CCU) = %q %v", name, ok)
	}
	if got := s.CityName("DEL"); got != "Delhi" {
		t.Errorf("CityName(DEL) = %q", got)
	}
	if got := s.CityName("zzz"); got != "ZZZ" {
		t.Errorf("CityName(zzz) = %q, want the code passed through", got)
	}

	if got := s.AirlineName("AI"); got != "Air India" {
		t.Errorf("AirlineName(AI) = %q", got)
	}
	if got := s.AirlineName("ZX"); got != "ZX" {
		t.Errorf("AirlineName(ZX) = %q, want passthrough", got)
	}
	if !s.IsAirline("6E") {
		t.Error("IsAirline(6E) = false, want true")
	}

	if got := s.AircraftName("789"); got != "Boeing 787-9" {
		t.Errorf("AircraftName(789) = %q", got)
	}
	if got := s.AircraftName("Q400"); got != "Q400" {
		t.Errorf("AircraftName(Q400) = %q, want passthrough", got)
	}
}

func TestOffsetHours(t *testing.T) {
	s := NewStore(nopLogger{})
	jan := time.Date(2026, time.January, 5, 12, 0, 0, 0, time.UTC)
	jul := time.Date(2026, time.July, 5, 12, 0, 0, 0, time.UTC)

	if got := s.OffsetHours("DEL", jan); got != 5.5 {
		t.Errorf("OffsetHours(DEL) = %v, want 5.5", got)
	}
	if got := s.OffsetHours("SIN", jan); got != 8.0 {
		t.Errorf("OffsetHours(SIN) = %v, want 8", got)
	}

	// DST-aware: London is UTC in winter, +1 in summer
	if got := s.OffsetHours("LHR", jan); got != 0.0 {
		t.Errorf("OffsetHours(LHR, winter) = %v, want 0", got)
	}
	if got := s.OffsetHours("LHR", jul); got != 1.0 {
		t.Errorf("OffsetHours(LHR, summer) = %v, want 1", got)
	}

	if got := s.OffsetHours("ZZZ", jan); got != 0.0 {
		t.Errorf("OffsetHours(ZZZ) = %v, want 0 fallback", got)
	}
	if got := s.OffsetHours("", jan); got != 0.0 {
		t.Errorf("OffsetHours(empty) = %v, want 0", got)
	}
}

func TestNewStoreWithOverrides(t *testing.T) {
	s := NewStoreWithOverrides(
		map[string]Airport{
			"xyz": {Name: "Testville", TzName: "Asia/Kolkata"},
			"DEL": {Name: "Delhi Indira Gandhi", TzName: "Asia/Kolkata"},
		},
		map[string]string{"zx": "Zephyr Air"},
		nopLogger{},
	)

	if !s.IsAirport("XYZ") {
		t.Error("override airport XYZ not found")
	}
	if name, _ := s.AirportName("DEL"); name != "Delhi Indira Gandhi" {
		t.Errorf("AirportName(DEL) = %q, override must win", name)
	}
	if got := s.AirlineName("ZX"); got != "Zephyr Air" {
		t.Errorf("AirlineName(ZX) = %q", got)
	}
	// Embedded rows survive underneath the overlay
	if !s.IsAirport("CCU") {
		t.Error("embedded airport CCU lost after overlay")
	}
}

func TestAirportNames_LongestFirst(t *testing.T) {
	s := NewStore(nopLogger{})
	names := s.AirportNames()
	if len(names) == 0 {
		t.Fatal("no airport names")
	}
	for i := 1; i < len(names); i++ {
		if len(names[i].Name) > len(names[i-1].Name) {
			t.Fatalf("names not sorted longest-first at %d: %q after %q",
				i, names[i].Name, names[i-1].Name)
		}
	}
}
