package parser

import "testing"

func TestNormalize_Durations(t *testing.T) {
	n := NewTextNormalizer(testStore())
	tests := []struct{ in, want string }{
		{"2 hrs 30 mins", "2h 30m"},
		{"2 hours 30 minutes", "2h 30m"},
		{"5:45 hrs", "5h 45m"},
	}
	for _, tt := range tests {
		if got := n.Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalize_Currency(t *testing.T) {
	n := NewTextNormalizer(testStore())
	if got := n.Normalize("Rs. 5,890 per person"); got != "₹5,890 per person" {
		t.Errorf("Normalize = %q, want %q", got, "₹5,890 per person")
	}
	if got := n.Normalize("INR 4500 total"); got != "₹4500 total" {
		t.Errorf("Normalize = %q, want %q", got, "₹4500 total")
	}
}

func TestNormalize_CityAbbreviations(t *testing.T) {
	n := NewTextNormalizer(testStore())

	// Lowercase agent shorthand expands
	if got := n.Normalize("flight from del to bom tomorrow"); got != "flight from Delhi to Mumbai tomorrow" {
		t.Errorf("Normalize = %q", got)
	}

	// All-caps IATA codes survive untouched
	if got := n.Normalize("AI 302 DEL BOM 09:00 11:05"); got != "AI 302 DEL BOM 09:00 11:05" {
		t.Errorf("Normalize = %q, IATA codes must not expand", got)
	}
}

func TestNormalize_GluedTokens(t *testing.T) {
	n := NewTextNormalizer(testStore())

	// Glued airport pair splits when both halves are known
	got := n.Normalize("EY 156 E 18APR PRGAUH DK1 1120 1905")
	want := "EY 156 E 18 APR PRG AUH DK1 11:20 19:05"
	if got != want {
		t.Errorf("Normalize = %q, want %q", got, want)
	}
}

func TestNormalize_DayMonthAmbiguity(t *testing.T) {
	n := NewTextNormalizer(testStore())

	// APR is a month: split
	if got := n.Normalize("ticketed 18APR here"); got != "ticketed 18 APR here" {
		t.Errorf("Normalize = %q", got)
	}
	// MAR is a real airport (Maracaibo): leave glued
	if got := n.Normalize("gate 18MAR here"); got != "gate 18MAR here" {
		t.Errorf("Normalize = %q, airport-shadowed token must stay glued", got)
	}
}

func TestNormalize_GdsTimesNeedAirportContext(t *testing.T) {
	n := NewTextNormalizer(testStore())

	// No airport nearby: two 4-digit numbers are not times
	in := "invoice 1030 2045 paid"
	if got := n.Normalize(in); got != in {
		t.Errorf("Normalize = %q, numerics without airport context must not become times", got)
	}
}

func TestNormalize_AmPmGlue(t *testing.T) {
	n := NewTextNormalizer(testStore())
	if got := n.Normalize("arrives 10:30 PM+1 day"); got != "arrives 10:30 PM +1 day" {
		t.Errorf("Normalize = %q", got)
	}
	if got := n.Normalize("21:30+1 arrival"); got != "21:30 +1 arrival" {
		t.Errorf("Normalize = %q", got)
	}
}

func TestNormalize_StripsEmissions(t *testing.T) {
	n := NewTextNormalizer(testStore())
	got := n.Normalize("Non-stop flight Emissions estimate: 220 kg CO2e included")
	if got != "Non-stop flight included" {
		t.Errorf("Normalize = %q, want emissions text removed", got)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	n := NewTextNormalizer(testStore())
	raw := "del to bom Rs. 5,890  2 hrs 30 mins EY 156 E 18APR PRGAUH DK1 1120 1905"
	once := n.Normalize(raw)
	twice := n.Normalize(once)
	if once != twice {
		t.Errorf("Normalize not idempotent:\n once = %q\ntwice = %q", once, twice)
	}
}
