package parser

import (
	"testing"
	"time"
)

func TestCleanDateString(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Monday, 5th Jan 2026", "5 Jan 2026"},
		{"Sat, 18 Apr", "18 Apr"},
		{"30th January 2026", "30 January 2026"},
		{"Jan 5", "Jan 5"},
		{"Jan 5, 2026", "Jan 5 2026"},
		{"  18 Apr 26  ", "18 Apr 26"},
		{"N/A", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CleanDateString(tt.in); got != tt.want {
			t.Errorf("CleanDateString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseFlightDate(t *testing.T) {
	tests := []struct {
		in          string
		defaultYear int
		want        time.Time
		ok          bool
	}{
		{"18APR", 2026, date(2026, time.April, 18), true},
		{"18APR26", 0, date(2026, time.April, 18), true},
		{"18 APR", 2026, date(2026, time.April, 18), true},
		{"30 Jan 26", 0, date(2026, time.January, 30), true},
		{"30th January 2026", 0, date(2026, time.January, 30), true},
		{"Jan 30, 2026", 0, date(2026, time.January, 30), true},
		{"Mon, 5 Jan 2026", 0, date(2026, time.January, 5), true},
		{"2026-01-30", 0, date(2026, time.January, 30), true},
		{"5 Jan", 2026, date(2026, time.January, 5), true},
		{"30FEB", 2026, time.Time{}, false},
		{"31 Feb", 2026, time.Time{}, false},
		{"N/A", 2026, time.Time{}, false},
		{"tomorrow", 2026, time.Time{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseFlightDate(tt.in, tt.defaultYear)
		if ok != tt.ok {
			t.Errorf("ParseFlightDate(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && !got.Equal(tt.want) {
			t.Errorf("ParseFlightDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatFlightDate(t *testing.T) {
	if got := FormatFlightDate(date(2026, time.April, 18)); got != "18 Apr 26" {
		t.Errorf("FormatFlightDate = %q, want %q", got, "18 Apr 26")
	}
	if got := FormatFlightDate(time.Time{}); got != "N/A" {
		t.Errorf("FormatFlightDate(zero) = %q, want N/A", got)
	}
}

func TestExtractDates(t *testing.T) {
	text := "Departing 18 Apr 26 from Prague, returning 25APR via Abu Dhabi"
	got := ExtractDates(text, 2026)
	want := []string{"18 Apr 26", "25APR"}
	if len(got) != len(want) {
		t.Fatalf("ExtractDates = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ExtractDates[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestExtractDates_Dedupe(t *testing.T) {
	// Same calendar day spelled twice yields one entry; the glued GDS family
	// is scanned first and wins the duplicate.
	got := ExtractDates("fly 18 Apr 26, ticketed 18APR", 2026)
	if len(got) != 1 || got[0] != "18APR" {
		t.Errorf("ExtractDates = %v, want [18APR]", got)
	}
}

func TestDateInText(t *testing.T) {
	tests := []struct {
		date, text string
		want       bool
	}{
		{"18 Apr 26", "EY 156 E 18APR PRGAUH", true},
		{"18 Apr 26", "departing on 18 Apr 26 at noon", true},
		{"Apr 18", "we fly on April 18 this year", true},
		{"5 Jan 2026", "on the 5th of January", true},
		{"25 Dec 26", "no dates mentioned here", false},
		{"N/A", "18 Apr", false},
	}
	for _, tt := range tests {
		if got := DateInText(tt.date, tt.text); got != tt.want {
			t.Errorf("DateInText(%q, %q) = %v, want %v", tt.date, tt.text, got, tt.want)
		}
	}
}

func TestPickBestDate(t *testing.T) {
	tests := []struct {
		name       string
		llmDate    string
		regexDates []string
		text       string
		want       string
	}{
		{"regex date wins", "N/A", []string{"18 Apr"}, "fly 18 Apr", "18 Apr 26"},
		{"regex beats extractor", "25 Dec 26", []string{"18APR"}, "EY 156 18APR", "18 Apr 26"},
		{"extractor date verified in text", "18 Apr 26", nil, "departing 18 Apr 26", "18 Apr 26"},
		{"hallucinated date rejected", "25 Dec 26", nil, "no date in sight", "N/A"},
		{"bare day rejected", "18", nil, "seat 18 confirmed", "N/A"},
		{"empty input", "", nil, "anything", "N/A"},
	}
	for _, tt := range tests {
		if got := PickBestDate(tt.llmDate, tt.regexDates, tt.text, 2026); got != tt.want {
			t.Errorf("%s: PickBestDate = %q, want %q", tt.name, got, tt.want)
		}
	}
}
