package parser

import (
	"strings"
	"testing"
)

func testGdsParser() *GdsParser {
	return NewGdsParser(testStore(), testEngine(), 2026, nopLogger{})
}

func TestIsGds(t *testing.T) {
	p := testGdsParser()

	gds := []string{
		"EY 156 E 18APR PRGAUH DK1 1120 1905 18APR E 0 789 M SEE RTSVC",
		"QR007/Y/12MAR/CCUDOH/0055/0310",
		"1. AI 302 Y 05JAN DEL BOM 0900 1105",
	}
	for _, text := range gds {
		if !p.IsGds(text) {
			t.Errorf("IsGds(%q) = false, want true", text)
		}
	}

	prose := []string{
		"I want to fly from Delhi to Mumbai tomorrow morning",
		"Please book the cheapest ticket for two adults",
		"Meeting at terminal, bring the printout",
	}
	for _, text := range prose {
		if p.IsGds(text) {
			t.Errorf("IsGds(%q) = true, want false", text)
		}
	}
}

func TestParse_AmadeusConnection(t *testing.T) {
	p := testGdsParser()
	text := "EY 156 E 18APR 6*PRGAUH DK1 1120 1905 18APR E 0 789 M SEE RTSVC\n" +
		"EY 236 E 18APR 6*AUHBLR DK1 2135 0315+1 19APR E 0 32Q M SEE RTSVC"

	flights := p.Parse(text)
	if len(flights) != 1 {
		t.Fatalf("Parse returned %d flights, want 1", len(flights))
	}
	f := flights[0]

	if len(f.Segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(f.Segments))
	}

	s1, s2 := f.Segments[0], f.Segments[1]

	if s1.FlightNumber != "EY 156" || s1.DepartureAirport != "PRG" || s1.ArrivalAirport != "AUH" {
		t.Errorf("segment 1 = %s %s-%s", s1.FlightNumber, s1.DepartureAirport, s1.ArrivalAirport)
	}
	if s1.DepartureTime != "11:20" || s1.ArrivalTime != "19:05" {
		t.Errorf("segment 1 times = %s-%s", s1.DepartureTime, s1.ArrivalTime)
	}
	if s1.Duration != "5h 45m" {
		t.Errorf("segment 1 duration = %q, want %q", s1.Duration, "5h 45m")
	}
	if s1.DaysOffset != 0 {
		t.Errorf("segment 1 days offset = %d, want 0", s1.DaysOffset)
	}
	if s1.DepartureDate != "18 Apr 26" {
		t.Errorf("segment 1 date = %q, want %q", s1.DepartureDate, "18 Apr 26")
	}
	if s1.Aircraft != "Boeing 787-9" {
		t.Errorf("segment 1 aircraft = %q, want %q", s1.Aircraft, "Boeing 787-9")
	}
	if s1.Airline != "Etihad Airways" {
		t.Errorf("segment 1 airline = %q", s1.Airline)
	}
	if s1.BookingClass != "E" {
		t.Errorf("segment 1 booking class = %q, want E", s1.BookingClass)
	}

	if s2.DepartureAirport != "AUH" || s2.ArrivalAirport != "BLR" {
		t.Errorf("segment 2 route = %s-%s", s2.DepartureAirport, s2.ArrivalAirport)
	}
	if s2.DaysOffset != 1 {
		t.Errorf("segment 2 days offset = %d, want 1", s2.DaysOffset)
	}
	if s2.Duration != "4h 10m" {
		t.Errorf("segment 2 duration = %q, want %q", s2.Duration, "4h 10m")
	}
	if s2.LayoverDuration != "2h 30m" || s2.LayoverCity != "AUH" {
		t.Errorf("segment 2 layover = %q at %q", s2.LayoverDuration, s2.LayoverCity)
	}
	if s2.Aircraft != "Airbus A321neo" {
		t.Errorf("segment 2 aircraft = %q", s2.Aircraft)
	}
	if s2.AccumulatedArrDays != 1 {
		t.Errorf("segment 2 accumulated arrival days = %d, want 1", s2.AccumulatedArrDays)
	}

	if f.DepartureAirport != "PRG" || f.ArrivalAirport != "BLR" {
		t.Errorf("flight route = %s-%s", f.DepartureAirport, f.ArrivalAirport)
	}
	if f.Stops != "1 Stop via AUH" {
		t.Errorf("flight stops = %q, want %q", f.Stops, "1 Stop via AUH")
	}
	if f.Duration != "12h 25m" {
		t.Errorf("flight duration = %q, want %q", f.Duration, "12h 25m")
	}
	if !f.ArrivalNextDay || f.DaysOffset != 1 {
		t.Errorf("flight offset = %d nextDay %v, want 1 true", f.DaysOffset, f.ArrivalNextDay)
	}
	if f.DepartureDate != "18 Apr 26" {
		t.Errorf("flight date = %q", f.DepartureDate)
	}
	if !f.IsValid {
		t.Errorf("flight invalid: %v", f.ParseErrors)
	}
}

func TestParse_TailLessAmadeusLines(t *testing.T) {
	// Lines ending at the arrival date, with no E/O flag or equipment code,
	// must not bleed into the E of the next line's airline code.
	p := testGdsParser()
	text := "EY 156 E 18APR PRGAUH DK1 1120 1905 18APR\n" +
		"EY 236 E 18APR AUHBLR DK1 2135 0315+1 19APR"

	flights := p.Parse(text)
	if len(flights) != 1 {
		t.Fatalf("Parse returned %d flights, want 1", len(flights))
	}
	f := flights[0]
	if len(f.Segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(f.Segments))
	}
	s2 := f.Segments[1]
	if s2.FlightNumber != "EY 236" || s2.DepartureAirport != "AUH" || s2.ArrivalAirport != "BLR" {
		t.Errorf("segment 2 = %s %s-%s, want EY 236 AUH-BLR",
			s2.FlightNumber, s2.DepartureAirport, s2.ArrivalAirport)
	}
	if f.Duration != "12h 25m" {
		t.Errorf("flight duration = %q, want %q", f.Duration, "12h 25m")
	}
}

func TestParse_SlashFormat(t *testing.T) {
	p := testGdsParser()
	flights := p.Parse("QR007/Y/12MAR/CCUDOH/0055/0310")
	if len(flights) != 1 {
		t.Fatalf("Parse returned %d flights, want 1", len(flights))
	}
	f := flights[0]
	if len(f.Segments) != 1 {
		t.Fatalf("got %d segments, want 1", len(f.Segments))
	}
	s := f.Segments[0]
	if s.FlightNumber != "QR 007" || s.DepartureAirport != "CCU" || s.ArrivalAirport != "DOH" {
		t.Errorf("segment = %s %s-%s", s.FlightNumber, s.DepartureAirport, s.ArrivalAirport)
	}
	if s.DepartureTime != "00:55" || s.ArrivalTime != "03:10" {
		t.Errorf("segment times = %s-%s", s.DepartureTime, s.ArrivalTime)
	}
	if s.Duration != "4h 45m" {
		t.Errorf("segment duration = %q, want %q", s.Duration, "4h 45m")
	}
	if s.DepartureDate != "12 Mar 26" {
		t.Errorf("segment date = %q, want %q", s.DepartureDate, "12 Mar 26")
	}
	if f.Airline != "Qatar Airways" {
		t.Errorf("airline = %q", f.Airline)
	}
	if f.Stops != "Non Stop" {
		t.Errorf("stops = %q, want Non Stop", f.Stops)
	}
}

func TestParse_RoundTripSections(t *testing.T) {
	p := testGdsParser()
	text := "ROUND TRIP\n" +
		"OUTBOUND\n" +
		"EY 156 E 18APR PRGAUH DK1 1120 1905\n" +
		"INBOUND\n" +
		"EY 155 E 25APR AUHPRG DK1 1045 1500"

	flights := p.Parse(text)
	if len(flights) != 2 {
		t.Fatalf("Parse returned %d flights, want 2", len(flights))
	}
	if flights[0].TripType != "RT" || flights[1].TripType != "RT" {
		t.Errorf("trip types = %s, %s, want RT, RT", flights[0].TripType, flights[1].TripType)
	}
	if flights[0].DepartureAirport != "PRG" || flights[1].DepartureAirport != "AUH" {
		t.Errorf("departures = %s, %s", flights[0].DepartureAirport, flights[1].DepartureAirport)
	}
	if flights[1].DepartureDate != "25 Apr 26" {
		t.Errorf("return date = %q, want %q", flights[1].DepartureDate, "25 Apr 26")
	}
}

func TestParse_GenericFallback(t *testing.T) {
	p := testGdsParser()
	flights := p.Parse("AI 302 DEL BOM 0900 1105 05JAN")
	if len(flights) != 1 {
		t.Fatalf("Parse returned %d flights, want 1", len(flights))
	}
	f := flights[0]
	s := f.Segments[0]
	if s.DepartureAirport != "DEL" || s.ArrivalAirport != "BOM" {
		t.Errorf("route = %s-%s", s.DepartureAirport, s.ArrivalAirport)
	}
	if s.Duration != "2h 5m" {
		t.Errorf("duration = %q, want %q", s.Duration, "2h 5m")
	}
	if s.DepartureDate != "05 Jan 26" {
		t.Errorf("date = %q, want %q", s.DepartureDate, "05 Jan 26")
	}
	// Generic lines carry no trustworthy booking class; default applies.
	if s.BookingClass != "Y" {
		t.Errorf("booking class = %q, want Y", s.BookingClass)
	}
}

func TestParse_NoDateStaysUnknown(t *testing.T) {
	p := testGdsParser()
	flights := p.Parse("AI 302 DEL BOM 0900 1105")
	if len(flights) != 1 {
		t.Fatalf("Parse returned %d flights, want 1", len(flights))
	}
	if got := flights[0].Segments[0].DepartureDate; got != "N/A" {
		t.Errorf("date = %q, want N/A when the text has none", got)
	}
}

func TestParse_PnrAndBaggage(t *testing.T) {
	p := testGdsParser()
	text := "RLOC: X4B2XS\n" +
		"EY 156 E 18APR PRGAUH DK1 1120 1905\n" +
		"BAG 30KG"

	flights := p.Parse(text)
	if len(flights) != 1 {
		t.Fatalf("Parse returned %d flights, want 1", len(flights))
	}
	if flights[0].PNR != "X4B2XS" {
		t.Errorf("PNR = %q, want X4B2XS", flights[0].PNR)
	}
	if flights[0].Baggage != "30kg" {
		t.Errorf("baggage = %q, want 30kg", flights[0].Baggage)
	}
}

func TestParse_Fare(t *testing.T) {
	p := testGdsParser()
	text := "EY 156 E 18APR PRGAUH DK1 1120 1905\nTOTAL INR 45,230"
	flights := p.Parse(text)
	if len(flights) != 1 {
		t.Fatalf("Parse returned %d flights, want 1", len(flights))
	}
	if flights[0].SaverFare == nil || *flights[0].SaverFare != 45230 {
		t.Errorf("fare = %v, want 45230", flights[0].SaverFare)
	}
}

func TestParse_RejectsImplausibleAirports(t *testing.T) {
	p := testGdsParser()
	// THE/AND are known false positives, never airports
	flights := p.Parse("ZZ 999 E 18APR THEAND DK1 1120 1905")
	if len(flights) != 0 {
		t.Errorf("Parse = %d flights, want 0 for false-positive codes", len(flights))
	}
}

func TestPlausibleAirport_UnknownRegional(t *testing.T) {
	p := testGdsParser()
	// Unknown but shaped like an airport: regional fields must still parse
	if !p.plausibleAirport("QWX") {
		t.Error("plausibleAirport(QWX) = false, want true")
	}
	if p.plausibleAirport("APR") {
		t.Error("plausibleAirport(APR) = true, month must be rejected")
	}
	if p.plausibleAirport("A1B") {
		t.Error("plausibleAirport(A1B) = true, want false")
	}
}

func TestMarkerDays(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"+1", 1}, {" +1", 1}, {"/2", 2}, {"", 0},
	}
	for _, tt := range tests {
		if got := markerDays(tt.in); got != tt.want {
			t.Errorf("markerDays(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestDetectTripType(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ROUND TRIP FARE", "RT"},
		{"ONE WAY ONLY", "OW"},
		{"MULTI-CITY ITINERARY", "MC"},
		{"NOTHING SPECIAL", "OW"},
	}
	for _, tt := range tests {
		if got := detectTripType(strings.ToUpper(tt.in)); got != tt.want {
			t.Errorf("detectTripType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
