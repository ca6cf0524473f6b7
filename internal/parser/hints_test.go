package parser

import (
	"testing"

	"flightcast-service/internal/domain/entity"
)

func testHints() *HintExtractor {
	return NewHintExtractor(testStore(), 1000, nopLogger{})
}

func TestExtract_BookingPage(t *testing.T) {
	h := testHints()
	text := "IndiGo 6E 508 Kolkata to Delhi\n" +
		"Departure: 06:05 Arrival: 08:25\n" +
		"₹5,890/adult\n" +
		"Lock this price for ₹179\n" +
		"Non-stop · 2h 20m\n" +
		"Baggage: 15 kg"

	hints := h.Extract(text)

	if len(hints.FlightNumbers) != 1 || hints.FlightNumbers[0] != "6E 508" {
		t.Errorf("FlightNumbers = %v, want [6E 508]", hints.FlightNumbers)
	}
	if hints.Airline != "IndiGo" {
		t.Errorf("Airline = %q, want IndiGo", hints.Airline)
	}
	if hints.DepartureAirport != "CCU" || hints.ArrivalAirport != "DEL" {
		t.Errorf("route = %s-%s, want CCU-DEL", hints.DepartureAirport, hints.ArrivalAirport)
	}
	if hints.DepartureTime != "06:05" || hints.ArrivalTime != "08:25" {
		t.Errorf("times = %s-%s", hints.DepartureTime, hints.ArrivalTime)
	}
	if hints.Duration != "2h 20m" {
		t.Errorf("Duration = %q, want 2h 20m", hints.Duration)
	}
	if hints.Stops != "Non Stop" {
		t.Errorf("Stops = %q, want Non Stop", hints.Stops)
	}
	if hints.Baggage != "15kg" {
		t.Errorf("Baggage = %q, want 15kg", hints.Baggage)
	}
	// The ₹179 lock fee must lose to the /adult fare
	if hints.SaverFare == nil || *hints.SaverFare != 5890 {
		t.Errorf("SaverFare = %v, want 5890", hints.SaverFare)
	}
	if got := hints.FaresByFlight["6E 508"]; got != 5890 {
		t.Errorf("FaresByFlight = %v, want 5890 for 6E 508", hints.FaresByFlight)
	}
}

func TestExtract_AirportTokensAndNames(t *testing.T) {
	h := testHints()
	hints := h.Extract("DEL to SIN via Abu Dhabi")
	want := []string{"DEL", "SIN", "AUH"}
	if len(hints.Airports) != len(want) {
		t.Fatalf("Airports = %v, want %v", hints.Airports, want)
	}
	for i := range want {
		if hints.Airports[i] != want[i] {
			t.Errorf("Airports[%d] = %q, want %q", i, hints.Airports[i], want[i])
		}
	}
	if hints.DepartureAirport != "DEL" || hints.ArrivalAirport != "AUH" {
		t.Errorf("route = %s-%s", hints.DepartureAirport, hints.ArrivalAirport)
	}
}

func TestExtract_FalsePositiveCodes(t *testing.T) {
	h := testHints()
	// MON/APR/THE shaped like codes, plus only one real airport: no route hint
	hints := h.Extract("THE flight MON 18 APR from DEL")
	if hints.HasAirports() {
		t.Errorf("Airports = %v, want fewer than 2", hints.Airports)
	}
}

func TestExtract_AmPmTimes(t *testing.T) {
	h := testHints()
	hints := h.Extract("DEL to BOM departs 9.30 pm and lands 11:45 PM")
	if hints.DepartureTime != "21:30" || hints.ArrivalTime != "23:45" {
		t.Errorf("times = %s-%s, want 21:30-23:45", hints.DepartureTime, hints.ArrivalTime)
	}
}

func TestExtract_MetadataDatesDiscarded(t *testing.T) {
	h := testHints()

	hints := h.Extract(`previous output was "departure_date": "05 Jan 2026" which is wrong`)
	if len(hints.Dates) != 0 {
		t.Errorf("Dates = %v, want none for pasted tool output", hints.Dates)
	}

	hints = h.Extract("Travel on 05 Jan 2026 from Delhi")
	if len(hints.Dates) != 1 || hints.DepartureDate != "05 Jan 2026" {
		t.Errorf("Dates = %v, DepartureDate = %q", hints.Dates, hints.DepartureDate)
	}
}

func TestExtract_FarePartitionPerFlight(t *testing.T) {
	h := testHints()
	text := "6E 508 morning flight ₹5,890/adult available\n" +
		"AI 302 evening flight ₹4,750/adult available"

	hints := h.Extract(text)
	if got := hints.FaresByFlight["6E 508"]; got != 5890 {
		t.Errorf("fare for 6E 508 = %d, want 5890", got)
	}
	if got := hints.FaresByFlight["AI 302"]; got != 4750 {
		t.Errorf("fare for AI 302 = %d, want 4750", got)
	}
	if hints.SaverFare == nil || *hints.SaverFare != 5890 {
		t.Errorf("SaverFare = %v, want 5890", hints.SaverFare)
	}
}

func TestExtract_FareWithoutFlights(t *testing.T) {
	h := testHints()

	// Below the floor and no /adult marker: first amount is the fallback
	hints := h.Extract("total ₹750 only")
	if hints.SaverFare == nil || *hints.SaverFare != 750 {
		t.Errorf("SaverFare = %v, want 750", hints.SaverFare)
	}

	// Floor skips the small lock fee
	hints = h.Extract("lock for ₹99, pay ₹4,500 later")
	if hints.SaverFare == nil || *hints.SaverFare != 4500 {
		t.Errorf("SaverFare = %v, want 4500", hints.SaverFare)
	}
}

func TestExtract_BaggageEmissionGuard(t *testing.T) {
	h := testHints()
	hints := h.Extract("emission of 220 kg estimated for this route")
	if hints.Baggage != "" {
		t.Errorf("Baggage = %q, want empty for emissions context", hints.Baggage)
	}
}

func TestFlightValidator(t *testing.T) {
	v := NewFlightValidator(testStore())

	valid, errs := v.Validate(nil)
	if valid || len(errs) != 1 {
		t.Errorf("Validate(nil) = %v %v", valid, errs)
	}

	f := entity.EmptyFlight("t1")
	valid, errs = v.Validate(f)
	if valid {
		t.Errorf("empty flight validated, errs = %v", errs)
	}

	f.DepartureAirport = "DEL"
	f.ArrivalAirport = "SIN"
	f.DepartureTime = "23:15"
	f.ArrivalTime = "06:15"
	valid, errs = v.Validate(f)
	if !valid {
		t.Errorf("complete flight rejected: %v", errs)
	}
}

func TestAirportValidator_ChainBreak(t *testing.T) {
	v := NewAirportValidator(testStore())
	f := entity.EmptyFlight("t2")
	f.DepartureAirport = "PRG"
	f.ArrivalAirport = "BLR"
	f.Segments = []entity.Segment{
		{DepartureAirport: "PRG", ArrivalAirport: "AUH"},
		{DepartureAirport: "DXB", ArrivalAirport: "BLR"},
	}

	errs := v.Check(f)
	if len(errs) != 1 {
		t.Fatalf("Check = %v, want one chain-break error", errs)
	}
	want := "Segment 2 departs DXB but segment 1 arrived AUH"
	if errs[0] != want {
		t.Errorf("Check error = %q, want %q", errs[0], want)
	}
}

func TestAirportValidator_SameAirportLeg(t *testing.T) {
	v := NewAirportValidator(testStore())
	f := entity.EmptyFlight("t3")
	f.DepartureAirport = "DEL"
	f.ArrivalAirport = "SIN"
	f.Segments = []entity.Segment{
		{DepartureAirport: "DEL", ArrivalAirport: "DEL"},
		{DepartureAirport: "DEL", ArrivalAirport: "SIN"},
	}

	errs := v.Check(f)
	if len(errs) != 1 {
		t.Fatalf("Check = %v, want one same-airport error", errs)
	}
	want := "Segment 1 departs and arrives at DEL"
	if errs[0] != want {
		t.Errorf("Check error = %q, want %q", errs[0], want)
	}
}

func TestIsSet(t *testing.T) {
	for _, s := range []string{"", "N/A", "n/a", "NULL", "None", " undefined "} {
		if isSet(s) {
			t.Errorf("isSet(%q) = true, want false", s)
		}
	}
	for _, s := range []string{"DEL", "09:00", "0"} {
		if !isSet(s) {
			t.Errorf("isSet(%q) = false, want true", s)
		}
	}
}
