package usecase

import (
	"encoding/json"
	"testing"
)

func TestStripCodeFences(t *testing.T) {
	tests := []struct{ in, want string }{
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"Here is the result: [{\"a\":1}]", `[{"a":1}]`},
		{`{"a":1}`, `{"a":1}`},
		{"no json at all", "no json at all"},
	}
	for _, tt := range tests {
		if got := stripCodeFences(tt.in); got != tt.want {
			t.Errorf("stripCodeFences(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDecodeSingleFlight(t *testing.T) {
	content := "```json\n" + `{
		"airline": "Air India",
		"flight_number": "AI 380",
		"departure_airport": "DEL",
		"arrival_airport": "SIN",
		"departure_time": "23:15",
		"arrival_time": "06:15",
		"arrival_next_day": "true",
		"days_offset": "1",
		"saver_fare": "₹5,890"
	}` + "\n```"

	f, ok := decodeSingleFlight(content)
	if !ok {
		t.Fatal("decodeSingleFlight failed")
	}
	if string(f.Airline) != "Air India" || string(f.FlightNumber) != "AI 380" {
		t.Errorf("decoded %q %q", f.Airline, f.FlightNumber)
	}
	if !bool(f.ArrivalNextDay) {
		t.Error("arrival_next_day string \"true\" must decode as true")
	}
	if int(f.DaysOffset) != 1 {
		t.Errorf("days_offset = %d, want 1", f.DaysOffset)
	}
	if f.SaverFare == nil || int(*f.SaverFare) != 5890 {
		t.Errorf("saver_fare = %v, want 5890", f.SaverFare)
	}
}

func TestDecodeSingleFlight_ArrayInput(t *testing.T) {
	f, ok := decodeSingleFlight(`[{"airline":"IndiGo"},{"airline":"Air India"}]`)
	if !ok || string(f.Airline) != "IndiGo" {
		t.Errorf("decodeSingleFlight = %v %v, want first element", f, ok)
	}
}

func TestDecodeSingleFlight_Garbage(t *testing.T) {
	if _, ok := decodeSingleFlight("sorry, I cannot extract that"); ok {
		t.Error("decodeSingleFlight on prose = ok, want failure")
	}
}

func TestDecodeFlightArray(t *testing.T) {
	flights, ok := decodeFlightArray(`[{"airline":"IndiGo"},{"airline":"Air India"}]`)
	if !ok || len(flights) != 2 {
		t.Fatalf("decodeFlightArray = %d flights ok=%v, want 2", len(flights), ok)
	}
	if string(flights[1].Airline) != "Air India" {
		t.Errorf("flights[1].Airline = %q", flights[1].Airline)
	}
}

func TestDecodeFlightArray_BareObject(t *testing.T) {
	flights, ok := decodeFlightArray(`{"airline":"IndiGo"}`)
	if !ok || len(flights) != 1 || string(flights[0].Airline) != "IndiGo" {
		t.Errorf("decodeFlightArray = %v ok=%v, want wrapped single object", flights, ok)
	}
}

func TestDecodeFlightArray_ConcatenatedObjects(t *testing.T) {
	flights, ok := decodeFlightArray(`{"airline":"IndiGo"}{"airline":"Air India"}`)
	if !ok || len(flights) != 2 {
		t.Errorf("decodeFlightArray = %d flights ok=%v, want 2", len(flights), ok)
	}
}

func TestDecodeFlightArray_TruncatedArray(t *testing.T) {
	content := `[{"airline":"IndiGo","flight_number":"6E 508"},{"airline":"Air`
	flights, ok := decodeFlightArray(content)
	if !ok || len(flights) != 1 {
		t.Fatalf("decodeFlightArray = %d flights ok=%v, want the 1 complete object", len(flights), ok)
	}
	if string(flights[0].FlightNumber) != "6E 508" {
		t.Errorf("flights[0].FlightNumber = %q", flights[0].FlightNumber)
	}
}

func TestFlexInt(t *testing.T) {
	var payload struct {
		A flexInt `json:"a"`
		B flexInt `json:"b"`
		C flexInt `json:"c"`
		D flexInt `json:"d"`
	}
	raw := `{"a": 5890, "b": "₹5,890", "c": 5890.0, "d": null}`
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		t.Fatal(err)
	}
	if payload.A != 5890 || payload.B != 5890 || payload.C != 5890 || payload.D != 0 {
		t.Errorf("flexInt = %d %d %d %d", payload.A, payload.B, payload.C, payload.D)
	}
}

func TestFlexString(t *testing.T) {
	var payload struct {
		A flexString `json:"a"`
		B flexString `json:"b"`
		C flexString `json:"c"`
	}
	raw := `{"a": "09:00", "b": 380, "c": null}`
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		t.Fatal(err)
	}
	if payload.A != "09:00" || payload.B != "380" || payload.C != "" {
		t.Errorf("flexString = %q %q %q", payload.A, payload.B, payload.C)
	}
}

func TestToFlightEntity_Defaults(t *testing.T) {
	var w llmFlight
	zero := flexInt(0)
	w.SaverFare = &zero

	f := toFlightEntity(&w, "id-1")
	if f.ID != "id-1" {
		t.Errorf("ID = %q", f.ID)
	}
	if f.Airline != "N/A" || f.DepartureAirport != "N/A" || f.Stops != "N/A" {
		t.Errorf("blank fields = %q %q %q, want N/A markers", f.Airline, f.DepartureAirport, f.Stops)
	}
	if f.SaverFare != nil {
		t.Errorf("SaverFare = %v, want nil for zero fare", f.SaverFare)
	}
	if f.Segments == nil || f.ParseErrors == nil {
		t.Error("Segments and ParseErrors must be non-nil")
	}
}

func TestToFlightEntity_Segments(t *testing.T) {
	w := llmFlight{
		Airline: "Etihad Airways",
		Segments: []llmSegment{
			{FlightNumber: "EY 156", DepartureAirport: "PRG", ArrivalAirport: "AUH"},
			{FlightNumber: "EY 236", DepartureAirport: "AUH", ArrivalAirport: "BLR", DaysOffset: 1},
		},
	}
	f := toFlightEntity(&w, "id-2")
	if len(f.Segments) != 2 {
		t.Fatalf("segments = %d, want 2", len(f.Segments))
	}
	if f.Segments[1].DaysOffset != 1 || f.Segments[1].DepartureAirport != "AUH" {
		t.Errorf("segment 2 = %+v", f.Segments[1])
	}
}
