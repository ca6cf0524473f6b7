package usecase

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"flightcast-service/internal/domain/entity"
)

// The completion model's output is wire-loose: numbers arrive as strings,
// booleans as "true", fares with currency noise. These types absorb that at
// the decode boundary so the rest of the pipeline sees clean Go values.

type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*s = ""
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = flexString(str)
		return nil
	}
	// Number or bool where a string was expected
	*s = flexString(string(data))
	return nil
}

type flexInt int

func (n *flexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*n = 0
		return nil
	}
	var v int
	if err := json.Unmarshal(data, &v); err == nil {
		*n = flexInt(v)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*n = flexInt(int(f))
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		digits := strings.Map(func(r rune) rune {
			if r >= '0' && r <= '9' {
				return r
			}
			return -1
		}, str)
		if digits != "" {
			if v, err := strconv.Atoi(digits); err == nil {
				*n = flexInt(v)
				return nil
			}
		}
	}
	*n = 0
	return nil
}

type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	var v bool
	if err := json.Unmarshal(data, &v); err == nil {
		*b = flexBool(v)
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*b = flexBool(strings.EqualFold(str, "true") || str == "1")
		return nil
	}
	*b = false
	return nil
}

type llmSegment struct {
	Airline          flexString `json:"airline"`
	FlightNumber     flexString `json:"flight_number"`
	DepartureCity    flexString `json:"departure_city"`
	DepartureAirport flexString `json:"departure_airport"`
	DepartureTime    flexString `json:"departure_time"`
	DepartureDate    flexString `json:"departure_date"`
	ArrivalCity      flexString `json:"arrival_city"`
	ArrivalAirport   flexString `json:"arrival_airport"`
	ArrivalTime      flexString `json:"arrival_time"`
	Duration         flexString `json:"duration"`
	LayoverCity      flexString `json:"layover_city"`
	LayoverDuration  flexString `json:"layover_duration"`
	DaysOffset       flexInt    `json:"days_offset"`
}

type llmFlight struct {
	Airline              flexString   `json:"airline"`
	FlightNumber         flexString   `json:"flight_number"`
	DepartureCity        flexString   `json:"departure_city"`
	DepartureAirport     flexString   `json:"departure_airport"`
	DepartureDate        flexString   `json:"departure_date"`
	DepartureTime        flexString   `json:"departure_time"`
	ArrivalCity          flexString   `json:"arrival_city"`
	ArrivalAirport       flexString   `json:"arrival_airport"`
	ArrivalTime          flexString   `json:"arrival_time"`
	ArrivalNextDay       flexBool     `json:"arrival_next_day"`
	DaysOffset           flexInt      `json:"days_offset"`
	Duration             flexString   `json:"duration"`
	TotalJourneyDuration flexString   `json:"total_journey_duration"`
	Stops                flexString   `json:"stops"`
	Baggage              flexString   `json:"baggage"`
	Refundability        flexString   `json:"refundability"`
	SaverFare            *flexInt     `json:"saver_fare"`
	Segments             []llmSegment `json:"segments"`
}

// stripCodeFences removes markdown fencing and any preamble before the first
// JSON delimiter.
func stripCodeFences(content string) string {
	content = strings.TrimSpace(content)
	content = strings.ReplaceAll(content, "```json", "")
	content = strings.ReplaceAll(content, "```", "")
	content = strings.TrimSpace(content)
	objIdx := strings.IndexByte(content, '{')
	arrIdx := strings.IndexByte(content, '[')
	switch {
	case arrIdx >= 0 && (objIdx < 0 || arrIdx < objIdx):
		return content[arrIdx:]
	case objIdx >= 0:
		return content[objIdx:]
	}
	return content
}

// decodeSingleFlight parses one flight object from model output. Returns
// false when nothing usable parsed.
func decodeSingleFlight(content string) (*llmFlight, bool) {
	content = stripCodeFences(content)
	if content == "" {
		return nil, false
	}

	var f llmFlight
	if err := json.Unmarshal([]byte(content), &f); err == nil {
		return &f, true
	}

	// Truncated or trailing garbage: decode the first complete object.
	dec := json.NewDecoder(strings.NewReader(content))
	if err := dec.Decode(&f); err == nil {
		return &f, true
	}

	// An array where an object was expected: take the first element.
	if flights, ok := decodeFlightArray(content); ok && len(flights) > 0 {
		return &flights[0], true
	}
	return nil, false
}

// decodeFlightArray parses model output expected to be an array. Three
// recoverable shapes: a clean array, a bare object that should have been
// wrapped, and a stream of concatenated or truncated objects, from which
// every complete object is kept.
func decodeFlightArray(content string) ([]llmFlight, bool) {
	content = stripCodeFences(content)
	if content == "" {
		return nil, false
	}

	var flights []llmFlight
	if err := json.Unmarshal([]byte(content), &flights); err == nil {
		return flights, true
	}

	if strings.HasPrefix(content, "{") {
		// Bare object, or several objects back to back
		dec := json.NewDecoder(strings.NewReader(content))
		for {
			var f llmFlight
			if err := dec.Decode(&f); err != nil {
				break
			}
			flights = append(flights, f)
		}
		return flights, len(flights) > 0
	}

	// Truncated array: walk elements individually, keeping whatever decoded
	// before the cut.
	dec := json.NewDecoder(strings.NewReader(content))
	if tok, err := dec.Token(); err != nil || tok != json.Delim('[') {
		return nil, false
	}
	for dec.More() {
		var f llmFlight
		if err := dec.Decode(&f); err != nil {
			break
		}
		flights = append(flights, f)
	}
	return flights, len(flights) > 0
}

// toFlightEntity maps wire output onto the domain entity, defaulting every
// absent field to its unknown marker.
func toFlightEntity(w *llmFlight, id string) *entity.Flight {
	f := &entity.Flight{
		ID:                   id,
		Airline:              orNA(string(w.Airline)),
		FlightNumber:         orNA(string(w.FlightNumber)),
		DepartureCity:        orNA(string(w.DepartureCity)),
		DepartureAirport:     orNA(string(w.DepartureAirport)),
		DepartureDate:        orNA(string(w.DepartureDate)),
		DepartureTime:        orNA(string(w.DepartureTime)),
		ArrivalCity:          orNA(string(w.ArrivalCity)),
		ArrivalAirport:       orNA(string(w.ArrivalAirport)),
		ArrivalTime:          orNA(string(w.ArrivalTime)),
		ArrivalNextDay:       bool(w.ArrivalNextDay),
		DaysOffset:           int(w.DaysOffset),
		Duration:             orNA(string(w.Duration)),
		TotalJourneyDuration: orNA(string(w.TotalJourneyDuration)),
		Stops:                orNA(string(w.Stops)),
		Baggage:              orNA(string(w.Baggage)),
		Refundability:        orNA(string(w.Refundability)),
		Segments:             make([]entity.Segment, 0, len(w.Segments)),
		ParseErrors:          []string{},
	}
	if w.SaverFare != nil && *w.SaverFare > 0 {
		v := int(*w.SaverFare)
		f.SaverFare = &v
	}
	for _, s := range w.Segments {
		f.Segments = append(f.Segments, entity.Segment{
			Airline:          string(s.Airline),
			FlightNumber:     string(s.FlightNumber),
			DepartureCity:    string(s.DepartureCity),
			DepartureAirport: string(s.DepartureAirport),
			DepartureTime:    string(s.DepartureTime),
			DepartureDate:    string(s.DepartureDate),
			ArrivalCity:      string(s.ArrivalCity),
			ArrivalAirport:   string(s.ArrivalAirport),
			ArrivalTime:      string(s.ArrivalTime),
			Duration:         string(s.Duration),
			LayoverCity:      string(s.LayoverCity),
			LayoverDuration:  string(s.LayoverDuration),
			DaysOffset:       int(s.DaysOffset),
		})
	}
	return f
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
