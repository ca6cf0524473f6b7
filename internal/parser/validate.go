package parser

import (
	"fmt"
	"strings"

	"flightcast-service/internal/domain/entity"
	"flightcast-service/internal/refdata"
)

// AirportValidator checks route coherence against reference data. All checks
// produce error strings, never hard failures; an unusual route is still a
// result.
type AirportValidator struct {
	ref *refdata.Store
}

func NewAirportValidator(ref *refdata.Store) *AirportValidator {
	return &AirportValidator{ref: ref}
}

// Check returns route-level problems: unknown codes, a flight or a leg
// departing and arriving at the same airport, broken segment chains, and a
// layover city that duplicates the endpoints it should sit between.
func (v *AirportValidator) Check(f *entity.Flight) []string {
	var errs []string

	for _, code := range []string{f.DepartureAirport, f.ArrivalAirport} {
		if isSet(code) && !v.ref.IsAirport(code) {
			errs = append(errs, fmt.Sprintf("Unknown airport code %s", code))
		}
	}

	if isSet(f.DepartureAirport) && f.DepartureAirport == f.ArrivalAirport {
		errs = append(errs, "Departure and arrival airports are identical")
	}

	for i, seg := range f.Segments {
		if isSet(seg.DepartureAirport) && seg.DepartureAirport == seg.ArrivalAirport {
			errs = append(errs, fmt.Sprintf(
				"Segment %d departs and arrives at %s", i+1, seg.DepartureAirport))
		}
	}

	for i := 1; i < len(f.Segments); i++ {
		prev, curr := f.Segments[i-1], f.Segments[i]
		if isSet(prev.ArrivalAirport) && isSet(curr.DepartureAirport) &&
			prev.ArrivalAirport != curr.DepartureAirport {
			errs = append(errs, fmt.Sprintf(
				"Segment %d departs %s but segment %d arrived %s",
				i+1, curr.DepartureAirport, i, prev.ArrivalAirport))
		}
		if isSet(curr.LayoverCity) &&
			(curr.LayoverCity == f.DepartureAirport || curr.LayoverCity == f.ArrivalAirport) {
			errs = append(errs, fmt.Sprintf(
				"Layover %s duplicates a journey endpoint", curr.LayoverCity))
		}
	}

	return errs
}

// FlightValidator checks that a flight carries the fields a downstream
// consumer cannot do without, plus per-segment completeness and route
// coherence. Validate never rejects a flight outright: it returns the
// verdict and the error list and leaves the caller to decide.
type FlightValidator struct {
	airports *AirportValidator
}

func NewFlightValidator(ref *refdata.Store) *FlightValidator {
	return &FlightValidator{airports: NewAirportValidator(ref)}
}

var essentialFields = []struct {
	get   func(*entity.Flight) string
	label string
}{
	{func(f *entity.Flight) string { return f.DepartureAirport }, "Departure airport/city"},
	{func(f *entity.Flight) string { return f.ArrivalAirport }, "Arrival airport/city"},
	{func(f *entity.Flight) string { return f.DepartureTime }, "Departure time"},
	{func(f *entity.Flight) string { return f.ArrivalTime }, "Arrival time"},
}

func (v *FlightValidator) Validate(f *entity.Flight) (bool, []string) {
	var errs []string
	if f == nil {
		return false, []string{"No flight data"}
	}

	for _, ess := range essentialFields {
		if !isSet(ess.get(f)) {
			errs = append(errs, ess.label+" could not be extracted")
		}
	}

	if len(f.Segments) > 1 {
		for i, seg := range f.Segments {
			hasAirports := seg.DepartureAirport != "" || seg.ArrivalAirport != ""
			hasTimes := seg.DepartureTime != "" || seg.ArrivalTime != ""
			if hasAirports && (seg.DepartureAirport == "" || seg.ArrivalAirport == "") {
				errs = append(errs, fmt.Sprintf("Segment %d has incomplete airport info", i+1))
			}
			if hasTimes && (seg.DepartureTime == "" || seg.ArrivalTime == "") {
				errs = append(errs, fmt.Sprintf("Segment %d has incomplete time info", i+1))
			}
		}
	}

	errs = append(errs, v.airports.Check(f)...)

	return len(errs) == 0, errs
}

// isSet reports whether a field holds an actual value rather than an
// unknown marker.
func isSet(s string) bool {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "N/A", "NULL", "NONE", "UNDEFINED":
		return false
	}
	return true
}
