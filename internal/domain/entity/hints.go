package entity

// Hints is the bag of regex-derived candidate facts mined from one input
// text. It is created fresh per extraction call, consumed by the reconciler,
// and discarded. Absence is expressed by zero values: an empty string or nil
// slice means the corresponding fact was not found.
type Hints struct {
	FlightNumbers    []string
	Airline          string
	Airports         []string
	DepartureAirport string
	ArrivalAirport   string
	Times            []string
	DepartureTime    string
	ArrivalTime      string
	Dates            []string
	DepartureDate    string
	Durations        []string
	Duration         string
	SaverFare        *int
	FaresByFlight    map[string]int
	Baggage          string
	Stops            string
}

// HasAirports reports whether at least two distinct airport candidates were
// found, i.e. enough to hint a route.
func (h Hints) HasAirports() bool {
	return len(h.Airports) >= 2
}
