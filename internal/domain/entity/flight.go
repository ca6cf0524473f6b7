package entity

// Segment represents one physical flight leg within an itinerary.
type Segment struct {
	Airline            string `json:"airline" bson:"airline"`
	AirlineCode        string `json:"airline_code,omitempty" bson:"airlineCode,omitempty"`
	FlightNumber       string `json:"flight_number" bson:"flightNumber"`
	BookingClass       string `json:"booking_class,omitempty" bson:"bookingClass,omitempty"`
	DepartureAirport   string `json:"departure_airport" bson:"departureAirport"`
	DepartureCity      string `json:"departure_city" bson:"departureCity"`
	DepartureTime      string `json:"departure_time" bson:"departureTime"`
	DepartureDate      string `json:"departure_date,omitempty" bson:"departureDate,omitempty"`
	ArrivalAirport     string `json:"arrival_airport" bson:"arrivalAirport"`
	ArrivalCity        string `json:"arrival_city" bson:"arrivalCity"`
	ArrivalTime        string `json:"arrival_time" bson:"arrivalTime"`
	Aircraft           string `json:"aircraft,omitempty" bson:"aircraft,omitempty"`
	DaysOffset         int    `json:"days_offset" bson:"daysOffset"`
	Duration           string `json:"duration" bson:"duration"`
	LayoverDuration    string `json:"layover_duration,omitempty" bson:"layoverDuration,omitempty"`
	LayoverCity        string `json:"layover_city,omitempty" bson:"layoverCity,omitempty"`
	AccumulatedDepDays int    `json:"accumulated_dep_days" bson:"accumulatedDepDays"`
	AccumulatedArrDays int    `json:"accumulated_arr_days" bson:"accumulatedArrDays"`
}

// Flight is one directional itinerary, possibly multi-segment. The top-level
// route and time fields are a derived view over the first segment's departure
// and the last segment's arrival.
type Flight struct {
	ID                   string    `json:"id" bson:"_id"`
	PNR                  string    `json:"pnr,omitempty" bson:"pnr,omitempty"`
	TripType             string    `json:"trip_type,omitempty" bson:"tripType,omitempty"`
	Airline              string    `json:"airline" bson:"airline"`
	FlightNumber         string    `json:"flight_number" bson:"flightNumber"`
	DepartureCity        string    `json:"departure_city" bson:"departureCity"`
	DepartureAirport     string    `json:"departure_airport" bson:"departureAirport"`
	DepartureDate        string    `json:"departure_date" bson:"departureDate"`
	DepartureTime        string    `json:"departure_time" bson:"departureTime"`
	ArrivalCity          string    `json:"arrival_city" bson:"arrivalCity"`
	ArrivalAirport       string    `json:"arrival_airport" bson:"arrivalAirport"`
	ArrivalTime          string    `json:"arrival_time" bson:"arrivalTime"`
	ArrivalNextDay       bool      `json:"arrival_next_day" bson:"arrivalNextDay"`
	DaysOffset           int       `json:"days_offset" bson:"daysOffset"`
	Duration             string    `json:"duration" bson:"duration"`
	TotalJourneyDuration string    `json:"total_journey_duration" bson:"totalJourneyDuration"`
	Stops                string    `json:"stops" bson:"stops"`
	Baggage              string    `json:"baggage" bson:"baggage"`
	Refundability        string    `json:"refundability" bson:"refundability"`
	SaverFare            *int      `json:"saver_fare" bson:"saverFare"`
	Segments             []Segment `json:"segments" bson:"segments"`
	IsValid              bool      `json:"is_valid" bson:"isValid"`
	ParseErrors          []string  `json:"parse_errors" bson:"parseErrors"`
}

// EmptyFlight returns a flight with every field set to its unknown marker.
// Used as the fallback when the external extractor fails entirely.
func EmptyFlight(id string) *Flight {
	return &Flight{
		ID:                   id,
		Airline:              "N/A",
		FlightNumber:         "N/A",
		DepartureCity:        "N/A",
		DepartureAirport:     "N/A",
		DepartureDate:        "N/A",
		DepartureTime:        "N/A",
		ArrivalCity:          "N/A",
		ArrivalAirport:       "N/A",
		ArrivalTime:          "N/A",
		Duration:             "N/A",
		TotalJourneyDuration: "N/A",
		Stops:                "N/A",
		Baggage:              "N/A",
		Refundability:        "N/A",
		Segments:             []Segment{},
		ParseErrors:          []string{},
	}
}
