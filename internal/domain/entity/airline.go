package entity

// Airline is a reference-data row: an IATA carrier code and its display
// name, used to overlay the embedded airline table.
type Airline struct {
	Code string
	Name string
}
