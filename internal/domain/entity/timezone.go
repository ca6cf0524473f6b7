package entity

// Timezone is a reference-data row mapping an airport to its city and IANA
// zone, used to overlay the embedded airport table.
type Timezone struct {
	AirportCode string
	AirportName string
	CityCode    string
	CityName    string
	TzName      string
}
