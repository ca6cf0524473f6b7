package refdata

import (
	"sort"
	"strings"
	"sync"
	"time"

	"flightcast-service/pkg/logger"
)

// Store holds the process-wide airport, airline, timezone and aircraft
// reference tables. It is built once at startup and read-only afterwards, so
// it is safe for concurrent use without locking.
type Store struct {
	airports map[string]Airport
	airlines map[string]string

	// airport names sorted longest-first, for substring matching
	namesByLength []NameEntry

	logger logger.Logger

	locMu sync.Mutex
	locs  map[string]*time.Location
}

// NameEntry pairs a lowercased airport display name with its IATA code.
type NameEntry struct {
	Name string
	Code string
}

// NewStore builds a store from the embedded reference tables.
func NewStore(log logger.Logger) *Store {
	return newStore(airportTable, airlineTable, log)
}

// NewStoreWithOverrides builds a store from the embedded tables overlaid with
// rows loaded from an external source (e.g. the reference database). Override
// maps may be nil.
func NewStoreWithOverrides(airports map[string]Airport, airlines map[string]string, log logger.Logger) *Store {
	merged := make(map[string]Airport, len(airportTable)+len(airports))
	for code, ap := range airportTable {
		merged[code] = ap
	}
	for code, ap := range airports {
		merged[strings.ToUpper(code)] = ap
	}
	mergedAirlines := make(map[string]string, len(airlineTable)+len(airlines))
	for code, name := range airlineTable {
		mergedAirlines[code] = name
	}
	for code, name := range airlines {
		mergedAirlines[strings.ToUpper(code)] = name
	}
	return newStore(merged, mergedAirlines, log)
}

func newStore(airports map[string]Airport, airlines map[string]string, log logger.Logger) *Store {
	names := make([]NameEntry, 0, len(airports))
	for code, ap := range airports {
		if ap.Name != "" {
			names = append(names, NameEntry{Name: strings.ToLower(ap.Name), Code: code})
		}
	}
	// Longest name first so "new delhi" wins over "delhi"
	sort.Slice(names, func(i, j int) bool {
		if len(names[i].Name) != len(names[j].Name) {
			return len(names[i].Name) > len(names[j].Name)
		}
		return names[i].Name < names[j].Name
	})

	return &Store{
		airports:      airports,
		airlines:      airlines,
		namesByLength: names,
		logger:        log,
		locs:          make(map[string]*time.Location),
	}
}

// IsAirport reports whether code is a known IATA airport code.
func (s *Store) IsAirport(code string) bool {
	_, ok := s.airports[strings.ToUpper(code)]
	return ok
}

// AirportName returns the display name for an IATA code.
func (s *Store) AirportName(code string) (string, bool) {
	ap, ok := s.airports[strings.ToUpper(code)]
	if !ok {
		return "", false
	}
	return ap.Name, true
}

// CityName returns the display name for an IATA code, or the code itself when
// unknown. Mirrors how route fields are rendered everywhere in the pipeline.
func (s *Store) CityName(code string) string {
	if name, ok := s.AirportName(code); ok {
		return name
	}
	return strings.ToUpper(code)
}

// AirlineName returns the display name for a 2-character airline code, or the
// code itself when unknown.
func (s *Store) AirlineName(code string) string {
	if name, ok := s.airlines[strings.ToUpper(code)]; ok {
		return name
	}
	return strings.ToUpper(code)
}

// IsAirline reports whether code is a known airline designator.
func (s *Store) IsAirline(code string) bool {
	_, ok := s.airlines[strings.ToUpper(code)]
	return ok
}

// AircraftName resolves a GDS equipment code; unknown codes pass through.
func (s *Store) AircraftName(code string) string {
	if name, ok := aircraftTable[strings.ToUpper(code)]; ok {
		return name
	}
	return code
}

// AirportNames returns airport display names sorted longest-first, for
// substring scanning of free text.
func (s *Store) AirportNames() []NameEntry {
	return s.namesByLength
}

// OffsetHours returns the UTC offset in hours at the given airport on the
// given date, DST-aware. Unknown airports or timezones fall back to 0.0 (UTC).
func (s *Store) OffsetHours(code string, at time.Time) float64 {
	if code == "" {
		return 0.0
	}
	ap, ok := s.airports[strings.ToUpper(code)]
	if !ok || ap.TzName == "" {
		if s.logger != nil {
			s.logger.Debug("Missing timezone, using UTC", "airport", code)
		}
		return 0.0
	}
	loc, err := s.loadLocation(ap.TzName)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("Failed to load timezone", "airport", code, "tz", ap.TzName, "error", err)
		}
		return 0.0
	}
	if at.IsZero() {
		at = time.Now()
	}
	// Midnight sits on the DST boundary in some zones; sample at noon instead.
	if at.Hour() == 0 && at.Minute() == 0 {
		at = time.Date(at.Year(), at.Month(), at.Day(), 12, 0, 0, 0, time.UTC)
	}
	_, offset := at.In(loc).Zone()
	return float64(offset) / 3600.0
}

func (s *Store) loadLocation(name string) (*time.Location, error) {
	s.locMu.Lock()
	defer s.locMu.Unlock()
	if loc, ok := s.locs[name]; ok {
		return loc, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, err
	}
	s.locs[name] = loc
	return loc, nil
}
