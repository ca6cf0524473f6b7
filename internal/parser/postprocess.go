package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"flightcast-service/internal/domain/entity"
	"flightcast-service/internal/refdata"
	"flightcast-service/pkg/logger"
)

var (
	placeholderFlightNums = []string{"1234", "5678", "9012", "XXXX"}

	flightNumSpaceRe = regexp.MustCompile(`^([A-Z]{2})(\d)`)
	airlinePrefixRe  = regexp.MustCompile(`^([A-Z]{2})`)
	doubleSpaceRe    = regexp.MustCompile(`\s{2,}`)
	travelTimeRe     = regexp.MustCompile(`(?i)Travel time:\s*(\d+)\s*hrs?\s*(\d+)\s*mins?`)
	layoverHoursRe   = regexp.MustCompile(`(\d+)h`)
)

// PostProcessor reconciles an externally extracted flight with regex hints
// and recomputes every derived field from raw clock times and airport codes.
// The extractor's own durations, offsets and city names are never trusted.
// Process is idempotent: a second pass over an already-reconciled flight with
// the same hints and text is a no-op.
type PostProcessor struct {
	ref     *refdata.Store
	engine  *DurationEngine
	valid   *FlightValidator
	refYear int
	logger  logger.Logger
}

// NewPostProcessor creates a reconciler. refYear is the year assumed for
// dates with no year of their own; zero means the current year.
func NewPostProcessor(ref *refdata.Store, engine *DurationEngine, refYear int, log logger.Logger) *PostProcessor {
	if refYear == 0 {
		refYear = time.Now().Year()
	}
	return &PostProcessor{
		ref:     ref,
		engine:  engine,
		valid:   NewFlightValidator(ref),
		refYear: refYear,
		logger:  log,
	}
}

// Process merges hints into the flight and rebuilds it bottom-up. In
// single-flight mode the hints describe exactly this flight, so they are
// authoritative for the top-level route; in multi-flight mode they span the
// whole input block, so they only fill fields the extractor left blank.
func (p *PostProcessor) Process(f *entity.Flight, hints entity.Hints, originalText string, isMultiFlight bool) *entity.Flight {
	if f == nil {
		return nil
	}

	tripStart := p.resolveDepartureDate(f, hints, originalText)
	p.reconcileAirports(f, hints, isMultiFlight)
	p.fillFromHints(f, hints, isMultiFlight)
	p.deriveCities(f)
	p.recomputeSegments(f, hints, originalText, tripStart, isMultiFlight)
	p.rebuildFromSegments(f, tripStart)

	f.FlightNumber = cleanFlightNumber(f.FlightNumber)

	f.IsValid, f.ParseErrors = p.valid.Validate(f)
	return f
}

// resolveDepartureDate settles the final departure date and returns the
// concrete day-zero used for all later offset arithmetic. Today's date is
// only an arithmetic baseline, never an output value.
func (p *PostProcessor) resolveDepartureDate(f *entity.Flight, hints entity.Hints, originalText string) time.Time {
	f.DepartureDate = PickBestDate(f.DepartureDate, hints.Dates, originalText, p.refYear)

	tripStart := atNoon(time.Now())
	if parsed, ok := ParseFlightDate(f.DepartureDate, p.refYear); ok {
		f.DepartureDate = FormatFlightDate(parsed)
		tripStart = parsed
	}
	return tripStart
}

func (p *PostProcessor) reconcileAirports(f *entity.Flight, hints entity.Hints, isMultiFlight bool) {
	if hints.HasAirports() {
		if isMultiFlight {
			if !isSet(f.DepartureAirport) {
				f.DepartureAirport = hints.DepartureAirport
			}
			if !isSet(f.ArrivalAirport) {
				f.ArrivalAirport = hints.ArrivalAirport
			}
		} else {
			p.overrideEndpoint(&f.DepartureAirport, hints.DepartureAirport, hints.Airports, "departure")
			p.overrideEndpoint(&f.ArrivalAirport, hints.ArrivalAirport, hints.Airports, "arrival")
		}
	}

	f.DepartureAirport = cleanCode(f.DepartureAirport)
	f.ArrivalAirport = cleanCode(f.ArrivalAirport)

	// Unknown codes are cleared, never guessed at.
	if isSet(f.DepartureAirport) && !p.ref.IsAirport(f.DepartureAirport) {
		p.logger.Debug("Clearing unknown departure airport", "code", f.DepartureAirport)
		f.DepartureAirport = "N/A"
	}
	if isSet(f.ArrivalAirport) && !p.ref.IsAirport(f.ArrivalAirport) {
		p.logger.Debug("Clearing unknown arrival airport", "code", f.ArrivalAirport)
		f.ArrivalAirport = "N/A"
	}

	if isSet(f.DepartureAirport) && f.DepartureAirport == f.ArrivalAirport {
		p.logger.Warn("Departure equals arrival, clearing arrival", "code", f.ArrivalAirport)
		f.ArrivalAirport = "N/A"
	}
}

// overrideEndpoint replaces an endpoint the extractor got wrong. A value
// that appears among the document's own airport candidates is plausible and
// kept; anything else loses to the hint. Guards against the extractor
// reporting a connecting hub as the origin.
func (p *PostProcessor) overrideEndpoint(field *string, hint string, candidates []string, side string) {
	if hint == "" {
		return
	}
	code := cleanCode(*field)
	if isSet(code) && containsString(candidates, code) {
		return
	}
	if code != hint {
		p.logger.Debug("Fixing "+side+" airport", "from", code, "to", hint)
		*field = hint
	}
}

// fillFromHints fills blank scalar fields. Per-flight fields never bleed
// across flights in multi-flight mode: the hints were mined from the whole
// block and would contaminate each flight with the first flight's values.
func (p *PostProcessor) fillFromHints(f *entity.Flight, hints entity.Hints, isMultiFlight bool) {
	if !isSet(f.Airline) && hints.Airline != "" {
		f.Airline = hints.Airline
	}
	if isMultiFlight {
		return
	}
	if !isSet(f.FlightNumber) && len(hints.FlightNumbers) > 0 {
		f.FlightNumber = hints.FlightNumbers[0]
	}
	if !isSet(f.DepartureTime) && hints.DepartureTime != "" {
		f.DepartureTime = hints.DepartureTime
	}
	if !isSet(f.ArrivalTime) && hints.ArrivalTime != "" {
		f.ArrivalTime = hints.ArrivalTime
	}
	if !isSet(f.Duration) && hints.Duration != "" {
		f.Duration = hints.Duration
	}
	if !isSet(f.Stops) && hints.Stops != "" {
		f.Stops = hints.Stops
	}
	if !isSet(f.Baggage) && hints.Baggage != "" {
		f.Baggage = hints.Baggage
	}
	if f.SaverFare == nil && hints.SaverFare != nil {
		v := *hints.SaverFare
		f.SaverFare = &v
	}
}

func (p *PostProcessor) deriveCities(f *entity.Flight) {
	if isSet(f.DepartureAirport) {
		if name, ok := p.ref.AirportName(f.DepartureAirport); ok {
			f.DepartureCity = name
		}
	}
	if isSet(f.ArrivalAirport) {
		if name, ok := p.ref.AirportName(f.ArrivalAirport); ok {
			f.ArrivalCity = name
		}
	}
}

// recomputeSegments walks the segment list, repairing placeholder flight
// numbers, recomputing layover/duration/offset from clocks, and tracking the
// cumulative day counter from trip start.
func (p *PostProcessor) recomputeSegments(f *entity.Flight, hints entity.Hints, originalText string, tripStart time.Time, isMultiFlight bool) {
	travelTimes := travelTimeRe.FindAllStringSubmatch(originalText, -1)
	cumulative := 0

	for i := range f.Segments {
		seg := &f.Segments[i]

		if i == 0 && !isMultiFlight && hints.HasAirports() {
			if hints.DepartureAirport != "" &&
				(!isSet(seg.DepartureAirport) || !containsString(hints.Airports, cleanCode(seg.DepartureAirport))) {
				p.logger.Debug("Fixing first segment departure",
					"from", seg.DepartureAirport, "to", hints.DepartureAirport)
				seg.DepartureAirport = hints.DepartureAirport
			}
		}

		if !isSet(seg.DepartureDate) {
			seg.DepartureDate = f.DepartureDate
		}

		fn := strings.ToUpper(seg.FlightNumber)
		if isPlaceholderFlightNumber(fn) && i < len(hints.FlightNumbers) {
			p.logger.Debug("Fixing segment flight number", "from", fn, "to", hints.FlightNumbers[i])
			seg.FlightNumber = hints.FlightNumbers[i]
		}
		if isSet(seg.FlightNumber) {
			seg.FlightNumber = cleanFlightNumber(seg.FlightNumber)
			if !isSet(seg.Airline) {
				if m := airlinePrefixRe.FindStringSubmatch(seg.FlightNumber); m != nil && p.ref.IsAirline(m[1]) {
					seg.Airline = p.ref.AirlineName(m[1])
				}
			}
		}

		seg.DepartureAirport = cleanCode(seg.DepartureAirport)
		seg.ArrivalAirport = cleanCode(seg.ArrivalAirport)
		segDate := tripStart.AddDate(0, 0, cumulative)

		if i > 0 {
			prev := &f.Segments[i-1]
			daysBetween := 0
			prevArr, okPrev := ParseClockMinutes(prev.ArrivalTime)
			currDep, okCurr := ParseClockMinutes(seg.DepartureTime)
			if okPrev && okCurr && currDep < prevArr {
				daysBetween = 1
			}

			seg.LayoverDuration = p.engine.Layover(prev.ArrivalTime, seg.DepartureTime, daysBetween)
			if isSet(prev.ArrivalAirport) {
				seg.LayoverCity = prev.ArrivalAirport
			}

			// A layover of a day or more means the explicit dates skipped
			// days the offsets alone would miss.
			if m := layoverHoursRe.FindStringSubmatch(seg.LayoverDuration); m != nil {
				if hours, ok := parseAmount(m[1]); ok && hours >= 24 {
					cumulative += hours / 24
				}
			}
			cumulative += daysBetween
		}

		seg.AccumulatedDepDays = cumulative

		if len(f.Segments) == len(travelTimes) {
			// The booking page printed per-leg travel times; they beat
			// clock arithmetic.
			seg.Duration = travelTimes[i][1] + "h " + travelTimes[i][2] + "m"
		} else {
			seg.Duration = p.engine.Calculate(
				seg.DepartureTime, seg.ArrivalTime,
				seg.DepartureAirport, seg.ArrivalAirport,
				0, segDate, true,
			)
		}

		seg.DaysOffset = p.engine.DayOffset(
			seg.DepartureTime, seg.ArrivalTime, seg.Duration,
			seg.DepartureAirport, seg.ArrivalAirport, segDate,
		)

		cumulative += seg.DaysOffset
		seg.AccumulatedArrDays = cumulative

		if name, ok := p.ref.AirportName(seg.DepartureAirport); ok {
			seg.DepartureCity = name
		}
		if name, ok := p.ref.AirportName(seg.ArrivalAirport); ok {
			seg.ArrivalCity = name
		}
	}
}

// rebuildFromSegments derives the flight-level view from the corrected
// segments. The flight record is a projection over its segments, not an
// independent source of truth.
func (p *PostProcessor) rebuildFromSegments(f *entity.Flight, tripStart time.Time) {
	if len(f.Segments) == 0 {
		// No legs to project from; the top-level clocks are still authoritative
		// over whatever duration and offset the extractor reported.
		if isSet(f.DepartureTime) && isSet(f.ArrivalTime) {
			f.Duration = p.engine.Calculate(
				f.DepartureTime, f.ArrivalTime,
				f.DepartureAirport, f.ArrivalAirport,
				f.DaysOffset, tripStart, true,
			)
			f.DaysOffset = p.engine.DayOffset(
				f.DepartureTime, f.ArrivalTime, f.Duration,
				f.DepartureAirport, f.ArrivalAirport, tripStart,
			)
			f.ArrivalNextDay = f.DaysOffset > 0
			f.TotalJourneyDuration = f.Duration
		}
		return
	}
	first := f.Segments[0]
	last := f.Segments[len(f.Segments)-1]

	f.DepartureAirport = first.DepartureAirport
	f.DepartureCity = first.DepartureCity
	f.DepartureTime = first.DepartureTime
	f.ArrivalAirport = last.ArrivalAirport
	f.ArrivalCity = last.ArrivalCity
	f.ArrivalTime = last.ArrivalTime
	f.DaysOffset = last.AccumulatedArrDays
	f.ArrivalNextDay = f.DaysOffset > 0

	if n := len(f.Segments) - 1; n > 0 {
		var vias []string
		for _, seg := range f.Segments[1:] {
			if isSet(seg.DepartureAirport) && !containsString(vias, seg.DepartureAirport) {
				vias = append(vias, seg.DepartureAirport)
			}
		}
		plural := ""
		if n > 1 {
			plural = "s"
		}
		f.Stops = strconv.Itoa(n) + " Stop" + plural
		if len(vias) > 0 {
			f.Stops += " via " + strings.Join(vias, ", ")
		}
	} else {
		f.Stops = "Non Stop"
	}

	f.Duration = p.engine.Calculate(
		first.DepartureTime, last.ArrivalTime,
		first.DepartureAirport, last.ArrivalAirport,
		f.DaysOffset, tripStart, false,
	)
	f.TotalJourneyDuration = f.Duration
}

func cleanCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// cleanFlightNumber normalizes "QR-545" / "QR545" to "QR 545".
func cleanFlightNumber(fn string) string {
	fn = strings.ToUpper(strings.TrimSpace(fn))
	fn = strings.ReplaceAll(fn, "-", " ")
	fn = doubleSpaceRe.ReplaceAllString(fn, " ")
	return flightNumSpaceRe.ReplaceAllString(fn, "$1 $2")
}

func isPlaceholderFlightNumber(fn string) bool {
	if len(fn) < 3 {
		return true
	}
	for _, ph := range placeholderFlightNums {
		if strings.Contains(fn, ph) {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

