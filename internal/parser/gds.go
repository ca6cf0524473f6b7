package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"flightcast-service/internal/domain/entity"
	"flightcast-service/internal/refdata"
	"flightcast-service/pkg/logger"
)

// Grammar fragments shared by the segment patterns. Times and glued tokens
// appear both raw (1120, 18APR, PRGAUH) and spaced/colonized (11:20, 18 APR,
// PRG AUH) depending on whether the text already passed through the
// normalizer, so every fragment tolerates both forms.
const (
	monAlt    = `JAN|FEB|MAR|APR|MAY|JUN|JUL|AUG|SEP|OCT|NOV|DEC`
	clockTok  = `(?:[01]\d|2[0-3]):?[0-5]\d`
	statusAlt = `HK|DK|NN|SS|RR|HN|HL|TK|UN|NO|UC|WK|WL`
)

var (
	gdsDateRe   = regexp.MustCompile(`\b(\d{1,2})\s?(` + monAlt + `)\b`)
	gdsTimeRe   = regexp.MustCompile(`\b(?:[01]\d|2[0-3])[0-5]\d\b`)
	gdsStatusRe = regexp.MustCompile(`\b(?:` + statusAlt + `)\d{1,2}\b`)
	gdsClassRe  = regexp.MustCompile(`\b[A-Z]{2}\s*\d{1,4}\s+[A-Z]\s+\d{1,2}\s?(?:` + monAlt + `)`)

	// Amadeus / Sabre classic line:
	//   EY 156 E 18APR 6*PRGAUH DK1 1120 1905 18APR E 0 789 M SEE RTSVC
	amadeusRe = regexp.MustCompile(`(?m)(?:^\s*\d+\.)?\s*` +
		`(?P<airline>[A-Z]{2}|\d[A-Z]|[A-Z]\d)\s*-?\s*(?P<fltnum>\d{1,4})\s+` +
		`(?P<bkgcls>[A-Z])\s+` +
		`(?P<depday>\d{1,2})\s?(?P<depmon>` + monAlt + `)(?P<depyr>\d{2})?\s+` +
		`(?:\d\*?\s?|\d?\s*)?` +
		`(?P<depap>[A-Z]{3})\s?(?P<arrap>[A-Z]{3})\s+` +
		`(?:(?:` + statusAlt + `)\d{1,2}\s+)?` +
		`(?P<deptime>` + clockTok + `)\s+(?P<arrtime>` + clockTok + `)` +
		`(?P<nextday>\s?\+\d|[+/]\d)?` +
		`(?:\s+\d{1,2}\s?(?:` + monAlt + `)(?:\d{2})?)?` +
		// The boundary keeps a lone E/O flag from eating the first letter of
		// the next line's airline code (EY, OS) when a line has no tail.
		`(?:\s+[EO]\b)?(?:\s+\d)?` +
		`(?:\s+(?P<aircraft>[A-Z0-9]{3}))?`)

	// Compact slash: QR007/Y/12MAR/CCUDOH/0055/0310+1
	slashRe = regexp.MustCompile(
		`(?P<airline>[A-Z]{2}|\d[A-Z]|[A-Z]\d)(?P<fltnum>\d{1,4})` +
			`/(?P<bkgcls>[A-Z])?` +
			`/(?P<depday>\d{1,2})\s?(?P<depmon>` + monAlt + `)(?P<depyr>\d{2})?` +
			`/(?P<depap>[A-Z]{3})\s?(?P<arrap>[A-Z]{3})` +
			`/(?P<deptime>` + clockTok + `)` +
			`/(?P<arrtime>` + clockTok + `)` +
			`(?P<nextday>\s?\+\d|[+/]\d)?`)

	// Galileo / Worldspan: "1. EY 156 Y 18APR PRG AUH 1120 1905"
	galileoRe = regexp.MustCompile(`(?m)(?:^\s*\d+\.)?\s*` +
		`(?P<airline>[A-Z]{2}|\d[A-Z]|[A-Z]\d)\s*(?P<fltnum>\d{1,4})\s+` +
		`(?P<bkgcls>[A-Z])\s+` +
		`(?P<depday>\d{1,2})\s?(?P<depmon>` + monAlt + `)(?P<depyr>\d{2})?\s+` +
		`(?P<depap>[A-Z]{3})\s+(?P<arrap>[A-Z]{3})\s+` +
		`(?P<deptime>` + clockTok + `)\s+(?P<arrtime>` + clockTok + `)` +
		`(?P<nextday>\s?\+\d|[+/]\d)?`)

	// Generic fallback: "AI302 DEL SIN 23:15 06:15+1 05JAN"
	genericRe = regexp.MustCompile(
		`(?P<airline>[A-Z]{2}|\d[A-Z]|[A-Z]\d)\s*(?P<fltnum>\d{1,4})\s+` +
			`(?P<depap>[A-Z]{3})\s*[-/]?\s*(?P<arrap>[A-Z]{3})\s+` +
			`(?P<deptime>` + clockTok + `)\s+(?P<arrtime>` + clockTok + `)` +
			`(?P<nextday>\s?\+\d|[+/]\d)?` +
			`(?:.*?(?P<depday>\d{1,2})\s?(?P<depmon>` + monAlt + `)(?P<depyr>\d{2})?)?`)

	dividerRe = regexp.MustCompile(`(?mi)(?:^-{3,}$|^\*{3,}$|^={3,}$` +
		`|\bOUTBOUND\b|\bINBOUND\b|\bRETURN(?:\s+JOURNEY)?\b` +
		`|\bLEG\s*\d+\b|\bITINERARY\s*\d+\b|\bFLIGHT\s+OPTION\b` +
		`|^OPTION\s*\d+)`)

	tripRtRe = regexp.MustCompile(`(?i)\b(RETURN|ROUND[\s-]?TRIP|RTN|R/T)\b`)
	tripOwRe = regexp.MustCompile(`(?i)\b(ONE[\s-]?WAY|O/?W)\b`)
	tripMcRe = regexp.MustCompile(`(?i)\b(MULTI[\s-]?CITY|MC|OPEN[\s-]?JAW)\b`)

	pnrRe      = regexp.MustCompile(`\b([A-Z]{6})\b`)
	pnrLabelRe = regexp.MustCompile(`(?i)\bRLOC:?\s*([A-Z0-9]{6,8})\b`)

	bagKgRe   = regexp.MustCompile(`\b(\d{1,3})\s*[Kk][Gg]\b`)
	bagPcRe   = regexp.MustCompile(`(?i)\b(\d{1,2})\s*(?:PC|PIECE|PCS)\b`)
	gdsFareRe = regexp.MustCompile(`(?i)[₹$]\s*([\d,]+)|(?:INR|RS\.?)\s*([\d,]+)`)
	co2TailRe = regexp.MustCompile(`(?i)^\s*CO2`)

	digitRe = regexp.MustCompile(`\d`)
)

type segmentStrategy struct {
	name string
	re   *regexp.Regexp
}

// GdsParser detects and parses raw GDS terminal output with regex alone; no
// model call is involved. Duration, day-offset and layover arithmetic
// delegate to the same DurationEngine used after model extraction, so both
// paths agree numerically.
type GdsParser struct {
	ref        *refdata.Store
	engine     *DurationEngine
	validator  *FlightValidator
	refYear    int
	strategies []segmentStrategy
	logger     logger.Logger
}

// NewGdsParser creates a GDS parser. refYear is the year assumed for GDS
// dates that carry no year of their own; zero means the current year.
func NewGdsParser(ref *refdata.Store, engine *DurationEngine, refYear int, log logger.Logger) *GdsParser {
	if refYear == 0 {
		refYear = time.Now().Year()
	}
	return &GdsParser{
		ref:       ref,
		engine:    engine,
		validator: NewFlightValidator(ref),
		refYear:   refYear,
		strategies: []segmentStrategy{
			{"amadeus", amadeusRe},
			{"slash", slashRe},
			{"galileo", galileoRe},
			{"generic", genericRe},
		},
		logger: log,
	}
}

// IsGds scores GDS fingerprints in the text and reports whether it crossed
// the detection threshold. Scoring keeps ordinary prose itineraries, which
// share some of these shapes, below the bar.
func (p *GdsParser) IsGds(text string) bool {
	up := strings.ToUpper(text)
	score := 0
	if gdsTimeRe.MatchString(up) {
		score += 2
	}
	if gdsDateRe.MatchString(up) {
		score += 2
	}
	if gdsStatusRe.MatchString(up) {
		score += 3
	}
	if amadeusRe.MatchString(up) {
		score += 4
	}
	if slashRe.MatchString(up) {
		score += 4
	}
	if gdsClassRe.MatchString(up) {
		score += 2
	}
	p.logger.Debug("GDS detection score", "score", score)
	return score >= 4
}

// Parse parses a GDS block into flights: one per section, so a round trip
// yields two and a multi-city block one per leg. Returns nil when no section
// produces segments.
func (p *GdsParser) Parse(text string) []*entity.Flight {
	up := strings.ToUpper(text)
	tripType := detectTripType(up)
	pnr := p.findPnr(up)
	baggage := p.findBaggage(text)
	fare := findGdsFare(text)
	sections := splitSections(text)

	p.logger.Debug("GDS parse", "sections", len(sections), "tripType", tripType)

	var flights []*entity.Flight
	for _, section := range sections {
		segments := p.parseSection(strings.ToUpper(section))
		if len(segments) == 0 {
			continue
		}
		p.stitch(segments)
		flight := p.assemble(segments, tripType, pnr)
		if flight == nil {
			continue
		}
		if baggage != "" {
			flight.Baggage = baggage
		}
		if fare != nil {
			flight.SaverFare = fare
		}
		flights = append(flights, flight)
	}
	return flights
}

func splitSections(text string) []string {
	var parts []string
	for _, p := range dividerRe.Split(text, -1) {
		if s := strings.TrimSpace(p); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) <= 1 {
		return []string{strings.TrimSpace(text)}
	}
	return parts
}

func detectTripType(up string) string {
	switch {
	case tripMcRe.MatchString(up):
		return "MC"
	case tripRtRe.MatchString(up):
		return "RT"
	case tripOwRe.MatchString(up):
		return "OW"
	}
	return "OW"
}

// parseSection runs the grammar cascade and keeps the first strategy that
// yields segments. A mixed section never blends grammars: the formats are
// close enough that a weaker pattern would re-match fragments of a stronger
// one's lines.
func (p *GdsParser) parseSection(section string) []entity.Segment {
	for _, strat := range p.strategies {
		segs := p.extractSegments(strat, section)
		if len(segs) > 0 {
			return segs
		}
	}
	return nil
}

func (p *GdsParser) extractSegments(strat segmentStrategy, section string) []entity.Segment {
	var segs []entity.Segment
	for _, m := range strat.re.FindAllStringSubmatch(section, -1) {
		g := groups(strat.re, m)
		depAp, arrAp := g["depap"], g["arrap"]
		if !p.plausibleAirport(depAp) || !p.plausibleAirport(arrAp) {
			continue
		}
		depDate, ok := gdsDate(orDefault(g["depday"], "1"), orDefault(g["depmon"], "JAN"), g["depyr"], p.refYear)
		hasDate := ok && g["depday"] != ""
		bkgCls := g["bkgcls"]
		if strat.name == "generic" {
			bkgCls = ""
		}
		seg := p.buildSegment(
			g["airline"], g["fltnum"], bkgCls,
			depDate, hasDate,
			depAp, arrAp,
			g["deptime"], g["arrtime"],
			markerDays(g["nextday"]),
			g["aircraft"],
		)
		segs = append(segs, seg)
		p.logger.Debug("GDS segment", "strategy", strat.name,
			"flight", seg.FlightNumber, "route", depAp+"-"+arrAp)
	}
	return segs
}

func groups(re *regexp.Regexp, match []string) map[string]string {
	out := make(map[string]string)
	for i, name := range re.SubexpNames() {
		if name != "" && i < len(match) {
			out[name] = match[i]
		}
	}
	return out
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// plausibleAirport accepts known codes, and unknown 3-letter tokens that are
// neither months nor known false positives. Regional airports missing from
// reference data must still parse.
func (p *GdsParser) plausibleAirport(code string) bool {
	code = strings.ToUpper(code)
	if len(code) != 3 || falsePositiveAirports[code] {
		return false
	}
	if p.ref.IsAirport(code) {
		return true
	}
	if _, isMonth := monthNumbers[strings.ToLower(code)]; isMonth {
		return false
	}
	for i := 0; i < 3; i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	return true
}

// markerDays extracts the day count from an explicit GDS next-day marker
// such as "+1" or "/2".
func markerDays(marker string) int {
	d := digitRe.FindString(marker)
	if d == "" {
		return 0
	}
	n, _ := strconv.Atoi(d)
	return n
}

// toClock converts a 4-digit GDS time to HH:MM; colon forms pass through.
func toClock(raw string) string {
	raw = strings.TrimSpace(raw)
	if len(raw) == 4 && !strings.Contains(raw, ":") {
		return raw[:2] + ":" + raw[2:]
	}
	return raw
}

// buildSegment resolves the day offset (explicit marker wins, otherwise
// clock arithmetic) and computes the timezone-aware duration for one leg.
func (p *GdsParser) buildSegment(
	airlineCode, fltNum, bkgCls string,
	depDate time.Time, hasDate bool,
	depAp, arrAp, depTimeRaw, arrTimeRaw string,
	explicitNextDay int,
	aircraftRaw string,
) entity.Segment {
	airlineCode = strings.ToUpper(airlineCode)
	depAp = strings.ToUpper(depAp)
	arrAp = strings.ToUpper(arrAp)
	depTime := toClock(depTimeRaw)
	arrTime := toClock(arrTimeRaw)

	daysOffset := explicitNextDay
	if daysOffset == 0 {
		daysOffset = p.engine.DayOffset(depTime, arrTime, "", depAp, arrAp, depDate)
	}

	duration := p.engine.Calculate(depTime, arrTime, depAp, arrAp, daysOffset, depDate, true)

	depDateStr := "N/A"
	if hasDate {
		depDateStr = FormatFlightDate(depDate)
	}
	aircraft := "N/A"
	if aircraftRaw != "" {
		aircraft = p.ref.AircraftName(aircraftRaw)
	}

	return entity.Segment{
		Airline:          p.ref.AirlineName(airlineCode),
		AirlineCode:      airlineCode,
		FlightNumber:     airlineCode + " " + fltNum,
		BookingClass:     strings.ToUpper(orDefault(bkgCls, "Y")),
		DepartureAirport: depAp,
		DepartureCity:    p.ref.CityName(depAp),
		DepartureTime:    depTime,
		DepartureDate:    depDateStr,
		ArrivalAirport:   arrAp,
		ArrivalCity:      p.ref.CityName(arrAp),
		ArrivalTime:      arrTime,
		Aircraft:         aircraft,
		DaysOffset:       daysOffset,
		Duration:         duration,
		LayoverDuration:  "N/A",
		LayoverCity:      "N/A",
	}
}

// stitch walks segments in order, filling layover fields and the cumulative
// day counters. A next departure earlier than the previous arrival on the
// 24h clock means the layover itself crossed midnight; a layover of a full
// day or more advances the counter by the extra days too.
func (p *GdsParser) stitch(segments []entity.Segment) {
	cumulative := 0
	for i := range segments {
		seg := &segments[i]
		seg.AccumulatedDepDays = cumulative

		if i > 0 {
			prev := &segments[i-1]
			daysBetween := 0
			prevArr, okPrev := ParseClockMinutes(prev.ArrivalTime)
			currDep, okCurr := ParseClockMinutes(seg.DepartureTime)
			if okPrev && okCurr && currDep < prevArr {
				daysBetween = 1
			}
			seg.LayoverDuration = p.engine.Layover(prev.ArrivalTime, seg.DepartureTime, daysBetween)
			seg.LayoverCity = prev.ArrivalAirport
			cumulative += daysBetween
			if lay, ok := ParseDurationMinutes(seg.LayoverDuration); ok && lay >= minutesPerDay {
				cumulative += lay / minutesPerDay
			}
			seg.AccumulatedDepDays = cumulative
		}

		cumulative += seg.DaysOffset
		seg.AccumulatedArrDays = cumulative
	}
}

// assemble derives the top-level flight view from stitched segments.
func (p *GdsParser) assemble(segments []entity.Segment, tripType, pnr string) *entity.Flight {
	if len(segments) == 0 {
		return nil
	}
	first := segments[0]
	last := segments[len(segments)-1]
	totalDays := last.AccumulatedArrDays

	stops := "Non Stop"
	if n := len(segments) - 1; n > 0 {
		via := make([]string, 0, n)
		for _, s := range segments[1:] {
			via = append(via, s.DepartureAirport)
		}
		plural := ""
		if n > 1 {
			plural = "s"
		}
		stops = strconv.Itoa(n) + " Stop" + plural + " via " + strings.Join(via, ", ")
	}

	depDate, _ := ParseFlightDate(first.DepartureDate, p.refYear)
	totalDur := p.engine.Calculate(
		first.DepartureTime, last.ArrivalTime,
		first.DepartureAirport, last.ArrivalAirport,
		totalDays, depDate, false,
	)

	flight := &entity.Flight{
		ID:                   uuid.NewString(),
		PNR:                  pnr,
		TripType:             tripType,
		Airline:              first.Airline,
		FlightNumber:         first.FlightNumber,
		DepartureCity:        first.DepartureCity,
		DepartureAirport:     first.DepartureAirport,
		DepartureDate:        first.DepartureDate,
		DepartureTime:        first.DepartureTime,
		ArrivalCity:          last.ArrivalCity,
		ArrivalAirport:       last.ArrivalAirport,
		ArrivalTime:          last.ArrivalTime,
		ArrivalNextDay:       totalDays > 0,
		DaysOffset:           totalDays,
		Duration:             totalDur,
		TotalJourneyDuration: totalDur,
		Stops:                stops,
		Baggage:              "N/A",
		Refundability:        "N/A",
		Segments:             segments,
	}

	flight.IsValid, flight.ParseErrors = p.validator.Validate(flight)
	return flight
}

// findPnr prefers an explicit RLOC label; otherwise the first 6-letter token
// that is neither a known code nor a jammed airport pair.
func (p *GdsParser) findPnr(up string) string {
	if m := pnrLabelRe.FindStringSubmatch(up); m != nil {
		return m[1]
	}
	for _, m := range pnrRe.FindAllStringSubmatch(up, -1) {
		c := m[1]
		if falsePositiveAirports[c] || p.ref.IsAirport(c) || p.ref.IsAirline(c) {
			continue
		}
		if p.ref.IsAirport(c[:3]) && p.ref.IsAirport(c[3:]) {
			continue
		}
		return c
	}
	return ""
}

func (p *GdsParser) findBaggage(text string) string {
	for _, loc := range bagKgRe.FindAllStringSubmatchIndex(text, -1) {
		if co2TailRe.MatchString(text[loc[1]:min(loc[1]+8, len(text))]) {
			continue
		}
		return text[loc[2]:loc[3]] + "kg"
	}
	if m := bagPcRe.FindStringSubmatch(text); m != nil {
		return m[1] + "pc"
	}
	return ""
}

func findGdsFare(text string) *int {
	m := gdsFareRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	raw := orDefault(m[1], m[2])
	v, err := strconv.Atoi(strings.ReplaceAll(raw, ",", ""))
	if err != nil {
		return nil
	}
	return &v
}
