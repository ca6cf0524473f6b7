package parser

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"flightcast-service/internal/domain/entity"
	"flightcast-service/internal/refdata"
	"flightcast-service/pkg/logger"
)

// Tokens that look like IATA codes but never are, in this corpus.
var falsePositiveAirports = map[string]bool{
	"THE": true, "AND": true, "FOR": true, "ALL": true, "VIA": true,
	"NON": true, "ONE": true, "TWO": true, "DAY": true,
	"JAN": true, "FEB": true, "APR": true, "MAY": true, "JUN": true,
	"JUL": true, "AUG": true, "SEP": true, "OCT": true, "NOV": true, "DEC": true,
	"SAT": true, "SUN": true, "MON": true, "TUE": true, "WED": true,
	"THU": true, "FRI": true, "AIR": true, "FLY": true, "JET": true,
	"BAG": true, "MAX": true, "MIN": true, "HRS": true,
	"PPC": true, "GDS": true, "SEE": true, "RTS": true, "SVC": true,
	"PNR": true, "DKT": true, "SKD": true, "OPT": true, "TKT": true,
	"PAX": true, "ADT": true, "CHD": true, "INF": true, "ETA": true, "ETD": true,
}

// Airline designators missing from reference data but seen in live traffic.
var airlineAllowList = map[string]bool{"LX": true, "UK": true, "EY": true}

// Substrings that, found shortly before a date candidate, mark it as pasted
// tool output rather than itinerary content.
var metadataIndicators = []string{
	"departure_date", "arrival_date", "flight_number",
	"departure_time", "arrival_time", `"date":`, `"time":`,
	"json", "extract", "output",
}

var (
	hintFlightRe   = regexp.MustCompile(`\b([A-Z]{2}|[A-Z]\d|\d[A-Z])\s*-?[/\s]?\s*(\d{1,4})\b`)
	hintAirportRe  = regexp.MustCompile(`\b([A-Z]{3})\b`)
	hintTimeRe     = regexp.MustCompile(`(?i)(\d{1,2})[:.](\d{2})\s*(am|pm)?`)
	hintDurationRe = regexp.MustCompile(`(?i)(\d{1,2})\s*h(?:rs?)?\s*(\d{1,2})?\s*m(?:ins?)?`)
	hintFareRe     = regexp.MustCompile(`[₹$]\s*([\d,]+)`)
	hintAdultRe    = regexp.MustCompile(`(?i)/\s*adult`)
	hintBagRe      = regexp.MustCompile(`(?i)(?:baggage|check-?in|cabin)?[:\s]*(\d{1,3})\s*(kg|pc|piece)`)
	hintNonStopRe  = regexp.MustCompile(`(?i)non[\s-]*stop|nonstop|direct`)
	hintNStopsRe   = regexp.MustCompile(`(?i)(\d)\s*stop`)
	wordCharRe     = regexp.MustCompile(`[A-Za-z0-9]`)
)

// HintExtractor mines structured candidate facts from normalized free text
// using regex only. It never fails: anything it cannot find is simply absent
// from the returned Hints.
type HintExtractor struct {
	ref     *refdata.Store
	minFare int
	logger  logger.Logger
}

// NewHintExtractor creates a hint extractor. minFare is the smallest amount
// treated as a plausible fare; smaller amounts (lock fees, promo credits)
// are ignored during fare partitioning.
func NewHintExtractor(ref *refdata.Store, minFare int, log logger.Logger) *HintExtractor {
	return &HintExtractor{ref: ref, minFare: minFare, logger: log}
}

type positioned struct {
	value string
	pos   int
}

// Extract mines the full hints bag from one input text.
func (h *HintExtractor) Extract(text string) entity.Hints {
	hints := entity.Hints{}
	upper := strings.ToUpper(text)

	flights := h.extractFlightNumbers(upper)
	if len(flights) > 0 {
		for _, f := range flights {
			hints.FlightNumbers = append(hints.FlightNumbers, f.value)
		}
		code := strings.Fields(flights[0].value)[0]
		if h.ref.IsAirline(code) {
			hints.Airline = h.ref.AirlineName(code)
		}
	}

	airports := h.extractAirports(text, upper)
	if len(airports) >= 2 {
		hints.Airports = airports
		hints.DepartureAirport = airports[0]
		hints.ArrivalAirport = airports[len(airports)-1]
		// A document whose first and last candidate coincide (round trip
		// text, repeated header) walks back to the nearest distinct code.
		if hints.DepartureAirport == hints.ArrivalAirport {
			for i := len(airports) - 2; i >= 0; i-- {
				if airports[i] != hints.DepartureAirport {
					hints.ArrivalAirport = airports[i]
					break
				}
			}
		}
	}

	times := extractClockTimes(text)
	if len(times) >= 2 {
		hints.Times = times
		hints.DepartureTime = times[0]
		hints.ArrivalTime = times[1]
	}

	hints.Dates = h.extractDates(text)
	if len(hints.Dates) > 0 {
		hints.DepartureDate = hints.Dates[0]
	}

	for _, m := range hintDurationRe.FindAllStringSubmatch(text, -1) {
		minutes := m[2]
		if minutes == "" {
			minutes = "0"
		}
		hints.Durations = append(hints.Durations, m[1]+"h "+minutes+"m")
	}
	if len(hints.Durations) > 0 {
		hints.Duration = hints.Durations[0]
	}

	h.extractFares(text, flights, &hints)
	h.extractBaggage(text, &hints)

	if hintNonStopRe.MatchString(text) {
		hints.Stops = "Non Stop"
	} else if m := hintNStopsRe.FindStringSubmatch(text); m != nil {
		hints.Stops = m[1] + " Stop"
	}

	return hints
}

func (h *HintExtractor) extractFlightNumbers(upper string) []positioned {
	var out []positioned
	seen := make(map[string]bool)
	for _, loc := range hintFlightRe.FindAllStringSubmatchIndex(upper, -1) {
		code := upper[loc[2]:loc[3]]
		num := upper[loc[4]:loc[5]]
		if !h.ref.IsAirline(code) && !airlineAllowList[code] {
			continue
		}
		fn := code + " " + num
		if seen[fn] {
			continue
		}
		seen[fn] = true
		out = append(out, positioned{value: fn, pos: loc[0]})
	}
	return out
}

// extractAirports merges two passes by document position: explicit 3-letter
// IATA tokens, and full city/airport-name substring matches (longest name
// first so "new delhi" is not shadowed by "delhi").
func (h *HintExtractor) extractAirports(text, upper string) []string {
	var found []positioned
	for _, loc := range hintAirportRe.FindAllStringIndex(upper, -1) {
		code := upper[loc[0]:loc[1]]
		if falsePositiveAirports[code] || !h.ref.IsAirport(code) {
			continue
		}
		found = append(found, positioned{value: code, pos: loc[0]})
	}

	lower := strings.ToLower(text)
	covered := make([]bool, len(lower))
	for _, entry := range h.ref.AirportNames() {
		if len(entry.Name) < 4 {
			continue
		}
		start := 0
		for {
			idx := strings.Index(lower[start:], entry.Name)
			if idx < 0 {
				break
			}
			pos := start + idx
			end := pos + len(entry.Name)
			start = end
			if covered[pos] {
				continue
			}
			// Word-boundary guard on both edges
			if pos > 0 && wordCharRe.MatchString(string(lower[pos-1])) {
				continue
			}
			if end < len(lower) && wordCharRe.MatchString(string(lower[end])) {
				continue
			}
			for i := pos; i < end; i++ {
				covered[i] = true
			}
			found = append(found, positioned{value: entry.Code, pos: pos})
		}
	}

	sort.SliceStable(found, func(i, j int) bool { return found[i].pos < found[j].pos })

	var out []string
	seen := make(map[string]bool)
	for _, f := range found {
		if seen[f.value] {
			continue
		}
		seen[f.value] = true
		out = append(out, f.value)
	}
	return out
}

func extractClockTimes(text string) []string {
	var out []string
	for _, m := range hintTimeRe.FindAllStringSubmatch(text, -1) {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		switch strings.ToLower(m[3]) {
		case "pm":
			if hour != 12 {
				hour += 12
			}
		case "am":
			if hour == 12 {
				hour = 0
			}
		}
		if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
			continue
		}
		out = append(out, formatClock(hour, minute))
	}
	return out
}

func formatClock(hour, minute int) string {
	return padTwo(hour) + ":" + padTwo(minute)
}

func padTwo(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// extractDates delegates to the date extractor and discards candidates whose
// preceding context marks them as pasted tool output.
func (h *HintExtractor) extractDates(text string) []string {
	var out []string
	for _, m := range extractDateMatches(text, 0) {
		prefixStart := m.pos - 25
		if prefixStart < 0 {
			prefixStart = 0
		}
		prefix := strings.ToLower(text[prefixStart:m.pos])
		metadata := false
		for _, ind := range metadataIndicators {
			if strings.Contains(prefix, ind) {
				metadata = true
				break
			}
		}
		if metadata {
			h.logger.Debug("Discarding metadata-adjacent date", "date", m.raw)
			continue
		}
		out = append(out, m.raw)
	}
	return out
}

// extractFares partitions the text by flight-number positions and picks one
// fare per partition: the amount just before a "/adult" marker when present,
// else the first amount at or above the plausible-fare floor. Without any
// flight numbers only the overall first plausible amount is kept.
func (h *HintExtractor) extractFares(text string, flights []positioned, hints *entity.Hints) {
	amounts := hintFareRe.FindAllStringSubmatchIndex(text, -1)
	if len(amounts) == 0 {
		return
	}

	if len(flights) == 0 {
		for _, loc := range amounts {
			if v, ok := parseAmount(text[loc[2]:loc[3]]); ok && v >= h.minFare {
				hints.SaverFare = &v
				return
			}
		}
		// Nothing crossed the floor; fall back to the first amount at all.
		if v, ok := parseAmount(text[amounts[0][2]:amounts[0][3]]); ok {
			hints.SaverFare = &v
		}
		return
	}

	hints.FaresByFlight = make(map[string]int)
	for i, f := range flights {
		partStart := f.pos
		partEnd := len(text)
		if i+1 < len(flights) {
			partEnd = flights[i+1].pos
		}
		fare, ok := h.pickPartitionFare(text, amounts, partStart, partEnd)
		if !ok {
			continue
		}
		hints.FaresByFlight[f.value] = fare
		if hints.SaverFare == nil {
			v := fare
			hints.SaverFare = &v
		}
	}
}

func (h *HintExtractor) pickPartitionFare(text string, amounts [][]int, start, end int) (int, bool) {
	adult := hintAdultRe.FindAllStringIndex(text, -1)
	var fallback int
	var haveFallback bool
	for _, loc := range amounts {
		if loc[0] < start || loc[0] >= end {
			continue
		}
		v, ok := parseAmount(text[loc[2]:loc[3]])
		if !ok {
			continue
		}
		for _, a := range adult {
			if a[0] >= loc[1] && a[0] < end && a[0]-loc[1] <= 15 {
				return v, true
			}
		}
		if !haveFallback && v >= h.minFare {
			fallback = v
			haveFallback = true
		}
	}
	return fallback, haveFallback
}

func parseAmount(s string) (int, bool) {
	v, err := strconv.Atoi(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return 0, false
	}
	return v, true
}

func (h *HintExtractor) extractBaggage(text string, hints *entity.Hints) {
	for _, loc := range hintBagRe.FindAllStringSubmatchIndex(text, -1) {
		ctxStart := loc[0] - 20
		if ctxStart < 0 {
			ctxStart = 0
		}
		ctxEnd := loc[1] + 10
		if ctxEnd > len(text) {
			ctxEnd = len(text)
		}
		context := strings.ToLower(text[ctxStart:ctxEnd])
		if strings.Contains(context, "emission") || strings.Contains(context, "co2") {
			continue
		}
		qty := text[loc[2]:loc[3]]
		unit := strings.ToLower(text[loc[4]:loc[5]])
		hints.Baggage = qty + unit
		return
	}
}
