package parser

import (
	"regexp"
	"strconv"
	"strings"

	"flightcast-service/internal/refdata"
)

// TextNormalizer cleans raw itinerary text before any extraction runs. It is
// a pure transformation: no side effects, and idempotent on already-normalized
// text. Steps run in a fixed order — later steps assume earlier ones ran.
type TextNormalizer struct {
	ref *refdata.Store
}

// NewTextNormalizer creates a normalizer backed by the reference store, which
// resolves the glued-token ambiguities (airport pairs, DDMon vs airport).
func NewTextNormalizer(ref *refdata.Store) *TextNormalizer {
	return &TextNormalizer{ref: ref}
}

var cityAbbrevs = []struct {
	re   *regexp.Regexp
	full string
}{
	{regexp.MustCompile(`(?i)\bkol\b`), "Kolkata"},
	{regexp.MustCompile(`(?i)\bcal\b`), "Kolkata"},
	{regexp.MustCompile(`(?i)\bdel\b`), "Delhi"},
	{regexp.MustCompile(`(?i)\bbom\b`), "Mumbai"},
	{regexp.MustCompile(`(?i)\bmum\b`), "Mumbai"},
	{regexp.MustCompile(`(?i)\bblr\b`), "Bengaluru"},
	{regexp.MustCompile(`(?i)\bban\b`), "Bengaluru"},
	{regexp.MustCompile(`(?i)\bmad\b`), "Chennai"},
	{regexp.MustCompile(`(?i)\bche\b`), "Chennai"},
	{regexp.MustCompile(`(?i)\bhyd\b`), "Hyderabad"},
	{regexp.MustCompile(`(?i)\bsin\b`), "Singapore"},
	{regexp.MustCompile(`(?i)\bdxb\b`), "Dubai"},
	{regexp.MustCompile(`(?i)\bgoa\b`), "Goa"},
	{regexp.MustCompile(`(?i)\bpat\b`), "Patna"},
	{regexp.MustCompile(`(?i)\bgau\b`), "Guwahati"},
}

var (
	spacesRe        = regexp.MustCompile(`[^\S\n]+`)
	blankLinesRe    = regexp.MustCompile(`\n{3,}`)
	hrsMinRe        = regexp.MustCompile(`(?i)(\d+)\s*hrs?\s*(\d+)\s*min(?:ute)?s?`)
	hoursMinutesRe  = regexp.MustCompile(`(?i)(\d+)\s*hours?\s*(\d+)\s*minutes?`)
	colonHoursRe    = regexp.MustCompile(`(?i)(\d+):(\d+)\s*(?:hrs?|hours?)`)
	rupeeRe         = regexp.MustCompile(`(?i)\bRs\.?\s*`)
	inrRe           = regexp.MustCompile(`(?i)\bINR\s*`)
	aircraftGlueRe  = regexp.MustCompile(`(\d{3})([A-Z]{2}\s*\d{1,4})`)
	timeAmPmGlueRe  = regexp.MustCompile(`(?i)(\d{1,2}[:.]\d{2})\s*(AM|PM)([A-Z])`)
	amPmLetterRe    = regexp.MustCompile(`(?i)([AP]M)([a-zA-Z])`)
	amPmPlusRe      = regexp.MustCompile(`(?i)([AP]M)\+(\d)`)
	plusLetterRe    = regexp.MustCompile(`\+(\d)([A-Za-z])`)
	timePlusRe      = regexp.MustCompile(`(\d{2}:\d{2})\+(\d)`)
	layoverGlueRe   = regexp.MustCompile(`(?i)(layover)([A-Z])`)
	emissionsRe     = regexp.MustCompile(`(?i)emissions?\s*estimate:?[\d\s,]+kg\s*co2e?`)
	co2Re           = regexp.MustCompile(`(?i)[\d\s,]+kg\s*co2e`)
	dayMonGlueRe    = regexp.MustCompile(`\b(\d{1,2})([A-Za-z]{3})\b`)
	airportPairRe   = regexp.MustCompile(`\b([A-Z]{3})([A-Z]{3})\b`)
	gluedTimePairRe = regexp.MustCompile(`\s(\d{4})\s+(\d{4})(\s|$)`)
)

// Normalize applies the full cleanup sequence to raw input text. Line breaks
// survive (GDS section dividers are line-oriented); runs of other whitespace
// collapse to single spaces.
func (n *TextNormalizer) Normalize(raw string) string {
	text := strings.TrimSpace(raw)
	text = spacesRe.ReplaceAllString(text, " ")
	text = blankLinesRe.ReplaceAllString(text, "\n\n")

	text = hrsMinRe.ReplaceAllString(text, "${1}h ${2}m")
	text = hoursMinutesRe.ReplaceAllString(text, "${1}h ${2}m")
	text = colonHoursRe.ReplaceAllString(text, "${1}h ${2}m")

	text = rupeeRe.ReplaceAllString(text, "₹")
	text = inrRe.ReplaceAllString(text, "₹")

	for _, abbrev := range cityAbbrevs {
		full := abbrev.full
		text = abbrev.re.ReplaceAllStringFunc(text, func(tok string) string {
			// An all-caps token is an IATA code, not an agent's shorthand;
			// expanding it would destroy the GDS path.
			if tok == strings.ToUpper(tok) {
				return tok
			}
			return full
		})
	}

	text = aircraftGlueRe.ReplaceAllString(text, "$1 $2")
	text = timeAmPmGlueRe.ReplaceAllString(text, "$1 $2 $3")
	text = amPmLetterRe.ReplaceAllString(text, "$1 $2")
	text = amPmPlusRe.ReplaceAllString(text, "$1 +$2 ")
	text = plusLetterRe.ReplaceAllString(text, "+$1 $2")
	text = timePlusRe.ReplaceAllString(text, "$1 +$2 ")
	text = layoverGlueRe.ReplaceAllString(text, "$1 $2")

	text = emissionsRe.ReplaceAllString(text, "")
	text = co2Re.ReplaceAllString(text, "")

	text = n.splitDayMonth(text)
	text = n.splitAirportPairs(text)
	text = n.formatGdsTimes(text)

	text = spacesRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// splitDayMonth inserts a space into a glued DDMon token (18APR -> 18 APR).
// A trailing 3-letter run that is itself a known airport code is left alone:
// the token was never a date.
func (n *TextNormalizer) splitDayMonth(text string) string {
	return dayMonGlueRe.ReplaceAllStringFunc(text, func(tok string) string {
		m := dayMonGlueRe.FindStringSubmatch(tok)
		letters := strings.ToUpper(m[2])
		if n.ref.IsAirport(letters) {
			return tok
		}
		if _, ok := monthNumbers[strings.ToLower(letters)]; !ok {
			return tok
		}
		return m[1] + " " + m[2]
	})
}

// splitAirportPairs splits a glued 6-letter run into two airport codes only
// when both halves resolve against reference data, so valid 6-letter tokens
// are never corrupted.
func (n *TextNormalizer) splitAirportPairs(text string) string {
	return airportPairRe.ReplaceAllStringFunc(text, func(tok string) string {
		first, second := tok[:3], tok[3:]
		if n.ref.IsAirport(first) && n.ref.IsAirport(second) {
			return first + " " + second
		}
		return tok
	})
}

// formatGdsTimes rewrites two glued 4-digit numbers as HH:MM HH:MM, but only
// when an airport code appears within the 20 preceding characters — the
// signature of a schedule line, not arbitrary numerics.
func (n *TextNormalizer) formatGdsTimes(text string) string {
	var b strings.Builder
	last := 0
	for _, loc := range gluedTimePairRe.FindAllStringSubmatchIndex(text, -1) {
		start := loc[0]
		prefixStart := start - 20
		if prefixStart < 0 {
			prefixStart = 0
		}
		if !n.hasAirportToken(text[prefixStart:start]) {
			continue
		}
		t1 := text[loc[2]:loc[3]]
		t2 := text[loc[4]:loc[5]]
		h1, m1 := t1[:2], t1[2:]
		h2, m2 := t2[:2], t2[2:]
		if !validClockParts(h1, m1) || !validClockParts(h2, m2) {
			continue
		}
		b.WriteString(text[last:start])
		b.WriteString(" " + h1 + ":" + m1 + " " + h2 + ":" + m2)
		b.WriteString(text[loc[4]+4 : loc[1]])
		last = loc[1]
	}
	if last == 0 {
		return text
	}
	b.WriteString(text[last:])
	return b.String()
}

func (n *TextNormalizer) hasAirportToken(prefix string) bool {
	up := strings.ToUpper(prefix)
	for i := 0; i+3 <= len(up); i++ {
		tok := up[i : i+3]
		if tok[0] < 'A' || tok[0] > 'Z' {
			continue
		}
		if n.ref.IsAirport(tok) {
			return true
		}
	}
	return false
}

func validClockParts(h, m string) bool {
	hh, err := strconv.Atoi(h)
	if err != nil {
		return false
	}
	mm, err := strconv.Atoi(m)
	if err != nil {
		return false
	}
	return hh >= 0 && hh <= 23 && mm >= 0 && mm <= 59
}
