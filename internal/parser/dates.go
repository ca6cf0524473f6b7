package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// flightDateLayout is the canonical rendering of an itinerary date.
const flightDateLayout = "02 Jan 06"

const monthAlt = `Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec`

var (
	weekdayPrefixRe = regexp.MustCompile(`^[A-Za-z]{3,9},?\s*`)
	ordinalRe       = regexp.MustCompile(`(?i)(\d+)(st|nd|rd|th)\b`)
	dayOnlyRe       = regexp.MustCompile(`(?i)^\d{1,2}(st|nd|rd|th)?$`)

	// The five date pattern families, tried in this order against the text.
	datePatterns = []*regexp.Regexp{
		// GDS glued: 18APR, 05JAN26
		regexp.MustCompile(`(?i)\b(\d{1,2})(` + monthAlt + `)(\d{2})?\b`),
		// 30 Jan 26 / 30th January 2026
		regexp.MustCompile(`(?i)\b\d{1,2}(?:st|nd|rd|th)?\s+(?:` + monthAlt + `)[a-z]*\b(?:[,\s]+(?:20)?\d{2})?(?:[^\d]|$)`),
		// Jan 30, 2026 / January 30
		regexp.MustCompile(`(?i)\b(?:` + monthAlt + `)[a-z]*\s+\d{1,2}(?:st|nd|rd|th)?\b(?:[,\s]+(?:20)?\d{2})?(?:[^\d]|$)`),
		// ISO 2026-01-30
		regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`),
		// Numeric 30/01/2026 (day first)
		regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{4})\b`),
	}

	monthNumbers = map[string]time.Month{
		"jan": time.January, "feb": time.February, "mar": time.March,
		"apr": time.April, "may": time.May, "jun": time.June,
		"jul": time.July, "aug": time.August, "sep": time.September,
		"oct": time.October, "nov": time.November, "dec": time.December,
	}

	dateLayoutsWithYear = []string{
		"2 Jan 06", "2 Jan 2006",
		"Jan 2 06", "Jan 2 2006",
		"2 January 06", "2 January 2006",
		"January 2 06", "January 2 2006",
		"2-Jan-06", "2-Jan-2006",
		"2006-01-02", "2/1/2006",
	}
	dateLayoutsWithoutYear = []string{
		"2 Jan", "Jan 2", "2 January", "January 2",
	}
)

// dateMatch is one date-like occurrence in the source text.
type dateMatch struct {
	raw string
	pos int
}

// CleanDateString strips weekday prefixes, ordinal suffixes and commas from a
// human date spelling, leaving something the layout list can parse.
func CleanDateString(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || s == "N/A" || s == "None" {
		return ""
	}
	if weekdayPrefixRe.MatchString(s) && !startsWithMonth(s) {
		s = weekdayPrefixRe.ReplaceAllString(s, "")
	}
	s = ordinalRe.ReplaceAllString(s, "$1")
	s = strings.ReplaceAll(s, ",", " ")
	s = strings.Join(strings.Fields(s), " ")
	return s
}

func startsWithMonth(s string) bool {
	if len(s) < 3 {
		return false
	}
	_, ok := monthNumbers[strings.ToLower(s[:3])]
	return ok
}

// ParseFlightDate parses a cleaned human date spelling. Dates lacking a year
// take defaultYear. Two-digit years are treated as 20xx.
func ParseFlightDate(s string, defaultYear int) (time.Time, bool) {
	cleaned := CleanDateString(s)
	if cleaned == "" {
		return time.Time{}, false
	}
	// Glued GDS form first: 18APR / 18APR26
	if m := datePatterns[0].FindStringSubmatch(cleaned); m != nil && m[0] == cleaned {
		return gdsDate(m[1], m[2], m[3], defaultYear)
	}
	for _, layout := range dateLayoutsWithYear {
		if t, err := time.Parse(layout, cleaned); err == nil {
			if t.Year() < 2000 {
				t = t.AddDate(100, 0, 0)
			}
			return atNoon(t), true
		}
	}
	for _, layout := range dateLayoutsWithoutYear {
		if t, err := time.Parse(layout, cleaned); err == nil {
			year := defaultYear
			if year == 0 {
				year = time.Now().Year()
			}
			return time.Date(year, t.Month(), t.Day(), 12, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

func gdsDate(day, mon, yr string, defaultYear int) (time.Time, bool) {
	d, err := strconv.Atoi(day)
	if err != nil {
		return time.Time{}, false
	}
	month, ok := monthNumbers[strings.ToLower(mon)]
	if !ok {
		return time.Time{}, false
	}
	year := defaultYear
	if yr != "" {
		y, err := strconv.Atoi(yr)
		if err != nil {
			return time.Time{}, false
		}
		year = 2000 + y
	}
	if year == 0 {
		year = time.Now().Year()
	}
	if !validCalendarDay(d, month) {
		return time.Time{}, false
	}
	// Noon avoids DST edge cases in later offset math.
	return time.Date(year, month, d, 12, 0, 0, 0, time.UTC), true
}

func atNoon(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.UTC)
}

// validCalendarDay checks day-of-month bounds. February permits 29 regardless
// of year: a two-digit or missing year makes leap-ness unknowable here.
func validCalendarDay(day int, month time.Month) bool {
	if day < 1 {
		return false
	}
	switch month {
	case time.February:
		return day <= 29
	case time.April, time.June, time.September, time.November:
		return day <= 30
	default:
		return day <= 31
	}
}

// FormatFlightDate renders a date in the canonical "dd Mon yy" form.
func FormatFlightDate(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format(flightDateLayout)
}

// ExtractDates finds every date-like, calendar-valid spelling in the text
// across all pattern families, in document order, deduplicated by parsed
// value. Raw matched substrings are returned so each is verifiably present
// in the source.
func ExtractDates(text string, defaultYear int) []string {
	matches := extractDateMatches(text, defaultYear)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.raw)
	}
	return out
}

func extractDateMatches(text string, defaultYear int) []dateMatch {
	var all []dateMatch
	var claimed [][2]int
	seen := make(map[string]bool)
	for _, re := range datePatterns {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			// A span claimed by an earlier family is off limits: "18 Apr 26"
			// must not also yield an "Apr 26" reading of its year token.
			if overlapsAny(claimed, loc[0], loc[1]) {
				continue
			}
			raw := strings.TrimSpace(strings.Trim(text[loc[0]:loc[1]], `.,;:"'`))
			parsed, ok := ParseFlightDate(raw, defaultYear)
			if !ok {
				continue
			}
			claimed = append(claimed, [2]int{loc[0], loc[1]})
			key := parsed.Format(flightDateLayout)
			if seen[key] {
				continue
			}
			seen[key] = true
			all = append(all, dateMatch{raw: raw, pos: loc[0]})
		}
	}
	// Document order across families
	for i := 1; i < len(all); i++ {
		for j := i; j > 0 && all[j].pos < all[j-1].pos; j-- {
			all[j], all[j-1] = all[j-1], all[j]
		}
	}
	return all
}

func overlapsAny(spans [][2]int, start, end int) bool {
	for _, s := range spans {
		if start < s[1] && end > s[0] {
			return true
		}
	}
	return false
}

// DateInText verifies a date spelling actually occurs in the source text,
// tolerating whitespace and ordering variations. This is the anti-hallucination
// backstop: a date that fails this check is never attributed to the itinerary.
func DateInText(dateStr, text string) bool {
	clean := strings.ToLower(CleanDateString(dateStr))
	if clean == "" {
		return false
	}
	lower := strings.ToLower(text)

	if strings.Contains(lower, clean) {
		return true
	}
	fields := strings.Fields(clean)
	if len(fields) > 1 {
		// Flexible whitespace between tokens
		parts := make([]string, len(fields))
		for i, f := range fields {
			parts[i] = regexp.QuoteMeta(f)
		}
		if regexp.MustCompile(strings.Join(parts, `\s*`)).MatchString(lower) {
			return true
		}
		if strings.Contains(lower, strings.Join(fields, "")) {
			return true
		}
	}
	// Day+month alone, forward and reversed
	day, month, ok := dayAndMonth(fields)
	if !ok {
		return false
	}
	fwd := regexp.MustCompile(fmt.Sprintf(`\b0?%d(?:st|nd|rd|th)?\s*(?:of\s+)?%s`, day, month))
	rev := regexp.MustCompile(fmt.Sprintf(`\b%s[a-z]*\.?,?\s*0?%d\b`, month, day))
	return fwd.MatchString(lower) || rev.MatchString(lower)
}

func dayAndMonth(fields []string) (int, string, bool) {
	var day int
	var month string
	for _, f := range fields {
		if d, err := strconv.Atoi(f); err == nil && d >= 1 && d <= 31 && day == 0 {
			day = d
			continue
		}
		if len(f) >= 3 {
			if _, ok := monthNumbers[f[:3]]; ok && month == "" {
				month = f[:3]
			}
		}
	}
	return day, month, day > 0 && month != ""
}

// PickBestDate resolves the final departure date. Regex-found dates are
// authoritative. A date arriving only from the external extractor is accepted
// only when calendar-valid and verifiably present in the source text;
// otherwise the result is "N/A" — never today's date, never an inference.
func PickBestDate(llmDate string, regexDates []string, text string, defaultYear int) string {
	for _, d := range regexDates {
		if parsed, ok := ParseFlightDate(d, defaultYear); ok {
			return FormatFlightDate(parsed)
		}
	}
	if llmDate == "" || llmDate == "N/A" {
		return "N/A"
	}
	if dayOnlyRe.MatchString(strings.TrimSpace(llmDate)) {
		// A bare day number is a hallucination artifact, not a date.
		return "N/A"
	}
	parsed, ok := ParseFlightDate(llmDate, defaultYear)
	if !ok {
		return "N/A"
	}
	if !DateInText(llmDate, text) {
		return "N/A"
	}
	return FormatFlightDate(parsed)
}
