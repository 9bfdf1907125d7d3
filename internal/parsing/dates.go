package parsing

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	monthNames = `jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|june?|july?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?`
	dateToken  = `(?:(?:` + monthNames + `)\.?,?[ \t]*(?:19|20)\d{2}|\d{1,2}[/\-.](?:19|20)\d{2}|(?:19|20)\d{2})`
	presentTok = `present|current|ongoing|now|till\s+date|today|date`
	rangeSep   = `[ \t]*(?:-|–|—|to|till|until)[ \t]*`
)

var (
	dateRangeRegex = regexp.MustCompile(`(?i)\b(` + dateToken + `)` + rangeSep + `(` + dateToken + `|` + presentTok + `)\b`)
	monthYearRegex = regexp.MustCompile(`(?i)^(` + monthNames + `)\.?,?\s*((?:19|20)\d{2})$`)
	numericMonth   = regexp.MustCompile(`^(\d{1,2})[/\-.]((?:19|20)\d{2})$`)
	bareYearRegex  = regexp.MustCompile(`^((?:19|20)\d{2})$`)
	presentRegex   = regexp.MustCompile(`(?i)^(?:` + presentTok + `)$`)

	experiencePhrases = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*\+?\s*(?:years?|yrs?)\s+(?:of\s+)?(?:professional\s+|work\s+|industry\s+)?experience`),
		regexp.MustCompile(`(?i)experience\s*(?:of|:|-)?\s*(\d+(?:\.\d+)?)\s*\+?\s*(?:years?|yrs?)`),
		regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*\+?\s*(?:years?|yrs?)\s+(?:in|as)\s+(?:software|it|the\s+industry|development|engineering)`),
	}
)

var monthIndex = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March, "apr": time.April,
	"may": time.May, "jun": time.June, "jul": time.July, "aug": time.August,
	"sep": time.September, "oct": time.October, "nov": time.November, "dec": time.December,
}

// DateRange is one start/end pair found in text
type DateRange struct {
	Raw     string
	Start   time.Time
	End     time.Time
	Present bool
}

// Months returns the whole months between Start and End
func (r DateRange) Months() int {
	return (r.End.Year()-r.Start.Year())*12 + int(r.End.Month()-r.Start.Month())
}

// FindDateRanges returns every parseable range in text. Ranges that match the
// pattern but fail to parse, or that end before they start, are reported in
// the second return value and contribute nothing.
func FindDateRanges(text string, now time.Time) ([]DateRange, []error) {
	var ranges []DateRange
	var errs []error
	for _, m := range dateRangeRegex.FindAllStringSubmatch(text, -1) {
		r, err := parseDateRange(m[0], m[1], m[2], now)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		ranges = append(ranges, r)
	}
	return ranges, errs
}

func parseDateRange(raw, startTok, endTok string, now time.Time) (DateRange, error) {
	start, err := parseDateToken(startTok)
	if err != nil {
		return DateRange{}, err
	}

	r := DateRange{Raw: raw, Start: start}
	if presentRegex.MatchString(strings.TrimSpace(endTok)) {
		r.End = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		r.Present = true
	} else {
		end, err := parseDateToken(endTok)
		if err != nil {
			return DateRange{}, err
		}
		r.End = end
	}

	if r.End.Before(r.Start) {
		return DateRange{}, &DateParseError{Token: raw, Message: "range ends before it starts"}
	}
	return r, nil
}

// parseDateToken accepts "Jan 2020", "January, 2020", "01/2020", "1-2020" and
// "2020". A bare year means January.
func parseDateToken(tok string) (time.Time, error) {
	tok = strings.TrimSpace(tok)

	if m := monthYearRegex.FindStringSubmatch(tok); m != nil {
		year, err := strconv.Atoi(m[2])
		if err != nil {
			return time.Time{}, &DateParseError{Token: tok, Message: "invalid year", Cause: err}
		}
		month := monthIndex[strings.ToLower(m[1])[:3]]
		return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), nil
	}

	if m := numericMonth.FindStringSubmatch(tok); m != nil {
		month, err := strconv.Atoi(m[1])
		if err != nil {
			return time.Time{}, &DateParseError{Token: tok, Message: "invalid month", Cause: err}
		}
		if month < 1 || month > 12 {
			return time.Time{}, &DateParseError{Token: tok, Message: "month out of range"}
		}
		year, err := strconv.Atoi(m[2])
		if err != nil {
			return time.Time{}, &DateParseError{Token: tok, Message: "invalid year", Cause: err}
		}
		return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC), nil
	}

	if m := bareYearRegex.FindStringSubmatch(tok); m != nil {
		year, err := strconv.Atoi(m[1])
		if err != nil {
			return time.Time{}, &DateParseError{Token: tok, Message: "invalid year", Cause: err}
		}
		return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), nil
	}

	return time.Time{}, &DateParseError{Token: tok, Message: "unrecognized date"}
}

// isDateRangeLine reports whether line is nothing but a date range
func isDateRangeLine(line string) bool {
	line = trimSeparators(stripBullet(line))
	loc := dateRangeRegex.FindStringIndex(line)
	if loc == nil {
		return false
	}
	rest := trimSeparators(line[:loc[0]] + line[loc[1]:])
	return strings.Trim(rest, "()[] ") == ""
}

// monthsToYears converts months to years rounded to one decimal
func monthsToYears(months int) float64 {
	return math.Round(float64(months)/12*10) / 10
}
