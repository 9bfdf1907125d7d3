package parsing

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/resume-parser/internal/taxonomy"
	"github.com/jonathan/resume-parser/internal/types"
)

const (
	dateRangeConfidence  = 90
	experiencePhraseConf = 75
	maxCompanyLineWords  = 6
	openRoleConfidence   = 80
	firstRoleConfidence  = 60
)

// titleSeparators split a title line into title and company, tried in order
var titleSeparators = []*regexp.Regexp{
	regexp.MustCompile(`\s+\|\s+`),
	regexp.MustCompile(`\s+–\s+`),
	regexp.MustCompile(`\s+—\s+`),
	regexp.MustCompile(`\s+-\s+`),
	regexp.MustCompile(`(?i)\s+at\s+`),
	regexp.MustCompile(`(?i)\s+for\s+`),
	regexp.MustCompile(`,\s*`),
}

var (
	emptyParens   = regexp.MustCompile(`[(\[]\s*[)\]]`)
	presentSuffix = regexp.MustCompile(`(?i)\b(?:` + presentTok + `)\W*$`)
)

// ExtractYearsOfExperience sums the month deltas of every date range in the
// experience zone (the whole text when the zone is absent). Without any
// parseable range it falls back to explicit "N years of experience" phrases.
// Ranges that matched but could not be parsed are returned for diagnostics.
func ExtractYearsOfExperience(zones types.TextZone, text string, now time.Time) (types.ExtractedField[float64], []error) {
	scope := text
	if zones.Has(types.ZoneExperience) {
		scope = zones.Text(types.ZoneExperience)
	}

	ranges, skipped := FindDateRanges(scope, now)
	if len(ranges) > 0 {
		months := 0
		for _, r := range ranges {
			months += r.Months()
		}
		source := fmt.Sprintf("%d date ranges totalling %d months", len(ranges), months)
		return types.NewField(monthsToYears(months), dateRangeConfidence, source), skipped
	}

	for _, pattern := range experiencePhrases {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		years, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			skipped = append(skipped, &DateParseError{Token: m[0], Message: "invalid year count", Cause: err})
			continue
		}
		return types.NewField(years, experiencePhraseConf, "explicit phrase "+strconv.Quote(strings.TrimSpace(m[0]))), skipped
	}

	return types.NotFound(0.0, "no date ranges or experience phrases"), skipped
}

// ExtractWorkExperience scans the experience zone once, opening a new entry at
// every title line and attaching the following lines to it as company,
// duration or description.
func ExtractWorkExperience(zones types.TextZone, tax *taxonomy.Taxonomy) []types.WorkExperienceEntry {
	entries := []types.WorkExperienceEntry{}

	var (
		current      *types.WorkExperienceEntry
		awaitCompany bool
		above        *companyAbove // the previous plain line, if it could name a company
		fallback     *companyAbove // the line above the current company-less title
	)
	flush := func() {
		if current == nil {
			return
		}
		if current.Company == "" && fallback != nil {
			current.Company = fallback.name
			if fallback.described {
				// the previous entry was flushed just before this one opened
				prev := &entries[len(entries)-1]
				prev.Description = append(prev.Description[:fallback.index], prev.Description[fallback.index+1:]...)
			}
		}
		entries = append(entries, *current)
		current, fallback = nil, nil
	}

	for _, raw := range zones.Lines(types.ZoneExperience) {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if isDateRangeLine(line) {
			if current != nil && current.Duration == "" {
				current.Duration = collapseSpaces(dateRangeRegex.FindString(line))
			}
			above = nil
			continue
		}

		if isTitleLine(line, tax) {
			title, company, duration := splitTitleLine(line)
			candidate := above
			flush()
			current = &types.WorkExperienceEntry{
				Title:       title,
				Company:     company,
				Duration:    duration,
				Description: []string{},
			}
			awaitCompany = company == ""
			if awaitCompany {
				fallback = candidate
			}
			above = nil
			continue
		}

		plain := !isBullet(line) && len(strings.Fields(line)) <= maxCompanyLineWords

		if current != nil && awaitCompany && plain {
			current.Company, current.Duration = companyLine(line, current.Duration)
			awaitCompany = false
			above = nil
			continue
		}
		awaitCompany = false

		above = nil
		if plain && couldNameCompany(line, tax) {
			above = &companyAbove{name: trimSeparators(line)}
		}
		if current != nil {
			current.Description = append(current.Description, stripBullet(line))
			if above != nil {
				above.described, above.index = true, len(current.Description)-1
			}
		}
	}
	flush()

	return entries
}

// companyAbove is a short line directly above a title that names the company
// when nothing below the title does. A described line is also the index-th
// description line of the entry before the title and moves off it when used.
type companyAbove struct {
	name      string
	described bool
	index     int
}

// couldNameCompany rejects lines that read as a sentence or an achievement
func couldNameCompany(line string, tax *taxonomy.Taxonomy) bool {
	if strings.ContainsAny(line, ":.") || strings.ContainsAny(line, "0123456789") {
		return false
	}
	return !tax.IsActionVerb(firstWord(line))
}

// CurrentRole picks the title of the first open-ended position, or failing that
// the first position listed.
func CurrentRole(entries []types.WorkExperienceEntry) types.ExtractedField[string] {
	for _, e := range entries {
		if e.Title != "" && presentSuffix.MatchString(e.Duration) {
			return types.NewField(e.Title, openRoleConfidence, "position with an open-ended date range")
		}
	}
	for _, e := range entries {
		if e.Title != "" {
			return types.NewField(e.Title, firstRoleConfidence, "first listed position")
		}
	}
	return types.NotFound("", "no positions in the experience section")
}

// isTitleLine excludes action-verb sentences, full sentences and bullets, then
// requires a job-title keyword on a word boundary
func isTitleLine(line string, tax *taxonomy.Taxonomy) bool {
	if isBullet(line) || strings.HasSuffix(line, ".") {
		return false
	}
	if tax.IsActionVerb(firstWord(line)) {
		return false
	}
	return tax.HasJobTitleKeyword(line)
}

// splitTitleLine pulls an embedded date range out of the line, then splits the
// rest at the first separator that occurs
func splitTitleLine(line string) (title, company, duration string) {
	if loc := dateRangeRegex.FindStringIndex(line); loc != nil {
		duration = collapseSpaces(line[loc[0]:loc[1]])
		line = line[:loc[0]] + line[loc[1]:]
		line = emptyParens.ReplaceAllString(line, "")
	}
	line = trimSeparators(line)

	for _, sep := range titleSeparators {
		loc := sep.FindStringIndex(line)
		if loc == nil {
			continue
		}
		title = trimSeparators(line[:loc[0]])
		company = trimSeparators(line[loc[1]:])
		if next := titleSeparators[0].FindStringIndex(company); next != nil {
			company = trimSeparators(company[:next[0]])
		}
		return title, company, duration
	}
	return line, "", duration
}

// companyLine reads a company line that may carry the dates of the position
func companyLine(line, duration string) (string, string) {
	if loc := dateRangeRegex.FindStringIndex(line); loc != nil {
		if duration == "" {
			duration = collapseSpaces(line[loc[0]:loc[1]])
		}
		line = emptyParens.ReplaceAllString(line[:loc[0]]+line[loc[1]:], "")
	}
	company := trimSeparators(line)
	if next := titleSeparators[0].FindStringIndex(company); next != nil {
		company = trimSeparators(company[:next[0]])
	}
	return company, duration
}
