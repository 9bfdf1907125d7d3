package parsing

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-parser/internal/sections"
	"github.com/jonathan/resume-parser/internal/taxonomy"
	"github.com/jonathan/resume-parser/internal/types"
)

// DefaultEducationProximity is the largest line distance at which a degree and
// an institute are considered the same entry
const DefaultEducationProximity = 3

const (
	pairedEducationConfidence   = 85
	unpairedEducationConfidence = 60
)

var (
	cgpaRegex       = regexp.MustCompile(`(?i)\b(?:cgpa|gpa|cpi|sgpa)\s*[:\-]?\s*(\d{1,2}(?:\.\d{1,2})?)(?:\s*/\s*(\d{1,2}(?:\.\d+)?))?`)
	percentageRegex = regexp.MustCompile(`(\d{1,3}(?:\.\d{1,2})?)\s*%`)
	yearRangeRegex  = regexp.MustCompile(`(?i)\b((?:19|20)\d{2})\s*(?:-|–|—|to)\s*((?:19|20)\d{2}|present|current|ongoing|now)\b`)
	yearRegex       = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	parenRegex      = regexp.MustCompile(`\([^)]*\)`)
	instituteSplit  = regexp.MustCompile(`\s*(?:,|\||\s-\s|\s–\s|\s—\s)\s*`)

	fieldAfterIn   = regexp.MustCompile(`(?i)\bin\s+([a-z][a-z&.\s]*?)\s*(?:[,|(\-–—]|\bfrom\b|\bat\b|\d|$)`)
	fieldAfterDash = regexp.MustCompile(`\s[-–—]\s+([A-Za-z][A-Za-z&.\s]*?)\s*(?:[,|(]|\d|$)`)
)

// ExtractEducation pairs degree lines with the nearest unused institute line
// within window lines; a window of zero or less means the default. Entries keep
// document order of their degree lines, and an unpaired degree still yields an
// entry with an empty institute.
func ExtractEducation(zones types.TextZone, text string, window int, tax *taxonomy.Taxonomy) []types.EducationEntry {
	if window <= 0 {
		window = DefaultEducationProximity
	}

	lines := zones.Lines(types.ZoneEducation)
	if !zones.Has(types.ZoneEducation) {
		lines = sections.SplitLines(text)
	}

	type degreeHit struct {
		index int
		label string
	}
	var degrees []degreeHit
	var institutes []int
	for i, line := range lines {
		for _, d := range tax.Degrees {
			if d.Find(line) != "" {
				degrees = append(degrees, degreeHit{index: i, label: d.Label})
				break
			}
		}
		if tax.HasInstituteKeyword(line) {
			institutes = append(institutes, i)
		}
	}

	entries := make([]types.EducationEntry, 0, len(degrees))
	used := make(map[int]bool, len(institutes))
	for _, deg := range degrees {
		inst := nearestInstitute(deg.index, institutes, used, window)

		entry := types.EducationEntry{
			Degree:     deg.label,
			Field:      fieldOfStudy(lines[deg.index], tax),
			Confidence: unpairedEducationConfidence,
		}
		lo, hi := deg.index, deg.index
		if inst >= 0 {
			used[inst] = true
			entry.Institute = instituteName(lines[inst], tax)
			entry.Confidence = pairedEducationConfidence
			lo, hi = min(lo, inst), max(hi, inst)
		}

		span := lines[lo : hi+1]
		entry.CGPA = findCGPA(span)
		entry.Percentage = findPercentage(span)
		entry.Year = findYear(span)
		entries = append(entries, entry)
	}
	return entries
}

// nearestInstitute returns the unused institute index closest to degree, or -1.
// Candidates are in ascending order so equal distances keep the earlier line.
func nearestInstitute(degree int, institutes []int, used map[int]bool, window int) int {
	best, bestDist := -1, window+1
	for _, idx := range institutes {
		if used[idx] {
			continue
		}
		dist := idx - degree
		if dist < 0 {
			dist = -dist
		}
		if dist < bestDist {
			best, bestDist = idx, dist
		}
	}
	return best
}

func fieldOfStudy(line string, tax *taxonomy.Taxonomy) string {
	if m := fieldAfterIn.FindStringSubmatch(line); m != nil {
		if field := collapseSpaces(trimSeparators(m[1])); field != "" && !tax.HasInstituteKeyword(field) {
			return displayCase(strings.ToLower(field))
		}
	}
	if m := fieldAfterDash.FindStringSubmatch(line); m != nil {
		if field := collapseSpaces(trimSeparators(m[1])); field != "" && !tax.HasInstituteKeyword(field) {
			return displayCase(strings.ToLower(field))
		}
	}
	lower := strings.ToLower(line)
	for _, known := range tax.KnownFields {
		if strings.Contains(lower, known) {
			return displayCase(known)
		}
	}
	return ""
}

func instituteName(line string, tax *taxonomy.Taxonomy) string {
	cleaned := parenRegex.ReplaceAllString(line, " ")
	for _, segment := range instituteSplit.Split(cleaned, -1) {
		if !tax.HasInstituteKeyword(segment) {
			continue
		}
		segment = yearRangeRegex.ReplaceAllString(segment, " ")
		segment = yearRegex.ReplaceAllString(segment, " ")
		return collapseSpaces(trimSeparators(segment))
	}
	return collapseSpaces(trimSeparators(cleaned))
}

func findCGPA(lines []string) *float64 {
	for _, line := range lines {
		m := cgpaRegex.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil || v <= 0 || v > 10 {
			continue
		}
		return &v
	}
	return nil
}

func findPercentage(lines []string) *float64 {
	for _, line := range lines {
		for _, m := range percentageRegex.FindAllStringSubmatch(line, -1) {
			v, err := strconv.ParseFloat(m[1], 64)
			if err != nil || v <= 0 || v > 100 {
				continue
			}
			return &v
		}
	}
	return nil
}

// findYear prefers an explicit range, otherwise the last single year in the span
func findYear(lines []string) string {
	for _, line := range lines {
		if m := yearRangeRegex.FindStringSubmatch(line); m != nil {
			end := m[2]
			if !hasDigit(end) {
				end = titleCase(end)
			}
			return m[1] + " - " + end
		}
	}
	last := ""
	for _, line := range lines {
		if years := yearRegex.FindAllString(line, -1); len(years) > 0 {
			last = years[len(years)-1]
		}
	}
	return last
}
