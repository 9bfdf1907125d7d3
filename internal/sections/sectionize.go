// Package sections splits raw resume text into labeled zones.
package sections

import (
	"strings"

	"github.com/jonathan/resume-parser/internal/taxonomy"
	"github.com/jonathan/resume-parser/internal/types"
)

// maxHeaderWords is the exclusive upper bound on words in a header line
const maxHeaderWords = 5

// SplitLines normalizes line endings and splits text into lines
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

// Sectionize assigns every line of text to exactly one zone in a single
// left-to-right pass. Short lines that match a zone keyword switch the current
// zone and are dropped; all other lines are appended to the current zone.
// Lines before the first header belong to the header zone.
func Sectionize(text string, tax *taxonomy.Taxonomy) types.TextZone {
	zones := make(map[types.ZoneLabel][]string)
	current := types.ZoneHeader
	headers := 0

	for _, line := range SplitLines(text) {
		if label, ok := ClassifyHeader(line, tax); ok {
			current = label
			headers++
			if _, exists := zones[label]; !exists {
				zones[label] = []string{}
			}
			continue
		}
		zones[current] = append(zones[current], line)
	}

	return types.NewTextZone(zones, headers)
}

// ClassifyHeader reports whether line is a section header and which zone it opens.
// Zones and their keywords are tried in table order; the first containment hit wins.
func ClassifyHeader(line string, tax *taxonomy.Taxonomy) (types.ZoneLabel, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return "", false
	}
	if len(strings.Fields(trimmed)) >= maxHeaderWords {
		return "", false
	}

	lower := strings.ToLower(trimmed)
	for _, zone := range tax.Zones {
		for _, keyword := range zone.Keywords {
			if strings.Contains(lower, keyword) {
				return zone.Zone, true
			}
		}
	}
	return "", false
}
