package parsing

import (
	"strings"

	"github.com/jonathan/resume-parser/internal/taxonomy"
	"github.com/jonathan/resume-parser/internal/types"
)

const (
	// DefaultSkillsZoneMinimum is how many skills the skills section must
	// yield before the whole-document pass is skipped
	DefaultSkillsZoneMinimum = 3

	skillsZoneConfidence     = 90
	skillsDocumentConfidence = 70
)

// ExtractSkills matches the taxonomy against the skills zone first. When that
// finds fewer than minimum skills, the whole document is searched as well at
// lower confidence, adding only names not already found.
func ExtractSkills(zones types.TextZone, text string, minimum int, tax *taxonomy.Taxonomy) []types.ExtractedField[string] {
	skills := []types.ExtractedField[string]{}
	seen := make(map[string]struct{})

	add := func(names []string, confidence int, source string) {
		for _, name := range names {
			key := strings.ToLower(name)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			skills = append(skills, types.NewField(name, confidence, source))
		}
	}

	if zones.Has(types.ZoneSkills) {
		add(matchSkills(zones.Text(types.ZoneSkills), tax), skillsZoneConfidence, "taxonomy match in skills section")
	}
	if len(skills) < minimum {
		add(matchSkills(text, tax), skillsDocumentConfidence, "taxonomy match elsewhere in document")
	}
	return skills
}

// matchSkills returns canonical names in taxonomy order. Ambiguous short names
// ("c", "go", "r") count only when they are an item of a comma-separated list.
func matchSkills(text string, tax *taxonomy.Taxonomy) []string {
	lower := strings.ToLower(text)

	listed := make(map[string]struct{})
	for _, item := range listItems(lower) {
		if !tax.IsAmbiguous(item) {
			continue
		}
		if name, ok := tax.LookupSkill(item); ok {
			listed[name] = struct{}{}
		}
	}

	var names []string
	for _, skill := range tax.Skills {
		_, inList := listed[skill.Name]
		if inList || skill.MatchesLower(lower) {
			names = append(names, skill.Name)
		}
	}
	return names
}

// listItems splits every comma-bearing line into its items, dropping a leading
// "Label:" prefix
func listItems(text string) []string {
	var items []string
	for _, line := range strings.Split(text, "\n") {
		if !strings.Contains(line, ",") {
			continue
		}
		if i := strings.LastIndex(line, ":"); i >= 0 {
			line = line[i+1:]
		}
		for _, item := range listSplit.Split(stripBullet(line), -1) {
			if item = strings.Trim(item, " \t().[]"); item != "" {
				items = append(items, item)
			}
		}
	}
	return items
}
