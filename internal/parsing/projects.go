package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/taxonomy"
	"github.com/jonathan/resume-parser/internal/types"
)

const (
	maxTechItemWords = 3
	maxTechItemChars = 25
)

var (
	trailingParen = regexp.MustCompile(`^(.*?)\s*\(([^()]*)\)\s*$`)
	techListSplit = regexp.MustCompile(`\s*(?:[,;|/&]|\band\b)\s*`)
)

// ExtractProjects scans the projects zone, opening a project at every line
// whose title score reaches threshold. Other lines become description of the
// open project and contribute any technologies they mention.
func ExtractProjects(zones types.TextZone, threshold int, tax *taxonomy.Taxonomy) []types.ProjectEntry {
	projects := []types.ProjectEntry{}

	var current *types.ProjectEntry
	flush := func() {
		if current == nil {
			return
		}
		current.TechStack = DedupTechStack(current.TechStack, tax)
		projects = append(projects, *current)
		current = nil
	}

	for _, raw := range zones.Lines(types.ZoneProjects) {
		line := stripBullet(raw)
		if line == "" {
			continue
		}

		if score := ScoreTitle(raw, tax); score.IsTitle(threshold) {
			flush()
			title, tech := splitProjectTitle(line, tax)
			current = &types.ProjectEntry{
				Title:       title,
				TechStack:   tech,
				Description: []string{},
				Confidence:  score.Score,
			}
			continue
		}

		if current == nil {
			continue // no project to attach to
		}
		current.Description = append(current.Description, line)
		if loc := tax.FindTechLabel(line); loc != nil {
			current.TechStack = append(current.TechStack, splitTechList(line[loc[1]:])...)
		}
		current.TechStack = append(current.TechStack, mentionedTechnologies(line, tax)...)
	}
	flush()

	return projects
}

// splitProjectTitle separates a tech stack from a title line. The first rule
// that yields a list wins: trailing parenthetical, connector phrase, label.
func splitProjectTitle(line string, tax *taxonomy.Taxonomy) (string, []string) {
	if m := trailingParen.FindStringSubmatch(line); m != nil {
		if items := splitTechList(m[2]); looksLikeTechList(items, tax) {
			return trimSeparators(m[1]), items
		}
	}

	if loc := tax.FindTechConnector(line); loc != nil && loc[0] > 0 {
		if items := splitTechList(line[loc[1]:]); len(items) > 0 {
			return trimSeparators(line[:loc[0]]), items
		}
	}

	if loc := tax.FindTechLabel(line); loc != nil {
		if items := splitTechList(line[loc[1]:]); len(items) > 0 {
			if title := trimSeparators(line[:loc[0]]); title != "" {
				return title, items
			}
			return line, items
		}
	}

	return line, nil
}

func splitTechList(s string) []string {
	s = strings.TrimSpace(strings.TrimRight(strings.TrimSpace(s), "."))
	var items []string
	for _, item := range techListSplit.Split(s, -1) {
		if item = strings.Trim(item, " ()[]"); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// looksLikeTechList accepts short items without stray numbers, provided at
// least one is a known technology or there are several of them
func looksLikeTechList(items []string, tax *taxonomy.Taxonomy) bool {
	if len(items) == 0 {
		return false
	}
	known := 0
	for _, item := range items {
		if len(strings.Fields(item)) > maxTechItemWords || len(item) > maxTechItemChars {
			return false
		}
		_, ok := tax.LookupSkill(item)
		if ok {
			known++
		} else if hasDigit(item) {
			return false
		}
	}
	return known > 0 || len(items) >= 2
}

// mentionedTechnologies lists known technologies named in free text, in
// taxonomy order. Ambiguous short names are never matched here.
func mentionedTechnologies(text string, tax *taxonomy.Taxonomy) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, skill := range tax.Skills {
		if skill.MatchesLower(lower) {
			found = append(found, skill.Name)
		}
	}
	return found
}

// leadingTechLabel returns the label when line opens with one ("Tech Stack: ...")
func leadingTechLabel(line string, tax *taxonomy.Taxonomy) string {
	loc := tax.FindTechLabel(line)
	if loc == nil || strings.TrimSpace(line[:loc[0]]) != "" {
		return ""
	}
	return strings.TrimSpace(line[loc[0]:loc[1]])
}
