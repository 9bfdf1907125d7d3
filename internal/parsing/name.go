package parsing

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/jonathan/resume-parser/internal/sections"
	"github.com/jonathan/resume-parser/internal/taxonomy"
	"github.com/jonathan/resume-parser/internal/types"
)

// DefaultNameScanLines is how many leading lines are searched for the name
const DefaultNameScanLines = 20

const (
	minNameWords = 2
	maxNameWords = 4
)

// ExtractName returns the first of the leading maxLines lines that looks like a
// person's name: 2-4 words of letters (and periods), no stop phrase, and either
// fully upper-case or capitalized word by word.
func ExtractName(text string, maxLines int, tax *taxonomy.Taxonomy) types.ExtractedField[string] {
	if maxLines <= 0 {
		maxLines = DefaultNameScanLines
	}

	lines := sections.SplitLines(text)
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}

	for i, line := range lines {
		candidate := strings.TrimSpace(line)
		if isNameCandidate(candidate, tax) {
			return types.NewField(titleCase(candidate), 85, nameSource(i))
		}
	}
	return types.NotFound("Unknown", "no name-shaped line in the document header")
}

func nameSource(index int) string {
	return "name-shaped line " + strconv.Itoa(index+1) + " of the header"
}

func isNameCandidate(line string, tax *taxonomy.Taxonomy) bool {
	if line == "" {
		return false
	}
	if tax.HasStopPhrase(line) {
		return false
	}

	words := strings.Fields(line)
	if len(words) < minNameWords || len(words) > maxNameWords {
		return false
	}
	if hasDigit(line) {
		return false
	}
	for _, r := range line {
		if !unicode.IsLetter(r) && r != ' ' && r != '.' {
			return false
		}
	}

	return line == strings.ToUpper(line) || allCapitalized(words)
}

func allCapitalized(words []string) bool {
	for _, w := range words {
		r := []rune(w)
		if len(r) == 0 || !unicode.IsUpper(r[0]) {
			return false
		}
	}
	return true
}
