package parsing

import (
	"strings"
	"unicode"

	"github.com/jonathan/resume-parser/internal/taxonomy"
)

// NormalizeTechName normalizes a technology name found in project text.
// Names that already carry capitals keep their casing; lower-case names are
// mapped to the taxonomy's canonical form, upper-cased when short ("c", "r"),
// or otherwise capitalized.
func NormalizeTechName(name string, tax *taxonomy.Taxonomy) string {
	// Trim whitespace and trailing punctuation
	normalized := strings.TrimSpace(name)
	normalized = strings.TrimRight(normalized, ".,;:")
	normalized = strings.TrimSpace(normalized)
	if normalized == "" {
		return ""
	}

	// Mixed or upper case is how the author wrote it; keep it
	if normalized != strings.ToLower(normalized) {
		return normalized
	}

	// Short names are acronyms or single-letter languages
	if len([]rune(normalized)) <= 2 {
		return strings.ToUpper(normalized)
	}

	if canonical, ok := tax.LookupSkill(normalized); ok {
		return canonical
	}

	r := []rune(normalized)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// DedupTechStack normalizes every name and drops case-insensitive duplicates,
// keeping the first occurrence
func DedupTechStack(names []string, tax *taxonomy.Taxonomy) []string {
	result := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))

	for _, name := range names {
		normalized := NormalizeTechName(name, tax)
		if normalized == "" {
			continue // Skip empty names
		}

		key := strings.ToLower(normalized)
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, normalized)
	}

	return result
}
