package parsing

import (
	"testing"

	"github.com/jonathan/resume-parser/internal/taxonomy"
	"github.com/jonathan/resume-parser/internal/types"
	"github.com/stretchr/testify/assert"
)

func skillValues(fields []types.ExtractedField[string]) []string {
	values := make([]string, 0, len(fields))
	for _, f := range fields {
		values = append(values, f.Value)
	}
	return values
}

func TestExtractSkills_SkillsZone(t *testing.T) {
	tax := taxonomy.MustDefault()
	zones := types.NewTextZone(map[types.ZoneLabel][]string{
		types.ZoneSkills: {"Languages: Python, Java, C, Go", "Tools: Docker, Git"},
	}, 1)

	got := ExtractSkills(zones, "Also used Kubernetes at work", DefaultSkillsZoneMinimum, tax)
	assert.Equal(t, []string{"Python", "Java", "C", "Go", "Docker", "Git"}, skillValues(got))
	for _, f := range got {
		assert.Equal(t, 90, f.Confidence)
	}
}

func TestExtractSkills_FallsBackToDocument(t *testing.T) {
	tax := taxonomy.MustDefault()
	zones := types.NewTextZone(map[types.ZoneLabel][]string{
		types.ZoneSkills: {"Python"},
	}, 1)
	text := "Python\nExperience with Docker and Kubernetes on AWS"

	got := ExtractSkills(zones, text, DefaultSkillsZoneMinimum, tax)
	assert.Equal(t, []string{"Python", "AWS", "Docker", "Kubernetes"}, skillValues(got))
	assert.Equal(t, 90, got[0].Confidence)
	for _, f := range got[1:] {
		assert.Equal(t, 70, f.Confidence)
	}
}

func TestExtractSkills_AmbiguousTermsNeedListContext(t *testing.T) {
	tax := taxonomy.MustDefault()

	got := ExtractSkills(types.NewTextZone(nil, 0), "I like to go swimming and code in C when I can", DefaultSkillsZoneMinimum, tax)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got = ExtractSkills(types.NewTextZone(nil, 0), "Familiar with: C, R, Swift", DefaultSkillsZoneMinimum, tax)
	assert.Equal(t, []string{"C", "Swift", "R"}, skillValues(got))
}

func TestExtractSkills_SymbolNames(t *testing.T) {
	tax := taxonomy.MustDefault()

	got := ExtractSkills(types.NewTextZone(nil, 0), "Wrote services in C++ and C#, frontends in node.js", DefaultSkillsZoneMinimum, tax)
	assert.Equal(t, []string{"C++", "C#", "Node.js"}, skillValues(got))
}

func TestExtractSkills_NoPartialWords(t *testing.T) {
	tax := taxonomy.MustDefault()

	got := ExtractSkills(types.NewTextZone(nil, 0), "Wrote javascript widgets", DefaultSkillsZoneMinimum, tax)
	assert.Equal(t, []string{"JavaScript"}, skillValues(got))
}
