package sections

import (
	"strings"
	"testing"

	"github.com/jonathan/resume-parser/internal/taxonomy"
	"github.com/jonathan/resume-parser/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `PRIYA SHARMA
priya.sharma@gmail.com | +91 98765 43210
Bengaluru, Karnataka

EDUCATION
B.Tech in Computer Science, NIT Rourkela (2016 - 2020) - CGPA: 8.6

Work Experience
Software Engineer | Flipkart | Jan 2021 - Present
- Built order tracking microservices in Go

Technical Skills
Python, Go, Docker, Kubernetes

Projects
Inventory Tracker (React, Node, MongoDB)
`

func TestSectionize_AssignsZones(t *testing.T) {
	tax := taxonomy.MustDefault()
	zones := Sectionize(sampleResume, tax)

	assert.Equal(t, []types.ZoneLabel{
		types.ZoneHeader,
		types.ZoneEducation,
		types.ZoneExperience,
		types.ZoneSkills,
		types.ZoneProjects,
	}, zones.Labels())

	header := zones.Lines(types.ZoneHeader)
	require.NotEmpty(t, header)
	assert.Equal(t, "PRIYA SHARMA", header[0])

	assert.Contains(t, zones.Text(types.ZoneEducation), "NIT Rourkela")
	assert.Contains(t, zones.Text(types.ZoneExperience), "Flipkart")
	assert.Contains(t, zones.Text(types.ZoneSkills), "Kubernetes")
	assert.Contains(t, zones.Text(types.ZoneProjects), "Inventory Tracker")
	assert.NotContains(t, zones.Text(types.ZoneEducation), "EDUCATION", "header line is discarded")
	assert.Equal(t, 4, zones.HeaderCount())
}

func TestSectionize_PartitionIsLossless(t *testing.T) {
	tax := taxonomy.MustDefault()
	inputs := []string{
		sampleResume,
		"",
		"just one line",
		"Skills\nGo\r\nExperience\r\nDeveloper at Acme\n\n\nEducation",
		strings.Repeat("Projects\nSome project line with words here\n", 5),
	}

	for _, in := range inputs {
		zones := Sectionize(in, tax)
		total := len(SplitLines(in))
		assert.Equal(t, total-zones.HeaderCount(), zones.LineCount(), "input %q", in)
	}
}

func TestSectionize_PreservesLineOrder(t *testing.T) {
	tax := taxonomy.MustDefault()
	zones := Sectionize("Skills\nGo\nRust\nExperience\nA line\nSkills\nPython", tax)

	assert.Equal(t, []string{"Go", "Rust", "Python"}, zones.Lines(types.ZoneSkills))
	assert.Equal(t, []string{"A line"}, zones.Lines(types.ZoneExperience))
	assert.Empty(t, zones.Lines(types.ZoneHeader))
}

func TestSectionize_AbsentZones(t *testing.T) {
	tax := taxonomy.MustDefault()
	zones := Sectionize("John Smith\nSoftware Engineer", tax)

	assert.False(t, zones.Has(types.ZoneEducation))
	assert.Empty(t, zones.Lines(types.ZoneEducation))
	assert.Equal(t, "", zones.Text(types.ZoneEducation))
	assert.True(t, zones.Has(types.ZoneHeader))
}

func TestSectionize_ZonesAreImmutable(t *testing.T) {
	tax := taxonomy.MustDefault()
	zones := Sectionize("Skills\nGo", tax)

	lines := zones.Lines(types.ZoneSkills)
	lines[0] = "mutated"

	assert.Equal(t, []string{"Go"}, zones.Lines(types.ZoneSkills))
}

func TestClassifyHeader(t *testing.T) {
	tax := taxonomy.MustDefault()

	tests := []struct {
		name     string
		line     string
		expected types.ZoneLabel
		isHeader bool
	}{
		{"plain education", "EDUCATION", types.ZoneEducation, true},
		{"work experience", "  Work Experience  ", types.ZoneExperience, true},
		{"technical skills", "Technical Skills", types.ZoneSkills, true},
		{"academic projects go to projects", "Academic Projects", types.ZoneProjects, true},
		{"certifications", "Certifications & Courses", types.ZoneCertifications, true},
		{"awards", "Honors and Awards", types.ZoneAchievements, true},
		{"summary", "Professional Summary", types.ZoneSummary, true},
		{"table order breaks ties", "Project Experience", types.ZoneExperience, true},
		{"empty line", "   ", "", false},
		{"too many words", "I gained experience in many different things", "", false},
		{"short but no keyword", "Go, Rust, Python", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, ok := ClassifyHeader(tt.line, tax)
			assert.Equal(t, tt.isHeader, ok)
			assert.Equal(t, tt.expected, label)
		})
	}
}
