package observability

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-parser/internal/types"
)

func sampleResume() *types.ParsedResume {
	cgpa := 8.7
	return &types.ParsedResume{
		FullName:          types.NewField("Priya Sharma", 85, ""),
		Email:             types.NewField("priya.sharma@gmail.com", 100, ""),
		Phone:             types.NotFound("", ""),
		Location:          types.NewField("Bengaluru", 70, ""),
		CurrentRole:       types.NewField("Software Engineer", 80, ""),
		YearsOfExperience: types.NewField(3.4, 90, ""),
		Skills: []types.ExtractedField[string]{
			types.NewField("Go", 90, ""),
			types.NewField("Docker", 70, ""),
		},
		Education: []types.EducationEntry{
			{Degree: "B.Tech", Field: "Computer Science", Institute: "IIT Delhi", Year: "2016 - 2020", CGPA: &cgpa, Confidence: 85},
		},
		WorkExperience: []types.WorkExperienceEntry{
			{Title: "Software Engineer", Company: "Flipkart", Duration: "Jan 2021 - Present", Description: []string{"Built services"}},
		},
		Projects: []types.ProjectEntry{
			{Title: "Resume Parser", TechStack: []string{"Go", "Docker"}, Confidence: 70},
		},
		OverallConfidence: 81,
	}
}

func TestPrintParsedResume(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintParsedResume(sampleResume())
	output := buf.String()

	assert.Contains(t, output, "PARSED RESUME")
	assert.Contains(t, output, "Priya Sharma")
	assert.Contains(t, output, "priya.sharma@gmail.com  [100]")
	assert.Contains(t, output, "(not found)")
	assert.Contains(t, output, "Bengaluru  [70]  ⚠ review")
	assert.Contains(t, output, "3.4  [90]")
	assert.Contains(t, output, "Overall confidence: 81/100")

	assert.Contains(t, output, "SKILLS")
	assert.Contains(t, output, "Go [90], Docker [70]")

	assert.Contains(t, output, "EDUCATION")
	assert.Contains(t, output, "B.Tech in Computer Science  [85]")
	assert.Contains(t, output, "CGPA 8.70")

	assert.Contains(t, output, "WORK EXPERIENCE")
	assert.Contains(t, output, "Flipkart")
	assert.Contains(t, output, "1 description lines")

	assert.Contains(t, output, "PROJECTS")
	assert.Contains(t, output, "[Go, Docker]")

	assert.Contains(t, output, "ALL EXTRACTORS SUCCEEDED")
}

func TestPrintParsedResume_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintParsedResume(nil)

	assert.Empty(t, buf.String())
}

func TestPrintParsedResume_EmptyListsSkipBoxes(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	r := sampleResume()
	r.Skills = nil
	r.Education = nil
	r.WorkExperience = nil
	r.Projects = nil
	p.PrintParsedResume(r)
	output := buf.String()

	assert.NotContains(t, output, "SKILLS")
	assert.NotContains(t, output, "EDUCATION")
	assert.NotContains(t, output, "WORK EXPERIENCE")
	assert.NotContains(t, output, "PROJECTS")
}

func TestPrintWarnings(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintWarnings([]string{"extractor skills failed: boom"})
	output := buf.String()

	assert.Contains(t, output, "WARNINGS")
	assert.Contains(t, output, "1 extractors failed")
	assert.Contains(t, output, "⚠ extractor skills failed: boom")
}

func TestPrintBatchSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintBatchSummary([]BatchResult{
		{File: "a.pdf", Confidence: 81},
		{File: "b.docx", Err: errors.New("too short")},
	})
	output := buf.String()

	assert.Contains(t, output, "BATCH SUMMARY")
	assert.Contains(t, output, "✓ a.pdf  [81]")
	assert.Contains(t, output, "✗ b.docx: too short")
	assert.Contains(t, output, "1 parsed, 1 failed")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("é", 100))

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
	assert.Contains(t, buf.String(), "...")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}
