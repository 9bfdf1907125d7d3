// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-parser/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "..."
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-3]) + "..."
}

func fieldLine[T any](label string, f types.ExtractedField[T], format string) string {
	if !f.Found() {
		return fmt.Sprintf("%-10s (not found)\n", label)
	}
	flag := ""
	if f.NeedsReview {
		flag = "  ⚠ review"
	}
	return fmt.Sprintf("%-10s "+format+"  [%d]%s\n", label, f.Value, f.Confidence, flag)
}

// PrintParsedResume outputs a human-readable summary of a parsed resume
func (p *Printer) PrintParsedResume(r *types.ParsedResume) {
	if r == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fieldLine("Name:", r.FullName, "%s"))
	sb.WriteString(fieldLine("Email:", r.Email, "%s"))
	sb.WriteString(fieldLine("Phone:", r.Phone, "%s"))
	sb.WriteString(fieldLine("Location:", r.Location, "%s"))
	sb.WriteString(fieldLine("Role:", r.CurrentRole, "%s"))
	sb.WriteString(fieldLine("Years:", r.YearsOfExperience, "%.1f"))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Overall confidence: %d/100", r.OverallConfidence))

	p.printBox("PARSED RESUME", sb.String())

	p.printSkills(r.Skills)
	p.printEducation(r.Education)
	p.printWorkExperience(r.WorkExperience)
	p.printProjects(r.Projects)
	p.PrintWarnings(r.Warnings)
}

func (p *Printer) printSkills(skills []types.ExtractedField[string]) {
	if len(skills) == 0 {
		return
	}

	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, fmt.Sprintf("%s [%d]", s.Value, s.Confidence))
	}

	// Wrap the list to the box width
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d skills:\n", len(skills)))
	line := ""
	for _, n := range names {
		if line != "" && utf8.RuneCountInString(line)+2+utf8.RuneCountInString(n) > boxWidth-4 {
			sb.WriteString(line + "\n")
			line = ""
		}
		if line != "" {
			line += ", "
		}
		line += n
	}
	sb.WriteString(line)

	p.printBox("SKILLS", sb.String())
}

func (p *Printer) printEducation(entries []types.EducationEntry) {
	if len(entries) == 0 {
		return
	}

	var sb strings.Builder
	for i, e := range entries {
		degree := e.Degree
		if e.Field != "" {
			degree += " in " + e.Field
		}
		if degree == "" {
			degree = "(degree not found)"
		}
		sb.WriteString(fmt.Sprintf("• %s  [%d]\n", degree, e.Confidence))
		if e.Institute != "" {
			sb.WriteString(fmt.Sprintf("  %s\n", e.Institute))
		}
		details := []string{}
		if e.Year != "" {
			details = append(details, e.Year)
		}
		if e.CGPA != nil {
			details = append(details, fmt.Sprintf("CGPA %.2f", *e.CGPA))
		}
		if e.Percentage != nil {
			details = append(details, fmt.Sprintf("%.1f%%", *e.Percentage))
		}
		if len(details) > 0 {
			sb.WriteString(fmt.Sprintf("  %s\n", strings.Join(details, " · ")))
		}
		if i < len(entries)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("EDUCATION", strings.TrimSuffix(sb.String(), "\n"))
}

func (p *Printer) printWorkExperience(entries []types.WorkExperienceEntry) {
	if len(entries) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(entries), maxItemsToShow)
	for i := 0; i < count; i++ {
		e := entries[i]
		sb.WriteString(fmt.Sprintf("• %s\n", e.Title))
		if e.Company != "" {
			sb.WriteString(fmt.Sprintf("  %s\n", e.Company))
		}
		if e.Duration != "" {
			sb.WriteString(fmt.Sprintf("  %s\n", e.Duration))
		}
		if len(e.Description) > 0 {
			sb.WriteString(fmt.Sprintf("  %d description lines\n", len(e.Description)))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(entries) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more positions\n", len(entries)-maxItemsToShow))
	}

	p.printBox("WORK EXPERIENCE", strings.TrimSuffix(sb.String(), "\n"))
}

func (p *Printer) printProjects(projects []types.ProjectEntry) {
	if len(projects) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(projects), maxItemsToShow)
	for i := 0; i < count; i++ {
		proj := projects[i]
		sb.WriteString(fmt.Sprintf("• %s  [%d]\n", proj.Title, proj.Confidence))
		if len(proj.TechStack) > 0 {
			sb.WriteString(fmt.Sprintf("  [%s]\n", strings.Join(proj.TechStack, ", ")))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(projects) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more projects\n", len(projects)-maxItemsToShow))
	}

	p.printBox("PROJECTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintWarnings outputs extractor failures recorded during the parse.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintWarnings(warnings []string) {
	if len(warnings) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ ALL EXTRACTORS SUCCEEDED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d extractors failed:\n\n", len(warnings)))
	for i, w := range warnings {
		sb.WriteString(fmt.Sprintf("⚠ %s", w))
		if i < len(warnings)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("WARNINGS", sb.String())
}

// BatchResult is one row of the batch summary
type BatchResult struct {
	File       string
	Confidence int
	Err        error
}

// PrintBatchSummary outputs per-file outcomes of a batch run
func (p *Printer) PrintBatchSummary(results []BatchResult) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			sb.WriteString(fmt.Sprintf("✗ %s: %v\n", r.File, r.Err))
			continue
		}
		sb.WriteString(fmt.Sprintf("✓ %s  [%d]\n", r.File, r.Confidence))
	}
	sb.WriteString(fmt.Sprintf("\n%d parsed, %d failed", len(results)-failed, failed))

	p.printBox("BATCH SUMMARY", sb.String())
}
