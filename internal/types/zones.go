package types

import (
	"slices"
	"strings"
)

// ZoneLabel names a labeled region of resume text
type ZoneLabel string

const (
	ZoneHeader         ZoneLabel = "header"
	ZoneEducation      ZoneLabel = "education"
	ZoneExperience     ZoneLabel = "experience"
	ZoneSkills         ZoneLabel = "skills"
	ZoneProjects       ZoneLabel = "projects"
	ZoneContact        ZoneLabel = "contact"
	ZoneSummary        ZoneLabel = "summary"
	ZoneCertifications ZoneLabel = "certifications"
	ZoneAchievements   ZoneLabel = "achievements"
	ZoneUnknown        ZoneLabel = "unknown"
)

// AllZoneLabels lists every label in a stable order
var AllZoneLabels = []ZoneLabel{
	ZoneHeader,
	ZoneEducation,
	ZoneExperience,
	ZoneSkills,
	ZoneProjects,
	ZoneContact,
	ZoneSummary,
	ZoneCertifications,
	ZoneAchievements,
	ZoneUnknown,
}

// TextZone maps zone labels to the ordered lines assigned to them.
// It is built once by the sectionizer; accessors hand out copies so the
// partition cannot be changed after construction.
type TextZone struct {
	lines   map[ZoneLabel][]string
	headers int
}

// NewTextZone builds a TextZone from an already partitioned set of lines.
// headers is the number of header lines consumed while partitioning.
func NewTextZone(lines map[ZoneLabel][]string, headers int) TextZone {
	owned := make(map[ZoneLabel][]string, len(lines))
	for label, l := range lines {
		owned[label] = slices.Clone(l)
	}
	return TextZone{lines: owned, headers: headers}
}

// Has reports whether a zone was detected and holds at least one non-blank line
func (z TextZone) Has(label ZoneLabel) bool {
	for _, line := range z.lines[label] {
		if strings.TrimSpace(line) != "" {
			return true
		}
	}
	return false
}

// Lines returns a copy of the lines assigned to a zone
func (z TextZone) Lines(label ZoneLabel) []string {
	return slices.Clone(z.lines[label])
}

// Text returns the zone text with every line followed by a newline
func (z TextZone) Text(label ZoneLabel) string {
	var sb strings.Builder
	for _, line := range z.lines[label] {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}

// Labels returns the detected zone labels in AllZoneLabels order
func (z TextZone) Labels() []ZoneLabel {
	labels := make([]ZoneLabel, 0, len(z.lines))
	for _, label := range AllZoneLabels {
		if _, ok := z.lines[label]; ok {
			labels = append(labels, label)
		}
	}
	return labels
}

// LineCount returns the total number of lines across all zones
func (z TextZone) LineCount() int {
	total := 0
	for _, l := range z.lines {
		total += len(l)
	}
	return total
}

// HeaderCount returns how many header lines were consumed while partitioning
func (z TextZone) HeaderCount() int {
	return z.headers
}
