package pipeline

import (
	"time"

	"github.com/jonathan/resume-parser/internal/config"
	"github.com/jonathan/resume-parser/internal/parsing"
	"github.com/jonathan/resume-parser/internal/taxonomy"
	"github.com/jonathan/resume-parser/internal/types"
)

// Categories group extractors in progress events
const (
	CategoryContact    = "contact"
	CategoryProfile    = "profile"
	CategoryEducation  = "education"
	CategoryExperience = "experience"
	CategoryProjects   = "projects"
	CategorySkills     = "skills"
)

// input is the read-only view every extractor receives
type input struct {
	text  string
	zones types.TextZone
	now   time.Time
	cfg   config.Config
	tax   *taxonomy.Taxonomy
}

// extractor fills exactly one part of the record. Extractors run concurrently
// and must write only the fields they own. reset restores those fields to
// their not-found form after a failure.
type extractor struct {
	name     string
	category string
	run      func(in *input, out *types.ParsedResume) []error
	reset    func(out *types.ParsedResume)
}

// defaultExtractors lists every field extractor in a fixed order
func defaultExtractors() []extractor {
	return []extractor{
		{
			name:     "email",
			category: CategoryContact,
			run: func(in *input, out *types.ParsedResume) []error {
				out.Email = parsing.ExtractEmail(in.text, in.tax)
				return nil
			},
			reset: func(out *types.ParsedResume) {
				out.Email = types.NotFound("", "extractor failed")
			},
		},
		{
			name:     "phone",
			category: CategoryContact,
			run: func(in *input, out *types.ParsedResume) []error {
				out.Phone = parsing.ExtractPhone(in.text, in.tax)
				return nil
			},
			reset: func(out *types.ParsedResume) {
				out.Phone = types.NotFound("", "extractor failed")
			},
		},
		{
			name:     "name",
			category: CategoryProfile,
			run: func(in *input, out *types.ParsedResume) []error {
				out.FullName = parsing.ExtractName(in.text, in.cfg.NameScanLines, in.tax)
				return nil
			},
			reset: func(out *types.ParsedResume) {
				out.FullName = types.NotFound("Unknown", "extractor failed")
			},
		},
		{
			name:     "location",
			category: CategoryProfile,
			run: func(in *input, out *types.ParsedResume) []error {
				out.Location = parsing.ExtractLocation(in.text, in.tax)
				return nil
			},
			reset: func(out *types.ParsedResume) {
				out.Location = types.NotFound("", "extractor failed")
			},
		},
		{
			name:     "education",
			category: CategoryEducation,
			run: func(in *input, out *types.ParsedResume) []error {
				out.Education = parsing.ExtractEducation(in.zones, in.text, in.cfg.EducationProximity, in.tax)
				return nil
			},
			reset: func(out *types.ParsedResume) {
				out.Education = []types.EducationEntry{}
			},
		},
		{
			name:     "years_of_experience",
			category: CategoryExperience,
			run: func(in *input, out *types.ParsedResume) []error {
				var skipped []error
				out.YearsOfExperience, skipped = parsing.ExtractYearsOfExperience(in.zones, in.text, in.now)
				return skipped
			},
			reset: func(out *types.ParsedResume) {
				out.YearsOfExperience = types.NotFound(0.0, "extractor failed")
			},
		},
		{
			name:     "work_experience",
			category: CategoryExperience,
			run: func(in *input, out *types.ParsedResume) []error {
				out.WorkExperience = parsing.ExtractWorkExperience(in.zones, in.tax)
				out.CurrentRole = parsing.CurrentRole(out.WorkExperience)
				return nil
			},
			reset: func(out *types.ParsedResume) {
				out.WorkExperience = []types.WorkExperienceEntry{}
				out.CurrentRole = types.NotFound("", "extractor failed")
			},
		},
		{
			name:     "projects",
			category: CategoryProjects,
			run: func(in *input, out *types.ParsedResume) []error {
				out.Projects = parsing.ExtractProjects(in.zones, in.cfg.ProjectTitleThreshold, in.tax)
				return nil
			},
			reset: func(out *types.ParsedResume) {
				out.Projects = []types.ProjectEntry{}
			},
		},
		{
			name:     "skills",
			category: CategorySkills,
			run: func(in *input, out *types.ParsedResume) []error {
				out.Skills = parsing.ExtractSkills(in.zones, in.text, in.cfg.SkillsZoneMinimum, in.tax)
				return nil
			},
			reset: func(out *types.ParsedResume) {
				out.Skills = []types.ExtractedField[string]{}
			},
		},
	}
}

// ExtractorNames lists the extractors the parser runs, in order
func ExtractorNames() []string {
	all := defaultExtractors()
	names := make([]string, 0, len(all))
	for _, ex := range all {
		names = append(names, ex.name)
	}
	return names
}
