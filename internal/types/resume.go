package types

import (
	"github.com/go-playground/validator/v10"
)

// EducationEntry represents one degree found in the resume.
// Degree and Institute may independently be empty.
type EducationEntry struct {
	Degree     string   `json:"degree"`
	Field      string   `json:"field"`
	Institute  string   `json:"institute"`
	Year       string   `json:"year"`
	CGPA       *float64 `json:"cgpa"`
	Percentage *float64 `json:"percentage,omitempty"`
	Confidence int      `json:"confidence" validate:"gte=0,lte=100"`
}

// WorkExperienceEntry represents a single position from the experience section
type WorkExperienceEntry struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Duration    string   `json:"duration"`
	Description []string `json:"description"`
}

// ProjectEntry represents a project with its detected tech stack
type ProjectEntry struct {
	Title       string   `json:"title"`
	TechStack   []string `json:"tech_stack"`
	Description []string `json:"description"`
	Confidence  int      `json:"confidence" validate:"gte=0,lte=100"`
}

// ParsedResume is the complete structured record produced for one document.
// It is never mutated after the pipeline builds it.
type ParsedResume struct {
	FullName          ExtractedField[string]   `json:"full_name"`
	Email             ExtractedField[string]   `json:"email"`
	Phone             ExtractedField[string]   `json:"phone"`
	Location          ExtractedField[string]   `json:"location"`
	CurrentRole       ExtractedField[string]   `json:"current_role"`
	YearsOfExperience ExtractedField[float64]  `json:"years_of_experience"`
	Skills            []ExtractedField[string] `json:"skills" validate:"dive"`
	Education         []EducationEntry         `json:"education" validate:"dive"`
	WorkExperience    []WorkExperienceEntry    `json:"work_experience"`
	Projects          []ProjectEntry           `json:"projects" validate:"dive"`
	OverallConfidence int                      `json:"overall_confidence" validate:"gte=0,lte=100"`
	Warnings          []string                 `json:"warnings,omitempty"`
	RawText           string                   `json:"raw_text,omitempty"`
}

// Validate checks the confidence bounds of every field in the record
func (r *ParsedResume) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// CandidateProfile is the plain-value view of a ParsedResume consumed by matching
type CandidateProfile struct {
	FullName          string         `json:"full_name"`
	Email             string         `json:"email"`
	Phone             string         `json:"phone,omitempty"`
	Location          string         `json:"location,omitempty"`
	YearsOfExperience float64        `json:"years_of_experience"`
	Skills            []string       `json:"skills"`
	Education         []string       `json:"education"`
	ConfidenceScores  map[string]int `json:"confidence_scores"`
}

// Profile flattens the record into plain values, dropping per-item confidence
func (r *ParsedResume) Profile() CandidateProfile {
	skills := make([]string, 0, len(r.Skills))
	for _, s := range r.Skills {
		skills = append(skills, s.Value)
	}

	education := make([]string, 0, len(r.Education))
	for _, e := range r.Education {
		if e.Degree != "" {
			education = append(education, e.Degree)
		}
	}

	return CandidateProfile{
		FullName:          r.FullName.Value,
		Email:             r.Email.Value,
		Phone:             r.Phone.Value,
		Location:          r.Location.Value,
		YearsOfExperience: r.YearsOfExperience.Value,
		Skills:            skills,
		Education:         education,
		ConfidenceScores: map[string]int{
			"full_name":           r.FullName.Confidence,
			"email":               r.Email.Confidence,
			"phone":               r.Phone.Confidence,
			"location":            r.Location.Confidence,
			"years_of_experience": r.YearsOfExperience.Confidence,
			"overall":             r.OverallConfidence,
		},
	}
}
