// Package types provides type definitions for structured data used throughout the resume-parser system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ReviewThreshold is the confidence below which a field is flagged for human review
const ReviewThreshold = 80

// ExtractedField represents a single value inferred from resume text together with
// how confident the extractor is (0-100) and why it was chosen.
// Confidence 0 means the field was not found.
type ExtractedField[T any] struct {
	Value       T      `json:"value"`
	Confidence  int    `json:"confidence" validate:"gte=0,lte=100"`
	Source      string `json:"source"`
	NeedsReview bool   `json:"needs_review"`
}

// NewField builds an ExtractedField, clamping confidence to [0,100]
func NewField[T any](value T, confidence int, source string) ExtractedField[T] {
	confidence = ClampConfidence(confidence)
	return ExtractedField[T]{
		Value:       value,
		Confidence:  confidence,
		Source:      source,
		NeedsReview: confidence < ReviewThreshold,
	}
}

// NotFound returns the zero-confidence form of a field
func NotFound[T any](value T, source string) ExtractedField[T] {
	return NewField(value, 0, source)
}

// Found reports whether the field carries a non-zero confidence
func (f ExtractedField[T]) Found() bool {
	return f.Confidence > 0
}

// ClampConfidence bounds a confidence score to [0,100]
func ClampConfidence(c int) int {
	return max(0, min(100, c))
}
