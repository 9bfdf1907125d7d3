// Package scoring combines per-field confidences into the overall confidence
// of a parsed resume.
package scoring

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-parser/internal/types"
)

// weightTolerance is how far the weights may drift from summing to 1.0
const weightTolerance = 0.001

// truncEpsilon absorbs float error so that 100*1.0 never truncates to 99
const truncEpsilon = 1e-9

// Weights assigns each field its share of the overall confidence
type Weights struct {
	Email      float64 `json:"email" yaml:"email" validate:"gte=0,lte=1"`
	Phone      float64 `json:"phone" yaml:"phone" validate:"gte=0,lte=1"`
	Name       float64 `json:"name" yaml:"name" validate:"gte=0,lte=1"`
	Skills     float64 `json:"skills" yaml:"skills" validate:"gte=0,lte=1"`
	Experience float64 `json:"experience" yaml:"experience" validate:"gte=0,lte=1"`
	Education  float64 `json:"education" yaml:"education" validate:"gte=0,lte=1"`
}

// DefaultWeights returns the standard weighting
func DefaultWeights() Weights {
	return Weights{
		Email:      0.20,
		Phone:      0.10,
		Name:       0.15,
		Skills:     0.30,
		Experience: 0.15,
		Education:  0.10,
	}
}

// Sum returns the total of all weights
func (w Weights) Sum() float64 {
	return w.Email + w.Phone + w.Name + w.Skills + w.Experience + w.Education
}

// IsZero reports whether no weight has been set
func (w Weights) IsZero() bool {
	return w == Weights{}
}

// Validate checks each weight is within [0,1] and that they sum to 1.0
func (w Weights) Validate() error {
	validate := validator.New()
	if err := validate.Struct(w); err != nil {
		return &WeightsError{Message: "weight out of range", Cause: err}
	}
	if sum := w.Sum(); math.Abs(sum-1.0) > weightTolerance {
		return &WeightsError{Message: fmt.Sprintf("weights sum to %.3f, want 1.0", sum)}
	}
	return nil
}

// WeightsError reports an invalid weight table
type WeightsError struct {
	Message string
	Cause   error
}

func (e *WeightsError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid weights: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid weights: %s", e.Message)
}

func (e *WeightsError) Unwrap() error {
	return e.Cause
}

// Inputs are the confidences the aggregate is computed from. Skills and
// Education hold one confidence per item.
type Inputs struct {
	Email      int
	Phone      int
	Name       int
	Experience int
	Skills     []int
	Education  []int
}

// InputsFrom collects the confidences of a parsed record
func InputsFrom(r *types.ParsedResume) Inputs {
	in := Inputs{
		Email:      r.Email.Confidence,
		Phone:      r.Phone.Confidence,
		Name:       r.FullName.Confidence,
		Experience: r.YearsOfExperience.Confidence,
		Skills:     make([]int, 0, len(r.Skills)),
		Education:  make([]int, 0, len(r.Education)),
	}
	for _, s := range r.Skills {
		in.Skills = append(in.Skills, s.Confidence)
	}
	for _, e := range r.Education {
		in.Education = append(in.Education, e.Confidence)
	}
	return in
}

// Average returns the mean of the confidences, or 0 for none
func Average(confidences []int) float64 {
	if len(confidences) == 0 {
		return 0
	}
	total := 0
	for _, c := range confidences {
		total += c
	}
	return float64(total) / float64(len(confidences))
}

// OverallConfidence is the weighted sum of the field confidences, clamped to
// [0,100] and truncated to an integer
func OverallConfidence(in Inputs, w Weights) int {
	total := float64(in.Email)*w.Email +
		float64(in.Phone)*w.Phone +
		float64(in.Name)*w.Name +
		float64(in.Experience)*w.Experience +
		Average(in.Skills)*w.Skills +
		Average(in.Education)*w.Education

	return types.ClampConfidence(int(math.Floor(total + truncEpsilon)))
}
