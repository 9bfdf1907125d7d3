package ingestion

import "fmt"

// DecodeError reports a document that could not be turned into text
type DecodeError struct {
	Source  string
	Message string
	Cause   error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to decode %s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to decode %s: %s", e.Source, e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// InputTooShortError reports extracted text too short to be a resume
type InputTooShortError struct {
	Length  int
	Minimum int
}

func (e *InputTooShortError) Error() string {
	return fmt.Sprintf("resume text too short: %d characters, need at least %d", e.Length, e.Minimum)
}
