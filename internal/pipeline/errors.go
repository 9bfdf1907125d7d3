package pipeline

import "fmt"

// InputError reports text the pipeline cannot work on at all, such as invalid UTF-8
type InputError struct {
	Message string
	Cause   error
}

func (e *InputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid input: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid input: %s", e.Message)
}

func (e *InputError) Unwrap() error {
	return e.Cause
}

// ExtractorError records an extractor that failed unexpectedly. It never fails
// the parse; its message is added to the record's warnings and the field it
// owns is reported with zero confidence.
type ExtractorError struct {
	Extractor string
	Recovered any
}

func (e *ExtractorError) Error() string {
	return fmt.Sprintf("extractor %s failed: %v", e.Extractor, e.Recovered)
}
