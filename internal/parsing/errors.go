package parsing

import "fmt"

// DateParseError represents a date token that matched the range pattern but
// could not be turned into a month. It never escapes the experience extractor:
// the offending range is skipped and the scan continues.
type DateParseError struct {
	Token   string
	Message string
	Cause   error
}

func (e *DateParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("date parse error: %s %q: %v", e.Message, e.Token, e.Cause)
	}
	return fmt.Sprintf("date parse error: %s %q", e.Message, e.Token)
}

func (e *DateParseError) Unwrap() error {
	return e.Cause
}
