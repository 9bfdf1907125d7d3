// Package parsing provides the field extractors that turn zoned resume text into
// typed values with confidence scores.
package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/taxonomy"
	"github.com/jonathan/resume-parser/internal/types"
)

var emailRegex = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// phonePatterns are tried in order; the first match with a valid digit count wins
var phonePatterns = []*regexp.Regexp{
	// Indian mobile, optional +91 prefix
	regexp.MustCompile(`(?:\+?91[\s-]?)?[6-9]\d{4}[\s-]?\d{5}`),
	// International with country code
	regexp.MustCompile(`\+\d{1,3}[\s.-]?\(?\d{2,4}\)?[\s.-]?\d{3,4}[\s.-]?\d{3,4}`),
	// North American
	regexp.MustCompile(`\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}`),
}

var nonDigits = regexp.MustCompile(`\D`)

const (
	minPhoneDigits = 10
	maxPhoneDigits = 15
)

// ExtractEmail returns the first email address in text. Addresses on a trusted
// or educational domain score 100, any other syntactically valid address 80.
func ExtractEmail(text string, tax *taxonomy.Taxonomy) types.ExtractedField[string] {
	match := emailRegex.FindString(text)
	if match == "" {
		return types.NotFound("", "no email address found")
	}

	email := strings.ToLower(match)
	domain := email[strings.LastIndex(email, "@")+1:]

	for _, trusted := range tax.TrustedDomains {
		if domain == trusted {
			return types.NewField(email, 100, "pattern match on trusted domain "+domain)
		}
	}
	for _, suffix := range tax.EducationalSuffixes {
		if strings.HasSuffix(domain, suffix) {
			return types.NewField(email, 100, "pattern match on educational domain "+domain)
		}
	}
	return types.NewField(email, 80, "pattern match on unrecognized domain "+domain)
}

// ExtractPhone returns the first phone number whose digit count is within
// [10,15]. Ten-digit local numbers are prefixed with the default country code.
func ExtractPhone(text string, tax *taxonomy.Taxonomy) types.ExtractedField[string] {
	for _, pattern := range phonePatterns {
		for _, candidate := range pattern.FindAllString(text, -1) {
			digits := nonDigits.ReplaceAllString(candidate, "")
			if len(digits) < minPhoneDigits || len(digits) > maxPhoneDigits {
				continue
			}
			return classifyPhone(digits, tax)
		}
	}
	return types.NotFound("", "no phone number found")
}

func classifyPhone(digits string, tax *taxonomy.Taxonomy) types.ExtractedField[string] {
	if len(digits) == 10 {
		return types.NewField("+"+tax.DefaultCountryCode+" "+digits, 95, "10-digit local number")
	}
	if len(digits) == 12 {
		for _, code := range tax.CountryCodes {
			if strings.HasPrefix(digits, code) {
				return types.NewField("+"+code+" "+digits[len(code):], 95, "12-digit number with country code +"+code)
			}
		}
	}
	return types.NewField("+"+digits, 80, "phone-like number of valid length")
}
