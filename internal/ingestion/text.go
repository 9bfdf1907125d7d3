// Package ingestion turns resume documents on disk into clean text for the parser.
package ingestion

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"
)

// MinTextLength is the fewest characters of trimmed text accepted as a resume
const MinTextLength = 50

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	blankLineRun  = regexp.MustCompile(`\n\n\n+`)
)

// CleanText cleans and normalizes text content while preserving structure
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// 1. Normalize line endings (CRLF → LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	// 2. Form feeds and NULs show up in PDF output
	content = strings.NewReplacer("\f", "\n", "\x00", "").Replace(content)

	// 3. Process each line
	lines := strings.Split(content, "\n")
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		cleanedLines = append(cleanedLines, cleanLine(line))
	}
	result := strings.Join(cleanedLines, "\n")

	// 4. Remove excessive blank lines (max 2 consecutive)
	result = blankLineRun.ReplaceAllString(result, "\n\n")

	return strings.TrimSpace(result)
}

// cleanLine cleans a single line while preserving structure
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	// Bullet lines keep their indentation so nesting survives
	trimmed := strings.TrimLeft(line, " \t")
	if isBulletLine(trimmed) {
		indent := len(line) - len(trimmed)
		return strings.Repeat(" ", indent) + whitespaceRun.ReplaceAllString(trimmed, " ")
	}

	// For regular lines, normalize multiple spaces to single space
	// but preserve intentional indentation at start of line
	leadingSpace := len(line) - len(trimmed)
	content := whitespaceRun.ReplaceAllString(strings.TrimSpace(line), " ")
	if leadingSpace > 0 {
		return strings.Repeat(" ", leadingSpace) + content
	}
	return content
}

// isBulletLine checks if a line is a bullet list item
func isBulletLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") ||
		strings.HasPrefix(trimmed, "• ") || strings.HasPrefix(trimmed, "· ")
}

// ValidateText rejects text whose trimmed length is below minimum characters
func ValidateText(text string, minimum int) error {
	if n := utf8.RuneCountInString(strings.TrimSpace(text)); n < minimum {
		return &InputTooShortError{Length: n, Minimum: minimum}
	}
	return nil
}

// IngestFromFile reads a resume document, decodes it by extension, cleans the
// text and checks it is long enough to parse
func IngestFromFile(path string) (string, *Metadata, error) {
	format, ok := DetectFormat(path)
	if !ok {
		return "", nil, &DecodeError{Source: path, Message: "unsupported file type"}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}

	raw, err := ExtractText(path, content)
	if err != nil {
		return "", nil, err
	}
	if !utf8.ValidString(raw) {
		raw = strings.ToValidUTF8(raw, "")
	}

	cleanedText := CleanText(raw)
	if err := ValidateText(cleanedText, MinTextLength); err != nil {
		return "", nil, fmt.Errorf("%s: %w", path, err)
	}

	return cleanedText, NewMetadata(cleanedText, path, format), nil
}
