package parsing

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// bulletRunes are markers that introduce a bullet even without a following space
var bulletRunes = []rune{'•', '·', '▪', '■', '►', '▶', '➢', '➤', '✓', '✔', '○', '◦', '‣', '→', '●'}

// isBullet reports whether a trimmed line starts with a bullet marker
func isBullet(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(line)
	for _, b := range bulletRunes {
		if r == b {
			return true
		}
	}
	return strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") ||
		strings.HasPrefix(line, "– ") || strings.HasPrefix(line, "— ")
}

// stripBullet removes a leading bullet marker and surrounding whitespace
func stripBullet(line string) string {
	line = strings.TrimSpace(line)
	if !isBullet(line) {
		return line
	}
	_, size := utf8.DecodeRuneInString(line)
	return strings.TrimSpace(line[size:])
}

// titleCase upper-cases the first letter of every letter run and lower-cases the rest
func titleCase(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				sb.WriteRune(unicode.ToLower(r))
			} else {
				sb.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		sb.WriteRune(r)
		prevLetter = false
	}
	return sb.String()
}

// firstWord returns the first whitespace-separated word of line
func firstWord(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// trimSeparators removes separator punctuation from both ends of s
func trimSeparators(s string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(s), "|,:;-–—•"))
}

// hasDigit reports whether s contains any decimal digit
func hasDigit(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

// connectorWords stay lower-case inside a title-cased phrase
var connectorWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "as": {}, "at": {}, "by": {}, "for": {}, "from": {},
	"in": {}, "of": {}, "on": {}, "or": {}, "the": {}, "to": {}, "with": {}, "&": {},
}

func isConnector(word string) bool {
	_, ok := connectorWords[strings.ToLower(word)]
	return ok
}

// displayCase title-cases a lower-case phrase, keeping connector words lower
// except at the start: "computer science and engineering" becomes
// "Computer Science and Engineering".
func displayCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if i > 0 && isConnector(w) {
			words[i] = strings.ToLower(w)
			continue
		}
		words[i] = titleCase(w)
	}
	return strings.Join(words, " ")
}

// collapseSpaces replaces whitespace runs with a single space
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
