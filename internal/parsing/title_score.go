package parsing

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/resume-parser/internal/taxonomy"
)

// TitleFeature names one signal used to decide whether a project line is a title
type TitleFeature string

// Title features, in the order they are evaluated
const (
	FeatureEndsWithPeriod TitleFeature = "ends_with_period"
	FeatureActionVerb     TitleFeature = "starts_with_action_verb"
	FeatureAdjectivalVerb TitleFeature = "adjectival_action_verb"
	FeatureProjectNoun    TitleFeature = "contains_project_noun"
	FeatureAllUpper       TitleFeature = "all_upper_case"
	FeatureTitleCase      TitleFeature = "title_case"
	FeatureLowerStart     TitleFeature = "starts_lower_case"
	FeatureTooLong        TitleFeature = "too_long"
	FeatureShort          TitleFeature = "short"
	FeatureTechLabel      TitleFeature = "tech_stack_label"
	FeatureTechList       TitleFeature = "pure_tech_list"
	FeatureBullet         TitleFeature = "starts_with_bullet"
)

const (
	// TitleBaseline is the neutral starting score of every line
	TitleBaseline = 50
	// DefaultTitleThreshold is the minimum score for a line to open a project
	DefaultTitleThreshold = 60

	maxTitleWords   = 10
	maxTitleChars   = 60
	shortTitleWords = 5
)

// titleRule is one row of the scoring table
type titleRule struct {
	feature TitleFeature
	weight  int
	applies func(l scoredLine) bool
}

// scoredLine carries the precomputed views of a line shared by every rule
type scoredLine struct {
	text     string
	words    []string
	bulleted bool
	tax      *taxonomy.Taxonomy
}

func (l scoredLine) startsWithVerb() bool {
	return len(l.words) > 0 && l.tax.IsActionVerb(l.words[0])
}

func (l scoredLine) secondWordIsNoun() bool {
	return len(l.words) > 1 && l.tax.IsProjectNoun(l.words[1])
}

var titleRules = []titleRule{
	{FeatureEndsWithPeriod, -40, func(l scoredLine) bool {
		return strings.HasSuffix(l.text, ".")
	}},
	{FeatureActionVerb, -30, func(l scoredLine) bool {
		return l.startsWithVerb() && !l.secondWordIsNoun()
	}},
	{FeatureAdjectivalVerb, 10, func(l scoredLine) bool {
		return l.startsWithVerb() && l.secondWordIsNoun()
	}},
	{FeatureProjectNoun, 25, func(l scoredLine) bool {
		for _, w := range l.words {
			if l.tax.IsProjectNoun(w) {
				return true
			}
		}
		return false
	}},
	{FeatureAllUpper, 15, func(l scoredLine) bool {
		return isAllUpper(l.text)
	}},
	{FeatureTitleCase, 10, func(l scoredLine) bool {
		return !isAllUpper(l.text) && isTitleCased(l.words)
	}},
	{FeatureLowerStart, -20, func(l scoredLine) bool {
		r := firstLetter(l.text)
		return r != 0 && unicode.IsLower(r)
	}},
	{FeatureTooLong, -25, func(l scoredLine) bool {
		return len(l.words) > maxTitleWords || len([]rune(l.text)) > maxTitleChars
	}},
	{FeatureShort, 10, func(l scoredLine) bool {
		return len(l.words) <= shortTitleWords
	}},
	{FeatureTechLabel, -40, func(l scoredLine) bool {
		return leadingTechLabel(l.text, l.tax) != ""
	}},
	{FeatureTechList, -30, func(l scoredLine) bool {
		return isPureTechList(l.text, l.tax)
	}},
	{FeatureBullet, -20, func(l scoredLine) bool {
		return l.bulleted
	}},
}

// TitleScore is the outcome of scoring one line
type TitleScore struct {
	Score    int
	Features []TitleFeature
}

// IsTitle reports whether the score reaches threshold
func (s TitleScore) IsTitle(threshold int) bool {
	return s.Score >= threshold
}

// ScoreTitle scores how much a line looks like a project title. It is a pure
// function of the line and the taxonomy; Features lists the rules that fired.
// The other rules read the line with any leading bullet removed.
func ScoreTitle(line string, tax *taxonomy.Taxonomy) TitleScore {
	l := scoredLine{text: stripBullet(line), bulleted: isBullet(line), tax: tax}
	l.words = strings.Fields(l.text)
	if l.text == "" {
		return TitleScore{}
	}

	score := TitleBaseline
	var fired []TitleFeature
	for _, rule := range titleRules {
		if rule.applies(l) {
			score += rule.weight
			fired = append(fired, rule.feature)
		}
	}
	return TitleScore{Score: max(0, min(100, score)), Features: fired}
}

func isAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

// isTitleCased reports whether every major word starts with a capital.
// Connector words and words without letters are exempt.
func isTitleCased(words []string) bool {
	major := 0
	for i, w := range words {
		if i > 0 && isConnector(strings.Trim(w, "(),;:")) {
			continue
		}
		r := firstLetter(w)
		if r == 0 {
			continue
		}
		if !unicode.IsUpper(r) {
			return false
		}
		major++
	}
	return major > 0
}

func firstLetter(s string) rune {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return r
		}
	}
	return 0
}

var listSplit = regexp.MustCompile(`\s*[,;|/]\s*`)

// isPureTechList reports whether a line is nothing but two or more known technologies
func isPureTechList(line string, tax *taxonomy.Taxonomy) bool {
	items := listSplit.Split(strings.Trim(line, " .()"), -1)
	if len(items) < 2 {
		return false
	}
	for _, item := range items {
		if _, ok := tax.LookupSkill(item); !ok {
			return false
		}
	}
	return true
}
