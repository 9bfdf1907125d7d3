package taxonomy

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// Entry is a canonical name with optional lowercase aliases
type Entry struct {
	Name    string   `yaml:"name"`
	Aliases []string `yaml:"aliases"`
}

type rawZone struct {
	Zone     string   `yaml:"zone"`
	Keywords []string `yaml:"keywords"`
}

type rawDegree struct {
	Label   string `yaml:"label"`
	Pattern string `yaml:"pattern"`
}

// rawTables mirrors the YAML layout; every data file fills a subset of it.
type rawTables struct {
	Zones               []rawZone         `yaml:"zones"`
	Skills              []Entry           `yaml:"skills"`
	AmbiguousTerms      []string          `yaml:"ambiguous_terms"`
	Degrees             []rawDegree       `yaml:"degrees"`
	InstituteKeywords   []string          `yaml:"institute_keywords"`
	KnownFields         []string          `yaml:"known_fields"`
	JobTitleKeywords    []string          `yaml:"job_title_keywords"`
	ActionVerbs         []string          `yaml:"action_verbs"`
	ProjectNouns        []string          `yaml:"project_nouns"`
	TechConnectors      []string          `yaml:"tech_connectors"`
	TechLabels          []string          `yaml:"tech_labels"`
	StopPhrases         []string          `yaml:"stop_phrases"`
	TrustedDomains      []string          `yaml:"trusted_domains"`
	EducationalSuffixes []string          `yaml:"educational_suffixes"`
	CountryCodes        []string          `yaml:"country_codes"`
	DefaultCountryCode  string            `yaml:"default_country_code"`
	Cities              []Entry           `yaml:"cities"`
	PincodePrefixes     map[string]string `yaml:"pincode_prefixes"`
	Regions             []string          `yaml:"regions"`
}

func (r *rawTables) merge(o rawTables) {
	r.Zones = append(r.Zones, o.Zones...)
	r.Skills = append(r.Skills, o.Skills...)
	r.AmbiguousTerms = append(r.AmbiguousTerms, o.AmbiguousTerms...)
	r.Degrees = append(r.Degrees, o.Degrees...)
	r.InstituteKeywords = append(r.InstituteKeywords, o.InstituteKeywords...)
	r.KnownFields = append(r.KnownFields, o.KnownFields...)
	r.JobTitleKeywords = append(r.JobTitleKeywords, o.JobTitleKeywords...)
	r.ActionVerbs = append(r.ActionVerbs, o.ActionVerbs...)
	r.ProjectNouns = append(r.ProjectNouns, o.ProjectNouns...)
	r.TechConnectors = append(r.TechConnectors, o.TechConnectors...)
	r.TechLabels = append(r.TechLabels, o.TechLabels...)
	r.StopPhrases = append(r.StopPhrases, o.StopPhrases...)
	r.TrustedDomains = append(r.TrustedDomains, o.TrustedDomains...)
	r.EducationalSuffixes = append(r.EducationalSuffixes, o.EducationalSuffixes...)
	r.CountryCodes = append(r.CountryCodes, o.CountryCodes...)
	r.Cities = append(r.Cities, o.Cities...)
	r.Regions = append(r.Regions, o.Regions...)
	if o.DefaultCountryCode != "" {
		r.DefaultCountryCode = o.DefaultCountryCode
	}
	if len(o.PincodePrefixes) > 0 {
		if r.PincodePrefixes == nil {
			r.PincodePrefixes = make(map[string]string, len(o.PincodePrefixes))
		}
		maps.Copy(r.PincodePrefixes, o.PincodePrefixes)
	}
}

// ZoneKeywords lists the header keywords that select a zone
type ZoneKeywords struct {
	Zone     types.ZoneLabel
	Keywords []string
}

// Degree is a named degree pattern
type Degree struct {
	Label   string
	pattern *regexp.Regexp
}

// Find returns the degree text matched in line, or "" if the degree is absent
func (d Degree) Find(line string) string {
	return strings.TrimSpace(d.pattern.FindString(line))
}

// Skill is a canonical skill name and the terms that identify it in text
type Skill struct {
	Name    string
	pattern *regexp.Regexp // unambiguous terms only; nil if every term is ambiguous
}

// MatchesLower reports whether an unambiguous term of the skill occurs in
// lowercased text on token boundaries
func (s Skill) MatchesLower(lower string) bool {
	return s.pattern != nil && s.pattern.MatchString(lower)
}

// Place is a city or region with its word-boundary matcher
type Place struct {
	Name    string
	pattern *regexp.Regexp
}

// MatchesLower reports whether the place name or an alias occurs in lowercased text
func (p Place) MatchesLower(lower string) bool {
	return p.pattern.MatchString(lower)
}

// Taxonomy holds every lookup table. All fields are read-only after Load.
type Taxonomy struct {
	Zones               []ZoneKeywords
	Skills              []Skill
	Degrees             []Degree
	InstituteKeywords   []string
	KnownFields         []string
	JobTitleKeywords    []string
	TechConnectors      []string
	TechLabels          []string
	StopPhrases         []string
	TrustedDomains      []string
	EducationalSuffixes []string
	CountryCodes        []string
	DefaultCountryCode  string
	Cities              []Place
	Regions             []Place
	PincodePrefixes     map[string]string

	skillIndex   map[string]int
	ambiguous    map[string]struct{}
	actionVerbs  map[string]struct{}
	projectNouns map[string]struct{}
	instituteRe  *regexp.Regexp
	jobTitleRe   *regexp.Regexp
	stopWordRe   *regexp.Regexp
	stopMarkers  []string
	techLabelRe  *regexp.Regexp
	connectorRe  *regexp.Regexp
}

// skillBoundary keeps c++, c# and node.js style names intact
const (
	skillPrefix = `(?:^|[^a-z0-9+#.])(?:`
	skillSuffix = `)(?:[^a-z0-9+#]|$)`
)

func compile(raw rawTables) (*Taxonomy, error) {
	tax := &Taxonomy{
		InstituteKeywords:   lowerAll(raw.InstituteKeywords),
		KnownFields:         lowerAll(raw.KnownFields),
		JobTitleKeywords:    lowerAll(raw.JobTitleKeywords),
		TechConnectors:      lowerAll(raw.TechConnectors),
		TechLabels:          lowerAll(raw.TechLabels),
		StopPhrases:         lowerAll(raw.StopPhrases),
		TrustedDomains:      lowerAll(raw.TrustedDomains),
		EducationalSuffixes: lowerAll(raw.EducationalSuffixes),
		CountryCodes:        raw.CountryCodes,
		DefaultCountryCode:  raw.DefaultCountryCode,
		PincodePrefixes:     raw.PincodePrefixes,
		skillIndex:          make(map[string]int),
		ambiguous:           toSet(raw.AmbiguousTerms),
		actionVerbs:         toSet(raw.ActionVerbs),
		projectNouns:        toSet(raw.ProjectNouns),
	}
	if tax.DefaultCountryCode == "" {
		return nil, &LoadError{File: "contact.yaml", Message: "default_country_code is required"}
	}

	for _, z := range raw.Zones {
		label := types.ZoneLabel(strings.ToLower(z.Zone))
		if !slices.Contains(types.AllZoneLabels, label) || label == types.ZoneHeader || label == types.ZoneUnknown {
			return nil, &LoadError{File: "sections.yaml", Message: fmt.Sprintf("invalid zone %q", z.Zone)}
		}
		tax.Zones = append(tax.Zones, ZoneKeywords{Zone: label, Keywords: lowerAll(z.Keywords)})
	}

	for _, d := range raw.Degrees {
		re, err := regexp.Compile(d.Pattern)
		if err != nil {
			return nil, &LoadError{File: "education.yaml", Message: fmt.Sprintf("invalid pattern for %s", d.Label), Cause: err}
		}
		tax.Degrees = append(tax.Degrees, Degree{Label: d.Label, pattern: re})
	}

	for i, entry := range raw.Skills {
		terms := append([]string{strings.ToLower(entry.Name)}, lowerAll(entry.Aliases)...)
		var unambiguous []string
		for _, term := range terms {
			tax.skillIndex[term] = i
			if _, ok := tax.ambiguous[term]; !ok {
				unambiguous = append(unambiguous, regexp.QuoteMeta(term))
			}
		}
		skill := Skill{Name: entry.Name}
		if len(unambiguous) > 0 {
			skill.pattern = regexp.MustCompile(skillPrefix + strings.Join(unambiguous, "|") + skillSuffix)
		}
		tax.Skills = append(tax.Skills, skill)
	}

	for _, city := range raw.Cities {
		terms := append([]string{city.Name}, city.Aliases...)
		tax.Cities = append(tax.Cities, Place{Name: city.Name, pattern: wordPattern(terms)})
	}
	for _, region := range raw.Regions {
		tax.Regions = append(tax.Regions, Place{Name: region, pattern: wordPattern([]string{region})})
	}

	if len(tax.InstituteKeywords) > 0 {
		tax.instituteRe = wordPattern(tax.InstituteKeywords)
	}
	if len(tax.JobTitleKeywords) > 0 {
		tax.jobTitleRe = wordPattern(tax.JobTitleKeywords)
	}

	if len(tax.TechLabels) > 0 {
		tax.techLabelRe = regexp.MustCompile(`(?i)\b(?:` + quoteAll(tax.TechLabels) + `)\s*[:\-–—]\s*`)
	}
	if len(tax.TechConnectors) > 0 {
		tax.connectorRe = regexp.MustCompile(`(?i)\s(?:` + quoteAll(tax.TechConnectors) + `)\s+`)
	}

	// Alphabetic stop phrases match on word boundaries ("cv" must not hit
	// inside a name); markers such as "@" or ".com" match anywhere.
	var stopWords []string
	for _, phrase := range tax.StopPhrases {
		if alphaPhrase.MatchString(phrase) {
			stopWords = append(stopWords, phrase)
		} else {
			tax.stopMarkers = append(tax.stopMarkers, phrase)
		}
	}
	if len(stopWords) > 0 {
		tax.stopWordRe = wordPattern(stopWords)
	}

	return tax, nil
}

// LookupSkill returns the canonical skill name for a term (name or alias)
func (t *Taxonomy) LookupSkill(term string) (string, bool) {
	idx, ok := t.skillIndex[strings.ToLower(strings.TrimSpace(term))]
	if !ok {
		return "", false
	}
	return t.Skills[idx].Name, true
}

// IsAmbiguous reports whether a term only counts as a skill inside a list
func (t *Taxonomy) IsAmbiguous(term string) bool {
	_, ok := t.ambiguous[strings.ToLower(strings.TrimSpace(term))]
	return ok
}

// IsActionVerb reports whether word is a resume action verb such as "developed"
func (t *Taxonomy) IsActionVerb(word string) bool {
	_, ok := t.actionVerbs[normalizeWord(word)]
	return ok
}

// IsProjectNoun reports whether word names a kind of project ("system", "apps")
func (t *Taxonomy) IsProjectNoun(word string) bool {
	w := normalizeWord(word)
	if _, ok := t.projectNouns[w]; ok {
		return true
	}
	_, ok := t.projectNouns[strings.TrimSuffix(w, "s")]
	return ok && strings.HasSuffix(w, "s")
}

// HasInstituteKeyword reports whether line names an educational institution
func (t *Taxonomy) HasInstituteKeyword(line string) bool {
	return t.instituteRe != nil && t.instituteRe.MatchString(strings.ToLower(line))
}

// HasJobTitleKeyword reports whether line contains a job-title word
func (t *Taxonomy) HasJobTitleKeyword(line string) bool {
	return t.jobTitleRe != nil && t.jobTitleRe.MatchString(strings.ToLower(line))
}

// HasStopPhrase reports whether line contains a phrase that rules it out as a name
func (t *Taxonomy) HasStopPhrase(line string) bool {
	lower := strings.ToLower(line)
	if t.stopWordRe != nil && t.stopWordRe.MatchString(lower) {
		return true
	}
	for _, marker := range t.stopMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// FindTechLabel returns the byte span of the first explicit tech-stack label
// ("Tech Stack:", "Technologies -") in line, or nil
func (t *Taxonomy) FindTechLabel(line string) []int {
	if t.techLabelRe == nil {
		return nil
	}
	return t.techLabelRe.FindStringIndex(line)
}

// FindTechConnector returns the byte span of the first connector phrase
// ("using", "built with") in line, or nil
func (t *Taxonomy) FindTechConnector(line string) []int {
	if t.connectorRe == nil {
		return nil
	}
	return t.connectorRe.FindStringIndex(line)
}

var alphaPhrase = regexp.MustCompile(`^[a-z]+(?:[ -][a-z]+)*$`)

func wordPattern(terms []string) *regexp.Regexp {
	return regexp.MustCompile(`\b(?:` + quoteAll(terms) + `)\b`)
}

func quoteAll(terms []string) string {
	quoted := make([]string, 0, len(terms))
	for _, term := range terms {
		quoted = append(quoted, regexp.QuoteMeta(strings.ToLower(term)))
	}
	return strings.Join(quoted, "|")
}

func normalizeWord(word string) string {
	return strings.ToLower(strings.Trim(word, " \t.,;:!?()[]{}\"'"))
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, strings.ToLower(strings.TrimSpace(s)))
	}
	return out
}

func toSet(in []string) map[string]struct{} {
	set := make(map[string]struct{}, len(in))
	for _, s := range in {
		set[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
	}
	return set
}
