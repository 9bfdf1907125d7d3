package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/taxonomy"
	"github.com/jonathan/resume-parser/internal/types"
)

const (
	pincodeConfidence = 90
	cityConfidence    = 85
	regionConfidence  = 70
)

var pincodeRegex = regexp.MustCompile(`\b([1-9]\d{2})\s?(\d{3})\b`)

// ExtractLocation tries a postal code, then a city name, then a region name.
// The first tier that matches wins.
func ExtractLocation(text string, tax *taxonomy.Taxonomy) types.ExtractedField[string] {
	for _, m := range pincodeRegex.FindAllStringSubmatch(text, -1) {
		if city, ok := tax.PincodePrefixes[m[1]]; ok {
			return types.NewField(city, pincodeConfidence, "postal code "+m[1]+m[2])
		}
	}

	lower := strings.ToLower(text)
	for _, city := range tax.Cities {
		if city.MatchesLower(lower) {
			return types.NewField(city.Name, cityConfidence, "city name match")
		}
	}
	for _, region := range tax.Regions {
		if region.MatchesLower(lower) {
			return types.NewField(region.Name, regionConfidence, "region name match")
		}
	}
	return types.NotFound("", "no postal code, city or region found")
}
