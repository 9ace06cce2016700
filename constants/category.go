package constants

import (
	"regexp"
	"strings"
)

// Category is an asset category from the fixed appliance vocabulary.
type Category string

const (
	Refrigerator   Category = "Refrigerator"
	WashingMachine Category = "Washing Machine"
	AirConditioner Category = "Air Conditioner"
	Microwave      Category = "Microwave"
	Television     Category = "Television"
	Dishwasher     Category = "Dishwasher"
	WaterPurifier  Category = "Water Purifier"
	Fan            Category = "Fan"
	Geyser         Category = "Geyser"
)

var allCategories = []Category{
	Refrigerator,
	WashingMachine,
	AirConditioner,
	Microwave,
	Television,
	Dishwasher,
	WaterPurifier,
	Fan,
	Geyser,
}

func AsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// categoryPatterns maps keywords that may appear in free-text search
// snippets to a canonical category. Checked in order; first hit wins. The
// air-conditioner entry needs a word-bounded "ac" alias (bare substring
// containment would fire on words like "compact"), so entries are
// case-insensitive patterns rather than bare substrings.
var categoryPatterns = []struct {
	re       *regexp.Regexp
	category Category
}{
	{regexp.MustCompile(`(?i)refrigerator|fridge`), Refrigerator},
	{regexp.MustCompile(`(?i)washing machine`), WashingMachine},
	{regexp.MustCompile(`(?i)air conditioner|ac\b`), AirConditioner},
	{regexp.MustCompile(`(?i)microwave`), Microwave},
	{regexp.MustCompile(`(?i)television|tv`), Television},
	{regexp.MustCompile(`(?i)dishwasher`), Dishwasher},
	{regexp.MustCompile(`(?i)water purifier`), WaterPurifier},
	{regexp.MustCompile(`(?i)fan`), Fan},
	{regexp.MustCompile(`(?i)geyser|water heater`), Geyser},
}

// MatchCategory scans free text (typically concatenated search-result titles
// and snippets) against the category patterns. Returns "" when nothing in
// the vocabulary matches.
func MatchCategory(text string) Category {
	if text == "" {
		return ""
	}
	for _, kc := range categoryPatterns {
		if kc.re.MatchString(text) {
			return kc.category
		}
	}
	return ""
}

// IsAirConditioner reports whether a category string names an air
// conditioner, e.g. "Split Air Conditioner". Drives the 28% GST slab.
func IsAirConditioner(category string) bool {
	return strings.Contains(strings.ToUpper(category), "AIR CONDITIONER")
}
