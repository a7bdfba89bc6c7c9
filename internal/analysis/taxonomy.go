package analysis

import "regexp"

// ThemeOther is the fallback theme assigned when no taxonomy theme matches.
// It only ever appears alone.
const ThemeOther = "Other"

// theme is one taxonomy topic. Phrases are checked first (plain substring
// of the lowercased text), then keywords (whole-word boundary matches), each
// in declared order with the first hit winning.
type theme struct {
	name            string
	phrases         []string
	keywordPatterns []*regexp.Regexp
}

// taxonomy is the fixed ordered theme table. Declaration order is the order
// themes appear in detection results, so it must stay stable.
var taxonomy = buildTaxonomy()

func buildTaxonomy() []theme {
	defs := []struct {
		name     string
		keywords []string
		phrases  []string
	}{
		{
			name: "Comfort",
			keywords: []string{
				"light", "heavy", "fit", "fits", "fitting", "wearable",
				"comfortable", "uncomfortable", "weight", "weighs", "weighed",
				"feels", "feeling", "wear", "wearing",
			},
			phrases: []string{
				"easy to wear", "hard to wear", "comfortable to wear",
				"uncomfortable to wear", "feels good", "feels bad",
				"too heavy", "too light",
			},
		},
		{
			name: "Durability",
			keywords: []string{
				"broke", "broken", "break", "breaks", "strong", "strength",
				"quality", "fragile", "durable", "durability", "lasts",
				"lasting", "sturdy", "sturdiness", "weak", "weakness",
				"crack", "cracked", "damage", "damaged",
			},
			phrases: []string{
				"lasts long", "broke after", "high quality", "poor quality",
				"good quality", "bad quality", "falls apart", "well made",
			},
		},
		{
			name: "Appearance",
			keywords: []string{
				"shiny", "shine", "dull", "design", "designed", "polish",
				"polished", "beautiful", "elegant", "elegance", "ugly",
				"looks", "look", "appearance", "finish", "finished",
				"color", "colour", "sparkle", "sparkling",
			},
			phrases: []string{
				"looks good", "looks bad", "beautiful design", "nice finish",
				"poor finish", "elegant design", "ugly design",
			},
		},
	}

	themes := make([]theme, 0, len(defs))
	for _, def := range defs {
		patterns := make([]*regexp.Regexp, len(def.keywords))
		for i, kw := range def.keywords {
			patterns[i] = wordBoundaryPattern(kw)
		}
		themes = append(themes, theme{
			name:            def.name,
			phrases:         def.phrases,
			keywordPatterns: patterns,
		})
	}
	return themes
}

// ThemeNames returns the taxonomy theme names in declaration order, without
// the fallback.
func ThemeNames() []string {
	names := make([]string, len(taxonomy))
	for i, t := range taxonomy {
		names[i] = t.name
	}
	return names
}
