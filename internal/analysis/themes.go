package analysis

import "strings"

// DetectThemes matches text against the theme taxonomy and returns the
// matched theme names in taxonomy order. Themes are evaluated independently,
// so a text can match several. The result is never empty: when nothing
// matches it is exactly [ThemeOther].
func DetectThemes(text string) []string {
	if text == "" {
		return []string{ThemeOther}
	}

	lower := strings.ToLower(text)

	var detected []string
	for _, t := range taxonomy {
		if themeMatches(t, lower) {
			detected = append(detected, t.name)
		}
	}

	if len(detected) == 0 {
		return []string{ThemeOther}
	}
	return detected
}

func themeMatches(t theme, lower string) bool {
	// Phrases first: more specific than single keywords.
	for _, phrase := range t.phrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	for _, pattern := range t.keywordPatterns {
		if pattern.MatchString(lower) {
			return true
		}
	}
	return false
}
