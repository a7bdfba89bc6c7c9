package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectThemes_Comfort(t *testing.T) {
	themes := DetectThemes("The ring feels heavy and uncomfortable")
	assert.Contains(t, themes, "Comfort")
}

func TestDetectThemes_Durability(t *testing.T) {
	themes := DetectThemes("The bracelet broke after a week. Poor quality.")
	assert.Contains(t, themes, "Durability")
}

func TestDetectThemes_Appearance(t *testing.T) {
	themes := DetectThemes("Beautiful design and shiny finish")
	assert.Contains(t, themes, "Appearance")
}

func TestDetectThemes_PhraseMatch(t *testing.T) {
	// "well made" hits via phrase; no Durability keyword appears.
	themes := DetectThemes("This one is well made")
	assert.Contains(t, themes, "Durability")
}

func TestDetectThemes_MultipleInTaxonomyOrder(t *testing.T) {
	themes := DetectThemes("Love the elegant design but it feels heavy and broke quickly")
	assert.Equal(t, []string{"Comfort", "Durability", "Appearance"}, themes)
}

func TestDetectThemes_FallbackOther(t *testing.T) {
	themes := DetectThemes("I bought this yesterday")
	assert.Equal(t, []string{ThemeOther}, themes)
}

func TestDetectThemes_OtherOnlyAlone(t *testing.T) {
	texts := []string{
		"",
		"random words about shipping",
		"comfortable and shiny",
		"The chain broke on the first day",
	}
	for _, text := range texts {
		themes := DetectThemes(text)
		assert.NotEmpty(t, themes, "text %q", text)
		if len(themes) > 1 {
			assert.NotContains(t, themes, ThemeOther, "text %q", text)
		}
	}
}

func TestDetectThemes_KeywordNeedsWordBoundary(t *testing.T) {
	// "lightning" contains "light" but not as a whole word.
	themes := DetectThemes("lightning fast delivery")
	assert.Equal(t, []string{ThemeOther}, themes)
}

func TestDetectThemes_CaseInsensitive(t *testing.T) {
	assert.Equal(t, DetectThemes("COMFORTABLE TO WEAR"), DetectThemes("comfortable to wear"))
}

func TestThemeNames_Order(t *testing.T) {
	assert.Equal(t, []string{"Comfort", "Durability", "Appearance"}, ThemeNames())
}
