package analysis

import (
	"regexp"
	"strings"
)

// Sentiment weight classes.
const (
	weightStrongPositive   = 2
	weightModeratePositive = 1
	weightModerateNegative = -1
	weightStrongNegative   = -2
)

// lexiconEntry is one weighted sentiment word. Matching uses whole-word
// boundaries inside a token, so "broke" matches the token "broke" but not
// "brokerage".
type lexiconEntry struct {
	word    string
	weight  int
	pattern *regexp.Regexp
}

// lexicon is the full ordered sentiment table. Order is load-bearing: the
// matcher takes the first entry whose pattern matches a token, so precedence
// is strong-positive, moderate-positive, moderate-negative, strong-negative,
// and declaration order within each class.
var lexicon = buildLexicon()

func buildLexicon() []lexiconEntry {
	classes := []struct {
		weight int
		words  []string
	}{
		{weightStrongPositive, []string{
			"love", "excellent", "perfect", "amazing",
			"stunning", "gorgeous", "outstanding", "brilliant",
			"fantastic", "wonderful", "marvelous", "superb",
		}},
		{weightModeratePositive, []string{
			"shiny", "elegant", "comfortable", "premium",
			"beautiful", "great", "good", "nice", "fine",
			"pretty", "lovely", "satisfied", "pleased",
			"happy", "satisfactory", "decent",
		}},
		{weightModerateNegative, []string{
			"tarnish", "dull", "uncomfortable", "heavy",
			"cheap", "poor", "disappointed", "fragile",
			"ugly", "bad", "unhappy", "unsatisfied",
			"mediocre", "average", "okay", "ok",
		}},
		{weightStrongNegative, []string{
			"broke", "broken", "terrible", "awful",
			"worst", "horrible", "disgusting", "hate",
			"useless", "waste", "defective", "damaged",
		}},
	}

	var entries []lexiconEntry
	for _, class := range classes {
		for _, word := range class.words {
			entries = append(entries, lexiconEntry{
				word:    word,
				weight:  class.weight,
				pattern: wordBoundaryPattern(word),
			})
		}
	}
	return entries
}

// negationWords is the closed set of negation markers, including contracted
// negative auxiliaries and the bare "n't" suffix.
var negationWords = []string{
	"not", "never", "no", "n't", "cannot",
	"can't", "won't", "don't", "didn't",
	"isn't", "aren't", "wasn't", "weren't",
}

// negationPattern matches any negation word with whole-word boundaries.
var negationPattern = func() *regexp.Regexp {
	quoted := make([]string, len(negationWords))
	for i, w := range negationWords {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
}()

func wordBoundaryPattern(word string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(word) + `\b`)
}
