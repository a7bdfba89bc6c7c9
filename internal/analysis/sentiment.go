package analysis

import "math"

// Sentiment labels produced by the scorer.
const (
	LabelPositive = "Positive"
	LabelNegative = "Negative"
	LabelNeutral  = "Neutral"
)

const (
	// maxPossibleWeight normalizes the raw weight sum into [-1, 1].
	// Heuristic: assume at most 10 strong words per review.
	maxPossibleWeight = 20.0

	// Label thresholds on the normalized score.
	positiveThreshold = 0.2
	negativeThreshold = -0.2

	// negationWindow is the number of tokens after a negation marker within
	// which a matched word's weight is inverted.
	negationWindow = 3
)

// Match records a single lexicon hit on a token. A token produces at most
// one match even when several lexicon words would fit.
type Match struct {
	Word        string `json:"word"`
	Token       string `json:"token"`
	Position    int    `json:"position"`
	Weight      int    `json:"weight"`
	FinalWeight int    `json:"final_weight"`
	Negated     bool   `json:"negated"`
}

// Negation records a negation marker found in the token sequence.
type Negation struct {
	Position int    `json:"position"`
	Word     string `json:"word"`
}

// Trace carries the full debug breakdown of a sentiment analysis.
type Trace struct {
	Tokens      []string   `json:"tokens"`
	Matches     []Match    `json:"matched_words"`
	Negations   []Negation `json:"negations"`
	TotalWeight int        `json:"total_weight"`
}

// SentimentResult is the outcome of scoring one text. Score and Confidence
// are rounded to three decimals; Confidence is always within [0, 1].
// Trace is populated only when debug mode is requested.
type SentimentResult struct {
	Label      string  `json:"label"`
	Score      float64 `json:"score"`
	Confidence float64 `json:"confidence"`
	Trace      *Trace  `json:"debug,omitempty"`
}

// AnalyzeSentiment scores text against the weighted lexicon with negation
// handling. Blank text, or text that yields no tokens, returns the canonical
// zero-confidence Neutral result. With debug set, the result carries a full
// trace of tokens, matches, and negation positions.
func AnalyzeSentiment(text string, debug bool) SentimentResult {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		result := SentimentResult{Label: LabelNeutral}
		if debug {
			result.Trace = &Trace{Tokens: []string{}, Matches: []Match{}, Negations: []Negation{}}
		}
		return result
	}

	negationPositions := findNegations(tokens)
	matches, totalWeight := matchLexicon(tokens, negationPositions)

	score := clamp(float64(totalWeight)/maxPossibleWeight, -1, 1)

	label := LabelNeutral
	switch {
	case score > positiveThreshold:
		label = LabelPositive
	case score < negativeThreshold:
		label = LabelNegative
	}

	// Confidence grows with score magnitude and match density relative to
	// text length, capped at 1.
	matchDensity := float64(len(matches)) / math.Max(1, float64(len(tokens))/10)
	confidence := math.Min(1, math.Abs(score)+matchDensity)

	result := SentimentResult{
		Label:      label,
		Score:      round3(score),
		Confidence: round3(confidence),
	}

	if debug {
		negations := make([]Negation, 0, len(negationPositions))
		for _, pos := range negationPositions {
			negations = append(negations, Negation{Position: pos, Word: tokens[pos]})
		}
		result.Trace = &Trace{
			Tokens:      tokens,
			Matches:     matches,
			Negations:   negations,
			TotalWeight: totalWeight,
		}
	}
	return result
}

func findNegations(tokens []string) []int {
	var positions []int
	for i, token := range tokens {
		if negationPattern.MatchString(token) {
			positions = append(positions, i)
		}
	}
	return positions
}

func matchLexicon(tokens []string, negationPositions []int) ([]Match, int) {
	matches := make([]Match, 0)
	totalWeight := 0

	for i, token := range tokens {
		for _, entry := range lexicon {
			if !entry.pattern.MatchString(token) {
				continue
			}

			negated := isNegated(i, negationPositions)
			finalWeight := entry.weight
			if negated {
				finalWeight = -finalWeight
			}
			totalWeight += finalWeight

			matches = append(matches, Match{
				Word:        entry.word,
				Token:       token,
				Position:    i,
				Weight:      entry.weight,
				FinalWeight: finalWeight,
				Negated:     negated,
			})
			break // at most one match per token
		}
	}
	return matches, totalWeight
}

// isNegated reports whether token position i falls inside the inversion
// window of any negation marker: strictly after the marker and at most
// negationWindow tokens beyond it.
func isNegated(i int, negationPositions []int) bool {
	for _, p := range negationPositions {
		if i > p && i <= p+negationWindow {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
