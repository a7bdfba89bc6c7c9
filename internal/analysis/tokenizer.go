package analysis

import (
	"strings"
	"unicode"
)

// emoji code range preserved by the tokenizer (Misc Symbols and Pictographs
// through Supplemental Symbols and Pictographs).
const (
	emojiRangeStart = 0x1F300
	emojiRangeEnd   = 0x1F9FF
)

// Tokenize splits text into lowercase tokens. Characters that are neither
// word characters, whitespace, nor emoji are replaced with spaces before
// splitting, so punctuation is stripped but emoji survive as their own
// tokens. Empty or blank input yields an empty slice.
func Tokenize(text string) []string {
	if text == "" {
		return []string{}
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if isWordRune(r) || unicode.IsSpace(r) || isEmojiRune(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	tokens := strings.Fields(strings.ToLower(b.String()))
	if tokens == nil {
		return []string{}
	}
	return tokens
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isEmojiRune(r rune) bool {
	return r >= emojiRangeStart && r <= emojiRangeEnd
}
