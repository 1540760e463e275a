package mindmap

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// sentenceBoundary matches the whitespace run that follows terminal punctuation.
// The punctuation itself stays with the preceding sentence.
var sentenceBoundary = regexp2.MustCompile(`(?<=[.!?])\s+`, regexp2.None)

// SplitSentences breaks text into trimmed, non-empty sentences in order.
// Abbreviations such as "Dr." are treated as sentence ends.
func SplitSentences(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	// regexp2 reports match positions in runes.
	runes := []rune(text)
	var sentences []string
	start := 0

	m, err := sentenceBoundary.FindRunesMatch(runes)
	for err == nil && m != nil {
		sentences = appendSentence(sentences, string(runes[start:m.Index]))
		start = m.Index + m.Length
		m, err = sentenceBoundary.FindNextMatch(m)
	}
	sentences = appendSentence(sentences, string(runes[start:]))

	return sentences
}

func appendSentence(sentences []string, s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return sentences
	}
	return append(sentences, s)
}
