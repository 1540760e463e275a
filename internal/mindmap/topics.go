package mindmap

import "strings"

// Vocabulary is a case-insensitive keyword set with a stable test order.
type Vocabulary struct {
	keywords []string
	fallback int
}

// NewVocabulary lower-cases and de-duplicates keywords, dropping blanks.
func NewVocabulary(keywords []string, fallback int) *Vocabulary {
	if fallback <= 0 {
		fallback = DefaultFallbackTopics
	}
	seen := make(map[string]bool, len(keywords))
	v := &Vocabulary{fallback: fallback}
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" || seen[kw] {
			continue
		}
		seen[kw] = true
		v.keywords = append(v.keywords, kw)
	}
	return v
}

// Keywords returns a copy of the normalized keyword list.
func (v *Vocabulary) Keywords() []string {
	out := make([]string, len(v.keywords))
	copy(out, v.keywords)
	return out
}

// Match returns the first keyword contained in sentence, if any.
// Matching is by substring, so "conditioning" matches "condition".
func (v *Vocabulary) Match(sentence string) (string, bool) {
	lower := strings.ToLower(sentence)
	for _, kw := range v.keywords {
		if strings.Contains(lower, kw) {
			return kw, true
		}
	}
	return "", false
}

// SelectTopics returns the sentences that mention a keyword, in order and
// without repeats. When none do, the leading sentences are used instead.
func (v *Vocabulary) SelectTopics(sentences []string) []string {
	var topics []string
	seen := make(map[string]bool)
	for _, s := range sentences {
		if _, ok := v.Match(s); !ok || seen[s] {
			continue
		}
		seen[s] = true
		topics = append(topics, s)
	}

	if len(topics) == 0 && len(sentences) > 0 {
		n := min(v.fallback, len(sentences))
		for _, s := range sentences[:n] {
			if !seen[s] {
				seen[s] = true
				topics = append(topics, s)
			}
		}
	}
	return topics
}
