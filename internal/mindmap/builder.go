// Package mindmap turns summary text into a shallow topic outline.
//
// The pipeline is deliberately naive: sentences are split on terminal
// punctuation, topics are sentences containing a vocabulary keyword, and the
// remaining sentences are handed out to topics in reading order.
package mindmap

// Builder holds the immutable vocabulary and caps. It is safe for concurrent
// use; each Build call works on its own state.
type Builder struct {
	cfg   Config
	vocab *Vocabulary
}

// NewBuilder prepares a Builder from cfg, applying defaults for zero fields.
func NewBuilder(cfg Config) *Builder {
	cfg = cfg.withDefaults()
	return &Builder{
		cfg:   cfg,
		vocab: NewVocabulary(cfg.Keywords, cfg.FallbackTopics),
	}
}

// Config returns the effective configuration.
func (b *Builder) Config() Config {
	return b.cfg
}

// Vocabulary returns the keyword set used for topic selection.
func (b *Builder) Vocabulary() *Vocabulary {
	return b.vocab
}

// Build produces the mindmap for a summary. It never fails; text with no
// sentences yields a bare root.
func (b *Builder) Build(summary string) *Node {
	sentences := SplitSentences(summary)
	topics := b.vocab.SelectTopics(sentences)
	return Assemble(sentences, topics, b.cfg)
}

// Stats summarizes the shape of a built tree.
type Stats struct {
	Sentences int `json:"sentences"`
	Topics    int `json:"topics"`
	Leaves    int `json:"leaves"`
	Other     int `json:"other"`
}

// Measure counts topics and leaves under root.
func Measure(root *Node) Stats {
	var st Stats
	for _, c := range root.Children {
		if c.ID == OtherID {
			st.Other = len(c.Children)
			st.Sentences += len(c.Children)
			continue
		}
		st.Topics++
		st.Leaves += len(c.Children)
		st.Sentences += 1 + len(c.Children)
	}
	return st
}
