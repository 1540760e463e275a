package mindmap

// DefaultKeywords is the built-in medical vocabulary used to pick topic sentences.
var DefaultKeywords = []string{
	"disease",
	"syndrome",
	"therapy",
	"treatment",
	"diagnosis",
	"patient",
	"cell",
	"organ",
	"system",
	"medicine",
	"drug",
	"condition",
	"pathology",
	"physiology",
}

const (
	// DefaultMaxSubtopics caps the leaf children assigned to each topic node.
	DefaultMaxSubtopics = 3
	// DefaultFallbackTopics is how many leading sentences become topics when no keyword matches.
	DefaultFallbackTopics = 3

	DefaultRootText  = "Medical Document Overview"
	DefaultOtherText = "Other Details"

	RootID  = "root"
	OtherID = "node-other"
)

// Config controls topic selection and tree assembly.
type Config struct {
	Keywords       []string
	MaxSubtopics   int
	FallbackTopics int
	RootText       string
	OtherText      string
}

// DefaultConfig returns the stock vocabulary and caps.
func DefaultConfig() Config {
	kw := make([]string, len(DefaultKeywords))
	copy(kw, DefaultKeywords)
	return Config{
		Keywords:       kw,
		MaxSubtopics:   DefaultMaxSubtopics,
		FallbackTopics: DefaultFallbackTopics,
		RootText:       DefaultRootText,
		OtherText:      DefaultOtherText,
	}
}

// withDefaults fills zero-valued fields. An explicitly empty keyword list is kept,
// so every summary falls through to the leading-sentence fallback.
func (c Config) withDefaults() Config {
	if c.Keywords == nil {
		c.Keywords = DefaultConfig().Keywords
	}
	if c.MaxSubtopics <= 0 {
		c.MaxSubtopics = DefaultMaxSubtopics
	}
	if c.FallbackTopics <= 0 {
		c.FallbackTopics = DefaultFallbackTopics
	}
	if c.RootText == "" {
		c.RootText = DefaultRootText
	}
	if c.OtherText == "" {
		c.OtherText = DefaultOtherText
	}
	return c
}
