package config

import (
	"fmt"
	"os"

	"github.com/dgallion1/docmap/internal/mindmap"
	"gopkg.in/yaml.v3"
)

// Vocabulary is the on-disk form of the mindmap settings.
type Vocabulary struct {
	RootText       string   `yaml:"root_text"`
	OtherText      string   `yaml:"other_text"`
	MaxSubtopics   int      `yaml:"max_subtopics"`
	FallbackTopics int      `yaml:"fallback_topics"`
	Keywords       []string `yaml:"keywords"`
}

// LoadVocabulary reads a YAML vocabulary file.
func LoadVocabulary(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary: %w", err)
	}
	var v Vocabulary
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parse vocabulary %s: %w", path, err)
	}
	return &v, nil
}

// MindmapConfig resolves the mindmap settings. Precedence, lowest first:
// built-in defaults, the vocabulary file, then the KEYWORDS variable.
func (c Config) MindmapConfig() (mindmap.Config, error) {
	mc := mindmap.DefaultConfig()

	if c.VocabularyFile != "" {
		v, err := LoadVocabulary(c.VocabularyFile)
		if err != nil {
			return mindmap.Config{}, err
		}
		if v.Keywords != nil {
			mc.Keywords = v.Keywords
		}
		if v.MaxSubtopics > 0 {
			mc.MaxSubtopics = v.MaxSubtopics
		}
		if v.FallbackTopics > 0 {
			mc.FallbackTopics = v.FallbackTopics
		}
		if v.RootText != "" {
			mc.RootText = v.RootText
		}
		if v.OtherText != "" {
			mc.OtherText = v.OtherText
		}
	}

	if len(c.Keywords) > 0 {
		mc.Keywords = c.Keywords
	}
	return mc, nil
}
