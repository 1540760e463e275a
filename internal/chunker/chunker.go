package chunker

import (
	"strings"

	"github.com/dgallion1/docmap/internal/doctree"
)

// DefaultMaxChars is the window size fed to the summarization model.
const DefaultMaxChars = 1024

// Config controls chunking behavior.
type Config struct {
	MaxChars int // Upper bound on chunk length, in characters.
}

// DefaultConfig returns the model-sized window.
func DefaultConfig() Config {
	return Config{MaxChars: DefaultMaxChars}
}

// ChunkText cuts text into consecutive windows of at most cfg.MaxChars
// characters. Windows are not aligned to words or sentences and do not
// overlap; whitespace-only windows are dropped.
func ChunkText(text string, cfg Config) []doctree.Chunk {
	if cfg.MaxChars <= 0 {
		cfg.MaxChars = DefaultMaxChars
	}

	runes := []rune(text)
	var chunks []doctree.Chunk
	for start := 0; start < len(runes); start += cfg.MaxChars {
		end := min(start+cfg.MaxChars, len(runes))
		part := string(runes[start:end])
		if strings.TrimSpace(part) == "" {
			continue
		}
		chunks = append(chunks, doctree.Chunk{
			Text:  part,
			Index: len(chunks),
			Start: start,
			End:   end,
		})
	}
	return chunks
}
