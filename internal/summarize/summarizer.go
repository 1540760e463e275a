// Package summarize wraps the abstractive summarization backends the
// mindmap pipeline depends on.
package summarize

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Summarizer turns one bounded chunk of text into a short summary.
type Summarizer interface {
	Summarize(ctx context.Context, chunk string) (string, error)
}

// Backend names accepted by New.
const (
	BackendHuggingFace = "huggingface"
	BackendClaude      = "claude"
	BackendOllama      = "ollama"
	BackendPassthrough = "passthrough"
)

// Options configures backend construction.
type Options struct {
	Backend string
	Model   string
	APIKey  string
	BaseURL string

	// Summary length bounds, in model tokens.
	MaxLength int
	MinLength int
}

// New builds the backend named by opts.Backend.
func New(opts Options) (Summarizer, error) {
	switch strings.ToLower(opts.Backend) {
	case BackendHuggingFace, "":
		return NewHuggingFaceClient(opts), nil
	case BackendClaude:
		return NewClaudeClient(opts), nil
	case BackendOllama:
		return NewOllamaClient(opts)
	case BackendPassthrough:
		return Passthrough{}, nil
	default:
		return nil, fmt.Errorf("unknown summarizer backend: %q", opts.Backend)
	}
}

// Passthrough returns each chunk unchanged apart from trimming. It lets the
// service run without a model.
type Passthrough struct{}

func (Passthrough) Summarize(_ context.Context, chunk string) (string, error) {
	return strings.TrimSpace(chunk), nil
}

// Func adapts a plain function to Summarizer.
type Func func(ctx context.Context, chunk string) (string, error)

func (f Func) Summarize(ctx context.Context, chunk string) (string, error) {
	return f(ctx, chunk)
}

// RetryableError indicates a transient failure that can be retried.
type RetryableError struct {
	StatusCode int
	Message    string
}

func (e *RetryableError) Error() string {
	return fmt.Sprintf("retryable error (status %d): %s", e.StatusCode, truncate(e.Message, 200))
}

// truncate limits s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
