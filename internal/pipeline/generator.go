package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"
	"unicode/utf8"

	"github.com/dgallion1/docmap/internal/chunker"
	"github.com/dgallion1/docmap/internal/mindmap"
	"github.com/dgallion1/docmap/internal/parser"
	"github.com/dgallion1/docmap/internal/summarize"
)

var (
	ErrNoText   = errors.New("no extractable text")
	ErrTooShort = errors.New("text too short")
)

// IntakeError is a problem with the uploaded document itself. Its message is
// meant for the client.
type IntakeError struct {
	Message string
	Err     error
}

func (e *IntakeError) Error() string { return e.Message }
func (e *IntakeError) Unwrap() error { return e.Err }

// IsIntakeError reports whether err was caused by the document rather than the service.
func IsIntakeError(err error) bool {
	var ie *IntakeError
	return errors.As(err, &ie)
}

// Result is a generated mindmap plus the intermediate summary.
type Result struct {
	Mindmap *mindmap.Node
	Summary string
	Chunks  int
	Stats   mindmap.Stats
}

// Hooks receive progress callbacks. Nil fields are skipped.
type Hooks struct {
	OnPhase     func(status JobStatus)
	OnChunks    func(total int)
	OnChunkDone func(index int)
}

func (h Hooks) phase(s JobStatus) {
	if h.OnPhase != nil {
		h.OnPhase(s)
	}
}

// GeneratorConfig holds the tunables of a Generator.
type GeneratorConfig struct {
	Chunk        chunker.Config
	MinTextChars int
	Timeout      time.Duration // Bound on summarizing one document; zero means none.
}

// Generator runs extraction, summarization and mindmap construction for one
// document at a time. It holds no per-request state and is shared by the API
// handlers and the workers.
type Generator struct {
	summarizer summarize.Summarizer
	builder    *mindmap.Builder
	cfg        GeneratorConfig
	log        *slog.Logger
}

func NewGenerator(s summarize.Summarizer, b *mindmap.Builder, cfg GeneratorConfig, log *slog.Logger) *Generator {
	return &Generator{summarizer: s, builder: b, cfg: cfg, log: log}
}

// Builder returns the mindmap builder in use.
func (g *Generator) Builder() *mindmap.Builder {
	return g.builder
}

// GenerateFile extracts text from a stored upload and builds its mindmap.
// filename is the client-side name and selects the parser.
func (g *Generator) GenerateFile(ctx context.Context, path, filename string, hooks Hooks) (*Result, error) {
	hooks.phase(StatusParsing)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	text, err := g.Extract(filename, data)
	if err != nil {
		return nil, err
	}
	return g.FromText(ctx, text, hooks)
}

// Extract parses document bytes and applies the content checks.
func (g *Generator) Extract(filename string, data []byte) (string, error) {
	p, err := parser.ForFile(filename)
	if err != nil {
		return "", &IntakeError{Message: "File type not allowed or no file selected", Err: err}
	}
	tree, err := p.Parse(bytes.NewReader(data), filename)
	if err != nil {
		var nie *parser.NotImplementedError
		if errors.As(err, &nie) {
			return "", &IntakeError{Message: nie.Error(), Err: err}
		}
		return "", fmt.Errorf("parse %s: %w", filename, err)
	}

	text := tree.Content()
	if text == "" {
		return "", &IntakeError{Message: "No text could be extracted from the document.", Err: ErrNoText}
	}
	if utf8.RuneCountInString(text) < g.cfg.MinTextChars {
		return "", &IntakeError{Message: "Document content is too short for meaningful analysis.", Err: ErrTooShort}
	}
	return text, nil
}

// FromText summarizes document text chunk by chunk and builds the mindmap
// from the joined summary.
func (g *Generator) FromText(ctx context.Context, text string, hooks Hooks) (*Result, error) {
	if g.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.cfg.Timeout)
		defer cancel()
	}

	chunks := chunker.ChunkText(text, g.cfg.Chunk)
	if hooks.OnChunks != nil {
		hooks.OnChunks(len(chunks))
	}
	g.log.Debug("chunked document", "chunks", len(chunks), "est_tokens", chunker.EstimateTokens(text))

	hooks.phase(StatusSummarizing)
	summary, err := SummarizeChunks(ctx, g.summarizer, chunks, hooks.OnChunkDone, g.log)
	if err != nil {
		return nil, err
	}

	hooks.phase(StatusBuilding)
	res := g.Outline(summary)
	res.Chunks = len(chunks)
	return res, nil
}

// Outline builds a mindmap directly from summary text.
func (g *Generator) Outline(summary string) *Result {
	root := g.builder.Build(summary)
	return &Result{
		Mindmap: root,
		Summary: summary,
		Stats:   mindmap.Measure(root),
	}
}
