// Package bootstrap assembles the mindmap pipeline from configuration. Both
// the HTTP server and the CLI start from here.
package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/dgallion1/docmap/internal/chunker"
	"github.com/dgallion1/docmap/internal/config"
	"github.com/dgallion1/docmap/internal/mindmap"
	"github.com/dgallion1/docmap/internal/pipeline"
	"github.com/dgallion1/docmap/internal/summarize"
)

// Runtime is the shared, read-only processing state of the process.
type Runtime struct {
	Generator *pipeline.Generator
	Builder   *mindmap.Builder
	Stats     *summarize.LatencyStats
	Backend   string

	closers []func()
}

// Close releases backend connections.
func (r *Runtime) Close() {
	for _, c := range r.closers {
		c()
	}
}

// New builds the summarizer, mindmap builder and generator described by cfg.
func New(cfg config.Config, log *slog.Logger) (*Runtime, error) {
	mmCfg, err := cfg.MindmapConfig()
	if err != nil {
		return nil, err
	}
	builder := mindmap.NewBuilder(mmCfg)

	backend, err := summarize.New(summarize.Options{
		Backend:   cfg.Summarizer.Backend,
		Model:     cfg.Summarizer.Model,
		APIKey:    cfg.Summarizer.APIKey,
		BaseURL:   cfg.Summarizer.BaseURL,
		MaxLength: cfg.Summarizer.MaxLength,
		MinLength: cfg.Summarizer.MinLength,
	})
	if err != nil {
		return nil, fmt.Errorf("summarizer: %w", err)
	}

	rt := &Runtime{
		Builder: builder,
		Stats:   summarize.NewLatencyStats(cfg.StatsWindow),
		Backend: cfg.Summarizer.Backend,
	}
	if c, ok := backend.(interface{ Close() }); ok {
		rt.closers = append(rt.closers, c.Close)
	}

	instrumented := &summarize.Instrumented{Next: backend, Stats: rt.Stats}
	rt.Generator = pipeline.NewGenerator(instrumented, builder, pipeline.GeneratorConfig{
		Chunk:        chunker.Config{MaxChars: cfg.ChunkMaxChars},
		MinTextChars: cfg.MinTextChars,
		Timeout:      cfg.SummarizeTimeout,
	}, log)

	log.Info("mindmap pipeline ready",
		"summarizer", rt.Backend,
		"keywords", len(builder.Vocabulary().Keywords()),
		"max_subtopics", builder.Config().MaxSubtopics,
		"chunk_max_chars", cfg.ChunkMaxChars,
	)
	return rt, nil
}
