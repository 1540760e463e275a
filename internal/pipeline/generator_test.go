package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dgallion1/docmap/internal/chunker"
	"github.com/dgallion1/docmap/internal/mindmap"
	"github.com/dgallion1/docmap/internal/summarize"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recordingSummarizer returns canned summaries in call order.
type recordingSummarizer struct {
	mu      sync.Mutex
	outputs []string
	errs    []error
	calls   []string
}

func (r *recordingSummarizer) Summarize(_ context.Context, chunk string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := len(r.calls)
	r.calls = append(r.calls, chunk)
	if i < len(r.errs) && r.errs[i] != nil {
		return "", r.errs[i]
	}
	if i < len(r.outputs) {
		return r.outputs[i], nil
	}
	return "", nil
}

func newTestGenerator(s summarize.Summarizer, maxChars int) *Generator {
	return NewGenerator(s, mindmap.NewBuilder(mindmap.DefaultConfig()), GeneratorConfig{
		Chunk:        chunker.Config{MaxChars: maxChars},
		MinTextChars: 50,
	}, discardLogger())
}

func TestGenerator_FromTextJoinsChunkSummaries(t *testing.T) {
	s := &recordingSummarizer{outputs: []string{"Patient has a rare syndrome. It affects the liver.", "Treatment is ongoing. Weather was sunny. Final note here."}}
	g := newTestGenerator(s, 60)

	text := strings.Repeat("a", 60) + strings.Repeat("b", 30)
	var phases []JobStatus
	var total, done int
	res, err := g.FromText(context.Background(), text, Hooks{
		OnPhase:     func(st JobStatus) { phases = append(phases, st) },
		OnChunks:    func(n int) { total = n },
		OnChunkDone: func(int) { done++ },
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(s.calls) != 2 || s.calls[1] != strings.Repeat("b", 30) {
		t.Fatalf("unexpected summarizer calls: %q", s.calls)
	}
	wantSummary := "Patient has a rare syndrome. It affects the liver. Treatment is ongoing. Weather was sunny. Final note here."
	if res.Summary != wantSummary {
		t.Errorf("expected summary %q, got %q", wantSummary, res.Summary)
	}
	if res.Chunks != 2 || total != 2 || done != 2 {
		t.Errorf("expected 2 chunks, got res=%d total=%d done=%d", res.Chunks, total, done)
	}
	if len(res.Mindmap.Children) != 2 || len(res.Mindmap.Children[0].Children) != 3 {
		t.Errorf("unexpected mindmap shape: %+v", res.Mindmap)
	}
	if len(phases) != 2 || phases[0] != StatusSummarizing || phases[1] != StatusBuilding {
		t.Errorf("unexpected phases %v", phases)
	}
}

func TestGenerator_ExtractRejections(t *testing.T) {
	g := newTestGenerator(summarize.Passthrough{}, 1024)

	tests := []struct {
		name     string
		filename string
		data     string
		want     string
		sentinel error
	}{
		{"pdf stub", "a.pdf", "%PDF", "PDF text extraction not implemented in this demo. Please use .txt", nil},
		{"docx stub", "a.docx", "PK", "DOCX text extraction not implemented in this demo. Please use .txt", nil},
		{"too short", "a.txt", "Too short to analyze.", "Document content is too short for meaningful analysis.", ErrTooShort},
		{"empty", "a.txt", "", "No text could be extracted from the document.", ErrNoText},
		{"short whitespace", "a.txt", "  \n\n  ", "Document content is too short for meaningful analysis.", ErrTooShort},
		{"bad extension", "a.md", "# hi", "File type not allowed or no file selected", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.Extract(tt.filename, []byte(tt.data))
			if !IsIntakeError(err) {
				t.Fatalf("expected intake error, got %v", err)
			}
			if err.Error() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, err.Error())
			}
			if tt.sentinel != nil && !errors.Is(err, tt.sentinel) {
				t.Errorf("expected errors.Is(%v)", tt.sentinel)
			}
		})
	}
}

func TestGenerator_ExtractMeasuresUnmodifiedText(t *testing.T) {
	g := newTestGenerator(summarize.Passthrough{}, 1024)

	// 44 letters and 8 newlines: 52 runes as uploaded.
	doc := strings.Repeat("x", 44) + strings.Repeat("\n", 8)
	text, err := g.Extract("a.txt", []byte(doc))
	if err != nil {
		t.Fatalf("expected document to pass the length check, got %v", err)
	}
	if text != doc {
		t.Errorf("expected text unchanged, got %q", text)
	}

	gappy := "Line one.\n   \n\n\n\nLine two. " + strings.Repeat("padding ", 6)
	text, err = g.Extract("b.txt", []byte(gappy))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != gappy {
		t.Errorf("expected blank lines preserved, got %q", text)
	}
}

func TestGenerator_ChunksUnmodifiedText(t *testing.T) {
	s := &recordingSummarizer{outputs: []string{"a.", "b."}}
	g := newTestGenerator(s, 10)

	doc := "abcd\n\n\n\nefghij\n\n"
	if _, err := g.FromText(context.Background(), doc, Hooks{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.calls) != 2 || s.calls[0] != "abcd\n\n\n\nef" || s.calls[1] != "ghij\n\n" {
		t.Errorf("unexpected chunk windows %q", s.calls)
	}
}

func TestGenerator_GenerateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "upload.txt")
	body := "The patient was admitted with a fever. Doctors ordered blood tests.\n\nThe diagnosis was confirmed on day two."
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	g := newTestGenerator(summarize.Passthrough{}, 1024)
	res, err := g.GenerateFile(context.Background(), path, "notes.txt", Hooks{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Passthrough keeps the text, so every sentence lands in the tree.
	if res.Stats.Sentences != 3 || res.Stats.Topics != 2 {
		t.Errorf("unexpected stats %+v", res.Stats)
	}
}

func TestGenerator_GenerateFileMissing(t *testing.T) {
	g := newTestGenerator(summarize.Passthrough{}, 1024)
	_, err := g.GenerateFile(context.Background(), filepath.Join(t.TempDir(), "gone.txt"), "gone.txt", Hooks{})
	if err == nil || IsIntakeError(err) {
		t.Fatalf("expected an internal error, got %v", err)
	}
}

func TestGenerator_SummarizerErrorPropagates(t *testing.T) {
	s := &recordingSummarizer{errs: []error{errors.New("model crashed")}}
	g := newTestGenerator(s, 1024)

	_, err := g.FromText(context.Background(), strings.Repeat("word ", 20), Hooks{})
	if err == nil || !strings.Contains(err.Error(), "model crashed") {
		t.Fatalf("expected summarizer error, got %v", err)
	}
	if IsIntakeError(err) {
		t.Error("summarizer failures are not intake errors")
	}
}

func TestGenerator_Outline(t *testing.T) {
	g := newTestGenerator(summarize.Passthrough{}, 1024)
	res := g.Outline("")
	if res.Mindmap.ID != mindmap.RootID || len(res.Mindmap.Children) != 0 {
		t.Errorf("expected bare root, got %+v", res.Mindmap)
	}
}

func TestGenerator_Timeout(t *testing.T) {
	slow := summarize.Func(func(ctx context.Context, _ string) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})
	g := NewGenerator(slow, mindmap.NewBuilder(mindmap.DefaultConfig()), GeneratorConfig{
		Timeout: 10 * time.Millisecond,
	}, discardLogger())

	_, err := g.FromText(context.Background(), "some text", Hooks{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}
