package chunker

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/dgallion1/docmap/internal/doctree"
)

func TestChunkText_SmallTextFitsOneChunk(t *testing.T) {
	chunks := ChunkText("A short document.", DefaultConfig())
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0].Text != "A short document." {
		t.Errorf("unexpected chunk text %q", chunks[0].Text)
	}
	if chunks[0].Start != 0 || chunks[0].End != 17 {
		t.Errorf("expected offsets [0,17), got [%d,%d)", chunks[0].Start, chunks[0].End)
	}
}

func TestChunkText_FixedWindows(t *testing.T) {
	text := strings.Repeat("abcdefghij", 250) // 2500 chars
	chunks := ChunkText(text, Config{MaxChars: 1024})

	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
	wantLens := []int{1024, 1024, 452}
	var rebuilt strings.Builder
	for i, c := range chunks {
		if c.Index != i {
			t.Errorf("chunk %d: expected index %d, got %d", i, i, c.Index)
		}
		if n := utf8.RuneCountInString(c.Text); n != wantLens[i] {
			t.Errorf("chunk %d: expected %d chars, got %d", i, wantLens[i], n)
		}
		rebuilt.WriteString(c.Text)
	}
	if rebuilt.String() != text {
		t.Error("concatenated chunks do not reproduce the input")
	}
}

func TestChunkText_MultibyteBoundaries(t *testing.T) {
	text := strings.Repeat("é", 10)
	chunks := ChunkText(text, Config{MaxChars: 4})
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
	for _, c := range chunks {
		if !utf8.ValidString(c.Text) {
			t.Errorf("chunk %d split a multibyte rune: %q", c.Index, c.Text)
		}
	}
}

func TestChunkText_SkipsBlankWindows(t *testing.T) {
	text := "abcd" + strings.Repeat(" ", 4) + "efgh"
	chunks := ChunkText(text, Config{MaxChars: 4})
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(chunks))
	}
	if chunks[1].Text != "efgh" || chunks[1].Index != 1 || chunks[1].Start != 8 {
		t.Errorf("unexpected second chunk: %+v", chunks[1])
	}
}

func TestChunkText_Empty(t *testing.T) {
	if chunks := ChunkText("", DefaultConfig()); len(chunks) != 0 {
		t.Errorf("expected 0 chunks, got %d", len(chunks))
	}
}

func TestChunkText_ZeroConfigFallsBackToDefault(t *testing.T) {
	chunks := ChunkText(strings.Repeat("x", 2000), Config{})
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks with default window, got %d", len(chunks))
	}
}

func TestChunkText_FlattenedTree(t *testing.T) {
	tree := &doctree.DocTree{
		Title: "Doc",
		Children: []*doctree.DocNode{
			{Text: "First."},
			{Title: "Container", Children: []*doctree.DocNode{{Text: "Nested."}}},
			{Text: "Last."},
		},
	}
	chunks := ChunkText(tree.Text(), DefaultConfig())
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	want := "First.\n\nNested.\n\nLast."
	if chunks[0].Text != want {
		t.Errorf("expected %q, got %q", want, chunks[0].Text)
	}
}

func TestEstimateTokens(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"word", 1},
		{"three short words", 3},
		{strings.Repeat("w ", 100), 133},
	}
	for _, tt := range tests {
		if got := EstimateTokens(tt.in); got != tt.want {
			t.Errorf("EstimateTokens(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
