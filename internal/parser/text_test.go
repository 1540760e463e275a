package parser

import (
	"errors"
	"strings"
	"testing"
)

func TestTextParser_BasicParagraphSplitting(t *testing.T) {
	input := "First paragraph line one.\nFirst paragraph line two.\n\nSecond paragraph.\n\nThird paragraph."
	p := &TextParser{}
	tree, err := p.Parse(strings.NewReader(input), "notes.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tree.Title != "notes" {
		t.Errorf("expected title %q, got %q", "notes", tree.Title)
	}
	want := []string{
		"First paragraph line one.\nFirst paragraph line two.",
		"Second paragraph.",
		"Third paragraph.",
	}
	if len(tree.Children) != len(want) {
		t.Fatalf("expected %d children, got %d", len(want), len(tree.Children))
	}
	for i, w := range want {
		if tree.Children[i].Text != w {
			t.Errorf("child[%d]: expected %q, got %q", i, w, tree.Children[i].Text)
		}
	}
}

func TestTextParser_EmptyInput(t *testing.T) {
	tree, err := (&TextParser{}).Parse(strings.NewReader(""), "empty.TXT")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Title != "empty" {
		t.Errorf("expected title %q, got %q", "empty", tree.Title)
	}
	if len(tree.Children) != 0 {
		t.Errorf("expected 0 children for empty input, got %d", len(tree.Children))
	}
}

func TestTextParser_BlankAndWhitespaceLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"multiple blank lines", "Para one.\n\n\n\nPara two."},
		{"whitespace-only line", "Para one.\n   \nPara two."},
		{"windows line endings", "Para one.\r\n\r\nPara two.\r\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := (&TextParser{}).Parse(strings.NewReader(tt.input), "gaps.txt")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(tree.Children) != 2 {
				t.Fatalf("expected 2 children, got %d", len(tree.Children))
			}
			if tree.Children[1].Text != "Para two." {
				t.Errorf("expected %q, got %q", "Para two.", tree.Children[1].Text)
			}
		})
	}
}

func TestTextParser_StripsByteOrderMark(t *testing.T) {
	tree, err := (&TextParser{}).Parse(strings.NewReader("\ufeffHello world"), "bom.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Children[0].Text != "Hello world" {
		t.Errorf("expected BOM to be stripped, got %q", tree.Children[0].Text)
	}
}

func TestTextParser_KeepsRawContent(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"blank line runs", "Line one.\n   \n\n\n\nLine two.", "Line one.\n   \n\n\n\nLine two."},
		{"trailing newlines", "Body text.\n\n\n", "Body text.\n\n\n"},
		{"crlf and cr", "One.\r\nTwo.\rThree.", "One.\nTwo.\nThree."},
		{"byte order mark", "\ufeffHello", "\ufeffHello"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := (&TextParser{}).Parse(strings.NewReader(tt.input), "raw.txt")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tree.Content() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, tree.Content())
			}
		})
	}
}

func TestTextParser_InvalidUTF8(t *testing.T) {
	_, err := (&TextParser{}).Parse(strings.NewReader("bad \xff\xfe bytes"), "bin.txt")
	if !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("expected ErrInvalidEncoding, got %v", err)
	}
}

func TestStubParsers(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"scan.pdf", "PDF text extraction not implemented in this demo. Please use .txt"},
		{"Report.DOCX", "DOCX text extraction not implemented in this demo. Please use .txt"},
	}
	for _, tt := range tests {
		p, err := ForFile(tt.filename)
		if err != nil {
			t.Fatalf("ForFile(%q): %v", tt.filename, err)
		}
		_, err = p.Parse(strings.NewReader("%PDF-1.4"), tt.filename)
		var nie *NotImplementedError
		if !errors.As(err, &nie) {
			t.Fatalf("%s: expected NotImplementedError, got %v", tt.filename, err)
		}
		if err.Error() != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.filename, tt.want, err.Error())
		}
	}
}

func TestIsAllowed(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"notes.txt", true},
		{"NOTES.TXT", true},
		{"paper.pdf", true},
		{"letter.docx", true},
		{"archive.tar.txt", true},
		{"readme.md", false},
		{"noextension", false},
		{"trailingdot.", false},
		{".txt", true},
	}
	for _, tt := range tests {
		if got := IsAllowed(tt.filename); got != tt.want {
			t.Errorf("IsAllowed(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestForFile_Unsupported(t *testing.T) {
	_, err := ForFile("slides.pptx")
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}
