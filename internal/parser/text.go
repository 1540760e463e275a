package parser

import (
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/dgallion1/docmap/internal/doctree"
)

// ErrInvalidEncoding is returned when a text file is not valid UTF-8.
var ErrInvalidEncoding = errors.New("text file is not valid UTF-8")

// TextParser handles plain UTF-8 text files. Blank lines separate paragraphs.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*doctree.DocTree, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		return nil, ErrInvalidEncoding
	}

	// Line endings are unified like a text-mode read; nothing else changes.
	raw := strings.ReplaceAll(string(data), "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\r", "\n")
	content := strings.TrimPrefix(raw, "\ufeff")

	tree := &doctree.DocTree{Title: trimExt(filename), Raw: raw}

	var para []string
	flush := func() {
		if len(para) > 0 {
			tree.Children = append(tree.Children, &doctree.DocNode{Text: strings.Join(para, "\n")})
			para = para[:0]
		}
	}
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		para = append(para, line)
	}
	flush()

	return tree, nil
}

// trimExt drops the final extension, whatever its case.
func trimExt(filename string) string {
	if i := strings.LastIndex(filename, "."); i > 0 {
		return filename[:i]
	}
	return filename
}
