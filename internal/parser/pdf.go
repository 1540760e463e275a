package parser

import (
	"io"

	"github.com/dgallion1/docmap/internal/doctree"
)

// PDFParser accepts PDF uploads but has no text extraction.
type PDFParser struct{}

func (p *PDFParser) Parse(_ io.Reader, _ string) (*doctree.DocTree, error) {
	return nil, &NotImplementedError{Format: "pdf"}
}
