package parser

import (
	"io"

	"github.com/dgallion1/docmap/internal/doctree"
)

// DOCXParser accepts Word uploads but has no text extraction.
type DOCXParser struct{}

func (p *DOCXParser) Parse(_ io.Reader, _ string) (*doctree.DocTree, error) {
	return nil, &NotImplementedError{Format: "docx"}
}
