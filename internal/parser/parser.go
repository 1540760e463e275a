package parser

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/docmap/internal/doctree"
)

// Parser converts raw document bytes into a DocTree.
type Parser interface {
	Parse(r io.Reader, filename string) (*doctree.DocTree, error)
}

// AllowedExtensions lists the upload types accepted, without the leading dot.
var AllowedExtensions = map[string]bool{
	"txt":  true,
	"pdf":  true,
	"docx": true,
}

// ErrUnsupportedType is returned for files outside AllowedExtensions.
var ErrUnsupportedType = errors.New("file type not allowed")

// NotImplementedError reports an accepted format whose text extraction is not available.
type NotImplementedError struct {
	Format string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("%s text extraction not implemented in this demo. Please use .txt", strings.ToUpper(e.Format))
}

// Extension returns the lower-cased text after the last dot, or "" if the
// name has no dot.
func Extension(filename string) string {
	i := strings.LastIndex(filename, ".")
	if i < 0 {
		return ""
	}
	return strings.ToLower(filename[i+1:])
}

// IsAllowed reports whether filename has an accepted extension.
func IsAllowed(filename string) bool {
	return AllowedExtensions[Extension(filename)]
}

// ForFile returns the parser for a filename.
func ForFile(filename string) (Parser, error) {
	switch ext := Extension(filename); ext {
	case "txt":
		return &TextParser{}, nil
	case "pdf":
		return &PDFParser{}, nil
	case "docx":
		return &DOCXParser{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, ext)
	}
}
