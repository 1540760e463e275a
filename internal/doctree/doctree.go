package doctree

import "strings"

// DocTree is the root of a parsed document.
type DocTree struct {
	Title    string     // Document title (from filename)
	Children []*DocNode // Top-level blocks
	Raw      string     // Decoded source text, for formats that have one
}

// DocNode is a block of document text, possibly with nested blocks.
type DocNode struct {
	Title    string
	Text     string
	Children []*DocNode
}

// Chunk is a bounded slice of document text handed to the summarizer.
type Chunk struct {
	Text  string
	Index int // Sequence number within the document
	Start int // Rune offset of the first character
	End   int // Rune offset one past the last character
}

// Content returns the text to summarize: the decoded source when the parser
// kept it, otherwise the joined block text.
func (t *DocTree) Content() string {
	if t.Raw != "" {
		return t.Raw
	}
	return t.Text()
}

// Text joins every node's text depth-first, separating blocks with a blank line.
func (t *DocTree) Text() string {
	var sb strings.Builder
	var walk func(nodes []*DocNode)
	walk = func(nodes []*DocNode) {
		for _, n := range nodes {
			if n.Text != "" {
				if sb.Len() > 0 {
					sb.WriteString("\n\n")
				}
				sb.WriteString(n.Text)
			}
			walk(n.Children)
		}
	}
	walk(t.Children)
	return sb.String()
}
