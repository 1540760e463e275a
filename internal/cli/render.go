package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dgallion1/docmap/internal/mindmap"
)

const (
	formatJSON = "json"
	formatTree = "tree"
)

func render(w io.Writer, format string, root *mindmap.Node) error {
	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(root)
	}
	_, err := io.WriteString(w, renderTree(lipgloss.NewRenderer(w), root))
	return err
}

// renderTree draws root and its descendants with box-drawing connectors.
// Styles are resolved against r so colors are dropped for non-terminals.
func renderTree(r *lipgloss.Renderer, root *mindmap.Node) string {
	var (
		rootStyle  = r.NewStyle().Bold(true).Foreground(lipgloss.Color("160"))
		topicStyle = r.NewStyle().Foreground(lipgloss.Color("81")).Bold(true)
		otherStyle = r.NewStyle().Foreground(lipgloss.Color("220"))
		leafStyle  = r.NewStyle()
		edgeStyle  = r.NewStyle().Foreground(lipgloss.Color("240"))
	)

	var b strings.Builder
	b.WriteString(rootStyle.Render(root.Text))
	b.WriteByte('\n')

	for i, topic := range root.Children {
		lastTopic := i == len(root.Children)-1
		style := topicStyle
		if topic.ID == mindmap.OtherID {
			style = otherStyle
		}
		fmt.Fprintf(&b, "%s%s\n", edgeStyle.Render(connector(lastTopic)), style.Render(topic.Text))

		indent := "│   "
		if lastTopic {
			indent = "    "
		}
		for j, leaf := range topic.Children {
			lastLeaf := j == len(topic.Children)-1
			fmt.Fprintf(&b, "%s%s\n", edgeStyle.Render(indent+connector(lastLeaf)), leafStyle.Render(leaf.Text))
		}
	}
	return b.String()
}

func connector(last bool) string {
	if last {
		return "└── "
	}
	return "├── "
}
