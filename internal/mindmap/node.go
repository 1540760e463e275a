package mindmap

import "encoding/json"

// Node is one entry of the mindmap tree. Leaves have nil Children.
type Node struct {
	ID       string  `json:"id"`
	Text     string  `json:"text"`
	Children []*Node `json:"children,omitempty"`
}

// MarshalJSON writes "children" for branch nodes even when they are empty,
// and leaves it out for leaves, so a decoded tree compares equal to the encoded one.
func (n Node) MarshalJSON() ([]byte, error) {
	type wire struct {
		ID       string   `json:"id"`
		Text     string   `json:"text"`
		Children *[]*Node `json:"children,omitempty"`
	}
	w := wire{ID: n.ID, Text: n.Text}
	if n.Children != nil {
		w.Children = &n.Children
	}
	return json.Marshal(w)
}

// Walk visits n and its descendants depth-first, parents before children.
func (n *Node) Walk(fn func(node *Node, depth int)) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int), depth int) {
	fn(n, depth)
	for _, c := range n.Children {
		c.walk(fn, depth+1)
	}
}

func leaf(id, text string) *Node {
	return &Node{ID: id, Text: text}
}

func branch(id, text string) *Node {
	return &Node{ID: id, Text: text, Children: []*Node{}}
}
