package mindmap

import "fmt"

// Assemble builds the two-level tree from the full sentence list and the
// selected topics.
//
// Topic sentences are reserved up front and never reused as leaves. Each topic
// then greedily takes up to cfg.MaxSubtopics unused sentences, scanning from
// the start of the text, before the next topic is considered. Earlier
// topics can therefore leave later ones with nothing. Whatever is left over
// goes, uncapped and in order, under a trailing catch-all node that is only
// attached when non-empty.
func Assemble(sentences, topics []string, cfg Config) *Node {
	cfg = cfg.withDefaults()

	root := branch(RootID, cfg.RootText)
	used := make(map[string]bool, len(sentences))
	for _, topic := range topics {
		used[topic] = true
	}

	for i, topic := range topics {
		node := branch(fmt.Sprintf("node-%d", i), topic)
		root.Children = append(root.Children, node)

		for _, s := range sentences {
			if len(node.Children) >= cfg.MaxSubtopics {
				break
			}
			if used[s] {
				continue
			}
			node.Children = append(node.Children, leaf(fmt.Sprintf("node-%d-sub-%d", i, len(node.Children)), s))
			used[s] = true
		}
	}

	other := branch(OtherID, cfg.OtherText)
	for _, s := range sentences {
		if used[s] {
			continue
		}
		other.Children = append(other.Children, leaf(fmt.Sprintf("%s-sub-%d", OtherID, len(other.Children)), s))
		used[s] = true
	}
	if len(other.Children) > 0 {
		root.Children = append(root.Children, other)
	}

	return root
}
