package tree

import "fmt"

// RedNode overlays an absolute position onto a green node. Red nodes are
// transient: each traversal builds its own chain from the root and discards
// it, and nothing here is stored in or shared with the arena.
type RedNode struct {
	Parent *RedNode
	Span   Span
	Green  GreenID
}

// Offset returns the node's absolute start position.
func (n *RedNode) Offset() int {
	return n.Span.Start
}

// Root builds the red node for a tree root, at offset 0 with no parent.
func (a *Arena) Root(id GreenID) *RedNode {
	return &RedNode{
		Span:  SpanAt(0, a.Node(id).Width),
		Green: id,
	}
}

// Child builds the red node for the i-th child of parent. The child's offset
// is the parent's offset plus the widths of all preceding siblings.
func (a *Arena) Child(parent *RedNode, i int) (*RedNode, error) {
	n := a.Node(parent.Green)
	if i < 0 || i >= len(n.Children) {
		return nil, fmt.Errorf("child index out of range; children: %v, index: %v", len(n.Children), i)
	}
	offset := parent.Span.Start
	for _, c := range n.Children[:i] {
		offset += a.Node(c).Width
	}
	id := n.Children[i]
	return &RedNode{
		Parent: parent,
		Span:   SpanAt(offset, a.Node(id).Width),
		Green:  id,
	}, nil
}

// ChildCount returns the number of children under the red node's green node.
func (a *Arena) ChildCount(n *RedNode) int {
	return len(a.Node(n.Green).Children)
}
