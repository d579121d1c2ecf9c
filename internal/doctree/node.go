// internal/doctree/node.go
package doctree

// Kind distinguishes the node variants in a block's content tree.
type Kind int

const (
	// ElementNode is a structural node (e.g. "strong", "em", "a") with children.
	ElementNode Kind = iota
	// TextNode is a leaf carrying visible text.
	TextNode
)

// Node is a single node in a block's content tree. It is a deliberately
// small subset of a DOM node: enough structure for caret math and
// flattening, nothing more.
type Node struct {
	kind     Kind
	tag      string // element tag, empty for text nodes
	text     []rune // text payload, nil for elements
	parent   *Node
	children []*Node
}

// NewText creates a text leaf node.
func NewText(s string) *Node {
	return &Node{kind: TextNode, text: []rune(s)}
}

// NewElement creates an element node with the given tag and children.
// Children are reparented to the new node.
func NewElement(tag string, children ...*Node) *Node {
	n := &Node{kind: ElementNode, tag: tag}
	for _, c := range children {
		n.Append(c)
	}
	return n
}

// Kind returns the node variant.
func (n *Node) Kind() Kind { return n.kind }

// Tag returns the element tag. Empty for text nodes.
func (n *Node) Tag() string { return n.tag }

// Text returns the node's own text. Empty for elements; use
// Container.Text for subtree flattening.
func (n *Node) Text() string { return string(n.text) }

// Len returns the node's length: rune count for text nodes, child count
// for elements. This mirrors how selection offsets are interpreted.
func (n *Node) Len() int {
	if n.kind == TextNode {
		return len(n.text)
	}
	return len(n.children)
}

// Children returns the node's child slice. Callers must not mutate it.
func (n *Node) Children() []*Node { return n.children }

// Parent returns the node's parent, nil for a detached root.
func (n *Node) Parent() *Node { return n.parent }

// Append adds a child to an element node, reparenting it. Appending to a
// text node is ignored.
func (n *Node) Append(child *Node) {
	if n.kind != ElementNode || child == nil {
		return
	}
	child.parent = n
	n.children = append(n.children, child)
}

// InsertText inserts s into a text node at the given rune offset,
// clamping the offset into bounds. No-op on element nodes.
func (n *Node) InsertText(offset int, s string) {
	if n.kind != TextNode || s == "" {
		return
	}
	offset = clamp(offset, 0, len(n.text))
	ins := []rune(s)
	out := make([]rune, 0, len(n.text)+len(ins))
	out = append(out, n.text[:offset]...)
	out = append(out, ins...)
	out = append(out, n.text[offset:]...)
	n.text = out
}

// DeleteText removes the rune range [start, end) from a text node,
// clamping both bounds. No-op on element nodes.
func (n *Node) DeleteText(start, end int) {
	if n.kind != TextNode {
		return
	}
	start = clamp(start, 0, len(n.text))
	end = clamp(end, start, len(n.text))
	n.text = append(n.text[:start], n.text[end:]...)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
