// internal/doctree/container.go
package doctree

import "strings"

// Point is a caret location inside a container: a node plus an offset
// within that node. For text nodes the offset is a rune index; for
// elements it is a child index, as produced by selection APIs.
type Point struct {
	Node   *Node
	Offset int
}

// Range is a static pair of points. It does not track tree mutations.
type Range struct {
	Start Point
	End   Point
}

// Collapsed reports whether the range is a plain caret (start == end).
func (r Range) Collapsed() bool {
	return r.Start.Node == r.End.Node && r.Start.Offset == r.End.Offset
}

// Container wraps the root of one block's content tree and provides
// flattening and caret measurement over it.
type Container struct {
	root *Node
}

// NewContainer wraps a root node. A nil root behaves as an empty container.
func NewContainer(root *Node) *Container {
	return &Container{root: root}
}

// Root returns the wrapped root node.
func (c *Container) Root() *Node { return c.root }

// Text returns the container's flattened text: the concatenation of all
// text descendants in document order, ignoring element structure.
func (c *Container) Text() string {
	var sb strings.Builder
	walkText(c.root, func(n *Node) bool {
		sb.WriteString(string(n.text))
		return true
	})
	return sb.String()
}

// Length returns the rune count of the flattened text.
func (c *Container) Length() int {
	return subtreeTextLen(c.root)
}

// Contains reports whether n lives under the container's root.
func (c *Container) Contains(n *Node) bool {
	for cur := n; cur != nil; cur = cur.parent {
		if cur == c.root {
			return true
		}
	}
	return false
}

// Measure converts a point into a flat rune offset within the flattened
// text: the length of all text preceding the point in document order.
// The result is always within [0, Length()]. A point outside the
// container measures as the full length (caret at end).
func (c *Container) Measure(p Point) int {
	if c.root == nil || p.Node == nil || !c.Contains(p.Node) {
		return c.Length()
	}

	base, found := textBeforeNode(c.root, p.Node)
	if !found {
		return c.Length()
	}

	if p.Node.kind == TextNode {
		return base + clamp(p.Offset, 0, len(p.Node.text))
	}

	// Element point: the offset is a child index; the preceding children's
	// subtrees contribute their full flattened text.
	idx := clamp(p.Offset, 0, len(p.Node.children))
	for j := 0; j < idx; j++ {
		base += subtreeTextLen(p.Node.children[j])
	}
	return base
}

// PointAt maps a flat rune offset back to a concrete point on a text
// node, clamping the offset into bounds. Offsets on a boundary between
// two text nodes resolve to the end of the earlier node.
func (c *Container) PointAt(offset int) Point {
	offset = clamp(offset, 0, c.Length())
	var last *Node
	var result Point
	found := false
	remaining := offset
	walkText(c.root, func(n *Node) bool {
		last = n
		if remaining <= len(n.text) {
			result = Point{Node: n, Offset: remaining}
			found = true
			return false
		}
		remaining -= len(n.text)
		return true
	})
	if found {
		return result
	}
	if last != nil {
		return Point{Node: last, Offset: len(last.text)}
	}
	// Tree holds no text at all.
	return Point{Node: c.root, Offset: 0}
}

// End returns the point at the very end of the container's text.
func (c *Container) End() Point {
	return c.PointAt(c.Length())
}

// TextNodes returns the container's text leaves in document order.
func (c *Container) TextNodes() []*Node {
	var out []*Node
	walkText(c.root, func(n *Node) bool {
		out = append(out, n)
		return true
	})
	return out
}

// walkText visits text descendants of root in document order. The visit
// function returns false to stop the walk early.
func walkText(root *Node, visit func(*Node) bool) bool {
	if root == nil {
		return true
	}
	if root.kind == TextNode {
		return visit(root)
	}
	for _, child := range root.children {
		if !walkText(child, visit) {
			return false
		}
	}
	return true
}

// textBeforeNode counts the runes of all text nodes visited before
// entering target in a pre-order walk. found is false if target is not
// reachable from root.
func textBeforeNode(root, target *Node) (total int, found bool) {
	var walk func(n *Node) bool
	walk = func(n *Node) bool {
		if n == target {
			found = true
			return false
		}
		if n.kind == TextNode {
			total += len(n.text)
			return true
		}
		for _, child := range n.children {
			if !walk(child) {
				return false
			}
		}
		return true
	}
	if root != nil {
		walk(root)
	}
	return total, found
}

// subtreeTextLen returns the total rune count of text within a subtree.
func subtreeTextLen(n *Node) int {
	total := 0
	walkText(n, func(t *Node) bool {
		total += len(t.text)
		return true
	})
	return total
}
