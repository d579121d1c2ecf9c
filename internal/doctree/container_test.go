package doctree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildMixed returns a container shaped like typical block content:
//
//	<p>Hello <strong>bold <em>nested</em></strong> tail</p>
func buildMixed() (*Container, map[string]*Node) {
	hello := NewText("Hello ")
	bold := NewText("bold ")
	nested := NewText("nested")
	tail := NewText(" tail")
	em := NewElement("em", nested)
	strong := NewElement("strong", bold, em)
	p := NewElement("p", hello, strong, tail)
	nodes := map[string]*Node{
		"hello": hello, "bold": bold, "nested": nested, "tail": tail,
		"em": em, "strong": strong, "p": p,
	}
	return NewContainer(p), nodes
}

func TestContainerText(t *testing.T) {
	t.Parallel()

	c, _ := buildMixed()
	assert.Equal(t, "Hello bold nested tail", c.Text())
	assert.Equal(t, len([]rune("Hello bold nested tail")), c.Length())
}

func TestContainerTextEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", NewContainer(nil).Text())
	assert.Equal(t, "", NewContainer(NewElement("p")).Text())
	assert.Equal(t, 0, NewContainer(NewElement("p")).Length())
}

func TestMeasureTextPoints(t *testing.T) {
	t.Parallel()

	c, nodes := buildMixed()

	tests := []struct {
		name   string
		point  Point
		expect int
	}{
		{"start of first text node", Point{nodes["hello"], 0}, 0},
		{"inside first text node", Point{nodes["hello"], 5}, 5},
		{"start of nested bold text", Point{nodes["bold"], 0}, 6},
		{"inside deeply nested text", Point{nodes["nested"], 3}, 14},
		{"end of last text node", Point{nodes["tail"], 5}, 22},
		{"offset past node length clamps", Point{nodes["bold"], 99}, 11},
		{"negative offset clamps to node start", Point{nodes["bold"], -4}, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, c.Measure(tt.point))
		})
	}
}

func TestMeasureElementPoints(t *testing.T) {
	t.Parallel()

	c, nodes := buildMixed()

	// Element offsets are child indices.
	assert.Equal(t, 0, c.Measure(Point{nodes["p"], 0}))
	assert.Equal(t, 6, c.Measure(Point{nodes["p"], 1}), "before <strong>")
	assert.Equal(t, 17, c.Measure(Point{nodes["p"], 2}), "after <strong>")
	assert.Equal(t, 22, c.Measure(Point{nodes["p"], 3}), "past last child")
	assert.Equal(t, 11, c.Measure(Point{nodes["strong"], 1}), "between bold text and <em>")
}

func TestMeasureForeignNode(t *testing.T) {
	t.Parallel()

	c, _ := buildMixed()
	stranger := NewText("elsewhere")

	// A point outside the container measures as the full length.
	assert.Equal(t, c.Length(), c.Measure(Point{stranger, 3}))
	assert.Equal(t, c.Length(), c.Measure(Point{nil, 0}))
}

func TestPointAtRoundTrip(t *testing.T) {
	t.Parallel()

	c, _ := buildMixed()
	for offset := 0; offset <= c.Length(); offset++ {
		p := c.PointAt(offset)
		require.NotNil(t, p.Node)
		assert.Equal(t, offset, c.Measure(p), "offset %d must round-trip", offset)
	}
}

func TestPointAtClamps(t *testing.T) {
	t.Parallel()

	c, nodes := buildMixed()
	assert.Equal(t, Point{nodes["hello"], 0}, c.PointAt(-5))

	end := c.PointAt(999)
	assert.Equal(t, c.Length(), c.Measure(end))
	assert.Equal(t, end, c.End())
}

func TestPointAtNoText(t *testing.T) {
	t.Parallel()

	root := NewElement("p")
	c := NewContainer(root)
	p := c.PointAt(0)
	assert.Equal(t, root, p.Node)
	assert.Equal(t, 0, p.Offset)
}

func TestTextMutation(t *testing.T) {
	t.Parallel()

	n := NewText("hello")
	n.InsertText(5, " world")
	assert.Equal(t, "hello world", n.Text())

	n.InsertText(99, "!")
	assert.Equal(t, "hello world!", n.Text())

	n.DeleteText(5, 11)
	assert.Equal(t, "hello!", n.Text())

	// Out-of-range bounds clamp rather than panic.
	n.DeleteText(-3, 100)
	assert.Equal(t, "", n.Text())
}

func TestRangeCollapsed(t *testing.T) {
	t.Parallel()

	n := NewText("abc")
	assert.True(t, Range{Point{n, 1}, Point{n, 1}}.Collapsed())
	assert.False(t, Range{Point{n, 1}, Point{n, 2}}.Collapsed())
}

func TestUnicodeMeasurement(t *testing.T) {
	t.Parallel()

	// Offsets are rune counts, not bytes.
	text := NewText("héllo")
	c := NewContainer(NewElement("p", text))
	assert.Equal(t, 5, c.Length())
	assert.Equal(t, 2, c.Measure(Point{text, 2}))
}
