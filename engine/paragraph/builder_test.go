package paragraph

import (
	"strings"
	"testing"

	"github.com/npillmayer/cords"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pillarpond/engine/core"
	"github.com/pillarpond/engine/engine/styles"
)

func TestBuilderEmptyDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pond.para")
	defer teardown()
	//
	b := NewBuilder(Options{})
	p, err := b.Build(styles.ParagraphOverrides{})
	require.NoError(t, err)
	defer p.Release()
	root := p.Root()
	assert.True(t, root.IsRoot())
	assert.Equal(t, SpanNode, root.Kind())
	assert.Equal(t, 0, root.ChildCount())
}

func TestBuilderZeroMaskInheritsVerbatim(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pond.para")
	defer teardown()
	//
	b := NewBuilder(Options{})
	rootStyle := b.scaffold.tree.at(b.scaffold.tree.root()).style
	require.NoError(t, b.PushStyle(styles.SpanOverrides{}))
	p, err := b.Build(styles.ParagraphOverrides{})
	require.NoError(t, err)
	defer p.Release()
	span := p.Root().Child(0)
	assert.Equal(t, rootStyle, span.Style(), "zero-mask push must clone the parent record")
}

func TestBuilderZeroMaskBuildKeepsDefaultStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pond.para")
	defer teardown()
	//
	b := NewBuilder(Options{})
	def := b.scaffold.paraStyle
	p, err := b.Build(styles.ParagraphOverrides{})
	require.NoError(t, err)
	defer p.Release()
	assert.Equal(t, def, p.Style())
}

func TestBuilderColorSpanScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pond.para")
	defer teardown()
	//
	b := NewBuilder(Options{})
	var ov styles.SpanOverrides
	ov.SetColor(styles.Color(0xFF112233))
	require.NoError(t, b.PushStyle(ov))
	require.NoError(t, b.AddText("hi"))
	b.Pop()
	require.NoError(t, b.AddText("lo"))
	p, err := b.Build(styles.ParagraphOverrides{})
	require.NoError(t, err)
	defer p.Release()
	//
	root := p.Root()
	require.Equal(t, 2, root.ChildCount())
	span := root.Child(0)
	require.Equal(t, SpanNode, span.Kind())
	assert.Equal(t, styles.Color(0xFF112233), span.Style().Color)
	require.Equal(t, 1, span.ChildCount())
	hi := span.Child(0)
	assert.Equal(t, LeafNode, hi.Kind())
	assert.Equal(t, "hi", hi.Text())
	assert.Equal(t, styles.Color(0xFF112233), hi.Style().Color)
	lo := root.Child(1)
	assert.Equal(t, LeafNode, lo.Kind())
	assert.Equal(t, "lo", lo.Text())
	assert.Equal(t, styles.DefaultTextColor, lo.Style().Color)
}

func TestBuilderStyleInheritanceIsTransitive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pond.para")
	defer teardown()
	//
	b := NewBuilder(Options{})
	var bold styles.SpanOverrides
	bold.SetWeight(styles.WeightBold)
	require.NoError(t, b.PushStyle(bold))
	var red styles.SpanOverrides
	red.SetColor(styles.Color(0xFFFF0000))
	require.NoError(t, b.PushStyle(red))
	require.NoError(t, b.AddText("x"))
	p, err := b.Build(styles.ParagraphOverrides{})
	require.NoError(t, err)
	defer p.Release()
	//
	leaf := p.Root().Child(0).Child(0)
	assert.Equal(t, styles.WeightBold, leaf.Style().Font.Weight, "weight must survive the inner push")
	assert.Equal(t, styles.Color(0xFFFF0000), leaf.Style().Color)
}

func TestBuilderOverPopDropsText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pond.para")
	defer teardown()
	//
	b := NewBuilder(Options{})
	require.NoError(t, b.AddText("kept"))
	b.Pop() // root -> no insertion point
	b.Pop() // harmless
	err := b.AddText("dropped")
	require.Error(t, err)
	assert.Equal(t, core.ESTATE, core.Code(err))
	err = b.PushStyle(styles.SpanOverrides{})
	require.Error(t, err)
	assert.Equal(t, core.ESTATE, core.Code(err))
	//
	p, err := b.Build(styles.ParagraphOverrides{})
	require.NoError(t, err)
	defer p.Release()
	require.Equal(t, 1, p.Root().ChildCount())
	assert.Equal(t, "kept", p.Root().Child(0).Text())
}

func TestBuilderSpentAfterBuild(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pond.para")
	defer teardown()
	//
	b := NewBuilder(Options{})
	p, err := b.Build(styles.ParagraphOverrides{})
	require.NoError(t, err)
	defer p.Release()
	//
	assert.Equal(t, core.ESTATE, core.Code(b.AddText("late")))
	assert.Equal(t, core.ESTATE, core.Code(b.PushStyle(styles.SpanOverrides{})))
	_, err = b.Build(styles.ParagraphOverrides{})
	assert.Equal(t, core.ESTATE, core.Code(err))
	b.Pop() // still safe
}

func TestBuilderSpanCountMatchesPushes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pond.para")
	defer teardown()
	//
	b := NewBuilder(Options{})
	const pushes = 5
	for i := 0; i < pushes; i++ {
		require.NoError(t, b.PushStyle(styles.SpanOverrides{}))
		if i%2 == 1 {
			b.Pop()
			require.NoError(t, b.PushStyle(styles.SpanOverrides{}))
		}
	}
	p, err := b.Build(styles.ParagraphOverrides{})
	require.NoError(t, err)
	defer p.Release()
	assert.Equal(t, pushes+2, countSpans(p.Root())-1, "every push creates exactly one span")
}

func countSpans(n NodeRef) int {
	if n.Kind() != SpanNode {
		return 0
	}
	count := 1
	for i := 0; i < n.ChildCount(); i++ {
		count += countSpans(n.Child(i))
	}
	return count
}

func TestBuilderEncodedLengthChecked(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pond.para")
	defer teardown()
	//
	b := NewBuilder(Options{})
	err := b.PushStyleEncoded([]int32{0, 0, 0}, "", 0, 0, 0, 0)
	require.Error(t, err)
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = b.BuildEncoded(make([]int32, 9), "", 0, 0)
	require.Error(t, err)
	assert.Equal(t, core.EINVALID, core.Code(err))
	// the builder stays usable after a rejected call
	require.NoError(t, b.AddText("still here"))
	p, err := b.BuildEncoded(make([]int32, 5), "", 0, 0)
	require.NoError(t, err)
	defer p.Release()
	assert.Equal(t, 1, p.Root().ChildCount())
}

func TestBuilderEncodedPush(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pond.para")
	defer teardown()
	//
	b := NewBuilder(Options{})
	encoded := []int32{
		styles.SpanColorMask | styles.SpanFontWeightMask | styles.SpanFontSizeMask,
		int32(0xFF336699 - 0x100000000), // ARGB as signed 32 bit
		0, 0, 0,
		int32(styles.WeightBold),
		0,
	}
	require.NoError(t, b.PushStyleEncoded(encoded, "", 21.5, 0, 0, 0))
	require.NoError(t, b.AddText("enc"))
	p, err := b.Build(styles.ParagraphOverrides{})
	require.NoError(t, err)
	defer p.Release()
	//
	sty := p.Root().Child(0).Style()
	assert.Equal(t, styles.Color(0xFF336699), sty.Color)
	assert.Equal(t, styles.WeightBold, sty.Font.Weight)
	assert.InDelta(t, 21.5, sty.Font.ComputedSize, 0.0001)
}

func TestParagraphText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pond.para")
	defer teardown()
	//
	b := NewBuilder(Options{})
	require.NoError(t, b.AddText("Hello "))
	var ov styles.SpanOverrides
	ov.SetStyle(styles.StyleItalic)
	require.NoError(t, b.PushStyle(ov))
	require.NoError(t, b.AddText("styled"))
	b.Pop()
	require.NoError(t, b.AddText(" world"))
	p, err := b.Build(styles.ParagraphOverrides{})
	require.NoError(t, err)
	defer p.Release()
	//
	text := p.Text()
	assert.False(t, text.IsVoid())
	assert.Equal(t, "Hello styled world", cordString(text))
	// fragment organization mirrors the leaves
	leaves := 0
	text.EachLeaf(func(l cords.Leaf, pos uint64) error {
		leaves++
		return nil
	})
	assert.Equal(t, 3, leaves)
}

func cordString(c cords.Cord) string {
	var sb strings.Builder
	c.EachLeaf(func(l cords.Leaf, pos uint64) error {
		sb.WriteString(l.String())
		return nil
	})
	return sb.String()
}

func TestParagraphReleaseIsIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pond.para")
	defer teardown()
	//
	b := NewBuilder(Options{})
	p, err := b.Build(styles.ParagraphOverrides{})
	require.NoError(t, err)
	p.Release()
	p.Release()
	assert.True(t, p.Root().IsVoid())
	b.Dispose() // no-op after build
}
