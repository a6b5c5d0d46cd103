package paragraph

import (
	"github.com/pillarpond/engine/core"
	"github.com/pillarpond/engine/core/font"
	"github.com/pillarpond/engine/engine/runloop"
	"github.com/pillarpond/engine/engine/styles"
)

// Options configure a Builder.
type Options struct {
	// Registry is the font selector used to compute the document default
	// style. Nil selects the global registry.
	Registry *font.Registry
	// Runner is the owning execution context for deferred teardown of the
	// document scaffold. See Builder.Dispose. Nil releases inline.
	Runner *runloop.Runner
}

// Builder incrementally builds a styled text tree. It owns the tree until
// Build transfers it into a Paragraph; afterwards the builder is spent and
// every mutating call fails with core.ESTATE.
//
// A Builder is single-writer: calls must be issued in strict sequence by
// one logical caller. No internal locking is provided.
type Builder struct {
	scaffold *scaffold
	cursor   nodeHandle
}

// NewBuilder creates a Builder whose tree root carries the document
// default style (14-unit body font, horizontal, left-to-right, read-only),
// computed from the font selector in opts.
func NewBuilder(opts Options) *Builder {
	doc := styles.NewDocumentStyle(opts.Registry)
	sc := &scaffold{
		doc:       doc,
		tree:      newTree(doc.Span),
		paraStyle: doc.Paragraph,
		runner:    opts.Runner,
	}
	return &Builder{
		scaffold: sc,
		cursor:   sc.tree.root(),
	}
}

// errNoCursor is the shared failure for mutating a builder whose insertion
// point is gone, either from over-popping or from a completed Build.
func errNoCursor() error {
	return core.Error(core.ESTATE, "builder has no insertion point")
}

// PushStyle resolves the supplied overrides against the current insertion
// point's style, appends a new span carrying the resolved record and moves
// the insertion point into the new span. With no insertion point the tree
// is left untouched and an error with code core.ESTATE is returned.
func (b *Builder) PushStyle(ov styles.SpanOverrides) error {
	if b.scaffold == nil || b.cursor == noNode {
		return errNoCursor()
	}
	t := b.scaffold.tree
	resolved := styles.ApplySpan(t.at(b.cursor).style, ov)
	b.cursor = t.appendChild(b.cursor, node{
		kind:  SpanNode,
		style: resolved,
	})
	tracer().Debugf("push style, mask=%#x, cursor=%d", ov.Mask, b.cursor)
	return nil
}

// Pop moves the insertion point to the enclosing span. Popping at the tree
// root clears the insertion point, and popping without one is a no-op;
// both are always safe, nodes are never destroyed by popping. Subsequent
// PushStyle/AddText calls fail until the builder is discarded.
func (b *Builder) Pop() {
	if b.scaffold == nil || b.cursor == noNode {
		return
	}
	b.cursor = b.scaffold.tree.at(b.cursor).parent
}

// AddText appends a text leaf under the current insertion point. The leaf
// inherits the insertion point's resolved style with zero overrides. With
// no insertion point the text is dropped and an error with code
// core.ESTATE is returned.
func (b *Builder) AddText(text string) error {
	if b.scaffold == nil || b.cursor == noNode {
		return errNoCursor()
	}
	t := b.scaffold.tree
	inherited := styles.ApplySpan(t.at(b.cursor).style, styles.SpanOverrides{})
	t.appendChild(b.cursor, node{
		kind:  LeafNode,
		style: inherited,
		text:  text,
	})
	return nil
}

// Build finalizes the tree. Root-level overrides are applied to the
// paragraph style record, except that a zero mask leaves the record
// untouched entirely (no clone, no re-resolution). The insertion point is
// cleared and ownership of the tree and its scaffold transfers exclusively
// into the returned Paragraph; the builder keeps no reference and is spent.
func (b *Builder) Build(ov styles.ParagraphOverrides) (*Paragraph, error) {
	if b.scaffold == nil {
		return nil, core.Error(core.ESTATE, "builder already built")
	}
	sc := b.scaffold
	if ov.Mask != 0 {
		sc.paraStyle = styles.ApplyParagraph(sc.paraStyle, ov)
	}
	b.cursor = noNode
	b.scaffold = nil
	tracer().Debugf("built paragraph with %d nodes", len(sc.tree.nodes))
	return &Paragraph{scaffold: sc}, nil
}

// Dispose relinquishes a builder that will not be built. Teardown of the
// document scaffold is deferred onto the owning runner context; see
// scaffold. After Build, Dispose is a no-op (ownership has been
// transferred to the Paragraph).
func (b *Builder) Dispose() {
	sc := b.scaffold
	b.scaffold = nil
	b.cursor = noNode
	if sc != nil {
		sc.dispose()
	}
}

// --- Encoded entry points --------------------------------------------------

// PushStyleEncoded is the wire-level form of PushStyle, receiving the
// override protocol's encoded integer list (exactly 7 elements) plus the
// out-of-band string and numeric parameters. A wrong-sized list fails with
// core.EINVALID before the tree is touched.
func (b *Builder) PushStyleEncoded(encoded []int32, fontFamily string, fontSize,
	letterSpacing, wordSpacing, height float64) error {
	//
	ov, err := styles.DecodeSpanOverrides(encoded, fontFamily, fontSize,
		letterSpacing, wordSpacing, height)
	if err != nil {
		return err
	}
	return b.PushStyle(ov)
}

// BuildEncoded is the wire-level form of Build, receiving the root-level
// override protocol's encoded integer list (exactly 5 elements). A
// wrong-sized list fails with core.EINVALID and leaves the builder usable.
func (b *Builder) BuildEncoded(encoded []int32, fontFamily string, fontSize,
	lineHeight float64) (*Paragraph, error) {
	//
	ov, err := styles.DecodeParagraphOverrides(encoded, fontFamily, fontSize, lineHeight)
	if err != nil {
		return nil, err
	}
	return b.Build(ov)
}
