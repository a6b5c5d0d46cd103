package paragraph

import (
	"sync"

	"github.com/npillmayer/cords"

	"github.com/pillarpond/engine/engine/runloop"
	"github.com/pillarpond/engine/engine/styles"
)

// scaffold bundles the node arena with the document context it was built
// against: the resolved document style and the typecase it pins. It is
// owned first by a Builder, then exclusively by the Paragraph the builder
// produces.
//
// Teardown is special: a scaffold may be referenced from rendering code
// running on a different goroutine than the one releasing the paragraph,
// so release is deferred onto the owning runner context rather than done
// at the call site. Without a runner the scaffold is released inline.
type scaffold struct {
	doc       styles.DocumentStyle
	tree      *tree
	paraStyle styles.ParagraphStyleRecord
	runner    *runloop.Runner

	mu       sync.Mutex
	released bool
}

func (sc *scaffold) dispose() {
	if sc.runner == nil {
		sc.release()
		return
	}
	if err := sc.runner.Post(sc.release); err != nil {
		// Owning context already shut down, nobody can observe the
		// scaffold any longer.
		sc.release()
	}
}

func (sc *scaffold) release() {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.released {
		return
	}
	sc.released = true
	tracer().Debugf("releasing paragraph scaffold, %d nodes", len(sc.tree.nodes))
	sc.tree = nil
	sc.doc = styles.DocumentStyle{}
}

// Paragraph is the immutable product of a Builder. It exposes the styled
// text tree for reading and owns the underlying scaffold until Release.
type Paragraph struct {
	scaffold *scaffold
}

// Style returns the paragraph's root-level style record.
func (p *Paragraph) Style() styles.ParagraphStyleRecord {
	return p.scaffold.paraStyle
}

// Root returns a reference to the paragraph node, the root of the styled
// text tree. Child spans and text leaves are reached through it.
func (p *Paragraph) Root() NodeRef {
	sc := p.scaffold
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.released {
		return NodeRef{}
	}
	return NodeRef{t: sc.tree, h: sc.tree.root()}
}

// Text collects the textual content of all leaves, in tree order, as a
// cord. The fragment organization of the cord reflects the leaf
// organization of the tree.
func (p *Paragraph) Text() cords.Cord {
	b := cords.NewBuilder()
	root := p.Root()
	if !root.IsVoid() {
		collectText(root, b)
	}
	return b.Cord()
}

func collectText(n NodeRef, b *cords.Builder) {
	if n.Kind() == LeafNode {
		if t := n.Text(); t != "" {
			b.Append(&textLeaf{content: t})
		}
		return
	}
	for i := 0; i < n.ChildCount(); i++ {
		collectText(n.Child(i), b)
	}
}

// Release relinquishes the paragraph's scaffold. Node references obtained
// from this paragraph must not be used afterwards. Teardown is deferred
// onto the owning runner context; releasing twice is safe.
func (p *Paragraph) Release() {
	sc := p.scaffold
	if sc != nil {
		sc.dispose()
	}
}

// --- Text leaves -----------------------------------------------------------

// textLeaf is the cord leaf type for paragraph text fragments.
// Not intended for client usage.
type textLeaf struct {
	content string
}

// Weight is part of interface cords.Leaf.
func (l *textLeaf) Weight() uint64 {
	return uint64(len(l.content))
}

// String is part of interface cords.Leaf.
func (l *textLeaf) String() string {
	return l.content
}

// Split is part of interface cords.Leaf.
func (l *textLeaf) Split(i uint64) (cords.Leaf, cords.Leaf) {
	left := &textLeaf{content: l.content[:i]}
	right := &textLeaf{content: l.content[i:]}
	return left, right
}

// Substring is part of interface cords.Leaf.
func (l *textLeaf) Substring(i, j uint64) []byte {
	return []byte(l.content)[i:j]
}

var _ cords.Leaf = &textLeaf{}
