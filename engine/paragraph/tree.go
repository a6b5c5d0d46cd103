package paragraph

import (
	"github.com/pillarpond/engine/engine/styles"
)

// NodeKind discriminates the two node variants of a text tree.
type NodeKind uint8

// Node variants.
const (
	SpanNode NodeKind = iota // carries a resolved style, has children
	LeafNode                 // carries literal text, has no children
)

// nodeHandle is an index into a tree's node arena. Handles make the
// builder cursor a well-defined "none" state instead of a dangling
// reference when popping walks past the root.
type nodeHandle int32

const noNode nodeHandle = -1

type node struct {
	kind     NodeKind
	style    styles.StyleRecord // resolved; for leaves the inherited record
	text     string             // leaves only
	parent   nodeHandle
	children []nodeHandle
}

// tree is an arena of nodes. The node at handle 0 is the root.
type tree struct {
	nodes []node
}

func newTree(rootStyle styles.StyleRecord) *tree {
	t := &tree{}
	t.nodes = append(t.nodes, node{
		kind:   SpanNode,
		style:  rootStyle,
		parent: noNode,
	})
	return t
}

func (t *tree) root() nodeHandle {
	return 0
}

func (t *tree) at(h nodeHandle) *node {
	return &t.nodes[h]
}

// appendChild allocates a node and links it as the last child of parent.
func (t *tree) appendChild(parent nodeHandle, n node) nodeHandle {
	n.parent = parent
	h := nodeHandle(len(t.nodes))
	t.nodes = append(t.nodes, n)
	p := t.at(parent)
	p.children = append(p.children, h)
	return h
}

// --- Read-only view --------------------------------------------------------

// NodeRef is a read-only reference to a node of a finalized text tree.
// The zero NodeRef is void.
type NodeRef struct {
	t *tree
	h nodeHandle
}

// IsVoid returns true if the reference does not point at a node.
func (n NodeRef) IsVoid() bool {
	return n.t == nil || n.h == noNode
}

// Kind returns the node variant. Void references report SpanNode.
func (n NodeRef) Kind() NodeKind {
	if n.IsVoid() {
		return SpanNode
	}
	return n.t.at(n.h).kind
}

// Style returns the node's resolved style record. For leaves this is the
// record inherited from the nearest ancestor span.
func (n NodeRef) Style() styles.StyleRecord {
	if n.IsVoid() {
		return styles.StyleRecord{}
	}
	return n.t.at(n.h).style
}

// Text returns the literal text of a leaf, or "" for spans.
func (n NodeRef) Text() string {
	if n.IsVoid() {
		return ""
	}
	return n.t.at(n.h).text
}

// ChildCount returns the number of children.
func (n NodeRef) ChildCount() int {
	if n.IsVoid() {
		return 0
	}
	return len(n.t.at(n.h).children)
}

// Child returns the i'th child, in insertion order, or a void reference
// for an out-of-range index.
func (n NodeRef) Child(i int) NodeRef {
	if n.IsVoid() {
		return NodeRef{}
	}
	ch := n.t.at(n.h).children
	if i < 0 || i >= len(ch) {
		return NodeRef{}
	}
	return NodeRef{t: n.t, h: ch[i]}
}

// Parent returns the parent node, or a void reference for the root.
func (n NodeRef) Parent() NodeRef {
	if n.IsVoid() {
		return NodeRef{}
	}
	p := n.t.at(n.h).parent
	if p == noNode {
		return NodeRef{}
	}
	return NodeRef{t: n.t, h: p}
}

// IsRoot returns true if n is the root of its tree.
func (n NodeRef) IsRoot() bool {
	return !n.IsVoid() && n.t.at(n.h).parent == noNode
}
