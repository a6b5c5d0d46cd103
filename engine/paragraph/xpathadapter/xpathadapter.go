/*
Package xpathadapter implements an xpath.NodeNavigator over styled text
trees.

We use this library for XPath queries:

	github.com/antchfx/xpath

The adapter lets antchfx/xpath walk a paragraph's node tree: the paragraph
node appears as a "paragraph" element, nested spans as "span" elements and
text leaves as text nodes. Resolved style attributes of elements are
exposed as XPath attributes (color, font-family, font-size, font-weight,
font-style, text-decoration), so queries like

	//span[@font-style='italic']

select spans by their resolved style.

For a description of the various methods of interface xpath.NodeNavigator
please refer to the documentation of antchfx/xpath. It is not replicated
here.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 Pillarpond Engine contributors
*/
package xpathadapter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/antchfx/xpath"

	"github.com/pillarpond/engine/engine/paragraph"
	"github.com/pillarpond/engine/engine/styles"
)

// NodeNavigator walks a paragraph's text tree for antchfx/xpath. A virtual
// document root sits above the paragraph element, as the XPath data model
// requires.
type NodeNavigator struct {
	root, current paragraph.NodeRef
	atDocRoot     bool
	attr          int // attributes index, -1 = not on an attribute
}

// NewNavigator creates an xpath.NodeNavigator positioned at the virtual
// root above the given paragraph node.
func NewNavigator(node paragraph.NodeRef) *NodeNavigator {
	return &NodeNavigator{
		root:      node,
		current:   node,
		atDocRoot: true,
		attr:      -1,
	}
}

// CurrentNode extracts the tree node a navigator is positioned at, for
// collecting query results.
func CurrentNode(nav xpath.NodeNavigator) (paragraph.NodeRef, error) {
	mynav, ok := nav.(*NodeNavigator)
	if !ok {
		return paragraph.NodeRef{}, errors.New("navigator is not of type xpathadapter.NodeNavigator")
	}
	return mynav.current, nil
}

func (nav *NodeNavigator) NodeType() xpath.NodeType {
	if nav.atDocRoot {
		return xpath.RootNode
	}
	if nav.current.Kind() == paragraph.LeafNode {
		return xpath.TextNode
	}
	if nav.attr != -1 {
		return xpath.AttributeNode
	}
	return xpath.ElementNode
}

func (nav *NodeNavigator) LocalName() string {
	if nav.atDocRoot {
		return ""
	}
	if nav.attr != -1 {
		return styleAttributes(nav.current.Style())[nav.attr].key
	}
	if nav.current.Kind() == paragraph.LeafNode {
		return ""
	}
	if nav.current.IsRoot() {
		return "paragraph"
	}
	return "span"
}

func (*NodeNavigator) Prefix() string {
	return ""
}

func (nav *NodeNavigator) Value() string {
	if nav.atDocRoot {
		return innerText(nav.root)
	}
	if nav.attr != -1 {
		return styleAttributes(nav.current.Style())[nav.attr].value
	}
	if nav.current.Kind() == paragraph.LeafNode {
		return nav.current.Text()
	}
	return innerText(nav.current)
}

func (nav *NodeNavigator) Copy() xpath.NodeNavigator {
	n := *nav
	return &n
}

func (nav *NodeNavigator) MoveToRoot() {
	nav.current = nav.root
	nav.atDocRoot = true
	nav.attr = -1
}

func (nav *NodeNavigator) MoveToParent() bool {
	if nav.attr != -1 {
		nav.attr = -1 // move from attributes to element
		return true
	}
	if nav.atDocRoot {
		return false
	}
	if nav.current == nav.root {
		nav.atDocRoot = true
		return true
	}
	parent := nav.current.Parent()
	if parent.IsVoid() {
		return false
	}
	nav.current = parent
	return true
}

func (nav *NodeNavigator) MoveToNextAttribute() bool {
	if nav.atDocRoot || nav.current.Kind() != paragraph.SpanNode {
		return false
	}
	if nav.attr >= len(styleAttributes(nav.current.Style()))-1 {
		return false
	}
	nav.attr++
	return true
}

func (nav *NodeNavigator) MoveToChild() bool {
	if nav.attr != -1 {
		return false
	}
	if nav.atDocRoot {
		nav.atDocRoot = false
		nav.current = nav.root
		return true
	}
	if nav.current.ChildCount() == 0 {
		return false
	}
	nav.current = nav.current.Child(0)
	return true
}

func (nav *NodeNavigator) MoveToFirst() bool {
	if nav.attr != -1 || nav.atDocRoot || nav.current == nav.root {
		return false
	}
	first := nav.current.Parent().Child(0)
	if first.IsVoid() {
		return false
	}
	nav.current = first
	return true
}

func (nav *NodeNavigator) String() string {
	return nav.Value()
}

func (nav *NodeNavigator) MoveToNext() bool {
	return nav.moveSibling(+1)
}

func (nav *NodeNavigator) MoveToPrevious() bool {
	return nav.moveSibling(-1)
}

func (nav *NodeNavigator) moveSibling(dir int) bool {
	if nav.attr != -1 || nav.atDocRoot || nav.current == nav.root {
		return false
	}
	parent := nav.current.Parent()
	i := childIndex(parent, nav.current)
	if i < 0 {
		return false
	}
	sibling := parent.Child(i + dir)
	if sibling.IsVoid() {
		return false
	}
	nav.current = sibling
	return true
}

func (nav *NodeNavigator) MoveTo(other xpath.NodeNavigator) bool {
	n, ok := other.(*NodeNavigator)
	if !ok || n.root != nav.root {
		return false
	}
	nav.current = n.current
	nav.atDocRoot = n.atDocRoot
	nav.attr = n.attr
	return true
}

var _ xpath.NodeNavigator = &NodeNavigator{}

func childIndex(parent, child paragraph.NodeRef) int {
	for i := 0; i < parent.ChildCount(); i++ {
		if parent.Child(i) == child {
			return i
		}
	}
	return -1
}

// innerText returns the text content of a node and all its descendents, in
// tree order.
func innerText(n paragraph.NodeRef) string {
	var sb strings.Builder
	var output func(paragraph.NodeRef)
	output = func(n paragraph.NodeRef) {
		if n.Kind() == paragraph.LeafNode {
			sb.WriteString(n.Text())
			return
		}
		for i := 0; i < n.ChildCount(); i++ {
			output(n.Child(i))
		}
	}
	output(n)
	return sb.String()
}

type attribute struct {
	key, value string
}

// styleAttributes renders a resolved style record as XPath attributes, in
// stable order.
func styleAttributes(sty styles.StyleRecord) []attribute {
	attrs := []attribute{
		{"color", sty.Color.String()},
		{"font-family", sty.Font.Family},
		{"font-size", fmt.Sprintf("%g", sty.Font.ComputedSize)},
		{"font-weight", fmt.Sprintf("%d", sty.Font.Weight.CSS())},
		{"font-style", styleName(sty.Font.Style)},
	}
	if sty.Decoration != styles.DecorationNone {
		attrs = append(attrs, attribute{"text-decoration", sty.Decoration.String()})
	}
	return attrs
}

func styleName(s styles.FontStyle) string {
	if s == styles.StyleItalic {
		return "italic"
	}
	return "normal"
}
