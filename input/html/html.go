/*
Package html reads HTML fragments into styled paragraphs.

We use these libraries for parsing and selector matching:

	golang.org/x/net/html
	github.com/andybalholm/cascadia
	github.com/aymerick/douceur

The reader drives a paragraph builder over the parsed fragment: inline
elements push style overrides, text nodes become text leaves. Styling
comes from three sources, later ones winning: tag defaults (b/strong,
i/em, u, s/del), rules from <style> elements matched with CSS selectors,
and inline style attributes. Runs of whitespace collapse to a single
space.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 Pillarpond Engine contributors
*/
package html

import (
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	douceurcss "github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"

	"github.com/pillarpond/engine/core"
	"github.com/pillarpond/engine/engine/paragraph"
	"github.com/pillarpond/engine/engine/styles"
	"github.com/pillarpond/engine/engine/styles/css"
)

// tracer traces with key 'pond.html'.
func tracer() tracing.Trace {
	return tracing.Select("pond.html")
}

// ParseParagraph reads an HTML fragment and builds a styled paragraph
// from its body content. Unparsable input fails with core.EINVALID.
func ParseParagraph(r io.Reader, opts paragraph.Options) (*paragraph.Paragraph, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse HTML input")
	}
	rules := collectRules(doc)
	tracer().Debugf("collected %d style rules", len(rules))
	b := paragraph.NewBuilder(opts)
	root := findElement(doc, "body")
	if root == nil {
		root = doc
	}
	w := walker{builder: b, rules: rules}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := w.walk(c, styles.DecorationNone); err != nil {
			b.Dispose()
			return nil, err
		}
	}
	return b.Build(styles.ParagraphOverrides{})
}

// styleRule is one compiled rule from a <style> element.
type styleRule struct {
	selector cascadia.Selector
	decls    []*douceurcss.Declaration
}

// collectRules compiles the rules of every <style> element in the
// document. Rules with selectors cascadia cannot compile are skipped.
func collectRules(doc *html.Node) []styleRule {
	var rules []styleRule
	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "style" {
			rules = append(rules, parseStyleElement(n)...)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(doc)
	return rules
}

func parseStyleElement(n *html.Node) []styleRule {
	var text strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			text.WriteString(c.Data)
		}
	}
	sheet, err := parser.Parse(text.String())
	if err != nil {
		tracer().Infof("skipping broken stylesheet: %v", err)
		return nil
	}
	var rules []styleRule
	for _, rule := range sheet.Rules {
		if len(rule.Selectors) == 0 {
			continue
		}
		sel, err := cascadia.Compile(strings.Join(rule.Selectors, ", "))
		if err != nil {
			tracer().Infof("skipping selector %v: %v", rule.Selectors, err)
			continue
		}
		rules = append(rules, styleRule{selector: sel, decls: rule.Declarations})
	}
	return rules
}

func findElement(n *html.Node, name string) *html.Node {
	if n.Type == html.ElementNode && n.Data == name {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, name); found != nil {
			return found
		}
	}
	return nil
}

type walker struct {
	builder *paragraph.Builder
	rules   []styleRule
}

// walk drives the builder over one node. deco carries the decoration
// lines inherited from enclosing elements, so nested u/s elements
// accumulate lines instead of replacing them.
func (w *walker) walk(n *html.Node, deco styles.TextDecoration) error {
	switch n.Type {
	case html.TextNode:
		if text := collapseSpace(n.Data); text != "" {
			return w.builder.AddText(text)
		}
		return nil
	case html.ElementNode:
		// fall through
	default:
		return nil
	}
	if n.Data == "br" {
		return w.builder.AddText("\n")
	}
	ov, childDeco := w.overridesFor(n, deco)
	pushed := ov.Mask != 0
	if pushed {
		if err := w.builder.PushStyle(ov); err != nil {
			return err
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := w.walk(c, childDeco); err != nil {
			return err
		}
	}
	if pushed {
		w.builder.Pop()
	}
	return nil
}

// overridesFor folds tag defaults, matching stylesheet rules and the
// inline style attribute into one override set, in that order.
func (w *walker) overridesFor(n *html.Node, deco styles.TextDecoration) (styles.SpanOverrides, styles.TextDecoration) {
	var ov styles.SpanOverrides
	switch n.Data {
	case "b", "strong":
		ov.SetWeight(styles.WeightBold)
	case "i", "em":
		ov.SetStyle(styles.StyleItalic)
	case "u":
		deco |= styles.DecorationUnderline
		ov.SetDecoration(deco)
	case "s", "del", "strike":
		deco |= styles.DecorationLineThrough
		ov.SetDecoration(deco)
	}
	var decls []*douceurcss.Declaration
	for _, rule := range w.rules {
		if rule.selector.Match(n) {
			decls = append(decls, rule.decls...)
		}
	}
	if inline := attrValue(n, "style"); inline != "" {
		if !strings.HasSuffix(inline, ";") {
			inline += ";"
		}
		parsed, err := parser.ParseDeclarations(inline)
		if err != nil {
			tracer().Infof("skipping broken inline style %q: %v", inline, err)
		} else {
			decls = append(decls, parsed...)
		}
	}
	if len(decls) > 0 {
		declared := css.Overrides(decls)
		ov = mergeOverrides(ov, declared)
		if ov.Mask&styles.SpanDecorationMask != 0 {
			deco = ov.Decoration
		}
	}
	return ov, deco
}

// mergeOverrides folds b over a, field by field.
func mergeOverrides(a, b styles.SpanOverrides) styles.SpanOverrides {
	if b.Mask&styles.SpanColorMask != 0 {
		a.SetColor(b.Color)
	}
	if b.Mask&styles.SpanDecorationMask != 0 {
		a.SetDecoration(b.Decoration)
	}
	if b.Mask&styles.SpanDecorationColorMask != 0 {
		a.SetDecorationColor(b.DecorationColor)
	}
	if b.Mask&styles.SpanDecorationStyleMask != 0 {
		a.SetDecorationStyle(b.DecorationStyle)
	}
	if b.Mask&styles.SpanFontWeightMask != 0 {
		a.SetWeight(b.Weight)
	}
	if b.Mask&styles.SpanFontStyleMask != 0 {
		a.SetStyle(b.Style)
	}
	if b.Mask&styles.SpanFontFamilyMask != 0 {
		a.SetFamily(b.Family)
	}
	if b.Mask&styles.SpanFontSizeMask != 0 {
		a.SetFontSize(b.FontSize)
	}
	if b.Mask&styles.SpanLetterSpacingMask != 0 {
		a.SetLetterSpacing(b.LetterSpacing)
	}
	if b.Mask&styles.SpanWordSpacingMask != 0 {
		a.SetWordSpacing(b.WordSpacing)
	}
	if b.Mask&styles.SpanHeightMask != 0 {
		a.SetHeight(b.Height)
	}
	return a
}

func attrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// collapseSpace collapses runs of whitespace to a single space, keeping a
// single leading/trailing space as the separator towards sibling nodes.
// Text that is whitespace only collapses to the empty string.
func collapseSpace(text string) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}
	var sb strings.Builder
	if isSpace(rune(text[0])) {
		sb.WriteByte(' ')
	}
	sb.WriteString(strings.Join(words, " "))
	if isSpace(rune(text[len(text)-1])) {
		sb.WriteByte(' ')
	}
	return sb.String()
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f'
}
