package styles

import (
	"github.com/pillarpond/engine/core/dimen"
	"github.com/pillarpond/engine/core/font"
	"golang.org/x/text/unicode/bidi"
)

// DefaultBodyFontSize is the document default font size in device
// independent units, matching Material Design English Body1.
const DefaultBodyFontSize = 14.0

// DefaultTextColor is opaque black.
const DefaultTextColor Color = 0xFF000000

// DocumentStyle is the resolved process/document default a builder starts
// from: the root paragraph record plus the span record its children
// inherit, with the typecase the defaults pin in the font registry.
type DocumentStyle struct {
	Paragraph ParagraphStyleRecord
	Span      StyleRecord
	typecase  *font.TypeCase
}

// NewDocumentStyle computes the document default style from a font
// registry. The registry acts as the font selector: it pins a typecase for
// the default body font, falling back to the built-in font when no
// suitable family is registered.
func NewDocumentStyle(reg *font.Registry) DocumentStyle {
	if reg == nil {
		reg = font.GlobalRegistry()
	}
	typecase, err := reg.TypeCase("", DefaultBodyFontSize)
	if err != nil {
		tracer().Infof("document default falls back: %v", err)
	}
	fd := FontDescription{
		Family: typecase.ScalableFontParent().Fontname,
		Weight: WeightNormal,
		Style:  StyleNormal,
	}
	fd.SetSize(DefaultBodyFontSize)
	doc := DocumentStyle{
		Paragraph: ParagraphStyleRecord{
			Align:       AlignLeft,
			Baseline:    BaselineAlphabetic,
			Font:        fd,
			LineHeight:  dimen.Length{}, // normal, resolved by layout
			Direction:   bidi.LeftToRight,
			Orientation: Horizontal,
			UserModify:  ReadOnly,
		},
		Span: StyleRecord{
			Color:           DefaultTextColor,
			Decoration:      DecorationNone,
			DecorationStyle: DecorationSolid,
			Font:            fd,
		},
		typecase: typecase,
	}
	return doc
}

// TypeCase returns the typecase pinned by the document defaults.
func (doc DocumentStyle) TypeCase() *font.TypeCase {
	return doc.typecase
}
