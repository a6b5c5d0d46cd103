package styles

import (
	"github.com/pillarpond/engine/core"
	"github.com/pillarpond/engine/core/dimen"
)

// Field indices of the span-level override protocol. Index 0 of the
// encoded list is the mask itself; indices 1 through 6 are carried in the
// list, indices 7 through 11 select the out-of-band string and numeric
// parameters of the call.
const (
	SpanColorIndex = iota + 1
	SpanDecorationIndex
	SpanDecorationColorIndex
	SpanDecorationStyleIndex
	SpanFontWeightIndex
	SpanFontStyleIndex
	SpanFontFamilyIndex
	SpanFontSizeIndex
	SpanLetterSpacingIndex
	SpanWordSpacingIndex
	SpanHeightIndex
)

// Mask bits of the span-level override protocol.
const (
	SpanColorMask           = 1 << SpanColorIndex
	SpanDecorationMask      = 1 << SpanDecorationIndex
	SpanDecorationColorMask = 1 << SpanDecorationColorIndex
	SpanDecorationStyleMask = 1 << SpanDecorationStyleIndex
	SpanFontWeightMask      = 1 << SpanFontWeightIndex
	SpanFontStyleMask       = 1 << SpanFontStyleIndex
	SpanFontFamilyMask      = 1 << SpanFontFamilyIndex
	SpanFontSizeMask        = 1 << SpanFontSizeIndex
	SpanLetterSpacingMask   = 1 << SpanLetterSpacingIndex
	SpanWordSpacingMask     = 1 << SpanWordSpacingIndex
	SpanHeightMask          = 1 << SpanHeightIndex
)

// spanEncodedLen is the expected element count of an encoded span override
// list: the mask plus the six fields passed positionally.
const spanEncodedLen = 7

// Field indices and mask bits of the paragraph-level override protocol.
const (
	ParaTextAlignIndex = iota + 1
	ParaTextBaselineIndex
	ParaFontWeightIndex
	ParaFontStyleIndex
	ParaFontFamilyIndex
	ParaFontSizeIndex
	ParaLineHeightIndex
)

// Mask bits of the paragraph-level override protocol.
const (
	ParaTextAlignMask    = 1 << ParaTextAlignIndex
	ParaTextBaselineMask = 1 << ParaTextBaselineIndex
	ParaFontWeightMask   = 1 << ParaFontWeightIndex
	ParaFontStyleMask    = 1 << ParaFontStyleIndex
	ParaFontFamilyMask   = 1 << ParaFontFamilyIndex
	ParaFontSizeMask     = 1 << ParaFontSizeIndex
	ParaLineHeightMask   = 1 << ParaLineHeightIndex
)

// paraEncodedLen is the expected element count of an encoded paragraph
// override list.
const paraEncodedLen = 5

// --- Span overrides --------------------------------------------------------

// SpanOverrides is a validated set of span-level style overrides. The Mask
// selects which fields are supplied; all other fields inherit from the
// nearest ancestor's resolved record. Build one with the Set* methods or
// decode one from the wire with DecodeSpanOverrides.
type SpanOverrides struct {
	Mask            int32
	Color           Color
	Decoration      TextDecoration
	DecorationColor Color
	DecorationStyle TextDecorationStyle
	Weight          FontWeight
	Style           FontStyle
	Family          string
	FontSize        float64
	LetterSpacing   float64
	WordSpacing     float64
	Height          float64
}

// SetColor supplies a text color override.
func (ov *SpanOverrides) SetColor(c Color) *SpanOverrides {
	ov.Color, ov.Mask = c, ov.Mask|SpanColorMask
	return ov
}

// SetDecoration supplies a decoration-lines override.
func (ov *SpanOverrides) SetDecoration(d TextDecoration) *SpanOverrides {
	ov.Decoration, ov.Mask = d, ov.Mask|SpanDecorationMask
	return ov
}

// SetDecorationColor supplies a decoration-color override.
func (ov *SpanOverrides) SetDecorationColor(c Color) *SpanOverrides {
	ov.DecorationColor, ov.Mask = c, ov.Mask|SpanDecorationColorMask
	return ov
}

// SetDecorationStyle supplies a decoration-line-style override.
func (ov *SpanOverrides) SetDecorationStyle(s TextDecorationStyle) *SpanOverrides {
	ov.DecorationStyle, ov.Mask = s, ov.Mask|SpanDecorationStyleMask
	return ov
}

// SetWeight supplies a font-weight override.
func (ov *SpanOverrides) SetWeight(w FontWeight) *SpanOverrides {
	ov.Weight, ov.Mask = w, ov.Mask|SpanFontWeightMask
	return ov
}

// SetStyle supplies a font-slant override.
func (ov *SpanOverrides) SetStyle(s FontStyle) *SpanOverrides {
	ov.Style, ov.Mask = s, ov.Mask|SpanFontStyleMask
	return ov
}

// SetFamily supplies a font-family override.
func (ov *SpanOverrides) SetFamily(family string) *SpanOverrides {
	ov.Family, ov.Mask = family, ov.Mask|SpanFontFamilyMask
	return ov
}

// SetFontSize supplies a font-size override.
func (ov *SpanOverrides) SetFontSize(size float64) *SpanOverrides {
	ov.FontSize, ov.Mask = size, ov.Mask|SpanFontSizeMask
	return ov
}

// SetLetterSpacing supplies a letter-spacing override.
func (ov *SpanOverrides) SetLetterSpacing(sp float64) *SpanOverrides {
	ov.LetterSpacing, ov.Mask = sp, ov.Mask|SpanLetterSpacingMask
	return ov
}

// SetWordSpacing supplies a word-spacing override.
func (ov *SpanOverrides) SetWordSpacing(sp float64) *SpanOverrides {
	ov.WordSpacing, ov.Mask = sp, ov.Mask|SpanWordSpacingMask
	return ov
}

// SetHeight supplies a line-height-multiplier override.
func (ov *SpanOverrides) SetHeight(h float64) *SpanOverrides {
	ov.Height, ov.Mask = h, ov.Mask|SpanHeightMask
	return ov
}

// DecodeSpanOverrides validates and decodes an encoded span-level override
// call. The encoded list must hold exactly 7 integers (mask plus 6
// positional fields); a mismatched count is a contract violation and
// returns an error with code core.EINVALID.
func DecodeSpanOverrides(encoded []int32, family string, fontSize, letterSpacing,
	wordSpacing, height float64) (SpanOverrides, error) {
	//
	if len(encoded) != spanEncodedLen {
		return SpanOverrides{}, core.Error(core.EINVALID,
			"span override list must hold %d elements, has %d", spanEncodedLen, len(encoded))
	}
	ov := SpanOverrides{
		Mask:            encoded[0],
		Color:           ColorFromARGB(encoded[SpanColorIndex]),
		Decoration:      TextDecoration(encoded[SpanDecorationIndex]),
		DecorationColor: ColorFromARGB(encoded[SpanDecorationColorIndex]),
		DecorationStyle: TextDecorationStyle(encoded[SpanDecorationStyleIndex]),
		Weight:          FontWeight(encoded[SpanFontWeightIndex]),
		Style:           FontStyle(encoded[SpanFontStyleIndex]),
		Family:          family,
		FontSize:        fontSize,
		LetterSpacing:   letterSpacing,
		WordSpacing:     wordSpacing,
		Height:          height,
	}
	return ov, nil
}

// ApplySpan cascades a set of overrides onto a parent's resolved record.
// Fields with their mask bit set are overridden (normalizing font size and
// line height); all other fields keep the parent's resolved value. Mask
// bits outside the defined field table are ignored.
func ApplySpan(parent StyleRecord, ov SpanOverrides) StyleRecord {
	resolved := parent
	mask := ov.Mask

	if mask&SpanColorMask != 0 {
		resolved.Color = ov.Color
	}
	if mask&SpanDecorationMask != 0 {
		resolved.Decoration = ov.Decoration
	}
	if mask&SpanDecorationColorMask != 0 {
		resolved.DecorationColor = ov.DecorationColor
	}
	if mask&SpanDecorationStyleMask != 0 {
		resolved.DecorationStyle = ov.DecorationStyle
	}
	if mask&SpanFontWeightMask != 0 {
		resolved.Font.Weight = ov.Weight
	}
	if mask&SpanFontStyleMask != 0 {
		resolved.Font.Style = ov.Style
	}
	if mask&SpanFontFamilyMask != 0 {
		resolved.Font.Family = ov.Family
	}
	if mask&SpanFontSizeMask != 0 {
		resolved.Font.SetSize(ov.FontSize)
	}
	if mask&SpanLetterSpacingMask != 0 {
		resolved.Font.LetterSpacing = ov.LetterSpacing
	}
	if mask&SpanWordSpacingMask != 0 {
		resolved.Font.WordSpacing = ov.WordSpacing
	}
	if mask&SpanHeightMask != 0 {
		// multiplier input, stored as hundredths of a percent for layout
		resolved.LineHeight = dimen.Pct(ov.Height * 100.0)
	}
	if mask&SpanDecorationMask != 0 {
		resolved.applyTextDecorations()
	}
	return resolved
}

// EncodeSpan is the inverse of the codec: it produces an override set which,
// applied to any parent, reproduces rec. All mask bits are set, except that
// an unset line height stays unencoded — the protocol has no wire value for
// "no line height", only an absent mask bit.
func EncodeSpan(rec StyleRecord) SpanOverrides {
	var ov SpanOverrides
	ov.SetColor(rec.Color)
	ov.SetDecoration(rec.Decoration)
	ov.SetDecorationColor(rec.DecorationColor)
	ov.SetDecorationStyle(rec.DecorationStyle)
	ov.SetWeight(rec.Font.Weight)
	ov.SetStyle(rec.Font.Style)
	ov.SetFamily(rec.Font.Family)
	ov.SetFontSize(rec.Font.SpecifiedSize)
	ov.SetLetterSpacing(rec.Font.LetterSpacing)
	ov.SetWordSpacing(rec.Font.WordSpacing)
	if !rec.LineHeight.IsUnset() {
		ov.SetHeight(rec.LineHeight.Val / 100.0)
	}
	return ov
}

// --- Paragraph overrides ---------------------------------------------------

// ParagraphOverrides is a validated set of root-level style overrides,
// the paragraph counterpart of SpanOverrides.
type ParagraphOverrides struct {
	Mask       int32
	Align      TextAlign
	Baseline   TextBaseline
	Weight     FontWeight
	Style      FontStyle
	Family     string
	FontSize   float64
	LineHeight float64
}

// SetAlign supplies a text-alignment override.
func (ov *ParagraphOverrides) SetAlign(a TextAlign) *ParagraphOverrides {
	ov.Align, ov.Mask = a, ov.Mask|ParaTextAlignMask
	return ov
}

// SetBaseline supplies a text-baseline override. The baseline is recorded
// but currently not acted upon by layout.
func (ov *ParagraphOverrides) SetBaseline(b TextBaseline) *ParagraphOverrides {
	ov.Baseline, ov.Mask = b, ov.Mask|ParaTextBaselineMask
	return ov
}

// SetWeight supplies a font-weight override.
func (ov *ParagraphOverrides) SetWeight(w FontWeight) *ParagraphOverrides {
	ov.Weight, ov.Mask = w, ov.Mask|ParaFontWeightMask
	return ov
}

// SetStyle supplies a font-slant override.
func (ov *ParagraphOverrides) SetStyle(s FontStyle) *ParagraphOverrides {
	ov.Style, ov.Mask = s, ov.Mask|ParaFontStyleMask
	return ov
}

// SetFamily supplies a font-family override.
func (ov *ParagraphOverrides) SetFamily(family string) *ParagraphOverrides {
	ov.Family, ov.Mask = family, ov.Mask|ParaFontFamilyMask
	return ov
}

// SetFontSize supplies a font-size override.
func (ov *ParagraphOverrides) SetFontSize(size float64) *ParagraphOverrides {
	ov.FontSize, ov.Mask = size, ov.Mask|ParaFontSizeMask
	return ov
}

// SetLineHeight supplies a line-height-multiplier override.
func (ov *ParagraphOverrides) SetLineHeight(h float64) *ParagraphOverrides {
	ov.LineHeight, ov.Mask = h, ov.Mask|ParaLineHeightMask
	return ov
}

// DecodeParagraphOverrides validates and decodes an encoded root-level
// override call. The encoded list must hold exactly 5 integers; a
// mismatched count returns an error with code core.EINVALID.
func DecodeParagraphOverrides(encoded []int32, family string, fontSize,
	lineHeight float64) (ParagraphOverrides, error) {
	//
	if len(encoded) != paraEncodedLen {
		return ParagraphOverrides{}, core.Error(core.EINVALID,
			"paragraph override list must hold %d elements, has %d", paraEncodedLen, len(encoded))
	}
	ov := ParagraphOverrides{
		Mask:       encoded[0],
		Align:      TextAlign(encoded[ParaTextAlignIndex]),
		Baseline:   TextBaseline(encoded[ParaTextBaselineIndex]),
		Weight:     FontWeight(encoded[ParaFontWeightIndex]),
		Style:      FontStyle(encoded[ParaFontStyleIndex]),
		Family:     family,
		FontSize:   fontSize,
		LineHeight: lineHeight,
	}
	return ov, nil
}

// ApplyParagraph cascades root-level overrides onto a paragraph style
// record, with the same masking rules as ApplySpan. A supplied baseline is
// stored on the record but has no layout effect yet.
func ApplyParagraph(parent ParagraphStyleRecord, ov ParagraphOverrides) ParagraphStyleRecord {
	resolved := parent
	mask := ov.Mask

	if mask&ParaTextAlignMask != 0 {
		resolved.Align = ov.Align
	}
	if mask&ParaTextBaselineMask != 0 {
		// recorded only; layout has nothing wired to baselines yet
		resolved.Baseline = ov.Baseline
	}
	if mask&ParaFontWeightMask != 0 {
		resolved.Font.Weight = ov.Weight
	}
	if mask&ParaFontStyleMask != 0 {
		resolved.Font.Style = ov.Style
	}
	if mask&ParaFontFamilyMask != 0 {
		resolved.Font.Family = ov.Family
	}
	if mask&ParaFontSizeMask != 0 {
		resolved.Font.SetSize(ov.FontSize)
	}
	if mask&ParaLineHeightMask != 0 {
		resolved.LineHeight = dimen.Pct(ov.LineHeight * 100.0)
	}
	return resolved
}
