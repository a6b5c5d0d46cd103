package styles

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pillarpond/engine/core"
	"github.com/pillarpond/engine/core/dimen"
)

func TestApplySpanZeroMaskIsIdentity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pond.styles")
	defer teardown()
	//
	parent := StyleRecord{
		Color:      Color(0xFFABCDEF),
		Decoration: DecorationUnderline,
		Font: FontDescription{
			Family:        "Garamond",
			SpecifiedSize: 12,
			ComputedSize:  12,
			Weight:        WeightBold,
		},
		LineHeight: dimen.Pct(150),
	}
	resolved := ApplySpan(parent, SpanOverrides{})
	assert.Equal(t, parent, resolved)
}

func TestApplySpanIsIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pond.styles")
	defer teardown()
	//
	var ov SpanOverrides
	ov.SetColor(Color(0xFF00FF00)).SetWeight(Weight600).SetFontSize(18).SetHeight(1.4)
	parent := StyleRecord{Color: DefaultTextColor}
	once := ApplySpan(parent, ov)
	twice := ApplySpan(once, ov)
	assert.Equal(t, once, twice)
}

func TestApplySpanOverridesSelectedFieldsOnly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pond.styles")
	defer teardown()
	//
	parent := StyleRecord{
		Color: Color(0xFF111111),
		Font: FontDescription{
			Family:        "Baskerville",
			SpecifiedSize: 10,
			ComputedSize:  10,
			LetterSpacing: 0.5,
		},
	}
	var ov SpanOverrides
	ov.SetColor(Color(0xFF222222)).SetWordSpacing(2)
	resolved := ApplySpan(parent, ov)
	assert.Equal(t, Color(0xFF222222), resolved.Color)
	assert.InDelta(t, 2.0, resolved.Font.WordSpacing, 0.0001)
	// untouched
	assert.Equal(t, "Baskerville", resolved.Font.Family)
	assert.InDelta(t, 10.0, resolved.Font.ComputedSize, 0.0001)
	assert.InDelta(t, 0.5, resolved.Font.LetterSpacing, 0.0001)
}

func TestApplySpanUnknownMaskBitsIgnored(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pond.styles")
	defer teardown()
	//
	parent := StyleRecord{Color: DefaultTextColor}
	resolved := ApplySpan(parent, SpanOverrides{Mask: int32(1) << 30})
	assert.Equal(t, parent, resolved)
}

func TestApplySpanTinyFontSizeComputesToZero(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pond.styles")
	defer teardown()
	//
	var ov SpanOverrides
	ov.SetFontSize(1e-8)
	resolved := ApplySpan(StyleRecord{}, ov)
	assert.InDelta(t, 1e-8, resolved.Font.SpecifiedSize, 1e-12, "specified size keeps the raw input")
	assert.Equal(t, 0.0, resolved.Font.ComputedSize, "sizes below epsilon collapse the text")
}

func TestApplySpanHeightStoredAsPercent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pond.styles")
	defer teardown()
	//
	var ov SpanOverrides
	ov.SetHeight(1.5)
	resolved := ApplySpan(StyleRecord{}, ov)
	assert.Equal(t, dimen.Percent, resolved.LineHeight.Kind)
	assert.InDelta(t, 150.0, resolved.LineHeight.Val, 0.0001)
}

func TestApplySpanDerivesPaintedDecorations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pond.styles")
	defer teardown()
	//
	parent := StyleRecord{Color: Color(0xFF334455)}
	var ov SpanOverrides
	ov.SetDecoration(DecorationUnderline | DecorationLineThrough)
	ov.SetDecorationStyle(DecorationWavy)
	resolved := ApplySpan(parent, ov)
	require.Len(t, resolved.Painted, 2)
	assert.Equal(t, DecorationUnderline, resolved.Painted[0].Line)
	assert.Equal(t, DecorationLineThrough, resolved.Painted[1].Line)
	for _, painted := range resolved.Painted {
		assert.Equal(t, Color(0xFF334455), painted.Color, "decoration color falls back to text color")
		assert.Equal(t, DecorationWavy, painted.Style)
	}
}

func TestEncodeSpanRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pond.styles")
	defer teardown()
	//
	var ov SpanOverrides
	ov.SetColor(Color(0xFF998877)).SetDecoration(DecorationOverline).
		SetDecorationColor(Color(0xFF010203)).SetDecorationStyle(DecorationDotted).
		SetWeight(Weight300).SetStyle(StyleItalic).SetFamily("Futura").
		SetFontSize(16).SetLetterSpacing(1.25).SetWordSpacing(3).SetHeight(2)
	resolved := ApplySpan(StyleRecord{}, ov)
	reencoded := EncodeSpan(resolved)
	replayed := ApplySpan(StyleRecord{Color: Color(0xFF000000)}, reencoded)
	assert.Equal(t, resolved, replayed, "encode/apply must reproduce the record on any parent")
	// a record without a line height must round-trip to one, not to 0%
	plain := EncodeSpan(ApplySpan(StyleRecord{}, SpanOverrides{}))
	assert.Zero(t, plain.Mask&SpanHeightMask, "no height override for an unset line height")
	replayed = ApplySpan(StyleRecord{}, plain)
	assert.True(t, replayed.LineHeight.IsUnset())
}

func TestDecodeSpanOverridesLength(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pond.styles")
	defer teardown()
	//
	for _, n := range []int{0, 6, 8, 11} {
		_, err := DecodeSpanOverrides(make([]int32, n), "", 0, 0, 0, 0)
		require.Error(t, err)
		assert.Equal(t, core.EINVALID, core.Code(err))
	}
	_, err := DecodeSpanOverrides(make([]int32, 7), "", 0, 0, 0, 0)
	assert.NoError(t, err)
}

func TestDecodeSpanOverridesFields(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pond.styles")
	defer teardown()
	//
	encoded := []int32{
		SpanColorMask | SpanDecorationMask | SpanFontStyleMask,
		-1, // 0xFFFFFFFF as signed ARGB
		int32(DecorationUnderline),
		0, 0, 0,
		int32(StyleItalic),
	}
	ov, err := DecodeSpanOverrides(encoded, "Optima", 11, 0.5, 1, 1.2)
	require.NoError(t, err)
	assert.Equal(t, encoded[0], ov.Mask)
	assert.Equal(t, Color(0xFFFFFFFF), ov.Color)
	assert.Equal(t, DecorationUnderline, ov.Decoration)
	assert.Equal(t, StyleItalic, ov.Style)
	assert.Equal(t, "Optima", ov.Family)
	assert.InDelta(t, 11.0, ov.FontSize, 0.0001)
	assert.InDelta(t, 1.2, ov.Height, 0.0001)
}

func TestApplyParagraphOverrides(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pond.styles")
	defer teardown()
	//
	parent := ParagraphStyleRecord{
		Align: AlignLeft,
		Font:  FontDescription{Family: "Go Sans", SpecifiedSize: 14, ComputedSize: 14},
	}
	var ov ParagraphOverrides
	ov.SetAlign(AlignCenter).SetFontSize(24).SetLineHeight(1.25)
	resolved := ApplyParagraph(parent, ov)
	assert.Equal(t, AlignCenter, resolved.Align)
	assert.InDelta(t, 24.0, resolved.Font.ComputedSize, 0.0001)
	assert.Equal(t, dimen.Percent, resolved.LineHeight.Kind)
	assert.InDelta(t, 125.0, resolved.LineHeight.Val, 0.0001)
	assert.Equal(t, "Go Sans", resolved.Font.Family)
}

func TestApplyParagraphBaselineIsRecorded(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pond.styles")
	defer teardown()
	//
	var ov ParagraphOverrides
	ov.SetBaseline(BaselineIdeographic)
	resolved := ApplyParagraph(ParagraphStyleRecord{}, ov)
	assert.Equal(t, BaselineIdeographic, resolved.Baseline)
}

func TestDecodeParagraphOverridesLength(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pond.styles")
	defer teardown()
	//
	_, err := DecodeParagraphOverrides(make([]int32, 4), "", 0, 0)
	require.Error(t, err)
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = DecodeParagraphOverrides(make([]int32, 5), "", 0, 0)
	assert.NoError(t, err)
}
