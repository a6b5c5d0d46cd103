package styles

import (
	"fmt"
	"strings"

	"github.com/pillarpond/engine/core/dimen"
	"golang.org/x/text/unicode/bidi"
)

// Color is a 32-bit ARGB color value.
type Color uint32

// ColorFromARGB converts an encoded 32-bit integer into a Color. Values
// arrive from host environments as signed integers.
func ColorFromARGB(argb int32) Color {
	return Color(uint32(argb))
}

// Alpha returns the alpha channel of c.
func (c Color) Alpha() uint8 { return uint8(c >> 24) }

// Red returns the red channel of c.
func (c Color) Red() uint8 { return uint8(c >> 16) }

// Green returns the green channel of c.
func (c Color) Green() uint8 { return uint8(c >> 8) }

// Blue returns the blue channel of c.
func (c Color) Blue() uint8 { return uint8(c) }

func (c Color) String() string {
	return fmt.Sprintf("#%08x", uint32(c))
}

// --- Enumerations ----------------------------------------------------------

// TextDecoration selects decoration lines to draw. Lines are bit flags and
// may be combined.
type TextDecoration uint8

// Decoration lines.
const (
	DecorationNone        TextDecoration = 0
	DecorationUnderline   TextDecoration = 1 << 0
	DecorationOverline    TextDecoration = 1 << 1
	DecorationLineThrough TextDecoration = 1 << 2
)

// Has returns true if d includes the given decoration line.
func (d TextDecoration) Has(line TextDecoration) bool {
	return d&line != 0
}

func (d TextDecoration) String() string {
	if d == DecorationNone {
		return "none"
	}
	var s []string
	if d.Has(DecorationUnderline) {
		s = append(s, "underline")
	}
	if d.Has(DecorationOverline) {
		s = append(s, "overline")
	}
	if d.Has(DecorationLineThrough) {
		s = append(s, "line-through")
	}
	return strings.Join(s, " ")
}

// TextDecorationStyle controls the appearance of decoration lines.
type TextDecorationStyle uint8

// Decoration line styles.
const (
	DecorationSolid TextDecorationStyle = iota
	DecorationDouble
	DecorationDotted
	DecorationDashed
	DecorationWavy
)

// FontStyle is the slant of a font.
type FontStyle uint8

// Font slants.
const (
	StyleNormal FontStyle = iota
	StyleItalic
)

// FontWeight is the ordinal weight of a font. Ordinals 0 through 8 map to
// the CSS weights 100 through 900.
type FontWeight uint8

// Font weights.
const (
	Weight100 FontWeight = iota
	Weight200
	Weight300
	Weight400
	Weight500
	Weight600
	Weight700
	Weight800
	Weight900

	WeightNormal = Weight400
	WeightBold   = Weight700
)

// CSS returns the CSS numeric weight for w.
func (w FontWeight) CSS() int {
	return (int(w) + 1) * 100
}

// TextAlign is the alignment of paragraph text.
type TextAlign uint8

// Paragraph alignments.
const (
	AlignLeft TextAlign = iota
	AlignRight
	AlignCenter
	AlignJustify
)

// TextBaseline selects the baseline to align text runs on. The override
// protocol accepts it, but it currently has no effect on layout; it is
// carried through so callers can already encode it.
type TextBaseline uint8

// Baselines.
const (
	BaselineAlphabetic TextBaseline = iota
	BaselineIdeographic
)

// Orientation is the orientation glyphs are set in.
type Orientation uint8

// Orientations.
const (
	Horizontal Orientation = iota
	Vertical
)

// UserModify is the content-modification flag of a document.
type UserModify uint8

// Content-modification flags.
const (
	ReadOnly UserModify = iota
	ReadWrite
)

// --- Font description ------------------------------------------------------

// FontDescription collects the font-related attributes of a style.
//
// Sizes have a two-value representation: SpecifiedSize records the raw
// input, ComputedSize the value layout will use. A specified size below
// machine epsilon computes to 0, collapsing the text.
type FontDescription struct {
	Family        string
	SpecifiedSize float64
	ComputedSize  float64
	LetterSpacing float64
	WordSpacing   float64
	Weight        FontWeight
	Style         FontStyle
}

// sizeEpsilon is the machine epsilon of single-precision floats, the
// threshold below which specified font sizes compute to zero.
const sizeEpsilon = 1.1920928955078125e-07

// ComputedSizeFromSpecified normalizes a specified font size into the size
// layout will use.
func ComputedSizeFromSpecified(specified float64) float64 {
	if specified < sizeEpsilon {
		return 0
	}
	return specified
}

// SetSize sets the specified size and derives the computed size.
func (fd *FontDescription) SetSize(size float64) {
	fd.SpecifiedSize = size
	fd.ComputedSize = ComputedSizeFromSpecified(size)
}

// --- Style records ---------------------------------------------------------

// PaintedDecoration is one decoration line to paint, with the color and
// line style in effect where it was applied.
type PaintedDecoration struct {
	Line  TextDecoration
	Color Color
	Style TextDecorationStyle
}

// StyleRecord is an immutable record of resolved span-level style
// attributes. Records are value types; cascading copies the parent record
// and overrides supplied fields.
type StyleRecord struct {
	Color           Color
	Decoration      TextDecoration
	DecorationColor Color
	DecorationStyle TextDecorationStyle
	Font            FontDescription
	LineHeight      dimen.Length
	Painted         []PaintedDecoration // derived, do not mutate
}

// applyTextDecorations re-derives the decorations to paint from the
// resolved decoration attributes. Deterministic over the record's fields.
func (sr *StyleRecord) applyTextDecorations() {
	sr.Painted = nil
	color := sr.DecorationColor
	if color == 0 {
		color = sr.Color
	}
	for _, line := range []TextDecoration{DecorationUnderline, DecorationOverline, DecorationLineThrough} {
		if sr.Decoration.Has(line) {
			sr.Painted = append(sr.Painted, PaintedDecoration{
				Line:  line,
				Color: color,
				Style: sr.DecorationStyle,
			})
		}
	}
}

// ParagraphStyleRecord is the resolved root-level style of a paragraph,
// carrying document-wide attributes on top of the font description.
type ParagraphStyleRecord struct {
	Align       TextAlign
	Baseline    TextBaseline // accepted but not acted upon by layout
	Font        FontDescription
	LineHeight  dimen.Length
	Direction   bidi.Direction
	Orientation Orientation
	UserModify  UserModify
}
