package dimen

import "fmt"

// LengthKind discriminates the interpretation of a Length value.
type LengthKind int

// Kinds of style lengths.
const (
	Unset    LengthKind = iota // no value given, inherit
	Absolute                   // value is a Dimen in scaled points
	Percent                    // value is a percentage of a reference length
)

// Length is a style length, either absolute or relative to a reference
// length of the consuming layout stage. Line heights are carried as
// percentages: a multiplier input of x is stored as x*100 percent, which
// is the wire format the layout engine expects.
type Length struct {
	Val  float64
	Kind LengthKind
}

// Pct returns a percentage length.
func Pct(v float64) Length {
	return Length{Val: v, Kind: Percent}
}

// IsUnset returns true if l carries no value.
func (l Length) IsUnset() bool {
	return l.Kind == Unset
}

// Resolve resolves l against a reference length. Percentages scale the
// reference, absolute lengths ignore it, unset lengths resolve to the
// reference unchanged.
func (l Length) Resolve(ref Dimen) Dimen {
	switch l.Kind {
	case Absolute:
		return Dimen(l.Val)
	case Percent:
		return Dimen(float64(ref) * l.Val / 100.0)
	}
	return ref
}

func (l Length) String() string {
	switch l.Kind {
	case Absolute:
		return Dimen(l.Val).String()
	case Percent:
		return fmt.Sprintf("%.2f%%", l.Val)
	}
	return "<unset>"
}
