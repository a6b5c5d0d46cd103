/*
Package css translates CSS declarations into style overrides.

We use this library for CSS parsing:

	github.com/aymerick/douceur

Only the inline text properties the style records know about are
translated (color, text-decoration and friends, the font properties,
spacing and line-height); declarations outside that set are skipped with
a trace note. The package performs no cascading itself: it produces
override sets, and cascading stays with the style records.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 Pillarpond Engine contributors
*/
package css

import (
	"strconv"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/schuko/tracing"

	"github.com/pillarpond/engine/core"
	"github.com/pillarpond/engine/core/dimen"
	"github.com/pillarpond/engine/engine/styles"
)

// tracer traces with key 'pond.styles'.
func tracer() tracing.Trace {
	return tracing.Select("pond.styles")
}

// ParseInline parses the value of an inline style attribute into a span
// override set. Unknown properties and unparsable values are skipped.
// A syntactically broken declaration list fails with core.EINVALID.
func ParseInline(style string) (styles.SpanOverrides, error) {
	// the parser is strict about semicolons and drops an unterminated
	// final declaration; HTML inline styles routinely omit the last one
	if !strings.HasSuffix(strings.TrimSpace(style), ";") {
		style += ";"
	}
	decls, err := parser.ParseDeclarations(style)
	if err != nil {
		return styles.SpanOverrides{}, core.WrapError(err, core.EINVALID,
			"cannot parse style declarations")
	}
	return Overrides(decls), nil
}

// Overrides folds parsed declarations into a span override set, later
// declarations winning over earlier ones.
func Overrides(decls []*css.Declaration) styles.SpanOverrides {
	var ov styles.SpanOverrides
	for _, d := range decls {
		applyDeclaration(&ov, d)
	}
	return ov
}

func applyDeclaration(ov *styles.SpanOverrides, d *css.Declaration) {
	value := strings.TrimSpace(d.Value)
	switch strings.ToLower(d.Property) {
	case "color":
		if c, ok := parseColor(value); ok {
			ov.SetColor(c)
		}
	case "text-decoration", "text-decoration-line":
		if deco, ok := parseDecoration(value); ok {
			ov.SetDecoration(deco)
		}
	case "text-decoration-color":
		if c, ok := parseColor(value); ok {
			ov.SetDecorationColor(c)
		}
	case "text-decoration-style":
		if s, ok := parseDecorationStyle(value); ok {
			ov.SetDecorationStyle(s)
		}
	case "font-weight":
		if w, ok := parseWeight(value); ok {
			ov.SetWeight(w)
		}
	case "font-style":
		switch strings.ToLower(value) {
		case "italic", "oblique":
			ov.SetStyle(styles.StyleItalic)
		case "normal":
			ov.SetStyle(styles.StyleNormal)
		}
	case "font-family":
		if family := parseFamily(value); family != "" {
			ov.SetFamily(family)
		}
	case "font-size":
		if size, ok := parseSize(value); ok {
			ov.SetFontSize(size)
		}
	case "letter-spacing":
		if sp, ok := parseSize(value); ok {
			ov.SetLetterSpacing(sp)
		}
	case "word-spacing":
		if sp, ok := parseSize(value); ok {
			ov.SetWordSpacing(sp)
		}
	case "line-height":
		if h, ok := parseLineHeight(value); ok {
			ov.SetHeight(h)
		}
	default:
		tracer().Debugf("skipping CSS property %q", d.Property)
	}
}

var namedColors = map[string]styles.Color{
	"black":   0xFF000000,
	"white":   0xFFFFFFFF,
	"red":     0xFFFF0000,
	"green":   0xFF008000,
	"blue":    0xFF0000FF,
	"yellow":  0xFFFFFF00,
	"gray":    0xFF808080,
	"grey":    0xFF808080,
	"silver":  0xFFC0C0C0,
	"maroon":  0xFF800000,
	"olive":   0xFF808000,
	"lime":    0xFF00FF00,
	"aqua":    0xFF00FFFF,
	"teal":    0xFF008080,
	"navy":    0xFF000080,
	"fuchsia": 0xFFFF00FF,
	"purple":  0xFF800080,
	"orange":  0xFFFFA500,
}

func parseColor(value string) (styles.Color, bool) {
	v := strings.ToLower(value)
	if c, ok := namedColors[v]; ok {
		return c, true
	}
	if !strings.HasPrefix(v, "#") {
		return 0, false
	}
	hex := v[1:]
	switch len(hex) {
	case 3: // #rgb
		var expanded strings.Builder
		for _, r := range hex {
			expanded.WriteRune(r)
			expanded.WriteRune(r)
		}
		hex = expanded.String()
		fallthrough
	case 6: // #rrggbb, opaque
		n, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, false
		}
		return styles.Color(0xFF000000 | uint32(n)), true
	case 8: // #aarrggbb
		n, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, false
		}
		return styles.Color(uint32(n)), true
	}
	return 0, false
}

func parseDecoration(value string) (styles.TextDecoration, bool) {
	deco := styles.DecorationNone
	for _, word := range strings.Fields(strings.ToLower(value)) {
		switch word {
		case "none":
			return styles.DecorationNone, true
		case "underline":
			deco |= styles.DecorationUnderline
		case "overline":
			deco |= styles.DecorationOverline
		case "line-through":
			deco |= styles.DecorationLineThrough
		default:
			return 0, false
		}
	}
	return deco, deco != styles.DecorationNone
}

func parseDecorationStyle(value string) (styles.TextDecorationStyle, bool) {
	switch strings.ToLower(value) {
	case "solid":
		return styles.DecorationSolid, true
	case "double":
		return styles.DecorationDouble, true
	case "dotted":
		return styles.DecorationDotted, true
	case "dashed":
		return styles.DecorationDashed, true
	case "wavy":
		return styles.DecorationWavy, true
	}
	return 0, false
}

func parseWeight(value string) (styles.FontWeight, bool) {
	switch strings.ToLower(value) {
	case "normal":
		return styles.WeightNormal, true
	case "bold":
		return styles.WeightBold, true
	case "lighter":
		return styles.Weight300, true
	case "bolder":
		return styles.Weight800, true
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 100 || n > 900 || n%100 != 0 {
		return 0, false
	}
	return styles.FontWeight(n/100 - 1), true
}

// parseFamily keeps the first family of a family list, unquoted.
func parseFamily(value string) string {
	family := value
	if i := strings.IndexByte(family, ','); i >= 0 {
		family = family[:i]
	}
	family = strings.TrimSpace(family)
	family = strings.Trim(family, `"'`)
	return family
}

// parseSize parses a CSS length into device independent units. Unitless
// numbers are taken as pixels; absolute units (px, pt, mm, cm, in) go
// through the dimension parser. Relative units are not accepted.
func parseSize(value string) (float64, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return 0, false
	}
	if c := v[len(v)-1]; c >= 'a' && c <= 'z' {
		d, ispcnt, err := dimen.ParseDimen(v)
		if err != nil || ispcnt {
			return 0, false
		}
		return d.Points(), true
	}
	size, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return size, true
}

// parseLineHeight parses a line-height value into a multiplier. Accepts a
// unitless number or a percentage.
func parseLineHeight(value string) (float64, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "normal" {
		return 0, false // inherit, no override
	}
	if strings.HasSuffix(v, "%") {
		pct, err := strconv.ParseFloat(strings.TrimSuffix(v, "%"), 64)
		if err != nil {
			return 0, false
		}
		return pct / 100.0, true
	}
	h, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return h, true
}
