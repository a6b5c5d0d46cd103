/*
Package paragraph builds immutable trees of styled text.

A Builder accumulates nested, partially-overridden text styles and text
runs: PushStyle opens a styled span as a child of the current insertion
point, AddText appends a literal text leaf, Pop returns the insertion
point to the enclosing span, and Build finalizes the tree into an
immutable Paragraph ready for layout.

Style inheritance is transitive through resolved records: a span's record
is computed from its parent's resolved record at push time, never from
raw override masks.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 Pillarpond Engine contributors
*/
package paragraph

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pond.para'.
func tracer() tracing.Trace {
	return tracing.Select("pond.para")
}
