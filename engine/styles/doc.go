/*
Package styles implements resolved text styles and the sparse override
codec used to cascade them.

A style record carries fully determined attribute values, obtained by
copying the nearest ancestor's resolved record and overriding exactly the
fields a caller supplied. Which fields are supplied is communicated as a
bitmask, with one bit per attribute; this keeps the call boundary to host
environments a compact fixed-size numeric list plus at most one string.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 Pillarpond Engine contributors
*/
package styles

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pond.styles'.
func tracer() tracing.Trace {
	return tracing.Select("pond.styles")
}
