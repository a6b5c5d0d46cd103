/*
Package font is for typeface and font handling.

A "scalable font" is a variant of a typeface with a certain weight and
slant, e.g. "Helvetica regular". A "typecase" is a scaled font, i.e. a
font prepared at a certain size, e.g. "Helvetica regular 11pt". The name
is reminiscent of the wooden boxes of typesetters in the era of metal
type.

Please note that Go (Golang) does use the terms "font" and "face"
differently–actually more or less in an opposite manner.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 Pillarpond Engine contributors
*/
package font

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'pond.font'.
func tracer() tracing.Trace {
	return tracing.Select("pond.font")
}
