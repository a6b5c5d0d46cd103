/*
Package gfx holds the graphics-side value types the engine hands to a
concrete rendering backend: recorded pictures and composable image
filters. The package records what to render; rasterization is the
backend's business.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 Pillarpond Engine contributors
*/
package gfx

import (
	"image"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pond.gfx'.
func tracer() tracing.Trace {
	return tracing.Select("pond.gfx")
}

// Picture is a named, immutable recording of draw operations, produced by
// a Recorder and consumed by a backend (or by FilterFromPicture).
type Picture struct {
	name string
	ops  []drawOp
}

// Name returns the picture's name, for tracing and debugging.
func (pic *Picture) Name() string {
	return pic.name
}

// OpCount returns the number of recorded operations.
func (pic *Picture) OpCount() int {
	return len(pic.ops)
}

type drawOp struct {
	kind  opKind
	image image.Image
	rect  image.Rectangle
}

type opKind uint8

const (
	opImage opKind = iota
	opRect
)

// Recorder records draw operations into a Picture. The zero Recorder is
// ready to use.
type Recorder struct {
	name string
	ops  []drawOp
}

// NewRecorder creates a Recorder for a named picture.
func NewRecorder(name string) *Recorder {
	return &Recorder{name: name}
}

// DrawImage records drawing img with its top-left corner at the given
// point.
func (rec *Recorder) DrawImage(img image.Image, at image.Point) {
	rec.ops = append(rec.ops, drawOp{
		kind:  opImage,
		image: img,
		rect:  img.Bounds().Add(at.Sub(img.Bounds().Min)),
	})
}

// FillRect records filling a rectangle.
func (rec *Recorder) FillRect(r image.Rectangle) {
	rec.ops = append(rec.ops, drawOp{kind: opRect, rect: r})
}

// EndRecording finalizes the recording into an immutable Picture. The
// recorder must not be used afterwards.
func (rec *Recorder) EndRecording() *Picture {
	pic := &Picture{name: rec.name, ops: rec.ops}
	rec.ops = nil
	tracer().Debugf("picture %q recorded, %d ops", pic.name, pic.OpCount())
	return pic
}
