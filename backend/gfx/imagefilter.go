package gfx

import (
	"image"
)

// ImageFilter is an opaque filter description a backend applies when
// compositing a layer. Filters are immutable; each constructor fully
// initializes the filter it returns.
type ImageFilter struct {
	kind    filterKind
	image   image.Image
	picture *Picture
	sigmaX  float64
	sigmaY  float64
}

type filterKind uint8

const (
	filterImage filterKind = iota
	filterPicture
	filterBlur
)

// FilterFromImage creates a filter sourcing its pixels from an image.
func FilterFromImage(img image.Image) *ImageFilter {
	return &ImageFilter{kind: filterImage, image: img}
}

// FilterFromPicture creates a filter that rasterizes a recorded picture.
func FilterFromPicture(pic *Picture) *ImageFilter {
	return &ImageFilter{kind: filterPicture, picture: pic}
}

// FilterFromBlur creates a Gaussian blur filter with independent
// horizontal and vertical standard deviations.
func FilterFromBlur(sigmaX, sigmaY float64) *ImageFilter {
	return &ImageFilter{kind: filterBlur, sigmaX: sigmaX, sigmaY: sigmaY}
}

// IsBlur returns true for blur filters and reports their sigmas.
func (f *ImageFilter) IsBlur() (sigmaX, sigmaY float64, ok bool) {
	if f.kind != filterBlur {
		return 0, 0, false
	}
	return f.sigmaX, f.sigmaY, true
}

// SourceImage returns the filter's source image, or nil.
func (f *ImageFilter) SourceImage() image.Image {
	return f.image
}

// SourcePicture returns the filter's source picture, or nil.
func (f *ImageFilter) SourcePicture() *Picture {
	return f.picture
}
