// Package analyzer finds where the visible content of a raster asset is, so
// that logos rendered from full PDF pages can be cropped to their artwork.
package analyzer

import "image"

// Block is a region that holds artwork, in source image coordinates
type Block struct {
	Rect image.Rectangle
	// Confidence is 0..1; edge-based blocks are less certain than alpha ones
	Confidence float64
}

// Detector locates artwork in an image. An empty result means the image
// looks blank to the detector.
type Detector interface {
	Detect(img image.Image) ([]Block, error)
}
