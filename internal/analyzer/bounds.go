package analyzer

import (
	"image"
	"image/draw"
)

// AlphaDetector reports the bounding box of pixels that are not fully
// transparent as a single block. It suits logos exported with transparency.
type AlphaDetector struct {
	// MinAlpha is the 16-bit alpha above which a pixel counts as content
	MinAlpha uint32
}

func NewAlphaDetector() *AlphaDetector {
	return &AlphaDetector{MinAlpha: 0x0800}
}

func (d *AlphaDetector) Detect(img image.Image) ([]Block, error) {
	b := img.Bounds()
	var r image.Rectangle
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a > d.MinAlpha {
				r = r.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	if r.Empty() {
		return nil, nil
	}
	return []Block{{Rect: r, Confidence: 1}}, nil
}

// ContentBounds returns the union of all detected blocks grown by pad pixels
// and clipped to the image. ok is false when nothing was detected.
func ContentBounds(img image.Image, det Detector, pad int) (image.Rectangle, bool, error) {
	blocks, err := det.Detect(img)
	if err != nil {
		return image.Rectangle{}, false, err
	}
	var r image.Rectangle
	for _, b := range blocks {
		r = r.Union(b.Rect)
	}
	if r.Empty() {
		return image.Rectangle{}, false, nil
	}
	return r.Inset(-pad).Intersect(img.Bounds()), true, nil
}

// Trim crops img to its detected content. Images with an alpha channel use
// the alpha detector; opaque ones (PDF renders) use edge contrast. The input
// is returned unchanged when no content is found.
func Trim(img image.Image, pad int) (image.Image, error) {
	var det Detector = NewContrastDetector()
	if hasTransparency(img) {
		det = NewAlphaDetector()
	}

	r, ok, err := ContentBounds(img, det, pad)
	if err != nil || !ok || r == img.Bounds() {
		return img, err
	}

	if sub, ok := img.(interface {
		SubImage(image.Rectangle) image.Image
	}); ok {
		return sub.SubImage(r), nil
	}
	out := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(out, out.Bounds(), img, r.Min, draw.Src)
	return out, nil
}

// hasTransparency samples the image corners and centre for alpha
func hasTransparency(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return false
	}
	b := img.Bounds()
	if b.Empty() {
		return false
	}
	points := []image.Point{
		b.Min,
		{X: b.Max.X - 1, Y: b.Min.Y},
		{X: b.Min.X, Y: b.Max.Y - 1},
		{X: b.Max.X - 1, Y: b.Max.Y - 1},
	}
	for _, p := range points {
		if _, _, _, a := img.At(p.X, p.Y).RGBA(); a < 0xffff {
			return true
		}
	}
	return false
}
