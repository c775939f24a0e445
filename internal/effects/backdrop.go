package effects

import (
	"fmt"
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/ivlev/promoreel/internal/animation"
	"github.com/ivlev/promoreel/internal/config"
)

// Glow geometry at 1080p; scaled with the canvas height
const (
	glowRadiusX = 1200
	glowRadiusY = 600
)

// Backdrop fills the frame with the brand background and a soft elliptical
// glow that sinks from the centre towards the bottom edge.
type Backdrop struct {
	bounds     image.Rectangle
	background *image.Uniform
	glow       *image.Uniform
	mask       *image.Alpha
	drift      *animation.Interpolator
}

// NewBackdrop precomputes the glow mask for a width x height canvas.
func NewBackdrop(width, height int, colors config.Colors) (*Backdrop, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("backdrop: invalid canvas %dx%d", width, height)
	}
	// Offset of the glow centre in percent of the height
	drift, err := animation.NewInterpolator([]float64{0, 120}, []float64{0, 100}, animation.InterpolateOptions{
		Easing:           animation.EaseOutCubic,
		ExtrapolateRight: animation.Clamp,
	})
	if err != nil {
		return nil, fmt.Errorf("backdrop drift: %w", err)
	}

	bg := colors.Background
	bg.A = 255
	glow := colors.Glow
	strength := float64(glow.A) / 255
	glow.A = 255

	u := float64(height) / 1080
	return &Backdrop{
		bounds:     image.Rect(0, 0, width, height),
		background: image.NewUniform(bg),
		glow:       image.NewUniform(glow),
		mask:       ellipseMask(glowRadiusX*u, glowRadiusY*u, strength),
		drift:      drift,
	}, nil
}

// ellipseMask returns a linear radial falloff from strength at the centre to
// zero at the ellipse edge.
func ellipseMask(rx, ry, strength float64) *image.Alpha {
	w, h := int(math.Ceil(2*rx)), int(math.Ceil(2*ry))
	m := image.NewAlpha(image.Rect(0, 0, w, h))
	if rx <= 0 || ry <= 0 {
		return m
	}
	for y := 0; y < h; y++ {
		dy := (float64(y) + 0.5 - ry) / ry
		for x := 0; x < w; x++ {
			dx := (float64(x) + 0.5 - rx) / rx
			d := math.Sqrt(dx*dx + dy*dy)
			if d >= 1 {
				continue
			}
			m.Pix[y*m.Stride+x] = uint8(math.Round(255 * strength * (1 - d)))
		}
	}
	return m
}

// GlowCenter returns the glow centre in canvas pixels at the frame
func (b *Backdrop) GlowCenter(frame int) (float64, float64) {
	w, h := float64(b.bounds.Dx()), float64(b.bounds.Dy())
	return w / 2, h * (50 + b.drift.At(float64(frame))) / 100
}

func (b *Backdrop) Apply(dst *image.RGBA, frame int) {
	xdraw.Draw(dst, b.bounds, b.background, image.Point{}, xdraw.Src)

	cx, cy := b.GlowCenter(frame)
	mw, mh := b.mask.Rect.Dx(), b.mask.Rect.Dy()
	at := image.Pt(int(math.Round(cx))-mw/2, int(math.Round(cy))-mh/2)
	r := image.Rectangle{Min: at, Max: at.Add(image.Pt(mw, mh))}
	clipped := r.Intersect(b.bounds)
	if clipped.Empty() {
		return
	}
	xdraw.DrawMask(dst, clipped, b.glow, image.Point{}, b.mask, clipped.Min.Sub(at), xdraw.Over)
}

// FadeIn blends the whole frame from the background colour over the first
// frames of the video.
type FadeIn struct {
	color   color.NRGBA
	opacity *animation.Interpolator
}

// NewFadeIn returns a fade that completes after frames frames.
func NewFadeIn(bg color.NRGBA, frames int) (*FadeIn, error) {
	opacity, err := animation.NewInterpolator([]float64{0, float64(frames)}, []float64{1, 0}, animation.ClampBoth)
	if err != nil {
		return nil, fmt.Errorf("fade in: %w", err)
	}
	bg.A = 255
	return &FadeIn{color: bg, opacity: opacity}, nil
}

func (f *FadeIn) Apply(dst *image.RGBA, frame int) {
	a := f.opacity.At(float64(frame))
	if a <= 0 {
		return
	}
	c := f.color
	c.A = uint8(math.Round(255 * a))
	xdraw.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{}, xdraw.Over)
}
