package scene

import (
	"image"

	"github.com/ivlev/promoreel/internal/animation"
)

// logoBadge is the small brand logo that pops in at the bottom centre.
// A badge without a logo builds nothing.
type logoBadge struct {
	img    image.Image
	pop    *animation.Spring
	fadeIn *animation.Interpolator
}

func newLogoBadge(fps int, assets Assets) (*logoBadge, error) {
	pop, err := animation.NewSpring(fps, animation.Pop)
	if err != nil {
		return nil, err
	}
	fadeIn, err := animation.NewInterpolator([]float64{10, 30}, []float64{0, 1}, animation.ClampBoth)
	if err != nil {
		return nil, err
	}
	return &logoBadge{img: assets.Logo, pop: pop, fadeIn: fadeIn}, nil
}

func (b *logoBadge) build(f Frame) []Element {
	if b.img == nil {
		return nil
	}
	o := b.fadeIn.At(float64(f.Local))
	if o <= 0 {
		return nil
	}
	u := f.Unit()
	r := b.img.Bounds()
	h := 48 * u
	w := h * float64(r.Dx()) / float64(r.Dy())
	logo := Picture(float64(f.Width)/2-w/2, float64(f.Height)-40*u-h, w, h, b.img)
	return []Element{logo.Fade(o).With(Transform{Opacity: 1, Scale: 0.9 + 0.1*b.pop.At(f.Local)})}
}
