package scene

import (
	"fmt"
	"image"
	"math"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/ivlev/promoreel/internal/animation"
	"github.com/ivlev/promoreel/internal/config"
)

// ctaSettleFrame is where the call-to-action stops animating and holds
const ctaSettleFrame = 75

// ctaScene is the closing call-to-action with a QR code for the brand URL.
type ctaScene struct {
	colors   config.Colors
	title    string
	subtitle string
	url      string
	logo     image.Image
	qr       image.Image
	titleIn  animation.Motion
	subIn    animation.Motion
	urlIn    animation.Motion
	logoIn   animation.Motion
	buttonIn animation.Motion
}

func newCTA(seg config.Segment, comp *config.Composition, colors config.Colors, assets Assets) (Scene, error) {
	fps := comp.FPS
	s := &ctaScene{
		colors:   colors,
		title:    pick(seg.Title, comp.Brand.Name),
		subtitle: pick(seg.Subtitle, comp.Brand.Tagline),
		url:      comp.Brand.URL,
		logo:     assets.Logo,
	}

	motions := []struct {
		dst   *animation.Motion
		cfg   animation.SpringConfig
		delay int
	}{
		{&s.titleIn, animation.Smooth, 0},
		{&s.subIn, animation.Smooth, 15},
		{&s.urlIn, animation.Smooth, 30},
		{&s.logoIn, animation.Pop, 45},
		{&s.buttonIn, animation.Soft, 30},
	}
	for _, m := range motions {
		var err error
		if *m.dst, err = animation.NewMotion(fps, m.cfg, m.delay); err != nil {
			return nil, err
		}
	}

	if s.url != "" {
		q, err := qrcode.New(s.url, qrcode.Medium)
		if err != nil {
			return nil, fmt.Errorf("qr code for %q: %w", s.url, err)
		}
		q.DisableBorder = true
		s.qr = q.Image(512)
	}
	return s, nil
}

func (s *ctaScene) Build(f Frame) []Element {
	u := f.Unit()
	w, h := float64(f.Width), float64(f.Height)
	cx := w * 0.4
	local := min(f.Local, ctaSettleFrame)

	var els []Element
	if p := s.titleIn.At(local); p > 0 {
		els = append(els, Label(cx, h*0.32, 96*u, s.title, s.colors.Text, FontSansBold, AlignCenter).
			Fade(animation.Unit(p)).Move(0, animation.Mix(40*u, 0, p)))
	}
	if p := s.subIn.At(local); p > 0 {
		els = append(els, Label(cx, h*0.32+100*u, 40*u, s.subtitle, s.colors.Subtle, FontSans, AlignCenter).
			Fade(animation.Unit(p)).Move(0, animation.Mix(30*u, 0, p)))
	}

	if p := s.buttonIn.At(local); p > 0 {
		bw, bh := 360*u, 92*u
		bx, by := cx-bw/2, h*0.32+170*u
		// The button keeps breathing after everything else has settled
		breath := 1.0
		if f.Local > ctaSettleFrame {
			breath = 1 + 0.03*math.Sin(float64(f.Local-ctaSettleFrame)*2*math.Pi/float64(pulsePeriod))
		}
		button := []Element{
			Rect(bx, by, bw, bh, bh/2, s.colors.Accent),
			Label(cx, by+bh/2, 34*u, "Get started", s.colors.Primary, FontSansBold, AlignCenter),
		}
		t := animation.Unit(p)
		els = append(els, Group(Transform{Opacity: t, Scale: animation.Mix(0.8, 1, p) * breath}, cx, by+bh/2, button...)...)
	}

	if p := s.urlIn.At(local); p > 0 && s.url != "" {
		els = append(els, Label(cx, h*0.32+320*u, 30*u, s.url, s.colors.Accent, FontMono, AlignCenter).
			Fade(animation.Unit(p)).Move(0, animation.Mix(20*u, 0, p)))
	}

	if p := s.logoIn.At(local); p > 0 {
		t := animation.Unit(p)
		if s.qr != nil {
			size := 300 * u
			qx, qy := w*0.72, h*0.5-size/2
			pad := 24 * u
			qr := []Element{
				Rect(qx-pad, qy-pad, size+2*pad, size+2*pad, 24*u, s.colors.Text),
				Picture(qx, qy, size, size, s.qr),
				Label(qx+size/2, qy+size+pad+36*u, 24*u, "Scan to try it", s.colors.Subtle, FontSans, AlignCenter),
			}
			els = append(els, Group(Transform{Opacity: t, Scale: 0.9 + 0.1*p}, qx+size/2, qy+size/2, qr...)...)
		}
		if s.logo != nil {
			b := s.logo.Bounds()
			lh := 60 * u
			lw := lh * float64(b.Dx()) / float64(b.Dy())
			els = append(els, Picture(cx-lw/2, h*0.16-lh/2, lw, lh, s.logo).
				Fade(t).With(Transform{Opacity: 1, Scale: 0.9 + 0.1*p}))
		}
	}
	return els
}
