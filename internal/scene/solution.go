package scene

import (
	"image"
	"math"

	"github.com/ivlev/promoreel/internal/animation"
	"github.com/ivlev/promoreel/internal/config"
)

const solutionParticles = 12

// solutionScene reveals the brand over drifting orbs and a slow rotating
// shine, then lays out the value proposition cards.
type solutionScene struct {
	colors   config.Colors
	name     string
	subtitle string
	title    string
	desc     string
	logo     image.Image

	cards *CardBuilder
	props []Card

	logoIn    animation.Motion
	subIn     animation.Motion
	contentIn animation.Motion
	orbs      [3]animation.Motion
	particle  *animation.Spring
	shine     *animation.Interpolator
	pulse     *animation.Interpolator
}

func newSolution(seg config.Segment, comp *config.Composition, colors config.Colors, assets Assets) (Scene, error) {
	fps := comp.FPS
	s := &solutionScene{
		colors:   colors,
		name:     comp.Brand.Name,
		subtitle: pick(seg.Subtitle, comp.Brand.Tagline),
		title:    pick(seg.Title, comp.Brand.Tagline),
		desc:     comp.Brand.Description,
		logo:     assets.Logo,
		props: []Card{
			{Title: "Data accuracy", Value: "99%", Icon: IconUsers},
			{Title: "Privacy compliance", Value: "GDPR", Icon: IconCheck},
			{Title: "Lighter pages", Value: "Faster", Icon: IconBolt},
			{Title: "Destinations", Value: "200+", Icon: IconPlug},
		},
	}

	var err error
	if s.cards, err = NewCardBuilder(fps, colors, animation.Smooth, animation.Drift); err != nil {
		return nil, err
	}
	motions := []struct {
		dst   *animation.Motion
		cfg   animation.SpringConfig
		delay int
	}{
		{&s.logoIn, animation.SpringConfig{Damping: 120, Stiffness: 200}, 10},
		{&s.subIn, animation.Soft, 30},
		{&s.contentIn, animation.SpringConfig{Damping: 180, Stiffness: 150}, 60},
		{&s.orbs[0], animation.Drift, 0},
		{&s.orbs[1], animation.SpringConfig{Damping: 200, Stiffness: 100}, 40},
		{&s.orbs[2], animation.SpringConfig{Damping: 220, Stiffness: 90}, 80},
	}
	for _, m := range motions {
		if *m.dst, err = animation.NewMotion(fps, m.cfg, m.delay); err != nil {
			return nil, err
		}
	}
	if s.particle, err = animation.NewSpring(fps, animation.SpringConfig{Damping: 250, Stiffness: 100}); err != nil {
		return nil, err
	}
	// One full turn every 240 frames, continuing past the end of the range
	if s.shine, err = animation.NewInterpolator([]float64{0, 240}, []float64{0, 360}, animation.InterpolateOptions{}); err != nil {
		return nil, err
	}
	if s.pulse, err = animation.NewInterpolator([]float64{-1, 1}, []float64{0.8, 1.2}, animation.InterpolateOptions{}); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *solutionScene) Build(f Frame) []Element {
	u := f.Unit()
	w, h := float64(f.Width), float64(f.Height)
	cx, cy := w/2, h/2

	els := s.background(f, cx, cy, u)

	if p := s.logoIn.At(f.Local); p > 0 {
		var mark Element
		if s.logo != nil {
			b := s.logo.Bounds()
			lh := 90 * u
			lw := lh * float64(b.Dx()) / float64(b.Dy())
			mark = Picture(cx-lw/2, 190*u-lh/2, lw, lh, s.logo)
		} else {
			mark = Label(cx, 190*u, 88*u, s.name, s.colors.Text, FontSansBold, AlignCenter)
		}
		els = append(els, mark.Fade(animation.Unit(p)).
			With(Transform{Opacity: 1, Scale: animation.Mix(0.7, 1, p), TY: animation.Mix(30*u, 0, p)}))
	}
	if p := s.subIn.At(f.Local); p > 0 && s.subtitle != "" {
		els = append(els, Label(cx, 275*u, 30*u, s.subtitle, s.colors.Subtle, FontSans, AlignCenter).
			Fade(animation.Unit(p)).Move(0, animation.Mix(20*u, 0, p)))
	}

	if p := s.contentIn.At(f.Local); p > 0 {
		px, py := 200*u, 340*u
		pw, ph := w-400*u, 580*u
		panel := []Element{
			Rect(px, py, pw, ph, 28*u, s.colors.Card),
			Label(cx, py+70*u, 46*u, s.title, s.colors.Accent, FontSansBold, AlignCenter),
			Label(cx, py+130*u, 24*u, s.desc, s.colors.Subtle, FontSans, AlignCenter),
		}
		for _, c := range s.cards.Row(s.props, px+48*u, py+200*u, pw-96*u, 200*u, 28*u, 70, 8) {
			panel = append(panel, s.cards.Build(c, f.Local)...)
		}
		t := Transform{Opacity: animation.Unit(p), Scale: animation.Mix(0.9, 1, p), TY: animation.Mix(40*u, 0, p)}
		els = append(els, Group(t, cx, py+ph/2, panel...)...)
	}

	return append(els, s.particles(f, u)...)
}

// background draws three orbs that swell in on their own springs and circle
// slowly, plus two highlights orbiting the centre at a pulsing radius.
func (s *solutionScene) background(f Frame, cx, cy, u float64) []Element {
	local := float64(f.Local)
	angle := s.shine.At(local) * math.Pi / 180
	pulse := s.pulse.At(math.Sin(local * 0.1))

	orbs := []struct {
		x, y, r float64
		alpha   float64
		turn    float64
	}{
		{cx - 520*u, cy - 220*u, 380 * u, 0.10, 1},
		{cx + 560*u, cy + 240*u, 320 * u, 0.07, -1},
		{cx + 380*u, cy - 300*u, 240 * u, 0.05, 0.5},
	}
	var els []Element
	for i, o := range orbs {
		p := s.orbs[i].At(f.Local)
		if p <= 0 {
			continue
		}
		a := angle * o.turn
		x := o.x + 24*u*math.Cos(a)
		y := o.y + 24*u*math.Sin(a)
		els = append(els, Circle(x, y, o.r, WithAlpha(s.colors.Accent, o.alpha)).
			With(Transform{Opacity: 1, Scale: p}))
	}

	ring := 420 * u * pulse
	a := angle * 0.3
	for _, off := range []float64{0, math.Pi} {
		x := cx + ring*math.Cos(a+off)
		y := cy + ring*0.5*math.Sin(a+off)
		els = append(els, Circle(x, y, 90*u*pulse, WithAlpha(s.colors.Accent, 0.04)))
	}
	return els
}

// particles are small accent dots rising in one after another
func (s *solutionScene) particles(f Frame, u float64) []Element {
	w, h := float64(f.Width), float64(f.Height)
	var els []Element
	for i := 0; i < solutionParticles; i++ {
		p := s.particle.At(f.Local - i*20)
		if p <= 0 {
			continue
		}
		x := w * (0.06 + 0.88*math.Mod(0.17+float64(i)*0.618034, 1))
		y := h * (0.08 + 0.84*math.Mod(0.53+float64(i)*0.381966, 1))
		els = append(els, Circle(x, y, 5*u, s.colors.Accent).
			With(Transform{Opacity: animation.Mix(0, 0.8, animation.Unit(p)), Scale: p, TY: animation.Mix(30*u, 0, p)}))
	}
	return els
}
