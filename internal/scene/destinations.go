package scene

import (
	"github.com/ivlev/promoreel/internal/animation"
	"github.com/ivlev/promoreel/internal/config"
)

const pulsePeriod = 45

// destinationsScene shows a pulsing hub with destination chips fanning out
// in two columns.
type destinationsScene struct {
	colors config.Colors
	head   headline
	brand  string
	names  []string
	hub    *animation.Spring
	chip   *animation.Spring
	pulse  *animation.Interpolator
}

func newDestinations(seg config.Segment, comp *config.Composition, colors config.Colors, _ Assets) (Scene, error) {
	head, err := newHeadline(comp.FPS, pick(seg.Title, "Destinations"), seg.Subtitle, colors, 0)
	if err != nil {
		return nil, err
	}
	hub, err := animation.NewSpring(comp.FPS, animation.Pop)
	if err != nil {
		return nil, err
	}
	chip, err := animation.NewSpring(comp.FPS, animation.Snappy)
	if err != nil {
		return nil, err
	}
	pulse, err := animation.NewInterpolator([]float64{0, pulsePeriod}, []float64{0, 1},
		animation.InterpolateOptions{Easing: animation.EaseOutCubic})
	if err != nil {
		return nil, err
	}
	return &destinationsScene{
		colors: colors,
		head:   head,
		brand:  comp.Brand.Name,
		names:  comp.Destinations,
		hub:    hub,
		chip:   chip,
		pulse:  pulse,
	}, nil
}

func (s *destinationsScene) Build(f Frame) []Element {
	u := f.Unit()
	w, h := float64(f.Width), float64(f.Height)
	els := s.head.build(f, 130*u)

	hubX, hubY := w*0.28, h*0.58
	if p := s.hub.At(f.Local - 10); p > 0 {
		t := animation.Unit(p)
		if f.Local > 10 {
			phase := s.pulse.At(float64((f.Local - 10) % pulsePeriod))
			els = append(els, Circle(hubX, hubY, (130+110*phase)*u, WithAlpha(s.colors.Accent, 0.25*(1-phase)*t)))
		}
		hub := []Element{
			Circle(hubX, hubY, 130*u, s.colors.Card),
			Circle(hubX, hubY, 110*u, WithAlpha(s.colors.Accent, 0.15)),
			Label(hubX, hubY, 40*u, s.brand, s.colors.Text, FontSansBold, AlignCenter),
		}
		els = append(els, Group(Transform{Opacity: t, Scale: animation.Mix(0.6, 1, p)}, hubX, hubY, hub...)...)
	}

	rows := (len(s.names) + 1) / 2
	chipW, chipH := 460*u, 76*u
	gapY := 18 * u
	top := hubY - (float64(rows)*chipH+float64(rows-1)*gapY)/2
	for i, name := range s.names {
		p := s.chip.At(f.Local - (25 + i*5))
		if p <= 0 {
			continue
		}
		col, row := i%2, i/2
		x := w*0.48 + float64(col)*(chipW+24*u)
		y := top + float64(row)*(chipH+gapY)

		chip := []Element{Rect(x, y, chipW, chipH, chipH/2, s.colors.Card)}
		chip = append(chip, IconPlug.Elements(x+chipH/2, y+chipH/2, chipH*0.5, s.colors.Accent, s.colors.Card)...)
		chip = append(chip, Label(x+chipH, y+chipH/2, 26*u, name, s.colors.Text, FontSans, AlignLeft))

		t := animation.Unit(p)
		els = append(els, Group(Transform{Opacity: t, Scale: 1, TX: animation.Mix(-80*u, 0, p)}, x, y, chip...)...)
	}
	return els
}
