package scene

import (
	"github.com/ivlev/promoreel/internal/animation"
	"github.com/ivlev/promoreel/internal/config"
)

// comparisonScene contrasts the status quo with the product row by row.
type comparisonScene struct {
	colors   config.Colors
	head     headline
	brand    string
	features []config.Feature
	columns  *animation.Spring
	row      *animation.Spring
	slide    *animation.Interpolator
}

func newComparison(seg config.Segment, comp *config.Composition, colors config.Colors, _ Assets) (Scene, error) {
	head, err := newHeadline(comp.FPS, pick(seg.Title, "Why switch"), seg.Subtitle, colors, 0)
	if err != nil {
		return nil, err
	}
	columns, err := animation.NewSpring(comp.FPS, animation.Soft)
	if err != nil {
		return nil, err
	}
	row, err := animation.NewSpring(comp.FPS, animation.Smooth)
	if err != nil {
		return nil, err
	}
	slide, err := animation.NewInterpolator([]float64{0, 1}, []float64{60, 0}, animation.InterpolateOptions{})
	if err != nil {
		return nil, err
	}
	return &comparisonScene{
		colors:   colors,
		head:     head,
		brand:    comp.Brand.Name,
		features: comp.Features,
		columns:  columns,
		row:      row,
		slide:    slide,
	}, nil
}

func (s *comparisonScene) Build(f Frame) []Element {
	u := f.Unit()
	w := float64(f.Width)
	margin := 160 * u
	labelW := 380 * u
	colW := (w - 2*margin - labelW - 40*u) / 2
	leftX := margin + labelW + 20*u
	rightX := leftX + colW + 20*u

	els := s.head.build(f, 130*u)

	if p := s.columns.At(f.Local - 10); p > 0 {
		t := animation.Unit(p)
		els = append(els,
			Label(leftX+colW/2, 270*u, 30*u, "Without "+s.brand, s.colors.Subtle, FontSansBold, AlignCenter).Fade(t),
			Label(rightX+colW/2, 270*u, 30*u, "With "+s.brand, s.colors.Accent, FontSansBold, AlignCenter).Fade(t),
		)
	}

	rowH := 120 * u
	for i, feat := range s.features {
		p := s.row.At(f.Local - (20 + i*12))
		if p <= 0 {
			continue
		}
		y := 320*u + float64(i)*(rowH+20*u)
		cy := y + rowH/2
		t := animation.Unit(p)
		dx := s.slide.At(p) * u

		els = append(els, Rect(margin, y, w-2*margin, rowH, 18*u, s.colors.Card).Fade(t))
		els = append(els, Label(margin+32*u, cy, 32*u, feat.Name, s.colors.Text, FontSansBold, AlignLeft).Fade(t).Move(-dx, 0))

		icon := 44 * u
		for _, e := range IconCross.Elements(leftX+icon/2+16*u, cy, icon, s.colors.Subtle, s.colors.Card) {
			els = append(els, e.Fade(t).Move(-dx, 0))
		}
		els = append(els, Label(leftX+icon+36*u, cy, 28*u, feat.Without, s.colors.Subtle, FontSans, AlignLeft).Fade(t).Move(-dx, 0))

		for _, e := range IconCheck.Elements(rightX+icon/2+16*u, cy, icon, s.colors.Accent, s.colors.Card) {
			els = append(els, e.Fade(t).Move(dx, 0))
		}
		els = append(els, Label(rightX+icon+36*u, cy, 28*u, feat.With, s.colors.Text, FontSans, AlignLeft).Fade(t).Move(dx, 0))
	}
	return els
}
