package scene

import (
	"math"

	"github.com/ivlev/promoreel/internal/animation"
	"github.com/ivlev/promoreel/internal/config"
)

const chartBars = 14

// metricsScene is the dashboard: four counting metric cards over a bar chart.
type metricsScene struct {
	colors  config.Colors
	head    headline
	cards   *CardBuilder
	tiles   []Card
	bar     *animation.Spring
	heights [chartBars]float64
}

func newMetrics(seg config.Segment, comp *config.Composition, colors config.Colors, _ Assets) (Scene, error) {
	head, err := newHeadline(comp.FPS, pick(seg.Title, "Overview"), seg.Subtitle, colors, 0)
	if err != nil {
		return nil, err
	}
	cards, err := NewCardBuilder(comp.FPS, colors, animation.Smooth, animation.Drift)
	if err != nil {
		return nil, err
	}
	bar, err := animation.NewSpring(comp.FPS, animation.Snappy)
	if err != nil {
		return nil, err
	}

	m := comp.Metrics
	s := &metricsScene{
		colors: colors,
		head:   head,
		cards:  cards,
		bar:    bar,
		tiles: []Card{
			{Title: "Visitors", Counting: true, Count: float64(m.Visitors), Icon: IconUsers},
			{Title: "Page views", Counting: true, Count: float64(m.PageViews), Icon: IconEye},
			{Title: "Bounce rate", Counting: true, Count: m.BounceRate, Decimals: 1, Suffix: "%", Icon: IconBounce},
			{Title: "Total events", Counting: true, Count: float64(m.TotalEvents), Icon: IconBolt},
		},
	}
	for i := range s.heights {
		// Deterministic traffic-like shape
		x := float64(i) / float64(chartBars-1)
		s.heights[i] = 0.35 + 0.45*x + 0.18*math.Sin(float64(i)*1.7)
	}
	return s, nil
}

func (s *metricsScene) Build(f Frame) []Element {
	u := f.Unit()
	w := float64(f.Width)
	margin := 120 * u

	els := s.head.build(f, 140*u)

	tiles := s.cards.Row(s.tiles, margin, 260*u, w-2*margin, 220*u, 32*u, 10, 8)
	for _, c := range tiles {
		els = append(els, s.cards.Build(c, f.Local)...)
	}

	// Chart panel
	panelY := 530 * u
	panelH := 440 * u
	panelIn := s.bar.At(f.Local - 30)
	if panelIn <= 0 {
		return els
	}
	panel := []Element{Rect(margin, panelY, w-2*margin, panelH, 22*u, s.colors.Card)}
	panel = append(panel, Label(margin+36*u, panelY+44*u, 26*u, "Events per day", s.colors.Subtle, FontSans, AlignLeft))

	chartX := margin + 36*u
	chartW := w - 2*margin - 72*u
	baseY := panelY + panelH - 40*u
	maxH := panelH - 130*u
	gap := 18 * u
	bw := (chartW - gap*float64(chartBars-1)) / chartBars
	for i, h := range s.heights {
		p := s.bar.At(f.Local - 40 - i*3)
		if p <= 0 {
			continue
		}
		bh := maxH * h * p
		fill := s.colors.Accent
		if i != chartBars-1 {
			fill = WithAlpha(fill, 0.55)
		}
		panel = append(panel, Rect(chartX+float64(i)*(bw+gap), baseY-bh, bw, bh, 6*u, fill))
	}

	t := animation.Unit(panelIn)
	els = append(els, Group(Transform{Opacity: t, Scale: 1, TY: animation.Mix(30*u, 0, panelIn)}, margin, panelY, panel...)...)
	return els
}
