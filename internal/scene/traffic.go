package scene

import (
	"strconv"

	"github.com/ivlev/promoreel/internal/animation"
	"github.com/ivlev/promoreel/internal/config"
)

// Hourly sample data for the traffic chart, on a fixed 0..trafficScale axis
var (
	hourlyPageViews = [24]float64{45, 42, 38, 40, 42, 48, 52, 55, 58, 52, 50, 48, 45, 50, 52, 55, 50, 45, 40, 42, 45, 48, 50, 45}
	hourlyVisitors  = [24]float64{28, 26, 24, 26, 28, 30, 32, 35, 36, 32, 30, 28, 27, 30, 32, 35, 30, 28, 25, 26, 28, 30, 32, 28}
)

const trafficScale = 60

const trafficCaption = "Privacy-first server-side analytics that respects user consent"

// trafficScene is the analytics dashboard: static metric cards over a
// two-series hourly chart that fills in from the left.
type trafficScene struct {
	colors  config.Colors
	head    headline
	cards   *CardBuilder
	tiles   []Card
	logo    *logoBadge
	chart   animation.Motion
	caption animation.Motion
}

func newTraffic(seg config.Segment, comp *config.Composition, colors config.Colors, assets Assets) (Scene, error) {
	fps := comp.FPS
	head, err := newHeadline(fps, pick(seg.Title, "Analytics dashboard"), seg.Subtitle, colors, 0)
	if err != nil {
		return nil, err
	}
	cards, err := NewCardBuilder(fps, colors, animation.Snappy, animation.Drift)
	if err != nil {
		return nil, err
	}
	chart, err := animation.NewMotion(fps, animation.Soft, 50)
	if err != nil {
		return nil, err
	}
	caption, err := animation.NewMotion(fps, animation.Snappy, 120)
	if err != nil {
		return nil, err
	}
	logo, err := newLogoBadge(fps, assets)
	if err != nil {
		return nil, err
	}

	m := comp.Metrics
	tiles := []Card{
		{Title: "Visitors", Value: cards.FormatValue(float64(m.Visitors), 0, ""), Icon: IconUsers},
		{Title: "Page views", Value: cards.FormatValue(float64(m.PageViews), 0, ""), Icon: IconEye},
		{Title: "Bounce rate", Value: cards.FormatValue(m.BounceRate, 1, "%"), Icon: IconBounce},
		{Title: "Total events", Value: cards.FormatValue(float64(m.TotalEvents), 0, ""), Icon: IconBolt},
	}
	return &trafficScene{
		colors:  colors,
		head:    head,
		cards:   cards,
		tiles:   tiles,
		logo:    logo,
		chart:   chart,
		caption: caption,
	}, nil
}

func (s *trafficScene) Build(f Frame) []Element {
	u := f.Unit()
	w := float64(f.Width)
	margin := 120 * u

	els := s.head.build(f, 120*u)
	for _, c := range s.cards.Row(s.tiles, margin, 230*u, w-2*margin, 180*u, 28*u, 15, 5) {
		els = append(els, s.cards.Build(c, f.Local)...)
	}

	if p := s.chart.At(f.Local); p > 0 {
		panelY, panelH := 450*u, 380*u
		panel := []Element{Rect(margin, panelY, w-2*margin, panelH, 18*u, s.colors.Card)}
		panel = append(panel, s.legend(margin+40*u, panelY+40*u, u)...)
		panel = append(panel, s.bars(animation.Unit(p), margin+40*u, panelY+80*u, w-2*margin-80*u, panelH-130*u, u)...)
		els = append(els, Group(Transform{Opacity: animation.Unit(p), Scale: 1, TY: animation.Mix(30*u, 0, p)}, margin, panelY, panel...)...)
	}

	if p := s.caption.At(f.Local); p > 0 {
		els = append(els, Label(w/2, 890*u, 28*u, trafficCaption, s.colors.Subtle, FontSans, AlignCenter).
			Fade(animation.Unit(p)).Move(0, animation.Mix(20*u, 0, p)))
	}
	return append(els, s.logo.build(f)...)
}

func (s *trafficScene) legend(x, y, u float64) []Element {
	sw := 14 * u
	return []Element{
		Rect(x, y-sw/2, sw, sw, 3*u, WithAlpha(s.colors.Accent, 0.35)),
		Label(x+sw+10*u, y, 22*u, "Page views", s.colors.Subtle, FontSans, AlignLeft),
		Rect(x+200*u, y-sw/2, sw, sw, 3*u, s.colors.Accent),
		Label(x+200*u+sw+10*u, y, 22*u, "Visitors", s.colors.Subtle, FontSans, AlignLeft),
	}
}

// bars draws both series as hourly columns. Page views lead the reveal and
// visitors trail at 85% of the progress.
func (s *trafficScene) bars(p, x, y, w, h, u float64) []Element {
	slot := w / float64(len(hourlyPageViews))
	base := y + h - 30*u
	chartH := h - 30*u
	shown := func(progress float64) int {
		return max(1, int(float64(len(hourlyPageViews))*progress))
	}

	var els []Element
	for i := 0; i < shown(p); i++ {
		bh := chartH * hourlyPageViews[i] / trafficScale
		els = append(els, Rect(x+float64(i)*slot+slot*0.15, base-bh, slot*0.7, bh, 4*u, WithAlpha(s.colors.Accent, 0.35)))
	}
	for i := 0; i < shown(p*0.85); i++ {
		bh := chartH * hourlyVisitors[i] / trafficScale
		els = append(els, Rect(x+float64(i)*slot+slot*0.3, base-bh, slot*0.4, bh, 4*u, s.colors.Accent))
	}
	for hour := 0; hour < len(hourlyPageViews); hour += 6 {
		els = append(els, Label(x+(float64(hour)+0.5)*slot, base+18*u, 18*u, strconv.Itoa(hour)+":00", s.colors.Subtle, FontMono, AlignCenter))
	}
	return els
}
