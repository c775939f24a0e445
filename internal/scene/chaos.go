package scene

import (
	"math"

	"github.com/ivlev/promoreel/internal/animation"
	"github.com/ivlev/promoreel/internal/config"
)

var chaosTabs = []string{
	"Analytics", "Ads Manager", "Tag Manager", "Spreadsheet", "Events Debugger",
	"CRM Export", "Attribution", "Pixel Helper", "BigQuery", "Consent Banner",
	"UTM Builder", "Dashboards",
}

// chaosScene opens the video: browser tabs pile up and drift, a headline
// lands on top and everything clears before the cut.
type chaosScene struct {
	colors config.Colors
	head   headline
	cards  *CardBuilder
	tabs   []Card
	exit   int
}

func newChaos(seg config.Segment, comp *config.Composition, colors config.Colors, _ Assets) (Scene, error) {
	head, err := newHeadline(comp.FPS, pick(seg.Title, "Too many tools"), seg.Subtitle, colors, 60)
	if err != nil {
		return nil, err
	}
	cards, err := NewCardBuilder(comp.FPS, colors, animation.Snappy, animation.Drift)
	if err != nil {
		return nil, err
	}

	tabs := make([]Card, len(chaosTabs))
	for i, name := range chaosTabs {
		tabs[i] = Card{Title: name, Icon: IconTab, Delay: i * 4}
	}
	return &chaosScene{colors: colors, head: head, cards: cards, tabs: tabs, exit: comp.FPS}, nil
}

func (s *chaosScene) Build(f Frame) []Element {
	u := f.Unit()
	w, h := float64(f.Width), float64(f.Height)
	fade := 1.0
	if f.Duration > 0 {
		// Clear the stage over the last second of the segment
		fade = animation.Unit(float64(f.Duration-f.Local) / float64(s.exit))
	}
	if fade <= 0 {
		return nil
	}

	var els []Element
	cw, ch := 340*u, 120*u
	for i, c := range s.tabs {
		// Scatter positions from a fixed golden-ratio sequence
		gx := math.Mod(0.13+float64(i)*0.618034, 1)
		gy := math.Mod(0.37+float64(i)*0.414214, 1)
		c.X = 60*u + gx*(w-cw-120*u)
		c.Y = 60*u + gy*(h-ch-120*u)
		c.W, c.H = cw, ch

		phase := float64(i) * 0.9
		t := float64(f.Local) / float64(f.FPS)
		dx := 14 * u * math.Sin(t*1.3+phase)
		dy := 10 * u * math.Cos(t*1.1+phase)

		for _, e := range s.cards.Build(c, f.Local) {
			els = append(els, e.Move(dx, dy).Fade(fade*0.9))
		}
	}

	if p := s.head.titleIn.At(f.Local); p > 0 {
		t := animation.Unit(p)
		els = append(els, Rect(w*0.18, h*0.5-80*u, w*0.64, 160*u, 28*u, WithAlpha(s.colors.Background, 0.92)).Fade(t*fade))
	}
	for _, e := range s.head.build(f, h*0.5-10*u) {
		els = append(els, e.Fade(fade))
	}
	return els
}
