package scene

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ivlev/promoreel/internal/animation"
	"github.com/ivlev/promoreel/internal/config"
)

// maxReferrerRows is how many table rows fit under the metric cards
const maxReferrerRows = 8

const referrersCaption = "Monitor your traffic sources and optimize your campaigns"

// referrersScene shows filter chips, metric cards and a top referrers table
// whose rows spring in one by one.
type referrersScene struct {
	colors    config.Colors
	head      headline
	cards     *CardBuilder
	tiles     []Card
	referrers []config.Referrer
	top       int
	filters   animation.Motion
	table     animation.Motion
	row       animation.Motion
	caption   animation.Motion
}

func newReferrers(seg config.Segment, comp *config.Composition, colors config.Colors, _ Assets) (Scene, error) {
	fps := comp.FPS
	head, err := newHeadline(fps, pick(seg.Title, "Referrer analytics"), seg.Subtitle, colors, 0)
	if err != nil {
		return nil, err
	}
	cards, err := NewCardBuilder(fps, colors, animation.Snappy, animation.Drift)
	if err != nil {
		return nil, err
	}

	s := &referrersScene{colors: colors, head: head, cards: cards}
	motions := []struct {
		dst   *animation.Motion
		delay int
	}{
		{&s.filters, 20},
		{&s.table, 60},
		{&s.row, 90},
		{&s.caption, 150},
	}
	for _, m := range motions {
		if *m.dst, err = animation.NewMotion(fps, animation.Snappy, m.delay); err != nil {
			return nil, err
		}
	}

	s.referrers = comp.Referrers
	if len(s.referrers) > maxReferrerRows {
		s.referrers = s.referrers[:maxReferrerRows]
	}
	for _, r := range s.referrers {
		s.top = max(s.top, r.Visitors)
	}

	m := comp.Metrics
	s.tiles = []Card{
		{Title: "Visitors", Value: cards.FormatValue(float64(m.Visitors), 0, ""), Icon: IconUsers},
		{Title: "Page views", Value: cards.FormatValue(float64(m.PageViews), 0, ""), Icon: IconEye},
		{Title: "Bounce rate", Value: cards.FormatValue(m.BounceRate, 1, "%"), Icon: IconBounce},
		{Title: "Total events", Value: cards.FormatValue(float64(m.TotalEvents), 0, ""), Icon: IconBolt},
	}
	return s, nil
}

func (s *referrersScene) Build(f Frame) []Element {
	u := f.Unit()
	w := float64(f.Width)
	margin := 120 * u

	els := s.head.build(f, 110*u)
	if p := s.filters.At(f.Local); p > 0 {
		els = append(els, Group(Transform{Opacity: animation.Unit(p), Scale: 1, TY: animation.Mix(20*u, 0, p)},
			margin, 215*u, s.filterBar(margin, 215*u, w-2*margin, u)...)...)
	}
	for _, c := range s.cards.Row(s.tiles, margin, 280*u, w-2*margin, 160*u, 28*u, 30, 5) {
		els = append(els, s.cards.Build(c, f.Local)...)
	}
	if p := s.table.At(f.Local); p > 0 {
		panelY := 470 * u
		panel := s.tablePanel(f, margin, panelY, w-2*margin, 420*u, u)
		els = append(els, Group(Transform{Opacity: animation.Unit(p), Scale: 1, TY: animation.Mix(30*u, 0, p)}, margin, panelY, panel...)...)
	}
	if p := s.caption.At(f.Local); p > 0 {
		els = append(els, Label(w/2, 950*u, 28*u, referrersCaption, s.colors.Subtle, FontSans, AlignCenter).
			Fade(animation.Unit(p)).Move(0, animation.Mix(20*u, 0, p)))
	}
	return els
}

// filterBar is the row of date and filter chips with a live visitor count
// on the far right.
func (s *referrersScene) filterBar(x, y, w, u float64) []Element {
	h := 48 * u
	edge := x + w
	var els []Element
	for _, chip := range []struct {
		text  string
		width float64
	}{
		{"Today", 130},
		{"Select custom range", 290},
		{"Add filter", 170},
	} {
		cw := chip.width * u
		els = append(els,
			Rect(x, y, cw, h, h/2, s.colors.Card),
			Label(x+cw/2, y+h/2, 22*u, chip.text, s.colors.Text, FontSans, AlignCenter),
		)
		x += cw + 16*u
	}
	return append(els,
		Circle(edge-210*u, y+h/2, 7*u, s.colors.Accent),
		Label(edge, y+h/2, 22*u, "20 active now", s.colors.Subtle, FontSans, AlignRight),
	)
}

func (s *referrersScene) tablePanel(f Frame, x, y, w, h, u float64) []Element {
	pad := 36 * u
	els := []Element{
		Rect(x, y, w, h, 18*u, s.colors.Card),
		Label(x+pad, y+36*u, 30*u, "Top referrers", s.colors.Text, FontSansBold, AlignLeft),
		Label(x+pad, y+82*u, 20*u, "SOURCE", s.colors.Subtle, FontSans, AlignLeft),
		Label(x+w-pad, y+82*u, 20*u, "VISITORS", s.colors.Subtle, FontSans, AlignRight),
		Rect(x+pad, y+100*u, w-2*pad, 1.5*u, 0, WithAlpha(s.colors.Text, 0.12)),
	}

	rowH := 36 * u
	for i, r := range s.referrers {
		p := s.row.At(f.Local - i*8)
		if p <= 0 {
			continue
		}
		cy := y + 125*u + float64(i)*rowH
		share := 0.0
		if s.top > 0 {
			share = float64(r.Visitors) / float64(s.top)
		}
		row := []Element{
			Rect(x+pad, cy-rowH*0.4, (w-2*pad)*share, rowH*0.8, 6*u, WithAlpha(s.colors.Accent, 0.08)),
			Circle(x+pad+16*u, cy, 13*u, WithAlpha(s.colors.Accent, 0.25)),
			Label(x+pad+16*u, cy, 16*u, initial(r.Source), s.colors.Text, FontSansBold, AlignCenter),
			Label(x+pad+44*u, cy, 22*u, r.Source, s.colors.Text, FontSans, AlignLeft),
			Label(x+w-pad, cy, 22*u, strconv.Itoa(r.Visitors), s.colors.Text, FontMono, AlignRight),
		}
		for _, e := range row {
			els = append(els, e.Fade(animation.Unit(p)).Move(0, animation.Mix(20*u, 0, p)))
		}
	}
	return els
}

// initial returns the upper-cased first letter of a host, skipping "www."
func initial(host string) string {
	host = strings.TrimPrefix(host, "www.")
	r, _ := utf8.DecodeRuneInString(host)
	if r == utf8.RuneError {
		return "?"
	}
	return string(unicode.ToUpper(r))
}
