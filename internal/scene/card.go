package scene

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ivlev/promoreel/internal/animation"
	"github.com/ivlev/promoreel/internal/config"
)

// Card is the shared template behind metric tiles, tab cards and chips.
type Card struct {
	Title string
	Value string
	// When Counting is set the value counts up to Count instead of showing Value
	Counting bool
	Count    float64
	Decimals int
	Suffix   string

	Icon  Icon
	Delay int

	X, Y, W, H float64
}

// CardBuilder lays out and animates cards with one pair of springs.
type CardBuilder struct {
	colors  config.Colors
	enter   *animation.Spring
	count   *animation.Spring
	rise    float64
	printer *message.Printer
}

// NewCardBuilder validates the entrance and counter springs up front.
func NewCardBuilder(fps int, colors config.Colors, enter, count animation.SpringConfig) (*CardBuilder, error) {
	e, err := animation.NewSpring(fps, enter)
	if err != nil {
		return nil, fmt.Errorf("card entrance: %w", err)
	}
	c, err := animation.NewSpring(fps, count)
	if err != nil {
		return nil, fmt.Errorf("card counter: %w", err)
	}
	return &CardBuilder{
		colors:  colors,
		enter:   e,
		count:   c,
		rise:    30,
		printer: message.NewPrinter(language.English),
	}, nil
}

// Row spreads cards horizontally across [x, x+w] and staggers their delays
// by stagger frames starting at delay.
func (b *CardBuilder) Row(cards []Card, x, y, w, h, gap float64, delay, stagger int) []Card {
	if len(cards) == 0 {
		return nil
	}
	cw := (w - gap*float64(len(cards)-1)) / float64(len(cards))
	out := make([]Card, len(cards))
	for i, c := range cards {
		c.X = x + float64(i)*(cw+gap)
		c.Y = y
		c.W = cw
		c.H = h
		c.Delay = delay + i*stagger
		out[i] = c
	}
	return out
}

// Progress returns the entrance progress of c at the local frame
func (b *CardBuilder) Progress(c Card, local int) float64 {
	return b.enter.At(local - c.Delay)
}

// Build returns the elements of c at the local frame.
func (b *CardBuilder) Build(c Card, local int) []Element {
	p := b.Progress(c, local)
	if p <= 0 {
		return nil
	}

	pad := c.H * 0.14
	iconSize := c.H * 0.26
	els := []Element{
		Rect(c.X, c.Y, c.W, c.H, c.H*0.1, b.colors.Card),
		Rect(c.X, c.Y, c.W, c.H*0.03, c.H*0.015, WithAlpha(b.colors.Accent, 0.6)),
	}
	els = append(els, c.Icon.Elements(c.X+pad+iconSize/2, c.Y+pad+iconSize/2, iconSize, b.colors.Accent, b.colors.Card)...)

	textX := c.X + pad
	if c.Icon != IconNone {
		textX += iconSize + pad*0.6
	}
	els = append(els, Label(textX, c.Y+pad+iconSize/2, c.H*0.13, c.Title, b.colors.Subtle, FontSans, AlignLeft))

	value := c.Value
	if c.Counting {
		value = b.FormatCount(c, local)
	}
	if value != "" {
		els = append(els, Label(c.X+pad, c.Y+c.H*0.68, c.H*0.28, value, b.colors.Text, FontSansBold, AlignLeft))
	}

	t := animation.Unit(p)
	return Group(Transform{Opacity: t, Scale: 1, TY: animation.Mix(b.rise, 0, p)}, c.X, c.Y, els...)
}

// FormatCount renders the counter value of c at the local frame with
// thousands separators.
func (b *CardBuilder) FormatCount(c Card, local int) string {
	p := animation.Unit(b.count.At(local - c.Delay))
	return b.FormatValue(c.Count*p, c.Decimals, c.Suffix)
}

// FormatValue formats v with thousands separators
func (b *CardBuilder) FormatValue(v float64, decimals int, suffix string) string {
	if decimals > 0 {
		return b.printer.Sprintf(fmt.Sprintf("%%.%df", decimals), v) + suffix
	}
	return b.printer.Sprintf("%d", int64(v+0.5)) + suffix
}
