// Package scene builds the visual content of each timeline segment as flat
// lists of positioned, animated elements. Building is a pure function of the
// local frame; painting is left to the renderer.
package scene

import (
	"image"
	"image/color"
)

// Kind selects how an Element is painted
type Kind uint8

const (
	KindRect Kind = iota
	KindCircle
	KindText
	KindImage
)

// Font selects a face for text elements
type Font uint8

const (
	FontSans Font = iota
	FontSansBold
	FontMono
	FontMonoBold
)

// MonoAdvance is the advance width of the mono faces in ems
const MonoAdvance = 0.6

// Align is the horizontal anchor of a text element
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Transform is applied around the element's own centre when painting
type Transform struct {
	Opacity float64
	Scale   float64
	TX, TY  float64
}

// Identity returns the transform that leaves an element unchanged
func Identity() Transform {
	return Transform{Opacity: 1, Scale: 1}
}

// Then composes t with an outer transform u that shares the same centre.
func (t Transform) Then(u Transform) Transform {
	return Transform{
		Opacity: t.Opacity * u.Opacity,
		Scale:   t.Scale * u.Scale,
		TX:      t.TX*u.Scale + u.TX,
		TY:      t.TY*u.Scale + u.TY,
	}
}

// Element is one paintable primitive.
//
// For rects, circles and images X, Y, W, H is the box. For text X is the
// anchor selected by Align, Y is the vertical centre of the line and Size is
// the font size in pixels.
type Element struct {
	Kind      Kind
	X, Y      float64
	W, H      float64
	Radius    float64
	Fill      color.NRGBA
	Text      string
	Size      float64
	Font      Font
	Align     Align
	Image     image.Image
	Transform Transform
}

// Rect returns a filled rectangle, rounded when radius > 0
func Rect(x, y, w, h, radius float64, fill color.NRGBA) Element {
	return Element{Kind: KindRect, X: x, Y: y, W: w, H: h, Radius: radius, Fill: fill, Transform: Identity()}
}

// Circle returns a filled circle centred at (cx, cy)
func Circle(cx, cy, r float64, fill color.NRGBA) Element {
	return Element{Kind: KindCircle, X: cx - r, Y: cy - r, W: 2 * r, H: 2 * r, Radius: r, Fill: fill, Transform: Identity()}
}

// Label returns a single line of text
func Label(x, y, size float64, text string, fill color.NRGBA, font Font, align Align) Element {
	return Element{Kind: KindText, X: x, Y: y, Size: size, Text: text, Fill: fill, Font: font, Align: align, Transform: Identity()}
}

// Picture returns an image scaled into the box
func Picture(x, y, w, h float64, img image.Image) Element {
	return Element{Kind: KindImage, X: x, Y: y, W: w, H: h, Image: img, Transform: Identity()}
}

// With applies an extra transform on top of the element's own.
func (e Element) With(t Transform) Element {
	e.Transform = e.Transform.Then(t)
	return e
}

// Fade multiplies the element's opacity
func (e Element) Fade(opacity float64) Element {
	e.Transform.Opacity *= opacity
	return e
}

// Move translates the element
func (e Element) Move(dx, dy float64) Element {
	e.Transform.TX += dx
	e.Transform.TY += dy
	return e
}

// Center returns the centre of the element's box (the text anchor for text)
func (e Element) Center() (float64, float64) {
	if e.Kind == KindText {
		return e.X, e.Y
	}
	return e.X + e.W/2, e.Y + e.H/2
}

// Group bakes a container transform, scaled around (ox, oy), into every
// element. The input slice is not modified.
func Group(t Transform, ox, oy float64, elements ...Element) []Element {
	out := make([]Element, len(elements))
	for i, e := range elements {
		e.X = ox + (e.X-ox)*t.Scale + t.TX
		e.Y = oy + (e.Y-oy)*t.Scale + t.TY
		e.W *= t.Scale
		e.H *= t.Scale
		e.Radius *= t.Scale
		e.Size *= t.Scale
		e.Transform.TX *= t.Scale
		e.Transform.TY *= t.Scale
		e.Transform.Opacity *= t.Opacity
		out[i] = e
	}
	return out
}

// WithAlpha returns c with its alpha multiplied by a in [0,1]
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	switch {
	case a <= 0:
		c.A = 0
	case a < 1:
		c.A = uint8(float64(c.A)*a + 0.5)
	}
	return c
}
