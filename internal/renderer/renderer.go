// Package renderer paints scene elements into RGBA frames.
package renderer

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/ivlev/promoreel/internal/scene"
)

// kappa places cubic control points for a quarter circle
const kappa = 0.5522847498

// Renderer rasterizes element lists. A Renderer caches font faces and a
// rasterizer and must not be shared between goroutines.
type Renderer struct {
	fonts  map[scene.Font]*opentype.Font
	faces  map[faceKey]font.Face
	raster vector.Rasterizer
}

// New returns a Renderer with the Go font family loaded.
func New() (*Renderer, error) {
	fonts, err := loadFonts()
	if err != nil {
		return nil, err
	}
	return &Renderer{fonts: fonts, faces: make(map[faceKey]font.Face)}, nil
}

// Close releases cached font faces
func (r *Renderer) Close() error {
	for k, f := range r.faces {
		f.Close()
		delete(r.faces, k)
	}
	return nil
}

// Draw paints the elements over dst in order.
func (r *Renderer) Draw(dst *image.RGBA, elements []scene.Element) error {
	for _, e := range elements {
		if err := r.DrawElement(dst, e); err != nil {
			return err
		}
	}
	return nil
}

// DrawElement paints one element. Invisible elements are skipped.
func (r *Renderer) DrawElement(dst *image.RGBA, e scene.Element) error {
	t := e.Transform
	if !(t.Opacity > 0) || !(t.Scale > 0) {
		return nil
	}
	opacity := math.Min(t.Opacity, 1)

	switch e.Kind {
	case scene.KindText:
		return r.drawText(dst, e, opacity)
	case scene.KindImage:
		r.drawImage(dst, e, opacity)
	case scene.KindCircle:
		x, y, w, h := box(e)
		r.fillRoundRect(dst, x, y, w, h, math.Min(w, h)/2, scene.WithAlpha(e.Fill, opacity))
	default:
		x, y, w, h := box(e)
		r.fillRoundRect(dst, x, y, w, h, e.Radius*t.Scale, scene.WithAlpha(e.Fill, opacity))
	}
	return nil
}

// box returns the element's box after scaling about its centre and translating.
func box(e scene.Element) (x, y, w, h float64) {
	s := e.Transform.Scale
	cx, cy := e.Center()
	w, h = e.W*s, e.H*s
	x = cx - w/2 + e.Transform.TX
	y = cy - h/2 + e.Transform.TY
	return x, y, w, h
}

func (r *Renderer) fillRoundRect(dst *image.RGBA, x, y, w, h, radius float64, fill color.NRGBA) {
	if w <= 0 || h <= 0 || fill.A == 0 {
		return
	}
	bounds := image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+w)), int(math.Ceil(y+h)),
	).Intersect(dst.Bounds())
	if bounds.Empty() {
		return
	}

	radius = math.Max(0, math.Min(radius, math.Min(w, h)/2))
	// Rasterizer coordinates are relative to bounds.Min
	x -= float64(bounds.Min.X)
	y -= float64(bounds.Min.Y)

	z := &r.raster
	z.Reset(bounds.Dx(), bounds.Dy())
	z.DrawOp = xdraw.Over
	if radius == 0 {
		z.MoveTo(float32(x), float32(y))
		z.LineTo(float32(x+w), float32(y))
		z.LineTo(float32(x+w), float32(y+h))
		z.LineTo(float32(x), float32(y+h))
	} else {
		k := radius * kappa
		l, t, rt, b := x, y, x+w, y+h
		z.MoveTo(f32(l+radius), f32(t))
		z.LineTo(f32(rt-radius), f32(t))
		z.CubeTo(f32(rt-radius+k), f32(t), f32(rt), f32(t+radius-k), f32(rt), f32(t+radius))
		z.LineTo(f32(rt), f32(b-radius))
		z.CubeTo(f32(rt), f32(b-radius+k), f32(rt-radius+k), f32(b), f32(rt-radius), f32(b))
		z.LineTo(f32(l+radius), f32(b))
		z.CubeTo(f32(l+radius-k), f32(b), f32(l), f32(b-radius+k), f32(l), f32(b-radius))
		z.LineTo(f32(l), f32(t+radius))
		z.CubeTo(f32(l), f32(t+radius-k), f32(l+radius-k), f32(t), f32(l+radius), f32(t))
	}
	z.ClosePath()
	z.Draw(dst, bounds, image.NewUniform(fill), image.Point{})
}

func f32(v float64) float32 {
	return float32(v)
}

func (r *Renderer) drawText(dst *image.RGBA, e scene.Element, opacity float64) error {
	size := e.Size * e.Transform.Scale
	if e.Text == "" || size < 1 {
		return nil
	}
	face, err := r.face(e.Font, size)
	if err != nil {
		return err
	}

	fill := scene.WithAlpha(e.Fill, opacity)
	if fill.A == 0 {
		return nil
	}

	x := e.X + e.Transform.TX
	y := e.Y + e.Transform.TY

	width := float64(font.MeasureString(face, e.Text)) / 64
	switch e.Align {
	case scene.AlignCenter:
		x -= width / 2
	case scene.AlignRight:
		x -= width
	}

	// Centre the line box on y
	m := face.Metrics()
	ascent := float64(m.Ascent) / 64
	descent := float64(m.Descent) / 64
	baseline := y + (ascent-descent)/2

	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(fill),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(math.Round(x * 64)), Y: fixed.Int26_6(math.Round(baseline * 64))},
	}
	d.DrawString(e.Text)
	return nil
}

// MeasureText returns the advance width of text at size in pixels
func (r *Renderer) MeasureText(f scene.Font, size float64, text string) (float64, error) {
	face, err := r.face(f, size)
	if err != nil {
		return 0, err
	}
	return float64(font.MeasureString(face, text)) / 64, nil
}

func (r *Renderer) drawImage(dst *image.RGBA, e scene.Element, opacity float64) {
	if e.Image == nil {
		return
	}
	x, y, w, h := box(e)
	dr := image.Rect(
		int(math.Round(x)), int(math.Round(y)),
		int(math.Round(x+w)), int(math.Round(y+h)),
	)
	if dr.Intersect(dst.Bounds()).Empty() {
		return
	}

	var opts *xdraw.Options
	if opacity < 1 {
		opts = &xdraw.Options{DstMask: image.NewUniform(color.Alpha16{A: uint16(opacity*0xffff + 0.5)})}
	}

	// Paletted sources are codes and pictograms; keep their edges hard
	var scaler xdraw.Scaler = xdraw.BiLinear
	if _, ok := e.Image.(*image.Paletted); ok {
		scaler = xdraw.NearestNeighbor
	}
	scaler.Scale(dst, dr, e.Image, e.Image.Bounds(), xdraw.Over, opts)
}
