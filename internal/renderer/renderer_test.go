package renderer

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/ivlev/promoreel/internal/scene"
)

var red = color.NRGBA{255, 0, 0, 255}

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	return r
}

func draw(t *testing.T, r *Renderer, w, h int, els ...scene.Element) *image.RGBA {
	t.Helper()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if err := r.Draw(dst, els); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}
	return dst
}

func near(a, b uint8, tol int) bool {
	d := int(a) - int(b)
	return d >= -tol && d <= tol
}

func TestRectFillsItsBox(t *testing.T) {
	r := newTestRenderer(t)
	dst := draw(t, r, 40, 40, scene.Rect(10, 10, 20, 20, 0, red))

	in := dst.RGBAAt(20, 20)
	if !near(in.R, 255, 2) || !near(in.A, 255, 2) || in.G != 0 {
		t.Errorf("expected red inside, got %v", in)
	}
	for _, p := range []image.Point{{5, 5}, {35, 20}, {20, 35}, {9, 20}} {
		if c := dst.RGBAAt(p.X, p.Y); c.A != 0 {
			t.Errorf("expected transparent at %v, got %v", p, c)
		}
	}
}

func TestRoundedCornersAndCircles(t *testing.T) {
	r := newTestRenderer(t)

	dst := draw(t, r, 40, 40, scene.Rect(0, 0, 40, 40, 16, red))
	if c := dst.RGBAAt(0, 0); c.A != 0 {
		t.Errorf("expected rounded corner to stay empty, got %v", c)
	}
	if c := dst.RGBAAt(20, 1); c.A == 0 {
		t.Error("expected top edge midpoint to be filled")
	}

	dst = draw(t, r, 40, 40, scene.Circle(20, 20, 15, red))
	if c := dst.RGBAAt(20, 20); !near(c.A, 255, 2) {
		t.Errorf("expected filled centre, got %v", c)
	}
	if c := dst.RGBAAt(7, 7); c.A != 0 {
		t.Errorf("expected box corner outside the circle to be empty, got %v", c)
	}
}

func TestTransformScalesAndTranslates(t *testing.T) {
	r := newTestRenderer(t)

	shrunk := scene.Rect(0, 0, 40, 40, 0, red).With(scene.Transform{Opacity: 1, Scale: 0.5})
	dst := draw(t, r, 40, 40, shrunk)
	if c := dst.RGBAAt(5, 5); c.A != 0 {
		t.Errorf("expected area outside the scaled box to be empty, got %v", c)
	}
	if c := dst.RGBAAt(20, 20); c.A == 0 {
		t.Error("expected centre to be filled")
	}

	moved := scene.Rect(0, 0, 10, 10, 0, red).Move(20, 20)
	dst = draw(t, r, 40, 40, moved)
	if c := dst.RGBAAt(5, 5); c.A != 0 {
		t.Errorf("expected original position empty, got %v", c)
	}
	if c := dst.RGBAAt(25, 25); c.A == 0 {
		t.Error("expected translated box to be filled")
	}
}

func TestOpacity(t *testing.T) {
	r := newTestRenderer(t)

	dst := draw(t, r, 20, 20, scene.Rect(0, 0, 20, 20, 0, red).Fade(0))
	if !bytes.Equal(dst.Pix, make([]byte, len(dst.Pix))) {
		t.Error("expected a fully transparent element to draw nothing")
	}

	dst = draw(t, r, 20, 20, scene.Rect(0, 0, 20, 20, 0, red).Fade(0.5))
	if c := dst.RGBAAt(10, 10); !near(c.A, 128, 3) {
		t.Errorf("expected half alpha, got %v", c)
	}
}

func TestElementsOffCanvasAreClipped(t *testing.T) {
	r := newTestRenderer(t)
	dst := draw(t, r, 20, 20,
		scene.Rect(-100, -100, 50, 50, 10, red),
		scene.Rect(10, 10, 100, 100, 0, red),
	)
	if c := dst.RGBAAt(0, 0); c.A != 0 {
		t.Errorf("expected off-canvas rect to draw nothing, got %v", c)
	}
	if c := dst.RGBAAt(19, 19); c.A == 0 {
		t.Error("expected partially visible rect to be drawn")
	}
}

func inkBounds(img *image.RGBA) image.Rectangle {
	var r image.Rectangle
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y).A > 0 {
				r = r.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return r
}

func TestTextAlignment(t *testing.T) {
	r := newTestRenderer(t)
	white := color.NRGBA{255, 255, 255, 255}

	left := inkBounds(draw(t, r, 400, 100, scene.Label(200, 50, 32, "Signal", white, scene.FontSans, scene.AlignLeft)))
	if left.Empty() {
		t.Fatal("expected text to leave ink")
	}
	if left.Min.X < 198 {
		t.Errorf("left aligned text starts at %d, before its anchor", left.Min.X)
	}
	if left.Min.Y > 50 || left.Max.Y < 50 {
		t.Errorf("expected ink to straddle the centre line, got %v", left)
	}

	right := inkBounds(draw(t, r, 400, 100, scene.Label(200, 50, 32, "Signal", white, scene.FontSans, scene.AlignRight)))
	if right.Max.X > 202 {
		t.Errorf("right aligned text ends at %d, past its anchor", right.Max.X)
	}

	center := inkBounds(draw(t, r, 400, 100, scene.Label(200, 50, 32, "Signal", white, scene.FontSans, scene.AlignCenter)))
	if mid := (center.Min.X + center.Max.X) / 2; mid < 195 || mid > 205 {
		t.Errorf("centred text is centred at %d", mid)
	}
}

func TestMonoAdvanceMatchesScene(t *testing.T) {
	r := newTestRenderer(t)
	w, err := r.MeasureText(scene.FontMono, 100, "MMMMMMMMMM")
	if err != nil {
		t.Fatal(err)
	}
	if want := 10 * 100 * scene.MonoAdvance; w < want*0.98 || w > want*1.02 {
		t.Errorf("expected mono width ~%v, got %v", want, w)
	}
}

func TestImageScaledIntoBox(t *testing.T) {
	r := newTestRenderer(t)
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for i := range src.Pix {
		src.Pix[i] = 255
	}
	src.Pix[0] = 0 // first pixel cyan; the rest white

	dst := draw(t, r, 40, 40, scene.Picture(10, 10, 20, 20, src))
	if c := dst.RGBAAt(25, 25); c != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("expected white inside the image box, got %v", c)
	}
	if c := dst.RGBAAt(5, 5); c.A != 0 {
		t.Errorf("expected nothing outside the image box, got %v", c)
	}

	dst = draw(t, r, 40, 40, scene.Picture(10, 10, 20, 20, src).Fade(0.5))
	if c := dst.RGBAAt(25, 25); !near(c.A, 128, 3) {
		t.Errorf("expected half alpha image, got %v", c)
	}
}

func TestSeparateRenderersAgree(t *testing.T) {
	els := []scene.Element{
		scene.Rect(5, 5, 100, 60, 12, color.NRGBA{30, 26, 42, 230}),
		scene.Circle(80, 40, 20, color.NRGBA{124, 58, 237, 51}),
		scene.Label(20, 35, 18, "10,321", color.NRGBA{255, 255, 255, 255}, scene.FontSansBold, scene.AlignLeft),
	}

	a := draw(t, newTestRenderer(t), 120, 80, els...)
	second := newTestRenderer(t)
	draw(t, second, 120, 80, scene.Label(0, 0, 40, "warm up", red, scene.FontSans, scene.AlignLeft))
	b := draw(t, second, 120, 80, els...)

	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("expected identical pixels from separate renderers")
	}
}
