package analyzer

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

// page returns a white opaque page with a dark filled rectangle at r
func page(w, h int, r image.Rectangle) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(img, r, image.NewUniform(color.RGBA{20, 30, 40, 255}), image.Point{}, draw.Src)
	return img
}

func TestContrastDetector(t *testing.T) {
	art := image.Rect(40, 30, 80, 50)
	blocks, err := NewContrastDetector().Detect(page(200, 100, art))
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	// Edges sit on the artwork border and dilation grows them a few pixels
	if got := blocks[0].Rect; !got.Inset(-1).Overlaps(art) || got.Min.X < 30 || got.Max.X > 90 {
		t.Errorf("block %v does not hug artwork %v", got, art)
	}
}

func TestContrastDetectorDownscales(t *testing.T) {
	d := NewContrastDetector()
	d.MaxSide = 100
	art := image.Rect(400, 300, 600, 500)
	blocks, err := d.Detect(page(1000, 800, art))
	if err != nil || len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d (%v)", len(blocks), err)
	}
	got := blocks[0].Rect
	if !got.In(image.Rect(0, 0, 1000, 800)) {
		t.Errorf("block %v outside the page", got)
	}
	if got.Min.X > art.Min.X || got.Max.X < art.Max.X || got.Min.Y > art.Min.Y || got.Max.Y < art.Max.Y {
		t.Errorf("block %v should cover artwork %v in page coordinates", got, art)
	}
}

func TestBlankPageHasNoContent(t *testing.T) {
	img := page(64, 64, image.Rectangle{})
	if _, ok, err := ContentBounds(img, NewContrastDetector(), 4); ok || err != nil {
		t.Errorf("expected no content on a blank page, ok=%v err=%v", ok, err)
	}
	trimmed, err := Trim(img, 4)
	if err != nil || trimmed.Bounds() != img.Bounds() {
		t.Errorf("blank page should be returned unchanged, got %v (%v)", trimmed.Bounds(), err)
	}
}

func TestAlphaDetector(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 50, 40))
	img.Set(10, 5, color.NRGBA{255, 0, 0, 255})
	img.Set(30, 20, color.NRGBA{0, 255, 0, 128})

	blocks, err := NewAlphaDetector().Detect(img)
	if err != nil || len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d (%v)", len(blocks), err)
	}
	if want := image.Rect(10, 5, 31, 21); blocks[0].Rect != want {
		t.Errorf("expected %v, got %v", want, blocks[0].Rect)
	}
}

func TestTrim(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 100, 80))
	draw.Draw(img, image.Rect(20, 30, 40, 35), image.NewUniform(color.NRGBA{0, 0, 255, 255}), image.Point{}, draw.Src)

	trimmed, err := Trim(img, 2)
	if err != nil {
		t.Fatalf("Trim failed: %v", err)
	}
	if want := image.Rect(18, 28, 42, 37); trimmed.Bounds() != want {
		t.Errorf("expected %v, got %v", want, trimmed.Bounds())
	}
	if _, _, b, a := trimmed.At(25, 32).RGBA(); b != 0xffff || a != 0xffff {
		t.Error("trimmed image lost the artwork")
	}

	// Padding never extends past the source
	trimmed, _ = Trim(img, 500)
	if trimmed.Bounds() != img.Bounds() {
		t.Errorf("expected full bounds, got %v", trimmed.Bounds())
	}
}

func TestNewDetector(t *testing.T) {
	for _, variant := range []string{"", "contrast", "alpha"} {
		if _, err := NewDetector(variant); err != nil {
			t.Errorf("variant %q: %v", variant, err)
		}
	}
	if _, err := NewDetector("ocr"); err == nil {
		t.Error("expected error for unknown variant")
	}
}
