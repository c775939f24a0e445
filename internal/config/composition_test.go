package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ivlev/promoreel/internal/timeline"
)

func TestDefaultCompositionIsValid(t *testing.T) {
	c := DefaultComposition()
	if err := c.Validate(); err != nil {
		t.Fatalf("default composition invalid: %v", err)
	}

	specs, err := c.SegmentSpecs()
	if err != nil {
		t.Fatalf("SegmentSpecs failed: %v", err)
	}
	want := []timeline.SegmentSpec{
		{Name: "tabs", Frames: 270},
		{Name: "intro", Frames: 240},
		{Name: "metrics", Frames: 165},
		{Name: "traffic", Frames: 240},
		{Name: "referrers", Frames: 300},
		{Name: "destinations", Frames: 300},
		{Name: "benefits", Frames: 420},
		{Name: "solution", Frames: 240},
		{Name: "cta", Frames: 360},
	}
	if diff := cmp.Diff(want, specs); diff != "" {
		t.Errorf("specs mismatch (-want +got):\n%s", diff)
	}
}

func TestSecondsRoundToFrames(t *testing.T) {
	tests := []struct {
		seconds float64
		fps     int
		want    int
	}{
		{8, 30, 240},
		{0.5, 25, 13},
		{1.0 / 3, 30, 10},
		{0, 30, 0},
		{-1, 30, -30},
	}
	for _, tt := range tests {
		s := Segment{Name: "s", Scene: "title", Seconds: seconds(tt.seconds)}
		got, err := s.FrameCount(tt.fps)
		if err != nil {
			t.Fatalf("FrameCount(%v@%d) failed: %v", tt.seconds, tt.fps, err)
		}
		if got != tt.want {
			t.Errorf("FrameCount(%v@%d): expected %d, got %d", tt.seconds, tt.fps, tt.want, got)
		}
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Composition)
	}{
		{"zero fps", func(c *Composition) { c.FPS = 0 }},
		{"odd width", func(c *Composition) { c.Width = 1921 }},
		{"bad colour", func(c *Composition) { c.Brand.Colors.Accent = "#GG0000" }},
		{"duplicate name", func(c *Composition) { c.Segments[1].Name = c.Segments[0].Name }},
		{"missing scene", func(c *Composition) { c.Segments[0].Scene = "" }},
		{"no duration", func(c *Composition) { c.Segments[0].Seconds = nil }},
		{"both durations", func(c *Composition) { c.Segments[0].Frames = frames(10) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultComposition()
			tt.mutate(c)
			if err := c.Validate(); !errors.Is(err, ErrInvalidComposition) {
				t.Errorf("expected ErrInvalidComposition, got %v", err)
			}
		})
	}
}

func TestNegativeDurationReachesSequencer(t *testing.T) {
	c := DefaultComposition()
	c.Segments[2].Frames = frames(-5)
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate should leave durations to the sequencer: %v", err)
	}

	specs, err := c.SegmentSpecs()
	if err != nil {
		t.Fatalf("SegmentSpecs failed: %v", err)
	}
	if _, err := timeline.Allocate(specs); !errors.Is(err, timeline.ErrNegativeDuration) {
		t.Errorf("expected ErrNegativeDuration, got %v", err)
	}
}

func TestLoadCompositionKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "composition.yaml")
	doc := `
fps: 60
brand:
  name: Acme
  colors:
    accent: "#FF0000"
segments:
  - name: hello
    scene: title
    seconds: 2
  - name: bye
    scene: cta
    frames: 45
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadComposition(path)
	if err != nil {
		t.Fatalf("LoadComposition failed: %v", err)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("loaded composition invalid: %v", err)
	}

	if c.Width != 1920 || c.FPS != 60 {
		t.Errorf("expected default width and overridden fps, got %dx%d@%d", c.Width, c.Height, c.FPS)
	}
	if c.Brand.Name != "Acme" || c.Brand.Colors.Background != "#141020" {
		t.Errorf("brand merge failed: %+v", c.Brand)
	}

	specs, _ := c.SegmentSpecs()
	want := []timeline.SegmentSpec{{Name: "hello", Frames: 120}, {Name: "bye", Frames: 45}}
	if diff := cmp.Diff(want, specs); diff != "" {
		t.Errorf("specs mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteThenLoadComposition(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	orig := DefaultComposition()
	if err := WriteComposition(orig, path); err != nil {
		t.Fatalf("WriteComposition failed: %v", err)
	}
	loaded, err := LoadComposition(path)
	if err != nil {
		t.Fatalf("LoadComposition failed: %v", err)
	}
	if diff := cmp.Diff(orig, loaded); diff != "" {
		t.Errorf("composition changed on disk (-want +got):\n%s", diff)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#141020", color.NRGBA{R: 0x14, G: 0x10, B: 0x20, A: 0xff}},
		{"E1FF82", color.NRGBA{R: 0xe1, G: 0xff, B: 0x82, A: 0xff}},
		{"#7C3AED33", color.NRGBA{R: 0x7c, G: 0x3a, B: 0xed, A: 0x33}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Fatalf("ParseColor(%q) failed: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q): expected %v, got %v", tt.in, tt.want, got)
		}
	}

	for _, bad := range []string{"", "#123", "#12345G", "rgba(1,2,3,4)"} {
		if _, err := ParseColor(bad); !errors.Is(err, ErrInvalidComposition) {
			t.Errorf("ParseColor(%q): expected error, got %v", bad, err)
		}
	}
}
