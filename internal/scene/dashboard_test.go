package scene

import (
	"image"
	"math"
	"testing"

	"github.com/ivlev/promoreel/internal/config"
)

func buildScene(t *testing.T, kind string, assets Assets, comp *config.Composition, local int) []Element {
	t.Helper()
	s, err := New(config.Segment{Name: kind, Scene: kind}, comp, assets)
	if err != nil {
		t.Fatalf("New(%s) failed: %v", kind, err)
	}
	return s.Build(Frame{Local: local, Duration: 300, FPS: comp.FPS, Width: comp.Width, Height: comp.Height})
}

func texts(els []Element) map[string]bool {
	out := make(map[string]bool)
	for _, e := range els {
		if e.Kind == KindText {
			out[e.Text] = true
		}
	}
	return out
}

func countKind(els []Element, k Kind) int {
	n := 0
	for _, e := range els {
		if e.Kind == k {
			n++
		}
	}
	return n
}

func TestReferrerRowsSpringInOneByOne(t *testing.T) {
	comp := config.DefaultComposition()

	// Rows trigger 8 frames apart starting at local 90
	got := texts(buildScene(t, "referrers", Assets{}, comp, 107))
	for _, source := range []string{"google.com", "github.com", "reddit.com"} {
		if !got[source] {
			t.Errorf("expected row %q at frame 107", source)
		}
	}
	if got["facebook.com"] {
		t.Error("facebook.com should not be visible before frame 114")
	}

	all := texts(buildScene(t, "referrers", Assets{}, comp, 250))
	for _, r := range comp.Referrers {
		if !all[r.Source] {
			t.Errorf("expected row %q once settled", r.Source)
		}
	}
}

func TestReferrersCaptionTiming(t *testing.T) {
	comp := config.DefaultComposition()
	if texts(buildScene(t, "referrers", Assets{}, comp, 150))[referrersCaption] {
		t.Error("caption should not show at its trigger frame")
	}
	if !texts(buildScene(t, "referrers", Assets{}, comp, 165))[referrersCaption] {
		t.Error("expected caption after frame 150")
	}
}

func TestReferrerRowsAreCapped(t *testing.T) {
	comp := config.DefaultComposition()
	comp.Referrers = nil
	for i := 0; i < 12; i++ {
		comp.Referrers = append(comp.Referrers, config.Referrer{Source: string(rune('a'+i)) + ".example", Visitors: i})
	}
	got := texts(buildScene(t, "referrers", Assets{}, comp, 299))
	if !got["h.example"] {
		t.Error("expected the eighth row")
	}
	if got["i.example"] {
		t.Errorf("expected at most %d rows", maxReferrerRows)
	}
}

func TestInitial(t *testing.T) {
	tests := map[string]string{
		"google.com":     "G",
		"www.google.com": "G",
		"écho.fr":        "É",
		"":               "?",
	}
	for in, want := range tests {
		if got := initial(in); got != want {
			t.Errorf("initial(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestTrafficBars(t *testing.T) {
	s := &trafficScene{colors: testColors(t)}

	// Settled: all page views, visitors trail at 85%
	els := s.bars(1, 0, 0, 240, 130, 1)
	if rects := countKind(els, KindRect); rects != 24+20 {
		t.Errorf("expected 44 bars, got %d", rects)
	}
	if got := countKind(els, KindText); got != 4 {
		t.Errorf("expected 4 hour labels, got %d", got)
	}
	// 45 of 60 on a 100px chart
	if h := els[0].H; math.Abs(h-75) > 1e-9 {
		t.Errorf("expected first bar height 75, got %v", h)
	}

	// Each series keeps at least its first point
	if rects := countKind(s.bars(0.01, 0, 0, 240, 130, 1), KindRect); rects != 2 {
		t.Errorf("expected 2 bars at the start, got %d", rects)
	}
}

func TestTrafficChartAndLogo(t *testing.T) {
	comp := config.DefaultComposition()
	logo := Assets{Logo: image.NewRGBA(image.Rect(0, 0, 40, 20))}

	if texts(buildScene(t, "traffic", logo, comp, 50))["0:00"] {
		t.Error("chart should not show at its trigger frame")
	}
	if !texts(buildScene(t, "traffic", logo, comp, 70))["0:00"] {
		t.Error("expected the chart after frame 50")
	}

	if n := countKind(buildScene(t, "traffic", logo, comp, 5), KindImage); n != 0 {
		t.Errorf("logo should be hidden before frame 10, got %d images", n)
	}
	if n := countKind(buildScene(t, "traffic", logo, comp, 40), KindImage); n != 1 {
		t.Errorf("expected the logo badge, got %d images", n)
	}
	if n := countKind(buildScene(t, "traffic", Assets{}, comp, 40), KindImage); n != 0 {
		t.Errorf("expected no image without a logo, got %d", n)
	}

	got := texts(buildScene(t, "traffic", Assets{}, comp, 200))
	if !got["10,321"] || !got["0.0%"] {
		t.Errorf("expected formatted metric values, got %v", got)
	}
}

func TestSolutionBrandMark(t *testing.T) {
	comp := config.DefaultComposition()

	if !texts(buildScene(t, "solution", Assets{}, comp, 60))[comp.Brand.Name] {
		t.Error("expected the brand name when there is no logo")
	}

	logo := Assets{Logo: image.NewRGBA(image.Rect(0, 0, 40, 20))}
	var mark *Element
	for _, e := range buildScene(t, "solution", logo, comp, 200) {
		if e.Kind == KindImage {
			mark = &e
		}
	}
	if mark == nil {
		t.Fatal("expected the logo image")
	}
	if math.Abs(mark.W-2*mark.H) > 1e-9 {
		t.Errorf("logo aspect not kept: %vx%v", mark.W, mark.H)
	}
}

func TestSolutionShineKeepsTurning(t *testing.T) {
	s, err := newSolution(config.Segment{}, config.DefaultComposition(), testColors(t), Assets{})
	if err != nil {
		t.Fatal(err)
	}
	sol := s.(*solutionScene)
	for _, tt := range []struct{ frame, want float64 }{{0, 0}, {120, 180}, {480, 720}} {
		if got := sol.shine.At(tt.frame); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("shine(%v): expected %v, got %v", tt.frame, tt.want, got)
		}
	}

	// Orbs swell in on delayed springs
	if n := countKind(sol.background(Frame{Local: 0, FPS: 30, Width: 1920, Height: 1080}, 960, 540, 1), KindCircle); n != 2 {
		t.Errorf("expected only the shine highlights at frame 0, got %d circles", n)
	}
	if n := countKind(sol.background(Frame{Local: 200, FPS: 30, Width: 1920, Height: 1080}, 960, 540, 1), KindCircle); n != 5 {
		t.Errorf("expected three orbs and two highlights, got %d circles", n)
	}
}
