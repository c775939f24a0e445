package animation

import (
	"errors"
	"math"
	"testing"

	"github.com/charmbracelet/harmonica"
)

func TestSpringBeforeTrigger(t *testing.T) {
	got, err := EvaluateSpring(-5, 30, SpringConfig{Damping: 150, Stiffness: 200})
	if err != nil {
		t.Fatalf("EvaluateSpring failed: %v", err)
	}
	if got != 0 {
		t.Errorf("expected 0 before trigger, got %v", got)
	}
}

func TestSpringScenario(t *testing.T) {
	s, err := NewSpring(30, SpringConfig{Damping: 150, Stiffness: 200})
	if err != nil {
		t.Fatalf("NewSpring failed: %v", err)
	}

	if got := s.At(0); math.Abs(got) > 1e-9 {
		t.Errorf("At(0): expected ~0, got %v", got)
	}
	if got := s.At(60); math.Abs(got-1) > 1e-3 {
		t.Errorf("At(60): expected ~1, got %v", got)
	}
}

func TestSpringSettles(t *testing.T) {
	s, err := NewSpring(30, Smooth)
	if err != nil {
		t.Fatalf("NewSpring failed: %v", err)
	}

	settle := s.SettleFrames(1e-3)
	if settle > 40 {
		t.Errorf("expected damping=200 stiffness=200 to settle by frame 40, got %d", settle)
	}
	for f := settle; f < 600; f++ {
		if v := s.At(f); math.Abs(v-1) >= 1e-3 {
			t.Fatalf("frame %d after settle frame %d: %v not within 1e-3 of 1", f, settle, v)
		}
	}
}

func TestSpringCriticalCurveIsMonotonic(t *testing.T) {
	s, err := NewSpring(30, Pop)
	if err != nil {
		t.Fatalf("NewSpring failed: %v", err)
	}
	if s.Underdamped() {
		t.Fatal("expected Pop preset to be at least critically damped")
	}

	prev := s.At(0)
	for f := 1; f < 200; f++ {
		v := s.At(f)
		if v < prev || v > 1 {
			t.Fatalf("frame %d: %v (previous %v)", f, v, prev)
		}
		prev = v
	}
}

func TestSpringUnderdampedOvershoots(t *testing.T) {
	s, err := NewSpring(30, DefaultSpringConfig())
	if err != nil {
		t.Fatalf("NewSpring failed: %v", err)
	}

	peak := 0.0
	for f := 0; f < 120; f++ {
		peak = math.Max(peak, s.At(f))
	}
	if peak < 1.05 {
		t.Errorf("expected visible overshoot, peak %v", peak)
	}

	clamped := DefaultSpringConfig()
	clamped.OvershootClamping = true
	c, err := NewSpring(30, clamped)
	if err != nil {
		t.Fatalf("NewSpring failed: %v", err)
	}
	for f := 0; f < 120; f++ {
		if v := c.At(f); v > 1 {
			t.Fatalf("frame %d: clamped spring exceeded 1: %v", f, v)
		}
	}

	settle := s.SettleFrames(1e-3)
	for f := settle; f < settle+300; f++ {
		if v := s.At(f); math.Abs(v-1) >= 1e-3 {
			t.Fatalf("frame %d after settle frame %d: %v", f, settle, v)
		}
	}
}

func TestSpringMatchesSteppedOscillator(t *testing.T) {
	const fps = 30
	cfg := SpringConfig{Damping: 10, Stiffness: 100, Mass: 1}

	s, err := NewSpring(fps, cfg)
	if err != nil {
		t.Fatalf("NewSpring failed: %v", err)
	}

	// omega0 = sqrt(k/m) = 10, zeta = c / (2*sqrt(k*m)) = 0.5
	ref := harmonica.NewSpring(harmonica.FPS(fps), 10, 0.5)
	pos, vel := 0.0, 0.0
	for f := 1; f <= 90; f++ {
		pos, vel = ref.Update(pos, vel, 1)
		if got := s.At(f); math.Abs(got-pos) > 1e-6 {
			t.Fatalf("frame %d: analytic %v, stepped %v", f, got, pos)
		}
	}
}

func TestSpringIsOrderIndependent(t *testing.T) {
	cfg := SpringConfig{Damping: 12, Stiffness: 180}

	cold, err := EvaluateSpring(37, 30, cfg)
	if err != nil {
		t.Fatalf("EvaluateSpring failed: %v", err)
	}

	s, _ := NewSpring(30, cfg)
	for f := 0; f < 37; f++ {
		s.At(f)
	}
	if warm := s.At(37); warm != cold {
		t.Errorf("sequential evaluation %v differs from direct %v", warm, cold)
	}
	for f := 200; f > 37; f-- {
		s.At(f)
	}
	if back := s.At(37); back != cold {
		t.Errorf("reverse evaluation %v differs from direct %v", back, cold)
	}
}

func TestSpringFarFrames(t *testing.T) {
	for _, cfg := range []SpringConfig{Smooth, DefaultSpringConfig(), {Damping: 0.01, Stiffness: 1000}} {
		s, err := NewSpring(30, cfg)
		if err != nil {
			t.Fatalf("NewSpring(%+v) failed: %v", cfg, err)
		}
		for _, f := range []int{10_000, 1_000_000, math.MaxInt32} {
			v := s.At(f)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Errorf("%+v at frame %d: non-finite %v", cfg, f, v)
			}
		}
	}
}

func TestSpringRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		fps  int
		cfg  SpringConfig
	}{
		{"zero fps", 0, Smooth},
		{"negative fps", -30, Smooth},
		{"zero stiffness", 30, SpringConfig{Damping: 10}},
		{"negative stiffness", 30, SpringConfig{Damping: 10, Stiffness: -1}},
		{"zero damping", 30, SpringConfig{Stiffness: 100}},
		{"nan damping", 30, SpringConfig{Damping: math.NaN(), Stiffness: 100}},
		{"negative mass", 30, SpringConfig{Damping: 10, Stiffness: 100, Mass: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewSpring(tt.fps, tt.cfg); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestMotionDelay(t *testing.T) {
	m, err := NewMotion(30, Smooth, 12)
	if err != nil {
		t.Fatalf("NewMotion failed: %v", err)
	}
	if got := m.At(12); got != 0 {
		t.Errorf("expected 0 at the trigger frame, got %v", got)
	}
	if got, want := m.At(20), m.Spring.At(8); got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
	if got, want := m.After(5).At(20), m.Spring.At(3); got != want {
		t.Errorf("After: expected %v, got %v", want, got)
	}
}
