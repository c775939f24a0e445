package animation

import (
	"errors"
	"math"
	"testing"
)

func TestInterpolateMidpoint(t *testing.T) {
	got, err := Interpolate(15, []float64{0, 30}, []float64{0, 1}, ClampBoth)
	if err != nil {
		t.Fatalf("Interpolate failed: %v", err)
	}
	if got != 0.5 {
		t.Errorf("expected 0.5, got %v", got)
	}
}

func TestInterpolateExactBreakpoints(t *testing.T) {
	in := MustInterpolator([]float64{0.1, 0.7, 1.3}, []float64{0.3, 0.9, 0.2}, InterpolateOptions{})

	tests := []struct {
		x, want float64
	}{
		{0.1, 0.3},
		{0.7, 0.9},
		{1.3, 0.2},
	}
	for _, tt := range tests {
		if got := in.At(tt.x); got != tt.want {
			t.Errorf("At(%v): expected exactly %v, got %v", tt.x, tt.want, got)
		}
	}
}

func TestInterpolateExtrapolation(t *testing.T) {
	input := []float64{0, 30}
	output := []float64{0, 1}

	tests := []struct {
		name string
		opts InterpolateOptions
		x    float64
		want float64
	}{
		{"clamp left", ClampBoth, -10, 0},
		{"clamp right", ClampBoth, 45, 1},
		{"extend left", InterpolateOptions{}, -10, -10.0 / 30},
		{"extend right", InterpolateOptions{}, 45, 1.5},
		{"identity left", InterpolateOptions{ExtrapolateLeft: Identity}, -10, -10},
		{"identity right", InterpolateOptions{ExtrapolateRight: Identity}, 45, 45},
		{"clamp left only", InterpolateOptions{ExtrapolateLeft: Clamp}, 60, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Interpolate(tt.x, input, output, tt.opts)
			if err != nil {
				t.Fatalf("Interpolate failed: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("At(%v): expected %v, got %v", tt.x, tt.want, got)
			}
		})
	}
}

func TestInterpolateMultiSegment(t *testing.T) {
	in := MustInterpolator([]float64{0, 10, 20}, []float64{0, 100, 50}, ClampBoth)

	tests := []struct {
		x, want float64
	}{
		{-5, 0},
		{5, 50},
		{10, 100},
		{15, 75},
		{25, 50},
	}
	for _, tt := range tests {
		if got := in.At(tt.x); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("At(%v): expected %v, got %v", tt.x, tt.want, got)
		}
	}
}

func TestInterpolateSinglePoint(t *testing.T) {
	in := MustInterpolator([]float64{4}, []float64{7}, InterpolateOptions{})
	for _, x := range []float64{-100, 4, 1e9} {
		if got := in.At(x); got != 7 {
			t.Errorf("At(%v): expected 7, got %v", x, got)
		}
	}
}

func TestInterpolateEasing(t *testing.T) {
	in := MustInterpolator([]float64{0, 1}, []float64{0, 1}, InterpolateOptions{Easing: EaseOutCubic})
	if got := in.At(0.5); math.Abs(got-0.875) > 1e-12 {
		t.Errorf("expected 0.875, got %v", got)
	}
	if got := in.At(1); got != 1 {
		t.Errorf("expected exact 1 at the breakpoint, got %v", got)
	}
}

func TestEasedExtensionStaysLinear(t *testing.T) {
	tests := []struct {
		name          string
		input, output []float64
		easing        Easing
		x, want       float64
	}{
		{"circle right", []float64{0, 30}, []float64{0, 1}, Out(Circle), 90, 3},
		{"circle left", []float64{0, 30}, []float64{0, 1}, Out(Circle), -30, -1},
		{"exp flat range", []float64{0, 1}, []float64{5, 5}, Exp, 200, 5},
		{"cubic right", []float64{0, 120}, []float64{0, 100}, EaseOutCubic, 240, 200},
		{"in-range eased", []float64{0, 30}, []float64{0, 1}, Out(Circle), 15, math.Sqrt(0.75)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := MustInterpolator(tt.input, tt.output, InterpolateOptions{Easing: tt.easing})
			got := in.At(tt.x)
			if math.IsNaN(got) || math.IsInf(got, 0) {
				t.Fatalf("At(%v) is not finite: %v", tt.x, got)
			}
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("At(%v): expected %v, got %v", tt.x, tt.want, got)
			}
		})
	}
}

func TestInterpolateRejectsInvalidRanges(t *testing.T) {
	tests := []struct {
		name          string
		input, output []float64
		opts          InterpolateOptions
	}{
		{"empty", nil, nil, InterpolateOptions{}},
		{"length mismatch", []float64{0, 1}, []float64{0}, InterpolateOptions{}},
		{"equal breakpoints", []float64{0, 0}, []float64{0, 1}, InterpolateOptions{}},
		{"decreasing", []float64{0, 10, 5}, []float64{0, 1, 2}, InterpolateOptions{}},
		{"nan input", []float64{0, math.NaN()}, []float64{0, 1}, InterpolateOptions{}},
		{"inf output", []float64{0, 1}, []float64{0, math.Inf(1)}, InterpolateOptions{}},
		{"unknown extrapolation", []float64{0, 1}, []float64{0, 1}, InterpolateOptions{ExtrapolateRight: Extrapolation(9)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewInterpolator(tt.input, tt.output, tt.opts)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestInterpolatorCopiesBreakpoints(t *testing.T) {
	input := []float64{0, 10}
	output := []float64{0, 1}
	in := MustInterpolator(input, output, InterpolateOptions{})

	input[1] = 1000
	output[1] = 1000

	if got := in.At(10); got != 1 {
		t.Errorf("caller mutation leaked into interpolator: got %v", got)
	}
}
