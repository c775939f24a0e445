package animation

import (
	"fmt"
	"math"
)

// Extrapolation controls the result for inputs outside the input range
type Extrapolation int

const (
	// Extend continues the slope of the nearest sub-interval
	Extend Extrapolation = iota
	// Clamp holds the nearest endpoint output
	Clamp
	// Identity returns the input unchanged
	Identity
)

func (e Extrapolation) String() string {
	switch e {
	case Extend:
		return "extend"
	case Clamp:
		return "clamp"
	case Identity:
		return "identity"
	default:
		return fmt.Sprintf("extrapolation(%d)", int(e))
	}
}

// InterpolateOptions tunes an Interpolator. The zero value is linear with
// extend on both sides.
type InterpolateOptions struct {
	Easing           Easing
	ExtrapolateLeft  Extrapolation
	ExtrapolateRight Extrapolation
}

// ClampBoth is the common options set that holds both endpoints
var ClampBoth = InterpolateOptions{ExtrapolateLeft: Clamp, ExtrapolateRight: Clamp}

// Interpolator maps an input scalar through piecewise-linear breakpoints.
// It is immutable and safe for concurrent use.
type Interpolator struct {
	input  []float64
	output []float64
	opts   InterpolateOptions
}

// NewInterpolator validates the breakpoints and returns an Interpolator.
func NewInterpolator(input, output []float64, opts InterpolateOptions) (*Interpolator, error) {
	if len(input) == 0 {
		return nil, fmt.Errorf("%w: input range is empty", ErrInvalidConfig)
	}
	if len(input) != len(output) {
		return nil, fmt.Errorf("%w: input range has %d points, output range has %d",
			ErrInvalidConfig, len(input), len(output))
	}
	for i, x := range input {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("%w: input[%d] is not finite", ErrInvalidConfig, i)
		}
		if i > 0 && x <= input[i-1] {
			return nil, fmt.Errorf("%w: input range must be strictly increasing (input[%d]=%g, input[%d]=%g)",
				ErrInvalidConfig, i-1, input[i-1], i, x)
		}
	}
	for i, y := range output {
		if math.IsNaN(y) || math.IsInf(y, 0) {
			return nil, fmt.Errorf("%w: output[%d] is not finite", ErrInvalidConfig, i)
		}
	}
	for _, e := range []Extrapolation{opts.ExtrapolateLeft, opts.ExtrapolateRight} {
		if e < Extend || e > Identity {
			return nil, fmt.Errorf("%w: unknown %s", ErrInvalidConfig, e)
		}
	}

	in := &Interpolator{
		input:  append([]float64(nil), input...),
		output: append([]float64(nil), output...),
		opts:   opts,
	}
	return in, nil
}

// MustInterpolator is NewInterpolator for fixed, known-good breakpoints.
// It panics on invalid input.
func MustInterpolator(input, output []float64, opts InterpolateOptions) *Interpolator {
	in, err := NewInterpolator(input, output, opts)
	if err != nil {
		panic(err)
	}
	return in
}

// Interpolate is the one-shot form of NewInterpolator(...).At(x).
func Interpolate(x float64, input, output []float64, opts InterpolateOptions) (float64, error) {
	in, err := NewInterpolator(input, output, opts)
	if err != nil {
		return 0, err
	}
	return in.At(x), nil
}

// At evaluates the mapping at x.
func (in *Interpolator) At(x float64) float64 {
	if len(in.input) == 1 {
		return in.output[0]
	}

	k := in.segment(x)
	x0, x1 := in.input[k], in.input[k+1]
	y0, y1 := in.output[k], in.output[k+1]

	switch {
	case x == x0:
		return y0
	case x == x1:
		return y1
	case x < x0:
		switch in.opts.ExtrapolateLeft {
		case Clamp:
			return y0
		case Identity:
			return x
		}
	case x > x1:
		switch in.opts.ExtrapolateRight {
		case Clamp:
			return y1
		case Identity:
			return x
		}
	}

	t := (x - x0) / (x1 - x0)
	// Easing is defined on [0,1] only; extension continues the linear slope
	if in.opts.Easing != nil && t >= 0 && t <= 1 {
		t = in.opts.Easing(t)
	}
	return y0 + t*(y1-y0)
}

// segment returns the index k of the sub-interval [input[k], input[k+1]]
// used for x. Inputs outside the range use the boundary interval.
func (in *Interpolator) segment(x float64) int {
	last := len(in.input) - 2
	for k := 0; k < last; k++ {
		if x <= in.input[k+1] {
			return k
		}
	}
	return last
}
