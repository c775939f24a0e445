package animation

import "math"

// Easing maps a normalized position in [0,1] to a paced position.
// By convention f(0)=0 and f(1)=1.
type Easing func(t float64) float64

// Linear leaves the position unchanged
func Linear(t float64) float64 {
	return t
}

// Quad is the quadratic ease-in curve
func Quad(t float64) float64 {
	return t * t
}

// Cubic is the cubic ease-in curve
func Cubic(t float64) float64 {
	return t * t * t
}

// Sin is the sinusoidal ease-in curve
func Sin(t float64) float64 {
	return 1 - math.Cos(t*math.Pi/2)
}

// Circle is the circular ease-in curve
func Circle(t float64) float64 {
	return 1 - math.Sqrt(1-t*t)
}

// Exp is the exponential ease-in curve
func Exp(t float64) float64 {
	if t == 0 {
		return 0
	}
	return math.Pow(2, 10*(t-1))
}

// In runs the easing forwards
func In(e Easing) Easing {
	return e
}

// Out mirrors the easing so that it decelerates towards the end
func Out(e Easing) Easing {
	return func(t float64) float64 {
		return 1 - e(1-t)
	}
}

// InOut accelerates through the first half and decelerates through the second
func InOut(e Easing) Easing {
	return func(t float64) float64 {
		if t < 0.5 {
			return e(t*2) / 2
		}
		return 1 - e((1-t)*2)/2
	}
}

// Frequently used compositions
var (
	EaseOutCubic   = Out(Cubic)
	EaseInOutCubic = InOut(Cubic)
)
