package animation

import (
	"fmt"
	"math"
)

// criticalEpsilon is the distance from a damping ratio of 1 below which the
// oscillator is treated as critically damped.
const criticalEpsilon = 1e-9

// maxSettleFrames bounds SettleFrames for pathological configurations.
const maxSettleFrames = 1 << 20

// SpringConfig describes a damped harmonic oscillator
type SpringConfig struct {
	Damping   float64 `yaml:"damping"`
	Stiffness float64 `yaml:"stiffness"`
	// Mass defaults to 1 when zero
	Mass float64 `yaml:"mass,omitempty"`
	// OvershootClamping caps the result at 1
	OvershootClamping bool `yaml:"overshoot_clamping,omitempty"`
}

// DefaultSpringConfig returns a lightly underdamped, bouncy spring.
func DefaultSpringConfig() SpringConfig {
	return SpringConfig{Damping: 10, Stiffness: 100, Mass: 1}
}

// Spring evaluates a unit-mass-normalized oscillator released from
// displacement 1 towards rest, expressed as progress rising from 0 to 1.
//
// Evaluation is closed form: At depends only on the frame argument and the
// construction parameters, so frames may be evaluated in any order.
type Spring struct {
	cfg    SpringConfig
	fps    int
	zeta   float64 // damping ratio
	omega0 float64 // undamped angular frequency, rad/s
	omega1 float64 // damped angular frequency, rad/s (zeta < 1 only)
}

// NewSpring validates the configuration and precomputes its coefficients.
func NewSpring(fps int, cfg SpringConfig) (*Spring, error) {
	if fps <= 0 {
		return nil, fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, fps)
	}
	if !(cfg.Stiffness > 0) || math.IsInf(cfg.Stiffness, 0) {
		return nil, fmt.Errorf("%w: stiffness must be positive, got %g", ErrInvalidConfig, cfg.Stiffness)
	}
	if !(cfg.Damping > 0) || math.IsInf(cfg.Damping, 0) {
		return nil, fmt.Errorf("%w: damping must be positive, got %g", ErrInvalidConfig, cfg.Damping)
	}
	if cfg.Mass < 0 || math.IsNaN(cfg.Mass) || math.IsInf(cfg.Mass, 0) {
		return nil, fmt.Errorf("%w: mass must be positive, got %g", ErrInvalidConfig, cfg.Mass)
	}
	if cfg.Mass == 0 {
		cfg.Mass = 1
	}

	s := &Spring{
		cfg:    cfg,
		fps:    fps,
		zeta:   cfg.Damping / (2 * math.Sqrt(cfg.Stiffness*cfg.Mass)),
		omega0: math.Sqrt(cfg.Stiffness / cfg.Mass),
	}
	if s.zeta < 1-criticalEpsilon {
		s.omega1 = s.omega0 * math.Sqrt(1-s.zeta*s.zeta)
	}
	return s, nil
}

// EvaluateSpring is the one-shot form of NewSpring(fps, cfg).At(frame).
func EvaluateSpring(frame, fps int, cfg SpringConfig) (float64, error) {
	s, err := NewSpring(fps, cfg)
	if err != nil {
		return 0, err
	}
	return s.At(frame), nil
}

// Config returns the validated configuration (with Mass filled in).
func (s *Spring) Config() SpringConfig {
	return s.cfg
}

// FPS returns the frame rate the spring samples at.
func (s *Spring) FPS() int {
	return s.fps
}

// Underdamped reports whether the curve overshoots 1 before settling.
func (s *Spring) Underdamped() bool {
	return s.omega1 > 0
}

// At returns progress at the given frame offset. Negative offsets mean the
// spring has not been triggered yet and yield 0.
func (s *Spring) At(frame int) float64 {
	if frame <= 0 {
		return 0
	}
	v := 1 - s.displacement(float64(frame)/float64(s.fps))
	if s.cfg.OvershootClamping && v > 1 {
		return 1
	}
	return v
}

// displacement solves the damped oscillator equation for x(0)=1 and zero
// initial velocity. Damping ratios at or above 1 follow the critically damped curve.
func (s *Spring) displacement(t float64) float64 {
	if s.omega1 > 0 {
		decay := s.zeta * s.omega0
		envelope := math.Exp(-decay * t)
		if envelope == 0 {
			return 0
		}
		return envelope * (math.Cos(s.omega1*t) + decay/s.omega1*math.Sin(s.omega1*t))
	}

	wt := s.omega0 * t
	envelope := math.Exp(-wt)
	if envelope == 0 {
		return 0
	}
	return envelope * (1 + wt)
}

// SettleFrames returns the first frame from which the curve stays within
// threshold of 1 for every later frame.
func (s *Spring) SettleFrames(threshold float64) int {
	if !(threshold > 0) {
		threshold = 1e-3
	}

	// The critically damped displacement is monotonically decreasing, and the
	// underdamped one is bounded by its envelope. Both bounds are monotone, so
	// the first frame under the threshold is final.
	bound := func(t float64) float64 {
		if s.omega1 > 0 {
			decay := s.zeta * s.omega0
			amplitude := math.Hypot(1, decay/s.omega1)
			return amplitude * math.Exp(-decay*t)
		}
		wt := s.omega0 * t
		return math.Exp(-wt) * (1 + wt)
	}

	for frame := 0; frame < maxSettleFrames; frame++ {
		if bound(float64(frame)/float64(s.fps)) < threshold {
			return frame
		}
	}
	return maxSettleFrames
}
