package animation

// Tuned spring presets. The pairs are visual tuning constants rather than
// physically meaningful values.
var (
	// Snappy settles quickly without overshoot; used for rows and chips
	Snappy = SpringConfig{Damping: 200, Stiffness: 300}
	// Smooth is the standard card entrance
	Smooth = SpringConfig{Damping: 200, Stiffness: 200}
	// Soft is slightly looser than Smooth
	Soft = SpringConfig{Damping: 150, Stiffness: 200}
	// Pop is the container bump used by title cards and logos
	Pop = SpringConfig{Damping: 180, Stiffness: 120}
	// Letter drives per-letter title entrances
	Letter = SpringConfig{Damping: 180, Stiffness: 160}
	// Word drives staggered subtitle words
	Word = SpringConfig{Damping: 170, Stiffness: 140}
	// Drift is a slow settle for decorative layers
	Drift = SpringConfig{Damping: 250, Stiffness: 80}
)

// Motion binds a spring to the local frame at which it triggers.
type Motion struct {
	Spring *Spring
	Delay  int
}

// NewMotion builds a Motion from a config and a trigger delay in frames.
func NewMotion(fps int, cfg SpringConfig, delay int) (Motion, error) {
	s, err := NewSpring(fps, cfg)
	if err != nil {
		return Motion{}, err
	}
	return Motion{Spring: s, Delay: delay}, nil
}

// At evaluates the spring at local - Delay.
func (m Motion) At(local int) float64 {
	return m.Spring.At(local - m.Delay)
}

// After returns a copy of m triggered extra frames later.
func (m Motion) After(extra int) Motion {
	m.Delay += extra
	return m
}

// Mix linearly maps progress p from [0,1] onto [from,to] without clamping.
func Mix(from, to, p float64) float64 {
	return from + (to-from)*p
}

// Unit clamps p into [0,1].
func Unit(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}
