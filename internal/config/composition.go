package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ivlev/promoreel/internal/timeline"
)

// ErrInvalidComposition is wrapped by composition validation errors
var ErrInvalidComposition = errors.New("invalid composition")

// Composition is the YAML document describing the whole video
type Composition struct {
	Width        int        `yaml:"width"`
	Height       int        `yaml:"height"`
	FPS          int        `yaml:"fps"`
	Brand        Brand      `yaml:"brand"`
	Metrics      Metrics    `yaml:"metrics"`
	Features     []Feature  `yaml:"features,omitempty"`
	Destinations []string   `yaml:"destinations,omitempty"`
	Referrers    []Referrer `yaml:"referrers,omitempty"`
	Segments     []Segment  `yaml:"segments"`
}

// Brand carries copy and colours shared by every scene
type Brand struct {
	Name        string  `yaml:"name"`
	Tagline     string  `yaml:"tagline"`
	Description string  `yaml:"description"`
	URL         string  `yaml:"url"`
	Logo        string  `yaml:"logo,omitempty"` // PNG, JPEG or PDF
	Colors      Palette `yaml:"colors"`
}

// Metrics are the dashboard numbers shown by the metrics scene
type Metrics struct {
	Visitors    int     `yaml:"visitors"`
	PageViews   int     `yaml:"page_views"`
	BounceRate  float64 `yaml:"bounce_rate"`
	TotalEvents int     `yaml:"total_events"`
}

// Feature is one row of the comparison scene
type Feature struct {
	Name    string `yaml:"name"`
	Without string `yaml:"without"`
	With    string `yaml:"with"`
}

// Referrer is one row of the referrers table
type Referrer struct {
	Source   string `yaml:"source"`
	Visitors int    `yaml:"visitors"`
}

// Segment is one entry of the ordered scene list. Exactly one of Frames and
// Seconds is set.
type Segment struct {
	Name     string   `yaml:"name"`
	Scene    string   `yaml:"scene"`
	Frames   *int     `yaml:"frames,omitempty"`
	Seconds  *float64 `yaml:"seconds,omitempty"`
	Title    string   `yaml:"title,omitempty"`
	Subtitle string   `yaml:"subtitle,omitempty"`
}

// FrameCount resolves the segment length at the given frame rate.
func (s Segment) FrameCount(fps int) (int, error) {
	switch {
	case s.Frames != nil && s.Seconds != nil:
		return 0, fmt.Errorf("%w: segment %q sets both frames and seconds", ErrInvalidComposition, s.Name)
	case s.Frames != nil:
		return *s.Frames, nil
	case s.Seconds != nil:
		if math.IsNaN(*s.Seconds) || math.IsInf(*s.Seconds, 0) {
			return 0, fmt.Errorf("%w: segment %q has non-finite seconds", ErrInvalidComposition, s.Name)
		}
		return int(math.Round(*s.Seconds * float64(fps))), nil
	default:
		return 0, fmt.Errorf("%w: segment %q needs frames or seconds", ErrInvalidComposition, s.Name)
	}
}

// Validate checks everything that can be checked without building scenes.
// Segment lengths are left to the sequencer, which rejects negative ones.
func (c *Composition) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidComposition, c.Width, c.Height)
	}
	if c.Width%2 != 0 || c.Height%2 != 0 {
		return fmt.Errorf("%w: yuv420p needs even dimensions, got %dx%d", ErrInvalidComposition, c.Width, c.Height)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidComposition, c.FPS)
	}
	if _, err := c.Brand.Colors.Resolve(); err != nil {
		return err
	}

	seen := make(map[string]bool, len(c.Segments))
	for i, s := range c.Segments {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			return fmt.Errorf("%w: segment %d has no name", ErrInvalidComposition, i)
		}
		if seen[name] {
			return fmt.Errorf("%w: duplicate segment %q", ErrInvalidComposition, name)
		}
		seen[name] = true
		if strings.TrimSpace(s.Scene) == "" {
			return fmt.Errorf("%w: segment %q has no scene", ErrInvalidComposition, name)
		}
		if _, err := s.FrameCount(c.FPS); err != nil {
			return err
		}
	}
	return nil
}

// SegmentSpecs converts the segment list into sequencer input.
func (c *Composition) SegmentSpecs() ([]timeline.SegmentSpec, error) {
	specs := make([]timeline.SegmentSpec, 0, len(c.Segments))
	for _, s := range c.Segments {
		frames, err := s.FrameCount(c.FPS)
		if err != nil {
			return nil, err
		}
		specs = append(specs, timeline.SegmentSpec{Name: s.Name, Frames: frames})
	}
	return specs, nil
}

// LoadComposition reads a composition from a YAML file. Missing fields keep
// their DefaultComposition values.
func LoadComposition(path string) (*Composition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	c := DefaultComposition()
	// A file that lists its own segments replaces the default list entirely
	c.Segments = nil
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}

// WriteComposition writes a composition to a YAML file
func WriteComposition(c *Composition, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
