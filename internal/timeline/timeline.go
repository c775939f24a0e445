// Package timeline allocates named, fixed-length segments onto one
// continuous frame axis starting at 0.
package timeline

import (
	"errors"
	"fmt"
	"math"
)

// ErrNegativeDuration is returned by Allocate for a segment shorter than zero frames
var ErrNegativeDuration = errors.New("negative segment duration")

// ErrTimelineOverflow is returned by Allocate when the total length does not fit in an int
var ErrTimelineOverflow = errors.New("timeline length overflows")

// SegmentSpec is a named duration supplied by configuration
type SegmentSpec struct {
	Name   string `yaml:"name"`
	Frames int    `yaml:"frames"`
}

// Segment is a SegmentSpec placed on the timeline
type Segment struct {
	Name     string `yaml:"name"`
	Start    int    `yaml:"start"`
	Duration int    `yaml:"duration"`
}

// End returns the first frame after the segment
func (s Segment) End() int {
	return s.Start + s.Duration
}

// Contains reports whether frame lies in [Start, End)
func (s Segment) Contains(frame int) bool {
	return frame >= s.Start && frame < s.End()
}

// Local converts a global frame into a frame relative to the segment start.
// The result may be negative or exceed Duration.
func (s Segment) Local(frame int) int {
	return frame - s.Start
}

// Timeline is the immutable result of Allocate
type Timeline struct {
	segments []Segment
	total    int
}

// Allocate places specs back to back in list order. Zero-length segments get
// a degenerate range at the running offset.
func Allocate(specs []SegmentSpec) (*Timeline, error) {
	segments := make([]Segment, 0, len(specs))
	start := 0
	for i, spec := range specs {
		if spec.Frames < 0 {
			return nil, fmt.Errorf("segment %d (%q): %w: %d frames", i, spec.Name, ErrNegativeDuration, spec.Frames)
		}
		if start > math.MaxInt-spec.Frames {
			return nil, fmt.Errorf("segment %d (%q): %w: %d + %d frames", i, spec.Name, ErrTimelineOverflow, start, spec.Frames)
		}
		segments = append(segments, Segment{Name: spec.Name, Start: start, Duration: spec.Frames})
		start += spec.Frames
	}
	return &Timeline{segments: segments, total: start}, nil
}

// Segments returns a copy of the allocated segments in order
func (t *Timeline) Segments() []Segment {
	return append([]Segment(nil), t.segments...)
}

// Len returns the number of segments, including zero-length ones
func (t *Timeline) Len() int {
	return len(t.segments)
}

// Segment returns the i-th allocated segment
func (t *Timeline) Segment(i int) Segment {
	return t.segments[i]
}

// Total returns the timeline length in frames
func (t *Timeline) Total() int {
	return t.total
}

// Active returns the segments covering frame, in timeline order.
func (t *Timeline) Active(frame int) []Segment {
	var active []Segment
	for _, s := range t.segments {
		if s.Contains(frame) {
			active = append(active, s)
		}
	}
	return active
}

// Lookup finds the first segment with the given name
func (t *Timeline) Lookup(name string) (Segment, bool) {
	for _, s := range t.segments {
		if s.Name == name {
			return s, true
		}
	}
	return Segment{}, false
}

// TotalDuration sums segment durations
func TotalDuration(segments []Segment) int {
	total := 0
	for _, s := range segments {
		total += s.Duration
	}
	return total
}

// LocalFrame is Segment.Local in free-function form
func LocalFrame(s Segment, frame int) int {
	return s.Local(frame)
}
