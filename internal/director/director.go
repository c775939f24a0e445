// Package director places the composition's scenes on the timeline and
// answers, for any global frame, what should be on screen.
package director

import (
	"fmt"

	"github.com/ivlev/promoreel/internal/config"
	"github.com/ivlev/promoreel/internal/scene"
	"github.com/ivlev/promoreel/internal/timeline"
)

// Director owns the allocated timeline and one scene per segment. It is
// immutable after NewDirector and safe for concurrent use.
type Director struct {
	comp     *config.Composition
	timeline *timeline.Timeline
	scenes   []scene.Scene
}

// NewDirector validates the composition, allocates the timeline once and
// builds every scene. Any configuration error surfaces here, before the
// first frame is rendered.
func NewDirector(comp *config.Composition, assets scene.Assets) (*Director, error) {
	if err := comp.Validate(); err != nil {
		return nil, err
	}
	specs, err := comp.SegmentSpecs()
	if err != nil {
		return nil, err
	}
	tl, err := timeline.Allocate(specs)
	if err != nil {
		return nil, err
	}

	scenes := make([]scene.Scene, len(comp.Segments))
	for i, seg := range comp.Segments {
		s, err := scene.New(seg, comp, assets)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		scenes[i] = s
	}

	return &Director{comp: comp, timeline: tl, scenes: scenes}, nil
}

// Timeline returns the allocated timeline
func (d *Director) Timeline() *timeline.Timeline {
	return d.timeline
}

func (d *Director) Width() int  { return d.comp.Width }
func (d *Director) Height() int { return d.comp.Height }
func (d *Director) FPS() int    { return d.comp.FPS }

// Composition returns the composition the director was built from
func (d *Director) Composition() *config.Composition {
	return d.comp
}

// Compose returns the elements of every segment active at the global frame,
// each built at its own local frame, in timeline order. Frames outside
// [0, Total) compose to nothing.
func (d *Director) Compose(frame int) []scene.Element {
	var els []scene.Element
	for i := 0; i < d.timeline.Len(); i++ {
		seg := d.timeline.Segment(i)
		if !seg.Contains(frame) {
			continue
		}
		els = append(els, d.scenes[i].Build(scene.Frame{
			Local:    seg.Local(frame),
			Duration: seg.Duration,
			FPS:      d.comp.FPS,
			Width:    d.comp.Width,
			Height:   d.comp.Height,
		})...)
	}
	return els
}
