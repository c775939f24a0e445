package director

import (
	"time"

	"github.com/ivlev/promoreel/internal/timeline"
)

// Scenario is the exported form of an allocated timeline
type Scenario struct {
	Version     string  `yaml:"version"`
	Generated   string  `yaml:"generated,omitempty"`
	FPS         int     `yaml:"fps"`
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	TotalFrames int     `yaml:"total_frames"`
	Seconds     float64 `yaml:"seconds"`
	Entries     []Entry `yaml:"segments"`
}

// Entry is one allocated segment with its scene kind
type Entry struct {
	Name     string  `yaml:"name"`
	Scene    string  `yaml:"scene"`
	Start    int     `yaml:"start"`
	Duration int     `yaml:"duration"`
	From     float64 `yaml:"from_seconds"` // start time in seconds
	Length   float64 `yaml:"length_seconds"`
}

// Segment converts the entry back into a timeline segment
func (e Entry) Segment() timeline.Segment {
	return timeline.Segment{Name: e.Name, Start: e.Start, Duration: e.Duration}
}

// Scenario describes the director's timeline for export.
func (d *Director) Scenario() *Scenario {
	fps := float64(d.comp.FPS)
	sc := &Scenario{
		Version:     "1.0",
		Generated:   time.Now().Format(time.RFC3339),
		FPS:         d.comp.FPS,
		Width:       d.comp.Width,
		Height:      d.comp.Height,
		TotalFrames: d.timeline.Total(),
		Seconds:     float64(d.timeline.Total()) / fps,
	}
	for i, seg := range d.timeline.Segments() {
		sc.Entries = append(sc.Entries, Entry{
			Name:     seg.Name,
			Scene:    d.comp.Segments[i].Scene,
			Start:    seg.Start,
			Duration: seg.Duration,
			From:     float64(seg.Start) / fps,
			Length:   float64(seg.Duration) / fps,
		})
	}
	return sc
}

// Segments returns the entries as timeline segments
func (s *Scenario) Segments() []timeline.Segment {
	segs := make([]timeline.Segment, len(s.Entries))
	for i, e := range s.Entries {
		segs[i] = e.Segment()
	}
	return segs
}
