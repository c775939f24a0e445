package config

// Config holds render settings that come from the command line rather than
// from the composition file.
type Config struct {
	CompositionPath string
	OutputVideo     string
	Workers         int
	VideoEncoder    string
	Quality         int
	ShowStats       bool
	KeepTemp        bool
	BuildVersion    string
}

// SegmentParams describes one encoded chunk of the timeline
type SegmentParams struct {
	Width, Height int
	FPS           int
	StartFrame    int
	Frames        int
	Name          string
	Index         int
}
