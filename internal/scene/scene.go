package scene

import (
	"fmt"
	"image"
	"sort"

	"github.com/ivlev/promoreel/internal/animation"
	"github.com/ivlev/promoreel/internal/config"
)

// Frame is everything a scene may depend on when building one frame
type Frame struct {
	Local    int // frame relative to the segment start
	Duration int // segment length in frames
	FPS      int
	Width    int
	Height   int
}

// Unit is the pixel size of one layout unit (1px at 1080 lines)
func (f Frame) Unit() float64 {
	return float64(f.Height) / 1080
}

// Scene builds the elements of one segment. Build must be a pure function of
// its argument so that frames can be rendered in any order.
type Scene interface {
	Build(f Frame) []Element
}

// Assets are decoded external resources shared by scenes
type Assets struct {
	Logo image.Image
}

type factory func(seg config.Segment, comp *config.Composition, colors config.Colors, assets Assets) (Scene, error)

var factories = map[string]factory{
	"chaos":        newChaos,
	"title":        newTitle,
	"metrics":      newMetrics,
	"traffic":      newTraffic,
	"referrers":    newReferrers,
	"comparison":   newComparison,
	"destinations": newDestinations,
	"solution":     newSolution,
	"cta":          newCTA,
}

// Kinds lists the registered scene kinds
func Kinds() []string {
	kinds := make([]string, 0, len(factories))
	for k := range factories {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// New builds the scene for seg. All springs and interpolators are validated
// here so that rendering never meets a configuration error.
func New(seg config.Segment, comp *config.Composition, assets Assets) (Scene, error) {
	f, ok := factories[seg.Scene]
	if !ok {
		return nil, fmt.Errorf("segment %q: unknown scene kind %q (known: %v)", seg.Name, seg.Scene, Kinds())
	}
	colors, err := comp.Brand.Colors.Resolve()
	if err != nil {
		return nil, err
	}
	s, err := f(seg, comp, colors, assets)
	if err != nil {
		return nil, fmt.Errorf("segment %q: %w", seg.Name, err)
	}
	return s, nil
}

// headline is the animated heading shared by most scenes
type headline struct {
	title, subtitle string
	colors          config.Colors
	titleIn         animation.Motion
	subIn           animation.Motion
}

func newHeadline(fps int, title, subtitle string, colors config.Colors, delay int) (headline, error) {
	tm, err := animation.NewMotion(fps, animation.Smooth, delay)
	if err != nil {
		return headline{}, err
	}
	sm, err := animation.NewMotion(fps, animation.Smooth, delay+15)
	if err != nil {
		return headline{}, err
	}
	return headline{title: title, subtitle: subtitle, colors: colors, titleIn: tm, subIn: sm}, nil
}

// build places the heading at vertical position y
func (h headline) build(f Frame, y float64) []Element {
	u := f.Unit()
	cx := float64(f.Width) / 2
	var els []Element
	if p := h.titleIn.At(f.Local); p > 0 && h.title != "" {
		els = append(els, Label(cx, y, 64*u, h.title, h.colors.Text, FontSansBold, AlignCenter).
			Fade(animation.Unit(p)).Move(0, animation.Mix(40*u, 0, p)))
	}
	if p := h.subIn.At(f.Local); p > 0 && h.subtitle != "" {
		els = append(els, Label(cx, y+70*u, 30*u, h.subtitle, h.colors.Subtle, FontSans, AlignCenter).
			Fade(animation.Unit(p)).Move(0, animation.Mix(30*u, 0, p)))
	}
	return els
}

// pick returns the first non-empty string
func pick(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
