package scene

import (
	"image"
	"strings"
	"unicode/utf8"

	"github.com/ivlev/promoreel/internal/animation"
	"github.com/ivlev/promoreel/internal/config"
)

// titleScene is the brand title card: per-letter title, staggered subtitle
// words, a shimmer sweep and drifting glow blobs.
type titleScene struct {
	name    string
	words   []string
	desc    string
	colors  config.Colors
	logo    image.Image
	pop     *animation.Spring
	letter  *animation.Spring
	word    *animation.Spring
	descIn  animation.Motion
	fadeIn  *animation.Interpolator
	logoIn  *animation.Interpolator
	shimmer *animation.Interpolator
	blobA   *animation.Interpolator
	blobB   *animation.Interpolator
}

func newTitle(seg config.Segment, comp *config.Composition, colors config.Colors, assets Assets) (Scene, error) {
	fps := comp.FPS
	s := &titleScene{
		name:   pick(seg.Title, comp.Brand.Name),
		words:  strings.Fields(pick(seg.Subtitle, comp.Brand.Tagline)),
		desc:   comp.Brand.Description,
		colors: colors,
		logo:   assets.Logo,
	}

	var err error
	if s.pop, err = animation.NewSpring(fps, animation.Pop); err != nil {
		return nil, err
	}
	if s.letter, err = animation.NewSpring(fps, animation.Letter); err != nil {
		return nil, err
	}
	if s.word, err = animation.NewSpring(fps, animation.Word); err != nil {
		return nil, err
	}
	if s.descIn, err = animation.NewMotion(fps, animation.SpringConfig{Damping: 180, Stiffness: 150}, 32); err != nil {
		return nil, err
	}

	eased := animation.InterpolateOptions{
		Easing:           animation.EaseInOutCubic,
		ExtrapolateLeft:  animation.Clamp,
		ExtrapolateRight: animation.Clamp,
	}
	if s.fadeIn, err = animation.NewInterpolator([]float64{0, 10}, []float64{0, 1}, animation.ClampBoth); err != nil {
		return nil, err
	}
	if s.logoIn, err = animation.NewInterpolator([]float64{10, 30}, []float64{0, 1}, animation.ClampBoth); err != nil {
		return nil, err
	}
	if s.shimmer, err = animation.NewInterpolator([]float64{0, 90}, []float64{-400, 400}, eased); err != nil {
		return nil, err
	}
	if s.blobA, err = animation.NewInterpolator([]float64{0, 240}, []float64{40, -20}, eased); err != nil {
		return nil, err
	}
	if s.blobB, err = animation.NewInterpolator([]float64{0, 240}, []float64{-30, 30}, eased); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *titleScene) Build(f Frame) []Element {
	u := f.Unit()
	cx, cy := float64(f.Width)/2, float64(f.Height)/2
	local := float64(f.Local)

	var content []Element

	// Glow blobs sit behind everything else in the card
	content = append(content,
		Circle(cx-560*u, cy-260*u+s.blobA.At(local)*u, 300*u, WithAlpha(s.colors.Accent, 0.08)),
		Circle(cx+520*u, cy+230*u+s.blobB.At(local)*u, 270*u, WithAlpha(s.colors.Text, 0.04)),
	)

	titleY := cy - 110*u
	size := 120 * u
	adv := size * MonoAdvance
	letters := []rune(s.name)
	x := cx - adv*float64(len(letters))/2
	for i, r := range letters {
		a := animation.Unit(s.letter.At(f.Local - i*3))
		if a > 0 {
			content = append(content,
				Label(x+adv*(float64(i)+0.5), titleY, size, string(r), s.colors.Text, FontMonoBold, AlignCenter).
					Fade(a).Move(0, (1-a)*40*u))
		}
	}
	content = append(content,
		Rect(cx+s.shimmer.At(local)*u-90*u, titleY-75*u, 180*u, 150*u, 40*u, WithAlpha(s.colors.Accent, 0.12)))

	content = append(content, s.subtitle(f, cy+30*u)...)

	if p := animation.Unit(s.descIn.At(f.Local)); p > 0 && s.desc != "" {
		content = append(content,
			Label(cx, cy+190*u, 28*u, s.desc, s.colors.Subtle, FontSans, AlignCenter).
				Fade(p).With(Transform{Opacity: 1, Scale: animation.Mix(0.96, 1, p)}))
	}

	pop := s.pop.At(f.Local)
	els := Group(Transform{Opacity: s.fadeIn.At(local), Scale: 0.92 + pop*0.08}, cx, cy, content...)

	if s.logo != nil {
		if o := s.logoIn.At(local); o > 0 {
			b := s.logo.Bounds()
			h := 56 * u
			w := h * float64(b.Dx()) / float64(b.Dy())
			logo := Picture(cx-w/2, float64(f.Height)-48*u-h, w, h, s.logo).
				Fade(o).With(Transform{Opacity: 1, Scale: 0.9 + pop*0.1})
			els = append(els, logo)
		}
	}
	return els
}

// subtitle lays words out on two centred mono lines, the first holding two
// words, each word springing up on its own delay.
func (s *titleScene) subtitle(f Frame, y float64) []Element {
	if len(s.words) == 0 {
		return nil
	}
	u := f.Unit()
	cx := float64(f.Width) / 2
	size := 52 * u
	adv := size * MonoAdvance
	lineGap := size * 1.2

	split := 2
	if split > len(s.words) {
		split = len(s.words)
	}
	lines := [][]string{s.words[:split], s.words[split:]}

	var els []Element
	idx := 0
	for li, line := range lines {
		if len(line) == 0 {
			continue
		}
		width := float64(utf8.RuneCountInString(strings.Join(line, " "))) * adv
		x := cx - width/2
		for _, w := range line {
			p := animation.Unit(s.word.At(f.Local - (16 + idx*2)))
			ww := float64(utf8.RuneCountInString(w)) * adv
			if p > 0 {
				els = append(els,
					Label(x+ww/2, y+float64(li)*lineGap, size, w, s.colors.Text, FontMono, AlignCenter).
						Fade(p).Move(0, (1-p)*26*u))
			}
			x += ww + adv
			idx++
		}
	}
	return els
}
