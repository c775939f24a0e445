package engine

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/ivlev/promoreel/internal/director"
	"github.com/ivlev/promoreel/internal/effects"
	"github.com/ivlev/promoreel/internal/renderer"
	"github.com/ivlev/promoreel/internal/system"
)

// Длительность общего проявления из фона в начале ролика
const fadeInFrames = 30

// Layers are the frame-wide effects painted below and above the scene
// elements. They are immutable and shared by all workers.
type Layers struct {
	Below effects.Chain
	Above effects.Chain
}

// NewLayers builds the backdrop and the opening fade for the director's canvas
func NewLayers(d *director.Director) (Layers, error) {
	colors, err := d.Composition().Brand.Colors.Resolve()
	if err != nil {
		return Layers{}, err
	}
	backdrop, err := effects.NewBackdrop(d.Width(), d.Height(), colors)
	if err != nil {
		return Layers{}, err
	}
	fade, err := effects.NewFadeIn(colors.Background, fadeInFrames)
	if err != nil {
		return Layers{}, err
	}
	return Layers{Below: effects.Chain{backdrop}, Above: effects.Chain{fade}}, nil
}

// FrameRenderer draws global frames. Each worker owns one: the rasterizer and
// font faces inside are not safe for concurrent use.
type FrameRenderer struct {
	director *director.Director
	layers   Layers
	renderer *renderer.Renderer
	pool     *system.ImagePool
	bounds   image.Rectangle
}

func NewFrameRenderer(d *director.Director, layers Layers, pool *system.ImagePool) (*FrameRenderer, error) {
	r, err := renderer.New()
	if err != nil {
		return nil, err
	}
	if pool == nil {
		pool = system.NewImagePool()
	}
	return &FrameRenderer{
		director: d,
		layers:   layers,
		renderer: r,
		pool:     pool,
		bounds:   image.Rect(0, 0, d.Width(), d.Height()),
	}, nil
}

// Render paints the global frame into a pooled buffer. The backdrop repaints
// every pixel, so reused buffers carry nothing over. Return the buffer with
// Release.
func (fr *FrameRenderer) Render(frame int) (*image.RGBA, error) {
	img := fr.pool.Get(fr.bounds)
	fr.layers.Below.Apply(img, frame)
	if err := fr.renderer.Draw(img, fr.director.Compose(frame)); err != nil {
		fr.pool.Put(img)
		return nil, fmt.Errorf("frame %d: %w", frame, err)
	}
	fr.layers.Above.Apply(img, frame)
	return img, nil
}

// Release returns a frame from Render to the pool
func (fr *FrameRenderer) Release(img *image.RGBA) {
	fr.pool.Put(img)
}

func (fr *FrameRenderer) Close() error {
	return fr.renderer.Close()
}

// RenderFrame writes one global frame as a PNG
func RenderFrame(d *director.Director, path string, frame int) error {
	if frame < 0 || frame >= d.Timeline().Total() {
		return fmt.Errorf("кадр %d вне таймлайна [0, %d)", frame, d.Timeline().Total())
	}
	layers, err := NewLayers(d)
	if err != nil {
		return err
	}
	fr, err := NewFrameRenderer(d, layers, nil)
	if err != nil {
		return err
	}
	defer fr.Close()

	img, err := fr.Render(frame)
	if err != nil {
		return err
	}
	defer fr.Release(img)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
