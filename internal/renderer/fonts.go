package renderer

import (
	"fmt"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/ivlev/promoreel/internal/scene"
)

var (
	parseOnce   sync.Once
	parsedFonts map[scene.Font]*opentype.Font
	parseErr    error
)

// loadFonts parses the embedded Go fonts once per process. Parsed fonts are
// shared; faces are not.
func loadFonts() (map[scene.Font]*opentype.Font, error) {
	parseOnce.Do(func() {
		sources := map[scene.Font][]byte{
			scene.FontSans:     goregular.TTF,
			scene.FontSansBold: gobold.TTF,
			scene.FontMono:     gomono.TTF,
			scene.FontMonoBold: gomonobold.TTF,
		}
		fonts := make(map[scene.Font]*opentype.Font, len(sources))
		for k, data := range sources {
			f, err := opentype.Parse(data)
			if err != nil {
				parseErr = fmt.Errorf("parse font %d: %w", k, err)
				return
			}
			fonts[k] = f
		}
		parsedFonts = fonts
	})
	return parsedFonts, parseErr
}

type faceKey struct {
	font scene.Font
	// size in half pixels
	size int
}

// face returns a cached face for the font at roughly the requested size.
func (r *Renderer) face(f scene.Font, size float64) (font.Face, error) {
	key := faceKey{font: f, size: int(math.Round(size * 2))}
	if key.size < 1 {
		key.size = 1
	}
	if face, ok := r.faces[key]; ok {
		return face, nil
	}

	src, ok := r.fonts[f]
	if !ok {
		src = r.fonts[scene.FontSans]
	}
	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    float64(key.size) / 2,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	r.faces[key] = face
	return face, nil
}
