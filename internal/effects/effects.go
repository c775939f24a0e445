// Package effects paints frame-wide layers that sit below or above the
// scene elements.
package effects

import (
	"image"
)

// Effect paints onto a whole frame at a global frame index. Apply must be a
// pure function of its arguments.
type Effect interface {
	Apply(dst *image.RGBA, frame int)
}

// Chain applies effects in order
type Chain []Effect

func (c Chain) Apply(dst *image.RGBA, frame int) {
	for _, e := range c {
		e.Apply(dst, frame)
	}
}
