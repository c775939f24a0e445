package analyzer

import "fmt"

// NewDetector returns the detector for variant: "contrast" (default) for
// opaque renders, "alpha" for images with transparency.
func NewDetector(variant string) (Detector, error) {
	switch variant {
	case "", "contrast":
		return NewContrastDetector(), nil
	case "alpha":
		return NewAlphaDetector(), nil
	}
	return nil, fmt.Errorf("unknown detector %q (want contrast or alpha)", variant)
}
