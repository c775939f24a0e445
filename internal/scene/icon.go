package scene

import "image/color"

// Icon is a small pictogram assembled from primitives
type Icon uint8

const (
	IconNone Icon = iota
	IconUsers
	IconEye
	IconBounce
	IconBolt
	IconCheck
	IconCross
	IconArrow
	IconPlug
	IconTab
)

// Elements draws the icon inside a size x size square centred at (cx, cy).
func (i Icon) Elements(cx, cy, size float64, fg, bg color.NRGBA) []Element {
	s := size
	x0, y0 := cx-s/2, cy-s/2
	switch i {
	case IconUsers:
		return []Element{
			Circle(cx-s*0.15, cy-s*0.18, s*0.16, fg),
			Circle(cx+s*0.2, cy-s*0.12, s*0.12, WithAlpha(fg, 0.6)),
			Rect(x0+s*0.1, cy+s*0.05, s*0.5, s*0.3, s*0.15, fg),
			Rect(x0+s*0.6, cy+s*0.08, s*0.32, s*0.24, s*0.12, WithAlpha(fg, 0.6)),
		}
	case IconEye:
		return []Element{
			Rect(x0+s*0.05, cy-s*0.22, s*0.9, s*0.44, s*0.22, fg),
			Circle(cx, cy, s*0.16, bg),
			Circle(cx, cy, s*0.08, fg),
		}
	case IconBounce:
		return []Element{
			Rect(x0+s*0.1, cy+s*0.1, s*0.2, s*0.3, s*0.04, WithAlpha(fg, 0.5)),
			Rect(x0+s*0.4, cy-s*0.1, s*0.2, s*0.5, s*0.04, WithAlpha(fg, 0.75)),
			Rect(x0+s*0.7, cy-s*0.35, s*0.2, s*0.75, s*0.04, fg),
		}
	case IconBolt:
		return []Element{
			Circle(cx, cy, s*0.42, WithAlpha(fg, 0.25)),
			Label(cx, cy, s*0.7, "!", fg, FontSansBold, AlignCenter),
		}
	case IconCheck:
		return []Element{
			Circle(cx, cy, s*0.45, fg),
			Label(cx, cy, s*0.6, "+", bg, FontSansBold, AlignCenter),
		}
	case IconCross:
		return []Element{
			Circle(cx, cy, s*0.45, WithAlpha(fg, 0.35)),
			Label(cx, cy, s*0.6, "x", fg, FontSansBold, AlignCenter),
		}
	case IconArrow:
		return []Element{
			Rect(x0+s*0.1, cy-s*0.08, s*0.55, s*0.16, s*0.08, fg),
			Circle(x0+s*0.72, cy, s*0.2, fg),
		}
	case IconPlug:
		return []Element{
			Rect(x0+s*0.3, y0+s*0.05, s*0.1, s*0.3, s*0.05, fg),
			Rect(x0+s*0.6, y0+s*0.05, s*0.1, s*0.3, s*0.05, fg),
			Rect(x0+s*0.15, y0+s*0.3, s*0.7, s*0.4, s*0.12, fg),
			Rect(cx-s*0.06, y0+s*0.7, s*0.12, s*0.25, s*0.04, fg),
		}
	case IconTab:
		return []Element{
			Rect(x0, y0+s*0.15, s*0.55, s*0.3, s*0.08, fg),
			Rect(x0, y0+s*0.35, s, s*0.55, s*0.08, fg),
		}
	}
	return nil
}
