package analyzer

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
)

// ContrastDetector implements edge-based region detection using Sobel operator
type ContrastDetector struct {
	MinBlockArea  int     // Minimum area in pixels² at analysis resolution
	EdgeThreshold float64 // Gradient magnitude threshold
	// MaxSide bounds the analysis resolution; larger inputs are downscaled
	MaxSide int
}

// NewContrastDetector creates a new contrast-based detector with default settings
func NewContrastDetector() *ContrastDetector {
	return &ContrastDetector{
		MinBlockArea:  16,
		EdgeThreshold: 30.0, // Moderate sensitivity
		MaxSide:       512,
	}
}

// Detect finds regions of interest using edge detection and morphology.
// Rectangles are returned in the coordinates of img.
func (d *ContrastDetector) Detect(img image.Image) ([]Block, error) {
	gray, scale := d.toGrayscale(img)

	edges := sobelEdgeDetection(gray, d.EdgeThreshold)
	// Connect nearby edges so glyphs of one word form one block
	dilated := dilate(edges, 5, 2)

	bounds := img.Bounds()
	var blocks []Block
	for _, rect := range findContours(dilated) {
		if rect.Dx()*rect.Dy() < d.MinBlockArea {
			continue
		}
		blocks = append(blocks, Block{
			Rect:       upscale(rect, scale, bounds),
			Confidence: 0.7,
		})
	}
	return blocks, nil
}

// toGrayscale converts img to a zero-based grayscale image no larger than
// MaxSide on its long side, and returns the downscale factor.
func (d *ContrastDetector) toGrayscale(img image.Image) (*image.Gray, float64) {
	b := img.Bounds()
	scale := 1.0
	if long := max(b.Dx(), b.Dy()); d.MaxSide > 0 && long > d.MaxSide {
		scale = float64(d.MaxSide) / float64(long)
	}
	w := max(1, int(math.Round(float64(b.Dx())*scale)))
	h := max(1, int(math.Round(float64(b.Dy())*scale)))

	gray := image.NewGray(image.Rect(0, 0, w, h))
	// Transparent areas count as white paper
	xdraw.Draw(gray, gray.Bounds(), image.White, image.Point{}, xdraw.Src)
	xdraw.ApproxBiLinear.Scale(gray, gray.Bounds(), img, b, xdraw.Over, nil)
	return gray, scale
}

func upscale(r image.Rectangle, scale float64, bounds image.Rectangle) image.Rectangle {
	if scale == 1 {
		return r.Add(bounds.Min)
	}
	out := image.Rect(
		int(math.Floor(float64(r.Min.X)/scale)), int(math.Floor(float64(r.Min.Y)/scale)),
		int(math.Ceil(float64(r.Max.X)/scale)), int(math.Ceil(float64(r.Max.Y)/scale)),
	)
	return out.Add(bounds.Min).Intersect(bounds)
}

// sobelEdgeDetection marks pixels whose gradient magnitude exceeds threshold
func sobelEdgeDetection(gray *image.Gray, threshold float64) *image.Gray {
	w, h := gray.Rect.Dx(), gray.Rect.Dy()
	edges := image.NewGray(gray.Rect)
	at := func(x, y int) float64 {
		return float64(gray.Pix[y*gray.Stride+x])
	}

	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			sumX := -at(x-1, y-1) + at(x+1, y-1) - 2*at(x-1, y) + 2*at(x+1, y) - at(x-1, y+1) + at(x+1, y+1)
			sumY := -at(x-1, y-1) - 2*at(x, y-1) - at(x+1, y-1) + at(x-1, y+1) + 2*at(x, y+1) + at(x+1, y+1)

			if math.Hypot(sumX, sumY) > threshold {
				edges.Pix[y*edges.Stride+x] = 255
			}
		}
	}

	return edges
}

// dilate performs morphological dilation to connect nearby edges
func dilate(img *image.Gray, kernelSize, iterations int) *image.Gray {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	result := image.NewGray(img.Rect)
	copy(result.Pix, img.Pix)

	half := kernelSize / 2
	for iter := 0; iter < iterations; iter++ {
		temp := image.NewGray(img.Rect)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				var maxVal uint8
				for ky := max(0, y-half); ky <= min(h-1, y+half) && maxVal < 255; ky++ {
					row := result.Pix[ky*result.Stride:]
					for kx := max(0, x-half); kx <= min(w-1, x+half); kx++ {
						if row[kx] > maxVal {
							maxVal = row[kx]
						}
					}
				}
				temp.Pix[y*temp.Stride+x] = maxVal
			}
		}
		result = temp
	}

	return result
}

// findContours finds bounding rectangles of connected white regions
func findContours(img *image.Gray) []image.Rectangle {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	visited := make([]bool, w*h)

	var contours []image.Rectangle
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if img.Pix[y*img.Stride+x] > 128 && !visited[y*w+x] {
				contours = append(contours, floodFill(img, visited, x, y))
			}
		}
	}
	return contours
}

// floodFill performs flood fill and returns bounding rectangle
func floodFill(img *image.Gray, visited []bool, startX, startY int) image.Rectangle {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	minX, minY := startX, startY
	maxX, maxY := startX, startY

	stack := []image.Point{{X: startX, Y: startY}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		x, y := p.X, p.Y
		if x < 0 || x >= w || y < 0 || y >= h {
			continue
		}
		if visited[y*w+x] || img.Pix[y*img.Stride+x] <= 128 {
			continue
		}
		visited[y*w+x] = true

		minX, maxX = min(minX, x), max(maxX, x)
		minY, maxY = min(minY, y), max(maxY, y)

		stack = append(stack,
			image.Point{X: x + 1, Y: y},
			image.Point{X: x - 1, Y: y},
			image.Point{X: x, Y: y + 1},
			image.Point{X: x, Y: y - 1},
		)
	}

	return image.Rect(minX, minY, maxX+1, maxY+1)
}
