package ogimage

import (
	"image"
	"image/color"
)

// Gradient renders a two-color linear gradient as an opaque RGBA image.
// Horizontal gradients interpolate per column (every pixel in a column has
// the same color); diagonal gradients interpolate on (x+y)/(w+h). The result
// is a pure function of the arguments.
func Gradient(w, h int, start, end color.RGBA, dir Direction) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	if dir == Horizontal {
		for x := 0; x < w; x++ {
			c := lerpRGB(start, end, float64(x)/float64(w))
			for y := 0; y < h; y++ {
				img.SetRGBA(x, y, c)
			}
		}
		return img
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, lerpRGB(start, end, float64(x+y)/float64(w+h)))
		}
	}
	return img
}

// lerpRGB interpolates each channel independently. t is clamped to [0,1].
func lerpRGB(a, b color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return color.RGBA{
		R: lerp(a.R, b.R, t),
		G: lerp(a.G, b.G, t),
		B: lerp(a.B, b.B, t),
		A: 255,
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}
