package ogimage

import "github.com/fogleman/gg"

// Decorative geometry is fixed arithmetic over the canvas dimensions, so the
// same pattern appears on every card and on every run.

// dot is one translucent circle of the background motif.
type dot struct {
	x, y, r float64
}

// dots returns the 20 background dots. Positions walk an arithmetic
// progression wrapped modulo the canvas, radii cycle through 3, 4, 5.
func dots(w, h int) []dot {
	out := make([]dot, 0, 20)
	for i := 0; i < 20; i++ {
		out = append(out, dot{
			x: float64((i*150)%w + 50),
			y: float64((i * 80) % h),
			r: float64(3 + i%3),
		})
	}
	return out
}

// segment is one straight stroke, used for court lines and corner accents.
type segment struct {
	x1, y1, x2, y2 float64
}

// courtLines returns the two centered guide lines evoking a padel court.
func courtLines(w, h int) []segment {
	fw, fh := float64(w), float64(h)
	return []segment{
		{100, fh / 2, fw - 100, fh / 2},
		{fw / 2, 100, fw / 2, fh - 100},
	}
}

// accentLength and accentWidth size the corner brackets.
const (
	accentLength = 80
	accentWidth  = 4
)

// cornerAccents returns the eight strokes forming an "L" bracket in each
// corner, flush with the canvas edges.
func cornerAccents(w, h int) []segment {
	fw, fh := float64(w), float64(h)
	return []segment{
		// top left
		{0, 0, accentLength, 0},
		{0, 0, 0, accentLength},
		// top right
		{fw - accentLength, 0, fw, 0},
		{fw - 1, 0, fw - 1, accentLength},
		// bottom left
		{0, fh - 1, accentLength, fh - 1},
		{0, fh - accentLength, 0, fh},
		// bottom right
		{fw - accentLength, fh - 1, fw, fh - 1},
		{fw - 1, fh - accentLength, fw - 1, fh},
	}
}

// drawDecorations paints the dot pattern and court lines onto dc.
func drawDecorations(dc *gg.Context) {
	w, h := dc.Width(), dc.Height()

	dc.SetRGBA255(255, 255, 255, 30)
	for _, d := range dots(w, h) {
		dc.DrawCircle(d.x, d.y, d.r)
		dc.Fill()
	}

	dc.SetRGBA255(255, 255, 255, 40)
	dc.SetLineWidth(2)
	for _, s := range courtLines(w, h) {
		dc.DrawLine(s.x1, s.y1, s.x2, s.y2)
		dc.Stroke()
	}
}

// drawCornerAccents paints the corner brackets onto dc.
func drawCornerAccents(dc *gg.Context) {
	dc.SetRGBA255(255, 255, 255, 100)
	dc.SetLineWidth(accentWidth)
	for _, s := range cornerAccents(dc.Width(), dc.Height()) {
		dc.DrawLine(s.x1, s.y1, s.x2, s.y2)
		dc.Stroke()
	}
}
