package ogimage

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// FontProvider resolves a font face for a point size and weight. Face must
// always return a usable face; implementations degrade to an embedded font
// rather than failing.
type FontProvider interface {
	Face(size float64, bold bool) font.Face
}

// contrastAlpha is the opacity of the dark layer composited over the
// gradient so white text stays legible on light gradient stops.
const contrastAlpha = 60

// Point sizes of the text elements.
const (
	sizeTitle    = 72
	sizeIcon     = 60
	sizeSubtitle = 42
	sizeTagline  = 28
	sizeBrand    = 24
)

// Renderer draws complete cards. It is stateless apart from its font
// provider, so a single Renderer can serve the whole batch.
type Renderer struct {
	fonts FontProvider
	brand string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithBrand overrides the watermark text (default [DefaultBrand]).
func WithBrand(s string) Option {
	return func(r *Renderer) { r.brand = s }
}

// NewRenderer creates a renderer that resolves text faces through fp.
func NewRenderer(fp FontProvider, opts ...Option) *Renderer {
	r := &Renderer{fonts: fp, brand: DefaultBrand}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render draws the full card for spec and returns the flattened, opaque
// image. The result depends only on spec and the renderer's brand text.
func (r *Renderer) Render(spec FormatSpec) (image.Image, error) {
	start, err := ParseHex(spec.GradientStart)
	if err != nil {
		return nil, fmt.Errorf("format %q: %w", spec.Key, err)
	}
	end, err := ParseHex(spec.GradientEnd)
	if err != nil {
		return nil, fmt.Errorf("format %q: %w", spec.Key, err)
	}

	dc := gg.NewContextForRGBA(Gradient(Width, Height, start, end, spec.Direction))
	drawDecorations(dc)

	// Flat dark layer over gradient and decorations; text goes on top.
	dark := imaging.New(Width, Height, color.NRGBA{A: contrastAlpha})
	base := imaging.Overlay(dc.Image(), dark, image.Pt(0, 0), 1.0)

	dc = gg.NewContextForImage(base)
	r.drawText(dc, spec)
	drawCornerAccents(dc)

	return flatten(dc.Image()), nil
}

// drawText draws the five text elements centered horizontally at fixed
// offsets from the vertical center, white with descending opacity.
func (r *Renderer) drawText(dc *gg.Context, spec FormatSpec) {
	centerY := float64(Height) / 2
	elements := []struct {
		text  string
		size  float64
		bold  bool
		alpha int
		top   float64 // y coordinate of the element's top edge
	}{
		{spec.Icon, sizeIcon, true, 255, centerY - 150},
		{spec.Title, sizeTitle, true, 255, centerY - 60},
		{spec.Subtitle, sizeSubtitle, true, 220, centerY + 30},
		{spec.Tagline, sizeTagline, false, 180, centerY + 100},
		{r.brand, sizeBrand, true, 150, Height - 50},
	}

	for _, el := range elements {
		if el.text == "" {
			continue
		}
		dc.SetFontFace(r.fonts.Face(el.size, el.bold))
		dc.SetRGBA255(255, 255, 255, el.alpha)
		dc.DrawStringAnchored(el.text, float64(Width)/2, el.top, 0.5, 1)
	}
}

// flatten composites img over an opaque black background. Every draw step
// already produces full-alpha pixels, but flattening guarantees the PNG
// encoder sees an opaque image and emits 24-bit RGB.
func flatten(img image.Image) *image.RGBA {
	dst := image.NewRGBA(img.Bounds())
	for y := dst.Bounds().Min.Y; y < dst.Bounds().Max.Y; y++ {
		for x := dst.Bounds().Min.X; x < dst.Bounds().Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			c.A = 255
			dst.SetRGBA(x, y, c)
		}
	}
	return dst
}
