// Package fonts resolves truetype faces for card rendering.
//
// Resolution is a fallback chain: well-known DejaVu and Liberation paths
// first, then a system-wide lookup by file name, and finally the Go fonts
// embedded in the binary. The chain never fails, which keeps font trouble
// out of the batch's error budget entirely.
package fonts

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// defaultCandidates lists the preferred system fonts in probe order,
// selecting the bold or regular variant per the flag.
func defaultCandidates(bold bool) []string {
	if bold {
		return []string{
			"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
			"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
		}
	}
	return []string{
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	}
}

type faceKey struct {
	size float64
	bold bool
}

// Resolver loads and caches truetype faces. The zero value is not usable;
// create one with [NewResolver]. The internal lock only guards the caches.
type Resolver struct {
	candidates func(bold bool) []string

	mu     sync.Mutex
	parsed map[bool]*truetype.Font
	faces  map[faceKey]font.Face
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithCandidates replaces the system font probe list. Used by tests to force
// the embedded fallback or point at fixture fonts.
func WithCandidates(fn func(bold bool) []string) Option {
	return func(r *Resolver) { r.candidates = fn }
}

// NewResolver creates a resolver with the default candidate chain.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		candidates: defaultCandidates,
		parsed:     make(map[bool]*truetype.Font),
		faces:      make(map[faceKey]font.Face),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Face returns a face for the given point size and weight. Identical
// requests return the same cached face. Face never returns nil: when no
// system font loads, the embedded Go fonts serve as the final fallback.
func (r *Resolver) Face(size float64, bold bool) font.Face {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := faceKey{size: size, bold: bold}
	if f, ok := r.faces[key]; ok {
		return f
	}

	face := truetype.NewFace(r.font(bold), &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	r.faces[key] = face
	return face
}

// font returns the parsed font for the weight, loading it on first use.
// Callers must hold r.mu.
func (r *Resolver) font(bold bool) *truetype.Font {
	if f, ok := r.parsed[bold]; ok {
		return f
	}

	f := r.load(bold)
	r.parsed[bold] = f
	return f
}

// load walks the candidate chain. A candidate that is missing or fails to
// parse is skipped, so a corrupt system font degrades the same way as an
// absent one.
func (r *Resolver) load(bold bool) *truetype.Font {
	for _, path := range r.candidates(bold) {
		if f := parseFile(path); f != nil {
			return f
		}
		// Same file name, but searched across all known font directories.
		if found, err := findfont.Find(filepath.Base(path)); err == nil {
			if f := parseFile(found); f != nil {
				return f
			}
		}
	}
	return embedded(bold)
}

// parseFile reads and parses a truetype file, returning nil on any failure.
func parseFile(path string) *truetype.Font {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil
	}
	return f
}

var (
	embeddedOnce    sync.Once
	embeddedBold    *truetype.Font
	embeddedRegular *truetype.Font
)

// embedded returns the compiled-in Go fonts. The font data ships inside the
// binary; a parse failure means a corrupt build, so it panics rather than
// returning an error nothing can handle.
func embedded(bold bool) *truetype.Font {
	embeddedOnce.Do(func() {
		var err error
		if embeddedBold, err = truetype.Parse(gobold.TTF); err != nil {
			panic("fonts: embedded Go Bold failed to parse: " + err.Error())
		}
		if embeddedRegular, err = truetype.Parse(goregular.TTF); err != nil {
			panic("fonts: embedded Go Regular failed to parse: " + err.Error())
		}
	})
	if bold {
		return embeddedBold
	}
	return embeddedRegular
}
