package ogimage

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/uberpadel/ogimage/pkg/fonts"
)

func testRenderer(t *testing.T, opts ...Option) *Renderer {
	t.Helper()
	return NewRenderer(fonts.NewResolver(), opts...)
}

func TestRenderDimensions(t *testing.T) {
	r := testRenderer(t)

	for _, spec := range Formats() {
		t.Run(spec.Key, func(t *testing.T) {
			img, err := r.Render(spec)
			if err != nil {
				t.Fatalf("Render(%s) error: %v", spec.Key, err)
			}

			b := img.Bounds()
			if b.Dx() != Width || b.Dy() != Height {
				t.Errorf("Render(%s) size = %dx%d, want %dx%d", spec.Key, b.Dx(), b.Dy(), Width, Height)
			}
		})
	}
}

func TestRenderDeterministic(t *testing.T) {
	r := testRenderer(t)
	spec, _ := Lookup("americano")

	first, err := r.Render(spec)
	if err != nil {
		t.Fatal(err)
	}
	second, err := r.Render(spec)
	if err != nil {
		t.Fatal(err)
	}

	a, err := EncodePNG(first)
	if err != nil {
		t.Fatal(err)
	}
	b, err := EncodePNG(second)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(a, b) {
		t.Error("two renders of the same spec produced different PNG bytes")
	}
}

func TestRenderOpaque(t *testing.T) {
	r := testRenderer(t)
	spec, _ := Lookup("main")

	img, err := r.Render(spec)
	if err != nil {
		t.Fatal(err)
	}

	op, ok := img.(interface{ Opaque() bool })
	if !ok {
		t.Fatalf("rendered image type %T does not report opacity", img)
	}
	if !op.Opaque() {
		t.Error("rendered card should be fully opaque")
	}
}

func TestRenderInvalidGradient(t *testing.T) {
	r := testRenderer(t)
	spec, _ := Lookup("main")
	spec.GradientStart = "not-a-color"

	if _, err := r.Render(spec); err == nil {
		t.Error("Render with invalid gradient color should fail")
	}
}

func TestRenderCustomBrand(t *testing.T) {
	spec, _ := Lookup("main")

	def, err := testRenderer(t).Render(spec)
	if err != nil {
		t.Fatal(err)
	}
	custom, err := testRenderer(t, WithBrand("example.org")).Render(spec)
	if err != nil {
		t.Fatal(err)
	}

	a, _ := EncodePNG(def)
	b, _ := EncodePNG(custom)
	if bytes.Equal(a, b) {
		t.Error("changing the brand text should change the rendered image")
	}
}

func TestSaveWritesDecodablePNG(t *testing.T) {
	dir := t.TempDir()
	r := testRenderer(t)
	spec, _ := Lookup("mix")

	img, err := r.Render(spec)
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(dir, spec.Filename)
	if err := Save(img, path); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("written file is not a valid PNG: %v", err)
	}
	if cfg.Width != Width || cfg.Height != Height {
		t.Errorf("decoded size = %dx%d, want %dx%d", cfg.Width, cfg.Height, Width, Height)
	}
}

func TestSaveOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")

	if err := os.WriteFile(path, []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}

	img, err := testRenderer(t).Render(formats[0])
	if err != nil {
		t.Fatal(err)
	}
	if err := Save(img, path); err != nil {
		t.Fatalf("Save over existing file: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(data, []byte("stale")) {
		t.Error("existing file was not replaced")
	}
}

func TestWriteFileMissingDir(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does", "not", "exist")
	path := filepath.Join(missing, "out.png")

	if err := WriteFile(path, []byte("data")); err == nil {
		t.Fatal("WriteFile into missing directory should fail")
	}

	// Failure must not leave a partial output file behind.
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("partial file left behind: stat err = %v", err)
	}
}

func TestWriteFileLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()

	if err := WriteFile(filepath.Join(dir, "out.png"), []byte("data")); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "out.png" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("unexpected directory contents: %v", names)
	}
}
