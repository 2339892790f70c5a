package cli

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/uberpadel/ogimage/pkg/manifest"
	"github.com/uberpadel/ogimage/pkg/ogimage"
)

func TestRunGenerateFullBatch(t *testing.T) {
	dir := t.TempDir()

	err := runGenerate(context.Background(), &generateOpts{output: dir})
	if err != nil {
		t.Fatalf("runGenerate error: %v", err)
	}

	wantFiles := []string{
		"og-image.png",
		"og-image-americano.png",
		"og-image-mexicano.png",
		"og-image-mix.png",
		"og-image-team.png",
	}
	for _, name := range wantFiles {
		path := filepath.Join(dir, name)
		f, err := os.Open(path)
		if err != nil {
			t.Errorf("missing output %s: %v", name, err)
			continue
		}
		cfg, err := png.DecodeConfig(f)
		f.Close()
		if err != nil {
			t.Errorf("%s is not a valid PNG: %v", name, err)
			continue
		}
		if cfg.Width != ogimage.Width || cfg.Height != ogimage.Height {
			t.Errorf("%s size = %dx%d, want %dx%d", name, cfg.Width, cfg.Height, ogimage.Width, ogimage.Height)
		}
	}

	m, err := manifest.Load(dir)
	if err != nil {
		t.Fatalf("manifest load: %v", err)
	}
	if m == nil || len(m.Files) != 5 {
		t.Fatalf("manifest should record 5 files, got %+v", m)
	}
}

func TestRunGenerateSecondRunCached(t *testing.T) {
	dir := t.TempDir()
	opts := &generateOpts{output: dir}

	if err := runGenerate(context.Background(), opts); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(dir, "og-image.png")
	before, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}

	// Files and specs are unchanged, so the second run must skip rendering
	// and leave every output untouched.
	time.Sleep(10 * time.Millisecond)
	if err := runGenerate(context.Background(), opts); err != nil {
		t.Fatal(err)
	}

	after, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if !after.ModTime().Equal(before.ModTime()) {
		t.Error("cached file was rewritten on an unchanged second run")
	}
}

func TestRunGenerateForce(t *testing.T) {
	dir := t.TempDir()

	if err := runGenerate(context.Background(), &generateOpts{output: dir}); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(dir, "og-image.png")
	before, _ := os.Stat(path)

	time.Sleep(10 * time.Millisecond)
	if err := runGenerate(context.Background(), &generateOpts{output: dir, force: true}); err != nil {
		t.Fatal(err)
	}

	after, _ := os.Stat(path)
	if after.ModTime().Equal(before.ModTime()) {
		t.Error("--force should rewrite outputs")
	}
}

func TestRunGenerateOnly(t *testing.T) {
	dir := t.TempDir()

	err := runGenerate(context.Background(), &generateOpts{output: dir, only: []string{"americano"}})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(filepath.Join(dir, "og-image-americano.png")); err != nil {
		t.Errorf("americano output missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "og-image.png")); !os.IsNotExist(err) {
		t.Error("main output should not be generated with --only americano")
	}
}

func TestRunGenerateUnknownKey(t *testing.T) {
	err := runGenerate(context.Background(), &generateOpts{output: t.TempDir(), only: []string{"badminton"}})
	if err == nil {
		t.Fatal("unknown format key should fail")
	}
}

func TestSelectFormats(t *testing.T) {
	tests := []struct {
		name    string
		only    []string
		want    int
		wantErr bool
	}{
		{name: "all", only: nil, want: 5},
		{name: "single", only: []string{"team"}, want: 1},
		{name: "trimmed", only: []string{" mix ", "main"}, want: 2},
		{name: "unknown", only: []string{"squash"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			specs, err := selectFormats(tt.only)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("selectFormats error: %v", err)
			}
			if len(specs) != tt.want {
				t.Errorf("got %d specs, want %d", len(specs), tt.want)
			}
		})
	}
}
