// Package manifest records what a generation run produced.
//
// The manifest lives next to the generated PNGs as og-manifest.json. Each
// entry pairs a format key with the hash of the spec that produced the file
// and the checksum of the file itself, which lets the next run prove a file
// is already current and skip re-rendering it.
package manifest

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Filename is the manifest file written into the output directory.
const Filename = "og-manifest.json"

// Entry describes one generated image.
type Entry struct {
	Key      string `json:"key"`       // format key (e.g. "americano")
	Filename string `json:"filename"`  // output file name
	SpecHash string `json:"spec_hash"` // SHA-256 of the FormatSpec that produced the file
	SHA256   string `json:"sha256"`    // SHA-256 of the PNG bytes
	Bytes    int64  `json:"bytes"`     // PNG size
}

// Manifest is one run's record.
type Manifest struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	Files       []Entry   `json:"files"`
}

// New creates an empty manifest for a fresh run with a unique run ID.
func New(width, height int) *Manifest {
	return &Manifest{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Width:       width,
		Height:      height,
	}
}

// Add appends an entry for a generated file.
func (m *Manifest) Add(e Entry) {
	m.Files = append(m.Files, e)
}

// Lookup returns the entry for a format key, if present.
func (m *Manifest) Lookup(key string) (Entry, bool) {
	for _, e := range m.Files {
		if e.Key == key {
			return e, true
		}
	}
	return Entry{}, false
}

// Load reads the manifest from dir. A missing file is not an error: it
// returns (nil, nil), meaning "no previous run".
func Load(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, Filename))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}

// Write stores the manifest in dir, replacing any previous one.
func (m *Manifest) Write(dir string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, Filename), append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// Sum returns the hex SHA-256 digest of data.
func Sum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
