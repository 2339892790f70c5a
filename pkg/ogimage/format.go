package ogimage

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Canvas dimensions for Open Graph images, the size expected by Facebook,
// Twitter/X, and LinkedIn link previews.
const (
	Width  = 1200
	Height = 630
)

// DefaultBrand is the watermark drawn near the bottom edge of every card.
const DefaultBrand = "uberpadel.com"

// Direction selects the gradient axis.
type Direction int

const (
	// Horizontal interpolates left to right, constant per column.
	Horizontal Direction = iota
	// Diagonal interpolates from the top-left to the bottom-right corner.
	Diagonal
)

// FormatSpec describes one image variant to generate. Specs are immutable
// value types; the shipped table is returned by [Formats].
type FormatSpec struct {
	Key           string `json:"key"`            // stable identifier (e.g. "americano")
	Filename      string `json:"filename"`       // output file name (e.g. "og-image-americano.png")
	Title         string `json:"title"`          // main heading
	Subtitle      string `json:"subtitle"`       // secondary heading
	Tagline       string `json:"tagline"`        // one-line description
	GradientStart string `json:"gradient_start"` // "#RRGGBB"
	GradientEnd   string `json:"gradient_end"`   // "#RRGGBB"
	Icon          string `json:"icon"`           // single glyph drawn above the title

	Direction Direction `json:"direction"`
}

// Hash returns a hex SHA-256 digest of the spec's JSON encoding. Two specs
// hash equal exactly when every field is equal, which is what the manifest
// uses to decide whether a previously generated file is still current.
func (s FormatSpec) Hash() string {
	data, _ := json.Marshal(s)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// formats is the static table of shipped variants. Order is render order.
var formats = []FormatSpec{
	{
		Key:           "main",
		Filename:      "og-image.png",
		Title:         "UberPadel",
		Subtitle:      "Tournament Manager",
		Tagline:       "Create & manage padel tournaments instantly",
		GradientStart: "#2563EB",
		GradientEnd:   "#7C3AED",
		Icon:          "●",
	},
	{
		Key:           "americano",
		Filename:      "og-image-americano.png",
		Title:         "Americano Padel",
		Subtitle:      "Rotating Partners",
		Tagline:       "Everyone plays with everyone • 5-24 players",
		GradientStart: "#7C3AED",
		GradientEnd:   "#8B5CF6",
		Icon:          "◐",
	},
	{
		Key:           "mexicano",
		Filename:      "og-image-mexicano.png",
		Title:         "Mexicano Padel",
		Subtitle:      "Dynamic Matchups",
		Tagline:       "Pairings based on standings • Competitive format",
		GradientStart: "#059669",
		GradientEnd:   "#10B981",
		Icon:          "◆",
	},
	{
		Key:           "mix",
		Filename:      "og-image-mix.png",
		Title:         "Mix Tournament",
		Subtitle:      "20-28 Players",
		Tagline:       "Large group format with rest rotation",
		GradientStart: "#2563EB",
		GradientEnd:   "#3B82F6",
		Icon:          "★",
	},
	{
		Key:           "team",
		Filename:      "og-image-team.png",
		Title:         "Team League",
		Subtitle:      "Fixed Teams",
		Tagline:       "League format with group stages & knockouts",
		GradientStart: "#DC2626",
		GradientEnd:   "#EF4444",
		Icon:          "▲",
	},
}

// Formats returns the ordered table of shipped variants. The slice is a copy;
// callers may reorder or filter it without affecting other callers.
func Formats() []FormatSpec {
	out := make([]FormatSpec, len(formats))
	copy(out, formats)
	return out
}

// Lookup returns the spec for key, or false if no variant has that key.
func Lookup(key string) (FormatSpec, bool) {
	for _, f := range formats {
		if f.Key == key {
			return f, true
		}
	}
	return FormatSpec{}, false
}
