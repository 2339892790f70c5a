// Package cli implements the ogimage command-line interface.
//
// The tool generates the UberPadel social-share (Open Graph) preview images:
// five 1200×630 PNG cards, one per tournament format, drawn from a static
// configuration table.
//
// # Commands
//
//   - generate: render the cards into the output directory
//   - list: print the format table
//   - serve: preview generated cards in a browser
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"     // semantic version, set via ldflags
	commit  = "none"    // git commit SHA, set via ldflags
	date    = "unknown" // build timestamp, set via ldflags
)

// SetVersion sets the build information displayed by --version. Called by
// the main package with values injected at build time.
func SetVersion(v, c, d string) {
	if v != "" {
		version = v
	}
	if c != "" {
		commit = c
	}
	if d != "" {
		date = d
	}
}

// Execute runs the ogimage CLI and returns an error if any command fails.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "ogimage",
		Short:        "Generate UberPadel social-share preview images",
		Long:         `ogimage renders the Open Graph preview cards shown when UberPadel links are shared on social platforms. Each tournament format gets its own 1200x630 PNG with a gradient background, format title, and brand watermark.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("ogimage %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newServeCmd())

	return root.ExecuteContext(ctx)
}
