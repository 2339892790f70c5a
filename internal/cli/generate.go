package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/uberpadel/ogimage/pkg/fonts"
	"github.com/uberpadel/ogimage/pkg/manifest"
	"github.com/uberpadel/ogimage/pkg/ogimage"
)

// defaultOutputDir is where the site expects the generated cards.
const defaultOutputDir = "public"

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	output     string   // output directory
	only       []string // restrict to these format keys
	force      bool     // re-render even when the manifest says a file is current
	configPath string   // explicit config file path
}

// newGenerateCmd creates the generate command, the main entry point of the
// tool: it renders every configured card into the output directory.
func newGenerateCmd() *cobra.Command {
	var onlyStr string
	opts := generateOpts{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render the Open Graph preview cards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if onlyStr != "" {
				opts.only = strings.Split(onlyStr, ",")
			}
			return runGenerate(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (default \""+defaultOutputDir+"\")")
	cmd.Flags().StringVar(&onlyStr, "only", "", "render only these format keys (comma-separated)")
	cmd.Flags().BoolVar(&opts.force, "force", false, "re-render all images, ignoring the manifest")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "config file (default \""+defaultConfigFile+"\" if present)")

	return cmd
}

// runGenerate is the batch driver: it iterates the format table in order,
// rendering and saving each card. The first error aborts the batch. Files
// whose spec and bytes are unchanged since the recorded run are skipped
// unless --force is set; skipping never modifies bytes on disk.
func runGenerate(ctx context.Context, opts *generateOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := resolveConfig(opts.configPath)
	if err != nil {
		return err
	}

	outDir := opts.output
	if outDir == "" {
		outDir = cfg.OutputDir
	}
	if outDir == "" {
		outDir = defaultOutputDir
	}
	force := opts.force || cfg.Force

	specs, err := selectFormats(opts.only)
	if err != nil {
		return err
	}

	printTitle("Generating OG images (%d×%d)", ogimage.Width, ogimage.Height)
	printNewline()

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	prev, err := manifest.Load(outDir)
	if err != nil {
		// A corrupt manifest only costs us the skip optimization.
		logger.Warnf("Ignoring unreadable manifest: %v", err)
		prev = nil
	}

	var rendererOpts []ogimage.Option
	if cfg.Brand != "" {
		rendererOpts = append(rendererOpts, ogimage.WithBrand(cfg.Brand))
	}
	renderer := ogimage.NewRenderer(fonts.NewResolver(), rendererOpts...)

	prog := newProgress(logger)
	next := manifest.New(ogimage.Width, ogimage.Height)
	cached := 0

	for _, spec := range specs {
		path := filepath.Join(outDir, spec.Filename)
		specHash := spec.Hash()

		if !force && prev != nil {
			if e, ok := prev.Lookup(spec.Key); ok && e.SpecHash == specHash && fileMatches(path, e) {
				logger.Debugf("Skipping %s: spec and file unchanged", spec.Key)
				next.Add(e)
				printFile(path, true)
				cached++
				continue
			}
		}

		logger.Debugf("Rendering %s", spec.Key)
		img, err := renderer.Render(spec)
		if err != nil {
			return err
		}
		data, err := ogimage.EncodePNG(img)
		if err != nil {
			return err
		}
		if err := ogimage.WriteFile(path, data); err != nil {
			return err
		}

		next.Add(manifest.Entry{
			Key:      spec.Key,
			Filename: spec.Filename,
			SpecHash: specHash,
			SHA256:   manifest.Sum(data),
			Bytes:    int64(len(data)),
		})
		printFile(path, false)
	}

	if err := next.Write(outDir); err != nil {
		return err
	}

	printNewline()
	printSuccess("Created %d images (%d cached)", len(specs), cached)
	prog.done(fmt.Sprintf("Generated %d images", len(specs)))
	return nil
}

// resolveConfig loads the explicit config file, or probes the default one.
func resolveConfig(path string) (Config, error) {
	if path != "" {
		return loadConfig(path, true)
	}
	return loadConfig(defaultConfigFile, false)
}

// selectFormats maps --only keys to specs, preserving the table order when
// no filter is given. Unknown keys are an error.
func selectFormats(only []string) ([]ogimage.FormatSpec, error) {
	if len(only) == 0 {
		return ogimage.Formats(), nil
	}

	out := make([]ogimage.FormatSpec, 0, len(only))
	for _, key := range only {
		key = strings.TrimSpace(key)
		spec, ok := ogimage.Lookup(key)
		if !ok {
			return nil, fmt.Errorf("unknown format %q (run 'ogimage list' to see available keys)", key)
		}
		out = append(out, spec)
	}
	return out, nil
}

// fileMatches reports whether the file at path still has the checksum the
// manifest recorded for it.
func fileMatches(path string, e manifest.Entry) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return manifest.Sum(data) == e.SHA256
}
