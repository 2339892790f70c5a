package cli

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"
)

// defaultServeAddr is the preview server's default listen address.
const defaultServeAddr = ":8607"

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr       string
	output     string
	configPath string
}

// newServeCmd creates the serve command: a local HTTP server with an index
// page previewing the generated cards. Preview only; the real images are
// served by the site's own hosting.
func newServeCmd() *cobra.Command {
	opts := serveOpts{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Preview generated cards in a browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (default \""+defaultServeAddr+"\")")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "directory holding the generated PNGs (default \""+defaultOutputDir+"\")")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "config file (default \""+defaultConfigFile+"\" if present)")

	return cmd
}

// runServe starts the preview server and blocks until ctx is cancelled or
// the listener fails.
func runServe(ctx context.Context, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := resolveConfig(opts.configPath)
	if err != nil {
		return err
	}

	dir := opts.output
	if dir == "" {
		dir = cfg.OutputDir
	}
	if dir == "" {
		dir = defaultOutputDir
	}
	addr := opts.addr
	if addr == "" {
		addr = cfg.Addr
	}
	if addr == "" {
		addr = defaultServeAddr
	}

	if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("output dir %s: %w (run 'ogimage generate' first)", dir, err)
	}

	srv := &http.Server{Addr: addr, Handler: newRouter(dir)}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Infof("Preview server listening on %s", addr)
	printInfo("Open http://localhost%s to preview the cards", addr)

	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// newRouter builds the preview routes: an HTML index at / and the raw PNGs
// under /images/.
func newRouter(dir string) http.Handler {
	r := chi.NewRouter()
	r.Get("/", handleIndex(dir))
	r.Handle("/images/*", http.StripPrefix("/images/", http.FileServer(http.Dir(dir))))
	return r
}

// indexCard is one entry on the preview page.
type indexCard struct {
	Name string
	KB   int64
}

var indexTmpl = template.Must(template.New("index").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>OG image preview</title>
<style>
body { font-family: sans-serif; background: #1f2937; color: #f8fafc; margin: 2rem; }
figure { margin: 0 0 2rem 0; }
img { max-width: 600px; width: 100%; border-radius: 6px; }
figcaption { color: #9ca3af; margin-top: 0.5rem; font-size: 0.9rem; }
</style>
</head>
<body>
<h1>OG image preview</h1>
{{range .}}<figure>
<img src="/images/{{.Name}}" alt="{{.Name}}">
<figcaption>{{.Name}} · {{.KB}} KB</figcaption>
</figure>
{{else}}<p>No PNG files found. Run <code>ogimage generate</code> first.</p>
{{end}}</body>
</html>
`))

// handleIndex renders the preview index from whatever PNGs are currently in
// the directory, so a re-run of generate is picked up on refresh.
func handleIndex(dir string) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		var cards []indexCard
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".png") {
				continue
			}
			info, err := e.Info()
			if err != nil {
				continue
			}
			cards = append(cards, indexCard{Name: filepath.Base(e.Name()), KB: info.Size() / 1024})
		}
		sort.Slice(cards, func(i, j int) bool { return cards[i].Name < cards[j].Name })

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = indexTmpl.Execute(w, cards)
	}
}
