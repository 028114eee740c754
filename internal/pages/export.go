package pages

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cbcberry/berrysite/internal/progress"
)

// Exporter writes the catalog as a static site.
type Exporter struct {
	renderer  *Renderer
	outputDir string
	reporter  progress.Reporter
}

// NewExporter creates an Exporter. A nil reporter discards progress.
func NewExporter(renderer *Renderer, outputDir string, reporter progress.Reporter) *Exporter {
	if reporter == nil {
		reporter = progress.Nop{}
	}
	return &Exporter{renderer: renderer, outputDir: outputDir, reporter: reporter}
}

// OutputPath maps a page path to its file under the output directory:
// "/" -> index.html, "/about" -> about/index.html, "/404" -> 404.html.
func OutputPath(pagePath string) string {
	switch pagePath {
	case "/":
		return "index.html"
	case NotFoundPath:
		return "404.html"
	}
	return filepath.Join(filepath.FromSlash(strings.Trim(pagePath, "/")), "index.html")
}

// Export renders every page and writes the assets. It returns the number of
// pages written.
func (e *Exporter) Export() (int, error) {
	if err := os.MkdirAll(filepath.Join(e.outputDir, "assets"), 0o755); err != nil {
		return 0, fmt.Errorf("creating output dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(e.outputDir, "assets", "site.css"), []byte(cssContent), 0o644); err != nil {
		return 0, err
	}
	if err := os.WriteFile(filepath.Join(e.outputDir, "assets", "site.js"), []byte(jsContent), 0o644); err != nil {
		return 0, err
	}

	pages := e.renderer.Catalog().Pages()
	e.reporter.Start(len(pages))
	defer e.reporter.Finish()

	for i, p := range pages {
		var buf bytes.Buffer
		if err := e.renderer.Render(&buf, p); err != nil {
			return i, err
		}
		out := filepath.Join(e.outputDir, OutputPath(p.Path))
		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			return i, err
		}
		if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
			return i, fmt.Errorf("writing %s: %w", out, err)
		}
		e.reporter.Update(i+1, p.Path)
	}
	return len(pages), nil
}
