package pages

import (
	"bytes"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts every catalog page, the site assets and, when
// publicDir exists, static files (images, PDFs) under /images and /docs.
func RegisterRoutes(r chi.Router, rend *Renderer, publicDir string) {
	r.Get("/assets/site.css", serveAsset("text/css; charset=utf-8", cssContent))
	r.Get("/assets/site.js", serveAsset("application/javascript; charset=utf-8", jsContent))

	if info, err := os.Stat(publicDir); err == nil && info.IsDir() {
		fs := http.FileServer(http.Dir(publicDir))
		r.Handle("/images/*", fs)
		r.Handle("/docs/*", fs)
	}

	for _, p := range rend.Catalog().Pages() {
		if p.Path == NotFoundPath {
			continue
		}
		r.Get(p.Path, handlePage(rend, p, http.StatusOK))
	}

	if nf, ok := rend.Catalog().Lookup(NotFoundPath); ok {
		r.NotFound(handlePage(rend, nf, http.StatusNotFound))
	}
}

func handlePage(rend *Renderer, p *Page, status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		if err := rend.Render(&buf, p); err != nil {
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		buf.WriteTo(w)
	}
}

func serveAsset(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Write([]byte(body))
	}
}
