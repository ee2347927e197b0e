// Package host serves the compiled application with HTML5 history fallback:
// client-side paths such as /profile get the app shell instead of a 404.
package host

import (
	"fmt"
	"io/fs"
	"net/http"
	"path"
	"strings"
)

// Handler serves static files from an fs.FS and falls back to the index
// document for extension-less paths.
type Handler struct {
	files fs.FS
	index string
	base  string
	page  []byte
}

// NewHandler reads the index document from files and rewrites its <base href>
// for base. base must start with "/".
func NewHandler(files fs.FS, index, base string) (*Handler, error) {
	raw, err := fs.ReadFile(files, index)
	if err != nil {
		return nil, fmt.Errorf("read index %q: %w", index, err)
	}
	page, err := SetBaseHref(raw, base)
	if err != nil {
		return nil, err
	}
	return &Handler{
		files: files,
		index: index,
		base:  strings.TrimSuffix(base, "/"),
		page:  page,
	}, nil
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	rel, ok := h.stripBase(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}

	name := strings.TrimPrefix(path.Clean("/"+rel), "/")
	if name == "" || name == h.index {
		h.serveIndex(w, r)
		return
	}

	if info, err := fs.Stat(h.files, name); err == nil && !info.IsDir() {
		if path.Ext(name) == ".wasm" {
			w.Header().Set("Content-Type", "application/wasm")
		}
		http.ServeFileFS(w, r, h.files, name)
		return
	}

	// Missing assets stay 404 so broken script or image URLs are not masked
	// by the app shell.
	if path.Ext(name) != "" {
		http.NotFound(w, r)
		return
	}
	h.serveIndex(w, r)
}

// stripBase removes the base path prefix. It reports false for paths outside base.
func (h *Handler) stripBase(p string) (string, bool) {
	if h.base == "" {
		return p, true
	}
	if p == h.base {
		return "/", true
	}
	if rest, ok := strings.CutPrefix(p, h.base+"/"); ok {
		return "/" + rest, true
	}
	return "", false
}

func (h *Handler) serveIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	w.Write(h.page)
}
