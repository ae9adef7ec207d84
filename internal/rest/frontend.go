package rest

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// FrontendHandler serves the static frontend build, falling back to the index
// document for client-side routes.
type FrontendHandler struct {
	dir   string
	index string
}

func NewFrontendHandler(dir string, index string) *FrontendHandler {
	return &FrontendHandler{dir: dir, index: index}
}

func (h *FrontendHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(h.dir, filepath.Clean("/"+strings.TrimPrefix(r.URL.Path, "/")))

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		http.ServeFile(w, r, filepath.Join(h.dir, h.index))
		return
	}
	http.ServeFile(w, r, path)
}
