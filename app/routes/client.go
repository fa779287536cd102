package routes

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/shashiranjanraj/stockpile/config"
	"github.com/shashiranjanraj/stockpile/pkg/router"
)

// clientIndex reports whether a built client bundle exists and returns the
// path of its entry document.
func clientIndex() (string, bool) {
	index := filepath.Join(config.ClientDir(), "index.html")
	info, err := os.Stat(index)
	if err != nil || info.IsDir() {
		return "", false
	}
	return index, true
}

// registerClient wires static serving for the client bundle. Any unmatched
// GET outside /api serves the requested asset if it exists on disk, and
// falls back to index.html so the client's own router can resolve paths
// like /products or /branches.
//
// Bundle presence is checked per request, matching homeHandler, so a
// bundle deployed after startup is picked up without a restart.
func registerClient(r *router.Router) {
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		index, ok := clientIndex()
		if !ok || req.Method != http.MethodGet || strings.HasPrefix(req.URL.Path, "/api") {
			http.NotFound(w, req)
			return
		}

		asset := filepath.Join(config.ClientDir(), filepath.Clean("/"+req.URL.Path))
		if info, err := os.Stat(asset); err == nil && !info.IsDir() {
			http.ServeFile(w, req, asset)
			return
		}

		http.ServeFile(w, req, index)
	})
}
