// Package site serves the embedded signup landing page.
package site

import (
	"context"
	"net/http"
)

// indexPath is where the root redirect points. The landing page is a static
// collaborator of the API: it calls /activities and the roster endpoints.
const indexPath = "/static/index.html"

// Register attaches the landing page routes to mux.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	// Serve the embedded landing page assets under /static/
	files := http.FileServer(FS())
	mux.Handle("/static/", http.StripPrefix("/static/", files))

	// Root redirects to the landing page
	root := NewRootHandler()
	mux.HandleFunc("/", root.HandleRoot)
}

// RootHandler handles root path requests
type RootHandler struct{}

// NewRootHandler creates a new root handler
func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

// HandleRoot redirects GET / to the landing page with a temporary redirect.
// 307 preserves the method, matching the original deployment. Any other path
// falling through to this handler is a 404.
func (h *RootHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, indexPath, http.StatusTemporaryRedirect)
}
