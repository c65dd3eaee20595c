package handlers

import (
	"net/http"
)

// NewPageHandler serves a single HTML page from disk.
func NewPageHandler(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, path)
	}
}

// NewStaticHandler serves the files of dir under the /static/ prefix.
func NewStaticHandler(dir string) http.Handler {
	return http.StripPrefix("/static/", http.FileServer(http.Dir(dir)))
}
