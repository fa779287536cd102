// Package controllers adapts HTTP requests to repository calls.
//
// Each handler performs exactly one storage operation and maps its outcome
// to a status code: 200/201/204 on success, 404 when a single-row lookup
// finds nothing, 500 with the storage error message for everything else.
// Request bodies are taken as-is; field presence and content are not
// validated here.
package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// parseID reads the {id} path parameter as an unsigned integer.
func parseID(r *http.Request) (uint, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
