// Package response centralises JSON response writing.
//
// The API contract is deliberately bare: success responses are the row or
// array itself with no envelope, and every error body has the single shape
// {"error": "<message>"}.
package response

import (
	"encoding/json"
	"net/http"
)

type apiError struct {
	Error string `json:"error"`
}

// JSON writes v as the response body with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// Success sends a 200 JSON response.
func Success(w http.ResponseWriter, v interface{}) {
	JSON(w, http.StatusOK, v)
}

// Created sends a 201 JSON response.
func Created(w http.ResponseWriter, v interface{}) {
	JSON(w, http.StatusCreated, v)
}

// NoContent sends a 204 with an empty body.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Error sends {"error": message} with the given status code.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, apiError{Error: message})
}

// NotFound sends a 404 with {"error": message}.
func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, message)
}

// BadRequest sends a 400 with {"error": message}.
func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message)
}

// ServerError sends a 500 with the underlying error message verbatim.
func ServerError(w http.ResponseWriter, err error) {
	Error(w, http.StatusInternalServerError, err.Error())
}
