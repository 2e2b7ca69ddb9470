package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sasya-arogya/bima/internal/models"
)

// RequireMethod validates that the HTTP request uses the specified method.
// Returns true if the method matches, false otherwise (and writes error response).
func RequireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

// WriteJSON writes a JSON response with the specified status code and data.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

// WriteError writes a standard error JSON response.
func WriteError(w http.ResponseWriter, statusCode int, message string) error {
	return WriteJSON(w, statusCode, map[string]string{
		"status": "error",
		"error":  message,
	})
}

// StatusForError maps engine errors onto HTTP status codes. Lookup misses
// are 4xx-equivalent conditions; configuration and rendering failures are
// server-side.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrCropNotFound), errors.Is(err, models.ErrNoInsurerAvailable):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
