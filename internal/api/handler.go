package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cirocosta/timerclock/internal/model"
	"github.com/cirocosta/timerclock/internal/repository"
)

// Handler handles HTTP requests for the clock service
type Handler struct {
	svc ClockService
}

// NewHandler creates a new handler with the given service
func NewHandler(svc ClockService) *Handler {
	return &Handler{svc: svc}
}

// decode reads a JSON request body into v, writing a 400 on failure
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, "invalid request format", http.StatusBadRequest)
		return false
	}
	return true
}

// writeServiceError maps service errors to status codes. action names what
// failed for the generic 500 message.
func writeServiceError(w http.ResponseWriter, err error, action string) {
	var verr model.ValidationError
	if errors.As(err, &verr) {
		writeError(w, verr.Error(), http.StatusUnprocessableEntity)
		return
	}

	var notFound repository.ErrNotFound
	if errors.As(err, &notFound) {
		writeError(w, notFound.Error(), http.StatusNotFound)
		return
	}

	writeError(w, "error "+action, http.StatusInternalServerError)
}

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "error encoding response", http.StatusInternalServerError)
	}
}

// writeError writes an error response with the given status code
func writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(model.ErrorResponse{
		Error: message,
	})
}
