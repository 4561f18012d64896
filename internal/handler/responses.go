package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/osse101/questgame/internal/logger"
)

// ErrorResponse is the body of every failed API call. The optional fields
// carry the context the UI needs to explain the failure.
type ErrorResponse struct {
	Error       string `json:"error"`
	Fortune     *int   `json:"fortune,omitempty"`
	Cost        *int   `json:"cost,omitempty"`
	AlreadySpun bool   `json:"already_spun,omitempty"`
	Quest       string `json:"quest,omitempty"`
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// OKResponse is embedded in write responses so they carry "ok": true
type OKResponse struct {
	OK bool `json:"ok"`
}

var okBody = OKResponse{OK: true}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode first so an encoding failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed operation and writes its mapped error body
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, body := errorResponseFor(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Info(opName+" rejected", "reason", err)
	}
	respondJSON(w, status, body)
}

// HandleNotFound answers unknown routes with a JSON error
func HandleNotFound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, ErrMsgNotFound)
	}
}

// HandleMethodNotAllowed answers known routes called with the wrong method
func HandleMethodNotAllowed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, ErrMsgMethodNotAllowed)
	}
}
