// Package httputil holds the JSON response helpers shared by all HTTP
// handlers: success rendering, the uniform error envelope, and request body
// decoding.
package httputil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// ErrorResponse is the envelope used for every non-2xx response. Fields is
// only populated for validation failures.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// JSON writes v as a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// Error writes the uniform error envelope. The message must not carry
// internal detail; callers pass a generic, user-facing string.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorResponse{Error: message})
}

// ValidationError writes a 422 envelope carrying per-field messages.
func ValidationError(w http.ResponseWriter, fields map[string]string) {
	JSON(w, http.StatusUnprocessableEntity, ErrorResponse{
		Error:  "validation failed",
		Fields: fields,
	})
}

// Unauthorized writes the uniform 401 response. Every authentication failure
// produces this exact body regardless of cause.
func Unauthorized(w http.ResponseWriter) {
	Error(w, http.StatusUnauthorized, "unauthorized")
}

// Decode reads a single JSON value from the request body into v, rejecting
// trailing garbage after it. Unknown fields are ignored; the validate tags on
// the payload decide what the request must carry.
func Decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after JSON body")
	}

	return nil
}
