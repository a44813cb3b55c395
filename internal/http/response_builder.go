package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// jsonResponse builds API responses with a consistent shape: either a
// payload object or an error envelope carrying a machine-readable code
// and, for validation failures, the offending field.
type jsonResponse struct {
	statusCode int
	headers    map[string]string
	payload    any
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func newResponse() *jsonResponse {
	return &jsonResponse{
		statusCode: http.StatusOK,
		headers:    make(map[string]string),
	}
}

func (b *jsonResponse) status(code int) *jsonResponse {
	b.statusCode = code
	return b
}

func (b *jsonResponse) body(v any) *jsonResponse {
	b.payload = v
	return b
}

func (b *jsonResponse) write(w http.ResponseWriter) {
	for name, value := range b.headers {
		w.Header().Set(name, value)
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(b.statusCode)
	if b.payload != nil {
		if err := json.NewEncoder(w).Encode(b.payload); err != nil {
			slog.Error("Failed to encode response body", "error", err)
		}
	}
}

func errorResponse(statusCode int, code, message string) *jsonResponse {
	return newResponse().
		status(statusCode).
		body(errorBody{Error: errorDetail{Code: code, Message: message}})
}

func validationErrorResponse(field, message string) *jsonResponse {
	return newResponse().
		status(http.StatusUnprocessableEntity).
		body(errorBody{Error: errorDetail{Code: "validation_failed", Message: message, Field: field}})
}

func methodNotAllowed(w http.ResponseWriter, allowed string) {
	w.Header().Set("Allow", allowed)
	errorResponse(http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed").write(w)
}
