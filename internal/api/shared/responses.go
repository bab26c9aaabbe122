package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

// SuccessResponse is the envelope for successful responses that carry a
// payload. Data is always serialized, so an empty list renders as
// "data":[] rather than disappearing.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// StatusResponse is the bare envelope for successful responses with no
// payload, such as deletes.
type StatusResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse is the envelope for every failure response. Only the
// sanitized message crosses the process boundary.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// RespondWithJSON writes an arbitrary JSON body with the given status.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithData writes {"success":true,"data":...} with the given status.
func RespondWithData(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	RespondWithJSON(w, r, status, SuccessResponse{Success: true, Data: data})
}

// RespondWithSuccess writes a bare {"success":true}, used by deletes.
func RespondWithSuccess(w http.ResponseWriter, r *http.Request, status int) {
	RespondWithJSON(w, r, status, StatusResponse{Success: true})
}

// RespondWithError writes {"success":false,"error":message} with the given
// status and logs it with the request's trace ID.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	slog.Debug("sending error response",
		"status_code", status,
		"message", message,
		"trace_id", GetTraceID(r.Context()),
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, ErrorResponse{Success: false, Error: message})
}

// RespondWithErrorAndLog writes a sanitized error response and logs the
// full underlying error server-side. 5xx responses log at ERROR, 4xx at
// DEBUG; the raw error never reaches the caller.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
) {
	attrs := []slog.Attr{
		slog.String("trace_id", GetTraceID(r.Context())),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}
	if err != nil {
		attrs = append(attrs,
			slog.String("error", err.Error()),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	level := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	slog.LogAttrs(r.Context(), level, "API error response", attrs...)

	RespondWithJSON(w, r, status, ErrorResponse{Success: false, Error: userMessage})
}
