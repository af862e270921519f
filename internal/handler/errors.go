package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

// errorResponse is the JSON error body shared by all endpoints.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

// errorDetail carries a stable machine-readable code and a human message.
type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// messageResponse is the JSON body of successful write operations.
type messageResponse struct {
	Message string `json:"message"`
}

// writeJSON marshals v and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeNotFound writes a 404 body. The caller supplies the human-readable
// message (e.g. "trip not found") because the handler is the layer that
// knows what was being looked up.
func writeNotFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, errorResponse{errorDetail{Code: "not_found", Message: message}})
}

// writeInvalidState writes a 400 body for a violated business rule.
// The message is extracted from the wrapped domain.ErrInvalidState error.
func writeInvalidState(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusBadRequest, errorResponse{errorDetail{Code: "invalid_state", Message: unwrapMessage(err)}})
}

// writeBadRequest writes a 400 body for a request rejected before reaching
// the service layer (e.g. malformed body or a non-integer path parameter).
func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{errorDetail{Code: "bad_request", Message: message}})
}

// writeInternal logs the unexpected error and writes a generic 500 body.
// The real error never reaches the client.
func writeInternal(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "unexpected error", "error", err, "path", r.URL.Path)
	writeJSON(w, http.StatusInternalServerError, errorResponse{errorDetail{Code: "internal_error", Message: "unexpected error"}})
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "service.ClientService.Delete: invalid state: client is assigned to at
// least one trip" → "client is assigned to at least one trip".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, prefix := range []string{
		"service.BookingService.AssignClientToTrip: ",
		"service.ClientService.Delete: ",
	} {
		msg = strings.TrimPrefix(msg, prefix)
	}
	msg = strings.TrimPrefix(msg, "invalid state: ")
	return msg
}
