// Package response provides helpers for writing consistent JSON HTTP responses.
//
// Every error the API returns has the same shape:
//
//	{ "message": "Token inválido" }
//
// The message strings are fixed per failure (they never echo the value the
// client sent), so clients can match on them.
package response

import (
	"encoding/json"
	"net/http"
)

// Message is the envelope for every error response.
type Message struct {
	Message string `json:"message"`
}

// Fixed messages shared by more than one package.
const (
	MsgInternal    = "internal server error"
	MsgInvalidBody = "invalid request body"
	MsgInvalidID   = "invalid id"
)

// WriteJSON writes a JSON-encoded response with the given HTTP status code.
//
// IMPORTANT ORDER: Header() → WriteHeader() → body writes.
// Once WriteHeader is called (or the first Write), headers are locked.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// WriteMessage writes {"message": msg} with the given status.
func WriteMessage(w http.ResponseWriter, status int, msg string) error {
	return WriteJSON(w, status, Message{Message: msg})
}

// WriteInternalError writes the generic 500 response. The underlying error
// is never sent to the client; log it at the call site instead.
func WriteInternalError(w http.ResponseWriter) error {
	return WriteMessage(w, http.StatusInternalServerError, MsgInternal)
}
