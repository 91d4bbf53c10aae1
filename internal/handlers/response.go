package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-mood-journal/internal/middlewares"
)

// ErrorResponse is the body of every failed request.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// MessageResponse is the body of requests that return no data.
// swagger:model MessageResponse
type MessageResponse struct {
	// Message
	Message string `json:"message"`
}

const (
	msgInternalError = "Internal server error"
	msgUnauthorized  = "Unauthorized"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// currentUser returns the user logged in to the session of r.
func currentUser(r *http.Request) (string, bool) {
	session := middlewares.GetSessionFromContext(r.Context())
	if session == nil {
		return "", false
	}
	return session.CurrentUser()
}
