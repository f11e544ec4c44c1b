package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-movie-lists/internal/logger"
)

const internalServerError = "Internal server error"

// ErrorResponse is the body of every error reply.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: list not found
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeInternalError logs err server-side and replies with a generic 500.
func writeInternalError(w http.ResponseWriter, err error) {
	logger.Log.Errorw("internal server error", "err", err)
	writeError(w, http.StatusInternalServerError, internalServerError)
}
