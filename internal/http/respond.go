package http

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/DarlanCavalcante/tech10/internal/logger"
)

// MessageResponse is the API's `{message}` envelope for errors and
// confirmations.
type MessageResponse struct {
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Log.Error("failed to encode response", zap.Error(err))
	}
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, MessageResponse{Message: message})
}
