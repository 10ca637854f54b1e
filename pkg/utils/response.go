package utils

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// Response is the body of every error reply.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Reason  string `json:"reason,omitempty"`
}

func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("failed to write response", zap.Error(err))
	}
}

func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithReason(w, code, "", message)
}

// RespondWithReason adds a machine readable reason to the error body.
func RespondWithReason(w http.ResponseWriter, code int, reason, message string) {
	RespondWithJSON(w, code, Response{
		Status:  http.StatusText(code),
		Message: message,
		Reason:  reason,
	})
}
