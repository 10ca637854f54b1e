package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	tests := []struct {
		name         string
		code         int
		payload      interface{}
		expectedBody string
	}{
		{name: "Object", code: http.StatusOK, payload: map[string]int{"current": 75000}, expectedBody: `{"current":75000}`},
		{name: "String", code: http.StatusAccepted, payload: "processing", expectedBody: `"processing"`},
		{name: "No body", code: http.StatusNoContent, payload: nil, expectedBody: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			RespondWithJSON(w, tt.code, tt.payload)

			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			if tt.expectedBody == "" {
				assert.Empty(t, w.Body.String())
				return
			}
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestRespondWithReason(t *testing.T) {
	w := httptest.NewRecorder()
	RespondWithReason(w, http.StatusPaymentRequired, "insufficient_funds", "insufficient funds")

	var body Response
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	assert.Equal(t, Response{
		Status:  "Payment Required",
		Message: "insufficient funds",
		Reason:  "insufficient_funds",
	}, body)
}

func TestRespondWithError(t *testing.T) {
	w := httptest.NewRecorder()
	RespondWithError(w, http.StatusUnauthorized, "Unauthorized")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"status":"Unauthorized","message":"Unauthorized"}`, w.Body.String())
}
