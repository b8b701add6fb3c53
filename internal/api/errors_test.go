package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestErrorResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		status         int
		code           string
		message        string
		expectedStatus int
		expectedCode   string
		expectedMsg    string
	}{
		{
			name:           "BadRequest",
			status:         http.StatusBadRequest,
			code:           ErrCodeInvalidRequest,
			message:        "invalid request payload",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   ErrCodeInvalidRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "NotFound",
			status:         http.StatusNotFound,
			code:           ErrCodeContentNotFound,
			message:        "Content not found",
			expectedStatus: http.StatusNotFound,
			expectedCode:   ErrCodeContentNotFound,
			expectedMsg:    "Content not found",
		},
		{
			name:           "InternalError",
			status:         http.StatusInternalServerError,
			code:           ErrCodeInternalError,
			message:        "Failed to fetch messages",
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   ErrCodeInternalError,
			expectedMsg:    "Failed to fetch messages",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			ErrorResponse(c, tt.status, tt.code, tt.message)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			var payload APIError
			if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
				t.Fatalf("failed to decode error payload: %v", err)
			}
			if payload.Code != tt.expectedCode {
				t.Fatalf("expected code %s, got %s", tt.expectedCode, payload.Code)
			}
			if payload.Message != tt.expectedMsg {
				t.Fatalf("expected message %q, got %q", tt.expectedMsg, payload.Message)
			}
		})
	}
}

func TestValidationFailedIncludesFieldDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	ValidationFailed(c, map[string]string{"email": "Valid email is required"})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}

	var payload struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode error payload: %v", err)
	}
	if payload.Code != ErrCodeValidation {
		t.Fatalf("expected code %s, got %s", ErrCodeValidation, payload.Code)
	}
	if payload.Message != "Validation errors" {
		t.Fatalf("unexpected message %q", payload.Message)
	}
	if payload.Details["email"] != "Valid email is required" {
		t.Fatalf("expected email detail, got %#v", payload.Details)
	}
}
