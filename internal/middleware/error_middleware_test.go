package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/yigit/mentorhub/internal/app/models/dto"
	"github.com/yigit/mentorhub/internal/pkg/apperrors"
)

func TestHandleAPIError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{
			name:       "request not found or unauthorized",
			err:        apperrors.ErrRequestNotFoundOrUnauthorized,
			wantStatus: http.StatusNotFound,
			wantCode:   dto.ErrorCodeResourceNotFound,
		},
		{
			// rating a session that is not completed surfaces the same
			// sentinel as a missing session, never a distinguishing 409
			name:       "session not found or unauthorized",
			err:        apperrors.ErrSessionNotFoundOrUnauthorized,
			wantStatus: http.StatusNotFound,
			wantCode:   dto.ErrorCodeResourceNotFound,
		},
		{
			name:       "mentor not found",
			err:        apperrors.ErrMentorNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   dto.ErrorCodeResourceNotFound,
		},
		{
			name:       "permission denied",
			err:        apperrors.ErrPermissionDenied,
			wantStatus: http.StatusForbidden,
			wantCode:   dto.ErrorCodeForbidden,
		},
		{
			name:       "invalid credentials",
			err:        apperrors.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
			wantCode:   dto.ErrorCodeInvalidCredentials,
		},
		{
			name:       "wrapped validation failure",
			err:        fmt.Errorf("%w: rating must be between 1 and 5", apperrors.ErrValidationFailed),
			wantStatus: http.StatusBadRequest,
			wantCode:   dto.ErrorCodeValidationFailed,
		},
		{
			name:       "email already exists",
			err:        apperrors.ErrEmailAlreadyExists,
			wantStatus: http.StatusConflict,
			wantCode:   dto.ErrorCodeResourceAlreadyExists,
		},
		{
			name:       "slot not available",
			err:        apperrors.ErrSlotNotAvailable,
			wantStatus: http.StatusConflict,
			wantCode:   dto.ErrorCodeConflict,
		},
		{
			name:       "date already booked",
			err:        apperrors.ErrDateAlreadyBooked,
			wantStatus: http.StatusConflict,
			wantCode:   dto.ErrorCodeConflict,
		},
		{
			name:       "already rated",
			err:        apperrors.ErrAlreadyRated,
			wantStatus: http.StatusConflict,
			wantCode:   dto.ErrorCodeConflict,
		},
		{
			name:       "unknown error",
			err:        fmt.Errorf("pq: connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   dto.ErrorCodeInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			HandleAPIError(c, tt.err)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}

			var resp dto.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal response: %v", err)
			}
			if resp.Success {
				t.Error("success = true, want false")
			}
			if resp.Error == nil {
				t.Fatal("error detail is nil")
			}
			if resp.Error.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", resp.Error.Code, tt.wantCode)
			}
		})
	}
}

func TestHandleAPIErrorHidesInternals(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleAPIError(c, fmt.Errorf("dial tcp 10.0.0.3:5432: connect: connection refused"))

	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Error == nil {
		t.Fatal("error detail is nil")
	}
	if resp.Error.Message != "Internal server error" {
		t.Errorf("message = %q, leaked internal detail", resp.Error.Message)
	}
}
