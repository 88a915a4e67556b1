package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nexuscare/nexuscare/internal/logger"
	"github.com/nexuscare/nexuscare/internal/services"
)

// PasswordResetter defines the interface that the recovery service must
// implement.
type PasswordResetter interface {
	ResetPassword(ctx context.Context, email, answer string) (string, error)
}

// ResetPasswordRequest represents the JSON body for password recovery
// swagger:model ResetPasswordRequest
type ResetPasswordRequest struct {
	// Email
	// required: true
	// default: jane@example.com
	Email string `json:"email"`

	// Security answer
	// required: true
	// default: Rex
	Answer string `json:"answer"`
}

// ResetPasswordResponse reports the recovery dispatch message
// swagger:model ResetPasswordResponse
type ResetPasswordResponse struct {
	// Success flag
	// default: true
	Success bool `json:"success"`

	// Dispatch message
	// default: Recovery payload dispatched via SMTP Emulator.
	Message string `json:"message"`
}

// ResetPasswordErrorResponse represents an error response for password
// recovery
// swagger:model ResetPasswordErrorResponse
type ResetPasswordErrorResponse struct {
	// Success flag
	// default: false
	Success bool `json:"success"`

	// Error message
	// default: Security challenge failed
	Message string `json:"message"`
}

// NewResetPasswordHandler returns an HTTP handler for the second step of
// account recovery.
// @Summary Reset password
// @Description Check the security answer and dispatch the recovery mail
// @Tags auth
// @Accept json
// @Produce json
// @Param resetPasswordRequest body handlers.ResetPasswordRequest true "Reset Password Request"
// @Success 200 {object} handlers.ResetPasswordResponse "Recovery dispatched"
// @Failure 400 {object} handlers.ResetPasswordErrorResponse "Invalid request body"
// @Failure 403 {object} handlers.ResetPasswordErrorResponse "Security challenge failed"
// @Router /reset-password [post]
func NewResetPasswordHandler(svc PasswordResetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResetPasswordRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ResetPasswordErrorResponse{
				Message: "invalid request body",
			})
			return
		}

		msg, err := svc.ResetPassword(r.Context(), req.Email, req.Answer)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrSecurityChallengeFailed):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(ResetPasswordErrorResponse{
					Message: "Security challenge failed",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ResetPasswordErrorResponse{
					Message: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ResetPasswordResponse{
			Success: true,
			Message: msg,
		})
	}
}
