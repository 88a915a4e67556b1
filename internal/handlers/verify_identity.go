package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nexuscare/nexuscare/internal/logger"
	"github.com/nexuscare/nexuscare/internal/services"
)

// IdentityVerifier defines the interface that the recovery service must
// implement.
type IdentityVerifier interface {
	VerifyIdentity(ctx context.Context, email string) (string, error)
}

// VerifyIdentityRequest represents the JSON body for identity verification
// swagger:model VerifyIdentityRequest
type VerifyIdentityRequest struct {
	// Email
	// required: true
	// default: jane@example.com
	Email string `json:"email"`
}

// VerifyIdentityResponse carries the account's security question
// swagger:model VerifyIdentityResponse
type VerifyIdentityResponse struct {
	// Success flag
	// default: true
	Success bool `json:"success"`

	// Security question
	// default: What was your first pet's name?
	Question string `json:"question"`
}

// VerifyIdentityErrorResponse represents an error response for identity
// verification
// swagger:model VerifyIdentityErrorResponse
type VerifyIdentityErrorResponse struct {
	// Success flag
	// default: false
	Success bool `json:"success"`

	// Error message
	// default: Identity not found
	Message string `json:"message"`
}

// NewVerifyIdentityHandler returns an HTTP handler for the first step of
// account recovery.
// @Summary Verify identity
// @Description Return the security question for an account
// @Tags auth
// @Accept json
// @Produce json
// @Param verifyIdentityRequest body handlers.VerifyIdentityRequest true "Verify Identity Request"
// @Success 200 {object} handlers.VerifyIdentityResponse "Security question returned"
// @Failure 400 {object} handlers.VerifyIdentityErrorResponse "Invalid request body"
// @Failure 404 {object} handlers.VerifyIdentityErrorResponse "Identity not found"
// @Router /verify-identity [post]
func NewVerifyIdentityHandler(svc IdentityVerifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req VerifyIdentityRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(VerifyIdentityErrorResponse{
				Message: "invalid request body",
			})
			return
		}

		question, err := svc.VerifyIdentity(r.Context(), req.Email)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrIdentityNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(VerifyIdentityErrorResponse{
					Message: "Identity not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(VerifyIdentityErrorResponse{
					Message: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(VerifyIdentityResponse{
			Success:  true,
			Question: question,
		})
	}
}
