package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nexuscare/nexuscare/internal/logger"
	"github.com/nexuscare/nexuscare/internal/models"
	"github.com/nexuscare/nexuscare/internal/services"
)

// Signuper defines the interface that the signup service must implement.
type Signuper interface {
	Signup(ctx context.Context, in services.SignupInput) (*models.User, error)
}

// SignupRequest represents the JSON body for account creation
// swagger:model SignupRequest
type SignupRequest struct {
	// Full name
	// required: true
	// default: Jane Doe
	Name string `json:"name"`

	// Email
	// required: true
	// default: jane@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`

	// Role, defaults to PATIENT
	// default: PATIENT
	Role string `json:"role,omitempty"`

	// Security question for account recovery
	// default: What was your first pet's name?
	SecurityQuestion string `json:"securityQuestion"`

	// Security answer
	// default: Rex
	SecurityAnswer string `json:"securityAnswer"`
}

// SignupResponse represents a successful signup response
// swagger:model SignupResponse
type SignupResponse struct {
	// Success flag
	// default: true
	Success bool `json:"success"`

	// Created user
	User *models.User `json:"user"`
}

// SignupErrorResponse represents an error response for signup
// swagger:model SignupErrorResponse
type SignupErrorResponse struct {
	// Success flag
	// default: false
	Success bool `json:"success"`

	// Error message
	// default: Identity clash: Email already registered.
	Message string `json:"message"`
}

// NewSignupHandler returns an HTTP handler for account creation.
// @Summary Create account
// @Description Register a new patient or admin account
// @Tags auth
// @Accept json
// @Produce json
// @Param signupRequest body handlers.SignupRequest true "Signup Request"
// @Success 201 {object} handlers.SignupResponse "Account created"
// @Failure 400 {object} handlers.SignupErrorResponse "Invalid request body"
// @Failure 409 {object} handlers.SignupErrorResponse "Email already registered"
// @Router /signup [post]
func NewSignupHandler(svc Signuper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SignupErrorResponse{
				Message: "invalid request body",
			})
			return
		}

		if req.Name == "" || req.Email == "" || req.Password == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SignupErrorResponse{
				Message: "name, email and password are required",
			})
			return
		}

		user, err := svc.Signup(r.Context(), services.SignupInput{
			Name:             req.Name,
			Email:            req.Email,
			Password:         req.Password,
			Role:             models.UserRole(req.Role),
			SecurityQuestion: req.SecurityQuestion,
			SecurityAnswer:   req.SecurityAnswer,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrIdentityConflict):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(SignupErrorResponse{
					Message: "Identity clash: Email already registered.",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SignupErrorResponse{
					Message: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(SignupResponse{
			Success: true,
			User:    user,
		})
	}
}
