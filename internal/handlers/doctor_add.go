package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/nexuscare/nexuscare/internal/logger"
	"github.com/nexuscare/nexuscare/internal/models"
)

// DoctorAdder defines the interface that the registry service must
// implement.
type DoctorAdder interface {
	Add(ctx context.Context, doc models.Doctor) (*models.Doctor, error)
}

// AddDoctorRequest represents the JSON body for registering a doctor
// swagger:model AddDoctorRequest
type AddDoctorRequest struct {
	// Full name with title
	// required: true
	// default: Dr. Jane Doe
	Name string `json:"name"`

	// Medical specialty
	// required: true
	// default: Cardiology
	Specialty string `json:"specialty"`

	// Experience, free-form
	// default: 10 Years
	Experience string `json:"experience"`

	// Short biography
	Bio string `json:"bio"`

	// Portrait URL
	ImageURL string `json:"imageUrl"`

	// Ordered slot strings
	Availability []string `json:"availability"`
}

// NewAddDoctorHandler returns an HTTP handler for registering a doctor.
// @Summary Add doctor
// @Description Registers a new doctor and returns it with a generated id
// @Tags doctors
// @Accept json
// @Produce json
// @Param addDoctorRequest body handlers.AddDoctorRequest true "Add Doctor Request"
// @Success 201 {object} models.Doctor "Doctor created"
// @Failure 400 {object} handlers.DoctorErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.DoctorErrorResponse "Unauthorized"
// @Router /doctors [post]
// @Security BearerAuth
func NewAddDoctorHandler(svc DoctorAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddDoctorRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DoctorErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		if req.Name == "" || req.Specialty == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DoctorErrorResponse{
				Error: "name and specialty are required",
			})
			return
		}

		doc, err := svc.Add(r.Context(), models.Doctor{
			Name:         req.Name,
			Specialty:    req.Specialty,
			Experience:   req.Experience,
			Bio:          req.Bio,
			ImageURL:     req.ImageURL,
			Availability: req.Availability,
		})
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(DoctorErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(doc)
	}
}
