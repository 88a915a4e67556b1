package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/nexuscare/nexuscare/internal/logger"
	"github.com/nexuscare/nexuscare/internal/models"
)

// DoctorLister defines the interface that the registry service must
// implement.
type DoctorLister interface {
	List(ctx context.Context) ([]models.Doctor, error)
}

// DoctorErrorResponse represents an error response for registry operations
// swagger:model DoctorErrorResponse
type DoctorErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewListDoctorsHandler returns an HTTP handler for listing the doctor
// registry.
// @Summary List doctors
// @Description Fetches the full doctor registry
// @Tags doctors
// @Produce json
// @Success 200 {array} models.Doctor "Doctor registry"
// @Failure 500 {object} handlers.DoctorErrorResponse "Failed to list doctors"
// @Router /doctors [get]
func NewListDoctorsHandler(svc DoctorLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		docs, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(DoctorErrorResponse{
				Error: "Internal server error",
			})
			return
		}
		if docs == nil {
			docs = []models.Doctor{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(docs)
	}
}
