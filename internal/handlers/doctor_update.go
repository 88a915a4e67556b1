package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nexuscare/nexuscare/internal/logger"
	"github.com/nexuscare/nexuscare/internal/models"
	"github.com/nexuscare/nexuscare/internal/services"
)

// DoctorUpdater defines the interface that the registry service must
// implement.
type DoctorUpdater interface {
	Update(ctx context.Context, id string, patch models.DoctorPatch) (*models.Doctor, error)
}

// NewUpdateDoctorHandler returns an HTTP handler for patching a doctor.
// @Summary Update doctor
// @Description Merges a partial update into an existing doctor
// @Tags doctors
// @Accept json
// @Produce json
// @Param doctorID path string true "Doctor ID"
// @Param doctorPatch body models.DoctorPatch true "Doctor Patch"
// @Success 200 {object} models.Doctor "Updated doctor"
// @Failure 400 {object} handlers.DoctorErrorResponse "Invalid request body"
// @Failure 404 {object} handlers.DoctorErrorResponse "Doctor not found"
// @Router /doctors/{doctorID} [patch]
// @Security BearerAuth
func NewUpdateDoctorHandler(svc DoctorUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doctorID := chi.URLParam(r, "doctorID")

		var patch models.DoctorPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DoctorErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		doc, err := svc.Update(r.Context(), doctorID, patch)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(DoctorErrorResponse{
					Error: "Doctor not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(DoctorErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(doc)
	}
}
