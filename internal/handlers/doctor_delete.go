package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nexuscare/nexuscare/internal/logger"
	"github.com/nexuscare/nexuscare/internal/services"
)

// DoctorDeleter defines the interface that the registry service must
// implement.
type DoctorDeleter interface {
	Delete(ctx context.Context, id string) error
}

// NewDeleteDoctorHandler returns an HTTP handler for removing a doctor.
// @Summary Delete doctor
// @Description Removes a doctor from the registry
// @Tags doctors
// @Produce json
// @Param doctorID path string true "Doctor ID"
// @Success 204 "Doctor removed"
// @Failure 404 {object} handlers.DoctorErrorResponse "Doctor not found"
// @Router /doctors/{doctorID} [delete]
// @Security BearerAuth
func NewDeleteDoctorHandler(svc DoctorDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doctorID := chi.URLParam(r, "doctorID")

		if err := svc.Delete(r.Context(), doctorID); err != nil {
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

		w.WriteHeader(http.StatusNoContent)
	}
}
