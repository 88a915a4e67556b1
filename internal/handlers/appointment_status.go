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

// AppointmentStatusUpdater defines the interface that the booking service
// must implement.
type AppointmentStatusUpdater interface {
	UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus) (*models.Appointment, error)
}

// UpdateAppointmentStatusRequest represents the JSON body for a status
// transition
// swagger:model UpdateAppointmentStatusRequest
type UpdateAppointmentStatusRequest struct {
	// New status
	// required: true
	// default: confirmed
	Status string `json:"status"`
}

// NewUpdateAppointmentStatusHandler returns an HTTP handler for mutating a
// booking's status.
// @Summary Update appointment status
// @Description Mutates a booking's status and returns the updated record
// @Tags appointments
// @Accept json
// @Produce json
// @Param appointmentID path string true "Appointment ID"
// @Param updateStatusRequest body handlers.UpdateAppointmentStatusRequest true "Update Status Request"
// @Success 200 {object} models.Appointment "Updated booking"
// @Failure 400 {object} handlers.AppointmentErrorResponse "Invalid request body or status"
// @Failure 404 {object} handlers.AppointmentErrorResponse "Appointment not found"
// @Router /appointments/{appointmentID} [patch]
func NewUpdateAppointmentStatusHandler(svc AppointmentStatusUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		appointmentID := chi.URLParam(r, "appointmentID")

		var req UpdateAppointmentStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AppointmentErrorResponse{
				Message: "invalid request body",
			})
			return
		}

		status := models.AppointmentStatus(req.Status)
		if !models.ValidStatus(status) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AppointmentErrorResponse{
				Message: "unknown status",
			})
			return
		}

		app, err := svc.UpdateStatus(r.Context(), appointmentID, status)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(AppointmentErrorResponse{
					Message: "Appointment not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(AppointmentErrorResponse{
					Message: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(app)
	}
}
