package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/nexuscare/nexuscare/internal/logger"
	"github.com/nexuscare/nexuscare/internal/models"
)

// AppointmentLister defines the interface that the booking service must
// implement.
type AppointmentLister interface {
	List(ctx context.Context) ([]models.Appointment, error)
}

// AppointmentErrorResponse represents an error response for booking
// operations
// swagger:model AppointmentErrorResponse
type AppointmentErrorResponse struct {
	// Success flag
	// default: false
	Success bool `json:"success"`

	// Error message
	// default: Internal server error
	Message string `json:"message"`
}

// NewListAppointmentsHandler returns an HTTP handler for listing bookings.
// @Summary List appointments
// @Description Fetches every booking, regardless of status
// @Tags appointments
// @Produce json
// @Success 200 {array} models.Appointment "Bookings"
// @Failure 500 {object} handlers.AppointmentErrorResponse "Failed to list appointments"
// @Router /appointments [get]
func NewListAppointmentsHandler(svc AppointmentLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		apps, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AppointmentErrorResponse{
				Message: "Internal server error",
			})
			return
		}
		if apps == nil {
			apps = []models.Appointment{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(apps)
	}
}
