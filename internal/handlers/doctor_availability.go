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

// AvailabilityGetter defines the interface that the registry service must
// implement.
type AvailabilityGetter interface {
	Availability(ctx context.Context, doctorID, date string) ([]string, error)
}

// NewDoctorAvailabilityHandler returns an HTTP handler for fetching a
// doctor's slot list.
// @Summary Doctor availability
// @Description Fetches the doctor's bookable slots for a date
// @Tags doctors
// @Produce json
// @Param doctorID path string true "Doctor ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {array} string "Slot list"
// @Failure 404 {object} handlers.DoctorErrorResponse "Doctor not found"
// @Router /doctors/{doctorID}/availability [get]
func NewDoctorAvailabilityHandler(svc AvailabilityGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doctorID := chi.URLParam(r, "doctorID")
		date := r.URL.Query().Get("date")

		slots, err := svc.Availability(r.Context(), doctorID, date)
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
		if slots == nil {
			slots = []string{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(slots)
	}
}
