package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/nexuscare/nexuscare/internal/logger"
	"github.com/nexuscare/nexuscare/internal/models"
)

// AppointmentBooker defines the interface that the booking service must
// implement.
type AppointmentBooker interface {
	Book(ctx context.Context, app models.Appointment) (string, error)
}

// BookAppointmentRequest represents the JSON body for booking a visit
// swagger:model BookAppointmentRequest
type BookAppointmentRequest struct {
	// Patient record id
	// required: true
	// default: USR-AB12CD
	PatientID string `json:"patientId"`

	// Patient full name
	// required: true
	// default: Jane Doe
	PatientName string `json:"patientName"`

	// Patient email
	PatientEmail string `json:"patientEmail"`

	// Patient contact number
	PatientContact string `json:"patientContact"`

	// Doctor record id
	// required: true
	// default: DOC-01
	DoctorID string `json:"doctorId"`

	// Doctor full name
	// required: true
	// default: Dr. Sarah Mitchell
	DoctorName string `json:"doctorName"`

	// Specialty
	// default: Cardiology
	Specialty string `json:"specialty"`

	// Visit date (YYYY-MM-DD)
	// required: true
	// default: 2026-09-01
	Date string `json:"date"`

	// Visit slot
	// required: true
	// default: 09:00 AM
	Time string `json:"time"`
}

// BookAppointmentResponse reports the created booking id
// swagger:model BookAppointmentResponse
type BookAppointmentResponse struct {
	// Success flag
	// default: true
	Success bool `json:"success"`

	// Booking id, APP- prefixed
	// default: APP-AB12CD
	ID string `json:"id"`
}

// NewBookAppointmentHandler returns an HTTP handler for booking a visit.
// @Summary Book appointment
// @Description Creates a pending booking and returns its id
// @Tags appointments
// @Accept json
// @Produce json
// @Param bookAppointmentRequest body handlers.BookAppointmentRequest true "Book Appointment Request"
// @Success 201 {object} handlers.BookAppointmentResponse "Booking created"
// @Failure 400 {object} handlers.AppointmentErrorResponse "Invalid request body"
// @Router /appointments [post]
func NewBookAppointmentHandler(svc AppointmentBooker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BookAppointmentRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AppointmentErrorResponse{
				Message: "invalid request body",
			})
			return
		}

		if req.PatientID == "" || req.PatientName == "" || req.DoctorID == "" ||
			req.DoctorName == "" || req.Date == "" || req.Time == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AppointmentErrorResponse{
				Message: "patient, doctor, date and time are required",
			})
			return
		}

		id, err := svc.Book(r.Context(), models.Appointment{
			PatientID:      req.PatientID,
			PatientName:    req.PatientName,
			PatientEmail:   req.PatientEmail,
			PatientContact: req.PatientContact,
			DoctorID:       req.DoctorID,
			DoctorName:     req.DoctorName,
			Specialty:      req.Specialty,
			Date:           req.Date,
			Time:           req.Time,
		})
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AppointmentErrorResponse{
				Message: "Internal server error",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(BookAppointmentResponse{
			Success: true,
			ID:      id,
		})
	}
}
