package client

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/nexuscare/nexuscare/internal/models"
	"github.com/nexuscare/nexuscare/internal/storage"
)

// Appointments returns every booking, regardless of status.
func (c *Client) Appointments(ctx context.Context) ([]models.Appointment, error) {
	var apps []models.Appointment
	if err := c.do(ctx, http.MethodGet, "/appointments", nil, &apps); err != nil {
		c.fallback("appointments", err)
		var local []models.Appointment
		if err := c.store.List(storage.CollectionAppointments, &local); err != nil {
			return nil, err
		}
		return local, nil
	}
	return apps, nil
}

// BookAppointmentRequest is the payload for booking a visit.
type BookAppointmentRequest struct {
	PatientID      string `json:"patientId"`
	PatientName    string `json:"patientName"`
	PatientEmail   string `json:"patientEmail"`
	PatientContact string `json:"patientContact"`
	DoctorID       string `json:"doctorId"`
	DoctorName     string `json:"doctorName"`
	Specialty      string `json:"specialty"`
	Date           string `json:"date"`
	Time           string `json:"time"`
}

// bookResponse is the wire shape returned by POST /appointments.
type bookResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
	Message string `json:"message,omitempty"`
}

// BookAppointment creates a pending booking and returns its id. The
// fallback path performs no slot-conflict check: two patients may book the
// same doctor and slot.
func (c *Client) BookAppointment(ctx context.Context, req BookAppointmentRequest) (string, error) {
	if req.PatientID == "" || req.PatientName == "" || req.DoctorID == "" ||
		req.DoctorName == "" || req.Date == "" || req.Time == "" {
		return "", ErrValidation
	}

	var resp bookResponse
	if err := c.do(ctx, http.MethodPost, "/appointments", req, &resp); err != nil {
		c.fallback("book-appointment", err)
		return c.bookAppointmentLocal(req)
	}
	if !resp.Success {
		return "", ErrValidation
	}
	return resp.ID, nil
}

func (c *Client) bookAppointmentLocal(req BookAppointmentRequest) (string, error) {
	var apps []models.Appointment
	if err := c.store.List(storage.CollectionAppointments, &apps); err != nil {
		return "", err
	}
	app := models.Appointment{
		ID:             models.NewRecordID(models.AppointmentIDPrefix),
		PatientID:      req.PatientID,
		PatientName:    req.PatientName,
		PatientEmail:   req.PatientEmail,
		PatientContact: req.PatientContact,
		DoctorID:       req.DoctorID,
		DoctorName:     req.DoctorName,
		Specialty:      req.Specialty,
		Date:           req.Date,
		Time:           req.Time,
		Status:         models.StatusPending,
		Timestamp:      time.Now().Format(time.RFC3339),
	}
	apps = append(apps, app)
	if err := c.store.Save(storage.CollectionAppointments, apps); err != nil {
		return "", err
	}
	return app.ID, nil
}

// UpdateAppointmentStatus mutates a booking's status in place and returns
// the updated record. The transition graph is deliberately unconstrained:
// any known status may follow any other.
func (c *Client) UpdateAppointmentStatus(ctx context.Context, id string, status models.AppointmentStatus) (*models.Appointment, error) {
	if !models.ValidStatus(status) {
		return nil, ErrValidation
	}

	body := map[string]models.AppointmentStatus{"status": status}
	var app models.Appointment
	if err := c.do(ctx, http.MethodPatch, "/appointments/"+url.PathEscape(id), body, &app); err != nil {
		c.fallback("update-appointment-status", err)
		return c.updateAppointmentStatusLocal(id, status)
	}
	return &app, nil
}

func (c *Client) updateAppointmentStatusLocal(id string, status models.AppointmentStatus) (*models.Appointment, error) {
	var apps []models.Appointment
	if err := c.store.List(storage.CollectionAppointments, &apps); err != nil {
		return nil, err
	}
	for i := range apps {
		if apps[i].ID == id {
			apps[i].Status = status
			if err := c.store.Save(storage.CollectionAppointments, apps); err != nil {
				return nil, err
			}
			app := apps[i]
			return &app, nil
		}
	}
	return nil, ErrNotFound
}
