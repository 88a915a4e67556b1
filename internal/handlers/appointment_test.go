package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/nexuscare/nexuscare/internal/models"
	"github.com/nexuscare/nexuscare/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestStatusHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	w := httptest.NewRecorder()
	NewStatusHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp StatusResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "online", resp.Status)
}

func TestListAppointmentsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAppointmentLister(ctrl)
	mockSvc.EXPECT().List(gomock.Any()).Return([]models.Appointment{{ID: "APP-1"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/appointments", nil)
	w := httptest.NewRecorder()
	NewListAppointmentsHandler(mockSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var apps []models.Appointment
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &apps))
	assert.Len(t, apps, 1)
}

func TestBookAppointmentHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAppointmentBooker(ctrl)
	handler := NewBookAppointmentHandler(mockSvc)

	valid := BookAppointmentRequest{
		PatientID:   "USR-AB12CD",
		PatientName: "Jane Doe",
		DoctorID:    "DOC-01",
		DoctorName:  "Dr. Sarah Mitchell",
		Specialty:   "Cardiology",
		Date:        "2026-09-01",
		Time:        "09:00 AM",
	}

	t.Run("success", func(t *testing.T) {
		mockSvc.EXPECT().
			Book(gomock.Any(), gomock.Any()).
			Return("APP-AB12CD", nil)

		body, _ := json.Marshal(valid)
		req := httptest.NewRequest(http.MethodPost, "/appointments", bytes.NewReader(body))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp BookAppointmentResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "APP-AB12CD", resp.ID)
	})

	t.Run("missing fields", func(t *testing.T) {
		body, _ := json.Marshal(BookAppointmentRequest{PatientID: "USR-AB12CD"})
		req := httptest.NewRequest(http.MethodPost, "/appointments", bytes.NewReader(body))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdateAppointmentStatusHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAppointmentStatusUpdater(ctrl)

	router := chi.NewRouter()
	router.Patch("/appointments/{appointmentID}", NewUpdateAppointmentStatusHandler(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.EXPECT().
			UpdateStatus(gomock.Any(), "APP-AB12CD", models.StatusConfirmed).
			Return(&models.Appointment{ID: "APP-AB12CD", Status: models.StatusConfirmed}, nil)

		body, _ := json.Marshal(UpdateAppointmentStatusRequest{Status: "confirmed"})
		req := httptest.NewRequest(http.MethodPatch, "/appointments/APP-AB12CD", bytes.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var app models.Appointment
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &app))
		assert.Equal(t, models.StatusConfirmed, app.Status)
	})

	t.Run("unknown status", func(t *testing.T) {
		body, _ := json.Marshal(UpdateAppointmentStatusRequest{Status: "archived"})
		req := httptest.NewRequest(http.MethodPatch, "/appointments/APP-AB12CD", bytes.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.EXPECT().
			UpdateStatus(gomock.Any(), "APP-MISSING", models.StatusCancelled).
			Return(nil, services.ErrNotFound)

		body, _ := json.Marshal(UpdateAppointmentStatusRequest{Status: "cancelled"})
		req := httptest.NewRequest(http.MethodPatch, "/appointments/APP-MISSING", bytes.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
