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

func TestListDoctorsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockDoctorLister(ctrl)
	mockSvc.EXPECT().List(gomock.Any()).Return(models.SeedDoctors(), nil)

	req := httptest.NewRequest(http.MethodGet, "/doctors", nil)
	w := httptest.NewRecorder()
	NewListDoctorsHandler(mockSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var docs []models.Doctor
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &docs))
	assert.Len(t, docs, 4)
	assert.Equal(t, "DOC-01", docs[0].ID)
}

func TestAddDoctorHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockDoctorAdder(ctrl)
	handler := NewAddDoctorHandler(mockSvc)

	t.Run("success", func(t *testing.T) {
		mockSvc.EXPECT().
			Add(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, doc models.Doctor) (*models.Doctor, error) {
				doc.ID = "DOC-AB12CD"
				return &doc, nil
			})

		body, _ := json.Marshal(AddDoctorRequest{Name: "Dr. X", Specialty: "Oncology"})
		req := httptest.NewRequest(http.MethodPost, "/doctors", bytes.NewReader(body))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var doc models.Doctor
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
		assert.Equal(t, "DOC-AB12CD", doc.ID)
	})

	t.Run("missing name", func(t *testing.T) {
		body, _ := json.Marshal(AddDoctorRequest{Specialty: "Oncology"})
		req := httptest.NewRequest(http.MethodPost, "/doctors", bytes.NewReader(body))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdateDoctorHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockDoctorUpdater(ctrl)

	router := chi.NewRouter()
	router.Patch("/doctors/{doctorID}", NewUpdateDoctorHandler(mockSvc))

	t.Run("success", func(t *testing.T) {
		name := "Dr. Renamed"
		mockSvc.EXPECT().
			Update(gomock.Any(), "DOC-01", gomock.Any()).
			Return(&models.Doctor{ID: "DOC-01", Name: name}, nil)

		body, _ := json.Marshal(models.DoctorPatch{Name: &name})
		req := httptest.NewRequest(http.MethodPatch, "/doctors/DOC-01", bytes.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var doc models.Doctor
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
		assert.Equal(t, name, doc.Name)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.EXPECT().
			Update(gomock.Any(), "DOC-99", gomock.Any()).
			Return(nil, services.ErrNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/doctors/DOC-99", bytes.NewReader([]byte("{}")))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteDoctorHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockDoctorDeleter(ctrl)

	router := chi.NewRouter()
	router.Delete("/doctors/{doctorID}", NewDeleteDoctorHandler(mockSvc))

	mockSvc.EXPECT().Delete(gomock.Any(), "DOC-01").Return(nil)
	req := httptest.NewRequest(http.MethodDelete, "/doctors/DOC-01", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)

	mockSvc.EXPECT().Delete(gomock.Any(), "DOC-99").Return(services.ErrNotFound)
	req = httptest.NewRequest(http.MethodDelete, "/doctors/DOC-99", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDoctorAvailabilityHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAvailabilityGetter(ctrl)

	router := chi.NewRouter()
	router.Get("/doctors/{doctorID}/availability", NewDoctorAvailabilityHandler(mockSvc))

	t.Run("slots returned", func(t *testing.T) {
		mockSvc.EXPECT().
			Availability(gomock.Any(), "DOC-01", "2026-09-01").
			Return([]string{"09:00 AM", "02:00 PM"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/doctors/DOC-01/availability?date=2026-09-01", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var slots []string
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &slots))
		assert.Equal(t, []string{"09:00 AM", "02:00 PM"}, slots)
	})

	t.Run("unknown doctor", func(t *testing.T) {
		mockSvc.EXPECT().
			Availability(gomock.Any(), "DOC-99", "2026-09-01").
			Return(nil, services.ErrNotFound)

		req := httptest.NewRequest(http.MethodGet, "/doctors/DOC-99/availability?date=2026-09-01", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
