package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/nexuscare/nexuscare/internal/models"
	"github.com/nexuscare/nexuscare/internal/storage"
)

// loadDoctors reads the local doctor collection, seeding the built-in
// registry when the collection has never been written.
func (c *Client) loadDoctors() ([]models.Doctor, error) {
	var docs []models.Doctor
	if err := c.store.List(storage.CollectionDoctors, &docs); err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		docs = models.SeedDoctors()
	}
	return docs, nil
}

// Doctors returns the full doctor registry.
func (c *Client) Doctors(ctx context.Context) ([]models.Doctor, error) {
	var docs []models.Doctor
	if err := c.do(ctx, http.MethodGet, "/doctors", nil, &docs); err != nil {
		c.fallback("doctors", err)
		return c.loadDoctors()
	}
	return docs, nil
}

// DoctorAvailability returns the doctor's slot list for a date. The
// fallback path serves the static availability unfiltered by existing
// bookings; an unknown doctor yields an empty list.
func (c *Client) DoctorAvailability(ctx context.Context, doctorID, date string) ([]string, error) {
	path := "/doctors/" + url.PathEscape(doctorID) + "/availability?date=" + url.QueryEscape(date)
	var slots []string
	if err := c.do(ctx, http.MethodGet, path, nil, &slots); err != nil {
		c.fallback("doctor-availability", err)
		docs, err := c.loadDoctors()
		if err != nil {
			return nil, err
		}
		for _, d := range docs {
			if d.ID == doctorID {
				return d.Availability, nil
			}
		}
		return []string{}, nil
	}
	return slots, nil
}

// AddDoctorRequest is the payload for registering a doctor.
type AddDoctorRequest struct {
	Name         string   `json:"name"`
	Specialty    string   `json:"specialty"`
	Experience   string   `json:"experience"`
	Bio          string   `json:"bio"`
	ImageURL     string   `json:"imageUrl"`
	Availability []string `json:"availability"`
}

// AddDoctor registers a new doctor and returns it with a generated id.
func (c *Client) AddDoctor(ctx context.Context, req AddDoctorRequest) (*models.Doctor, error) {
	if req.Name == "" || req.Specialty == "" {
		return nil, ErrValidation
	}

	var doc models.Doctor
	if err := c.do(ctx, http.MethodPost, "/doctors", req, &doc); err != nil {
		c.fallback("add-doctor", err)
		return c.addDoctorLocal(req)
	}
	return &doc, nil
}

func (c *Client) addDoctorLocal(req AddDoctorRequest) (*models.Doctor, error) {
	docs, err := c.loadDoctors()
	if err != nil {
		return nil, err
	}
	doc := models.Doctor{
		ID:           models.NewRecordID(models.DoctorIDPrefix),
		Name:         req.Name,
		Specialty:    req.Specialty,
		Experience:   req.Experience,
		Bio:          req.Bio,
		ImageURL:     req.ImageURL,
		Availability: req.Availability,
	}
	docs = append(docs, doc)
	if err := c.store.Save(storage.CollectionDoctors, docs); err != nil {
		return nil, err
	}
	return &doc, nil
}

// UpdateDoctor merges a partial update into an existing doctor.
func (c *Client) UpdateDoctor(ctx context.Context, id string, patch models.DoctorPatch) error {
	var doc models.Doctor
	if err := c.do(ctx, http.MethodPatch, "/doctors/"+url.PathEscape(id), patch, &doc); err != nil {
		c.fallback("update-doctor", err)
		return c.updateDoctorLocal(id, patch)
	}
	return nil
}

func (c *Client) updateDoctorLocal(id string, patch models.DoctorPatch) error {
	docs, err := c.loadDoctors()
	if err != nil {
		return err
	}
	for i := range docs {
		if docs[i].ID == id {
			patch.Apply(&docs[i])
			return c.store.Save(storage.CollectionDoctors, docs)
		}
	}
	return ErrNotFound
}

// DeleteDoctor removes a doctor from the registry.
func (c *Client) DeleteDoctor(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/doctors/"+url.PathEscape(id), nil, nil); err != nil {
		c.fallback("delete-doctor", err)
		return c.deleteDoctorLocal(id)
	}
	return nil
}

func (c *Client) deleteDoctorLocal(id string) error {
	docs, err := c.loadDoctors()
	if err != nil {
		return err
	}
	kept := docs[:0]
	for _, d := range docs {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	if len(kept) == len(docs) {
		return ErrNotFound
	}
	return c.store.Save(storage.CollectionDoctors, kept)
}
