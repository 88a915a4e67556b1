package services

import (
	"context"

	"github.com/nexuscare/nexuscare/internal/logger"
	"github.com/nexuscare/nexuscare/internal/models"
)

// DoctorReader defines read-only operations for the doctor registry.
type DoctorReader interface {
	List(ctx context.Context) ([]models.Doctor, error)
	GetByID(ctx context.Context, id string) (*models.Doctor, error)
}

// DoctorWriter defines write operations for the doctor registry.
type DoctorWriter interface {
	Save(ctx context.Context, doc models.Doctor) error
	Update(ctx context.Context, doc models.Doctor) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

// AvailabilityCache caches slot lists per doctor and date.
type AvailabilityCache interface {
	GetAvailability(ctx context.Context, doctorID, date string) ([]string, error)
	SetAvailability(ctx context.Context, doctorID, date string, slots []string) error
}

// DoctorService handles registry reads and admin mutations.
type DoctorService struct {
	reader DoctorReader
	writer DoctorWriter
	cache  AvailabilityCache
}

// NewDoctorService creates a new DoctorService.
func NewDoctorService(reader DoctorReader, writer DoctorWriter, cache AvailabilityCache) *DoctorService {
	return &DoctorService{
		reader: reader,
		writer: writer,
		cache:  cache,
	}
}

// List returns the full registry.
func (s *DoctorService) List(ctx context.Context) ([]models.Doctor, error) {
	docs, err := s.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list doctors", "error", err)
		return nil, err
	}
	return docs, nil
}

// Availability returns a doctor's slot list for a date, read through the
// cache. The list is the doctor's static availability: existing bookings on
// that date do not filter it.
func (s *DoctorService) Availability(ctx context.Context, doctorID, date string) ([]string, error) {
	slots, err := s.cache.GetAvailability(ctx, doctorID, date)
	if err == nil {
		return slots, nil
	}

	doc, err := s.reader.GetByID(ctx, doctorID)
	if err != nil {
		logger.Log.Errorw("failed to get doctor", "doctorID", doctorID, "error", err)
		return nil, err
	}
	if doc == nil {
		return nil, ErrNotFound
	}

	if err := s.cache.SetAvailability(ctx, doctorID, date, doc.Availability); err != nil {
		logger.Log.Errorw("failed to cache availability", "doctorID", doctorID, "date", date, "error", err)
	}
	return doc.Availability, nil
}

// Add registers a new doctor with a generated id.
func (s *DoctorService) Add(ctx context.Context, doc models.Doctor) (*models.Doctor, error) {
	doc.ID = models.NewRecordID(models.DoctorIDPrefix)
	if doc.Availability == nil {
		doc.Availability = []string{}
	}
	if err := s.writer.Save(ctx, doc); err != nil {
		logger.Log.Errorw("failed to save doctor", "error", err)
		return nil, err
	}
	return &doc, nil
}

// Update merges a partial update into an existing doctor and returns the
// merged record.
func (s *DoctorService) Update(ctx context.Context, id string, patch models.DoctorPatch) (*models.Doctor, error) {
	doc, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get doctor", "doctorID", id, "error", err)
		return nil, err
	}
	if doc == nil {
		return nil, ErrNotFound
	}

	patch.Apply(doc)
	n, err := s.writer.Update(ctx, *doc)
	if err != nil {
		logger.Log.Errorw("failed to update doctor", "doctorID", id, "error", err)
		return nil, err
	}
	if n == 0 {
		return nil, ErrNotFound
	}
	return doc, nil
}

// Delete removes a doctor from the registry.
func (s *DoctorService) Delete(ctx context.Context, id string) error {
	n, err := s.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete doctor", "doctorID", id, "error", err)
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
