package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/nexuscare/nexuscare/internal/logger"
	"github.com/nexuscare/nexuscare/internal/models"
	"github.com/segmentio/kafka-go"
)

// AppointmentReader defines read-only operations for bookings.
type AppointmentReader interface {
	List(ctx context.Context) ([]models.Appointment, error)
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
}

// AppointmentWriter defines write operations for bookings.
type AppointmentWriter interface {
	Save(ctx context.Context, app models.Appointment) error
	UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus) (int64, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// AppointmentService handles booking, status transitions and event
// publishing.
type AppointmentService struct {
	reader      AppointmentReader
	writer      AppointmentWriter
	kafkaWriter KafkaWriter
}

// NewAppointmentService creates a new AppointmentService.
func NewAppointmentService(reader AppointmentReader, writer AppointmentWriter, kafkaWriter KafkaWriter) *AppointmentService {
	return &AppointmentService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes an appointment event to Kafka. Publishing is
// fire-and-forget: a broker failure never fails the booking.
func (s *AppointmentService) publishEvent(ctx context.Context, event models.AppointmentEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal appointment event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.AppointmentID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish appointment event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Appointment event published", "event_id", event.EventID, "operation", event.Operation)
	}
}

// List returns every booking.
func (s *AppointmentService) List(ctx context.Context) ([]models.Appointment, error) {
	apps, err := s.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list appointments", "error", err)
		return nil, err
	}
	return apps, nil
}

// Book creates a pending booking and publishes the event. No slot-conflict
// check is performed: double-booking a slot is allowed.
func (s *AppointmentService) Book(ctx context.Context, app models.Appointment) (string, error) {
	app.ID = models.NewRecordID(models.AppointmentIDPrefix)
	app.Status = models.StatusPending
	app.Timestamp = time.Now().Format(time.RFC3339)

	if err := s.writer.Save(ctx, app); err != nil {
		logger.Log.Errorw("failed to save appointment", "error", err)
		return "", err
	}

	s.publishEvent(ctx, models.AppointmentEvent{
		EventID:       uuid.NewString(),
		AppointmentID: app.ID,
		PatientID:     app.PatientID,
		DoctorID:      app.DoctorID,
		Status:        string(app.Status),
		Operation:     "booked",
		Timestamp:     time.Now().Unix(),
	})

	return app.ID, nil
}

// UpdateStatus mutates a booking's status and returns the updated record.
// Any known status may follow any other.
func (s *AppointmentService) UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus) (*models.Appointment, error) {
	n, err := s.writer.UpdateStatus(ctx, id, status)
	if err != nil {
		logger.Log.Errorw("failed to update appointment status", "id", id, "status", status, "error", err)
		return nil, err
	}
	if n == 0 {
		return nil, ErrNotFound
	}

	app, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to reload appointment", "id", id, "error", err)
		return nil, err
	}
	if app == nil {
		return nil, ErrNotFound
	}

	s.publishEvent(ctx, models.AppointmentEvent{
		EventID:       uuid.NewString(),
		AppointmentID: app.ID,
		PatientID:     app.PatientID,
		DoctorID:      app.DoctorID,
		Status:        string(app.Status),
		Operation:     "status_changed",
		Timestamp:     time.Now().Unix(),
	})

	return app, nil
}
