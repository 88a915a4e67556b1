package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/nexuscare/nexuscare/internal/logger"
	"github.com/nexuscare/nexuscare/internal/models"
)

// AppointmentReadRepository reads bookings.
type AppointmentReadRepository struct {
	db *sqlx.DB
}

func NewAppointmentReadRepository(db *sqlx.DB) *AppointmentReadRepository {
	return &AppointmentReadRepository{db: db}
}

// List returns every booking, oldest first.
func (r *AppointmentReadRepository) List(ctx context.Context) ([]models.Appointment, error) {
	const query = `
		SELECT id, patient_id, patient_name, patient_email, patient_contact,
		       doctor_id, doctor_name, specialty, date, time, status, created_at
		FROM appointments
		ORDER BY created_at
	`

	var apps []models.Appointment
	err := r.db.SelectContext(ctx, &apps, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(apps),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return apps, nil
}

// GetByID returns one booking, or nil when absent.
func (r *AppointmentReadRepository) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	const query = `
		SELECT id, patient_id, patient_name, patient_email, patient_contact,
		       doctor_id, doctor_name, specialty, date, time, status, created_at
		FROM appointments
		WHERE id = $1
		LIMIT 1
	`

	var app models.Appointment
	err := r.db.GetContext(ctx, &app, query, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// AppointmentWriteRepository mutates bookings.
type AppointmentWriteRepository struct {
	db *sqlx.DB
}

func NewAppointmentWriteRepository(db *sqlx.DB) *AppointmentWriteRepository {
	return &AppointmentWriteRepository{db: db}
}

// Save inserts a new booking.
func (r *AppointmentWriteRepository) Save(ctx context.Context, app models.Appointment) error {
	const query = `
		INSERT INTO appointments (id, patient_id, patient_name, patient_email, patient_contact,
		                          doctor_id, doctor_name, specialty, date, time, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	args := []any{
		app.ID, app.PatientID, app.PatientName, app.PatientEmail, app.PatientContact,
		app.DoctorID, app.DoctorName, app.Specialty, app.Date, app.Time, app.Status, app.Timestamp,
	}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{app.ID, app.PatientID, app.DoctorID, app.Status},
		"error", err,
	)

	return err
}

// UpdateStatus mutates the status column only. Returns affected rows so
// callers can report a missing id.
func (r *AppointmentWriteRepository) UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus) (int64, error) {
	const query = `UPDATE appointments SET status = $2 WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, status)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", query,
		"args", []any{id, status},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
