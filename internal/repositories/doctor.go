package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/nexuscare/nexuscare/internal/logger"
	"github.com/nexuscare/nexuscare/internal/models"
)

// doctorRow maps the doctors table; availability is stored as a JSON array
// string, matching the original backend's TEXT column.
type doctorRow struct {
	ID           string `db:"id"`
	Name         string `db:"name"`
	Specialty    string `db:"specialty"`
	Experience   string `db:"experience"`
	Bio          string `db:"bio"`
	ImageURL     string `db:"image_url"`
	Availability string `db:"availability"`
}

func (row doctorRow) toModel() models.Doctor {
	d := models.Doctor{
		ID:         row.ID,
		Name:       row.Name,
		Specialty:  row.Specialty,
		Experience: row.Experience,
		Bio:        row.Bio,
		ImageURL:   row.ImageURL,
	}
	if err := json.Unmarshal([]byte(row.Availability), &d.Availability); err != nil {
		logger.Log.Warnw("corrupt availability column", "id", row.ID, "error", err)
		d.Availability = []string{}
	}
	return d
}

func availabilityJSON(slots []string) string {
	if slots == nil {
		slots = []string{}
	}
	data, _ := json.Marshal(slots)
	return string(data)
}

// DoctorReadRepository reads the doctor registry.
type DoctorReadRepository struct {
	db *sqlx.DB
}

func NewDoctorReadRepository(db *sqlx.DB) *DoctorReadRepository {
	return &DoctorReadRepository{db: db}
}

// List returns every doctor, seed order first.
func (r *DoctorReadRepository) List(ctx context.Context) ([]models.Doctor, error) {
	const query = `
		SELECT id, name, specialty, experience, bio, image_url, availability
		FROM doctors
		ORDER BY id
	`

	var rows []doctorRow
	err := r.db.SelectContext(ctx, &rows, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	docs := make([]models.Doctor, 0, len(rows))
	for _, row := range rows {
		docs = append(docs, row.toModel())
	}
	return docs, nil
}

// GetByID returns one doctor, or nil when absent.
func (r *DoctorReadRepository) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	const query = `
		SELECT id, name, specialty, experience, bio, image_url, availability
		FROM doctors
		WHERE id = $1
		LIMIT 1
	`

	var row doctorRow
	err := r.db.GetContext(ctx, &row, query, id)

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
	doc := row.toModel()
	return &doc, nil
}

// DoctorWriteRepository mutates the doctor registry.
type DoctorWriteRepository struct {
	db *sqlx.DB
}

func NewDoctorWriteRepository(db *sqlx.DB) *DoctorWriteRepository {
	return &DoctorWriteRepository{db: db}
}

// Save inserts a new doctor.
func (r *DoctorWriteRepository) Save(ctx context.Context, doc models.Doctor) error {
	const query = `
		INSERT INTO doctors (id, name, specialty, experience, bio, image_url, availability)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	args := []any{doc.ID, doc.Name, doc.Specialty, doc.Experience, doc.Bio, doc.ImageURL, availabilityJSON(doc.Availability)}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{doc.ID, doc.Name, doc.Specialty},
		"error", err,
	)

	return err
}

// Update replaces the full row for an existing doctor. Returns affected
// rows so callers can report a missing id.
func (r *DoctorWriteRepository) Update(ctx context.Context, doc models.Doctor) (int64, error) {
	const query = `
		UPDATE doctors
		SET name = $2, specialty = $3, experience = $4, bio = $5, image_url = $6, availability = $7
		WHERE id = $1
	`
	args := []any{doc.ID, doc.Name, doc.Specialty, doc.Experience, doc.Bio, doc.ImageURL, availabilityJSON(doc.Availability)}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{doc.ID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// Delete removes a doctor. Returns affected rows.
func (r *DoctorWriteRepository) Delete(ctx context.Context, id string) (int64, error) {
	const query = `DELETE FROM doctors WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", query,
		"args", []any{id},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
