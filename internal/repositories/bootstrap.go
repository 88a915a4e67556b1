package repositories

import (
	"context"
	"encoding/json"

	"github.com/jmoiron/sqlx"
	"github.com/nexuscare/nexuscare/internal/logger"
	"github.com/nexuscare/nexuscare/internal/models"
)

// schema mirrors the original SQLite bootstrap: created idempotently at
// startup instead of via a migration tool.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id VARCHAR(32) PRIMARY KEY,
	username VARCHAR(100) NOT NULL,
	email VARCHAR(100) NOT NULL UNIQUE,
	password_hash VARCHAR(255) NOT NULL,
	role VARCHAR(16) NOT NULL,
	is_verified BOOLEAN NOT NULL DEFAULT FALSE,
	security_question TEXT NOT NULL DEFAULT '',
	security_answer TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS doctors (
	id VARCHAR(32) PRIMARY KEY,
	name VARCHAR(100) NOT NULL,
	specialty VARCHAR(64) NOT NULL,
	experience VARCHAR(64) NOT NULL DEFAULT '',
	bio TEXT NOT NULL DEFAULT '',
	image_url TEXT NOT NULL DEFAULT '',
	availability TEXT NOT NULL DEFAULT '[]'
);

CREATE TABLE IF NOT EXISTS appointments (
	id VARCHAR(32) PRIMARY KEY,
	patient_id VARCHAR(32) NOT NULL,
	patient_name VARCHAR(100) NOT NULL,
	patient_email VARCHAR(100) NOT NULL DEFAULT '',
	patient_contact VARCHAR(32) NOT NULL DEFAULT '',
	doctor_id VARCHAR(32) NOT NULL,
	doctor_name VARCHAR(100) NOT NULL,
	specialty VARCHAR(64) NOT NULL DEFAULT '',
	date VARCHAR(32) NOT NULL,
	time VARCHAR(32) NOT NULL,
	status VARCHAR(16) NOT NULL,
	created_at VARCHAR(64) NOT NULL
);
`

// Bootstrap creates the schema and seeds the doctor registry when empty.
func Bootstrap(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		logger.Log.Errorw("failed to create schema", "error", err)
		return err
	}

	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(*) FROM doctors`); err != nil {
		logger.Log.Errorw("failed to count doctors", "error", err)
		return err
	}
	if count > 0 {
		return nil
	}

	const insert = `
		INSERT INTO doctors (id, name, specialty, experience, bio, image_url, availability)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	for _, d := range models.SeedDoctors() {
		slots, err := json.Marshal(d.Availability)
		if err != nil {
			return err
		}
		if _, err := db.ExecContext(ctx, insert, d.ID, d.Name, d.Specialty, d.Experience, d.Bio, d.ImageURL, string(slots)); err != nil {
			logger.Log.Errorw("failed to seed doctor", "id", d.ID, "error", err)
			return err
		}
	}
	logger.Log.Infow("seeded doctor registry", "count", len(models.SeedDoctors()))
	return nil
}
