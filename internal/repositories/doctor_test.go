package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/nexuscare/nexuscare/internal/models"
	"github.com/stretchr/testify/assert"
)

var doctorColumns = []string{"id", "name", "specialty", "experience", "bio", "image_url", "availability"}

func TestDoctorReadRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDoctorReadRepository(db)

	rows := sqlmock.NewRows(doctorColumns).
		AddRow("DOC-01", "Dr. Sarah Mitchell", "Cardiology", "14 Years", "bio", "http://img", `["09:00 AM","10:30 AM"]`).
		AddRow("DOC-02", "Dr. James Wilson", "Neurology", "18 Years", "bio", "http://img", `[]`)
	mock.ExpectQuery(`SELECT .+ FROM doctors ORDER BY id`).WillReturnRows(rows)

	docs, err := repo.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, docs, 2)
	assert.Equal(t, []string{"09:00 AM", "10:30 AM"}, docs[0].Availability)
	assert.Empty(t, docs[1].Availability)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoctorReadRepository_List_CorruptAvailability(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDoctorReadRepository(db)

	rows := sqlmock.NewRows(doctorColumns).
		AddRow("DOC-01", "Dr. Sarah Mitchell", "Cardiology", "", "", "", `{broken`)
	mock.ExpectQuery(`SELECT .+ FROM doctors ORDER BY id`).WillReturnRows(rows)

	docs, err := repo.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, docs, 1)
	assert.Empty(t, docs[0].Availability)
}

func TestDoctorReadRepository_GetByID_Absent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDoctorReadRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM doctors WHERE id = \$1`).
		WithArgs("DOC-99").
		WillReturnRows(sqlmock.NewRows(doctorColumns))

	doc, err := repo.GetByID(context.Background(), "DOC-99")
	assert.NoError(t, err)
	assert.Nil(t, doc)
}

func TestDoctorWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDoctorWriteRepository(db)

	doc := models.Doctor{
		ID:           "DOC-AB12CD",
		Name:         "Dr. X",
		Specialty:    "Cardiology",
		Availability: []string{"09:00 AM"},
	}
	mock.ExpectExec(`INSERT INTO doctors`).
		WithArgs(doc.ID, doc.Name, doc.Specialty, "", "", "", `["09:00 AM"]`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Save(context.Background(), doc))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoctorWriteRepository_SaveNilAvailability(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDoctorWriteRepository(db)

	// Nil availability is stored as an empty JSON array, never null.
	mock.ExpectExec(`INSERT INTO doctors`).
		WithArgs("DOC-X", "Dr. X", "Oncology", "", "", "", `[]`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Save(context.Background(), models.Doctor{ID: "DOC-X", Name: "Dr. X", Specialty: "Oncology"}))
}

func TestDoctorWriteRepository_UpdateAndDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDoctorWriteRepository(db)

	mock.ExpectExec(`UPDATE doctors SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	n, err := repo.Update(context.Background(), models.Doctor{ID: "DOC-01", Name: "Dr. Renamed", Specialty: "Cardiology"})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), n)

	mock.ExpectExec(`DELETE FROM doctors WHERE id = \$1`).
		WithArgs("DOC-99").
		WillReturnResult(sqlmock.NewResult(0, 0))
	n, err = repo.Delete(context.Background(), "DOC-99")
	assert.NoError(t, err)
	assert.Zero(t, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
