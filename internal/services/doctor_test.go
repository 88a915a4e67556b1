package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/nexuscare/nexuscare/internal/models"
	"github.com/nexuscare/nexuscare/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestDoctorService_Availability_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockDoctorReader(ctrl)
	mockCache := services.NewMockAvailabilityCache(ctrl)
	svc := services.NewDoctorService(mockReader, services.NewMockDoctorWriter(ctrl), mockCache)

	mockCache.EXPECT().
		GetAvailability(gomock.Any(), "DOC-01", "2026-09-01").
		Return([]string{"09:00 AM"}, nil)

	slots, err := svc.Availability(context.Background(), "DOC-01", "2026-09-01")
	assert.NoError(t, err)
	assert.Equal(t, []string{"09:00 AM"}, slots)
}

func TestDoctorService_Availability_CacheMissPopulates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockDoctorReader(ctrl)
	mockCache := services.NewMockAvailabilityCache(ctrl)
	svc := services.NewDoctorService(mockReader, services.NewMockDoctorWriter(ctrl), mockCache)

	doc := &models.Doctor{ID: "DOC-01", Availability: []string{"09:00 AM", "02:00 PM"}}

	mockCache.EXPECT().
		GetAvailability(gomock.Any(), "DOC-01", "2026-09-01").
		Return(nil, errors.New("availability not cached"))
	mockReader.EXPECT().GetByID(gomock.Any(), "DOC-01").Return(doc, nil)
	mockCache.EXPECT().
		SetAvailability(gomock.Any(), "DOC-01", "2026-09-01", doc.Availability).
		Return(nil)

	slots, err := svc.Availability(context.Background(), "DOC-01", "2026-09-01")
	assert.NoError(t, err)
	assert.Equal(t, doc.Availability, slots)
}

func TestDoctorService_Availability_UnknownDoctor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockDoctorReader(ctrl)
	mockCache := services.NewMockAvailabilityCache(ctrl)
	svc := services.NewDoctorService(mockReader, services.NewMockDoctorWriter(ctrl), mockCache)

	mockCache.EXPECT().GetAvailability(gomock.Any(), "DOC-99", "2026-09-01").Return(nil, errors.New("miss"))
	mockReader.EXPECT().GetByID(gomock.Any(), "DOC-99").Return(nil, nil)

	_, err := svc.Availability(context.Background(), "DOC-99", "2026-09-01")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestDoctorService_Add(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockDoctorWriter(ctrl)
	svc := services.NewDoctorService(services.NewMockDoctorReader(ctrl), mockWriter, services.NewMockAvailabilityCache(ctrl))

	mockWriter.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, doc models.Doctor) error {
			assert.Regexp(t, `^DOC-[A-Z0-9]{6}$`, doc.ID)
			assert.NotNil(t, doc.Availability)
			return nil
		})

	doc, err := svc.Add(context.Background(), models.Doctor{Name: "Dr. X", Specialty: "Cardiology"})
	assert.NoError(t, err)
	assert.Regexp(t, `^DOC-[A-Z0-9]{6}$`, doc.ID)
}

func TestDoctorService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockDoctorReader(ctrl)
	mockWriter := services.NewMockDoctorWriter(ctrl)
	svc := services.NewDoctorService(mockReader, mockWriter, services.NewMockAvailabilityCache(ctrl))

	existing := &models.Doctor{ID: "DOC-01", Name: "Dr. Sarah Mitchell", Specialty: "Cardiology"}
	name := "Dr. Sarah Mitchell-Jones"

	mockReader.EXPECT().GetByID(gomock.Any(), "DOC-01").Return(existing, nil)
	mockWriter.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, doc models.Doctor) (int64, error) {
			assert.Equal(t, name, doc.Name)
			assert.Equal(t, "Cardiology", doc.Specialty)
			return 1, nil
		})

	doc, err := svc.Update(context.Background(), "DOC-01", models.DoctorPatch{Name: &name})
	assert.NoError(t, err)
	assert.Equal(t, name, doc.Name)

	mockReader.EXPECT().GetByID(gomock.Any(), "DOC-99").Return(nil, nil)
	_, err = svc.Update(context.Background(), "DOC-99", models.DoctorPatch{Name: &name})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestDoctorService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockDoctorWriter(ctrl)
	svc := services.NewDoctorService(services.NewMockDoctorReader(ctrl), mockWriter, services.NewMockAvailabilityCache(ctrl))

	mockWriter.EXPECT().Delete(gomock.Any(), "DOC-01").Return(int64(1), nil)
	assert.NoError(t, svc.Delete(context.Background(), "DOC-01"))

	mockWriter.EXPECT().Delete(gomock.Any(), "DOC-99").Return(int64(0), nil)
	assert.ErrorIs(t, svc.Delete(context.Background(), "DOC-99"), services.ErrNotFound)
}
