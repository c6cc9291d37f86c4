package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/Dixit-Goti/hospital-management/internal/delivery/dto"
	"github.com/Dixit-Goti/hospital-management/internal/domain/entity"
	"github.com/Dixit-Goti/hospital-management/pkg/apperror"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeVisitRepo struct {
	rows            []entity.Visit
	byPatientIDArgs []uuid.UUID
	findAllCalls    int
}

func (f *fakeVisitRepo) Create(ctx context.Context, db *gorm.DB, visit *entity.Visit) error {
	return nil
}

func (f *fakeVisitRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Visit, error) {
	return nil, nil
}

func (f *fakeVisitRepo) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Visit, error) {
	f.findAllCalls++
	return f.rows, nil
}

func (f *fakeVisitRepo) FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.Visit, error) {
	f.byPatientIDArgs = append(f.byPatientIDArgs, patientID)
	matches := make([]entity.Visit, 0)
	for _, row := range f.rows {
		if row.PatientID == patientID {
			matches = append(matches, row)
		}
	}
	return matches, nil
}

func (f *fakeVisitRepo) Update(ctx context.Context, db *gorm.DB, visit *entity.Visit) error {
	return nil
}

func TestVisitList_PatientIgnoresEmailFilter(t *testing.T) {
	actor := entity.Principal{ID: uuid.New(), Email: "mine@example.com", Role: entity.RolePatient}
	visits := &fakeVisitRepo{rows: []entity.Visit{
		{ID: uuid.New(), PatientID: actor.ID, DoctorID: uuid.New(), Diagnosis: "flu"},
		{ID: uuid.New(), PatientID: uuid.New(), DoctorID: uuid.New(), Diagnosis: "fracture"},
	}}
	patients := &fakePatientRepo{}
	u := &visitUsecase{log: logrus.New(), visitRepo: visits, patientRepo: patients}

	got, err := u.List(context.Background(), actor, "other@example.com")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "flu", got[0].Diagnosis)

	// The filter never reaches the repository for a patient session.
	assert.Equal(t, []uuid.UUID{actor.ID}, visits.byPatientIDArgs)
	assert.Zero(t, visits.findAllCalls)
	assert.Zero(t, patients.findByEmailCalls)
}

func TestVisitList_UnknownFilterEmailIsEmpty(t *testing.T) {
	actor := entity.Principal{ID: uuid.New(), Email: "doc@example.com", Role: entity.RoleDoctor}
	visits := &fakeVisitRepo{rows: []entity.Visit{{ID: uuid.New(), PatientID: uuid.New()}}}
	u := &visitUsecase{log: logrus.New(), visitRepo: visits, patientRepo: &fakePatientRepo{}}

	got, err := u.List(context.Background(), actor, "ghost@example.com")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, visits.findAllCalls)
}

func TestApplyVisitUpdate_PartialFields(t *testing.T) {
	visit := &entity.Visit{
		Date:      time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
		Diagnosis: "flu",
		Symptoms:  entity.StringList{"fever"},
		Notes:     "rest",
	}

	symptoms := []string{"fever", "cough"}
	err := applyVisitUpdate(visit, &dto.UpdateVisitRequest{
		Diagnosis:               strPtr("viral fever"),
		Symptoms:                &symptoms,
		RecommendedFollowUpDate: strPtr("2024-05-20"),
	})
	require.NoError(t, err)

	assert.Equal(t, "viral fever", visit.Diagnosis)
	assert.Equal(t, entity.StringList{"fever", "cough"}, visit.Symptoms)
	require.NotNil(t, visit.RecommendedFollowUpDate)
	assert.Equal(t, 20, visit.RecommendedFollowUpDate.Day())

	// Absent fields are untouched.
	assert.Equal(t, "rest", visit.Notes)
	assert.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), visit.Date)
}

func TestApplyVisitUpdate_Vitals(t *testing.T) {
	visit := &entity.Visit{}

	err := applyVisitUpdate(visit, &dto.UpdateVisitRequest{
		Vitals: &dto.Vitals{Weight: 70, BloodPressure: "120/80", Pulse: 72},
	})
	require.NoError(t, err)
	require.NotNil(t, visit.Vitals)
	assert.Equal(t, 70.0, visit.Vitals.Weight)
	assert.Equal(t, "120/80", visit.Vitals.BloodPressure)
	assert.Equal(t, 72, visit.Vitals.Pulse)
}

func TestApplyVisitUpdate_BadDate(t *testing.T) {
	err := applyVisitUpdate(&entity.Visit{}, &dto.UpdateVisitRequest{Date: strPtr("next tuesday")})
	require.Error(t, err)

	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}
