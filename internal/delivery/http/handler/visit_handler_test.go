package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Dixit-Goti/hospital-management/internal/delivery/dto"
	"github.com/Dixit-Goti/hospital-management/internal/domain/entity"
	"github.com/Dixit-Goti/hospital-management/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeVisitUsecase struct {
	create     func(ctx context.Context, actor entity.Principal, req *dto.CreateVisitRequest) (*dto.VisitResponse, error)
	list       func(ctx context.Context, actor entity.Principal, emailFilter string) ([]dto.VisitResponse, error)
	update     func(ctx context.Context, actor entity.Principal, id uuid.UUID, req *dto.UpdateVisitRequest) (*dto.VisitResponse, error)
	deactivate func(ctx context.Context, actor entity.Principal, id uuid.UUID) error
}

func (f *fakeVisitUsecase) Create(ctx context.Context, actor entity.Principal, req *dto.CreateVisitRequest) (*dto.VisitResponse, error) {
	return f.create(ctx, actor, req)
}

func (f *fakeVisitUsecase) List(ctx context.Context, actor entity.Principal, emailFilter string) ([]dto.VisitResponse, error) {
	return f.list(ctx, actor, emailFilter)
}

func (f *fakeVisitUsecase) Update(ctx context.Context, actor entity.Principal, id uuid.UUID, req *dto.UpdateVisitRequest) (*dto.VisitResponse, error) {
	return f.update(ctx, actor, id, req)
}

func (f *fakeVisitUsecase) Deactivate(ctx context.Context, actor entity.Principal, id uuid.UUID) error {
	return f.deactivate(ctx, actor, id)
}

func TestCreateVisit_Created(t *testing.T) {
	var gotActor entity.Principal
	h := NewVisitHandler(&fakeVisitUsecase{
		create: func(ctx context.Context, actor entity.Principal, req *dto.CreateVisitRequest) (*dto.VisitResponse, error) {
			gotActor = actor
			return &dto.VisitResponse{ID: uuid.New().String(), DoctorID: actor.ID.String()}, nil
		},
	}, validator.NewValidator())

	body := `{"patientId":"` + uuid.New().String() + `","date":"2024-05-10","diagnosis":"flu"}`
	rec := httptest.NewRecorder()
	h.Create(rec, authenticatedRequest(http.MethodPost, "/api/visits", body, entity.RoleDoctor))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, entity.RoleDoctor, gotActor.Role)
}

func TestCreateVisit_MissingDiagnosis(t *testing.T) {
	h := NewVisitHandler(&fakeVisitUsecase{}, validator.NewValidator())

	body := `{"patientId":"` + uuid.New().String() + `","date":"2024-05-10"}`
	rec := httptest.NewRecorder()
	h.Create(rec, authenticatedRequest(http.MethodPost, "/api/visits", body, entity.RoleDoctor))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListVisits_PassesPrincipalAndFilter(t *testing.T) {
	var gotActor entity.Principal
	var gotFilter string
	h := NewVisitHandler(&fakeVisitUsecase{
		list: func(ctx context.Context, actor entity.Principal, emailFilter string) ([]dto.VisitResponse, error) {
			gotActor = actor
			gotFilter = emailFilter
			return []dto.VisitResponse{}, nil
		},
	}, validator.NewValidator())

	rec := httptest.NewRecorder()
	h.List(rec, authenticatedRequest(http.MethodGet, "/api/visits?email=asha@example.com", "", entity.RolePatient))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entity.RolePatient, gotActor.Role)
	assert.Equal(t, "asha@example.com", gotFilter)
}
