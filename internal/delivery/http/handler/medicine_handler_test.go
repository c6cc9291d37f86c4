package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Dixit-Goti/hospital-management/internal/delivery/dto"
	"github.com/Dixit-Goti/hospital-management/internal/domain/entity"
	"github.com/Dixit-Goti/hospital-management/pkg/apperror"
	"github.com/Dixit-Goti/hospital-management/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeMedicineUsecase struct {
	create func(ctx context.Context, actor entity.Principal, req *dto.CreateMedicineRequest) (*dto.MedicineResponse, error)
}

func (f *fakeMedicineUsecase) Create(ctx context.Context, actor entity.Principal, req *dto.CreateMedicineRequest) (*dto.MedicineResponse, error) {
	return f.create(ctx, actor, req)
}

func (f *fakeMedicineUsecase) Search(ctx context.Context, name string) ([]dto.MedicineResponse, error) {
	return nil, nil
}

func (f *fakeMedicineUsecase) Update(ctx context.Context, actor entity.Principal, id uuid.UUID, req *dto.UpdateMedicineRequest) (*dto.MedicineResponse, error) {
	return nil, nil
}

func (f *fakeMedicineUsecase) Deactivate(ctx context.Context, actor entity.Principal, id uuid.UUID) error {
	return nil
}

func TestCreateMedicine_Success(t *testing.T) {
	h := NewMedicineHandler(&fakeMedicineUsecase{
		create: func(ctx context.Context, actor entity.Principal, req *dto.CreateMedicineRequest) (*dto.MedicineResponse, error) {
			return &dto.MedicineResponse{ID: uuid.NewString(), Name: "paracetamol", Strength: "500mg", Form: "tablet"}, nil
		},
	}, validator.NewValidator())

	body := `{"name":"Paracetamol","strength":"500mg","form":"tablet"}`
	rec := httptest.NewRecorder()
	h.Create(rec, authenticatedRequest(http.MethodPost, "/api/medicines", body, entity.RoleDoctor))

	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.True(t, resp.Success)
}

func TestCreateMedicine_DuplicateIsConflict(t *testing.T) {
	h := NewMedicineHandler(&fakeMedicineUsecase{
		create: func(ctx context.Context, actor entity.Principal, req *dto.CreateMedicineRequest) (*dto.MedicineResponse, error) {
			return nil, apperror.Conflict("Medicine already exists", apperror.CodeMedicineExists)
		},
	}, validator.NewValidator())

	body := `{"name":"Paracetamol","strength":"500mg","form":"tablet"}`
	rec := httptest.NewRecorder()
	h.Create(rec, authenticatedRequest(http.MethodPost, "/api/medicines", body, entity.RoleDoctor))

	assert.Equal(t, http.StatusConflict, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, apperror.CodeMedicineExists, resp.ErrorCode)
}
