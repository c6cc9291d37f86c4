package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Dixit-Goti/hospital-management/internal/delivery/dto"
	"github.com/Dixit-Goti/hospital-management/internal/delivery/http/middleware"
	"github.com/Dixit-Goti/hospital-management/internal/domain/entity"
	"github.com/Dixit-Goti/hospital-management/pkg/apperror"
	"github.com/Dixit-Goti/hospital-management/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePatientUsecase struct {
	register       func(ctx context.Context, actor entity.Principal, req *dto.RegisterPatientRequest) (*dto.PatientResponse, error)
	list           func(ctx context.Context, emailFilter string) ([]dto.PatientResponse, error)
	getProfile     func(ctx context.Context, patientID uuid.UUID) (*dto.PatientResponse, error)
	update         func(ctx context.Context, actor entity.Principal, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	deactivate     func(ctx context.Context, actor entity.Principal, id uuid.UUID) error
	changePassword func(ctx context.Context, patientID uuid.UUID, req *dto.ChangePasswordRequest) error
}

func (f *fakePatientUsecase) Register(ctx context.Context, actor entity.Principal, req *dto.RegisterPatientRequest) (*dto.PatientResponse, error) {
	return f.register(ctx, actor, req)
}

func (f *fakePatientUsecase) List(ctx context.Context, emailFilter string) ([]dto.PatientResponse, error) {
	return f.list(ctx, emailFilter)
}

func (f *fakePatientUsecase) GetProfile(ctx context.Context, patientID uuid.UUID) (*dto.PatientResponse, error) {
	return f.getProfile(ctx, patientID)
}

func (f *fakePatientUsecase) Update(ctx context.Context, actor entity.Principal, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	return f.update(ctx, actor, id, req)
}

func (f *fakePatientUsecase) Deactivate(ctx context.Context, actor entity.Principal, id uuid.UUID) error {
	return f.deactivate(ctx, actor, id)
}

func (f *fakePatientUsecase) ChangePassword(ctx context.Context, patientID uuid.UUID, req *dto.ChangePasswordRequest) error {
	return f.changePassword(ctx, patientID, req)
}

func authenticatedRequest(method, target, body, role string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	principal := entity.Principal{ID: uuid.New(), Email: "who@example.com", Role: role}
	return req.WithContext(middleware.WithPrincipal(req.Context(), principal))
}

func TestRegisterPatient_Created(t *testing.T) {
	var gotActor entity.Principal
	h := NewPatientHandler(&fakePatientUsecase{
		register: func(ctx context.Context, actor entity.Principal, req *dto.RegisterPatientRequest) (*dto.PatientResponse, error) {
			gotActor = actor
			return &dto.PatientResponse{ID: uuid.New().String(), Email: req.Email}, nil
		},
	}, validator.NewValidator())

	body := `{"firstName":"Asha","lastName":"Patel","email":"asha@example.com","mobile":"9876543210"}`
	rec := httptest.NewRecorder()
	h.Register(rec, authenticatedRequest(http.MethodPost, "/api/patients/register", body, entity.RoleDoctor))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, entity.RoleDoctor, gotActor.Role)
	resp := decodeEnvelope(t, rec)
	assert.True(t, resp.Success)
}

func TestRegisterPatient_ValidationFailure(t *testing.T) {
	h := NewPatientHandler(&fakePatientUsecase{}, validator.NewValidator())

	body := `{"firstName":"A","email":"bad","mobile":"123"}`
	rec := httptest.NewRecorder()
	h.Register(rec, authenticatedRequest(http.MethodPost, "/api/patients/register", body, entity.RoleDoctor))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.Equal(t, apperror.CodeValidation, resp.ErrorCode)
}

func TestRegisterPatient_Conflict(t *testing.T) {
	h := NewPatientHandler(&fakePatientUsecase{
		register: func(ctx context.Context, actor entity.Principal, req *dto.RegisterPatientRequest) (*dto.PatientResponse, error) {
			return nil, apperror.Conflict("Patient already exists with this email", apperror.CodePatientExists)
		},
	}, validator.NewValidator())

	body := `{"firstName":"Asha","lastName":"Patel","email":"asha@example.com","mobile":"9876543210"}`
	rec := httptest.NewRecorder()
	h.Register(rec, authenticatedRequest(http.MethodPost, "/api/patients/register", body, entity.RoleDoctor))

	assert.Equal(t, http.StatusConflict, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.Equal(t, apperror.CodePatientExists, resp.ErrorCode)
}

func TestListPatients_PassesEmailFilter(t *testing.T) {
	var gotFilter string
	h := NewPatientHandler(&fakePatientUsecase{
		list: func(ctx context.Context, emailFilter string) ([]dto.PatientResponse, error) {
			gotFilter = emailFilter
			return []dto.PatientResponse{}, nil
		},
	}, validator.NewValidator())

	rec := httptest.NewRecorder()
	h.List(rec, authenticatedRequest(http.MethodGet, "/api/patients?email=asha@example.com", "", entity.RoleDoctor))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "asha@example.com", gotFilter)
}

func TestProfile_UsesSessionID(t *testing.T) {
	var gotID uuid.UUID
	h := NewPatientHandler(&fakePatientUsecase{
		getProfile: func(ctx context.Context, patientID uuid.UUID) (*dto.PatientResponse, error) {
			gotID = patientID
			return &dto.PatientResponse{ID: patientID.String()}, nil
		},
	}, validator.NewValidator())

	req := authenticatedRequest(http.MethodGet, "/api/patients/me", "", entity.RolePatient)
	principal, _ := middleware.PrincipalFromContext(req.Context())

	rec := httptest.NewRecorder()
	h.Profile(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, principal.ID, gotID)
}

func TestUpdatePatient_BadID(t *testing.T) {
	h := NewPatientHandler(&fakePatientUsecase{}, validator.NewValidator())

	req := authenticatedRequest(http.MethodPut, "/api/patients/nope", `{}`, entity.RoleDoctor)
	req = mux.SetURLVars(req, map[string]string{"id": "nope"})

	rec := httptest.NewRecorder()
	h.Update(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeactivatePatient_NotFound(t *testing.T) {
	h := NewPatientHandler(&fakePatientUsecase{
		deactivate: func(ctx context.Context, actor entity.Principal, id uuid.UUID) error {
			return apperror.NotFound("Patient not found or already deleted", apperror.CodePatientNotFound)
		},
	}, validator.NewValidator())

	id := uuid.New().String()
	req := authenticatedRequest(http.MethodPatch, "/api/patients/"+id+"/deactivate", "", entity.RoleDoctor)
	req = mux.SetURLVars(req, map[string]string{"id": id})

	rec := httptest.NewRecorder()
	h.Deactivate(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.Equal(t, apperror.CodePatientNotFound, resp.ErrorCode)
}

func TestChangePassword_Success(t *testing.T) {
	var gotReq *dto.ChangePasswordRequest
	h := NewPatientHandler(&fakePatientUsecase{
		changePassword: func(ctx context.Context, patientID uuid.UUID, req *dto.ChangePasswordRequest) error {
			gotReq = req
			return nil
		},
	}, validator.NewValidator())

	body := `{"currentPassword":"old-one","newPassword":"Str0ng!pass"}`
	rec := httptest.NewRecorder()
	h.ChangePassword(rec, authenticatedRequest(http.MethodPatch, "/api/patients/me/password", body, entity.RolePatient))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, gotReq)
	assert.Equal(t, "Str0ng!pass", gotReq.NewPassword)
}
