package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Dixit-Goti/hospital-management/internal/delivery/dto"
	"github.com/Dixit-Goti/hospital-management/pkg/apperror"
	"github.com/Dixit-Goti/hospital-management/pkg/response"
	"github.com/Dixit-Goti/hospital-management/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthUsecase struct {
	loginDoctor  func(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	loginPatient func(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

func (f *fakeAuthUsecase) LoginDoctor(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	return f.loginDoctor(ctx, req)
}

func (f *fakeAuthUsecase) LoginPatient(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	return f.loginPatient(ctx, req)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestLoginDoctor_Success(t *testing.T) {
	h := NewAuthHandler(&fakeAuthUsecase{
		loginDoctor: func(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
			return &dto.LoginResponse{
				Token: "signed-token",
				User:  &dto.AuthUserResponse{ID: "u1", Name: "Dr Ravi", Role: "doctor"},
			}, nil
		},
	}, validator.NewValidator())

	body := `{"email":"ravi@example.com","password":"secret"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/doctor", strings.NewReader(body))
	h.LoginDoctor(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.True(t, resp.Success)
	assert.Contains(t, rec.Body.String(), "signed-token")
}

func TestLoginDoctor_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&fakeAuthUsecase{
		loginDoctor: func(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
			return nil, apperror.Unauthorized("Invalid credentials", apperror.CodeInvalidCredentials)
		},
	}, validator.NewValidator())

	body := `{"email":"ravi@example.com","password":"wrong"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/doctor", strings.NewReader(body))
	h.LoginDoctor(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, apperror.CodeInvalidCredentials, resp.ErrorCode)
}

func TestLoginDoctor_ValidationFailure(t *testing.T) {
	h := NewAuthHandler(&fakeAuthUsecase{}, validator.NewValidator())

	body := `{"email":"not-an-email"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/doctor", strings.NewReader(body))
	h.LoginDoctor(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.Equal(t, apperror.CodeValidation, resp.ErrorCode)
	assert.NotNil(t, resp.Details)
}

func TestLoginPatient_MalformedBody(t *testing.T) {
	h := NewAuthHandler(&fakeAuthUsecase{}, validator.NewValidator())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/patient", strings.NewReader("{"))
	h.LoginPatient(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
