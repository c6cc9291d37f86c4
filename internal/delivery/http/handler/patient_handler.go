package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Dixit-Goti/hospital-management/internal/delivery/dto"
	"github.com/Dixit-Goti/hospital-management/internal/delivery/http/middleware"
	"github.com/Dixit-Goti/hospital-management/internal/domain/entity"
	"github.com/Dixit-Goti/hospital-management/internal/usecase"
	"github.com/Dixit-Goti/hospital-management/pkg/apperror"
	"github.com/Dixit-Goti/hospital-management/pkg/response"
	"github.com/Dixit-Goti/hospital-management/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

// principalOrUnauthorized fetches the authenticated principal placed in the
// request context by the auth middleware.
func principalOrUnauthorized(w http.ResponseWriter, r *http.Request) (entity.Principal, bool) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing or malformed authorization header", apperror.CodeInvalidToken)
	}
	return principal, ok
}

func pathID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(mux.Vars(r)["id"])
}

// Register handles patient registration by a doctor
func (h *PatientHandler) Register(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalOrUnauthorized(w, r)
	if !ok {
		return
	}

	var req dto.RegisterPatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, apperror.BadRequest("Invalid request body", apperror.CodeValidation))
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.Register(r.Context(), principal, &req)
	if err != nil {
		response.Err(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Patient registered successfully", patient)
}

// List handles listing patients, optionally filtered by email
func (h *PatientHandler) List(w http.ResponseWriter, r *http.Request) {
	patients, err := h.patientUsecase.List(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		response.Err(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}

// Profile returns the authenticated patient's own record
func (h *PatientHandler) Profile(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalOrUnauthorized(w, r)
	if !ok {
		return
	}

	patient, err := h.patientUsecase.GetProfile(r.Context(), principal.ID)
	if err != nil {
		response.Err(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Profile retrieved successfully", patient)
}

// Update handles patient update by a doctor
func (h *PatientHandler) Update(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalOrUnauthorized(w, r)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		response.Err(w, apperror.BadRequest("Invalid patient ID", apperror.CodeValidation))
		return
	}

	var req dto.UpdatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, apperror.BadRequest("Invalid request body", apperror.CodeValidation))
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.Update(r.Context(), principal, id, &req)
	if err != nil {
		response.Err(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Patient updated successfully", patient)
}

// Deactivate soft deletes a patient
func (h *PatientHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalOrUnauthorized(w, r)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		response.Err(w, apperror.BadRequest("Invalid patient ID", apperror.CodeValidation))
		return
	}

	if err := h.patientUsecase.Deactivate(r.Context(), principal, id); err != nil {
		response.Err(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Patient deleted successfully", nil)
}

// ChangePassword lets the authenticated patient rotate their credential
func (h *PatientHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalOrUnauthorized(w, r)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, apperror.BadRequest("Invalid request body", apperror.CodeValidation))
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.patientUsecase.ChangePassword(r.Context(), principal.ID, &req); err != nil {
		response.Err(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Password changed successfully", nil)
}
