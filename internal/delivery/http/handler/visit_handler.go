package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Dixit-Goti/hospital-management/internal/delivery/dto"
	"github.com/Dixit-Goti/hospital-management/internal/usecase"
	"github.com/Dixit-Goti/hospital-management/pkg/apperror"
	"github.com/Dixit-Goti/hospital-management/pkg/response"
	"github.com/Dixit-Goti/hospital-management/pkg/validator"
)

type VisitHandler struct {
	visitUsecase usecase.VisitUsecase
	validator    *validator.CustomValidator
}

func NewVisitHandler(visitUsecase usecase.VisitUsecase, validator *validator.CustomValidator) *VisitHandler {
	return &VisitHandler{
		visitUsecase: visitUsecase,
		validator:    validator,
	}
}

// Create handles visit creation; the doctor is always the authenticated user
func (h *VisitHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalOrUnauthorized(w, r)
	if !ok {
		return
	}

	var req dto.CreateVisitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, apperror.BadRequest("Invalid request body", apperror.CodeValidation))
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	visit, err := h.visitUsecase.Create(r.Context(), principal, &req)
	if err != nil {
		response.Err(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Visit created successfully", visit)
}

// List handles visit history reads for both roles
func (h *VisitHandler) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalOrUnauthorized(w, r)
	if !ok {
		return
	}

	visits, err := h.visitUsecase.List(r.Context(), principal, r.URL.Query().Get("email"))
	if err != nil {
		response.Err(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Visits retrieved successfully", visits)
}

// Update handles visit update
func (h *VisitHandler) Update(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalOrUnauthorized(w, r)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		response.Err(w, apperror.BadRequest("Invalid visit ID", apperror.CodeValidation))
		return
	}

	var req dto.UpdateVisitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, apperror.BadRequest("Invalid request body", apperror.CodeValidation))
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	visit, err := h.visitUsecase.Update(r.Context(), principal, id, &req)
	if err != nil {
		response.Err(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Visit updated successfully", visit)
}

// Deactivate soft deletes a visit
func (h *VisitHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalOrUnauthorized(w, r)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		response.Err(w, apperror.BadRequest("Invalid visit ID", apperror.CodeValidation))
		return
	}

	if err := h.visitUsecase.Deactivate(r.Context(), principal, id); err != nil {
		response.Err(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Visit deleted successfully", nil)
}
