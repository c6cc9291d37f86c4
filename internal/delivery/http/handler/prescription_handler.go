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

type PrescriptionHandler struct {
	prescriptionUsecase usecase.PrescriptionUsecase
	validator           *validator.CustomValidator
}

func NewPrescriptionHandler(prescriptionUsecase usecase.PrescriptionUsecase, validator *validator.CustomValidator) *PrescriptionHandler {
	return &PrescriptionHandler{
		prescriptionUsecase: prescriptionUsecase,
		validator:           validator,
	}
}

// Create handles prescription creation
func (h *PrescriptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalOrUnauthorized(w, r)
	if !ok {
		return
	}

	var req dto.CreatePrescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, apperror.BadRequest("Invalid request body", apperror.CodeValidation))
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	prescription, err := h.prescriptionUsecase.Create(r.Context(), principal, &req)
	if err != nil {
		response.Err(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Prescription created successfully", prescription)
}

// List handles prescription history reads for both roles
func (h *PrescriptionHandler) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalOrUnauthorized(w, r)
	if !ok {
		return
	}

	prescriptions, err := h.prescriptionUsecase.List(r.Context(), principal, r.URL.Query().Get("email"))
	if err != nil {
		response.Err(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Prescriptions retrieved successfully", prescriptions)
}

// Update handles prescription update
func (h *PrescriptionHandler) Update(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalOrUnauthorized(w, r)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		response.Err(w, apperror.BadRequest("Invalid prescription ID", apperror.CodeValidation))
		return
	}

	var req dto.UpdatePrescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, apperror.BadRequest("Invalid request body", apperror.CodeValidation))
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	prescription, err := h.prescriptionUsecase.Update(r.Context(), principal, id, &req)
	if err != nil {
		response.Err(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Prescription updated successfully", prescription)
}

// Deactivate soft deletes a prescription
func (h *PrescriptionHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalOrUnauthorized(w, r)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		response.Err(w, apperror.BadRequest("Invalid prescription ID", apperror.CodeValidation))
		return
	}

	if err := h.prescriptionUsecase.Deactivate(r.Context(), principal, id); err != nil {
		response.Err(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Prescription deleted successfully", nil)
}
