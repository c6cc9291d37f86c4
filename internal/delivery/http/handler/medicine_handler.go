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

type MedicineHandler struct {
	medicineUsecase usecase.MedicineUsecase
	validator       *validator.CustomValidator
}

func NewMedicineHandler(medicineUsecase usecase.MedicineUsecase, validator *validator.CustomValidator) *MedicineHandler {
	return &MedicineHandler{
		medicineUsecase: medicineUsecase,
		validator:       validator,
	}
}

// Create handles medicine creation
func (h *MedicineHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalOrUnauthorized(w, r)
	if !ok {
		return
	}

	var req dto.CreateMedicineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, apperror.BadRequest("Invalid request body", apperror.CodeValidation))
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	medicine, err := h.medicineUsecase.Create(r.Context(), principal, &req)
	if err != nil {
		response.Err(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Medicine created successfully", medicine)
}

// Search handles medicine lookup by name substring
func (h *MedicineHandler) Search(w http.ResponseWriter, r *http.Request) {
	medicines, err := h.medicineUsecase.Search(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		response.Err(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Medicines retrieved successfully", medicines)
}

// Update handles medicine update
func (h *MedicineHandler) Update(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalOrUnauthorized(w, r)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		response.Err(w, apperror.BadRequest("Invalid medicine ID", apperror.CodeValidation))
		return
	}

	var req dto.UpdateMedicineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, apperror.BadRequest("Invalid request body", apperror.CodeValidation))
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	medicine, err := h.medicineUsecase.Update(r.Context(), principal, id, &req)
	if err != nil {
		response.Err(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Medicine updated successfully", medicine)
}

// Deactivate soft deletes a medicine
func (h *MedicineHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalOrUnauthorized(w, r)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		response.Err(w, apperror.BadRequest("Invalid medicine ID", apperror.CodeValidation))
		return
	}

	if err := h.medicineUsecase.Deactivate(r.Context(), principal, id); err != nil {
		response.Err(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Medicine deleted successfully", nil)
}
