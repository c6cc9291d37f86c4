package converter

import (
	"github.com/Dixit-Goti/hospital-management/internal/delivery/dto"
	"github.com/Dixit-Goti/hospital-management/internal/domain/entity"
)

func MedicineToResponse(medicine *entity.Medicine) *dto.MedicineResponse {
	if medicine == nil {
		return nil
	}

	return &dto.MedicineResponse{
		ID:           medicine.ID.String(),
		Name:         medicine.Name,
		Strength:     medicine.Strength,
		Form:         medicine.Form,
		Manufacturer: medicine.Manufacturer,
		CreatedAt:    medicine.CreatedAt,
		UpdatedAt:    medicine.UpdatedAt,
	}
}

func MedicinesToResponse(medicines []entity.Medicine) []dto.MedicineResponse {
	responses := make([]dto.MedicineResponse, 0, len(medicines))
	for i := range medicines {
		responses = append(responses, *MedicineToResponse(&medicines[i]))
	}
	return responses
}
