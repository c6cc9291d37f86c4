package converter

import (
	"github.com/Dixit-Goti/hospital-management/internal/delivery/dto"
	"github.com/Dixit-Goti/hospital-management/internal/domain/entity"

	"github.com/google/uuid"
)

// Fallback label when a referenced medicine row no longer exists at all.
const unknownMedicineName = "Unknown Medicine"

// PrescriptionToResponse resolves each item's medicine name from the given
// lookup. Soft-deleted medicines still resolve so history stays readable.
func PrescriptionToResponse(prescription *entity.Prescription, medicines map[uuid.UUID]entity.Medicine) *dto.PrescriptionResponse {
	if prescription == nil {
		return nil
	}

	items := make([]dto.PrescriptionItemResponse, 0, len(prescription.ListOfMedicine))
	for _, item := range prescription.ListOfMedicine {
		name := unknownMedicineName
		if medicine, ok := medicines[item.MedicineID]; ok {
			name = medicine.Name
		}
		items = append(items, dto.PrescriptionItemResponse{
			MedicineID:   item.MedicineID.String(),
			Name:         name,
			Dosage:       item.Dosage,
			Frequency:    item.Frequency,
			Duration:     item.Duration,
			Instructions: item.Instructions,
		})
	}

	resp := &dto.PrescriptionResponse{
		ID:             prescription.ID.String(),
		PatientEmail:   prescription.PatientEmail,
		Diagnosis:      prescription.Diagnosis,
		Symptoms:       prescription.Symptoms,
		Vitals:         vitalsToResponse(prescription.Vitals),
		ListOfMedicine: items,
		Instructions:   prescription.Instructions,
		CreatedAt:      prescription.CreatedAt,
		UpdatedAt:      prescription.UpdatedAt,
	}
	if resp.Symptoms == nil {
		resp.Symptoms = []string{}
	}
	return resp
}

func PrescriptionsToResponse(prescriptions []entity.Prescription, medicines map[uuid.UUID]entity.Medicine) []dto.PrescriptionResponse {
	responses := make([]dto.PrescriptionResponse, 0, len(prescriptions))
	for i := range prescriptions {
		responses = append(responses, *PrescriptionToResponse(&prescriptions[i], medicines))
	}
	return responses
}
