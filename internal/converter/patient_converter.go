package converter

import (
	"github.com/Dixit-Goti/hospital-management/internal/delivery/dto"
	"github.com/Dixit-Goti/hospital-management/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to its response DTO. The
// password hash never crosses this boundary.
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	resp := &dto.PatientResponse{
		ID:           patient.ID.String(),
		FirstName:    patient.FirstName,
		LastName:     patient.LastName,
		Email:        patient.Email,
		Mobile:       patient.Mobile,
		Gender:       patient.Gender,
		Address:      patient.Address,
		ProfileImage: patient.ProfileImage,
		JoinDate:     patient.JoinDate,
		Role:         entity.RolePatient,
		CreatedAt:    patient.CreatedAt,
		UpdatedAt:    patient.UpdatedAt,
	}
	if patient.DOB != nil {
		resp.DOB = patient.DOB.Format("2006-01-02")
	}
	return resp
}

func PatientsToResponse(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, 0, len(patients))
	for i := range patients {
		responses = append(responses, *PatientToResponse(&patients[i]))
	}
	return responses
}
