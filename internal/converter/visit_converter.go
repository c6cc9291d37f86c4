package converter

import (
	"github.com/Dixit-Goti/hospital-management/internal/delivery/dto"
	"github.com/Dixit-Goti/hospital-management/internal/domain/entity"
)

func VisitToResponse(visit *entity.Visit) *dto.VisitResponse {
	if visit == nil {
		return nil
	}

	resp := &dto.VisitResponse{
		ID:                      visit.ID.String(),
		PatientID:               visit.PatientID.String(),
		DoctorID:                visit.DoctorID.String(),
		Date:                    visit.Date,
		Diagnosis:               visit.Diagnosis,
		Symptoms:                visit.Symptoms,
		Vitals:                  vitalsToResponse(visit.Vitals),
		Notes:                   visit.Notes,
		RecommendedFollowUpDate: visit.RecommendedFollowUpDate,
		FollowUpNotes:           visit.FollowUpNotes,
		CreatedAt:               visit.CreatedAt,
		UpdatedAt:               visit.UpdatedAt,
	}
	if resp.Symptoms == nil {
		resp.Symptoms = []string{}
	}
	if visit.Patient != nil {
		resp.Patient = &dto.PersonRef{
			ID:        visit.Patient.ID.String(),
			FirstName: visit.Patient.FirstName,
			LastName:  visit.Patient.LastName,
			Email:     visit.Patient.Email,
		}
	}
	if visit.Doctor != nil {
		resp.Doctor = &dto.PersonRef{
			ID:        visit.Doctor.ID.String(),
			FirstName: visit.Doctor.FirstName,
			LastName:  visit.Doctor.LastName,
			Email:     visit.Doctor.Email,
		}
	}
	return resp
}

func VisitsToResponse(visits []entity.Visit) []dto.VisitResponse {
	responses := make([]dto.VisitResponse, 0, len(visits))
	for i := range visits {
		responses = append(responses, *VisitToResponse(&visits[i]))
	}
	return responses
}

func vitalsToResponse(vitals *entity.Vitals) *dto.Vitals {
	if vitals == nil {
		return nil
	}
	return &dto.Vitals{
		Weight:          vitals.Weight,
		Height:          vitals.Height,
		BloodPressure:   vitals.BloodPressure,
		Temperature:     vitals.Temperature,
		Pulse:           vitals.Pulse,
		RespirationRate: vitals.RespirationRate,
	}
}

// VitalsToEntity maps a request vitals payload onto the stored form.
func VitalsToEntity(vitals *dto.Vitals) *entity.Vitals {
	if vitals == nil {
		return nil
	}
	return &entity.Vitals{
		Weight:          vitals.Weight,
		Height:          vitals.Height,
		BloodPressure:   vitals.BloodPressure,
		Temperature:     vitals.Temperature,
		Pulse:           vitals.Pulse,
		RespirationRate: vitals.RespirationRate,
	}
}
