package dto

import "time"

type PrescriptionItemRequest struct {
	MedicineID   string `json:"medicineId" validate:"required,uuid"`
	Dosage       string `json:"dosage" validate:"required,min=1"`
	Frequency    string `json:"frequency" validate:"required,min=1"`
	Duration     string `json:"duration" validate:"required,min=1"`
	Instructions string `json:"instructions" validate:"omitempty"`
}

type CreatePrescriptionRequest struct {
	PatientEmail   string                    `json:"patientEmail" validate:"required,email"`
	Diagnosis      string                    `json:"diagnosis" validate:"required"`
	Symptoms       []string                  `json:"symptoms" validate:"omitempty"`
	Vitals         *Vitals                   `json:"vitals" validate:"omitempty"`
	ListOfMedicine []PrescriptionItemRequest `json:"listOfMedicine" validate:"required,min=1,dive"`
	Instructions   string                    `json:"instructions" validate:"omitempty"`
}

type UpdatePrescriptionRequest struct {
	PatientEmail   *string                    `json:"patientEmail" validate:"omitempty,email"`
	Diagnosis      *string                    `json:"diagnosis" validate:"omitempty,min=1"`
	Symptoms       *[]string                  `json:"symptoms" validate:"omitempty"`
	Vitals         *Vitals                    `json:"vitals" validate:"omitempty"`
	ListOfMedicine *[]PrescriptionItemRequest `json:"listOfMedicine" validate:"omitempty,min=1,dive"`
	Instructions   *string                    `json:"instructions" validate:"omitempty"`
}

// PrescriptionItemResponse resolves the medicine name alongside the stored
// reference so clients need no second lookup.
type PrescriptionItemResponse struct {
	MedicineID   string `json:"medicineId"`
	Name         string `json:"name"`
	Dosage       string `json:"dosage"`
	Frequency    string `json:"frequency"`
	Duration     string `json:"duration"`
	Instructions string `json:"instructions,omitempty"`
}

type PrescriptionResponse struct {
	ID             string                     `json:"id"`
	PatientEmail   string                     `json:"patientEmail"`
	Diagnosis      string                     `json:"diagnosis"`
	Symptoms       []string                   `json:"symptoms"`
	Vitals         *Vitals                    `json:"vitals,omitempty"`
	ListOfMedicine []PrescriptionItemResponse `json:"listOfMedicine"`
	Instructions   string                     `json:"instructions,omitempty"`
	CreatedAt      time.Time                  `json:"createdAt"`
	UpdatedAt      time.Time                  `json:"updatedAt"`
}
