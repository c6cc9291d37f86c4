package dto

import "time"

// Vitals payload shared by visit and prescription operations.
type Vitals struct {
	Weight          float64 `json:"weight,omitempty" validate:"omitempty,gte=0"`
	Height          float64 `json:"height,omitempty" validate:"omitempty,gte=0"`
	BloodPressure   string  `json:"bloodPressure,omitempty"`
	Temperature     float64 `json:"temperature,omitempty"`
	Pulse           int     `json:"pulse,omitempty" validate:"omitempty,gte=0"`
	RespirationRate int     `json:"respirationRate,omitempty" validate:"omitempty,gte=0"`
}

// CreateVisitRequest deliberately has no doctorId field: the doctor is always
// the authenticated principal.
type CreateVisitRequest struct {
	PatientID               string   `json:"patientId" validate:"required,uuid"`
	Date                    string   `json:"date" validate:"required"` // Format: YYYY-MM-DD
	Diagnosis               string   `json:"diagnosis" validate:"required"`
	Symptoms                []string `json:"symptoms" validate:"omitempty"`
	Vitals                  *Vitals  `json:"vitals" validate:"omitempty"`
	Notes                   string   `json:"notes" validate:"omitempty"`
	RecommendedFollowUpDate string   `json:"recommendedFollowUpDate" validate:"omitempty"`
	FollowUpNotes           string   `json:"followUpNotes" validate:"omitempty"`
}

type UpdateVisitRequest struct {
	Date                    *string   `json:"date" validate:"omitempty"`
	Diagnosis               *string   `json:"diagnosis" validate:"omitempty,min=1"`
	Symptoms                *[]string `json:"symptoms" validate:"omitempty"`
	Vitals                  *Vitals   `json:"vitals" validate:"omitempty"`
	Notes                   *string   `json:"notes" validate:"omitempty"`
	RecommendedFollowUpDate *string   `json:"recommendedFollowUpDate" validate:"omitempty"`
	FollowUpNotes           *string   `json:"followUpNotes" validate:"omitempty"`
}

// PersonRef is the compact patient/doctor summary embedded in visit reads.
type PersonRef struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type VisitResponse struct {
	ID                      string     `json:"id"`
	Patient                 *PersonRef `json:"patient,omitempty"`
	Doctor                  *PersonRef `json:"doctor,omitempty"`
	PatientID               string     `json:"patientId"`
	DoctorID                string     `json:"doctorId"`
	Date                    time.Time  `json:"date"`
	Diagnosis               string     `json:"diagnosis"`
	Symptoms                []string   `json:"symptoms"`
	Vitals                  *Vitals    `json:"vitals,omitempty"`
	Notes                   string     `json:"notes,omitempty"`
	RecommendedFollowUpDate *time.Time `json:"recommendedFollowUpDate,omitempty"`
	FollowUpNotes           string     `json:"followUpNotes,omitempty"`
	CreatedAt               time.Time  `json:"createdAt"`
	UpdatedAt               time.Time  `json:"updatedAt"`
}
