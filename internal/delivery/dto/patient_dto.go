package dto

import "time"

// RegisterPatientRequest is submitted by a doctor; the credential is
// generated server-side and mailed to the patient.
type RegisterPatientRequest struct {
	FirstName    string `json:"firstName" validate:"required,min=2"`
	LastName     string `json:"lastName" validate:"required,min=2"`
	Email        string `json:"email" validate:"required,email"`
	Mobile       string `json:"mobile" validate:"required,min=10,max=20"`
	DOB          string `json:"dob" validate:"omitempty"` // Format: YYYY-MM-DD
	Gender       string `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	Address      string `json:"address" validate:"omitempty"`
	ProfileImage string `json:"profileImage" validate:"omitempty,url"`
}

// UpdatePatientRequest: only the fields present in the payload are applied,
// and only those on the allow-list. Pointer fields distinguish "absent" from
// "set to empty".
type UpdatePatientRequest struct {
	FirstName    *string `json:"firstName" validate:"omitempty,min=2"`
	LastName     *string `json:"lastName" validate:"omitempty,min=2"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Mobile       *string `json:"mobile" validate:"omitempty,min=10,max=20"`
	DOB          *string `json:"dob" validate:"omitempty"`
	Gender       *string `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	Address      *string `json:"address" validate:"omitempty"`
	ProfileImage *string `json:"profileImage" validate:"omitempty,url"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

// PatientResponse never carries the password hash.
type PatientResponse struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	Mobile       string    `json:"mobile"`
	DOB          string    `json:"dob,omitempty"`
	Gender       string    `json:"gender,omitempty"`
	Address      string    `json:"address,omitempty"`
	ProfileImage string    `json:"profileImage,omitempty"`
	JoinDate     time.Time `json:"joinDate"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
