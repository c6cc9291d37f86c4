package dto

import "time"

type CreateMedicineRequest struct {
	Name         string `json:"name" validate:"required,min=2"`
	Strength     string `json:"strength" validate:"required,min=1"`
	Form         string `json:"form" validate:"required,min=1"`
	Manufacturer string `json:"manufacturer" validate:"omitempty"`
}

type UpdateMedicineRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=2"`
	Strength     *string `json:"strength" validate:"omitempty,min=1"`
	Form         *string `json:"form" validate:"omitempty,min=1"`
	Manufacturer *string `json:"manufacturer" validate:"omitempty"`
}

type MedicineResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Strength     string    `json:"strength"`
	Form         string    `json:"form"`
	Manufacturer string    `json:"manufacturer,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
