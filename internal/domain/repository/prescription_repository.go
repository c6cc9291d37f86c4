package repository

import (
	"context"

	"github.com/Dixit-Goti/hospital-management/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PrescriptionRepository interface {
	Create(ctx context.Context, db *gorm.DB, prescription *entity.Prescription) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Prescription, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Prescription, error)
	FindByPatientEmail(ctx context.Context, db *gorm.DB, email string) ([]entity.Prescription, error)
	Update(ctx context.Context, db *gorm.DB, prescription *entity.Prescription) error
}
