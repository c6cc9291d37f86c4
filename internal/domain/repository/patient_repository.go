package repository

import (
	"context"

	"github.com/Dixit-Goti/hospital-management/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PatientRepository scopes every read to non-deleted rows. Finders return
// (nil, nil) when no active row matches.
type PatientRepository interface {
	Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Patient, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.Patient, error)
	FindAll(ctx context.Context, db *gorm.DB, emailFilter string) ([]entity.Patient, error)
	EmailTaken(ctx context.Context, db *gorm.DB, email string, excludeID uuid.UUID) (bool, error)
	Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
}
