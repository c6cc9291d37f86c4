package repository

import (
	"context"

	"github.com/Dixit-Goti/hospital-management/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VisitRepository. List reads preload the patient and doctor rows.
type VisitRepository interface {
	Create(ctx context.Context, db *gorm.DB, visit *entity.Visit) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Visit, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Visit, error)
	FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.Visit, error)
	Update(ctx context.Context, db *gorm.DB, visit *entity.Visit) error
}
