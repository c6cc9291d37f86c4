package repository

import (
	"context"

	"github.com/Dixit-Goti/hospital-management/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MedicineRepository. Search and FindByID see active rows only; FindByIDs
// deliberately includes soft-deleted rows so prescription history can still
// resolve medicine names.
type MedicineRepository interface {
	Create(ctx context.Context, db *gorm.DB, medicine *entity.Medicine) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Medicine, error)
	Search(ctx context.Context, db *gorm.DB, name string) ([]entity.Medicine, error)
	FindByTriple(ctx context.Context, db *gorm.DB, name, strength, form string, excludeID *uuid.UUID) (*entity.Medicine, error)
	FindActiveByIDs(ctx context.Context, db *gorm.DB, ids []uuid.UUID) ([]entity.Medicine, error)
	FindByIDs(ctx context.Context, db *gorm.DB, ids []uuid.UUID) ([]entity.Medicine, error)
	Update(ctx context.Context, db *gorm.DB, medicine *entity.Medicine) error
}
