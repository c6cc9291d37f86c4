package repository

import (
	"context"

	"github.com/Dixit-Goti/hospital-management/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository reads staff accounts. Inactive accounts are invisible to
// every method. There is no create or delete here; staff are provisioned
// out of band.
type UserRepository interface {
	FindActiveByEmailAndRole(ctx context.Context, db *gorm.DB, email, role string) (*entity.User, error)
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.User, error)
}
