package repository

import (
	"context"
	"errors"

	"github.com/Dixit-Goti/hospital-management/internal/domain/entity"
	domainRepo "github.com/Dixit-Goti/hospital-management/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userRepository struct{}

func NewUserRepository() domainRepo.UserRepository {
	return &userRepository{}
}

func (r *userRepository) FindActiveByEmailAndRole(ctx context.Context, db *gorm.DB, email, role string) (*entity.User, error) {
	var user entity.User
	err := db.WithContext(ctx).
		Where("email = ? AND role = ? AND is_active = ?", email, role, true).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	var user entity.User
	err := db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
