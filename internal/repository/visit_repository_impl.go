package repository

import (
	"context"
	"errors"

	"github.com/Dixit-Goti/hospital-management/internal/domain/entity"
	domainRepo "github.com/Dixit-Goti/hospital-management/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type visitRepository struct{}

func NewVisitRepository() domainRepo.VisitRepository {
	return &visitRepository{}
}

func (r *visitRepository) Create(ctx context.Context, db *gorm.DB, visit *entity.Visit) error {
	return db.WithContext(ctx).Create(visit).Error
}

func (r *visitRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Visit, error) {
	var visit entity.Visit
	err := db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&visit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &visit, nil
}

func (r *visitRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Visit, error) {
	var visits []entity.Visit
	err := db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Preload("Patient").
		Preload("Doctor").
		Order("date DESC").
		Find(&visits).Error
	if err != nil {
		return nil, err
	}
	return visits, nil
}

func (r *visitRepository) FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.Visit, error) {
	var visits []entity.Visit
	err := db.WithContext(ctx).
		Where("patient_id = ? AND is_deleted = ?", patientID, false).
		Preload("Patient").
		Preload("Doctor").
		Order("date DESC").
		Find(&visits).Error
	if err != nil {
		return nil, err
	}
	return visits, nil
}

func (r *visitRepository) Update(ctx context.Context, db *gorm.DB, visit *entity.Visit) error {
	return db.WithContext(ctx).Save(visit).Error
}
