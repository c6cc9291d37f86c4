package repository

import (
	"context"
	"errors"

	"github.com/Dixit-Goti/hospital-management/internal/domain/entity"
	domainRepo "github.com/Dixit-Goti/hospital-management/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return db.WithContext(ctx).Create(patient).Error
}

func (r *patientRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.WithContext(ctx).
		Where("email = ? AND is_deleted = ?", email, false).
		First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindAll(ctx context.Context, db *gorm.DB, emailFilter string) ([]entity.Patient, error) {
	query := db.WithContext(ctx).Where("is_deleted = ?", false)
	if emailFilter != "" {
		query = query.Where("email = ?", emailFilter)
	}

	var patients []entity.Patient
	if err := query.Order("created_at DESC").Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) EmailTaken(ctx context.Context, db *gorm.DB, email string, excludeID uuid.UUID) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Patient{}).
		Where("email = ? AND is_deleted = ? AND id <> ?", email, false, excludeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *patientRepository) Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return db.WithContext(ctx).Save(patient).Error
}
