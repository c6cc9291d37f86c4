package repository

import (
	"context"
	"errors"

	"github.com/Dixit-Goti/hospital-management/internal/domain/entity"
	domainRepo "github.com/Dixit-Goti/hospital-management/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type medicineRepository struct{}

func NewMedicineRepository() domainRepo.MedicineRepository {
	return &medicineRepository{}
}

func (r *medicineRepository) Create(ctx context.Context, db *gorm.DB, medicine *entity.Medicine) error {
	return db.WithContext(ctx).Create(medicine).Error
}

func (r *medicineRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Medicine, error) {
	var medicine entity.Medicine
	err := db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&medicine).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &medicine, nil
}

func (r *medicineRepository) Search(ctx context.Context, db *gorm.DB, name string) ([]entity.Medicine, error) {
	query := db.WithContext(ctx).Where("is_deleted = ?", false)
	if name != "" {
		query = query.Where("name ILIKE ?", "%"+name+"%")
	}

	var medicines []entity.Medicine
	if err := query.Order("created_at DESC").Find(&medicines).Error; err != nil {
		return nil, err
	}
	return medicines, nil
}

func (r *medicineRepository) FindByTriple(ctx context.Context, db *gorm.DB, name, strength, form string, excludeID *uuid.UUID) (*entity.Medicine, error) {
	query := db.WithContext(ctx).
		Where("name = ? AND strength = ? AND form = ? AND is_deleted = ?", name, strength, form, false)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var medicine entity.Medicine
	err := query.First(&medicine).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &medicine, nil
}

func (r *medicineRepository) FindActiveByIDs(ctx context.Context, db *gorm.DB, ids []uuid.UUID) ([]entity.Medicine, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var medicines []entity.Medicine
	err := db.WithContext(ctx).
		Where("id IN ? AND is_deleted = ?", ids, false).
		Find(&medicines).Error
	if err != nil {
		return nil, err
	}
	return medicines, nil
}

func (r *medicineRepository) FindByIDs(ctx context.Context, db *gorm.DB, ids []uuid.UUID) ([]entity.Medicine, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var medicines []entity.Medicine
	err := db.WithContext(ctx).Where("id IN ?", ids).Find(&medicines).Error
	if err != nil {
		return nil, err
	}
	return medicines, nil
}

func (r *medicineRepository) Update(ctx context.Context, db *gorm.DB, medicine *entity.Medicine) error {
	return db.WithContext(ctx).Save(medicine).Error
}
