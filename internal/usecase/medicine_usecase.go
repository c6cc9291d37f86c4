package usecase

import (
	"context"
	"strings"

	"github.com/Dixit-Goti/hospital-management/internal/converter"
	"github.com/Dixit-Goti/hospital-management/internal/delivery/dto"
	"github.com/Dixit-Goti/hospital-management/internal/domain/entity"
	"github.com/Dixit-Goti/hospital-management/internal/domain/repository"
	"github.com/Dixit-Goti/hospital-management/internal/service"
	"github.com/Dixit-Goti/hospital-management/pkg/apperror"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type MedicineUsecase interface {
	Create(ctx context.Context, actor entity.Principal, req *dto.CreateMedicineRequest) (*dto.MedicineResponse, error)
	Search(ctx context.Context, name string) ([]dto.MedicineResponse, error)
	Update(ctx context.Context, actor entity.Principal, id uuid.UUID, req *dto.UpdateMedicineRequest) (*dto.MedicineResponse, error)
	Deactivate(ctx context.Context, actor entity.Principal, id uuid.UUID) error
}

type medicineUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	medicineRepo repository.MedicineRepository
	auditService service.AuditService
}

func NewMedicineUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	medicineRepo repository.MedicineRepository,
	auditService service.AuditService,
) MedicineUsecase {
	return &medicineUsecase{
		db:           db,
		log:          log,
		medicineRepo: medicineRepo,
		auditService: auditService,
	}
}

func (u *medicineUsecase) Create(ctx context.Context, actor entity.Principal, req *dto.CreateMedicineRequest) (*dto.MedicineResponse, error) {
	// Names are stored lowercase so "Paracetamol" and "paracetamol" count
	// as the same medicine.
	name := strings.ToLower(strings.TrimSpace(req.Name))
	strength := strings.TrimSpace(req.Strength)
	form := strings.TrimSpace(req.Form)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.medicineRepo.FindByTriple(ctx, tx, name, strength, form, nil)
	if err != nil {
		u.log.Warnf("Failed to check medicine uniqueness: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("Medicine already exists", apperror.CodeMedicineExists).
			WithDetails(converter.MedicineToResponse(existing))
	}

	medicine := &entity.Medicine{
		Name:         name,
		Strength:     strength,
		Form:         form,
		Manufacturer: strings.TrimSpace(req.Manufacturer),
	}

	if err := u.medicineRepo.Create(ctx, tx, medicine); err != nil {
		if isDuplicateKeyError(err, "idx_medicine_triple") {
			return nil, apperror.Conflict("Medicine already exists", apperror.CodeMedicineExists)
		}
		u.log.Warnf("Failed to create medicine: %+v", err)
		return nil, err
	}

	actorID := actor.ID
	if err := u.auditService.Record(ctx, tx, &actorID, actor.Role, entity.AuditActionMedicineCreate, "medicine", medicine.ID.String(), nil); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.MedicineToResponse(medicine), nil
}

func (u *medicineUsecase) Search(ctx context.Context, name string) ([]dto.MedicineResponse, error) {
	medicines, err := u.medicineRepo.Search(ctx, u.db, strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		u.log.Warnf("Failed to search medicines: %+v", err)
		return nil, err
	}

	return converter.MedicinesToResponse(medicines), nil
}

func (u *medicineUsecase) Update(ctx context.Context, actor entity.Principal, id uuid.UUID, req *dto.UpdateMedicineRequest) (*dto.MedicineResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	medicine, err := u.medicineRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find medicine by id: %+v", err)
		return nil, err
	}
	if medicine == nil {
		return nil, apperror.NotFound("Medicine not found or deleted", apperror.CodeMedicineNotFound)
	}

	applyMedicineUpdate(medicine, req)

	// Re-check the (name, strength, form) triple against other active rows
	// when any part of it changed.
	if req.Name != nil || req.Strength != nil || req.Form != nil {
		existing, err := u.medicineRepo.FindByTriple(ctx, tx, medicine.Name, medicine.Strength, medicine.Form, &medicine.ID)
		if err != nil {
			u.log.Warnf("Failed to check medicine uniqueness: %+v", err)
			return nil, err
		}
		if existing != nil {
			return nil, apperror.Conflict("Medicine already exists", apperror.CodeMedicineExists).
				WithDetails(converter.MedicineToResponse(existing))
		}
	}

	if err := u.medicineRepo.Update(ctx, tx, medicine); err != nil {
		if isDuplicateKeyError(err, "idx_medicine_triple") {
			return nil, apperror.Conflict("Medicine already exists", apperror.CodeMedicineExists)
		}
		u.log.Warnf("Failed to update medicine: %+v", err)
		return nil, err
	}

	actorID := actor.ID
	if err := u.auditService.Record(ctx, tx, &actorID, actor.Role, entity.AuditActionMedicineUpdate, "medicine", medicine.ID.String(), nil); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.MedicineToResponse(medicine), nil
}

func (u *medicineUsecase) Deactivate(ctx context.Context, actor entity.Principal, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	medicine, err := u.medicineRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find medicine by id: %+v", err)
		return err
	}
	if medicine == nil {
		return apperror.NotFound("Medicine not found or already deleted", apperror.CodeMedicineNotFound)
	}

	medicine.IsDeleted = true
	if err := u.medicineRepo.Update(ctx, tx, medicine); err != nil {
		u.log.Warnf("Failed to soft delete medicine: %+v", err)
		return err
	}

	actorID := actor.ID
	if err := u.auditService.Record(ctx, tx, &actorID, actor.Role, entity.AuditActionMedicineDeactivate, "medicine", medicine.ID.String(), nil); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func applyMedicineUpdate(medicine *entity.Medicine, req *dto.UpdateMedicineRequest) {
	if req.Name != nil {
		medicine.Name = strings.ToLower(strings.TrimSpace(*req.Name))
	}
	if req.Strength != nil {
		medicine.Strength = strings.TrimSpace(*req.Strength)
	}
	if req.Form != nil {
		medicine.Form = strings.TrimSpace(*req.Form)
	}
	if req.Manufacturer != nil {
		medicine.Manufacturer = strings.TrimSpace(*req.Manufacturer)
	}
}
