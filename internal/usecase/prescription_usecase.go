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

type PrescriptionUsecase interface {
	Create(ctx context.Context, actor entity.Principal, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	List(ctx context.Context, actor entity.Principal, emailFilter string) ([]dto.PrescriptionResponse, error)
	Update(ctx context.Context, actor entity.Principal, id uuid.UUID, req *dto.UpdatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	Deactivate(ctx context.Context, actor entity.Principal, id uuid.UUID) error
}

type prescriptionUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	prescriptionRepo repository.PrescriptionRepository
	patientRepo      repository.PatientRepository
	medicineRepo     repository.MedicineRepository
	auditService     service.AuditService
}

func NewPrescriptionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	prescriptionRepo repository.PrescriptionRepository,
	patientRepo repository.PatientRepository,
	medicineRepo repository.MedicineRepository,
	auditService service.AuditService,
) PrescriptionUsecase {
	return &prescriptionUsecase{
		db:               db,
		log:              log,
		prescriptionRepo: prescriptionRepo,
		patientRepo:      patientRepo,
		medicineRepo:     medicineRepo,
		auditService:     auditService,
	}
}

func (u *prescriptionUsecase) Create(ctx context.Context, actor entity.Principal, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.PatientEmail))

	items, err := prescriptionItemsFromRequest(req.ListOfMedicine)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByEmail(ctx, tx, email)
	if err != nil {
		u.log.Warnf("Failed to find patient by email: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, apperror.BadRequest("Patient not found or deleted", apperror.CodePatientNotFound)
	}

	if err := u.ensureMedicinesActive(ctx, tx, items); err != nil {
		return nil, err
	}

	prescription := &entity.Prescription{
		PatientEmail:   email,
		Diagnosis:      strings.TrimSpace(req.Diagnosis),
		Symptoms:       entity.StringList(req.Symptoms),
		Vitals:         converter.VitalsToEntity(req.Vitals),
		ListOfMedicine: items,
		Instructions:   req.Instructions,
	}

	if err := u.prescriptionRepo.Create(ctx, tx, prescription); err != nil {
		u.log.Warnf("Failed to create prescription: %+v", err)
		return nil, err
	}

	actorID := actor.ID
	if err := u.auditService.Record(ctx, tx, &actorID, actor.Role, entity.AuditActionPrescriptionCreate, "prescription", prescription.ID.String(), nil); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	medicines, err := u.medicineNames(ctx, prescription.ListOfMedicine.MedicineIDs())
	if err != nil {
		return nil, err
	}
	return converter.PrescriptionToResponse(prescription, medicines), nil
}

// List: doctors see everything or one patient's history by email; patients
// see only prescriptions issued against their own address.
func (u *prescriptionUsecase) List(ctx context.Context, actor entity.Principal, emailFilter string) ([]dto.PrescriptionResponse, error) {
	var prescriptions []entity.Prescription
	var err error

	switch {
	case actor.Role == entity.RolePatient:
		prescriptions, err = u.prescriptionRepo.FindByPatientEmail(ctx, u.db, actor.Email)
	case emailFilter != "":
		email := strings.ToLower(strings.TrimSpace(emailFilter))
		patient, findErr := u.patientRepo.FindByEmail(ctx, u.db, email)
		if findErr != nil {
			u.log.Warnf("Failed to find patient by email: %+v", findErr)
			return nil, findErr
		}
		if patient == nil {
			return nil, apperror.NotFound("Patient not found or deleted", apperror.CodePatientNotFound)
		}
		prescriptions, err = u.prescriptionRepo.FindByPatientEmail(ctx, u.db, email)
	default:
		prescriptions, err = u.prescriptionRepo.FindAll(ctx, u.db)
	}
	if err != nil {
		u.log.Warnf("Failed to list prescriptions: %+v", err)
		return nil, err
	}

	ids := make([]uuid.UUID, 0)
	seen := make(map[uuid.UUID]struct{})
	for i := range prescriptions {
		for _, id := range prescriptions[i].ListOfMedicine.MedicineIDs() {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}

	medicines, err := u.medicineNames(ctx, ids)
	if err != nil {
		return nil, err
	}
	return converter.PrescriptionsToResponse(prescriptions, medicines), nil
}

func (u *prescriptionUsecase) Update(ctx context.Context, actor entity.Principal, id uuid.UUID, req *dto.UpdatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	prescription, err := u.prescriptionRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find prescription by id: %+v", err)
		return nil, err
	}
	if prescription == nil {
		return nil, apperror.NotFound("Prescription not found or deleted", apperror.CodePrescriptionNotFound)
	}

	if req.PatientEmail != nil {
		email := strings.ToLower(strings.TrimSpace(*req.PatientEmail))
		patient, err := u.patientRepo.FindByEmail(ctx, tx, email)
		if err != nil {
			u.log.Warnf("Failed to find patient by email: %+v", err)
			return nil, err
		}
		if patient == nil {
			return nil, apperror.BadRequest("Patient not found or deleted", apperror.CodePatientNotFound)
		}
		prescription.PatientEmail = email
	}

	if req.Diagnosis != nil {
		prescription.Diagnosis = strings.TrimSpace(*req.Diagnosis)
	}
	if req.Symptoms != nil {
		prescription.Symptoms = entity.StringList(*req.Symptoms)
	}
	if req.Vitals != nil {
		prescription.Vitals = converter.VitalsToEntity(req.Vitals)
	}
	if req.ListOfMedicine != nil {
		items, err := prescriptionItemsFromRequest(*req.ListOfMedicine)
		if err != nil {
			return nil, err
		}
		if err := u.ensureMedicinesActive(ctx, tx, items); err != nil {
			return nil, err
		}
		prescription.ListOfMedicine = items
	}
	if req.Instructions != nil {
		prescription.Instructions = *req.Instructions
	}

	if err := u.prescriptionRepo.Update(ctx, tx, prescription); err != nil {
		u.log.Warnf("Failed to update prescription: %+v", err)
		return nil, err
	}

	actorID := actor.ID
	if err := u.auditService.Record(ctx, tx, &actorID, actor.Role, entity.AuditActionPrescriptionUpdate, "prescription", prescription.ID.String(), nil); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	medicines, err := u.medicineNames(ctx, prescription.ListOfMedicine.MedicineIDs())
	if err != nil {
		return nil, err
	}
	return converter.PrescriptionToResponse(prescription, medicines), nil
}

func (u *prescriptionUsecase) Deactivate(ctx context.Context, actor entity.Principal, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	prescription, err := u.prescriptionRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find prescription by id: %+v", err)
		return err
	}
	if prescription == nil {
		return apperror.NotFound("Prescription not found or already deleted", apperror.CodePrescriptionNotFound)
	}

	prescription.IsDeleted = true
	if err := u.prescriptionRepo.Update(ctx, tx, prescription); err != nil {
		u.log.Warnf("Failed to soft delete prescription: %+v", err)
		return err
	}

	actorID := actor.ID
	if err := u.auditService.Record(ctx, tx, &actorID, actor.Role, entity.AuditActionPrescriptionDeactivate, "prescription", prescription.ID.String(), nil); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// ensureMedicinesActive fails when any referenced medicine is missing or
// soft-deleted. History reads still resolve deleted medicines; writes never
// accept them.
func (u *prescriptionUsecase) ensureMedicinesActive(ctx context.Context, tx *gorm.DB, items entity.PrescriptionItems) error {
	ids := items.MedicineIDs()
	active, err := u.medicineRepo.FindActiveByIDs(ctx, tx, ids)
	if err != nil {
		u.log.Warnf("Failed to check medicines: %+v", err)
		return err
	}
	if len(active) != len(ids) {
		found := make(map[uuid.UUID]struct{}, len(active))
		for _, medicine := range active {
			found[medicine.ID] = struct{}{}
		}
		missing := make([]string, 0)
		for _, id := range ids {
			if _, ok := found[id]; !ok {
				missing = append(missing, id.String())
			}
		}
		return apperror.BadRequest("One or more medicines not found or deleted", apperror.CodeMedicineNotFound).
			WithDetails(map[string]interface{}{"missingMedicineIds": missing})
	}
	return nil
}

func (u *prescriptionUsecase) medicineNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]entity.Medicine, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]entity.Medicine{}, nil
	}
	medicines, err := u.medicineRepo.FindByIDs(ctx, u.db, ids)
	if err != nil {
		u.log.Warnf("Failed to load medicines: %+v", err)
		return nil, err
	}
	lookup := make(map[uuid.UUID]entity.Medicine, len(medicines))
	for _, medicine := range medicines {
		lookup[medicine.ID] = medicine
	}
	return lookup, nil
}

func prescriptionItemsFromRequest(items []dto.PrescriptionItemRequest) (entity.PrescriptionItems, error) {
	result := make(entity.PrescriptionItems, 0, len(items))
	for _, item := range items {
		medicineID, err := uuid.Parse(item.MedicineID)
		if err != nil {
			return nil, apperror.BadRequest("medicineId must be a valid UUID", apperror.CodeValidation)
		}
		result = append(result, entity.PrescriptionItem{
			MedicineID:   medicineID,
			Dosage:       strings.TrimSpace(item.Dosage),
			Frequency:    strings.TrimSpace(item.Frequency),
			Duration:     strings.TrimSpace(item.Duration),
			Instructions: item.Instructions,
		})
	}
	return result, nil
}
