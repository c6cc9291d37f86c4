package usecase

import (
	"context"
	"strings"
	"time"

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

type VisitUsecase interface {
	Create(ctx context.Context, actor entity.Principal, req *dto.CreateVisitRequest) (*dto.VisitResponse, error)
	List(ctx context.Context, actor entity.Principal, emailFilter string) ([]dto.VisitResponse, error)
	Update(ctx context.Context, actor entity.Principal, id uuid.UUID, req *dto.UpdateVisitRequest) (*dto.VisitResponse, error)
	Deactivate(ctx context.Context, actor entity.Principal, id uuid.UUID) error
}

type visitUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	visitRepo    repository.VisitRepository
	patientRepo  repository.PatientRepository
	auditService service.AuditService
}

func NewVisitUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	visitRepo repository.VisitRepository,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
) VisitUsecase {
	return &visitUsecase{
		db:           db,
		log:          log,
		visitRepo:    visitRepo,
		patientRepo:  patientRepo,
		auditService: auditService,
	}
}

func (u *visitUsecase) Create(ctx context.Context, actor entity.Principal, req *dto.CreateVisitRequest) (*dto.VisitResponse, error) {
	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		return nil, apperror.BadRequest("patientId must be a valid UUID", apperror.CodeValidation)
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, apperror.BadRequest("Visit date must be a valid date (YYYY-MM-DD)", apperror.CodeValidation)
	}

	followUpDate, err := parseOptionalDate(req.RecommendedFollowUpDate)
	if err != nil {
		return nil, apperror.BadRequest("Follow-up date must be a valid date (YYYY-MM-DD)", apperror.CodeValidation)
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(ctx, tx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient by id: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, apperror.BadRequest("Patient not found or deleted", apperror.CodePatientNotFound)
	}

	visit := &entity.Visit{
		PatientID:               patientID,
		DoctorID:                actor.ID,
		Date:                    date,
		Diagnosis:               strings.TrimSpace(req.Diagnosis),
		Symptoms:                entity.StringList(req.Symptoms),
		Vitals:                  converter.VitalsToEntity(req.Vitals),
		Notes:                   req.Notes,
		RecommendedFollowUpDate: followUpDate,
		FollowUpNotes:           req.FollowUpNotes,
	}

	if err := u.visitRepo.Create(ctx, tx, visit); err != nil {
		u.log.Warnf("Failed to create visit: %+v", err)
		return nil, err
	}

	actorID := actor.ID
	if err := u.auditService.Record(ctx, tx, &actorID, actor.Role, entity.AuditActionVisitCreate, "visit", visit.ID.String(), nil); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	visit.Patient = patient
	return converter.VisitToResponse(visit), nil
}

// List: doctors see every visit, optionally narrowed to one patient by email;
// patients see only their own history regardless of any filter.
func (u *visitUsecase) List(ctx context.Context, actor entity.Principal, emailFilter string) ([]dto.VisitResponse, error) {
	if actor.Role == entity.RolePatient {
		visits, err := u.visitRepo.FindByPatientID(ctx, u.db, actor.ID)
		if err != nil {
			u.log.Warnf("Failed to list visits for patient: %+v", err)
			return nil, err
		}
		return converter.VisitsToResponse(visits), nil
	}

	if emailFilter != "" {
		patient, err := u.patientRepo.FindByEmail(ctx, u.db, strings.ToLower(strings.TrimSpace(emailFilter)))
		if err != nil {
			u.log.Warnf("Failed to find patient by email: %+v", err)
			return nil, err
		}
		if patient == nil {
			// An unknown email is an empty history, not an error.
			return []dto.VisitResponse{}, nil
		}
		visits, err := u.visitRepo.FindByPatientID(ctx, u.db, patient.ID)
		if err != nil {
			u.log.Warnf("Failed to list visits by patient: %+v", err)
			return nil, err
		}
		return converter.VisitsToResponse(visits), nil
	}

	visits, err := u.visitRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to list visits: %+v", err)
		return nil, err
	}
	return converter.VisitsToResponse(visits), nil
}

func (u *visitUsecase) Update(ctx context.Context, actor entity.Principal, id uuid.UUID, req *dto.UpdateVisitRequest) (*dto.VisitResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	visit, err := u.visitRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find visit by id: %+v", err)
		return nil, err
	}
	if visit == nil {
		return nil, apperror.NotFound("Visit not found or deleted", apperror.CodeVisitNotFound)
	}

	if err := applyVisitUpdate(visit, req); err != nil {
		return nil, err
	}

	if err := u.visitRepo.Update(ctx, tx, visit); err != nil {
		u.log.Warnf("Failed to update visit: %+v", err)
		return nil, err
	}

	actorID := actor.ID
	if err := u.auditService.Record(ctx, tx, &actorID, actor.Role, entity.AuditActionVisitUpdate, "visit", visit.ID.String(), nil); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.VisitToResponse(visit), nil
}

func (u *visitUsecase) Deactivate(ctx context.Context, actor entity.Principal, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	visit, err := u.visitRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find visit by id: %+v", err)
		return err
	}
	if visit == nil {
		return apperror.NotFound("Visit not found or already deleted", apperror.CodeVisitNotFound)
	}

	visit.IsDeleted = true
	if err := u.visitRepo.Update(ctx, tx, visit); err != nil {
		u.log.Warnf("Failed to soft delete visit: %+v", err)
		return err
	}

	actorID := actor.ID
	if err := u.auditService.Record(ctx, tx, &actorID, actor.Role, entity.AuditActionVisitDeactivate, "visit", visit.ID.String(), nil); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func applyVisitUpdate(visit *entity.Visit, req *dto.UpdateVisitRequest) error {
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return apperror.BadRequest("Visit date must be a valid date (YYYY-MM-DD)", apperror.CodeValidation)
		}
		visit.Date = date
	}
	if req.Diagnosis != nil {
		visit.Diagnosis = strings.TrimSpace(*req.Diagnosis)
	}
	if req.Symptoms != nil {
		visit.Symptoms = entity.StringList(*req.Symptoms)
	}
	if req.Vitals != nil {
		visit.Vitals = converter.VitalsToEntity(req.Vitals)
	}
	if req.Notes != nil {
		visit.Notes = *req.Notes
	}
	if req.RecommendedFollowUpDate != nil {
		followUpDate, err := parseOptionalDate(*req.RecommendedFollowUpDate)
		if err != nil {
			return apperror.BadRequest("Follow-up date must be a valid date (YYYY-MM-DD)", apperror.CodeValidation)
		}
		visit.RecommendedFollowUpDate = followUpDate
	}
	if req.FollowUpNotes != nil {
		visit.FollowUpNotes = *req.FollowUpNotes
	}
	return nil
}
