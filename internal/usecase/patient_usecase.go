package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"
	"unicode"

	"github.com/Dixit-Goti/hospital-management/internal/converter"
	"github.com/Dixit-Goti/hospital-management/internal/delivery/dto"
	"github.com/Dixit-Goti/hospital-management/internal/domain/entity"
	"github.com/Dixit-Goti/hospital-management/internal/domain/repository"
	"github.com/Dixit-Goti/hospital-management/internal/service"
	"github.com/Dixit-Goti/hospital-management/pkg/apperror"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type PatientUsecase interface {
	Register(ctx context.Context, actor entity.Principal, req *dto.RegisterPatientRequest) (*dto.PatientResponse, error)
	List(ctx context.Context, emailFilter string) ([]dto.PatientResponse, error)
	GetProfile(ctx context.Context, patientID uuid.UUID) (*dto.PatientResponse, error)
	Update(ctx context.Context, actor entity.Principal, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	Deactivate(ctx context.Context, actor entity.Principal, id uuid.UUID) error
	ChangePassword(ctx context.Context, patientID uuid.UUID, req *dto.ChangePasswordRequest) error
}

type patientUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	auditService service.AuditService
	tokenStore   service.TokenStore
	mailer       service.Mailer
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
	tokenStore service.TokenStore,
	mailer service.Mailer,
) PatientUsecase {
	return &patientUsecase{
		db:           db,
		log:          log,
		patientRepo:  patientRepo,
		auditService: auditService,
		tokenStore:   tokenStore,
		mailer:       mailer,
	}
}

func (u *patientUsecase) Register(ctx context.Context, actor entity.Principal, req *dto.RegisterPatientRequest) (*dto.PatientResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	taken, err := u.patientRepo.EmailTaken(ctx, tx, email, uuid.Nil)
	if err != nil {
		u.log.Warnf("Failed to check patient email: %+v", err)
		return nil, err
	}
	if taken {
		return nil, apperror.Conflict("Patient already exists with this email", apperror.CodePatientExists)
	}

	dob, err := parseOptionalDate(req.DOB)
	if err != nil {
		return nil, apperror.BadRequest("Date of birth must be a valid date (YYYY-MM-DD)", apperror.CodeValidation)
	}

	// The temporary credential is always random; it is delivered by email
	// and expected to be changed on first login.
	tempPassword, err := generateTempPassword()
	if err != nil {
		u.log.Warnf("Failed to generate temporary password: %+v", err)
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	patient := &entity.Patient{
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        email,
		Mobile:       strings.TrimSpace(req.Mobile),
		DOB:          dob,
		Gender:       req.Gender,
		Address:      req.Address,
		Password:     string(hashedPassword),
		ProfileImage: req.ProfileImage,
		JoinDate:     time.Now(),
	}

	if err := u.patientRepo.Create(ctx, tx, patient); err != nil {
		if isDuplicateKeyError(err, "idx_patient_email") {
			return nil, apperror.Conflict("Patient already exists with this email", apperror.CodePatientExists)
		}
		if isDuplicateKeyError(err, "idx_patient_mobile") {
			return nil, apperror.Conflict("Patient already exists with this mobile number", apperror.CodePatientExists)
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	actorID := actor.ID
	if err := u.auditService.Record(ctx, tx, &actorID, actor.Role, entity.AuditActionPatientRegister, "patient", patient.ID.String(), nil); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	// Best effort: a mail failure must not fail the registration.
	if err := u.mailer.SendWelcome(patient.Email, patient.FirstName, tempPassword); err != nil {
		u.log.Warnf("Failed to send welcome email to %s: %+v", patient.Email, err)
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) List(ctx context.Context, emailFilter string) ([]dto.PatientResponse, error) {
	if emailFilter != "" {
		emailFilter = strings.ToLower(strings.TrimSpace(emailFilter))
	}

	patients, err := u.patientRepo.FindAll(ctx, u.db, emailFilter)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}

	return converter.PatientsToResponse(patients), nil
}

func (u *patientUsecase) GetProfile(ctx context.Context, patientID uuid.UUID) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient by id: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, apperror.NotFound("Patient not found or deleted", apperror.CodePatientNotFound)
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Update(ctx context.Context, actor entity.Principal, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient by id: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, apperror.NotFound("Patient not found or already deleted", apperror.CodePatientNotFound)
	}

	if req.Email != nil {
		newEmail := strings.ToLower(strings.TrimSpace(*req.Email))
		taken, err := u.patientRepo.EmailTaken(ctx, tx, newEmail, patient.ID)
		if err != nil {
			u.log.Warnf("Failed to check patient email: %+v", err)
			return nil, err
		}
		if taken {
			return nil, apperror.Conflict("Patient already exists with this email", apperror.CodePatientExists)
		}
	}

	if err := applyPatientUpdate(patient, req); err != nil {
		return nil, err
	}

	if err := u.patientRepo.Update(ctx, tx, patient); err != nil {
		if isDuplicateKeyError(err, "idx_patient_email") || isDuplicateKeyError(err, "idx_patient_mobile") {
			return nil, apperror.Conflict("Patient with this email or mobile already exists", apperror.CodePatientExists)
		}
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	actorID := actor.ID
	if err := u.auditService.Record(ctx, tx, &actorID, actor.Role, entity.AuditActionPatientUpdate, "patient", patient.ID.String(), nil); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Deactivate(ctx context.Context, actor entity.Principal, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient by id: %+v", err)
		return err
	}
	if patient == nil {
		return apperror.NotFound("Patient not found or already deleted", apperror.CodePatientNotFound)
	}

	patient.IsDeleted = true
	if err := u.patientRepo.Update(ctx, tx, patient); err != nil {
		u.log.Warnf("Failed to soft delete patient: %+v", err)
		return err
	}

	actorID := actor.ID
	if err := u.auditService.Record(ctx, tx, &actorID, actor.Role, entity.AuditActionPatientDeactivate, "patient", patient.ID.String(), nil); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *patientUsecase) ChangePassword(ctx context.Context, patientID uuid.UUID, req *dto.ChangePasswordRequest) error {
	if err := validatePasswordPolicy(req.NewPassword); err != nil {
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(ctx, tx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient by id: %+v", err)
		return err
	}
	if patient == nil {
		return apperror.NotFound("Patient not found or deleted", apperror.CodePatientNotFound)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(patient.Password), []byte(req.CurrentPassword)); err != nil {
		return apperror.Unauthorized("Current password is incorrect", apperror.CodeInvalidCredentials)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return err
	}

	patient.Password = string(hashedPassword)
	if err := u.patientRepo.Update(ctx, tx, patient); err != nil {
		u.log.Warnf("Failed to update patient password: %+v", err)
		return err
	}

	patientIDCopy := patient.ID
	if err := u.auditService.Record(ctx, tx, &patientIDCopy, entity.RolePatient, entity.AuditActionPasswordChange, "patient", patient.ID.String(), nil); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	// Every existing session is invalidated once the credential changes.
	if err := u.tokenStore.RevokeAll(ctx, patient.ID); err != nil {
		u.log.Warnf("Failed to revoke sessions for patient %s: %+v", patient.ID, err)
	}

	return nil
}

// applyPatientUpdate copies only allow-listed fields from the payload onto
// the row. Anything else in the request body is ignored, never written.
func applyPatientUpdate(patient *entity.Patient, req *dto.UpdatePatientRequest) error {
	if req.FirstName != nil {
		patient.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		patient.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Email != nil {
		patient.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Mobile != nil {
		patient.Mobile = strings.TrimSpace(*req.Mobile)
	}
	if req.DOB != nil {
		dob, err := parseOptionalDate(*req.DOB)
		if err != nil {
			return apperror.BadRequest("Date of birth must be a valid date (YYYY-MM-DD)", apperror.CodeValidation)
		}
		patient.DOB = dob
	}
	if req.Gender != nil {
		patient.Gender = *req.Gender
	}
	if req.Address != nil {
		patient.Address = *req.Address
	}
	if req.ProfileImage != nil {
		patient.ProfileImage = *req.ProfileImage
	}
	return nil
}

// validatePasswordPolicy enforces the patient password rules: at least 8
// characters with an uppercase letter, a digit and a symbol.
func validatePasswordPolicy(password string) error {
	if len(password) < 8 {
		return apperror.BadRequest("New password must be at least 8 characters", apperror.CodeValidation)
	}
	var hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	if !hasUpper {
		return apperror.BadRequest("New password must contain at least one uppercase letter", apperror.CodeValidation)
	}
	if !hasDigit {
		return apperror.BadRequest("New password must contain at least one number", apperror.CodeValidation)
	}
	if !hasSymbol {
		return apperror.BadRequest("New password must contain at least one special character", apperror.CodeValidation)
	}
	return nil
}

// generateTempPassword returns a random 16-hex-character credential.
func generateTempPassword() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
