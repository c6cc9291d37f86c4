package usecase

import (
	"context"
	"strings"

	"github.com/Dixit-Goti/hospital-management/internal/delivery/dto"
	"github.com/Dixit-Goti/hospital-management/internal/domain/entity"
	"github.com/Dixit-Goti/hospital-management/internal/domain/repository"
	"github.com/Dixit-Goti/hospital-management/internal/service"
	"github.com/Dixit-Goti/hospital-management/pkg/apperror"
	"github.com/Dixit-Goti/hospital-management/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthUsecase interface {
	LoginDoctor(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	LoginPatient(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	userRepo    repository.UserRepository
	patientRepo repository.PatientRepository
	jwtService  *jwt.JWTService
	tokenStore  service.TokenStore
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	patientRepo repository.PatientRepository,
	jwtService *jwt.JWTService,
	tokenStore service.TokenStore,
) AuthUsecase {
	return &authUsecase{
		db:          db,
		log:         log,
		userRepo:    userRepo,
		patientRepo: patientRepo,
		jwtService:  jwtService,
		tokenStore:  tokenStore,
	}
}

// invalidCredentials is deliberately undifferentiated: it never reveals
// whether the email or the password was wrong.
func invalidCredentials() error {
	return apperror.Unauthorized("Invalid credentials", apperror.CodeInvalidCredentials)
}

func (u *authUsecase) LoginDoctor(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := u.userRepo.FindActiveByEmailAndRole(ctx, u.db, email, entity.RoleDoctor)
	if err != nil {
		u.log.Warnf("Failed to find doctor by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, invalidCredentials()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, invalidCredentials()
	}

	token, err := u.issueToken(ctx, user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		User: &dto.AuthUserResponse{
			ID:   user.ID.String(),
			Name: user.FirstName,
			Role: user.Role,
		},
	}, nil
}

func (u *authUsecase) LoginPatient(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	patient, err := u.patientRepo.FindByEmail(ctx, u.db, email)
	if err != nil {
		u.log.Warnf("Failed to find patient by email: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, invalidCredentials()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(patient.Password), []byte(req.Password)); err != nil {
		return nil, invalidCredentials()
	}

	token, err := u.issueToken(ctx, patient.ID, patient.Email, entity.RolePatient)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		Patient: &dto.AuthUserResponse{
			ID:   patient.ID.String(),
			Name: patient.FirstName,
			Role: entity.RolePatient,
		},
	}, nil
}

func (u *authUsecase) issueToken(ctx context.Context, subjectID uuid.UUID, email, role string) (string, error) {
	token, tokenID, err := u.jwtService.GenerateToken(subjectID, email, role)
	if err != nil {
		u.log.Warnf("Failed to generate token: %+v", err)
		return "", err
	}

	if err := u.tokenStore.Save(ctx, subjectID, tokenID, u.jwtService.GetExpiry()); err != nil {
		u.log.Warnf("Failed to store session token: %+v", err)
		return "", err
	}

	return token, nil
}
