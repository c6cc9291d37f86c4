package usecase

import (
	"context"

	"github.com/Dixit-Goti/hospital-management/internal/converter"
	"github.com/Dixit-Goti/hospital-management/internal/delivery/dto"
	"github.com/Dixit-Goti/hospital-management/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	defaultAuditPageLimit = 20
	maxAuditPageLimit     = 100
)

type AuditLogUsecase interface {
	List(ctx context.Context, page, limit int) ([]dto.AuditLogResponse, *dto.AuditPage, error)
}

type auditLogUsecase struct {
	db        *gorm.DB
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(db *gorm.DB, log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditLogUsecase {
	return &auditLogUsecase{
		db:        db,
		log:       log,
		auditRepo: auditRepo,
	}
}

// List clamps the requested page size and reports the values it actually
// used, so callers never echo a limit larger than the page they received.
func (u *auditLogUsecase) List(ctx context.Context, page, limit int) ([]dto.AuditLogResponse, *dto.AuditPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultAuditPageLimit
	}
	if limit > maxAuditPageLimit {
		limit = maxAuditPageLimit
	}

	total, err := u.auditRepo.Count(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to count audit logs: %+v", err)
		return nil, nil, err
	}

	logs, err := u.auditRepo.FindPage(ctx, u.db, (page-1)*limit, limit)
	if err != nil {
		u.log.Warnf("Failed to list audit logs: %+v", err)
		return nil, nil, err
	}

	totalPages := int(total) / limit
	if int(total)%limit > 0 {
		totalPages++
	}

	return converter.AuditLogsToResponse(logs), &dto.AuditPage{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}
