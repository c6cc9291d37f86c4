package service

import (
	"context"

	"github.com/Dixit-Goti/hospital-management/internal/domain/entity"
	"github.com/Dixit-Goti/hospital-management/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditService writes audit trail entries inside the caller's transaction.
type AuditService interface {
	Record(ctx context.Context, tx *gorm.DB, actorID *uuid.UUID, actorRole, action, entityName, entityID string, details interface{}) error
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditService) Record(ctx context.Context, tx *gorm.DB, actorID *uuid.UUID, actorRole, action, entityName, entityID string, details interface{}) error {
	metadata := entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
	}
	if details != nil {
		metadata["details"] = details
	}

	auditLog := &entity.AuditLog{
		ActorID:   actorID,
		ActorRole: actorRole,
		Action:    action,
		Metadata:  metadata,
	}

	if err := s.auditRepo.Create(ctx, tx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}
