package repository

import (
	"context"

	"github.com/Dixit-Goti/hospital-management/internal/domain/entity"

	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(ctx context.Context, db *gorm.DB, log *entity.AuditLog) error
	FindPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]entity.AuditLog, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
}
