package repository

import (
	"patient-vitals-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(db *gorm.DB, auditLog *entity.AuditLog) error
	FindByUserID(db *gorm.DB, userID uuid.UUID, limit int) ([]entity.AuditLog, error)
}
