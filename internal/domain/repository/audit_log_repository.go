package repository

import "github.com/jhoicas/comercio-api/internal/domain/entity"

// AuditLogRepository define el puerto de persistencia para el audit trail.
// Append-only.
type AuditLogRepository interface {
	Create(log *entity.AuditLog) error
	List(entityType string, limit, offset int) ([]*entity.AuditLog, error)
}
