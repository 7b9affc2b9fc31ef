package entity

import "time"

// Acciones auditables.
const (
	AuditActionCreate = "create"
	AuditActionUpdate = "update"
	AuditActionDelete = "delete"
)

// AuditLog representa el registro inmutable de una mutación sobre cualquier
// entidad del dominio (excepto el propio audit log). Changes es un snapshot
// plano campo → valor serializado al momento del commit.
type AuditLog struct {
	ID         string
	UserID     string
	Action     string
	EntityType string
	EntityID   string
	Changes    map[string]string
	IPAddress  string
	Timestamp  time.Time
}
