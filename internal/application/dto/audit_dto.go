package dto

import "time"

// AuditLogResponse registro de auditoría serializado.
type AuditLogResponse struct {
	ID         string            `json:"id"`
	UserID     string            `json:"user_id,omitempty"`
	Action     string            `json:"action"`
	EntityType string            `json:"entity_type"`
	EntityID   string            `json:"entity_id"`
	Changes    map[string]string `json:"changes,omitempty"`
	IPAddress  string            `json:"ip_address,omitempty"`
	Timestamp  time.Time         `json:"timestamp"`
}
