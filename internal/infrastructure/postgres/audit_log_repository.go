package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

var _ repository.AuditLogRepository = (*AuditLogRepo)(nil)

// AuditLogRepo implementación del puerto AuditLogRepository sobre PostgreSQL
// (usable con pool o tx). Append-only; changes se guarda como JSONB.
type AuditLogRepo struct {
	q Querier
}

// NewAuditLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAuditLogRepository(q Querier) *AuditLogRepo {
	return &AuditLogRepo{q: q}
}

// Create persiste un registro de auditoría.
func (r *AuditLogRepo) Create(log *entity.AuditLog) error {
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	query := `
		INSERT INTO audit_logs (id, user_id, action, entity_type, entity_id, changes, ip_address, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		log.ID, nullStr(log.UserID), log.Action, log.EntityType, log.EntityID,
		log.Changes, nullStr(log.IPAddress), log.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("create audit log: %w", err)
	}
	return nil
}

// List lista registros, más reciente primero, opcionalmente por tipo de entidad.
func (r *AuditLogRepo) List(entityType string, limit, offset int) ([]*entity.AuditLog, error) {
	query := `
		SELECT id, user_id, action, entity_type, entity_id, changes, ip_address, timestamp
		FROM audit_logs`
	args := []any{}
	pos := 1
	if entityType != "" {
		query += fmt.Sprintf(" WHERE entity_type = $%d", pos)
		args = append(args, entityType)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY timestamp DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.AuditLog
	for rows.Next() {
		var l entity.AuditLog
		var userID, ipAddress *string
		if err := rows.Scan(&l.ID, &userID, &l.Action, &l.EntityType, &l.EntityID,
			&l.Changes, &ipAddress, &l.Timestamp); err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		l.UserID = strVal(userID)
		l.IPAddress = strVal(ipAddress)
		list = append(list, &l)
	}
	return list, rows.Err()
}
