// Package audit implementa la captura del audit trail como callback
// explícito post-commit: cada camino de escritura invoca Record después de
// confirmar su transacción, en lugar de depender de interceptación mágica
// en la capa de persistencia.
package audit

import (
	"time"

	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
	"github.com/jhoicas/comercio-api/pkg/logger"
)

// Entry una mutación a auditar.
type Entry struct {
	Action     string // create | update | delete
	EntityType string
	EntityID   string
	Changes    map[string]string
}

// Recorder escribe registros de auditoría. Nunca propaga errores: una falla
// al auditar se loguea y se traga para no bloquear la operación primaria.
type Recorder struct {
	repo repository.AuditLogRepository
	log  *logger.Logger
}

// NewRecorder construye el recorder.
func NewRecorder(repo repository.AuditLogRepository, log *logger.Logger) *Recorder {
	return &Recorder{repo: repo, log: log}
}

// Record persiste un registro de auditoría para la mutación indicada.
// EntityType "AuditLog" se rechaza siempre (guardia anti-recursión).
func (r *Recorder) Record(userID, ipAddress string, e Entry) {
	if e.EntityType == "AuditLog" {
		return
	}
	log := &entity.AuditLog{
		UserID:     userID,
		Action:     e.Action,
		EntityType: e.EntityType,
		EntityID:   e.EntityID,
		Changes:    e.Changes,
		IPAddress:  ipAddress,
		Timestamp:  time.Now(),
	}
	if err := r.repo.Create(log); err != nil {
		r.log.Warn().
			Err(err).
			Str("entity_type", e.EntityType).
			Str("entity_id", e.EntityID).
			Str("action", e.Action).
			Msg("fallo al escribir audit log (ignorado)")
	}
}

// RecordAll persiste un lote de registros con el mismo actor.
func (r *Recorder) RecordAll(userID, ipAddress string, entries []Entry) {
	for _, e := range entries {
		r.Record(userID, ipAddress, e)
	}
}
