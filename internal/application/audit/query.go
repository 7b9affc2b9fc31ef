package audit

import (
	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

// QueryUseCase lectura del audit trail. Append-only: solo listado.
type QueryUseCase struct {
	repo repository.AuditLogRepository
}

// NewQueryUseCase construye el caso de uso de consulta de auditoría.
func NewQueryUseCase(repo repository.AuditLogRepository) *QueryUseCase {
	return &QueryUseCase{repo: repo}
}

// List lista registros de auditoría, opcionalmente filtrados por tipo de
// entidad ("Product", "Sale", ...).
func (uc *QueryUseCase) List(entityType string, limit, offset int) ([]*dto.AuditLogResponse, error) {
	logs, err := uc.repo.List(entityType, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AuditLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, &dto.AuditLogResponse{
			ID:         l.ID,
			UserID:     l.UserID,
			Action:     l.Action,
			EntityType: l.EntityType,
			EntityID:   l.EntityID,
			Changes:    l.Changes,
			IPAddress:  l.IPAddress,
			Timestamp:  l.Timestamp,
		})
	}
	return out, nil
}
