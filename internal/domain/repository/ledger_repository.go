package repository

import (
	"time"

	"github.com/jhoicas/comercio-api/internal/domain/entity"
)

// LedgerRepository define el puerto de persistencia para el libro.
// Append-only: el único mutador es el motor de posteo (o el camino
// administrativo equivalente); no se exponen update ni delete.
type LedgerRepository interface {
	Create(entry *entity.LedgerEntry) error
	GetByID(id string) (*entity.LedgerEntry, error)
	List(branchID string, from, to *time.Time, limit, offset int) ([]*entity.LedgerEntry, error)
}
