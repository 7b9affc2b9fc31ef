package reports

import (
	"time"

	"github.com/jhoicas/comercio-api/internal/domain/entity"
)

// LedgerPDFGenerator puerto de generación del reporte PDF del libro.
// La implementación vive en infraestructura (maroto).
type LedgerPDFGenerator interface {
	Generate(branchName string, from, to *time.Time, entries []*entity.LedgerEntry) ([]byte, error)
}
