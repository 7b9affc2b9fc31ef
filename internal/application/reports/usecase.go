package reports

import (
	"time"

	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/domain"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

// ReportUseCase consultas de solo lectura sobre el libro y los agregados
// de ventas. No muta estado; el libro solo lo escribe el motor de posteo.
type ReportUseCase struct {
	ledgerRepo repository.LedgerRepository
	reportRepo repository.ReportRepository
	branchRepo repository.BranchRepository
	pdfGen     LedgerPDFGenerator
}

// NewReportUseCase construye el caso de uso de reportes.
func NewReportUseCase(
	ledgerRepo repository.LedgerRepository,
	reportRepo repository.ReportRepository,
	branchRepo repository.BranchRepository,
	pdfGen LedgerPDFGenerator,
) *ReportUseCase {
	return &ReportUseCase{
		ledgerRepo: ledgerRepo,
		reportRepo: reportRepo,
		branchRepo: branchRepo,
		pdfGen:     pdfGen,
	}
}

// GetLedgerEntry obtiene un asiento por ID.
func (uc *ReportUseCase) GetLedgerEntry(id string) (*dto.LedgerEntryResponse, error) {
	entry, err := uc.ledgerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrNotFound
	}
	return toLedgerResponse(entry), nil
}

// ListLedger lista asientos, opcionalmente por sucursal y rango de fechas.
func (uc *ReportUseCase) ListLedger(branchID string, from, to *time.Time, limit, offset int) ([]*dto.LedgerEntryResponse, error) {
	entries, err := uc.ledgerRepo.List(branchID, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.LedgerEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toLedgerResponse(e))
	}
	return out, nil
}

// LedgerPDF genera el reporte PDF del libro para una sucursal y rango.
// branchID vacío produce el reporte consolidado.
func (uc *ReportUseCase) LedgerPDF(branchID string, from, to *time.Time) ([]byte, error) {
	branchName := "Todas las sucursales"
	if branchID != "" {
		branch, err := uc.branchRepo.GetByID(branchID)
		if err != nil {
			return nil, err
		}
		if branch == nil {
			return nil, domain.ErrNotFound
		}
		branchName = branch.Name
	}
	entries, err := uc.ledgerRepo.List(branchID, from, to, 0, 0)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.Generate(branchName, from, to, entries)
}

// DailySales total vendido por día en el rango dado.
func (uc *ReportUseCase) DailySales(branchID string, from, to *time.Time) ([]*dto.DailySalesResponse, error) {
	rows, err := uc.reportRepo.DailySales(branchID, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DailySalesResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, &dto.DailySalesResponse{
			Day:   r.Day.Format("2006-01-02"),
			Total: r.Total,
		})
	}
	return out, nil
}

func toLedgerResponse(e *entity.LedgerEntry) *dto.LedgerEntryResponse {
	return &dto.LedgerEntryResponse{
		ID:              e.ID,
		Date:            e.Date,
		Description:     e.Description,
		TransactionType: e.TransactionType,
		Amount:          e.Amount,
		Reference:       e.Reference,
		BranchID:        e.BranchID,
		CreatedBy:       e.CreatedBy,
	}
}
