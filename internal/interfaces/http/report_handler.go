package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/comercio-api/internal/application/audit"
	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/application/reports"
)

// ReportHandler maneja el libro contable, los reportes y el audit trail
// (protegido; libro y auditoría restringidos por rol en el router).
type ReportHandler struct {
	reportUC *reports.ReportUseCase
	auditUC  *audit.QueryUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(reportUC *reports.ReportUseCase, auditUC *audit.QueryUseCase) *ReportHandler {
	return &ReportHandler{reportUC: reportUC, auditUC: auditUC}
}

// ListLedger godoc
// @Summary      Listar asientos del libro
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        branch_id  query  string  false  "Filtrar por sucursal"
// @Param        from       query  string  false  "Desde (RFC3339 o YYYY-MM-DD)"
// @Param        to         query  string  false  "Hasta (RFC3339 o YYYY-MM-DD)"
// @Param        limit      query  int     false  "Máximo de resultados (default 20)"
// @Param        offset     query  int     false  "Desplazamiento"
// @Success      200  {array}  dto.LedgerEntryResponse
// @Router       /api/ledger [get]
func (h *ReportHandler) ListLedger(c *fiber.Ctx) error {
	var page dto.PageRequest
	_ = c.QueryParser(&page)
	page.DefaultPage()
	from, to, err := parseRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rango de fechas inválido"})
	}
	list, err := h.reportUC.ListLedger(c.Query("branch_id"), from, to, page.Limit, page.Offset)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(list)
}

// GetLedgerEntry godoc
// @Summary      Obtener asiento del libro
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del asiento"
// @Success      200  {object}  dto.LedgerEntryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ledger/{id} [get]
func (h *ReportHandler) GetLedgerEntry(c *fiber.Ctx) error {
	entry, err := h.reportUC.GetLedgerEntry(c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(entry)
}

// LedgerPDF godoc
// @Summary      Reporte PDF del libro
// @Tags         ledger
// @Security     Bearer
// @Produce      application/pdf
// @Param        branch_id  query  string  false  "Sucursal (vacío = consolidado)"
// @Param        from       query  string  false  "Desde (RFC3339 o YYYY-MM-DD)"
// @Param        to         query  string  false  "Hasta (RFC3339 o YYYY-MM-DD)"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ledger/report [get]
func (h *ReportHandler) LedgerPDF(c *fiber.Ctx) error {
	from, to, err := parseRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rango de fechas inválido"})
	}
	pdfBytes, err := h.reportUC.LedgerPDF(c.Query("branch_id"), from, to)
	if err != nil {
		return domainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="libro-contable.pdf"`)
	return c.Send(pdfBytes)
}

// DailySales godoc
// @Summary      Ventas por día
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        branch_id  query  string  false  "Filtrar por sucursal"
// @Param        from       query  string  false  "Desde (RFC3339 o YYYY-MM-DD)"
// @Param        to         query  string  false  "Hasta (RFC3339 o YYYY-MM-DD)"
// @Success      200  {array}  dto.DailySalesResponse
// @Router       /api/reports/daily-sales [get]
func (h *ReportHandler) DailySales(c *fiber.Ctx) error {
	from, to, err := parseRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rango de fechas inválido"})
	}
	list, err := h.reportUC.DailySales(c.Query("branch_id"), from, to)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(list)
}

// ListAuditLogs godoc
// @Summary      Listar registros de auditoría
// @Tags         audit
// @Security     Bearer
// @Produce      json
// @Param        entity_type  query  string  false  "Filtrar por tipo (Product, Sale, ...)"
// @Param        limit        query  int     false  "Máximo de resultados (default 20)"
// @Param        offset       query  int     false  "Desplazamiento"
// @Success      200  {array}  dto.AuditLogResponse
// @Router       /api/audit-logs [get]
func (h *ReportHandler) ListAuditLogs(c *fiber.Ctx) error {
	var page dto.PageRequest
	_ = c.QueryParser(&page)
	page.DefaultPage()
	list, err := h.auditUC.List(c.Query("entity_type"), page.Limit, page.Offset)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(list)
}

// parseRange lee from/to en RFC3339 o YYYY-MM-DD; "to" en formato fecha
// incluye el día completo.
func parseRange(c *fiber.Ctx) (from, to *time.Time, err error) {
	if s := c.Query("from"); s != "" {
		t, perr := parseDate(s, false)
		if perr != nil {
			return nil, nil, perr
		}
		from = &t
	}
	if s := c.Query("to"); s != "" {
		t, perr := parseDate(s, true)
		if perr != nil {
			return nil, nil, perr
		}
		to = &t
	}
	return from, to, nil
}

func parseDate(s string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}
