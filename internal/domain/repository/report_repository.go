package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailySalesRow agrega las ventas de un día.
type DailySalesRow struct {
	Day   time.Time
	Total decimal.Decimal
}

// ReportRepository define consultas de solo lectura para reportes.
type ReportRepository interface {
	DailySales(branchID string, from, to *time.Time) ([]DailySalesRow, error)
}
