package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntryResponse asiento del libro serializado.
type LedgerEntryResponse struct {
	ID              string          `json:"id"`
	Date            time.Time       `json:"date"`
	Description     string          `json:"description"`
	TransactionType string          `json:"transaction_type"`
	Amount          decimal.Decimal `json:"amount"`
	Reference       string          `json:"reference,omitempty"`
	BranchID        string          `json:"branch_id,omitempty"`
	CreatedBy       string          `json:"created_by,omitempty"`
}

// DailySalesResponse total vendido por día.
type DailySalesResponse struct {
	Day   string          `json:"day"` // YYYY-MM-DD
	Total decimal.Decimal `json:"total"`
}
