package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de asiento del libro.
const (
	TransactionTypeCredit = "credit" // ventas
	TransactionTypeDebit  = "debit"  // compras
)

// LedgerEntry representa un asiento financiero inmutable por sucursal.
// Amount es magnitud no negativa; el signo lo da TransactionType.
// El libro es append-only: no existe update ni delete.
type LedgerEntry struct {
	ID              string
	Date            time.Time
	Description     string
	TransactionType string
	Amount          decimal.Decimal
	Reference       string // misma referencia que los movimientos de stock
	BranchID        string
	CreatedBy       string
}
