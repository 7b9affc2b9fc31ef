package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta a un cliente (cabecera de la transacción).
// Subtotal y TotalAmount son derivados: el motor de posteo los recalcula
// desde los ítems; nunca se aceptan del caller.
type Sale struct {
	ID            string
	InvoiceNo     string // único
	CustomerName  string // cliente informal (venta de mostrador); vacío = walk-in
	CustomerPhone string
	BranchID      string // vacío = sin sucursal
	Subtotal      decimal.Decimal
	Discount      decimal.Decimal
	TotalAmount   decimal.Decimal // Subtotal - Discount
	PaidAmount    decimal.Decimal
	PaymentMethod string
	CreatedBy     string
	CreatedAt     time.Time
	Notes         string
}

// SaleItem representa una línea de venta. ProductID es referencia débil:
// si el producto se elimina queda vacía y ProductName conserva el nombre
// histórico. TotalPrice = Quantity × UnitPrice, siempre recalculado.
type SaleItem struct {
	ID          string
	SaleID      string
	ProductID   string // vacío si el producto fue eliminado o nunca existió
	ProductName string // snapshot al momento de la venta
	Quantity    int    // > 0
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
}
