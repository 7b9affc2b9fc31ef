package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase representa una compra a un proveedor (cabecera de la transacción).
// Subtotal y TotalAmount son derivados, igual que en Sale.
type Purchase struct {
	ID            string
	InvoiceNo     string // único
	VendorID      string // referencia débil al proveedor (vacío si se eliminó)
	BranchID      string
	Subtotal      decimal.Decimal
	Discount      decimal.Decimal
	TotalAmount   decimal.Decimal
	PaidAmount    decimal.Decimal
	PaymentMethod string
	CreatedBy     string
	CreatedAt     time.Time
	Notes         string
}

// PurchaseItem representa una línea de compra. Mismas reglas de referencia
// débil y de recálculo que SaleItem, con costo unitario en lugar de precio.
type PurchaseItem struct {
	ID          string
	PurchaseID  string
	ProductID   string
	ProductName string
	Quantity    int // > 0
	UnitCost    decimal.Decimal
	TotalPrice  decimal.Decimal
}
