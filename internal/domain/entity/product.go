package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo (SKU único).
// Quantity nunca se escribe directo desde transacciones: solo se muta
// aplicando movimientos de stock (ver StockMovement) y no puede quedar
// negativa salvo por ajustes administrativos.
type Product struct {
	ID           string
	SKU          string // código único
	Name         string
	Barcode      string
	Description  string
	Price        decimal.Decimal // precio de venta
	CostPrice    decimal.Decimal // costo de compra
	Quantity     int             // stock actual (>= 0 en estados comprometidos)
	ReorderLevel int             // punto de reorden para alertas de stock bajo
	BranchID     string          // vacío = producto global (sin sucursal)
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// LowStock indica si el producto está en o por debajo del punto de reorden.
func (p *Product) LowStock() bool {
	return p.Quantity <= p.ReorderLevel
}
