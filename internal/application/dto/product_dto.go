package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest alta de producto. El stock inicia en 0 y solo se
// mueve con movimientos (compras, ajustes).
type CreateProductRequest struct {
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Barcode      string          `json:"barcode"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	ReorderLevel int             `json:"reorder_level"`
	BranchID     string          `json:"branch_id"`
}

// UpdateProductRequest actualización parcial (punteros = campo presente).
// Quantity no es actualizable: el stock solo se mueve con movimientos.
type UpdateProductRequest struct {
	Name         *string          `json:"name"`
	Barcode      *string          `json:"barcode"`
	Description  *string          `json:"description"`
	Price        *decimal.Decimal `json:"price"`
	CostPrice    *decimal.Decimal `json:"cost_price"`
	ReorderLevel *int             `json:"reorder_level"`
	BranchID     *string          `json:"branch_id"`
	IsActive     *bool            `json:"is_active"`
}

// ProductResponse producto serializado.
type ProductResponse struct {
	ID           string          `json:"id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Barcode      string          `json:"barcode,omitempty"`
	Description  string          `json:"description,omitempty"`
	Price        decimal.Decimal `json:"price"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	Quantity     int             `json:"quantity"`
	ReorderLevel int             `json:"reorder_level"`
	BranchID     string          `json:"branch_id,omitempty"`
	IsActive     bool            `json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
