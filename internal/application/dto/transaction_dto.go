package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionItemRequest línea de una transacción a postear.
// ProductName es el nombre de respaldo cuando ProductID no resuelve;
// total_price nunca se acepta del caller, siempre se recalcula.
type TransactionItemRequest struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// PostSaleRequest cabecera + líneas para postear una venta.
type PostSaleRequest struct {
	InvoiceNo     string                   `json:"invoice_no"`
	CustomerName  string                   `json:"customer_name"`
	CustomerPhone string                   `json:"customer_phone"`
	BranchID      string                   `json:"branch_id"`
	Discount      decimal.Decimal          `json:"discount"`
	PaidAmount    decimal.Decimal          `json:"paid_amount"`
	PaymentMethod string                   `json:"payment_method"`
	Notes         string                   `json:"notes"`
	Items         []TransactionItemRequest `json:"items"`
}

// PostPurchaseRequest cabecera + líneas para postear una compra.
type PostPurchaseRequest struct {
	InvoiceNo     string                   `json:"invoice_no"`
	VendorID      string                   `json:"vendor_id"`
	BranchID      string                   `json:"branch_id"`
	Discount      decimal.Decimal          `json:"discount"`
	PaidAmount    decimal.Decimal          `json:"paid_amount"`
	PaymentMethod string                   `json:"payment_method"`
	Notes         string                   `json:"notes"`
	Items         []TransactionItemRequest `json:"items"`
}

// TransactionItemResponse línea persistida con su total derivado.
type TransactionItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id,omitempty"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// TransactionResponse transacción posteada con totales derivados.
type TransactionResponse struct {
	ID            string                    `json:"id"`
	Kind          string                    `json:"kind"` // SALE | PUR
	InvoiceNo     string                    `json:"invoice_no"`
	CustomerName  string                    `json:"customer_name,omitempty"`
	VendorID      string                    `json:"vendor_id,omitempty"`
	BranchID      string                    `json:"branch_id,omitempty"`
	Subtotal      decimal.Decimal           `json:"subtotal"`
	Discount      decimal.Decimal           `json:"discount"`
	TotalAmount   decimal.Decimal           `json:"total_amount"`
	PaidAmount    decimal.Decimal           `json:"paid_amount"`
	PaymentMethod string                    `json:"payment_method,omitempty"`
	CreatedBy     string                    `json:"created_by,omitempty"`
	CreatedAt     time.Time                 `json:"created_at"`
	Notes         string                    `json:"notes,omitempty"`
	Items         []TransactionItemResponse `json:"items"`
}
