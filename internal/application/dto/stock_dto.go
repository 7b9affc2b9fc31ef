package dto

import "time"

// RegisterMovementRequest movimiento de stock directo (camino administrativo:
// return, damage, adjustment; in/out quedan reservados al motor de posteo
// salvo correcciones explícitas). Quantity es magnitud salvo en adjustment,
// donde es delta con signo.
type RegisterMovementRequest struct {
	ProductID    string `json:"product_id"`
	Quantity     int    `json:"quantity"`
	MovementType string `json:"movement_type"`
	BranchID     string `json:"branch_id"`
	Reference    string `json:"reference"`
	Note         string `json:"note"`
}

// StockMovementResponse movimiento serializado.
type StockMovementResponse struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id,omitempty"`
	ProductName  string    `json:"product_name"`
	Quantity     int       `json:"quantity"`
	MovementType string    `json:"movement_type"`
	BranchID     string    `json:"branch_id,omitempty"`
	Reference    string    `json:"reference"`
	CreatedBy    string    `json:"created_by,omitempty"`
	Note         string    `json:"note,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
