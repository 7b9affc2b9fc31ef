package entity

import "time"

// Branch representa una sucursal física o lógica del negocio.
// Productos, transacciones y asientos del libro se asocian a una sucursal.
type Branch struct {
	ID        string
	Name      string // único
	Location  string
	Phone     string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
