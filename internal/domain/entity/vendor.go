package entity

import "time"

// Vendor representa un proveedor al que se le compran productos.
type Vendor struct {
	ID            string
	Name          string
	ContactPerson string
	Email         string
	Phone         string
	Address       string
	GSTNumber     string
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
