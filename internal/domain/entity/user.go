package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin      = "admin"
	RoleManager    = "manager"
	RoleCashier    = "cashier"
	RoleAccountant = "accountant"
	RoleWarehouse  = "warehouse"
)

// User representa un usuario del sistema. BranchID limita el alcance de
// sus operaciones (vacío = todas las sucursales, típico de admin).
type User struct {
	ID           string
	Username     string // único
	Email        string
	PasswordHash string
	Role         string
	BranchID     string
	Phone        string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
