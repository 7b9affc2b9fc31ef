package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeIn         = "in"         // entrada (compra)
	MovementTypeOut        = "out"        // salida (venta)
	MovementTypeReturn     = "return"     // devolución (suma stock)
	MovementTypeDamage     = "damage"     // merma o daño (resta stock)
	MovementTypeAdjustment = "adjustment" // ajuste administrativo con signo
)

// StockMovement representa un hecho inmutable que afecta el stock de un
// producto. Nunca se actualiza ni se elimina; Product.Quantity es el fold
// acumulado de sus movimientos.
//
// Quantity es magnitud para in/out/return/damage (el tipo da la dirección)
// y delta con signo para adjustment.
type StockMovement struct {
	ID           string
	ProductID    string // referencia débil
	ProductName  string // snapshot para trazabilidad histórica
	Quantity     int
	MovementType string
	BranchID     string
	Reference    string // correlación con la transacción de origen
	CreatedBy    string
	Note         string
	CreatedAt    time.Time
}
