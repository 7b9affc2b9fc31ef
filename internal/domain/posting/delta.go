package posting

import "github.com/jhoicas/comercio-api/internal/domain/entity"

// SignedDelta traduce un movimiento a su efecto sobre Product.Quantity:
//
//	in, return  → +|quantity|
//	out, damage → -|quantity|
//	adjustment  → quantity (delta con signo, lo controla el caller)
func SignedDelta(movementType string, quantity int) int {
	abs := quantity
	if abs < 0 {
		abs = -abs
	}
	switch movementType {
	case entity.MovementTypeIn, entity.MovementTypeReturn:
		return abs
	case entity.MovementTypeOut, entity.MovementTypeDamage:
		return -abs
	case entity.MovementTypeAdjustment:
		return quantity
	}
	return 0
}

// FloorGuarded indica si el tipo de movimiento exige stock resultante no
// negativo. adjustment queda exento: es un override administrativo y un
// stock negativo resultante es estado reportable, no un error.
func FloorGuarded(movementType string) bool {
	switch movementType {
	case entity.MovementTypeOut, entity.MovementTypeDamage:
		return true
	}
	return false
}

// ValidMovementType valida el tipo contra el conjunto permitido.
func ValidMovementType(movementType string) bool {
	switch movementType {
	case entity.MovementTypeIn, entity.MovementTypeOut, entity.MovementTypeReturn,
		entity.MovementTypeDamage, entity.MovementTypeAdjustment:
		return true
	}
	return false
}
