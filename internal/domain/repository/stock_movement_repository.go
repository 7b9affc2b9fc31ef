package repository

import "github.com/jhoicas/comercio-api/internal/domain/entity"

// StockMovementRepository define el puerto de persistencia para movimientos
// de stock. Append-only: no hay update ni delete.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error)
	List(branchID string, limit, offset int) ([]*entity.StockMovement, error)
}
