package repository

import "github.com/jhoicas/comercio-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// UpdateQuantity es la única escritura de stock y solo debe invocarse desde
// la aplicación de movimientos, dentro de la misma transacción que los crea.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE);
	// serializa posts concurrentes sobre el mismo producto.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateQuantity(id string, quantity int) error
	Delete(id string) error
	List(branchID string, limit, offset int) ([]*entity.Product, error)
	// ListLowStock devuelve productos con quantity <= reorder_level.
	ListLowStock(branchID string) ([]*entity.Product, error)
}
