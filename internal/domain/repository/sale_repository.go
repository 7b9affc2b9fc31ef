package repository

import "github.com/jhoicas/comercio-api/internal/domain/entity"

// SaleRepository define el puerto de persistencia para ventas y sus líneas.
// Las líneas pertenecen en exclusiva a la venta (borrar la venta las borra).
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateItem(item *entity.SaleItem) error
	// UpdateTotals persiste los totales derivados recalculados por el motor.
	UpdateTotals(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	GetByInvoiceNo(invoiceNo string) (*entity.Sale, error)
	GetItems(saleID string) ([]*entity.SaleItem, error)
	List(branchID string, limit, offset int) ([]*entity.Sale, error)
}
