package repository

import "github.com/jhoicas/comercio-api/internal/domain/entity"

// PurchaseRepository define el puerto de persistencia para compras y líneas.
type PurchaseRepository interface {
	Create(purchase *entity.Purchase) error
	CreateItem(item *entity.PurchaseItem) error
	UpdateTotals(purchase *entity.Purchase) error
	GetByID(id string) (*entity.Purchase, error)
	GetByInvoiceNo(invoiceNo string) (*entity.Purchase, error)
	GetItems(purchaseID string) ([]*entity.PurchaseItem, error)
	List(branchID string, limit, offset int) ([]*entity.Purchase, error)
}
