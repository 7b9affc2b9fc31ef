package posting

import (
	"context"

	"github.com/jhoicas/comercio-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// TxRunner ejecuta el posteo completo dentro de una transacción de BD,
// pasando repositorios atados a esa tx. Todo lo que el motor escribe
// (cabecera, líneas, movimientos, asiento) se confirma o revierte junto.
type TxRunner interface {
	RunPosting(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		purchaseRepo repository.PurchaseRepository,
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
		ledgerRepo repository.LedgerRepository,
	) error) error
}

// Notifier observa transacciones posteadas con éxito. Se invoca después
// del commit; sus fallas nunca afectan el resultado del posteo.
type Notifier interface {
	TransactionPosted(kind, invoiceNo, counterparty string, total decimal.Decimal)
}
