// Package posting implementa el motor de posteo de transacciones: la
// creación atómica de una venta o compra junto con sus efectos derivados
// (movimientos de stock, asiento del libro, auditoría).
package posting

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/comercio-api/internal/application/audit"
	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/application/inventory"
	"github.com/jhoicas/comercio-api/internal/domain"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	domposting "github.com/jhoicas/comercio-api/internal/domain/posting"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

// Tipos de transacción. El valor es también el prefijo de la referencia
// de correlación "<KIND>-<invoice_no>".
const (
	KindSale     = "SALE"
	KindPurchase = "PUR"
)

// Actor identidad que ejecuta el posteo (del token, la capa HTTP la provee).
type Actor struct {
	UserID    string
	IPAddress string
}

// Input cabecera + líneas de la transacción a postear. Sin totales ni
// creador: los totales son derivados y el creador es el actor.
type Input struct {
	InvoiceNo     string
	CustomerName  string // ventas (cliente informal, vacío = walk-in)
	CustomerPhone string
	VendorID      string // compras (opcional)
	BranchID      string // opcional
	Discount      decimal.Decimal
	PaidAmount    decimal.Decimal
	PaymentMethod string
	Notes         string
	Items         []dto.TransactionItemRequest
}

// PostTransactionUseCase orquesta el posteo: valida líneas, persiste
// cabecera y líneas, emite movimientos de stock (que aplican los deltas),
// recalcula totales, emite exactamente un asiento del libro — todo en una
// transacción — y audita/notifica post-commit.
//
// Monto del asiento: subtotal antes de descuento (el asiento registra el
// efecto financiero de la mercadería movida; el descuento es condición
// comercial de la cabecera).
type PostTransactionUseCase struct {
	txRunner     TxRunner
	branchRepo   repository.BranchRepository
	vendorRepo   repository.VendorRepository
	saleRepo     repository.SaleRepository
	purchaseRepo repository.PurchaseRepository
	auditor      *audit.Recorder
	notifier     Notifier // opcional
}

// NewPostTransactionUseCase construye el motor.
func NewPostTransactionUseCase(
	txRunner TxRunner,
	branchRepo repository.BranchRepository,
	vendorRepo repository.VendorRepository,
	saleRepo repository.SaleRepository,
	purchaseRepo repository.PurchaseRepository,
	auditor *audit.Recorder,
	notifier Notifier,
) *PostTransactionUseCase {
	return &PostTransactionUseCase{
		txRunner:     txRunner,
		branchRepo:   branchRepo,
		vendorRepo:   vendorRepo,
		saleRepo:     saleRepo,
		purchaseRepo: purchaseRepo,
		auditor:      auditor,
		notifier:     notifier,
	}
}

// Post postea una transacción completa. Todo-o-nada: ante cualquier error
// no queda visible ninguna cabecera, línea, movimiento ni asiento.
func (uc *PostTransactionUseCase) Post(ctx context.Context, actor Actor, kind string, in Input) (*dto.TransactionResponse, error) {
	if kind != KindSale && kind != KindPurchase {
		return nil, domain.ErrInvalidInput
	}
	if in.InvoiceNo == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Discount.IsNegative() || in.PaidAmount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.Quantity <= 0 || item.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	}

	// Sucursal y proveedor se validan fuera de la tx (solo lectura)
	if in.BranchID != "" {
		branch, err := uc.branchRepo.GetByID(in.BranchID)
		if err != nil {
			return nil, err
		}
		if branch == nil {
			return nil, domain.ErrNotFound
		}
	}
	if kind == KindPurchase && in.VendorID != "" {
		vendor, err := uc.vendorRepo.GetByID(in.VendorID)
		if err != nil {
			return nil, err
		}
		if vendor == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	reference := kind + "-" + in.InvoiceNo

	var sale *entity.Sale
	var saleItems []*entity.SaleItem
	var purchase *entity.Purchase
	var purchaseItems []*entity.PurchaseItem
	var movements []*entity.StockMovement
	var ledgerEntry *entity.LedgerEntry

	err := uc.txRunner.RunPosting(ctx, func(
		saleRepo repository.SaleRepository,
		purchaseRepo repository.PurchaseRepository,
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
		ledgerRepo repository.LedgerRepository,
	) error {
		// 1) Cabecera con totales en cero (se recalculan al final)
		headerID := uuid.New().String()
		if kind == KindSale {
			sale = &entity.Sale{
				ID: headerID, InvoiceNo: in.InvoiceNo,
				CustomerName: in.CustomerName, CustomerPhone: in.CustomerPhone,
				BranchID: in.BranchID,
				Subtotal: decimal.Zero, Discount: in.Discount, TotalAmount: decimal.Zero,
				PaidAmount: in.PaidAmount, PaymentMethod: in.PaymentMethod,
				CreatedBy: actor.UserID, CreatedAt: now, Notes: in.Notes,
			}
			if err := saleRepo.Create(sale); err != nil {
				return err
			}
		} else {
			purchase = &entity.Purchase{
				ID: headerID, InvoiceNo: in.InvoiceNo,
				VendorID: in.VendorID, BranchID: in.BranchID,
				Subtotal: decimal.Zero, Discount: in.Discount, TotalAmount: decimal.Zero,
				PaidAmount: in.PaidAmount, PaymentMethod: in.PaymentMethod,
				CreatedBy: actor.UserID, CreatedAt: now, Notes: in.Notes,
			}
			if err := purchaseRepo.Create(purchase); err != nil {
				return err
			}
		}

		// 2) Líneas en orden de entrada
		lineTotals := make([]decimal.Decimal, 0, len(in.Items))
		for _, item := range in.Items {
			// a) Resolver producto con bloqueo de fila; referencia débil:
			// si no resuelve, la línea se acepta con producto nulo y el
			// nombre de respaldo del caller.
			var product *entity.Product
			if item.ProductID != "" {
				p, err := productRepo.GetForUpdate(item.ProductID)
				if err != nil {
					return err
				}
				product = p
			}
			name := item.ProductName
			if name == "" && product != nil {
				name = product.Name
			}
			if name == "" {
				return domain.ErrInvalidInput
			}

			// b) Total de línea derivado, nunca del caller
			totalPrice := domposting.LineTotal(item.Quantity, item.UnitPrice)
			lineTotals = append(lineTotals, totalPrice)

			// c) Guardia de stock, solo ventas
			if kind == KindSale && product != nil && product.Quantity < item.Quantity {
				return &domain.InsufficientStockError{
					ProductID:   product.ID,
					ProductName: product.Name,
					Available:   product.Quantity,
					Requested:   item.Quantity,
				}
			}

			// d) Persistir la línea
			productID := ""
			if product != nil {
				productID = product.ID
			}
			if kind == KindSale {
				it := &entity.SaleItem{
					ID: uuid.New().String(), SaleID: headerID,
					ProductID: productID, ProductName: name,
					Quantity: item.Quantity, UnitPrice: item.UnitPrice, TotalPrice: totalPrice,
				}
				if err := saleRepo.CreateItem(it); err != nil {
					return err
				}
				saleItems = append(saleItems, it)
			} else {
				it := &entity.PurchaseItem{
					ID: uuid.New().String(), PurchaseID: headerID,
					ProductID: productID, ProductName: name,
					Quantity: item.Quantity, UnitCost: item.UnitPrice, TotalPrice: totalPrice,
				}
				if err := purchaseRepo.CreateItem(it); err != nil {
					return err
				}
				purchaseItems = append(purchaseItems, it)
			}

			// e) Movimiento de stock por línea con producto vivo; aplica
			// el delta sobre el producto en la misma tx
			if product != nil {
				movType := entity.MovementTypeIn
				if kind == KindSale {
					movType = entity.MovementTypeOut
				}
				mov := &entity.StockMovement{
					ProductID:    product.ID,
					ProductName:  name,
					Quantity:     item.Quantity,
					MovementType: movType,
					BranchID:     in.BranchID,
					Reference:    reference,
					CreatedBy:    actor.UserID,
					CreatedAt:    now,
				}
				if err := inventory.ApplyInTx(movRepo, productRepo, product, mov); err != nil {
					return err
				}
				movements = append(movements, mov)
			}
		}

		// 3) Totales derivados
		subtotal, total := domposting.RecomputeTotals(lineTotals, in.Discount)
		if kind == KindSale {
			sale.Subtotal, sale.TotalAmount = subtotal, total
			if err := saleRepo.UpdateTotals(sale); err != nil {
				return err
			}
		} else {
			purchase.Subtotal, purchase.TotalAmount = subtotal, total
			if err := purchaseRepo.UpdateTotals(purchase); err != nil {
				return err
			}
		}

		// 4) Exactamente un asiento del libro, al subtotal pre-descuento
		entryType := entity.TransactionTypeDebit
		description := "Factura de compra " + in.InvoiceNo
		if kind == KindSale {
			entryType = entity.TransactionTypeCredit
			description = "Factura de venta " + in.InvoiceNo
		}
		ledgerEntry = &entity.LedgerEntry{
			ID:              uuid.New().String(),
			Date:            now,
			Description:     description,
			TransactionType: entryType,
			Amount:          subtotal,
			Reference:       reference,
			BranchID:        in.BranchID,
			CreatedBy:       actor.UserID,
		}
		return ledgerRepo.Create(ledgerEntry)
	})
	if err != nil {
		return nil, err
	}

	// 5) Post-commit: auditoría por entidad creada y notificación.
	// Ninguna de las dos puede fallar el posteo ya confirmado.
	uc.auditor.RecordAll(actor.UserID, actor.IPAddress, uc.auditEntries(kind, sale, saleItems, purchase, purchaseItems, movements, ledgerEntry))
	if uc.notifier != nil {
		counterparty := in.CustomerName
		total := decimal.Zero
		if kind == KindSale {
			total = sale.TotalAmount
		} else {
			counterparty = in.VendorID
			total = purchase.TotalAmount
		}
		uc.notifier.TransactionPosted(kind, in.InvoiceNo, counterparty, total)
	}

	if kind == KindSale {
		return saleResponse(sale, saleItems), nil
	}
	return purchaseResponse(purchase, purchaseItems), nil
}

func (uc *PostTransactionUseCase) auditEntries(
	kind string,
	sale *entity.Sale, saleItems []*entity.SaleItem,
	purchase *entity.Purchase, purchaseItems []*entity.PurchaseItem,
	movements []*entity.StockMovement,
	ledgerEntry *entity.LedgerEntry,
) []audit.Entry {
	var entries []audit.Entry
	if kind == KindSale {
		entries = append(entries, audit.Entry{
			Action: entity.AuditActionCreate, EntityType: "Sale",
			EntityID: sale.ID, Changes: audit.SaleSnapshot(sale),
		})
		for _, it := range saleItems {
			entries = append(entries, audit.Entry{
				Action: entity.AuditActionCreate, EntityType: "SaleItem",
				EntityID: it.ID, Changes: audit.SaleItemSnapshot(it),
			})
		}
	} else {
		entries = append(entries, audit.Entry{
			Action: entity.AuditActionCreate, EntityType: "Purchase",
			EntityID: purchase.ID, Changes: audit.PurchaseSnapshot(purchase),
		})
		for _, it := range purchaseItems {
			entries = append(entries, audit.Entry{
				Action: entity.AuditActionCreate, EntityType: "PurchaseItem",
				EntityID: it.ID, Changes: audit.PurchaseItemSnapshot(it),
			})
		}
	}
	for _, mov := range movements {
		entries = append(entries, audit.Entry{
			Action: entity.AuditActionCreate, EntityType: "StockMovement",
			EntityID: mov.ID, Changes: audit.MovementSnapshot(mov),
		})
	}
	entries = append(entries, audit.Entry{
		Action: entity.AuditActionCreate, EntityType: "LedgerEntry",
		EntityID: ledgerEntry.ID, Changes: audit.LedgerSnapshot(ledgerEntry),
	})
	return entries
}

// GetSale obtiene una venta posteada con sus líneas.
func (uc *PostTransactionUseCase) GetSale(ctx context.Context, id string) (*dto.TransactionResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.saleRepo.GetItems(id)
	if err != nil {
		return nil, err
	}
	return saleResponse(sale, items), nil
}

// GetPurchase obtiene una compra posteada con sus líneas.
func (uc *PostTransactionUseCase) GetPurchase(ctx context.Context, id string) (*dto.TransactionResponse, error) {
	purchase, err := uc.purchaseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.purchaseRepo.GetItems(id)
	if err != nil {
		return nil, err
	}
	return purchaseResponse(purchase, items), nil
}

// ListSales lista ventas (opcionalmente por sucursal).
func (uc *PostTransactionUseCase) ListSales(ctx context.Context, branchID string, limit, offset int) ([]*dto.TransactionResponse, error) {
	sales, err := uc.saleRepo.List(branchID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TransactionResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, saleResponse(s, nil))
	}
	return out, nil
}

// ListPurchases lista compras (opcionalmente por sucursal).
func (uc *PostTransactionUseCase) ListPurchases(ctx context.Context, branchID string, limit, offset int) ([]*dto.TransactionResponse, error) {
	purchases, err := uc.purchaseRepo.List(branchID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TransactionResponse, 0, len(purchases))
	for _, p := range purchases {
		out = append(out, purchaseResponse(p, nil))
	}
	return out, nil
}

func saleResponse(s *entity.Sale, items []*entity.SaleItem) *dto.TransactionResponse {
	resp := &dto.TransactionResponse{
		ID: s.ID, Kind: KindSale, InvoiceNo: s.InvoiceNo,
		CustomerName: s.CustomerName, BranchID: s.BranchID,
		Subtotal: s.Subtotal, Discount: s.Discount, TotalAmount: s.TotalAmount,
		PaidAmount: s.PaidAmount, PaymentMethod: s.PaymentMethod,
		CreatedBy: s.CreatedBy, CreatedAt: s.CreatedAt, Notes: s.Notes,
		Items: make([]dto.TransactionItemResponse, 0, len(items)),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.TransactionItemResponse{
			ID: it.ID, ProductID: it.ProductID, ProductName: it.ProductName,
			Quantity: it.Quantity, UnitPrice: it.UnitPrice, TotalPrice: it.TotalPrice,
		})
	}
	return resp
}

func purchaseResponse(p *entity.Purchase, items []*entity.PurchaseItem) *dto.TransactionResponse {
	resp := &dto.TransactionResponse{
		ID: p.ID, Kind: KindPurchase, InvoiceNo: p.InvoiceNo,
		VendorID: p.VendorID, BranchID: p.BranchID,
		Subtotal: p.Subtotal, Discount: p.Discount, TotalAmount: p.TotalAmount,
		PaidAmount: p.PaidAmount, PaymentMethod: p.PaymentMethod,
		CreatedBy: p.CreatedBy, CreatedAt: p.CreatedAt, Notes: p.Notes,
		Items: make([]dto.TransactionItemResponse, 0, len(items)),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.TransactionItemResponse{
			ID: it.ID, ProductID: it.ProductID, ProductName: it.ProductName,
			Quantity: it.Quantity, UnitPrice: it.UnitCost, TotalPrice: it.TotalPrice,
		})
	}
	return resp
}
