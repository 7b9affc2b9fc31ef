package posting_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/comercio-api/internal/application/audit"
	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/application/posting"
	"github.com/jhoicas/comercio-api/internal/domain"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
	"github.com/jhoicas/comercio-api/pkg/logger"
)

// ─────────────────────────────────────────────
// Fixtures
// ─────────────────────────────────────────────

const (
	testUserID   = "11111111-1111-1111-1111-111111111111"
	testBranchID = "22222222-2222-2222-2222-222222222222"
	testVendorID = "33333333-3333-3333-3333-333333333333"
	productAID   = "aaaaaaaa-0000-0000-0000-000000000001"
	productBID   = "aaaaaaaa-0000-0000-0000-000000000002"
)

var testActor = posting.Actor{UserID: testUserID, IPAddress: "10.0.0.1"}

// ─────────────────────────────────────────────
// Dobles en memoria: store compartido + repos atados a él. El TxRunner
// clona el store, ejecuta la función sobre el clon y solo publica el clon
// si la función no falla — mismo contrato todo-o-nada que una tx real.
// ─────────────────────────────────────────────

type memStore struct {
	branches      map[string]*entity.Branch
	vendors       map[string]*entity.Vendor
	products      map[string]*entity.Product
	sales         map[string]*entity.Sale
	saleItems     []*entity.SaleItem
	purchases     map[string]*entity.Purchase
	purchaseItems []*entity.PurchaseItem
	movements     []*entity.StockMovement
	ledger        []*entity.LedgerEntry
}

func newMemStore() *memStore {
	return &memStore{
		branches:  map[string]*entity.Branch{},
		vendors:   map[string]*entity.Vendor{},
		products:  map[string]*entity.Product{},
		sales:     map[string]*entity.Sale{},
		purchases: map[string]*entity.Purchase{},
	}
}

func (s *memStore) clone() *memStore {
	c := newMemStore()
	for id, b := range s.branches {
		c.branches[id] = b
	}
	for id, v := range s.vendors {
		c.vendors[id] = v
	}
	for id, p := range s.products {
		cp := *p
		c.products[id] = &cp
	}
	for id, sale := range s.sales {
		c.sales[id] = sale
	}
	for id, pur := range s.purchases {
		c.purchases[id] = pur
	}
	c.saleItems = append(c.saleItems, s.saleItems...)
	c.purchaseItems = append(c.purchaseItems, s.purchaseItems...)
	c.movements = append(c.movements, s.movements...)
	c.ledger = append(c.ledger, s.ledger...)
	return c
}

type memTxRunner struct{ store *memStore }

func (r *memTxRunner) RunPosting(_ context.Context, fn func(
	saleRepo repository.SaleRepository,
	purchaseRepo repository.PurchaseRepository,
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
	ledgerRepo repository.LedgerRepository,
) error) error {
	work := r.store.clone()
	err := fn(
		&fakeSaleRepo{store: work},
		&fakePurchaseRepo{store: work},
		&fakeProductRepo{store: work},
		&fakeMovementRepo{store: work},
		&fakeLedgerRepo{store: work},
	)
	if err != nil {
		return err
	}
	*r.store = *work
	return nil
}

type fakeSaleRepo struct{ store *memStore }

func (r *fakeSaleRepo) Create(sale *entity.Sale) error {
	for _, s := range r.store.sales {
		if s.InvoiceNo == sale.InvoiceNo {
			return domain.ErrDuplicate
		}
	}
	r.store.sales[sale.ID] = sale
	return nil
}

func (r *fakeSaleRepo) CreateItem(item *entity.SaleItem) error {
	r.store.saleItems = append(r.store.saleItems, item)
	return nil
}

func (r *fakeSaleRepo) UpdateTotals(sale *entity.Sale) error {
	stored, ok := r.store.sales[sale.ID]
	if !ok {
		return domain.ErrNotFound
	}
	stored.Subtotal, stored.TotalAmount = sale.Subtotal, sale.TotalAmount
	return nil
}

func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) { return r.store.sales[id], nil }

func (r *fakeSaleRepo) GetByInvoiceNo(invoiceNo string) (*entity.Sale, error) {
	for _, s := range r.store.sales {
		if s.InvoiceNo == invoiceNo {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeSaleRepo) GetItems(saleID string) ([]*entity.SaleItem, error) {
	var out []*entity.SaleItem
	for _, it := range r.store.saleItems {
		if it.SaleID == saleID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) List(string, int, int) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.store.sales {
		out = append(out, s)
	}
	return out, nil
}

type fakePurchaseRepo struct{ store *memStore }

func (r *fakePurchaseRepo) Create(p *entity.Purchase) error {
	for _, stored := range r.store.purchases {
		if stored.InvoiceNo == p.InvoiceNo {
			return domain.ErrDuplicate
		}
	}
	r.store.purchases[p.ID] = p
	return nil
}

func (r *fakePurchaseRepo) CreateItem(item *entity.PurchaseItem) error {
	r.store.purchaseItems = append(r.store.purchaseItems, item)
	return nil
}

func (r *fakePurchaseRepo) UpdateTotals(p *entity.Purchase) error {
	stored, ok := r.store.purchases[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	stored.Subtotal, stored.TotalAmount = p.Subtotal, p.TotalAmount
	return nil
}

func (r *fakePurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	return r.store.purchases[id], nil
}

func (r *fakePurchaseRepo) GetByInvoiceNo(invoiceNo string) (*entity.Purchase, error) {
	for _, p := range r.store.purchases {
		if p.InvoiceNo == invoiceNo {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePurchaseRepo) GetItems(purchaseID string) ([]*entity.PurchaseItem, error) {
	var out []*entity.PurchaseItem
	for _, it := range r.store.purchaseItems {
		if it.PurchaseID == purchaseID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *fakePurchaseRepo) List(string, int, int) ([]*entity.Purchase, error) {
	var out []*entity.Purchase
	for _, p := range r.store.purchases {
		out = append(out, p)
	}
	return out, nil
}

type fakeProductRepo struct{ store *memStore }

func (r *fakeProductRepo) Create(p *entity.Product) error { r.store.products[p.ID] = p; return nil }
func (r *fakeProductRepo) Update(p *entity.Product) error { r.store.products[p.ID] = p; return nil }
func (r *fakeProductRepo) Delete(id string) error { delete(r.store.products, id); return nil }
func (r *fakeProductRepo) GetBySKU(string) (*entity.Product, error) { return nil, nil }

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.store.products[id], nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.store.products[id], nil
}

func (r *fakeProductRepo) UpdateQuantity(id string, quantity int) error {
	p, ok := r.store.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Quantity = quantity
	return nil
}

func (r *fakeProductRepo) List(string, int, int) ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) ListLowStock(string) ([]*entity.Product, error)   { return nil, nil }

type fakeMovementRepo struct{ store *memStore }

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	r.store.movements = append(r.store.movements, m)
	return nil
}

func (r *fakeMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	for _, m := range r.store.movements {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (r *fakeMovementRepo) ListByProduct(productID string, _, _ int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.store.movements {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) List(string, int, int) ([]*entity.StockMovement, error) {
	return r.store.movements, nil
}

type fakeLedgerRepo struct{ store *memStore }

func (r *fakeLedgerRepo) Create(e *entity.LedgerEntry) error {
	r.store.ledger = append(r.store.ledger, e)
	return nil
}

func (r *fakeLedgerRepo) GetByID(id string) (*entity.LedgerEntry, error) {
	for _, e := range r.store.ledger {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (r *fakeLedgerRepo) List(string, *time.Time, *time.Time, int, int) ([]*entity.LedgerEntry, error) {
	return r.store.ledger, nil
}

type fakeBranchRepo struct{ store *memStore }

func (r *fakeBranchRepo) Create(b *entity.Branch) error { r.store.branches[b.ID] = b; return nil }
func (r *fakeBranchRepo) GetByID(id string) (*entity.Branch, error) {
	return r.store.branches[id], nil
}
func (r *fakeBranchRepo) GetByName(string) (*entity.Branch, error) { return nil, nil }
func (r *fakeBranchRepo) Update(*entity.Branch) error { return nil }
func (r *fakeBranchRepo) Delete(string) error { return nil }
func (r *fakeBranchRepo) List(int, int) ([]*entity.Branch, error) { return nil, nil }

type fakeVendorRepo struct{ store *memStore }

func (r *fakeVendorRepo) Create(v *entity.Vendor) error { r.store.vendors[v.ID] = v; return nil }
func (r *fakeVendorRepo) GetByID(id string) (*entity.Vendor, error) {
	return r.store.vendors[id], nil
}
func (r *fakeVendorRepo) Update(*entity.Vendor) error { return nil }
func (r *fakeVendorRepo) Delete(string) error { return nil }
func (r *fakeVendorRepo) List(int, int) ([]*entity.Vendor, error) { return nil, nil }

type fakeAuditRepo struct {
	logs []*entity.AuditLog
	fail error
}

func (r *fakeAuditRepo) Create(l *entity.AuditLog) error {
	if r.fail != nil {
		return r.fail
	}
	r.logs = append(r.logs, l)
	return nil
}

func (r *fakeAuditRepo) List(string, int, int) ([]*entity.AuditLog, error) { return r.logs, nil }

type notification struct {
	kind, invoiceNo, counterparty string
	total                         decimal.Decimal
}

type fakeNotifier struct{ sent []notification }

func (n *fakeNotifier) TransactionPosted(kind, invoiceNo, counterparty string, total decimal.Decimal) {
	n.sent = append(n.sent, notification{kind, invoiceNo, counterparty, total})
}

// ─────────────────────────────────────────────
// Harness
// ─────────────────────────────────────────────

type harness struct {
	store    *memStore
	audits   *fakeAuditRepo
	notifier *fakeNotifier
	uc       *posting.PostTransactionUseCase
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	store := newMemStore()
	store.branches[testBranchID] = &entity.Branch{ID: testBranchID, Name: "Sucursal Centro"}
	store.vendors[testVendorID] = &entity.Vendor{ID: testVendorID, Name: "Distribuidora Norte"}
	store.products[productAID] = &entity.Product{
		ID: productAID, SKU: "CAFE-500", Name: "Café molido 500g",
		Price: decimal.NewFromInt(25000), Quantity: 50, IsActive: true,
	}
	store.products[productBID] = &entity.Product{
		ID: productBID, SKU: "AZUCAR-1K", Name: "Azúcar 1kg",
		Price: decimal.NewFromInt(6000), Quantity: 10, IsActive: true,
	}

	audits := &fakeAuditRepo{}
	notifier := &fakeNotifier{}
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	uc := posting.NewPostTransactionUseCase(
		&memTxRunner{store: store},
		&fakeBranchRepo{store: store},
		&fakeVendorRepo{store: store},
		&fakeSaleRepo{store: store},
		&fakePurchaseRepo{store: store},
		audit.NewRecorder(audits, log),
		notifier,
	)
	return &harness{store: store, audits: audits, notifier: notifier, uc: uc}
}

func saleInput(items ...dto.TransactionItemRequest) posting.Input {
	return posting.Input{
		InvoiceNo:     "F-001",
		CustomerName:  "Ana Pérez",
		BranchID:      testBranchID,
		PaymentMethod: "cash",
		Items:         items,
	}
}

// ─────────────────────────────────────────────
// Ventas
// ─────────────────────────────────────────────

func TestPost_VentaExitosa(t *testing.T) {
	h := newHarness(t)
	in := saleInput(dto.TransactionItemRequest{
		ProductID: productAID, Quantity: 2, UnitPrice: decimal.NewFromInt(25000),
	})
	in.Discount = decimal.NewFromInt(1000)
	in.PaidAmount = decimal.NewFromInt(49000)

	resp, err := h.uc.Post(context.Background(), testActor, posting.KindSale, in)
	require.NoError(t, err)
	require.NotNil(t, resp)

	// Totales derivados, nunca del caller
	assert.Equal(t, posting.KindSale, resp.Kind)
	assert.True(t, resp.Subtotal.Equal(decimal.NewFromInt(50000)), "subtotal = Σ líneas")
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(49000)), "total = subtotal - descuento")
	require.Len(t, resp.Items, 1)
	assert.True(t, resp.Items[0].TotalPrice.Equal(decimal.NewFromInt(50000)))

	// Stock decrementado en la misma tx
	assert.Equal(t, 48, h.store.products[productAID].Quantity)

	// Un movimiento out correlacionado con la factura
	require.Len(t, h.store.movements, 1)
	mov := h.store.movements[0]
	assert.Equal(t, entity.MovementTypeOut, mov.MovementType)
	assert.Equal(t, 2, mov.Quantity)
	assert.Equal(t, "SALE-F-001", mov.Reference)
	assert.Equal(t, testUserID, mov.CreatedBy)

	// Exactamente un asiento credit al subtotal pre-descuento
	require.Len(t, h.store.ledger, 1)
	entry := h.store.ledger[0]
	assert.Equal(t, entity.TransactionTypeCredit, entry.TransactionType)
	assert.True(t, entry.Amount.Equal(decimal.NewFromInt(50000)), "el asiento registra el subtotal, no el total con descuento")
	assert.Equal(t, "SALE-F-001", entry.Reference)
	assert.Equal(t, testBranchID, entry.BranchID)

	// Auditoría post-commit: venta, línea, movimiento y asiento
	types := map[string]int{}
	for _, l := range h.audits.logs {
		types[l.EntityType]++
		assert.Equal(t, entity.AuditActionCreate, l.Action)
		assert.Equal(t, testUserID, l.UserID)
	}
	assert.Equal(t, map[string]int{"Sale": 1, "SaleItem": 1, "StockMovement": 1, "LedgerEntry": 1}, types)

	// Notificación post-commit con el total cobrable
	require.Len(t, h.notifier.sent, 1)
	assert.Equal(t, posting.KindSale, h.notifier.sent[0].kind)
	assert.Equal(t, "F-001", h.notifier.sent[0].invoiceNo)
	assert.Equal(t, "Ana Pérez", h.notifier.sent[0].counterparty)
	assert.True(t, h.notifier.sent[0].total.Equal(decimal.NewFromInt(49000)))
}

func TestPost_VentaMultilinea(t *testing.T) {
	h := newHarness(t)
	in := saleInput(
		dto.TransactionItemRequest{ProductID: productAID, Quantity: 3, UnitPrice: decimal.NewFromInt(25000)},
		dto.TransactionItemRequest{ProductID: productBID, Quantity: 2, UnitPrice: decimal.NewFromInt(6000)},
	)

	resp, err := h.uc.Post(context.Background(), testActor, posting.KindSale, in)
	require.NoError(t, err)

	assert.True(t, resp.Subtotal.Equal(decimal.NewFromInt(87000)))
	assert.Equal(t, 47, h.store.products[productAID].Quantity)
	assert.Equal(t, 8, h.store.products[productBID].Quantity)
	assert.Len(t, h.store.movements, 2, "un movimiento por línea con producto vivo")
	assert.Len(t, h.store.ledger, 1, "exactamente un asiento por transacción")
}

func TestPost_StockInsuficiente_NadaQuedaVisible(t *testing.T) {
	h := newHarness(t)
	in := saleInput(
		dto.TransactionItemRequest{ProductID: productAID, Quantity: 1, UnitPrice: decimal.NewFromInt(25000)},
		dto.TransactionItemRequest{ProductID: productBID, Quantity: 99, UnitPrice: decimal.NewFromInt(6000)},
	)

	_, err := h.uc.Post(context.Background(), testActor, posting.KindSale, in)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, productBID, stockErr.ProductID)
	assert.Equal(t, 10, stockErr.Available)
	assert.Equal(t, 99, stockErr.Requested)

	// Todo-o-nada: la primera línea válida tampoco quedó
	assert.Empty(t, h.store.sales)
	assert.Empty(t, h.store.saleItems)
	assert.Empty(t, h.store.movements)
	assert.Empty(t, h.store.ledger)
	assert.Equal(t, 50, h.store.products[productAID].Quantity, "el stock no se toca ante rollback")
	assert.Empty(t, h.audits.logs, "no se audita un posteo fallido")
	assert.Empty(t, h.notifier.sent)
}

func TestPost_FacturaDuplicada(t *testing.T) {
	h := newHarness(t)
	in := saleInput(dto.TransactionItemRequest{
		ProductID: productAID, Quantity: 1, UnitPrice: decimal.NewFromInt(25000),
	})

	_, err := h.uc.Post(context.Background(), testActor, posting.KindSale, in)
	require.NoError(t, err)

	_, err = h.uc.Post(context.Background(), testActor, posting.KindSale, in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, 49, h.store.products[productAID].Quantity, "el segundo posteo no movió stock")
	assert.Len(t, h.store.ledger, 1)
}

func TestPost_ProductoNoResuelve_LineaConNombreRespaldo(t *testing.T) {
	h := newHarness(t)
	in := saleInput(dto.TransactionItemRequest{
		ProductID:   "ffffffff-0000-0000-0000-000000000000",
		ProductName: "Producto descontinuado",
		Quantity:    1,
		UnitPrice:   decimal.NewFromInt(9900),
	})

	resp, err := h.uc.Post(context.Background(), testActor, posting.KindSale, in)
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.Empty(t, resp.Items[0].ProductID, "referencia débil: producto nulo")
	assert.Equal(t, "Producto descontinuado", resp.Items[0].ProductName)
	assert.Empty(t, h.store.movements, "sin producto vivo no hay movimiento de stock")
	assert.Len(t, h.store.ledger, 1, "el asiento se emite igual")
}

func TestPost_LineaSinProductoNiNombre(t *testing.T) {
	h := newHarness(t)
	in := saleInput(dto.TransactionItemRequest{
		Quantity: 1, UnitPrice: decimal.NewFromInt(100),
	})

	_, err := h.uc.Post(context.Background(), testActor, posting.KindSale, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, h.store.sales)
}

// ─────────────────────────────────────────────
// Compras
// ─────────────────────────────────────────────

func TestPost_CompraExitosa(t *testing.T) {
	h := newHarness(t)
	in := posting.Input{
		InvoiceNo: "OC-100",
		VendorID:  testVendorID,
		BranchID:  testBranchID,
		Items: []dto.TransactionItemRequest{
			{ProductID: productBID, Quantity: 40, UnitPrice: decimal.NewFromInt(4000)},
		},
	}

	resp, err := h.uc.Post(context.Background(), testActor, posting.KindPurchase, in)
	require.NoError(t, err)

	assert.Equal(t, posting.KindPurchase, resp.Kind)
	assert.True(t, resp.Subtotal.Equal(decimal.NewFromInt(160000)))
	assert.Equal(t, 50, h.store.products[productBID].Quantity, "la compra suma stock")

	require.Len(t, h.store.movements, 1)
	assert.Equal(t, entity.MovementTypeIn, h.store.movements[0].MovementType)
	assert.Equal(t, "PUR-OC-100", h.store.movements[0].Reference)

	require.Len(t, h.store.ledger, 1)
	assert.Equal(t, entity.TransactionTypeDebit, h.store.ledger[0].TransactionType)
	assert.True(t, h.store.ledger[0].Amount.Equal(decimal.NewFromInt(160000)))

	types := map[string]int{}
	for _, l := range h.audits.logs {
		types[l.EntityType]++
	}
	assert.Equal(t, map[string]int{"Purchase": 1, "PurchaseItem": 1, "StockMovement": 1, "LedgerEntry": 1}, types)
}

func TestPost_CompraSinGuardiaDeStock(t *testing.T) {
	// La guardia de existencias aplica solo a ventas: una compra siempre
	// puede entrar por grande que sea.
	h := newHarness(t)
	in := posting.Input{
		InvoiceNo: "OC-101",
		Items: []dto.TransactionItemRequest{
			{ProductID: productBID, Quantity: 100000, UnitPrice: decimal.NewFromInt(1)},
		},
	}

	_, err := h.uc.Post(context.Background(), testActor, posting.KindPurchase, in)
	require.NoError(t, err)
	assert.Equal(t, 100010, h.store.products[productBID].Quantity)
}

func TestPost_ProveedorInexistente(t *testing.T) {
	h := newHarness(t)
	in := posting.Input{
		InvoiceNo: "OC-102",
		VendorID:  "no-existe",
		Items: []dto.TransactionItemRequest{
			{ProductID: productBID, Quantity: 1, UnitPrice: decimal.NewFromInt(1)},
		},
	}

	_, err := h.uc.Post(context.Background(), testActor, posting.KindPurchase, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, h.store.purchases)
}

// ─────────────────────────────────────────────
// Validación de entrada
// ─────────────────────────────────────────────

func TestPost_EntradaInvalida(t *testing.T) {
	item := dto.TransactionItemRequest{ProductID: productAID, Quantity: 1, UnitPrice: decimal.NewFromInt(100)}
	cases := []struct {
		name string
		kind string
		in   posting.Input
	}{
		{"tipo desconocido", "TRANSFER", saleInput(item)},
		{"factura vacía", posting.KindSale, posting.Input{Items: []dto.TransactionItemRequest{item}}},
		{"sin líneas", posting.KindSale, posting.Input{InvoiceNo: "F-010"}},
		{"descuento negativo", posting.KindSale, posting.Input{
			InvoiceNo: "F-011", Discount: decimal.NewFromInt(-1),
			Items: []dto.TransactionItemRequest{item},
		}},
		{"pago negativo", posting.KindSale, posting.Input{
			InvoiceNo: "F-012", PaidAmount: decimal.NewFromInt(-1),
			Items: []dto.TransactionItemRequest{item},
		}},
		{"cantidad cero", posting.KindSale, posting.Input{
			InvoiceNo: "F-013",
			Items:     []dto.TransactionItemRequest{{ProductID: productAID, Quantity: 0, UnitPrice: decimal.NewFromInt(100)}},
		}},
		{"cantidad negativa", posting.KindSale, posting.Input{
			InvoiceNo: "F-014",
			Items:     []dto.TransactionItemRequest{{ProductID: productAID, Quantity: -2, UnitPrice: decimal.NewFromInt(100)}},
		}},
		{"precio negativo", posting.KindSale, posting.Input{
			InvoiceNo: "F-015",
			Items:     []dto.TransactionItemRequest{{ProductID: productAID, Quantity: 1, UnitPrice: decimal.NewFromInt(-100)}},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t)
			_, err := h.uc.Post(context.Background(), testActor, tc.kind, tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Empty(t, h.store.sales)
			assert.Empty(t, h.store.ledger)
		})
	}
}

func TestPost_SucursalInexistente(t *testing.T) {
	h := newHarness(t)
	in := saleInput(dto.TransactionItemRequest{
		ProductID: productAID, Quantity: 1, UnitPrice: decimal.NewFromInt(100),
	})
	in.BranchID = "no-existe"

	_, err := h.uc.Post(context.Background(), testActor, posting.KindSale, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ─────────────────────────────────────────────
// Lecturas y resiliencia post-commit
// ─────────────────────────────────────────────

func TestGetSale_ConLineas(t *testing.T) {
	h := newHarness(t)
	in := saleInput(dto.TransactionItemRequest{
		ProductID: productAID, Quantity: 2, UnitPrice: decimal.NewFromInt(25000),
	})
	posted, err := h.uc.Post(context.Background(), testActor, posting.KindSale, in)
	require.NoError(t, err)

	got, err := h.uc.GetSale(context.Background(), posted.ID)
	require.NoError(t, err)
	assert.Equal(t, posted.InvoiceNo, got.InvoiceNo)
	require.Len(t, got.Items, 1)
	assert.True(t, got.Items[0].TotalPrice.Equal(decimal.NewFromInt(50000)))
}

func TestGetSale_NoExiste(t *testing.T) {
	h := newHarness(t)
	_, err := h.uc.GetSale(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPost_FalloDeAuditoriaNoRevierteElPosteo(t *testing.T) {
	h := newHarness(t)
	h.audits.fail = errors.New("auditoría caída")
	in := saleInput(dto.TransactionItemRequest{
		ProductID: productAID, Quantity: 1, UnitPrice: decimal.NewFromInt(25000),
	})

	resp, err := h.uc.Post(context.Background(), testActor, posting.KindSale, in)
	require.NoError(t, err, "la auditoría es post-commit y nunca falla el posteo")
	require.NotNil(t, resp)
	assert.Equal(t, 49, h.store.products[productAID].Quantity)
	assert.Len(t, h.notifier.sent, 1, "la notificación sale igual")
}
