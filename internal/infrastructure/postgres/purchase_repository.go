package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/comercio-api/internal/domain"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

const purchaseColumns = `id, invoice_no, vendor_id, branch_id, subtotal, discount, total_amount, paid_amount, payment_method, created_by, created_at, notes`

// PurchaseRepo implementación del puerto PurchaseRepository sobre PostgreSQL (usable con pool o tx).
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador de persistencia para compras.
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create persiste la cabecera de una compra (invoice_no único).
func (r *PurchaseRepo) Create(purchase *entity.Purchase) error {
	query := `
		INSERT INTO purchases (` + purchaseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		purchase.ID, purchase.InvoiceNo, nullStr(purchase.VendorID),
		nullStr(purchase.BranchID), purchase.Subtotal, purchase.Discount,
		purchase.TotalAmount, purchase.PaidAmount, purchase.PaymentMethod,
		nullStr(purchase.CreatedBy), purchase.CreatedAt, purchase.Notes,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de compra.
func (r *PurchaseRepo) CreateItem(item *entity.PurchaseItem) error {
	query := `
		INSERT INTO purchase_items (id, purchase_id, product_id, product_name, quantity, unit_cost, total_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.PurchaseID, nullStr(item.ProductID), item.ProductName,
		item.Quantity, item.UnitCost, item.TotalPrice,
	)
	if err != nil {
		return fmt.Errorf("insert purchase item: %w", err)
	}
	return nil
}

// UpdateTotals persiste los totales derivados recalculados por el motor.
func (r *PurchaseRepo) UpdateTotals(purchase *entity.Purchase) error {
	query := `UPDATE purchases SET subtotal = $2, total_amount = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, purchase.ID, purchase.Subtotal, purchase.TotalAmount)
	if err != nil {
		return fmt.Errorf("update purchase totals: %w", err)
	}
	return nil
}

// GetByID obtiene una compra por ID.
func (r *PurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get purchase")
}

// GetByInvoiceNo obtiene una compra por número de factura.
func (r *PurchaseRepo) GetByInvoiceNo(invoiceNo string) (*entity.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE invoice_no = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, invoiceNo), "get purchase by invoice")
}

// GetItems obtiene las líneas de una compra.
func (r *PurchaseRepo) GetItems(purchaseID string) ([]*entity.PurchaseItem, error) {
	query := `
		SELECT id, purchase_id, product_id, product_name, quantity, unit_cost, total_price
		FROM purchase_items WHERE purchase_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("get purchase items: %w", err)
	}
	defer rows.Close()
	var items []*entity.PurchaseItem
	for rows.Next() {
		var it entity.PurchaseItem
		var productID *string
		if err := rows.Scan(&it.ID, &it.PurchaseID, &productID, &it.ProductName,
			&it.Quantity, &it.UnitCost, &it.TotalPrice); err != nil {
			return nil, fmt.Errorf("scan purchase item: %w", err)
		}
		it.ProductID = strVal(productID)
		items = append(items, &it)
	}
	return items, rows.Err()
}

// List lista compras con paginación, opcionalmente por sucursal.
func (r *PurchaseRepo) List(branchID string, limit, offset int) ([]*entity.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases`
	args := []any{}
	pos := 1
	if branchID != "" {
		query += fmt.Sprintf(" WHERE branch_id = $%d", pos)
		args = append(args, branchID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	var list []*entity.Purchase
	for rows.Next() {
		var p entity.Purchase
		var vendorID, branchID, createdBy *string
		if err := rows.Scan(&p.ID, &p.InvoiceNo, &vendorID, &branchID, &p.Subtotal,
			&p.Discount, &p.TotalAmount, &p.PaidAmount, &p.PaymentMethod,
			&createdBy, &p.CreatedAt, &p.Notes); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		p.VendorID = strVal(vendorID)
		p.BranchID = strVal(branchID)
		p.CreatedBy = strVal(createdBy)
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (r *PurchaseRepo) scanOne(row pgx.Row, op string) (*entity.Purchase, error) {
	var p entity.Purchase
	var vendorID, branchID, createdBy *string
	err := row.Scan(
		&p.ID, &p.InvoiceNo, &vendorID, &branchID, &p.Subtotal, &p.Discount,
		&p.TotalAmount, &p.PaidAmount, &p.PaymentMethod, &createdBy, &p.CreatedAt, &p.Notes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	p.VendorID = strVal(vendorID)
	p.BranchID = strVal(branchID)
	p.CreatedBy = strVal(createdBy)
	return &p, nil
}
