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

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `id, invoice_no, customer_name, customer_phone, branch_id, subtotal, discount, total_amount, paid_amount, payment_method, created_by, created_at, notes`

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de una venta (invoice_no único).
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.InvoiceNo, sale.CustomerName, sale.CustomerPhone,
		nullStr(sale.BranchID), sale.Subtotal, sale.Discount, sale.TotalAmount,
		sale.PaidAmount, sale.PaymentMethod, nullStr(sale.CreatedBy),
		sale.CreatedAt, sale.Notes,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de venta.
func (r *SaleRepo) CreateItem(item *entity.SaleItem) error {
	query := `
		INSERT INTO sale_items (id, sale_id, product_id, product_name, quantity, unit_price, total_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SaleID, nullStr(item.ProductID), item.ProductName,
		item.Quantity, item.UnitPrice, item.TotalPrice,
	)
	if err != nil {
		return fmt.Errorf("insert sale item: %w", err)
	}
	return nil
}

// UpdateTotals persiste los totales derivados recalculados por el motor.
func (r *SaleRepo) UpdateTotals(sale *entity.Sale) error {
	query := `UPDATE sales SET subtotal = $2, total_amount = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, sale.ID, sale.Subtotal, sale.TotalAmount)
	if err != nil {
		return fmt.Errorf("update sale totals: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get sale")
}

// GetByInvoiceNo obtiene una venta por número de factura.
func (r *SaleRepo) GetByInvoiceNo(invoiceNo string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE invoice_no = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, invoiceNo), "get sale by invoice")
}

// GetItems obtiene las líneas de una venta.
func (r *SaleRepo) GetItems(saleID string) ([]*entity.SaleItem, error) {
	query := `
		SELECT id, sale_id, product_id, product_name, quantity, unit_price, total_price
		FROM sale_items WHERE sale_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("get sale items: %w", err)
	}
	defer rows.Close()
	var items []*entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		var productID *string
		if err := rows.Scan(&it.ID, &it.SaleID, &productID, &it.ProductName,
			&it.Quantity, &it.UnitPrice, &it.TotalPrice); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		it.ProductID = strVal(productID)
		items = append(items, &it)
	}
	return items, rows.Err()
}

// List lista ventas con paginación, opcionalmente por sucursal.
func (r *SaleRepo) List(branchID string, limit, offset int) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales`
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
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		var branchID, createdBy *string
		if err := rows.Scan(&s.ID, &s.InvoiceNo, &s.CustomerName, &s.CustomerPhone, &branchID,
			&s.Subtotal, &s.Discount, &s.TotalAmount, &s.PaidAmount, &s.PaymentMethod,
			&createdBy, &s.CreatedAt, &s.Notes); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		s.BranchID = strVal(branchID)
		s.CreatedBy = strVal(createdBy)
		list = append(list, &s)
	}
	return list, rows.Err()
}

func (r *SaleRepo) scanOne(row pgx.Row, op string) (*entity.Sale, error) {
	var s entity.Sale
	var branchID, createdBy *string
	err := row.Scan(
		&s.ID, &s.InvoiceNo, &s.CustomerName, &s.CustomerPhone, &branchID,
		&s.Subtotal, &s.Discount, &s.TotalAmount, &s.PaidAmount, &s.PaymentMethod,
		&createdBy, &s.CreatedAt, &s.Notes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.BranchID = strVal(branchID)
	s.CreatedBy = strVal(createdBy)
	return &s, nil
}
