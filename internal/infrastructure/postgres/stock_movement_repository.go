package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

const movementColumns = `id, product_id, product_name, quantity, movement_type, branch_id, reference, created_by, note, created_at`

// StockMovementRepo implementación del puerto StockMovementRepository sobre
// PostgreSQL (usable con pool o tx). La tabla es append-only.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste un movimiento de stock.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, nullStr(movement.ProductID), movement.ProductName,
		movement.Quantity, movement.MovementType, nullStr(movement.BranchID),
		movement.Reference, nullStr(movement.CreatedBy), movement.Note, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *StockMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE id = $1`
	var m entity.StockMovement
	var productID, branchID, createdBy *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &productID, &m.ProductName, &m.Quantity, &m.MovementType,
		&branchID, &m.Reference, &createdBy, &m.Note, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	m.ProductID = strVal(productID)
	m.BranchID = strVal(branchID)
	m.CreatedBy = strVal(createdBy)
	return &m, nil
}

// ListByProduct historial de movimientos de un producto, más reciente primero.
func (r *StockMovementRepo) ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM stock_movements WHERE product_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list by product: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

// List lista movimientos, opcionalmente por sucursal.
func (r *StockMovementRepo) List(branchID string, limit, offset int) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements`
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
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

func (r *StockMovementRepo) scanMany(rows pgx.Rows) ([]*entity.StockMovement, error) {
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		var productID, branchID, createdBy *string
		if err := rows.Scan(&m.ID, &productID, &m.ProductName, &m.Quantity, &m.MovementType,
			&branchID, &m.Reference, &createdBy, &m.Note, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		m.ProductID = strVal(productID)
		m.BranchID = strVal(branchID)
		m.CreatedBy = strVal(createdBy)
		list = append(list, &m)
	}
	return list, rows.Err()
}
