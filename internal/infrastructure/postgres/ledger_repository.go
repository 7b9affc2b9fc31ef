package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

const ledgerColumns = `id, date, description, transaction_type, amount, reference, branch_id, created_by`

// LedgerRepo implementación del puerto LedgerRepository sobre PostgreSQL
// (usable con pool o tx). La tabla es append-only: no hay update ni delete.
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

// Create persiste un asiento del libro.
func (r *LedgerRepo) Create(entry *entity.LedgerEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	query := `
		INSERT INTO ledger_entries (` + ledgerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.Date, entry.Description, entry.TransactionType,
		entry.Amount, entry.Reference, nullStr(entry.BranchID), nullStr(entry.CreatedBy),
	)
	if err != nil {
		return fmt.Errorf("create ledger entry: %w", err)
	}
	return nil
}

// GetByID obtiene un asiento por ID.
func (r *LedgerRepo) GetByID(id string) (*entity.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries WHERE id = $1`
	var e entity.LedgerEntry
	var branchID, createdBy *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.Date, &e.Description, &e.TransactionType, &e.Amount,
		&e.Reference, &branchID, &createdBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ledger entry: %w", err)
	}
	e.BranchID = strVal(branchID)
	e.CreatedBy = strVal(createdBy)
	return &e, nil
}

// List lista asientos, opcionalmente por sucursal y rango de fechas.
// limit <= 0 significa sin paginación (para reportes).
func (r *LedgerRepo) List(branchID string, from, to *time.Time, limit, offset int) ([]*entity.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries WHERE 1=1`
	args := []any{}
	pos := 1
	if branchID != "" {
		query += fmt.Sprintf(" AND branch_id = $%d", pos)
		args = append(args, branchID)
		pos++
	}
	if from != nil {
		query += fmt.Sprintf(" AND date >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND date <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += " ORDER BY date DESC"
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", pos, pos+1)
		args = append(args, limit, offset)
	}

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.LedgerEntry
	for rows.Next() {
		var e entity.LedgerEntry
		var branchID, createdBy *string
		if err := rows.Scan(&e.ID, &e.Date, &e.Description, &e.TransactionType,
			&e.Amount, &e.Reference, &branchID, &createdBy); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		e.BranchID = strVal(branchID)
		e.CreatedBy = strVal(createdBy)
		list = append(list, &e)
	}
	return list, rows.Err()
}
