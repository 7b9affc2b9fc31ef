package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas agregadas de solo lectura sobre PostgreSQL.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// DailySales total vendido por día (suma de total_amount de ventas).
func (r *ReportRepo) DailySales(branchID string, from, to *time.Time) ([]repository.DailySalesRow, error) {
	query := `
		SELECT date_trunc('day', created_at) AS day, COALESCE(SUM(total_amount), 0)
		FROM sales WHERE 1=1`
	args := []any{}
	pos := 1
	if branchID != "" {
		query += fmt.Sprintf(" AND branch_id = $%d", pos)
		args = append(args, branchID)
		pos++
	}
	if from != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND created_at <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += " GROUP BY day ORDER BY day DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("daily sales: %w", err)
	}
	defer rows.Close()
	var list []repository.DailySalesRow
	for rows.Next() {
		var row repository.DailySalesRow
		if err := rows.Scan(&row.Day, &row.Total); err != nil {
			return nil, fmt.Errorf("scan daily sales: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
