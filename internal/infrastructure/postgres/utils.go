package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// nullStr convierte "" a NULL para columnas de referencia débil.
func nullStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// strVal convierte NULL a "" al leer referencias débiles.
func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
