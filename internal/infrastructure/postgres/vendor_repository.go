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

var _ repository.VendorRepository = (*VendorRepo)(nil)

// VendorRepo implementación del puerto VendorRepository sobre PostgreSQL (usable con pool o tx).
type VendorRepo struct {
	q Querier
}

// NewVendorRepository construye el adaptador de persistencia para proveedores.
func NewVendorRepository(q Querier) *VendorRepo {
	return &VendorRepo{q: q}
}

// Create persiste un nuevo proveedor.
func (r *VendorRepo) Create(vendor *entity.Vendor) error {
	query := `
		INSERT INTO vendors (id, name, contact_person, email, phone, address, gst_number, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		vendor.ID, vendor.Name, vendor.ContactPerson, vendor.Email, vendor.Phone,
		vendor.Address, vendor.GSTNumber, vendor.Notes, vendor.CreatedAt, vendor.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert vendor: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *VendorRepo) GetByID(id string) (*entity.Vendor, error) {
	query := `
		SELECT id, name, contact_person, email, phone, address, gst_number, notes, created_at, updated_at
		FROM vendors WHERE id = $1`
	var v entity.Vendor
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.Name, &v.ContactPerson, &v.Email, &v.Phone, &v.Address,
		&v.GSTNumber, &v.Notes, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendor: %w", err)
	}
	return &v, nil
}

// Update actualiza un proveedor existente.
func (r *VendorRepo) Update(vendor *entity.Vendor) error {
	query := `
		UPDATE vendors SET name = $2, contact_person = $3, email = $4, phone = $5,
			address = $6, gst_number = $7, notes = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		vendor.ID, vendor.Name, vendor.ContactPerson, vendor.Email, vendor.Phone,
		vendor.Address, vendor.GSTNumber, vendor.Notes, vendor.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update vendor: %w", err)
	}
	return nil
}

// Delete elimina un proveedor por ID. Las compras que lo referencian quedan
// con vendor_id NULL (ON DELETE SET NULL).
func (r *VendorRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM vendors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vendor: %w", err)
	}
	return nil
}

// List lista proveedores con paginación.
func (r *VendorRepo) List(limit, offset int) ([]*entity.Vendor, error) {
	query := `
		SELECT id, name, contact_person, email, phone, address, gst_number, notes, created_at, updated_at
		FROM vendors ORDER BY name ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	defer rows.Close()
	var list []*entity.Vendor
	for rows.Next() {
		var v entity.Vendor
		if err := rows.Scan(&v.ID, &v.Name, &v.ContactPerson, &v.Email, &v.Phone,
			&v.Address, &v.GSTNumber, &v.Notes, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan vendor: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
