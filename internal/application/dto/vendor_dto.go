package dto

import "time"

// CreateVendorRequest alta de proveedor.
type CreateVendorRequest struct {
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	GSTNumber     string `json:"gst_number"`
	Notes         string `json:"notes"`
}

// UpdateVendorRequest actualización parcial de proveedor.
type UpdateVendorRequest struct {
	Name          *string `json:"name"`
	ContactPerson *string `json:"contact_person"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	GSTNumber     *string `json:"gst_number"`
	Notes         *string `json:"notes"`
}

// VendorResponse proveedor serializado.
type VendorResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contact_person,omitempty"`
	Email         string    `json:"email,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Address       string    `json:"address,omitempty"`
	GSTNumber     string    `json:"gst_number,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
