package dto

import "time"

// CreateBranchRequest alta de sucursal.
type CreateBranchRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

// UpdateBranchRequest actualización parcial de sucursal.
type UpdateBranchRequest struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
}

// BranchResponse sucursal serializada.
type BranchResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
