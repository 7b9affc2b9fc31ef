package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/comercio-api/internal/application/audit"
	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/domain"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

// VendorUseCase CRUD de proveedores con auditoría.
type VendorUseCase struct {
	repo    repository.VendorRepository
	auditor *audit.Recorder
}

// NewVendorUseCase construye el caso de uso.
func NewVendorUseCase(repo repository.VendorRepository, auditor *audit.Recorder) *VendorUseCase {
	return &VendorUseCase{repo: repo, auditor: auditor}
}

// Create crea un proveedor.
func (uc *VendorUseCase) Create(userID, ipAddress string, in dto.CreateVendorRequest) (*dto.VendorResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	vendor := &entity.Vendor{
		ID:            uuid.New().String(),
		Name:          in.Name,
		ContactPerson: in.ContactPerson,
		Email:         in.Email,
		Phone:         in.Phone,
		Address:       in.Address,
		GSTNumber:     in.GSTNumber,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(vendor); err != nil {
		return nil, err
	}
	uc.auditor.Record(userID, ipAddress, audit.Entry{
		Action:     entity.AuditActionCreate,
		EntityType: "Vendor",
		EntityID:   vendor.ID,
		Changes:    audit.VendorSnapshot(vendor),
	})
	return toVendorResponse(vendor), nil
}

// GetByID obtiene un proveedor.
func (uc *VendorUseCase) GetByID(id string) (*dto.VendorResponse, error) {
	vendor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, domain.ErrNotFound
	}
	return toVendorResponse(vendor), nil
}

// Update actualización parcial.
func (uc *VendorUseCase) Update(userID, ipAddress, id string, in dto.UpdateVendorRequest) (*dto.VendorResponse, error) {
	vendor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		vendor.Name = *in.Name
	}
	if in.ContactPerson != nil {
		vendor.ContactPerson = *in.ContactPerson
	}
	if in.Email != nil {
		vendor.Email = *in.Email
	}
	if in.Phone != nil {
		vendor.Phone = *in.Phone
	}
	if in.Address != nil {
		vendor.Address = *in.Address
	}
	if in.GSTNumber != nil {
		vendor.GSTNumber = *in.GSTNumber
	}
	if in.Notes != nil {
		vendor.Notes = *in.Notes
	}
	vendor.UpdatedAt = time.Now()
	if err := uc.repo.Update(vendor); err != nil {
		return nil, err
	}
	uc.auditor.Record(userID, ipAddress, audit.Entry{
		Action:     entity.AuditActionUpdate,
		EntityType: "Vendor",
		EntityID:   vendor.ID,
		Changes:    audit.VendorSnapshot(vendor),
	})
	return toVendorResponse(vendor), nil
}

// Delete elimina un proveedor. Las compras históricas conservan la
// referencia débil (queda nula).
func (uc *VendorUseCase) Delete(userID, ipAddress, id string) error {
	vendor, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if vendor == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.auditor.Record(userID, ipAddress, audit.Entry{
		Action:     entity.AuditActionDelete,
		EntityType: "Vendor",
		EntityID:   id,
		Changes:    audit.VendorSnapshot(vendor),
	})
	return nil
}

// List lista proveedores.
func (uc *VendorUseCase) List(limit, offset int) ([]*dto.VendorResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.VendorResponse, 0, len(list))
	for _, v := range list {
		out = append(out, toVendorResponse(v))
	}
	return out, nil
}

func toVendorResponse(v *entity.Vendor) *dto.VendorResponse {
	return &dto.VendorResponse{
		ID:            v.ID,
		Name:          v.Name,
		ContactPerson: v.ContactPerson,
		Email:         v.Email,
		Phone:         v.Phone,
		Address:       v.Address,
		GSTNumber:     v.GSTNumber,
		Notes:         v.Notes,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}
