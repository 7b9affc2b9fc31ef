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

// ProductUseCase CRUD de productos. Quantity no se toca aquí: el stock solo
// se mueve vía movimientos. Toda mutación se audita post-commit — la captura
// de auditoría es transversal, no exclusiva del motor de posteo.
type ProductUseCase struct {
	repo    repository.ProductRepository
	auditor *audit.Recorder
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, auditor *audit.Recorder) *ProductUseCase {
	return &ProductUseCase{repo: repo, auditor: auditor}
}

// Create crea un producto con stock 0.
func (uc *ProductUseCase) Create(userID, ipAddress string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.SKU == "" || in.Name == "" || in.Price.IsNegative() || in.CostPrice.IsNegative() || in.ReorderLevel < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetBySKU(in.SKU)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		SKU:          in.SKU,
		Name:         in.Name,
		Barcode:      in.Barcode,
		Description:  in.Description,
		Price:        in.Price,
		CostPrice:    in.CostPrice,
		Quantity:     0,
		ReorderLevel: in.ReorderLevel,
		BranchID:     in.BranchID,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	uc.auditor.Record(userID, ipAddress, audit.Entry{
		Action:     entity.AuditActionCreate,
		EntityType: "Product",
		EntityID:   product.ID,
		Changes:    audit.ProductSnapshot(product),
	})
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update actualización parcial. Quantity no es modificable por este camino.
func (uc *ProductUseCase) Update(userID, ipAddress, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Barcode != nil {
		product.Barcode = *in.Barcode
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.CostPrice != nil {
		if in.CostPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.CostPrice = *in.CostPrice
	}
	if in.ReorderLevel != nil {
		if *in.ReorderLevel < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.ReorderLevel = *in.ReorderLevel
	}
	if in.BranchID != nil {
		product.BranchID = *in.BranchID
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	uc.auditor.Record(userID, ipAddress, audit.Entry{
		Action:     entity.AuditActionUpdate,
		EntityType: "Product",
		EntityID:   product.ID,
		Changes:    audit.ProductSnapshot(product),
	})
	return toProductResponse(product), nil
}

// Delete elimina un producto. Las líneas y movimientos históricos que lo
// referencian conservan el snapshot del nombre y quedan con referencia nula.
func (uc *ProductUseCase) Delete(userID, ipAddress, id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.auditor.Record(userID, ipAddress, audit.Entry{
		Action:     entity.AuditActionDelete,
		EntityType: "Product",
		EntityID:   id,
		Changes:    audit.ProductSnapshot(product), // estado final antes del borrado
	})
	return nil
}

// List lista productos, opcionalmente filtrados por sucursal.
func (uc *ProductUseCase) List(branchID string, limit, offset int) ([]*dto.ProductResponse, error) {
	list, err := uc.repo.List(branchID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// ListLowStock productos en o por debajo del punto de reorden.
func (uc *ProductUseCase) ListLowStock(branchID string) ([]*dto.ProductResponse, error) {
	list, err := uc.repo.ListLowStock(branchID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:           p.ID,
		SKU:          p.SKU,
		Name:         p.Name,
		Barcode:      p.Barcode,
		Description:  p.Description,
		Price:        p.Price,
		CostPrice:    p.CostPrice,
		Quantity:     p.Quantity,
		ReorderLevel: p.ReorderLevel,
		BranchID:     p.BranchID,
		IsActive:     p.IsActive,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
