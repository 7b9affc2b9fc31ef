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

// BranchUseCase CRUD de sucursales con auditoría.
type BranchUseCase struct {
	repo    repository.BranchRepository
	auditor *audit.Recorder
}

// NewBranchUseCase construye el caso de uso.
func NewBranchUseCase(repo repository.BranchRepository, auditor *audit.Recorder) *BranchUseCase {
	return &BranchUseCase{repo: repo, auditor: auditor}
}

// Create crea una sucursal (nombre único).
func (uc *BranchUseCase) Create(userID, ipAddress string, in dto.CreateBranchRequest) (*dto.BranchResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByName(in.Name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	branch := &entity.Branch{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Location:  in.Location,
		Phone:     in.Phone,
		Email:     in.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(branch); err != nil {
		return nil, err
	}
	uc.auditor.Record(userID, ipAddress, audit.Entry{
		Action:     entity.AuditActionCreate,
		EntityType: "Branch",
		EntityID:   branch.ID,
		Changes:    audit.BranchSnapshot(branch),
	})
	return toBranchResponse(branch), nil
}

// GetByID obtiene una sucursal.
func (uc *BranchUseCase) GetByID(id string) (*dto.BranchResponse, error) {
	branch, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrNotFound
	}
	return toBranchResponse(branch), nil
}

// Update actualización parcial.
func (uc *BranchUseCase) Update(userID, ipAddress, id string, in dto.UpdateBranchRequest) (*dto.BranchResponse, error) {
	branch, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		branch.Name = *in.Name
	}
	if in.Location != nil {
		branch.Location = *in.Location
	}
	if in.Phone != nil {
		branch.Phone = *in.Phone
	}
	if in.Email != nil {
		branch.Email = *in.Email
	}
	branch.UpdatedAt = time.Now()
	if err := uc.repo.Update(branch); err != nil {
		return nil, err
	}
	uc.auditor.Record(userID, ipAddress, audit.Entry{
		Action:     entity.AuditActionUpdate,
		EntityType: "Branch",
		EntityID:   branch.ID,
		Changes:    audit.BranchSnapshot(branch),
	})
	return toBranchResponse(branch), nil
}

// Delete elimina una sucursal.
func (uc *BranchUseCase) Delete(userID, ipAddress, id string) error {
	branch, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if branch == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.auditor.Record(userID, ipAddress, audit.Entry{
		Action:     entity.AuditActionDelete,
		EntityType: "Branch",
		EntityID:   id,
		Changes:    audit.BranchSnapshot(branch),
	})
	return nil
}

// List lista sucursales.
func (uc *BranchUseCase) List(limit, offset int) ([]*dto.BranchResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.BranchResponse, 0, len(list))
	for _, b := range list {
		out = append(out, toBranchResponse(b))
	}
	return out, nil
}

func toBranchResponse(b *entity.Branch) *dto.BranchResponse {
	return &dto.BranchResponse{
		ID:        b.ID,
		Name:      b.Name,
		Location:  b.Location,
		Phone:     b.Phone,
		Email:     b.Email,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
