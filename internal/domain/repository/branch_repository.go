package repository

import "github.com/jhoicas/comercio-api/internal/domain/entity"

// BranchRepository define el puerto de persistencia para sucursales.
type BranchRepository interface {
	Create(branch *entity.Branch) error
	GetByID(id string) (*entity.Branch, error)
	GetByName(name string) (*entity.Branch, error)
	Update(branch *entity.Branch) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.Branch, error)
}
