package repository

import "github.com/aslanalper2516/wmb-admin-api/internal/domain/entity"

// BranchRepository define el puerto de persistencia para Branch (DIP).
// ListByCompany no pagina: el conjunto de sucursales de una empresa es
// pequeño y la derivación de hermanas necesita el conjunto completo y fresco
// en cada llamada.
type BranchRepository interface {
	Create(branch *entity.Branch) error
	GetByID(id string) (*entity.Branch, error)
	Update(branch *entity.Branch) error
	ListByCompany(companyID string) ([]*entity.Branch, error)
	Delete(id string) error
}
