package repository

import "github.com/aslanalper2516/wmb-admin-api/internal/domain/entity"

// MenuRepository define el puerto de persistencia para Menu (DIP).
type MenuRepository interface {
	Create(menu *entity.Menu) error
	GetByID(id string) (*entity.Menu, error)
	Update(menu *entity.Menu) error
	ListByBranch(branchID string) ([]*entity.Menu, error)
	Delete(id string) error
}
