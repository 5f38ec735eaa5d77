package repository

import "github.com/aslanalper2516/wmb-admin-api/internal/domain/entity"

// RoleRepository define el puerto de persistencia para Role (DIP).
type RoleRepository interface {
	Create(role *entity.Role) error
	GetByID(id string) (*entity.Role, error)
	Update(role *entity.Role) error
	ListByCompany(companyID string) ([]*entity.Role, error)
	Delete(id string) error
}
