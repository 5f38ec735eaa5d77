package repository

import "github.com/aslanalper2516/wmb-admin-api/internal/domain/entity"

// SalesMethodRepository define el puerto de persistencia para SalesMethod (DIP).
type SalesMethodRepository interface {
	Create(method *entity.SalesMethod) error
	GetByID(id string) (*entity.SalesMethod, error)
	GetByCompanyAndCode(companyID, code string) (*entity.SalesMethod, error)
	Update(method *entity.SalesMethod) error
	ListByCompany(companyID string) ([]*entity.SalesMethod, error)
	Delete(id string) error
}
