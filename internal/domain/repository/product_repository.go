package repository

import "github.com/aslanalper2516/wmb-admin-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error)
	ListByCategory(categoryID string) ([]*entity.Product, error)
	Delete(id string) error
}
