package repository

import "github.com/aslanalper2516/wmb-admin-api/internal/domain/entity"

// IngredientRepository define el puerto de persistencia para Ingredient (DIP).
type IngredientRepository interface {
	Create(ingredient *entity.Ingredient) error
	GetByID(id string) (*entity.Ingredient, error)
	Update(ingredient *entity.Ingredient) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Ingredient, error)
	Delete(id string) error
}
