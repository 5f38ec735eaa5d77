package repository

import "github.com/aslanalper2516/wmb-admin-api/internal/domain/entity"

// IngredientUsageRepository define el puerto de persistencia para los usos de
// ingrediente (DIP). La detección de duplicados NO es responsabilidad del
// repositorio: se hace en memoria con recipe.FindDuplicateIngredientUsage
// antes de llamar a Create.
type IngredientUsageRepository interface {
	Create(usage *entity.IngredientUsage) error
	GetByID(id string) (*entity.IngredientUsage, error)
	Update(usage *entity.IngredientUsage) error
	ListByProduct(productID string) ([]*entity.IngredientUsage, error)
	Delete(id string) error
}
