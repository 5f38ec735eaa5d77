package repository

import "github.com/aslanalper2516/wmb-admin-api/internal/domain/entity"

// CategoryAssignmentRepository define el puerto de persistencia para las
// asignaciones de categoría dentro de un menú (DIP).
// ListByMenu devuelve la colección plana con el nombre de categoría ya
// desnormalizado; la reconstrucción del árbol es trabajo de menutree, no del
// repositorio.
type CategoryAssignmentRepository interface {
	Create(assignment *entity.CategoryAssignment) error
	GetByID(id string) (*entity.CategoryAssignment, error)
	Update(assignment *entity.CategoryAssignment) error
	ListByMenu(menuID string) ([]*entity.CategoryAssignment, error)
	Delete(id string) error
}
