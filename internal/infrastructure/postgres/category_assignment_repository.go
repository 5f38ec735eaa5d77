package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aslanalper2516/wmb-admin-api/internal/domain"
	"github.com/aslanalper2516/wmb-admin-api/internal/domain/entity"
	"github.com/aslanalper2516/wmb-admin-api/internal/domain/repository"
)

var _ repository.CategoryAssignmentRepository = (*CategoryAssignmentRepo)(nil)

// CategoryAssignmentRepo implementación del puerto CategoryAssignmentRepository
// sobre PostgreSQL. CategoryName y Active se desnormalizan con un JOIN a
// categories en cada lectura; la tabla solo guarda la colocación.
type CategoryAssignmentRepo struct {
	q Querier
}

// NewCategoryAssignmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryAssignmentRepository(q Querier) *CategoryAssignmentRepo {
	return &CategoryAssignmentRepo{q: q}
}

// Create persiste una nueva asignación. parent_id se guarda como NULL si viene vacío.
func (r *CategoryAssignmentRepo) Create(a *entity.CategoryAssignment) error {
	query := `
		INSERT INTO category_assignments (id, menu_id, category_id, parent_id, display_order, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.MenuID, a.CategoryID, a.ParentID, a.DisplayOrder, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert assignment: %w", err)
	}
	return nil
}

// GetByID obtiene una asignación por ID, con nombre y flag de la categoría.
func (r *CategoryAssignmentRepo) GetByID(id string) (*entity.CategoryAssignment, error) {
	query := `
		SELECT a.id, a.menu_id, a.category_id, COALESCE(a.parent_id, ''), a.display_order,
		       c.name, c.active, a.created_at, a.updated_at
		FROM category_assignments a
		JOIN categories c ON c.id = a.category_id
		WHERE a.id = $1`
	var a entity.CategoryAssignment
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.MenuID, &a.CategoryID, &a.ParentID, &a.DisplayOrder,
		&a.CategoryName, &a.Active, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get assignment: %w", err)
	}
	return &a, nil
}

// Update actualiza padre y orden de una asignación.
func (r *CategoryAssignmentRepo) Update(a *entity.CategoryAssignment) error {
	query := `
		UPDATE category_assignments SET parent_id = NULLIF($2, ''), display_order = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, a.ID, a.ParentID, a.DisplayOrder, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update assignment: %w", err)
	}
	return nil
}

// ListByMenu devuelve la colección plana de asignaciones del menú, con el
// nombre de categoría desnormalizado. El orden de la consulta es irrelevante:
// menutree reordena todo en memoria.
func (r *CategoryAssignmentRepo) ListByMenu(menuID string) ([]*entity.CategoryAssignment, error) {
	query := `
		SELECT a.id, a.menu_id, a.category_id, COALESCE(a.parent_id, ''), a.display_order,
		       c.name, c.active, a.created_at, a.updated_at
		FROM category_assignments a
		JOIN categories c ON c.id = a.category_id
		WHERE a.menu_id = $1`
	rows, err := r.q.Query(context.Background(), query, menuID)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	defer rows.Close()

	var out []*entity.CategoryAssignment
	for rows.Next() {
		var a entity.CategoryAssignment
		if err := rows.Scan(
			&a.ID, &a.MenuID, &a.CategoryID, &a.ParentID, &a.DisplayOrder,
			&a.CategoryName, &a.Active, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}

// Delete elimina una asignación. No toca a los hijos: sus parent_id quedan
// colgando y la siguiente lectura del árbol los degrada a raíz.
func (r *CategoryAssignmentRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM category_assignments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete assignment: %w", err)
	}
	return nil
}
