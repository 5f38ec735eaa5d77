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

var _ repository.IngredientRepository = (*IngredientRepo)(nil)

// IngredientRepo implementación del puerto IngredientRepository sobre PostgreSQL.
type IngredientRepo struct {
	q Querier
}

// NewIngredientRepository construye el adaptador de persistencia para ingredientes. Pasar pool o tx (Querier).
func NewIngredientRepository(q Querier) *IngredientRepo {
	return &IngredientRepo{q: q}
}

// Create persiste un nuevo ingrediente.
func (r *IngredientRepo) Create(ingredient *entity.Ingredient) error {
	query := `
		INSERT INTO ingredients (id, company_id, name, default_unit, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		ingredient.ID, ingredient.CompanyID, ingredient.Name, ingredient.DefaultUnit,
		ingredient.Active, ingredient.CreatedAt, ingredient.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert ingredient: %w", err)
	}
	return nil
}

// GetByID obtiene un ingrediente por ID.
func (r *IngredientRepo) GetByID(id string) (*entity.Ingredient, error) {
	query := `
		SELECT id, company_id, name, default_unit, active, created_at, updated_at
		FROM ingredients WHERE id = $1`
	var i entity.Ingredient
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&i.ID, &i.CompanyID, &i.Name, &i.DefaultUnit, &i.Active, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ingredient: %w", err)
	}
	return &i, nil
}

// Update actualiza un ingrediente existente.
func (r *IngredientRepo) Update(ingredient *entity.Ingredient) error {
	query := `
		UPDATE ingredients SET name = $2, default_unit = $3, active = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		ingredient.ID, ingredient.Name, ingredient.DefaultUnit, ingredient.Active, ingredient.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update ingredient: %w", err)
	}
	return nil
}

// ListByCompany lista ingredientes por empresa con paginación.
func (r *IngredientRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Ingredient, error) {
	query := `
		SELECT id, company_id, name, default_unit, active, created_at, updated_at
		FROM ingredients WHERE company_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	defer rows.Close()

	var out []*entity.Ingredient
	for rows.Next() {
		var i entity.Ingredient
		if err := rows.Scan(&i.ID, &i.CompanyID, &i.Name, &i.DefaultUnit, &i.Active, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		out = append(out, &i)
	}
	return out, rows.Err()
}

// Delete elimina un ingrediente por ID.
func (r *IngredientRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM ingredients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ingredient: %w", err)
	}
	return nil
}
