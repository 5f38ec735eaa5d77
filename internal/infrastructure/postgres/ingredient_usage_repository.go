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

var _ repository.IngredientUsageRepository = (*IngredientUsageRepo)(nil)

// IngredientUsageRepo implementación del puerto IngredientUsageRepository
// sobre PostgreSQL. price es NUMERIC NULL y escanea a *decimal.Decimal vía el
// codec registrado en el pool.
type IngredientUsageRepo struct {
	q Querier
}

// NewIngredientUsageRepository construye el adaptador. Pasar pool o tx (Querier).
func NewIngredientUsageRepository(q Querier) *IngredientUsageRepo {
	return &IngredientUsageRepo{q: q}
}

// Create persiste un nuevo uso de ingrediente.
func (r *IngredientUsageRepo) Create(usage *entity.IngredientUsage) error {
	query := `
		INSERT INTO ingredient_usages (id, product_id, ingredient_id, branch_id, amount, amount_unit, price, price_unit, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		usage.ID, usage.ProductID, usage.IngredientID, usage.BranchID,
		usage.Amount, usage.AmountUnit, usage.Price, usage.PriceUnit,
		usage.CreatedAt, usage.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert usage: %w", err)
	}
	return nil
}

// GetByID obtiene un uso de ingrediente por ID.
func (r *IngredientUsageRepo) GetByID(id string) (*entity.IngredientUsage, error) {
	query := `
		SELECT id, product_id, ingredient_id, branch_id, amount, amount_unit, price, COALESCE(price_unit, ''), created_at, updated_at
		FROM ingredient_usages WHERE id = $1`
	var u entity.IngredientUsage
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&u.ID, &u.ProductID, &u.IngredientID, &u.BranchID, &u.Amount, &u.AmountUnit,
		&u.Price, &u.PriceUnit, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usage: %w", err)
	}
	return &u, nil
}

// Update actualiza un uso de ingrediente existente.
func (r *IngredientUsageRepo) Update(usage *entity.IngredientUsage) error {
	query := `
		UPDATE ingredient_usages SET branch_id = $2, amount = $3, amount_unit = $4, price = $5, price_unit = NULLIF($6, ''), updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		usage.ID, usage.BranchID, usage.Amount, usage.AmountUnit,
		usage.Price, usage.PriceUnit, usage.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update usage: %w", err)
	}
	return nil
}

// ListByProduct lista los usos de ingrediente de un producto. El guardia de
// duplicados de recetas recorre este conjunto completo antes de cada alta.
func (r *IngredientUsageRepo) ListByProduct(productID string) ([]*entity.IngredientUsage, error) {
	query := `
		SELECT id, product_id, ingredient_id, branch_id, amount, amount_unit, price, COALESCE(price_unit, ''), created_at, updated_at
		FROM ingredient_usages WHERE product_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list usages: %w", err)
	}
	defer rows.Close()

	var out []*entity.IngredientUsage
	for rows.Next() {
		var u entity.IngredientUsage
		if err := rows.Scan(
			&u.ID, &u.ProductID, &u.IngredientID, &u.BranchID, &u.Amount, &u.AmountUnit,
			&u.Price, &u.PriceUnit, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan usage: %w", err)
		}
		out = append(out, &u)
	}
	return out, rows.Err()
}

// Delete elimina un uso de ingrediente por ID.
func (r *IngredientUsageRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM ingredient_usages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete usage: %w", err)
	}
	return nil
}
