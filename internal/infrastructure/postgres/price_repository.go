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

var _ repository.PriceRepository = (*PriceRepo)(nil)

// PriceRepo implementación del puerto PriceRepository sobre PostgreSQL.
// amount es NUMERIC y escanea a decimal.Decimal vía el codec registrado en el
// pool. La unicidad por (product_id, method_id, branch_id) es constraint de la
// tabla; el reemplazo borrar-y-crear del motor de propagación se apoya en ella.
type PriceRepo struct {
	q Querier
}

// NewPriceRepository construye el adaptador de persistencia para precios. Pasar pool o tx (Querier).
func NewPriceRepository(q Querier) *PriceRepo {
	return &PriceRepo{q: q}
}

// Create persiste un registro de precio.
func (r *PriceRepo) Create(ctx context.Context, price *entity.PriceRecord) error {
	query := `
		INSERT INTO price_records (id, product_id, method_id, branch_id, amount, currency_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8)`
	_, err := r.q.Exec(ctx, query,
		price.ID, price.ProductID, price.MethodID, price.BranchID,
		price.Amount, price.CurrencyID, price.CreatedAt, price.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert price: %w", err)
	}
	return nil
}

// Delete elimina un registro de precio por ID.
func (r *PriceRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM price_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete price: %w", err)
	}
	return nil
}

// FindByProductMethodBranch busca el precio vigente de la tupla, nil si no hay.
func (r *PriceRepo) FindByProductMethodBranch(ctx context.Context, productID, methodID, branchID string) (*entity.PriceRecord, error) {
	query := `
		SELECT id, product_id, method_id, branch_id, amount, COALESCE(currency_id, ''), created_at, updated_at
		FROM price_records WHERE product_id = $1 AND method_id = $2 AND branch_id = $3`
	var p entity.PriceRecord
	err := r.q.QueryRow(ctx, query, productID, methodID, branchID).Scan(
		&p.ID, &p.ProductID, &p.MethodID, &p.BranchID, &p.Amount, &p.CurrencyID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find price: %w", err)
	}
	return &p, nil
}

// ListByProduct lista todos los precios de un producto.
func (r *PriceRepo) ListByProduct(productID string) ([]*entity.PriceRecord, error) {
	query := `
		SELECT id, product_id, method_id, branch_id, amount, COALESCE(currency_id, ''), created_at, updated_at
		FROM price_records WHERE product_id = $1`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list prices: %w", err)
	}
	defer rows.Close()
	return scanPrices(rows)
}

// ListByProductAndBranch lista los precios de un producto en una sucursal.
func (r *PriceRepo) ListByProductAndBranch(productID, branchID string) ([]*entity.PriceRecord, error) {
	query := `
		SELECT id, product_id, method_id, branch_id, amount, COALESCE(currency_id, ''), created_at, updated_at
		FROM price_records WHERE product_id = $1 AND branch_id = $2`
	rows, err := r.q.Query(context.Background(), query, productID, branchID)
	if err != nil {
		return nil, fmt.Errorf("list prices by branch: %w", err)
	}
	defer rows.Close()
	return scanPrices(rows)
}

func scanPrices(rows pgx.Rows) ([]*entity.PriceRecord, error) {
	var out []*entity.PriceRecord
	for rows.Next() {
		var p entity.PriceRecord
		if err := rows.Scan(&p.ID, &p.ProductID, &p.MethodID, &p.BranchID, &p.Amount, &p.CurrencyID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan price: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}
