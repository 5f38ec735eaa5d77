package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aslanalper2516/wmb-admin-api/internal/domain/entity"
	"github.com/aslanalper2516/wmb-admin-api/internal/domain/repository"
)

var _ repository.CurrencyRepository = (*CurrencyRepo)(nil)

// CurrencyRepo implementación del puerto CurrencyRepository sobre PostgreSQL.
// El catálogo es de solo lectura; se siembra por migración.
type CurrencyRepo struct {
	q Querier
}

// NewCurrencyRepository construye el adaptador del catálogo de monedas. Pasar pool o tx (Querier).
func NewCurrencyRepository(q Querier) *CurrencyRepo {
	return &CurrencyRepo{q: q}
}

// GetByID obtiene una moneda por ID.
func (r *CurrencyRepo) GetByID(id string) (*entity.CurrencyUnit, error) {
	query := `SELECT id, code, symbol, name FROM currency_units WHERE id = $1`
	var c entity.CurrencyUnit
	err := r.q.QueryRow(context.Background(), query, id).Scan(&c.ID, &c.Code, &c.Symbol, &c.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get currency: %w", err)
	}
	return &c, nil
}

// List devuelve el catálogo completo.
func (r *CurrencyRepo) List() ([]*entity.CurrencyUnit, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, code, symbol, name FROM currency_units ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("list currencies: %w", err)
	}
	defer rows.Close()

	var out []*entity.CurrencyUnit
	for rows.Next() {
		var c entity.CurrencyUnit
		if err := rows.Scan(&c.ID, &c.Code, &c.Symbol, &c.Name); err != nil {
			return nil, fmt.Errorf("scan currency: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}
