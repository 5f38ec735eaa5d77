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

var _ repository.SalesMethodRepository = (*SalesMethodRepo)(nil)

// SalesMethodRepo implementación del puerto SalesMethodRepository sobre PostgreSQL.
type SalesMethodRepo struct {
	q Querier
}

// NewSalesMethodRepository construye el adaptador de persistencia para métodos de venta. Pasar pool o tx (Querier).
func NewSalesMethodRepository(q Querier) *SalesMethodRepo {
	return &SalesMethodRepo{q: q}
}

// Create persiste un nuevo método de venta.
func (r *SalesMethodRepo) Create(method *entity.SalesMethod) error {
	query := `
		INSERT INTO sales_methods (id, company_id, name, code, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		method.ID, method.CompanyID, method.Name, method.Code, method.Active,
		method.CreatedAt, method.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sales method: %w", err)
	}
	return nil
}

// GetByID obtiene un método de venta por ID.
func (r *SalesMethodRepo) GetByID(id string) (*entity.SalesMethod, error) {
	query := `
		SELECT id, company_id, name, code, active, created_at, updated_at
		FROM sales_methods WHERE id = $1`
	var m entity.SalesMethod
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.CompanyID, &m.Name, &m.Code, &m.Active, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sales method: %w", err)
	}
	return &m, nil
}

// GetByCompanyAndCode obtiene un método por empresa y código.
func (r *SalesMethodRepo) GetByCompanyAndCode(companyID, code string) (*entity.SalesMethod, error) {
	query := `
		SELECT id, company_id, name, code, active, created_at, updated_at
		FROM sales_methods WHERE company_id = $1 AND code = $2`
	var m entity.SalesMethod
	err := r.q.QueryRow(context.Background(), query, companyID, code).Scan(
		&m.ID, &m.CompanyID, &m.Name, &m.Code, &m.Active, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sales method by code: %w", err)
	}
	return &m, nil
}

// Update actualiza un método de venta existente.
func (r *SalesMethodRepo) Update(method *entity.SalesMethod) error {
	query := `
		UPDATE sales_methods SET name = $2, code = $3, active = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		method.ID, method.Name, method.Code, method.Active, method.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update sales method: %w", err)
	}
	return nil
}

// ListByCompany lista los métodos de venta de una empresa.
func (r *SalesMethodRepo) ListByCompany(companyID string) ([]*entity.SalesMethod, error) {
	query := `
		SELECT id, company_id, name, code, active, created_at, updated_at
		FROM sales_methods WHERE company_id = $1 ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list sales methods: %w", err)
	}
	defer rows.Close()

	var out []*entity.SalesMethod
	for rows.Next() {
		var m entity.SalesMethod
		if err := rows.Scan(&m.ID, &m.CompanyID, &m.Name, &m.Code, &m.Active, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan sales method: %w", err)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

// Delete elimina un método de venta por ID.
func (r *SalesMethodRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM sales_methods WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sales method: %w", err)
	}
	return nil
}
