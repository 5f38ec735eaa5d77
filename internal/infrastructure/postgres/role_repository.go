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

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación del puerto RoleRepository sobre PostgreSQL.
// permissions es text[] y escanea directo a []string.
type RoleRepo struct {
	q Querier
}

// NewRoleRepository construye el adaptador de persistencia para roles. Pasar pool o tx (Querier).
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

// Create persiste un nuevo rol.
func (r *RoleRepo) Create(role *entity.Role) error {
	query := `
		INSERT INTO roles (id, company_id, name, permissions, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		role.ID, role.CompanyID, role.Name, role.Permissions, role.CreatedAt, role.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert role: %w", err)
	}
	return nil
}

// GetByID obtiene un rol por ID.
func (r *RoleRepo) GetByID(id string) (*entity.Role, error) {
	query := `
		SELECT id, company_id, name, permissions, created_at, updated_at
		FROM roles WHERE id = $1`
	var role entity.Role
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&role.ID, &role.CompanyID, &role.Name, &role.Permissions, &role.CreatedAt, &role.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	return &role, nil
}

// Update actualiza un rol existente.
func (r *RoleRepo) Update(role *entity.Role) error {
	query := `
		UPDATE roles SET name = $2, permissions = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		role.ID, role.Name, role.Permissions, role.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update role: %w", err)
	}
	return nil
}

// ListByCompany lista los roles de una empresa.
func (r *RoleRepo) ListByCompany(companyID string) ([]*entity.Role, error) {
	query := `
		SELECT id, company_id, name, permissions, created_at, updated_at
		FROM roles WHERE company_id = $1 ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()

	var out []*entity.Role
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.CompanyID, &role.Name, &role.Permissions, &role.CreatedAt, &role.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		out = append(out, &role)
	}
	return out, rows.Err()
}

// Delete elimina un rol por ID.
func (r *RoleRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete role: %w", err)
	}
	return nil
}
