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

var _ repository.MenuRepository = (*MenuRepo)(nil)

// MenuRepo implementación del puerto MenuRepository sobre PostgreSQL.
type MenuRepo struct {
	q Querier
}

// NewMenuRepository construye el adaptador de persistencia para menús. Pasar pool o tx (Querier).
func NewMenuRepository(q Querier) *MenuRepo {
	return &MenuRepo{q: q}
}

// Create persiste un nuevo menú.
func (r *MenuRepo) Create(menu *entity.Menu) error {
	query := `
		INSERT INTO menus (id, branch_id, name, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		menu.ID, menu.BranchID, menu.Name, menu.Active, menu.CreatedAt, menu.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert menu: %w", err)
	}
	return nil
}

// GetByID obtiene un menú por ID.
func (r *MenuRepo) GetByID(id string) (*entity.Menu, error) {
	query := `
		SELECT id, branch_id, name, active, created_at, updated_at
		FROM menus WHERE id = $1`
	var m entity.Menu
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.BranchID, &m.Name, &m.Active, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get menu: %w", err)
	}
	return &m, nil
}

// Update actualiza un menú existente.
func (r *MenuRepo) Update(menu *entity.Menu) error {
	query := `
		UPDATE menus SET name = $2, active = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, menu.ID, menu.Name, menu.Active, menu.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update menu: %w", err)
	}
	return nil
}

// ListByBranch lista los menús de una sucursal.
func (r *MenuRepo) ListByBranch(branchID string) ([]*entity.Menu, error) {
	query := `
		SELECT id, branch_id, name, active, created_at, updated_at
		FROM menus WHERE branch_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, branchID)
	if err != nil {
		return nil, fmt.Errorf("list menus: %w", err)
	}
	defer rows.Close()

	var out []*entity.Menu
	for rows.Next() {
		var m entity.Menu
		if err := rows.Scan(&m.ID, &m.BranchID, &m.Name, &m.Active, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan menu: %w", err)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

// Delete elimina un menú por ID. Las asignaciones cuelgan por FK con ON DELETE CASCADE.
func (r *MenuRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM menus WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete menu: %w", err)
	}
	return nil
}
