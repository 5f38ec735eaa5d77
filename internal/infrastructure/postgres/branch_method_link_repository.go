package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/aslanalper2516/wmb-admin-api/internal/domain/entity"
	"github.com/aslanalper2516/wmb-admin-api/internal/domain/repository"
)

var _ repository.BranchMethodLinkRepository = (*BranchMethodLinkRepo)(nil)

// BranchMethodLinkRepo implementación del puerto BranchMethodLinkRepository
// sobre PostgreSQL. La unicidad por (branch_id, method_id) la da la constraint
// de la tabla; EnsureLink se apoya en ella con ON CONFLICT DO NOTHING para ser
// idempotente bajo concurrencia.
type BranchMethodLinkRepo struct {
	q Querier
}

// NewBranchMethodLinkRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBranchMethodLinkRepository(q Querier) *BranchMethodLinkRepo {
	return &BranchMethodLinkRepo{q: q}
}

// EnsureLink crea la asociación si no existe; si ya existe no hace nada.
// El motor de propagación la lanza en paralelo, una por par (sucursal, método).
func (r *BranchMethodLinkRepo) EnsureLink(ctx context.Context, branchID, methodID string) error {
	query := `
		INSERT INTO branch_method_links (id, branch_id, method_id, active, created_at, updated_at)
		VALUES ($1, $2, $3, true, now(), now())
		ON CONFLICT (branch_id, method_id) DO NOTHING`
	_, err := r.q.Exec(ctx, query, uuid.New().String(), branchID, methodID)
	if err != nil {
		return fmt.Errorf("ensure link: %w", err)
	}
	return nil
}

// Unassign elimina la asociación sucursal-método.
func (r *BranchMethodLinkRepo) Unassign(branchID, methodID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM branch_method_links WHERE branch_id = $1 AND method_id = $2`,
		branchID, methodID,
	)
	if err != nil {
		return fmt.Errorf("unassign link: %w", err)
	}
	return nil
}

// ListByBranch lista las asociaciones de una sucursal.
func (r *BranchMethodLinkRepo) ListByBranch(branchID string) ([]*entity.BranchMethodLink, error) {
	query := `
		SELECT id, branch_id, method_id, active, created_at, updated_at
		FROM branch_method_links WHERE branch_id = $1`
	rows, err := r.q.Query(context.Background(), query, branchID)
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	defer rows.Close()
	return scanLinks(rows)
}

// ListByBranches lista las asociaciones de un conjunto de sucursales en una
// sola consulta (el chequeo de completitud las agrupa en memoria).
func (r *BranchMethodLinkRepo) ListByBranches(branchIDs []string) ([]*entity.BranchMethodLink, error) {
	if len(branchIDs) == 0 {
		return nil, nil
	}
	query := `
		SELECT id, branch_id, method_id, active, created_at, updated_at
		FROM branch_method_links WHERE branch_id = ANY($1)`
	rows, err := r.q.Query(context.Background(), query, branchIDs)
	if err != nil {
		return nil, fmt.Errorf("list links by branches: %w", err)
	}
	defer rows.Close()
	return scanLinks(rows)
}

func scanLinks(rows pgx.Rows) ([]*entity.BranchMethodLink, error) {
	var out []*entity.BranchMethodLink
	for rows.Next() {
		var l entity.BranchMethodLink
		if err := rows.Scan(&l.ID, &l.BranchID, &l.MethodID, &l.Active, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan link: %w", err)
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}
