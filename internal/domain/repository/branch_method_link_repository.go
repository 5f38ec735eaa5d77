package repository

import (
	"context"

	"github.com/aslanalper2516/wmb-admin-api/internal/domain/entity"
)

// BranchMethodLinkRepository define el puerto de persistencia para la
// asociación sucursal-método de venta (DIP).
//
// EnsureLink es la operación idempotente que consume el motor de propagación:
// crea la asociación si no existe y no hace nada si ya existe. Lleva contexto
// porque el motor la lanza en paralelo, una por par (sucursal, método).
type BranchMethodLinkRepository interface {
	EnsureLink(ctx context.Context, branchID, methodID string) error
	Unassign(branchID, methodID string) error
	ListByBranch(branchID string) ([]*entity.BranchMethodLink, error)
	ListByBranches(branchIDs []string) ([]*entity.BranchMethodLink, error)
}
