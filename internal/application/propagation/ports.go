package propagation

import (
	"context"

	"github.com/aslanalper2516/wmb-admin-api/internal/domain/entity"
)

// MethodLinker es el colaborador externo que asegura la asociación
// sucursal-método. Debe ser idempotente: asegurar un par ya asignado es un
// no-op correcto, así los pares fallidos se pueden reintentar sueltos.
type MethodLinker interface {
	EnsureLink(ctx context.Context, branchID, methodID string) error
}

// PriceStore es el colaborador externo de precios que consume el motor.
// El reemplazo es borrar-y-crear: no hay upsert en el contrato.
type PriceStore interface {
	FindByProductMethodBranch(ctx context.Context, productID, methodID, branchID string) (*entity.PriceRecord, error)
	Delete(ctx context.Context, id string) error
	Create(ctx context.Context, price *entity.PriceRecord) error
}
