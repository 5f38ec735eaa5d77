package repository

import (
	"context"

	"github.com/aslanalper2516/wmb-admin-api/internal/domain/entity"
)

// PriceRepository define el puerto de persistencia para PriceRecord (DIP).
//
// No hay upsert: el reemplazo de un precio es borrar-y-crear, tal como lo
// consume el motor de propagación (las tres operaciones con contexto se
// lanzan en paralelo, una secuencia por sucursal). La unicidad por
// (producto, método, sucursal) la garantiza la constraint de la tabla.
type PriceRepository interface {
	Create(ctx context.Context, price *entity.PriceRecord) error
	Delete(ctx context.Context, id string) error
	FindByProductMethodBranch(ctx context.Context, productID, methodID, branchID string) (*entity.PriceRecord, error)
	ListByProduct(productID string) ([]*entity.PriceRecord, error)
	ListByProductAndBranch(productID, branchID string) ([]*entity.PriceRecord, error)
}
