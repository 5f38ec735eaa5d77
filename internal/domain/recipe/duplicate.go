// Package recipe contiene los servicios de dominio de recetas (usos de
// ingredientes por producto y sucursal).
package recipe

import (
	"github.com/shopspring/decimal"

	"github.com/aslanalper2516/wmb-admin-api/internal/domain/entity"
)

// FindDuplicateIngredientUsage busca en existing un registro equivalente al
// candidato. Dos usos son duplicados si coinciden en la tupla completa:
// sucursal, ingrediente, cantidad, unidad de cantidad, precio y moneda del
// precio. Basta con que un campo difiera para que no haya duplicado.
//
// Devuelve el registro en conflicto (para que la UI lo nombre en el mensaje
// de rechazo) o nil. Función pura, sin I/O; se aplica antes de cada create.
func FindDuplicateIngredientUsage(candidate *entity.IngredientUsage, existing []*entity.IngredientUsage) *entity.IngredientUsage {
	if candidate == nil {
		return nil
	}
	for _, e := range existing {
		if e == nil {
			continue
		}
		if e.BranchID != candidate.BranchID ||
			e.IngredientID != candidate.IngredientID ||
			!e.Amount.Equal(candidate.Amount) ||
			e.AmountUnit != candidate.AmountUnit ||
			e.PriceUnit != candidate.PriceUnit {
			continue
		}
		if !samePrice(e.Price, candidate.Price) {
			continue
		}
		return e
	}
	return nil
}

// samePrice compara los precios opcionales: iguales si ambos son nil o si
// ambos existen con el mismo valor decimal.
func samePrice(a, b *decimal.Decimal) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}
