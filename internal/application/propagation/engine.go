// Package propagation implementa el motor de propagación entre sucursales:
// aplica la misma asignación de método de venta o el mismo precio a un
// conjunto de sucursales hermanas en una sola acción lógica.
//
// El lote es mejor-esfuerzo de forma explícita: cada par (sucursal, método)
// viaja en su propia petición, sin orden entre pares, sin rollback y sin
// límite de concurrencia. Un fallo se registra en el resultado y no aborta
// los pares hermanos; el que llama decide reintentar solo los fallidos.
package propagation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aslanalper2516/wmb-admin-api/internal/domain/entity"
	"github.com/aslanalper2516/wmb-admin-api/pkg/logger"
)

// Pair identifica una aplicación individual dentro del lote. BranchName se
// arrastra para que el aviso al usuario pueda nombrar la sucursal sin otra
// consulta.
type Pair struct {
	BranchID   string
	BranchName string
	MethodID   string
}

// Failure es un par fallido con su motivo.
type Failure struct {
	Pair
	Reason string
}

// BatchResult es el resultado agregado de un lote: pares aplicados y pares
// fallidos, sin excepción que aborte el conjunto.
type BatchResult struct {
	Applied  []Pair
	Failures []Failure
}

// AllFailed indica si el lote falló por completo (con al menos un par).
// El que llama lo convierte en error duro; el fallo parcial queda en aviso.
func (r BatchResult) AllFailed() bool {
	return len(r.Applied) == 0 && len(r.Failures) > 0
}

// Engine es el motor de propagación. Todas las escrituras externas salen por
// los puertos; el motor no toca estado compartido entre goroutines salvo el
// canal de resultados.
type Engine struct {
	links  MethodLinker
	prices PriceStore
	log    *logger.Logger
}

// NewEngine construye el motor.
func NewEngine(links MethodLinker, prices PriceStore, log *logger.Logger) *Engine {
	return &Engine{links: links, prices: prices, log: log.Component("propagation")}
}

// SiblingBranches deriva el conjunto de sucursales hermanas de reference:
// todas las de su misma empresa, incluida ella. Es un filtro de igualdad
// sencillo; se recalcula fresco en cada propagación porque la pertenencia
// puede cambiar entre llamadas, así que nadie debe cachear el resultado.
func SiblingBranches(reference *entity.Branch, all []*entity.Branch) []*entity.Branch {
	if reference == nil {
		return nil
	}
	out := make([]*entity.Branch, 0, len(all))
	for _, b := range all {
		if b.CompanyID == reference.CompanyID {
			out = append(out, b)
		}
	}
	return out
}

type pairResult struct {
	pair Pair
	err  error
}

// PropagateSalesMethods asegura la asignación de cada método en cada sucursal:
// un EnsureLink independiente por par, todos a la vez, esperar a todos.
// No hay cancelación a mitad de lote: una vez lanzadas, todas las peticiones
// corren hasta terminar o fallar.
func (e *Engine) PropagateSalesMethods(ctx context.Context, branches []*entity.Branch, methodIDs []string) BatchResult {
	total := len(branches) * len(methodIDs)
	if total == 0 {
		return BatchResult{}
	}

	ch := make(chan pairResult, total)
	for _, b := range branches {
		for _, m := range methodIDs {
			go func(b *entity.Branch, methodID string) {
				err := e.links.EnsureLink(ctx, b.ID, methodID)
				ch <- pairResult{pair: Pair{BranchID: b.ID, BranchName: b.Name, MethodID: methodID}, err: err}
			}(b, m)
		}
	}
	return e.collect(ch, total)
}

// PropagatePrice aplica el mismo precio (método, importe, moneda) del producto
// a cada sucursal. El "asegurar" de precios es borrar-si-existe y crear de
// nuevo, porque los precios deben ser reemplazables; si el borrado va bien y
// la creación falla, el par se registra como fallido y NO se restaura el
// registro borrado: se avisa, no se autorecupera.
func (e *Engine) PropagatePrice(ctx context.Context, branches []*entity.Branch, productID, methodID string, amount decimal.Decimal, currencyID string) BatchResult {
	if len(branches) == 0 {
		return BatchResult{}
	}

	ch := make(chan pairResult, len(branches))
	for _, b := range branches {
		go func(b *entity.Branch) {
			err := e.replacePrice(ctx, b.ID, productID, methodID, amount, currencyID)
			ch <- pairResult{pair: Pair{BranchID: b.ID, BranchName: b.Name, MethodID: methodID}, err: err}
		}(b)
	}
	return e.collect(ch, len(branches))
}

// replacePrice ejecuta la secuencia borrar-crear de una sucursal. Entre el
// borrado y la creación hay una ventana sin precio visible para lectores
// concurrentes; el modelo de consistencia la tolera (last-write-wins en la
// capa de persistencia).
func (e *Engine) replacePrice(ctx context.Context, branchID, productID, methodID string, amount decimal.Decimal, currencyID string) error {
	existing, err := e.prices.FindByProductMethodBranch(ctx, productID, methodID, branchID)
	if err != nil {
		return err
	}
	if existing != nil {
		if err := e.prices.Delete(ctx, existing.ID); err != nil {
			return err
		}
	}
	now := time.Now()
	return e.prices.Create(ctx, &entity.PriceRecord{
		ID:         uuid.New().String(),
		ProductID:  productID,
		MethodID:   methodID,
		BranchID:   branchID,
		Amount:     amount,
		CurrencyID: currencyID,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
}

// collect espera los total resultados y los agrega. El canal tiene capacidad
// para el lote completo, así que ninguna goroutine queda bloqueada aunque el
// consumidor tarde.
func (e *Engine) collect(ch chan pairResult, total int) BatchResult {
	var res BatchResult
	for i := 0; i < total; i++ {
		r := <-ch
		if r.err != nil {
			e.log.Warn().
				Str("branch_id", r.pair.BranchID).
				Str("method_id", r.pair.MethodID).
				Err(r.err).
				Msg("par de propagación fallido")
			res.Failures = append(res.Failures, Failure{Pair: r.pair, Reason: r.err.Error()})
			continue
		}
		res.Applied = append(res.Applied, r.pair)
	}
	return res
}
