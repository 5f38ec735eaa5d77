package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/aslanalper2516/wmb-admin-api/internal/application/dto"
	"github.com/aslanalper2516/wmb-admin-api/internal/application/propagation"
	"github.com/aslanalper2516/wmb-admin-api/internal/domain"
	"github.com/aslanalper2516/wmb-admin-api/internal/domain/entity"
	"github.com/aslanalper2516/wmb-admin-api/internal/domain/pricing"
	"github.com/aslanalper2516/wmb-admin-api/internal/domain/repository"
)

// PriceUseCase casos de uso de precios: listar y fijar precios por canal y
// sucursal, y propagar un precio a sucursales hermanas. Tras cada escritura
// se recalcula la completitud para que la pantalla de precios la muestre al
// momento.
type PriceUseCase struct {
	repo        repository.PriceRepository
	productRepo repository.ProductRepository
	branchRepo  repository.BranchRepository
	linkRepo    repository.BranchMethodLinkRepository
	engine      *propagation.Engine
}

// NewPriceUseCase construye el caso de uso.
func NewPriceUseCase(
	repo repository.PriceRepository,
	productRepo repository.ProductRepository,
	branchRepo repository.BranchRepository,
	linkRepo repository.BranchMethodLinkRepository,
	engine *propagation.Engine,
) *PriceUseCase {
	return &PriceUseCase{repo: repo, productRepo: productRepo, branchRepo: branchRepo, linkRepo: linkRepo, engine: engine}
}

// List lista los precios de un producto, opcionalmente filtrados por sucursal,
// con la completitud agregada recalculada.
func (uc *PriceUseCase) List(productID, branchID string) (*dto.PriceListResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	var prices []*entity.PriceRecord
	if branchID != "" {
		prices, err = uc.repo.ListByProductAndBranch(productID, branchID)
	} else {
		prices, err = uc.repo.ListByProduct(productID)
	}
	if err != nil {
		return nil, err
	}

	out := &dto.PriceListResponse{Items: make([]dto.PriceResponse, 0, len(prices))}
	for _, p := range prices {
		out.Items = append(out.Items, *toPriceResponse(p))
	}

	complete, err := uc.completeness(product)
	if err != nil {
		return nil, err
	}
	out.Complete = &complete
	return out, nil
}

// Set fija el precio de un producto para un (método, sucursal). El reemplazo
// es borrar-si-existe y crear de nuevo, la misma secuencia que usa el motor
// de propagación. Devuelve la lista completa de precios del producto con la
// completitud ya recalculada.
func (uc *PriceUseCase) Set(ctx context.Context, productID string, in dto.CreatePriceRequest) (*dto.PriceListResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	methodID := in.Method.ID()
	branchID := in.Branch.ID()
	existing, err := uc.repo.FindByProductMethodBranch(ctx, productID, methodID, branchID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if err := uc.repo.Delete(ctx, existing.ID); err != nil {
			return nil, err
		}
	}
	now := time.Now()
	record := &entity.PriceRecord{
		ID:         uuid.New().String(),
		ProductID:  productID,
		MethodID:   methodID,
		BranchID:   branchID,
		Amount:     in.Amount,
		CurrencyID: in.CurrencyID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, record); err != nil {
		return nil, err
	}
	return uc.List(productID, "")
}

// Delete elimina un registro de precio.
func (uc *PriceUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// Propagate propaga un precio del producto a todas las sucursales hermanas de
// la sucursal de referencia. El conjunto de hermanas se deriva fresco en cada
// llamada. Fallo parcial devuelve el detalle itemizado; fallo total es error.
func (uc *PriceUseCase) Propagate(ctx context.Context, productID string, in dto.PropagatePriceRequest) (*dto.PropagationResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	reference, err := uc.branchRepo.GetByID(in.BranchID)
	if err != nil {
		return nil, err
	}
	if reference == nil {
		return nil, domain.ErrNotFound
	}
	all, err := uc.branchRepo.ListByCompany(reference.CompanyID)
	if err != nil {
		return nil, err
	}
	siblings := propagation.SiblingBranches(reference, all)

	res := uc.engine.PropagatePrice(ctx, siblings, productID, in.MethodID, in.Amount, in.CurrencyID)
	if res.AllFailed() {
		return nil, domain.ErrPropagationFailed
	}
	return toPropagationResponse(res), nil
}

func (uc *PriceUseCase) completeness(product *entity.Product) (bool, error) {
	branches, linksByBranch, err := companyBranchLinks(uc.branchRepo, uc.linkRepo, product.CompanyID)
	if err != nil {
		return false, err
	}
	prices, err := uc.repo.ListByProduct(product.ID)
	if err != nil {
		return false, err
	}
	return pricing.ProductComplete(product.ID, branches, linksByBranch, prices), nil
}

func toPriceResponse(p *entity.PriceRecord) *dto.PriceResponse {
	if p == nil {
		return nil
	}
	return &dto.PriceResponse{
		ID:         p.ID,
		ProductID:  p.ProductID,
		MethodID:   p.MethodID,
		BranchID:   p.BranchID,
		Amount:     p.Amount,
		CurrencyID: p.CurrencyID,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
