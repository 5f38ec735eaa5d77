package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/aslanalper2516/wmb-admin-api/internal/application/dto"
	"github.com/aslanalper2516/wmb-admin-api/internal/domain"
	"github.com/aslanalper2516/wmb-admin-api/internal/domain/entity"
	"github.com/aslanalper2516/wmb-admin-api/internal/domain/pricing"
	"github.com/aslanalper2516/wmb-admin-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos más el chequeo de
// completitud de precios. El chequeo corre sobre las colecciones en memoria
// de la empresa (decenas de registros): se recalcula en el listado, en la
// pantalla de precios y tras cada guardado de precio.
type ProductUseCase struct {
	repo       repository.ProductRepository
	branchRepo repository.BranchRepository
	linkRepo   repository.BranchMethodLinkRepository
	priceRepo  repository.PriceRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	branchRepo repository.BranchRepository,
	linkRepo repository.BranchMethodLinkRepository,
	priceRepo repository.PriceRepository,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, branchRepo: branchRepo, linkRepo: linkRepo, priceRepo: priceRepo}
}

// Create crea un nuevo producto.
func (uc *ProductUseCase) Create(companyID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		CategoryID:  in.Category.ID(),
		Name:        in.Name,
		Description: in.Description,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Category != nil {
		product.CategoryID = in.Category.ID()
	}
	if in.Active != nil {
		product.Active = *in.Active
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos por empresa con paginación. Con withCompleteness se
// anota cada producto con el indicador de completitud de precios (aviso no
// bloqueante en la lista de productos).
func (uc *ProductUseCase) List(companyID string, limit, offset int, withCompleteness bool) (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}

	var branches []*entity.Branch
	var linksByBranch map[string][]*entity.BranchMethodLink
	if withCompleteness && len(list) > 0 {
		branches, linksByBranch, err = uc.companyLinks(companyID)
		if err != nil {
			return nil, err
		}
	}

	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		item := *toProductResponse(p)
		if withCompleteness {
			prices, err := uc.priceRepo.ListByProduct(p.ID)
			if err != nil {
				return nil, err
			}
			complete := pricing.ProductComplete(p.ID, branches, linksByBranch, prices)
			item.PriceComplete = &complete
		}
		items = append(items, item)
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// Completeness evalúa la completitud de precios del producto, sucursal a
// sucursal y agregada. Una sucursal sin métodos se marca Skipped; si todas
// quedan saltadas el agregado es incompleto (ninguna sucursal puede vender).
func (uc *ProductUseCase) Completeness(productID string) (*dto.CompletenessResponse, error) {
	product, err := uc.repo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	branches, linksByBranch, err := uc.companyLinks(product.CompanyID)
	if err != nil {
		return nil, err
	}
	prices, err := uc.priceRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}

	out := &dto.CompletenessResponse{
		ProductID: productID,
		Complete:  pricing.ProductComplete(productID, branches, linksByBranch, prices),
		Branches:  make([]dto.BranchCompletenessResponse, 0, len(branches)),
	}
	for _, b := range branches {
		links := linksByBranch[b.ID]
		skipped := len(activeLinks(b.ID, links)) == 0
		out.Branches = append(out.Branches, dto.BranchCompletenessResponse{
			BranchID:   b.ID,
			BranchName: b.Name,
			Complete:   !skipped && pricing.BranchComplete(productID, b.ID, links, prices),
			Skipped:    skipped,
		})
	}
	return out, nil
}

// companyLinks carga fresco el conjunto de sucursales de la empresa y sus
// métodos asignados, agrupados por sucursal.
func (uc *ProductUseCase) companyLinks(companyID string) ([]*entity.Branch, map[string][]*entity.BranchMethodLink, error) {
	return companyBranchLinks(uc.branchRepo, uc.linkRepo, companyID)
}

func companyBranchLinks(branchRepo repository.BranchRepository, linkRepo repository.BranchMethodLinkRepository, companyID string) ([]*entity.Branch, map[string][]*entity.BranchMethodLink, error) {
	branches, err := branchRepo.ListByCompany(companyID)
	if err != nil {
		return nil, nil, err
	}
	ids := make([]string, 0, len(branches))
	for _, b := range branches {
		ids = append(ids, b.ID)
	}
	links, err := linkRepo.ListByBranches(ids)
	if err != nil {
		return nil, nil, err
	}
	byBranch := make(map[string][]*entity.BranchMethodLink, len(branches))
	for _, l := range links {
		byBranch[l.BranchID] = append(byBranch[l.BranchID], l)
	}
	return branches, byBranch, nil
}

func activeLinks(branchID string, links []*entity.BranchMethodLink) []*entity.BranchMethodLink {
	out := make([]*entity.BranchMethodLink, 0, len(links))
	for _, l := range links {
		if l.BranchID == branchID && l.Active {
			out = append(out, l)
		}
	}
	return out
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		CompanyID:   p.CompanyID,
		CategoryID:  p.CategoryID,
		Name:        p.Name,
		Description: p.Description,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
