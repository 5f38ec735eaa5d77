package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aslanalper2516/wmb-admin-api/internal/application/dto"
	"github.com/aslanalper2516/wmb-admin-api/internal/domain"
	"github.com/aslanalper2516/wmb-admin-api/internal/domain/entity"
	"github.com/aslanalper2516/wmb-admin-api/internal/domain/recipe"
	"github.com/aslanalper2516/wmb-admin-api/internal/domain/repository"
)

// IngredientUseCase casos de uso de ingredientes y de usos de ingrediente por
// producto. El guardia de duplicados de recetas corre aquí, antes de cada
// escritura: la tupla completa (sucursal, ingrediente, cantidad, unidad,
// precio, moneda) no puede repetirse dentro de un producto.
type IngredientUseCase struct {
	repo      repository.IngredientRepository
	usageRepo repository.IngredientUsageRepository
}

// NewIngredientUseCase construye el caso de uso.
func NewIngredientUseCase(repo repository.IngredientRepository, usageRepo repository.IngredientUsageRepository) *IngredientUseCase {
	return &IngredientUseCase{repo: repo, usageRepo: usageRepo}
}

// Create crea un nuevo ingrediente.
func (uc *IngredientUseCase) Create(companyID string, in dto.CreateIngredientRequest) (*dto.IngredientResponse, error) {
	now := time.Now()
	ingredient := &entity.Ingredient{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Name:        in.Name,
		DefaultUnit: in.DefaultUnit,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ingredient); err != nil {
		return nil, err
	}
	return toIngredientResponse(ingredient), nil
}

// GetByID obtiene un ingrediente por ID.
func (uc *IngredientUseCase) GetByID(id string) (*dto.IngredientResponse, error) {
	ingredient, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ingredient == nil {
		return nil, nil
	}
	return toIngredientResponse(ingredient), nil
}

// Update actualiza un ingrediente.
func (uc *IngredientUseCase) Update(id string, in dto.UpdateIngredientRequest) (*dto.IngredientResponse, error) {
	ingredient, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ingredient == nil {
		return nil, nil
	}
	if in.Name != nil {
		ingredient.Name = *in.Name
	}
	if in.DefaultUnit != nil {
		ingredient.DefaultUnit = *in.DefaultUnit
	}
	if in.Active != nil {
		ingredient.Active = *in.Active
	}
	ingredient.UpdatedAt = time.Now()
	if err := uc.repo.Update(ingredient); err != nil {
		return nil, err
	}
	return toIngredientResponse(ingredient), nil
}

// List lista ingredientes por empresa con paginación.
func (uc *IngredientUseCase) List(companyID string, limit, offset int) (*dto.IngredientListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.IngredientResponse, 0, len(list))
	for _, i := range list {
		items = append(items, *toIngredientResponse(i))
	}
	return &dto.IngredientListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un ingrediente por ID.
func (uc *IngredientUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// CreateUsage registra el uso de un ingrediente en un producto. Si ya existe
// un uso con la tupla completa idéntica se rechaza con ErrDuplicate y el
// registro en conflicto queda nombrado en el error.
func (uc *IngredientUseCase) CreateUsage(productID string, in dto.CreateUsageRequest) (*dto.UsageResponse, error) {
	ingredient, err := uc.repo.GetByID(in.Ingredient.ID())
	if err != nil {
		return nil, err
	}
	if ingredient == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	usage := &entity.IngredientUsage{
		ID:           uuid.New().String(),
		ProductID:    productID,
		IngredientID: ingredient.ID,
		BranchID:     in.Branch.ID(),
		Amount:       in.Amount,
		AmountUnit:   in.AmountUnit,
		Price:        in.Price,
		PriceUnit:    in.PriceUnit,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.rejectDuplicate(usage, ""); err != nil {
		return nil, err
	}
	if err := uc.usageRepo.Create(usage); err != nil {
		return nil, err
	}
	return toUsageResponse(usage), nil
}

// UpdateUsage modifica un uso de ingrediente. El resultado de la edición pasa
// por el mismo guardia de duplicados que la creación, excluyendo el propio
// registro.
func (uc *IngredientUseCase) UpdateUsage(id string, in dto.UpdateUsageRequest) (*dto.UsageResponse, error) {
	usage, err := uc.usageRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if usage == nil {
		return nil, nil
	}
	if in.Branch != nil {
		usage.BranchID = in.Branch.ID()
	}
	if in.Amount != nil {
		usage.Amount = *in.Amount
	}
	if in.AmountUnit != nil {
		usage.AmountUnit = *in.AmountUnit
	}
	if in.ClearPrice {
		usage.Price = nil
		usage.PriceUnit = ""
	} else {
		if in.Price != nil {
			usage.Price = in.Price
		}
		if in.PriceUnit != nil {
			usage.PriceUnit = *in.PriceUnit
		}
	}
	if err := uc.rejectDuplicate(usage, usage.ID); err != nil {
		return nil, err
	}
	usage.UpdatedAt = time.Now()
	if err := uc.usageRepo.Update(usage); err != nil {
		return nil, err
	}
	return toUsageResponse(usage), nil
}

// ListUsages lista los usos de ingrediente de un producto.
func (uc *IngredientUseCase) ListUsages(productID string) (*dto.UsageListResponse, error) {
	list, err := uc.usageRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UsageResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUsageResponse(u))
	}
	return &dto.UsageListResponse{Items: items}, nil
}

// DeleteUsage elimina un uso de ingrediente.
func (uc *IngredientUseCase) DeleteUsage(id string) error {
	return uc.usageRepo.Delete(id)
}

func (uc *IngredientUseCase) rejectDuplicate(candidate *entity.IngredientUsage, excludeID string) error {
	existing, err := uc.usageRepo.ListByProduct(candidate.ProductID)
	if err != nil {
		return err
	}
	if excludeID != "" {
		filtered := existing[:0]
		for _, e := range existing {
			if e.ID != excludeID {
				filtered = append(filtered, e)
			}
		}
		existing = filtered
	}
	if dup := recipe.FindDuplicateIngredientUsage(candidate, existing); dup != nil {
		return fmt.Errorf("%w: uso idéntico ya registrado (id %s)", domain.ErrDuplicate, dup.ID)
	}
	return nil
}

func toIngredientResponse(i *entity.Ingredient) *dto.IngredientResponse {
	if i == nil {
		return nil
	}
	return &dto.IngredientResponse{
		ID:          i.ID,
		CompanyID:   i.CompanyID,
		Name:        i.Name,
		DefaultUnit: i.DefaultUnit,
		Active:      i.Active,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

func toUsageResponse(u *entity.IngredientUsage) *dto.UsageResponse {
	if u == nil {
		return nil
	}
	return &dto.UsageResponse{
		ID:           u.ID,
		ProductID:    u.ProductID,
		IngredientID: u.IngredientID,
		BranchID:     u.BranchID,
		Amount:       u.Amount,
		AmountUnit:   u.AmountUnit,
		Price:        u.Price,
		PriceUnit:    u.PriceUnit,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
