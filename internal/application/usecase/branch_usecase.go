package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/aslanalper2516/wmb-admin-api/internal/application/dto"
	"github.com/aslanalper2516/wmb-admin-api/internal/application/propagation"
	"github.com/aslanalper2516/wmb-admin-api/internal/domain"
	"github.com/aslanalper2516/wmb-admin-api/internal/domain/entity"
	"github.com/aslanalper2516/wmb-admin-api/internal/domain/repository"
)

// BranchUseCase casos de uso de sucursales: CRUD, asignación explícita de
// métodos de venta y propagación a sucursales hermanas.
type BranchUseCase struct {
	repo     repository.BranchRepository
	linkRepo repository.BranchMethodLinkRepository
	engine   *propagation.Engine
}

// NewBranchUseCase construye el caso de uso.
func NewBranchUseCase(repo repository.BranchRepository, linkRepo repository.BranchMethodLinkRepository, engine *propagation.Engine) *BranchUseCase {
	return &BranchUseCase{repo: repo, linkRepo: linkRepo, engine: engine}
}

// Create crea una nueva sucursal.
func (uc *BranchUseCase) Create(companyID string, in dto.CreateBranchRequest) (*dto.BranchResponse, error) {
	now := time.Now()
	branch := &entity.Branch{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(branch); err != nil {
		return nil, err
	}
	return toBranchResponse(branch), nil
}

// GetByID obtiene una sucursal por ID.
func (uc *BranchUseCase) GetByID(id string) (*dto.BranchResponse, error) {
	branch, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, nil
	}
	return toBranchResponse(branch), nil
}

// Update actualiza una sucursal.
func (uc *BranchUseCase) Update(id string, in dto.UpdateBranchRequest) (*dto.BranchResponse, error) {
	branch, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, nil
	}
	if in.Name != nil {
		branch.Name = *in.Name
	}
	if in.Address != nil {
		branch.Address = *in.Address
	}
	if in.Phone != nil {
		branch.Phone = *in.Phone
	}
	if in.Active != nil {
		branch.Active = *in.Active
	}
	branch.UpdatedAt = time.Now()
	if err := uc.repo.Update(branch); err != nil {
		return nil, err
	}
	return toBranchResponse(branch), nil
}

// List lista las sucursales de la empresa.
func (uc *BranchUseCase) List(companyID string) (*dto.BranchListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BranchResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBranchResponse(b))
	}
	return &dto.BranchListResponse{Items: items}, nil
}

// Delete elimina una sucursal por ID.
func (uc *BranchUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// AssignMethod asigna explícitamente un método de venta a la sucursal.
// Idempotente: asignar un método ya asignado no es error.
func (uc *BranchUseCase) AssignMethod(ctx context.Context, branchID, methodID string) error {
	branch, err := uc.repo.GetByID(branchID)
	if err != nil {
		return err
	}
	if branch == nil {
		return domain.ErrNotFound
	}
	return uc.linkRepo.EnsureLink(ctx, branchID, methodID)
}

// UnassignMethod elimina la asociación sucursal-método. La asociación nunca
// se recrea implícitamente.
func (uc *BranchUseCase) UnassignMethod(branchID, methodID string) error {
	return uc.linkRepo.Unassign(branchID, methodID)
}

// ListMethods lista los métodos asignados a la sucursal.
func (uc *BranchUseCase) ListMethods(branchID string) (*dto.BranchMethodLinkListResponse, error) {
	links, err := uc.linkRepo.ListByBranch(branchID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BranchMethodLinkResponse, 0, len(links))
	for _, l := range links {
		items = append(items, dto.BranchMethodLinkResponse{
			ID:       l.ID,
			BranchID: l.BranchID,
			MethodID: l.MethodID,
			Active:   l.Active,
		})
	}
	return &dto.BranchMethodLinkListResponse{Items: items}, nil
}

// PropagateMethods aplica los métodos dados a todas las sucursales hermanas
// de la de referencia (misma empresa, derivación fresca en cada llamada).
// Fallo parcial -> respuesta con Partial=true; fallo total -> ErrPropagationFailed.
func (uc *BranchUseCase) PropagateMethods(ctx context.Context, branchID string, in dto.PropagateMethodsRequest) (*dto.PropagationResponse, error) {
	reference, err := uc.repo.GetByID(branchID)
	if err != nil {
		return nil, err
	}
	if reference == nil {
		return nil, domain.ErrNotFound
	}
	all, err := uc.repo.ListByCompany(reference.CompanyID)
	if err != nil {
		return nil, err
	}
	siblings := propagation.SiblingBranches(reference, all)

	res := uc.engine.PropagateSalesMethods(ctx, siblings, in.MethodIDs)
	if res.AllFailed() {
		return nil, domain.ErrPropagationFailed
	}
	return toPropagationResponse(res), nil
}

func toBranchResponse(b *entity.Branch) *dto.BranchResponse {
	if b == nil {
		return nil
	}
	return &dto.BranchResponse{
		ID:        b.ID,
		CompanyID: b.CompanyID,
		Name:      b.Name,
		Address:   b.Address,
		Phone:     b.Phone,
		Active:    b.Active,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func toPropagationResponse(res propagation.BatchResult) *dto.PropagationResponse {
	out := &dto.PropagationResponse{
		Applied:  make([]dto.AppliedPair, 0, len(res.Applied)),
		Failures: make([]dto.FailedPair, 0, len(res.Failures)),
		Partial:  len(res.Failures) > 0,
	}
	for _, p := range res.Applied {
		out.Applied = append(out.Applied, dto.AppliedPair{
			BranchID:   p.BranchID,
			BranchName: p.BranchName,
			MethodID:   p.MethodID,
		})
	}
	for _, f := range res.Failures {
		out.Failures = append(out.Failures, dto.FailedPair{
			BranchID:   f.BranchID,
			BranchName: f.BranchName,
			MethodID:   f.MethodID,
			Reason:     f.Reason,
		})
	}
	return out
}
