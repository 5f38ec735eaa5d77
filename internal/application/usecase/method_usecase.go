package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/aslanalper2516/wmb-admin-api/internal/application/dto"
	"github.com/aslanalper2516/wmb-admin-api/internal/domain"
	"github.com/aslanalper2516/wmb-admin-api/internal/domain/entity"
	"github.com/aslanalper2516/wmb-admin-api/internal/domain/repository"
)

// MethodUseCase casos de uso CRUD para métodos de venta.
type MethodUseCase struct {
	repo repository.SalesMethodRepository
}

// NewMethodUseCase construye el caso de uso.
func NewMethodUseCase(repo repository.SalesMethodRepository) *MethodUseCase {
	return &MethodUseCase{repo: repo}
}

// Create crea un método de venta. El código es único por empresa.
func (uc *MethodUseCase) Create(companyID string, in dto.CreateMethodRequest) (*dto.MethodResponse, error) {
	existing, _ := uc.repo.GetByCompanyAndCode(companyID, in.Code)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	method := &entity.SalesMethod{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		Code:      in.Code,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(method); err != nil {
		return nil, err
	}
	return toMethodResponse(method), nil
}

// GetByID obtiene un método por ID.
func (uc *MethodUseCase) GetByID(id string) (*dto.MethodResponse, error) {
	method, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if method == nil {
		return nil, nil
	}
	return toMethodResponse(method), nil
}

// Update actualiza un método de venta.
func (uc *MethodUseCase) Update(id string, in dto.UpdateMethodRequest) (*dto.MethodResponse, error) {
	method, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if method == nil {
		return nil, nil
	}
	if in.Name != nil {
		method.Name = *in.Name
	}
	if in.Active != nil {
		method.Active = *in.Active
	}
	method.UpdatedAt = time.Now()
	if err := uc.repo.Update(method); err != nil {
		return nil, err
	}
	return toMethodResponse(method), nil
}

// List lista los métodos de venta de la empresa.
func (uc *MethodUseCase) List(companyID string) (*dto.MethodListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MethodResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMethodResponse(m))
	}
	return &dto.MethodListResponse{Items: items}, nil
}

// Delete elimina un método de venta por ID.
func (uc *MethodUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toMethodResponse(m *entity.SalesMethod) *dto.MethodResponse {
	if m == nil {
		return nil
	}
	return &dto.MethodResponse{
		ID:        m.ID,
		CompanyID: m.CompanyID,
		Name:      m.Name,
		Code:      m.Code,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
