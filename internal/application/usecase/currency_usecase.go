package usecase

import (
	"github.com/aslanalper2516/wmb-admin-api/internal/application/dto"
	"github.com/aslanalper2516/wmb-admin-api/internal/domain/entity"
	"github.com/aslanalper2516/wmb-admin-api/internal/domain/repository"
)

// CurrencyUseCase expone el catálogo de monedas (solo lectura).
type CurrencyUseCase struct {
	repo repository.CurrencyRepository
}

// NewCurrencyUseCase construye el caso de uso.
func NewCurrencyUseCase(repo repository.CurrencyRepository) *CurrencyUseCase {
	return &CurrencyUseCase{repo: repo}
}

// List devuelve el catálogo completo.
func (uc *CurrencyUseCase) List() (*dto.CurrencyListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CurrencyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCurrencyResponse(c))
	}
	return &dto.CurrencyListResponse{Items: items}, nil
}

func toCurrencyResponse(c *entity.CurrencyUnit) *dto.CurrencyResponse {
	if c == nil {
		return nil
	}
	return &dto.CurrencyResponse{ID: c.ID, Code: c.Code, Symbol: c.Symbol, Name: c.Name}
}
