package repository

import "github.com/aslanalper2516/wmb-admin-api/internal/domain/entity"

// CurrencyRepository define el puerto de lectura del catálogo de monedas (DIP).
type CurrencyRepository interface {
	GetByID(id string) (*entity.CurrencyUnit, error)
	List() ([]*entity.CurrencyUnit, error)
}
