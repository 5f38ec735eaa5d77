package dto

import "time"

// CreateCompanyRequest entrada para crear una empresa.
type CreateCompanyRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=200"`
	TaxNumber string `json:"tax_number"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email" validate:"omitempty,email"`
}

// UpdateCompanyRequest entrada para actualizar una empresa.
type UpdateCompanyRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=200"`
	TaxNumber *string `json:"tax_number"`
	Address   *string `json:"address"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email" validate:"omitempty,email"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TaxNumber string    `json:"tax_number"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CompanyListResponse lista paginada de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
