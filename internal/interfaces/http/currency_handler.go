package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aslanalper2516/wmb-admin-api/internal/application/dto"
	"github.com/aslanalper2516/wmb-admin-api/internal/application/usecase"
)

// CurrencyHandler maneja las peticiones HTTP para el catálogo de monedas.
type CurrencyHandler struct {
	uc *usecase.CurrencyUseCase
}

// NewCurrencyHandler construye el handler.
func NewCurrencyHandler(uc *usecase.CurrencyUseCase) *CurrencyHandler {
	return &CurrencyHandler{uc: uc}
}

// List godoc
// @Summary      Listar monedas disponibles
// @Tags         currencies
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CurrencyListResponse
// @Router       /api/currencies [get]
func (h *CurrencyHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
