package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/aslanalper2516/wmb-admin-api/internal/application/dto"
	"github.com/aslanalper2516/wmb-admin-api/internal/application/usecase"
	"github.com/aslanalper2516/wmb-admin-api/internal/domain"
)

// IngredientHandler maneja las peticiones HTTP para Ingredient y los usos de
// ingrediente en recetas (protegido).
type IngredientHandler struct {
	uc *usecase.IngredientUseCase
}

// NewIngredientHandler construye el handler.
func NewIngredientHandler(uc *usecase.IngredientUseCase) *IngredientHandler {
	return &IngredientHandler{uc: uc}
}

// Create godoc
// @Summary      Crear ingrediente
// @Tags         ingredients
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateIngredientRequest  true  "Datos del ingrediente"
// @Success      201   {object}  dto.IngredientResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ingredients [post]
func (h *IngredientHandler) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "empresa no identificada"})
	}
	var in dto.CreateIngredientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.Create(companyID, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener ingrediente por ID
// @Tags         ingredients
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del ingrediente"
// @Success      200  {object}  dto.IngredientResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ingredients/{id} [get]
func (h *IngredientHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ingrediente no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar ingredientes de la empresa
// @Tags         ingredients
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Tamaño de página"  default(20)
// @Param        offset  query  int  false  "Desplazamiento"    default(0)
// @Success      200     {object}  dto.IngredientListResponse
// @Router       /api/ingredients [get]
func (h *IngredientHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "empresa no identificada"})
	}
	limit, offset := pageParams(c)
	out, err := h.uc.List(companyID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar ingrediente
// @Tags         ingredients
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del ingrediente"
// @Param        body  body  dto.UpdateIngredientRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.IngredientResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ingredients/{id} [put]
func (h *IngredientHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateIngredientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ingrediente no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar ingrediente
// @Tags         ingredients
// @Security     Bearer
// @Param        id  path  string  true  "ID del ingrediente"
// @Success      204
// @Router       /api/ingredients/{id} [delete]
func (h *IngredientHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateUsage godoc
// @Summary      Añadir uso de ingrediente a la receta del producto
// @Description  Un uso idéntico (mismo ingrediente, sucursal, cantidad, unidad
// @Description  y precio) ya registrado se rechaza con DUPLICATE.
// @Tags         recipes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.CreateUsageRequest  true  "ingredient, branch, amount, amount_unit, price opcional"
// @Success      201   {object}  dto.UsageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/usages [post]
func (h *IngredientHandler) CreateUsage(c *fiber.Ctx) error {
	var in dto.CreateUsageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Ingredient.IsZero() || in.Branch.IsZero() || in.AmountUnit == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "ingredient, branch y amount_unit son requeridos"})
	}
	out, err := h.uc.CreateUsage(c.Params("id"), in)
	if err != nil {
		return usageError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListUsages godoc
// @Summary      Listar la receta del producto
// @Tags         recipes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.UsageListResponse
// @Router       /api/products/{id}/usages [get]
func (h *IngredientHandler) ListUsages(c *fiber.Ctx) error {
	out, err := h.uc.ListUsages(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UpdateUsage godoc
// @Summary      Modificar un uso de ingrediente
// @Description  clear_price en true borra el precio específico del uso y el
// @Description  cálculo vuelve al precio por defecto del ingrediente.
// @Tags         recipes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del uso"
// @Param        body  body  dto.UpdateUsageRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.UsageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/usages/{id} [put]
func (h *IngredientHandler) UpdateUsage(c *fiber.Ctx) error {
	var in dto.UpdateUsageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateUsage(c.Params("id"), in)
	if err != nil {
		return usageError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "uso no encontrado"})
	}
	return c.JSON(out)
}

// DeleteUsage godoc
// @Summary      Quitar un uso de ingrediente de la receta
// @Tags         recipes
// @Security     Bearer
// @Param        id  path  string  true  "ID del uso"
// @Success      204
// @Router       /api/usages/{id} [delete]
func (h *IngredientHandler) DeleteUsage(c *fiber.Ctx) error {
	if err := h.uc.DeleteUsage(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// usageError traduce los errores de usos de receta a HTTP.
func usageError(c *fiber.Ctx, err error) error {
	switch {
	case err == domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
