package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/aslanalper2516/wmb-admin-api/internal/application/dto"
	"github.com/aslanalper2516/wmb-admin-api/internal/application/usecase"
	"github.com/aslanalper2516/wmb-admin-api/internal/domain"
)

// MethodHandler maneja las peticiones HTTP para SalesMethod (protegido).
// Los métodos se definen a nivel empresa; la habilitación por sucursal vive
// bajo /api/branches/{id}/methods.
type MethodHandler struct {
	uc *usecase.MethodUseCase
}

// NewMethodHandler construye el handler.
func NewMethodHandler(uc *usecase.MethodUseCase) *MethodHandler {
	return &MethodHandler{uc: uc}
}

// Create godoc
// @Summary      Crear método de venta
// @Tags         methods
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMethodRequest  true  "Datos del método"
// @Success      201   {object}  dto.MethodResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/methods [post]
func (h *MethodHandler) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "empresa no identificada"})
	}
	var in dto.CreateMethodRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y code son requeridos"})
	}
	out, err := h.uc.Create(companyID, in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un método con ese código"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener método de venta por ID
// @Tags         methods
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del método"
// @Success      200  {object}  dto.MethodResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/methods/{id} [get]
func (h *MethodHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "método no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar métodos de venta de la empresa
// @Tags         methods
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MethodListResponse
// @Router       /api/methods [get]
func (h *MethodHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "empresa no identificada"})
	}
	out, err := h.uc.List(companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar método de venta
// @Tags         methods
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del método"
// @Param        body  body  dto.UpdateMethodRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.MethodResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/methods/{id} [put]
func (h *MethodHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMethodRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "método no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar método de venta
// @Tags         methods
// @Security     Bearer
// @Param        id  path  string  true  "ID del método"
// @Success      204
// @Router       /api/methods/{id} [delete]
func (h *MethodHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
