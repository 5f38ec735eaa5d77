package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/aslanalper2516/wmb-admin-api/internal/application/dto"
	"github.com/aslanalper2516/wmb-admin-api/internal/application/usecase"
	"github.com/aslanalper2516/wmb-admin-api/internal/domain"
)

// ProductHandler maneja las peticiones HTTP para Product (protegido): CRUD,
// completitud de precios, precios por sucursal/método y propagación.
type ProductHandler struct {
	uc      *usecase.ProductUseCase
	priceUC *usecase.PriceUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, priceUC *usecase.PriceUseCase) *ProductHandler {
	return &ProductHandler{uc: uc, priceUC: priceUC}
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "empresa no identificada"})
	}
	var in dto.CreateProductRequest
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
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar productos de la empresa
// @Description  with_completeness=true anota cada producto con price_complete.
// @Description  Es más costoso; la pantalla de listado lo pide solo cuando el
// @Description  usuario activa la columna.
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        limit              query  int   false  "Tamaño de página"  default(20)
// @Param        offset             query  int   false  "Desplazamiento"    default(0)
// @Param        with_completeness  query  bool  false  "Anotar completitud de precios"
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "empresa no identificada"})
	}
	limit, offset := pageParams(c)
	out, err := h.uc.List(companyID, limit, offset, c.QueryBool("with_completeness"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Security     Bearer
// @Param        id  path  string  true  "ID del producto"
// @Success      204
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Completeness godoc
// @Summary      Completitud de precios del producto
// @Description  Por cada sucursal de la empresa indica si el producto tiene
// @Description  precio para todos los métodos habilitados, qué métodos faltan
// @Description  y si la sucursal se omite por no tener métodos activos.
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.CompletenessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/completeness [get]
func (h *ProductHandler) Completeness(c *fiber.Ctx) error {
	out, err := h.uc.Completeness(c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListPrices godoc
// @Summary      Listar precios del producto
// @Tags         prices
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del producto"
// @Param        branch  query  string  false  "Filtrar por sucursal"
// @Success      200     {object}  dto.PriceListResponse
// @Router       /api/products/{id}/prices [get]
func (h *ProductHandler) ListPrices(c *fiber.Ctx) error {
	out, err := h.priceUC.List(c.Params("id"), c.Query("branch"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// SetPrice godoc
// @Summary      Fijar precio para un par (sucursal, método)
// @Description  Si ya existe un precio para el par se reemplaza por el nuevo
// @Description  registro. Devuelve la lista de precios con la completitud
// @Description  recalculada.
// @Tags         prices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.CreatePriceRequest  true  "method, branch, amount, currency_id"
// @Success      200   {object}  dto.PriceListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/prices [post]
func (h *ProductHandler) SetPrice(c *fiber.Ctx) error {
	var in dto.CreatePriceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Method.IsZero() || in.Branch.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "method y branch son requeridos"})
	}
	if in.Amount.IsNegative() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "amount no puede ser negativo"})
	}
	out, err := h.priceUC.Set(c.UserContext(), c.Params("id"), in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// DeletePrice godoc
// @Summary      Eliminar un registro de precio
// @Tags         prices
// @Security     Bearer
// @Param        id       path  string  true  "ID del producto"
// @Param        priceId  path  string  true  "ID del precio"
// @Success      204
// @Router       /api/products/{id}/prices/{priceId} [delete]
func (h *ProductHandler) DeletePrice(c *fiber.Ctx) error {
	if err := h.priceUC.Delete(c.UserContext(), c.Params("priceId")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PropagatePrice godoc
// @Summary      Propagar un precio al resto de sucursales
// @Description  Toma el par (sucursal, método) de referencia y aplica el mismo
// @Description  importe en las demás sucursales con el método habilitado. Los
// @Description  fallos por par no revierten lo aplicado; si todos fallan la
// @Description  respuesta es 502.
// @Tags         prices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.PropagatePriceRequest  true  "branch_id, method_id, amount, currency_id"
// @Success      200   {object}  dto.PropagationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/propagate-price [post]
func (h *ProductHandler) PropagatePrice(c *fiber.Ctx) error {
	var in dto.PropagatePriceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.BranchID == "" || in.MethodID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "branch_id y method_id son requeridos"})
	}
	out, err := h.priceUC.Propagate(c.UserContext(), c.Params("id"), in)
	if err != nil {
		switch {
		case err == domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		case errors.Is(err, domain.ErrPropagationFailed):
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "PROPAGATION_FAILED", Message: err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(out)
}
