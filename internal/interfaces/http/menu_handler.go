package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aslanalper2516/wmb-admin-api/internal/application/dto"
	"github.com/aslanalper2516/wmb-admin-api/internal/application/export"
	"github.com/aslanalper2516/wmb-admin-api/internal/application/usecase"
	"github.com/aslanalper2516/wmb-admin-api/internal/domain"
)

// MenuHandler maneja las peticiones HTTP para Menu (protegido): CRUD, árbol
// de categorías, asignaciones y exportaciones de la carta.
type MenuHandler struct {
	uc       *usecase.MenuUseCase
	exportUC *export.MenuExportUseCase
}

// NewMenuHandler construye el handler.
func NewMenuHandler(uc *usecase.MenuUseCase, exportUC *export.MenuExportUseCase) *MenuHandler {
	return &MenuHandler{uc: uc, exportUC: exportUC}
}

// Create godoc
// @Summary      Crear menú en una sucursal
// @Tags         menus
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        branchId  path  string  true  "ID de la sucursal"
// @Param        body      body  dto.CreateMenuRequest  true  "Datos del menú"
// @Success      201       {object}  dto.MenuResponse
// @Failure      400       {object}  dto.ErrorResponse
// @Router       /api/branches/{branchId}/menus [post]
func (h *MenuHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMenuRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.Create(c.Params("branchId"), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener menú por ID
// @Tags         menus
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del menú"
// @Success      200  {object}  dto.MenuResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/menus/{id} [get]
func (h *MenuHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "menú no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar menús de una sucursal
// @Tags         menus
// @Security     Bearer
// @Produce      json
// @Param        branchId  path  string  true  "ID de la sucursal"
// @Success      200       {object}  dto.MenuListResponse
// @Router       /api/branches/{branchId}/menus [get]
func (h *MenuHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Params("branchId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar menú
// @Tags         menus
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del menú"
// @Param        body  body  dto.UpdateMenuRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.MenuResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/menus/{id} [put]
func (h *MenuHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMenuRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "menú no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar menú
// @Tags         menus
// @Security     Bearer
// @Param        id  path  string  true  "ID del menú"
// @Success      204
// @Router       /api/menus/{id} [delete]
func (h *MenuHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Tree godoc
// @Summary      Árbol de categorías del menú
// @Description  Reconstruye la jerarquía desde las asignaciones planas.
// @Description  order=admin ordena por display_order + nombre; order=menu solo
// @Description  por nombre localizado (vista de carta).
// @Tags         menus
// @Security     Bearer
// @Produce      json
// @Param        id     path   string  true   "ID del menú"
// @Param        order  query  string  false  "admin | menu"  default(admin)
// @Success      200    {object}  dto.TreeResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/menus/{id}/tree [get]
func (h *MenuHandler) Tree(c *fiber.Ctx) error {
	out, err := h.uc.Tree(c.Params("id"), c.Query("order", "admin"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "menú no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ParentCandidates godoc
// @Summary      Candidatos a padre para una asignación
// @Description  Devuelve el árbol en orden admin excluyendo la propia
// @Description  asignación y todos sus descendientes.
// @Tags         menus
// @Security     Bearer
// @Produce      json
// @Param        id     path  string  true  "ID del menú"
// @Param        asgId  path  string  true  "ID de la asignación"
// @Success      200    {object}  dto.TreeResponse
// @Router       /api/menus/{id}/assignments/{asgId}/parent-candidates [get]
func (h *MenuHandler) ParentCandidates(c *fiber.Ctx) error {
	out, err := h.uc.ParentCandidates(c.Params("id"), c.Params("asgId"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "menú no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// CreateAssignment godoc
// @Summary      Colocar categoría en el menú
// @Tags         menus
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del menú"
// @Param        body  body  dto.CreateAssignmentRequest  true  "category, parent opcional, display_order"
// @Success      201   {object}  dto.AssignmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/menus/{id}/assignments [post]
func (h *MenuHandler) CreateAssignment(c *fiber.Ctx) error {
	var in dto.CreateAssignmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Category.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "category es requerido"})
	}
	out, err := h.uc.CreateAssignment(c.Params("id"), in)
	if err != nil {
		return assignmentError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateAssignment godoc
// @Summary      Reordenar o re-emparentar una asignación
// @Description  Mover una asignación bajo uno de sus descendientes se rechaza
// @Description  con CYCLE.
// @Tags         menus
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id     path  string  true  "ID del menú"
// @Param        asgId  path  string  true  "ID de la asignación"
// @Param        body   body  dto.UpdateAssignmentRequest  true  "parent, parent_to_root, display_order"
// @Success      200    {object}  dto.AssignmentResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Failure      409    {object}  dto.ErrorResponse
// @Router       /api/menus/{id}/assignments/{asgId} [put]
func (h *MenuHandler) UpdateAssignment(c *fiber.Ctx) error {
	var in dto.UpdateAssignmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateAssignment(c.Params("id"), c.Params("asgId"), in)
	if err != nil {
		return assignmentError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "asignación no encontrada"})
	}
	return c.JSON(out)
}

// DeleteAssignment godoc
// @Summary      Quitar categoría del menú
// @Description  Los hijos de la asignación eliminada pasan a raíz en la
// @Description  siguiente lectura del árbol.
// @Tags         menus
// @Security     Bearer
// @Param        id     path  string  true  "ID del menú"
// @Param        asgId  path  string  true  "ID de la asignación"
// @Success      204
// @Router       /api/menus/{id}/assignments/{asgId} [delete]
func (h *MenuHandler) DeleteAssignment(c *fiber.Ctx) error {
	if err := h.uc.DeleteAssignment(c.Params("id"), c.Params("asgId")); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "asignación no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ExportPDF godoc
// @Summary      Exportar la carta del menú como PDF
// @Tags         menus
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del menú"
// @Success      200  {file}  file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/menus/{id}/export.pdf [get]
func (h *MenuHandler) ExportPDF(c *fiber.Ctx) error {
	data, err := h.exportUC.PDF(c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "menú no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(data)
}

// ExportXML godoc
// @Summary      Exportar la carta del menú como feed XML
// @Tags         menus
// @Security     Bearer
// @Produce      application/xml
// @Param        id  path  string  true  "ID del menú"
// @Success      200  {string}  string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/menus/{id}/export.xml [get]
func (h *MenuHandler) ExportXML(c *fiber.Ctx) error {
	data, err := h.exportUC.XML(c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "menú no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.Send(data)
}

// assignmentError traduce los errores de asignación a HTTP.
func assignmentError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case domain.ErrCycleDetected:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CYCLE", Message: "la categoría padre es descendiente de la categoría"})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
