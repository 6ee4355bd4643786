package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dukastock/duka-stock-api/internal/application/dto"
	"github.com/dukastock/duka-stock-api/internal/application/inventory"
	"github.com/dukastock/duka-stock-api/internal/domain"
)

// InventoryHandler maneja el árbol de inventario y el CRUD de categorías
// y sub-categorías (protegido).
type InventoryHandler struct {
	uc *inventory.InventoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// GetTree devuelve el inventario visible, opcionalmente filtrado con ?q=.
// GET /api/inventory?q=texto
func (h *InventoryHandler) GetTree(c *fiber.Ctx) error {
	tree, err := h.uc.GetTree(GetOwnerID(c), GetRole(c), c.Query("q"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(tree)
}

// CreateCategory crea una categoría principal (solo boss).
// POST /api/categories
func (h *InventoryHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	category, err := h.uc.CreateCategory(GetOwnerID(c), in)
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// UpdateCategory renombra una categoría principal (solo boss).
// PUT /api/categories/:id
func (h *InventoryHandler) UpdateCategory(c *fiber.Ctx) error {
	var in dto.UpdateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	category, err := h.uc.UpdateCategory(GetOwnerID(c), c.Params("id"), in)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(category)
}

// CreateSubCategory crea una sub-categoría con sus precios (solo boss).
// POST /api/categories/:id/subcategories
func (h *InventoryHandler) CreateSubCategory(c *fiber.Ctx) error {
	var in dto.CreateSubCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	sub, err := h.uc.CreateSubCategory(GetOwnerID(c), c.Params("id"), in)
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sub)
}

// UpdateSubCategory reemplaza nombre y/o precios (solo boss).
// PUT /api/subcategories/:id
func (h *InventoryHandler) UpdateSubCategory(c *fiber.Ctx) error {
	var in dto.UpdateSubCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	sub, err := h.uc.UpdateSubCategory(GetOwnerID(c), c.Params("id"), in)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(sub)
}

// mapError traduce los errores sentinela del dominio a respuestas HTTP.
func mapError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case domain.ErrInvalidSoldDate:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_SOLD_DATE", Message: "la fecha de venta solo puede ser hoy o ayer"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case domain.ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado al recurso"})
	case domain.ErrDuplicate:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el recurso ya existe"})
	case domain.ErrConflict:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "estado del recurso incompatible con la operación"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
