package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dukastock/duka-stock-api/internal/application/dto"
	"github.com/dukastock/duka-stock-api/internal/application/inventory"
)

// StockHandler maneja el ciclo de vida de los ítems: alta, venta, reversión
// y borrado (protegido).
type StockHandler struct {
	uc *inventory.StockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *inventory.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// AddStock crea un lote de ítems numerados a continuación (solo boss).
// POST /api/subcategories/:id/stock
func (h *StockHandler) AddStock(c *fiber.Ctx) error {
	var in dto.AddStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	items, err := h.uc.AddStock(GetOwnerID(c), c.Params("id"), in)
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(items)
}

// Sell marca un ítem como vendido (boss y worker).
// POST /api/items/:id/sell
func (h *StockHandler) Sell(c *fiber.Ctx) error {
	var in dto.SellItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.Sell(GetOwnerID(c), c.Params("id"), in)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(item)
}

// Revert devuelve un ítem vendido a disponible (solo boss).
// POST /api/items/:id/revert
func (h *StockHandler) Revert(c *fiber.Ctx) error {
	item, err := h.uc.Revert(GetOwnerID(c), c.Params("id"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(item)
}

// DeleteItem borra el ítem y renumera a sus hermanos (solo boss).
// DELETE /api/items/:id
func (h *StockHandler) DeleteItem(c *fiber.Ctx) error {
	if err := h.uc.DeleteItem(c.Context(), GetOwnerID(c), c.Params("id")); err != nil {
		return mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
