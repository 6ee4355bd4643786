package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dukastock/duka-stock-api/internal/application/dto"
	"github.com/dukastock/duka-stock-api/internal/application/invite"
)

// InviteHandler maneja las invitaciones de un jefe a sus workers (solo boss).
type InviteHandler struct {
	uc *invite.InviteUseCase
}

// NewInviteHandler construye el handler.
func NewInviteHandler(uc *invite.InviteUseCase) *InviteHandler {
	return &InviteHandler{uc: uc}
}

// Create registra una invitación pendiente para un email.
// POST /api/invites
func (h *InviteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInviteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateInvite(GetUserID(c), in)
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List devuelve las invitaciones emitidas por el jefe.
// GET /api/invites
func (h *InviteHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListInvites(GetUserID(c))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}
