package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventario-commands/internal/application/dto"
	"github.com/jhoicas/inventario-commands/internal/application/inventory"
	"github.com/jhoicas/inventario-commands/internal/domain"
)

// CommandHandler maneja las peticiones HTTP de comandos de inventario (protegido).
type CommandHandler struct {
	uc *inventory.CommandUseCase
}

// NewCommandHandler construye el handler.
func NewCommandHandler(uc *inventory.CommandUseCase) *CommandHandler {
	return &CommandHandler{uc: uc}
}

// ProcessSale atiende POST /api/commands/sale con body dto.SaleRequest.
// Devuelve el registro actualizado o el error de negocio mapeado a HTTP.
func (h *CommandHandler) ProcessSale(c *fiber.Ctx) error {
	var in dto.SaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	rec, err := h.uc.Sell(c.Context(), in.ProductID, in.QuantitySold)
	if err != nil {
		return commandError(c, err)
	}
	return c.JSON(dto.StockResponse{ProductID: rec.ProductID, Quantity: rec.Quantity})
}

// ProcessRestock atiende POST /api/commands/restock con body dto.RestockRequest.
func (h *CommandHandler) ProcessRestock(c *fiber.Ctx) error {
	var in dto.RestockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	rec, err := h.uc.Restock(c.Context(), in.ProductID, in.QuantityAdded)
	if err != nil {
		return commandError(c, err)
	}
	return c.JSON(dto.StockResponse{ProductID: rec.ProductID, Quantity: rec.Quantity})
}

// commandError mapea errores de dominio a códigos HTTP.
func commandError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
