package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kardex-api/internal/application/dto"
	"github.com/jhoicas/kardex-api/internal/application/inventory"
	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
)

// InventoryHandler maneja las peticiones HTTP de movimientos y stock (protegido).
type InventoryHandler struct {
	uc *inventory.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// RecordMovement godoc
// @Summary      Registrar movimiento de inventario (entrada/salida)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordMovementRequest  true  "id_producto, tipo_movimiento (entrada|salida), cantidad, observaciones"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.InsufficientStockResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RecordMovement(c *fiber.Ctx) error {
	actor := GetUserID(c)
	if actor == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	mov, err := h.uc.RecordMovement(c.Context(), inventory.MovementInput{
		ProductID: in.ProductID,
		Kind:      in.Kind,
		Quantity:  in.Quantity,
		Actor:     actor,
		Notes:     in.Notes,
	})
	if err != nil {
		return movementError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(mov))
}

// movementError traduce la taxonomía de errores de dominio a códigos HTTP.
func movementError(c *fiber.Ctx, err error) error {
	var insufficient *domain.InsufficientStockError
	switch {
	case errors.Is(err, domain.ErrInvalidKind):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_KIND", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: err.Error()})
	case errors.Is(err, domain.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: err.Error()})
	case errors.As(err, &insufficient):
		return c.Status(fiber.StatusConflict).JSON(dto.InsufficientStockResponse{
			Code:      "INSUFFICIENT_STOCK",
			Message:   "stock insuficiente",
			Requested: insufficient.Requested,
			Available: insufficient.Available,
		})
	case errors.Is(err, domain.ErrBusy):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "BUSY", Message: "producto ocupado, reintentar con backoff"})
	case errors.Is(err, domain.ErrPersistence):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "PERSISTENCE", Message: "no se pudo confirmar el movimiento, reintentar"})
	default:
		// Incluye ErrInvariantViolation: fatal, nunca se corrige en silencio
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// GetStock godoc
// @Summary      Stock actual de un producto
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        productID  path  string  true  "ID del producto"
// @Success      200  {object}  dto.StockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/stock/{productID} [get]
func (h *InventoryHandler) GetStock(c *fiber.Ctx) error {
	productID := c.Params("productID")
	stock, err := h.uc.GetStock(c.Context(), productID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.StockResponse{ProductID: productID, Stock: stock})
}

// GetHistory godoc
// @Summary      Historial de movimientos (kardex), más reciente primero
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        limit       query  int     false  "máx. filas (1-100, default 20)"
// @Param        offset      query  int     false  "desplazamiento"
// @Param        product_id  query  string  false  "filtrar por producto"
// @Success      200  {array}   dto.HistoryEntryResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/inventory/history [get]
func (h *InventoryHandler) GetHistory(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	page.DefaultPage()

	list, err := h.uc.GetHistory(c.Context(), c.Query("product_id"), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	out := make([]dto.HistoryEntryResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.HistoryEntryResponse{
			MovementResponse: toMovementResponse(&m.Movement),
			ProductName:      m.ProductName,
			ProductSKU:       m.ProductSKU,
		})
	}
	return c.JSON(out)
}

func toMovementResponse(m *entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		Kind:      string(m.Kind),
		Quantity:  m.Quantity,
		Actor:     m.Actor,
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
	}
}
