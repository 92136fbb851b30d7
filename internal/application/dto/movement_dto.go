package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Las claves JSON conservan el contrato del cliente original (es).

// RecordMovementRequest body para POST /api/inventory/movements.
type RecordMovementRequest struct {
	ProductID string          `json:"id_producto"`
	Kind      string          `json:"tipo_movimiento"` // entrada | salida
	Quantity  decimal.Decimal `json:"cantidad"`
	Notes     string          `json:"observaciones,omitempty"`
}

// MovementResponse movimiento comprometido.
type MovementResponse struct {
	ID        int64           `json:"id"`
	ProductID string          `json:"id_producto"`
	Kind      string          `json:"tipo_movimiento"`
	Quantity  decimal.Decimal `json:"cantidad"`
	Actor     string          `json:"usuario"`
	Notes     string          `json:"observaciones,omitempty"`
	CreatedAt time.Time       `json:"fecha_movimiento"`
}

// HistoryEntryResponse fila del historial (kardex) con datos del producto.
type HistoryEntryResponse struct {
	MovementResponse
	ProductName string `json:"nombre_producto"`
	ProductSKU  string `json:"sku,omitempty"`
}

// StockResponse stock actual de un producto.
type StockResponse struct {
	ProductID string          `json:"id_producto"`
	Stock     decimal.Decimal `json:"stock"`
}

// InsufficientStockResponse cuerpo 409 con contexto para que el caller ajuste.
type InsufficientStockResponse struct {
	Code      string          `json:"code"`
	Message   string          `json:"message"`
	Requested decimal.Decimal `json:"cantidad_solicitada"`
	Available decimal.Decimal `json:"stock_disponible"`
}
