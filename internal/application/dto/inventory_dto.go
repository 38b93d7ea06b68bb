package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpsertThresholdsRequest entrada para fijar los umbrales del par
// (producto, bodega). No toca la cantidad recalculada por el motor salvo que
// la fila no exista todavía.
type UpsertThresholdsRequest struct {
	ProductID     int64            `json:"product_id" validate:"required"`
	WarehouseID   int64            `json:"warehouse_id" validate:"required"`
	MinStockLevel *decimal.Decimal `json:"min_stock_level"`
	MaxStockLevel *decimal.Decimal `json:"max_stock_level"`
	ReorderPoint  *int             `json:"reorder_point"`
}

// UpdateInventoryRequest entrada para actualizar una fila de inventario por
// id (campos opcionales). QuantityAvailable permite la corrección manual; el
// siguiente recálculo del motor de colocaciones la pisa.
type UpdateInventoryRequest struct {
	QuantityAvailable *decimal.Decimal `json:"quantity_available"`
	MinStockLevel     *decimal.Decimal `json:"min_stock_level"`
	MaxStockLevel     *decimal.Decimal `json:"max_stock_level"`
	ReorderPoint      *int             `json:"reorder_point"`
}

// InventoryResponse salida de una fila de inventario.
type InventoryResponse struct {
	ID                int64            `json:"id"`
	ProductID         int64            `json:"product_id"`
	WarehouseID       int64            `json:"warehouse_id"`
	QuantityAvailable decimal.Decimal  `json:"quantity_available"`
	MinStockLevel     *decimal.Decimal `json:"min_stock_level"`
	MaxStockLevel     *decimal.Decimal `json:"max_stock_level"`
	ReorderPoint      *int             `json:"reorder_point"`
	UpdatedAt         time.Time        `json:"updated_at"`
}
