package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Inventory representa la cantidad disponible derivada por par
// (producto, bodega): a lo sumo una fila activa por par. QuantityAvailable la
// recalcula el motor de colocaciones como la suma de las colocaciones activas
// del par; Min/MaxStockLevel y ReorderPoint son umbrales del operador y solo
// se tocan por la operación de gestión de inventario.
type Inventory struct {
	ID                int64
	ProductID         int64
	WarehouseID       int64
	QuantityAvailable decimal.Decimal
	MinStockLevel     *decimal.Decimal
	MaxStockLevel     *decimal.Decimal
	ReorderPoint      *int
	CreatedBy         string
	UpdatedBy         string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	RowStatus         bool
}
