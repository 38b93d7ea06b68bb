package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Batch representa un evento de recepción de stock para un producto.
// Quantity es la cantidad nominal digitada por el operador; no se valida
// contra la suma de las colocaciones del lote. LotCode es un identificador
// externo del lote (UUID).
type Batch struct {
	ID              int64
	ProductID       int64
	LotCode         string
	ManufactureDate *time.Time
	ExpiryDate      *time.Time
	Quantity        decimal.Decimal
	CreatedBy       string
	UpdatedBy       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	RowStatus       bool
}

// Placement representa la ubicación física de parte del stock de un lote en
// una bodega concreta (pasillo + bin). ProductID está desnormalizado para las
// consultas por producto; el motor lo deriva siempre del lote, así que por
// construcción coincide con Batch.ProductID.
type Placement struct {
	ID          int64
	BatchID     int64
	ProductID   int64
	WarehouseID int64
	Quantity    int64
	Aisle       string
	Bin         string
	CreatedBy   string
	UpdatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	RowStatus   bool
}
