package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlacementInput una ubicación física dentro de una recepción de stock.
type PlacementInput struct {
	WarehouseID int64  `json:"warehouse_id" validate:"required"`
	Quantity    int64  `json:"quantity" validate:"required,min=1"`
	Aisle       string `json:"aisle"`
	Bin         string `json:"bin"`
}

// CreatePlacementRequest entrada del motor de colocaciones: un lote y sus
// ubicaciones físicas, todo o nada.
type CreatePlacementRequest struct {
	ProductID       int64            `json:"product_id" validate:"required"`
	LotCode         string           `json:"lot_code"`
	ManufactureDate *time.Time       `json:"manufacture_date"`
	ExpiryDate      *time.Time       `json:"expiry_date"`
	Quantity        decimal.Decimal  `json:"quantity"`
	Placements      []PlacementInput `json:"placements" validate:"required,min=1"`
}

// UpdatePlacementRequest entrada para mover o corregir una colocación.
type UpdatePlacementRequest struct {
	WarehouseID *int64  `json:"warehouse_id"`
	Quantity    *int64  `json:"quantity" validate:"omitempty,min=1"`
	Aisle       *string `json:"aisle"`
	Bin         *string `json:"bin"`
}

// PlacementResponse salida de una colocación. Batch viene poblado en las
// proyecciones de lectura del catálogo.
type PlacementResponse struct {
	ID          int64        `json:"id"`
	BatchID     int64        `json:"batch_id"`
	ProductID   int64        `json:"product_id"`
	WarehouseID int64        `json:"warehouse_id"`
	Quantity    int64        `json:"quantity"`
	Aisle       string       `json:"aisle"`
	Bin         string       `json:"bin"`
	Batch       *BatchDetail `json:"batch,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// BatchDetail lote asociado a una colocación en la proyección de lectura.
type BatchDetail struct {
	ID              int64           `json:"id"`
	LotCode         string          `json:"lot_code"`
	ManufactureDate *time.Time      `json:"manufacture_date"`
	ExpiryDate      *time.Time      `json:"expiry_date"`
	Quantity        decimal.Decimal `json:"quantity"`
}

// BatchResponse salida de un lote con sus colocaciones.
type BatchResponse struct {
	ID              int64               `json:"id"`
	ProductID       int64               `json:"product_id"`
	LotCode         string              `json:"lot_code"`
	ManufactureDate *time.Time          `json:"manufacture_date"`
	ExpiryDate      *time.Time          `json:"expiry_date"`
	Quantity        decimal.Decimal     `json:"quantity"`
	CreatedAt       time.Time           `json:"created_at"`
	Placements      []PlacementResponse `json:"placements"`
}
