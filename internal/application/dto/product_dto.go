package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. La categoría se indica
// con exactamente uno de dos campos: CategoryID (existente) o NewCategoryName
// (se crea si no existe).
type CreateProductRequest struct {
	Code            string   `json:"code" validate:"required,min=1,max=100"`
	QRCode          string   `json:"qr_code"`
	Name            string   `json:"name" validate:"required,min=1,max=200"`
	Description     string   `json:"description"`
	CategoryID      *int64   `json:"category_id"`
	NewCategoryName string   `json:"new_category_name"`
	ReorderPoint    int      `json:"reorder_point"`
	Brand           string   `json:"brand"`
	Weight          string   `json:"weight"`
	Dimensions      string   `json:"dimensions"`
	Images          []string `json:"images"`
	// InventoryDetails fija umbrales iniciales por bodega junto con el alta.
	InventoryDetails []ProductInventoryInput `json:"inventory_details"`
}

// ProductInventoryInput umbrales de una bodega enviados junto con el alta o
// edición de un producto.
type ProductInventoryInput struct {
	WarehouseID   int64            `json:"warehouse_id" validate:"required"`
	MinStockLevel *decimal.Decimal `json:"min_stock_level"`
	MaxStockLevel *decimal.Decimal `json:"max_stock_level"`
	ReorderPoint  *int             `json:"reorder_point"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
type UpdateProductRequest struct {
	Code            *string  `json:"code"`
	QRCode          *string  `json:"qr_code"`
	Name            *string  `json:"name" validate:"omitempty,min=1,max=200"`
	Description     *string  `json:"description"`
	CategoryID      *int64   `json:"category_id"`
	NewCategoryName *string  `json:"new_category_name"`
	ReorderPoint    *int     `json:"reorder_point"`
	Brand           *string  `json:"brand"`
	Weight          *string  `json:"weight"`
	Dimensions      *string  `json:"dimensions"`
	Images          []string `json:"images"`
	// InventoryDetails opcional: reupserta umbrales por bodega en la edición.
	InventoryDetails []ProductInventoryInput `json:"inventory_details"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           int64     `json:"id"`
	Code         string    `json:"code"`
	QRCode       string    `json:"qr_code"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	CategoryID   int64     `json:"category_id"`
	CategoryName string    `json:"category_name"`
	ReorderPoint int       `json:"reorder_point"`
	Brand        string    `json:"brand"`
	Weight       string    `json:"weight"`
	Dimensions   string    `json:"dimensions"`
	Images       []string  `json:"images"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// WarehouseStock cantidad disponible de un producto en una bodega.
type WarehouseStock struct {
	WarehouseID       int64           `json:"warehouse_id"`
	WarehouseName     string          `json:"warehouse_name"`
	QuantityAvailable decimal.Decimal `json:"quantity_available"`
}

// ProductDetailResponse proyección de lectura de un producto: ficha,
// existencias por bodega, total y colocaciones activas.
type ProductDetailResponse struct {
	Product    ProductResponse     `json:"product"`
	Stock      []WarehouseStock    `json:"stock"`
	TotalStock decimal.Decimal     `json:"total_stock"`
	Placements []PlacementResponse `json:"placements"`
}

// ProductListResponse listado de fichas con existencias.
type ProductListResponse struct {
	Items []ProductDetailResponse `json:"items"`
	Total int                     `json:"total"`
}
