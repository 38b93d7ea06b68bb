package usecase

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ids-inventory-api/internal/application/dto"
	"github.com/jhoicas/ids-inventory-api/internal/domain"
	"github.com/jhoicas/ids-inventory-api/internal/domain/entity"
	"github.com/jhoicas/ids-inventory-api/internal/domain/repository"
)

// InventoryUseCase gestión de umbrales por par (producto, bodega). La
// cantidad disponible la escribe solo el motor de colocaciones; aquí solo se
// administran min/max/reorder.
type InventoryUseCase struct {
	products   repository.ProductRepository
	warehouses repository.WarehouseRepository
	inventory  repository.InventoryRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(
	products repository.ProductRepository,
	warehouses repository.WarehouseRepository,
	inventory repository.InventoryRepository,
) *InventoryUseCase {
	return &InventoryUseCase{products: products, warehouses: warehouses, inventory: inventory}
}

// UpsertThresholds fija los umbrales del par. Si la fila no existe la crea
// con cantidad cero; si existe, la cantidad recalculada queda intacta.
func (uc *InventoryUseCase) UpsertThresholds(actor string, in dto.UpsertThresholdsRequest) (*dto.InventoryResponse, error) {
	product, err := uc.products.GetActiveByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("producto %d: %w", in.ProductID, domain.ErrNotFound)
	}
	warehouse, err := uc.warehouses.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil || !warehouse.RowStatus {
		return nil, fmt.Errorf("bodega %d: %w", in.WarehouseID, domain.ErrNotFound)
	}
	if in.MinStockLevel != nil && in.MaxStockLevel != nil && in.MinStockLevel.GreaterThan(*in.MaxStockLevel) {
		return nil, fmt.Errorf("min_stock_level > max_stock_level: %w", domain.ErrInvalidInput)
	}

	row := &entity.Inventory{
		ProductID:         in.ProductID,
		WarehouseID:       in.WarehouseID,
		QuantityAvailable: decimal.Zero,
		MinStockLevel:     in.MinStockLevel,
		MaxStockLevel:     in.MaxStockLevel,
		ReorderPoint:      in.ReorderPoint,
		CreatedBy:         actor,
		UpdatedBy:         actor,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
		RowStatus:         true,
	}
	if err := uc.inventory.UpsertThresholds(row); err != nil {
		return nil, err
	}
	current, err := uc.inventory.GetByPair(in.ProductID, in.WarehouseID)
	if err != nil {
		return nil, err
	}
	return toInventoryResponse(current), nil
}

// Update actualiza una fila de inventario por id; los campos nil quedan como
// están. Permite corregir quantity_available a mano, a sabiendas de que el
// próximo recálculo del motor la sobreescribe.
func (uc *InventoryUseCase) Update(actor string, id int64, in dto.UpdateInventoryRequest) (*dto.InventoryResponse, error) {
	row, err := uc.inventory.GetByID(id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, fmt.Errorf("inventario %d: %w", id, domain.ErrNotFound)
	}
	if in.QuantityAvailable != nil {
		row.QuantityAvailable = *in.QuantityAvailable
	}
	if in.MinStockLevel != nil {
		row.MinStockLevel = in.MinStockLevel
	}
	if in.MaxStockLevel != nil {
		row.MaxStockLevel = in.MaxStockLevel
	}
	if in.ReorderPoint != nil {
		row.ReorderPoint = in.ReorderPoint
	}
	if row.MinStockLevel != nil && row.MaxStockLevel != nil && row.MinStockLevel.GreaterThan(*row.MaxStockLevel) {
		return nil, fmt.Errorf("min_stock_level > max_stock_level: %w", domain.ErrInvalidInput)
	}
	row.UpdatedBy = actor
	row.UpdatedAt = time.Now()
	if err := uc.inventory.Update(row); err != nil {
		return nil, err
	}
	return toInventoryResponse(row), nil
}

// GetByID obtiene una fila de inventario por id; (nil, nil) si no existe.
func (uc *InventoryUseCase) GetByID(id int64) (*dto.InventoryResponse, error) {
	row, err := uc.inventory.GetByID(id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}
	return toInventoryResponse(row), nil
}

// ListActive lista todas las filas activas de inventario.
func (uc *InventoryUseCase) ListActive() ([]dto.InventoryResponse, error) {
	list, err := uc.inventory.ListActive()
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryResponse, 0, len(list))
	for _, row := range list {
		out = append(out, *toInventoryResponse(row))
	}
	return out, nil
}

// GetByPair obtiene la fila de inventario del par; (nil, nil) si no existe.
func (uc *InventoryUseCase) GetByPair(productID, warehouseID int64) (*dto.InventoryResponse, error) {
	row, err := uc.inventory.GetByPair(productID, warehouseID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}
	return toInventoryResponse(row), nil
}

// ListByProduct lista las filas activas de inventario de un producto.
func (uc *InventoryUseCase) ListByProduct(productID int64) ([]dto.InventoryResponse, error) {
	list, err := uc.inventory.ListActiveByProduct(productID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryResponse, 0, len(list))
	for _, row := range list {
		out = append(out, *toInventoryResponse(row))
	}
	return out, nil
}

func toInventoryResponse(inv *entity.Inventory) *dto.InventoryResponse {
	if inv == nil {
		return nil
	}
	return &dto.InventoryResponse{
		ID:                inv.ID,
		ProductID:         inv.ProductID,
		WarehouseID:       inv.WarehouseID,
		QuantityAvailable: inv.QuantityAvailable,
		MinStockLevel:     inv.MinStockLevel,
		MaxStockLevel:     inv.MaxStockLevel,
		ReorderPoint:      inv.ReorderPoint,
		UpdatedAt:         inv.UpdatedAt,
	}
}
