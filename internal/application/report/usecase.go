package report

import (
	"fmt"

	"github.com/jhoicas/ids-inventory-api/internal/domain"
	"github.com/jhoicas/ids-inventory-api/internal/domain/repository"
)

// UseCase reportes de inventario: libro Excel por par (producto, bodega) y
// etiquetas PDF de colocación por producto.
type UseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	warehouses repository.WarehouseRepository
	inventory  repository.InventoryRepository
	placements repository.PlacementRepository
	batches    repository.BatchRepository
	excel      ExcelGenerator
	labels     LabelPDFGenerator
}

// NewUseCase construye el caso de uso de reportes.
func NewUseCase(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	warehouses repository.WarehouseRepository,
	inventory repository.InventoryRepository,
	placements repository.PlacementRepository,
	batches repository.BatchRepository,
	excel ExcelGenerator,
	labels LabelPDFGenerator,
) *UseCase {
	return &UseCase{
		products:   products,
		categories: categories,
		warehouses: warehouses,
		inventory:  inventory,
		placements: placements,
		batches:    batches,
		excel:      excel,
		labels:     labels,
	}
}

// InventoryWorkbook arma las filas del reporte (una por par activo con
// existencias) y genera el libro Excel.
func (uc *UseCase) InventoryWorkbook() ([]byte, error) {
	products, err := uc.products.ListActive()
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return uc.excel.InventoryWorkbook(nil)
	}

	productIDs := make([]int64, 0, len(products))
	categoryIDs := make([]int64, 0, len(products))
	seenCategory := make(map[int64]bool)
	for _, p := range products {
		productIDs = append(productIDs, p.ID)
		if !seenCategory[p.CategoryID] {
			seenCategory[p.CategoryID] = true
			categoryIDs = append(categoryIDs, p.CategoryID)
		}
	}
	categoryNames, err := uc.categories.NamesByIDs(categoryIDs)
	if err != nil {
		return nil, err
	}
	inventoryByProduct, err := uc.inventory.ListActiveByProductIDs(productIDs)
	if err != nil {
		return nil, err
	}

	var warehouseIDs []int64
	seenWarehouse := make(map[int64]bool)
	for _, rows := range inventoryByProduct {
		for _, inv := range rows {
			if !seenWarehouse[inv.WarehouseID] {
				seenWarehouse[inv.WarehouseID] = true
				warehouseIDs = append(warehouseIDs, inv.WarehouseID)
			}
		}
	}
	warehouseNames, err := uc.warehouses.NamesByIDs(warehouseIDs)
	if err != nil {
		return nil, err
	}

	var rows []InventoryRow
	for _, p := range products {
		for _, inv := range inventoryByProduct[p.ID] {
			rows = append(rows, InventoryRow{
				ProductCode:   p.Code,
				ProductName:   p.Name,
				CategoryName:  categoryNames[p.CategoryID],
				WarehouseName: warehouseNames[inv.WarehouseID],
				Quantity:      inv.QuantityAvailable,
				MinStockLevel: inv.MinStockLevel,
				ReorderPoint:  inv.ReorderPoint,
			})
		}
	}
	return uc.excel.InventoryWorkbook(rows)
}

// PlacementLabels genera el PDF de etiquetas de las colocaciones activas de
// un producto.
func (uc *UseCase) PlacementLabels(productID int64) ([]byte, error) {
	product, err := uc.products.GetActiveByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("producto %d: %w", productID, domain.ErrNotFound)
	}
	placements, err := uc.placements.ListActiveByProduct(productID)
	if err != nil {
		return nil, err
	}

	var batchIDs, warehouseIDs []int64
	seenBatch := make(map[int64]bool)
	seenWarehouse := make(map[int64]bool)
	for _, pl := range placements {
		if !seenBatch[pl.BatchID] {
			seenBatch[pl.BatchID] = true
			batchIDs = append(batchIDs, pl.BatchID)
		}
		if !seenWarehouse[pl.WarehouseID] {
			seenWarehouse[pl.WarehouseID] = true
			warehouseIDs = append(warehouseIDs, pl.WarehouseID)
		}
	}
	batches, err := uc.batches.ActiveByIDs(batchIDs)
	if err != nil {
		return nil, err
	}
	warehouseNames, err := uc.warehouses.NamesByIDs(warehouseIDs)
	if err != nil {
		return nil, err
	}

	qrContent := product.QRCode
	if qrContent == "" {
		qrContent = product.Code
	}
	rows := make([]LabelRow, 0, len(placements))
	for _, pl := range placements {
		var lotCode string
		if b := batches[pl.BatchID]; b != nil {
			lotCode = b.LotCode
		}
		rows = append(rows, LabelRow{
			ProductCode:   product.Code,
			ProductName:   product.Name,
			QRContent:     qrContent,
			LotCode:       lotCode,
			WarehouseName: warehouseNames[pl.WarehouseID],
			Aisle:         pl.Aisle,
			Bin:           pl.Bin,
			Quantity:      pl.Quantity,
		})
	}
	return uc.labels.PlacementLabels(rows)
}
