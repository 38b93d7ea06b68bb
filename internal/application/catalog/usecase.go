package catalog

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ids-inventory-api/internal/application/dto"
	"github.com/jhoicas/ids-inventory-api/internal/domain"
	"github.com/jhoicas/ids-inventory-api/internal/domain/entity"
	"github.com/jhoicas/ids-inventory-api/internal/domain/repository"
)

// UseCase casos de uso del catálogo: CRUD de productos y proyecciones de
// lectura (ficha + existencias por bodega + colocaciones).
type UseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	warehouses repository.WarehouseRepository
	inventory  repository.InventoryRepository
	placements repository.PlacementRepository
	batches    repository.BatchRepository
}

// NewUseCase construye el caso de uso del catálogo.
func NewUseCase(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	warehouses repository.WarehouseRepository,
	inventory repository.InventoryRepository,
	placements repository.PlacementRepository,
	batches repository.BatchRepository,
) *UseCase {
	return &UseCase{
		products:   products,
		categories: categories,
		warehouses: warehouses,
		inventory:  inventory,
		placements: placements,
		batches:    batches,
	}
}

// resolveCategory resuelve la categoría del producto: por id existente o por
// nombre nuevo (get-or-create), exactamente uno de los dos.
func (uc *UseCase) resolveCategory(categoryID *int64, newName string) (*entity.Category, error) {
	switch {
	case categoryID != nil && newName != "":
		return nil, fmt.Errorf("category_id y new_category_name son excluyentes: %w", domain.ErrInvalidInput)
	case categoryID != nil:
		category, err := uc.categories.GetByID(*categoryID)
		if err != nil {
			return nil, err
		}
		if category == nil || !category.RowStatus {
			return nil, fmt.Errorf("categoría %d: %w", *categoryID, domain.ErrNotFound)
		}
		return category, nil
	case newName != "":
		return uc.categories.GetOrCreateByName(newName)
	default:
		return nil, fmt.Errorf("se requiere category_id o new_category_name: %w", domain.ErrInvalidInput)
	}
}

// Create crea un producto resolviendo la categoría por id o por nombre nuevo.
func (uc *UseCase) Create(actor string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	category, err := uc.resolveCategory(in.CategoryID, in.NewCategoryName)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		Code:         in.Code,
		QRCode:       in.QRCode,
		Name:         in.Name,
		Description:  in.Description,
		CategoryID:   category.ID,
		ReorderPoint: in.ReorderPoint,
		Brand:        in.Brand,
		Weight:       in.Weight,
		Dimensions:   in.Dimensions,
		Images:       in.Images,
		CreatedBy:    actor,
		UpdatedBy:    actor,
		CreatedAt:    now,
		UpdatedAt:    now,
		RowStatus:    true,
	}
	if _, err := uc.products.Create(product); err != nil {
		return nil, err
	}
	if err := uc.applyInventoryDetails(actor, product.ID, in.InventoryDetails); err != nil {
		return nil, err
	}
	resp := toProductResponse(product, category.Name)
	return &resp, nil
}

// applyInventoryDetails upserta los umbrales por bodega enviados junto con el
// producto. Solo toca umbrales: la cantidad disponible es del motor de
// colocaciones.
func (uc *UseCase) applyInventoryDetails(actor string, productID int64, details []dto.ProductInventoryInput) error {
	now := time.Now()
	for _, d := range details {
		warehouse, err := uc.warehouses.GetByID(d.WarehouseID)
		if err != nil {
			return err
		}
		if warehouse == nil || !warehouse.RowStatus {
			return fmt.Errorf("bodega %d: %w", d.WarehouseID, domain.ErrNotFound)
		}
		if d.MinStockLevel != nil && d.MaxStockLevel != nil && d.MinStockLevel.GreaterThan(*d.MaxStockLevel) {
			return fmt.Errorf("min_stock_level > max_stock_level: %w", domain.ErrInvalidInput)
		}
		row := &entity.Inventory{
			ProductID:         productID,
			WarehouseID:       d.WarehouseID,
			QuantityAvailable: decimal.Zero,
			MinStockLevel:     d.MinStockLevel,
			MaxStockLevel:     d.MaxStockLevel,
			ReorderPoint:      d.ReorderPoint,
			CreatedBy:         actor,
			UpdatedBy:         actor,
			CreatedAt:         now,
			UpdatedAt:         now,
			RowStatus:         true,
		}
		if err := uc.inventory.UpsertThresholds(row); err != nil {
			return err
		}
	}
	return nil
}

// Update actualiza un producto activo; los campos nil quedan como están.
func (uc *UseCase) Update(actor string, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.products.GetActiveByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("producto %d: %w", id, domain.ErrNotFound)
	}
	if in.Code != nil {
		product.Code = *in.Code
	}
	if in.QRCode != nil {
		product.QRCode = *in.QRCode
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.CategoryID != nil || in.NewCategoryName != nil {
		var newName string
		if in.NewCategoryName != nil {
			newName = *in.NewCategoryName
		}
		category, err := uc.resolveCategory(in.CategoryID, newName)
		if err != nil {
			return nil, err
		}
		product.CategoryID = category.ID
	}
	if in.ReorderPoint != nil {
		product.ReorderPoint = *in.ReorderPoint
	}
	if in.Brand != nil {
		product.Brand = *in.Brand
	}
	if in.Weight != nil {
		product.Weight = *in.Weight
	}
	if in.Dimensions != nil {
		product.Dimensions = *in.Dimensions
	}
	if in.Images != nil {
		product.Images = in.Images
	}
	product.UpdatedBy = actor
	product.UpdatedAt = time.Now()
	if err := uc.products.Update(product); err != nil {
		return nil, err
	}
	if err := uc.applyInventoryDetails(actor, product.ID, in.InventoryDetails); err != nil {
		return nil, err
	}
	names, err := uc.categories.NamesByIDs([]int64{product.CategoryID})
	if err != nil {
		return nil, err
	}
	resp := toProductResponse(product, names[product.CategoryID])
	return &resp, nil
}

// Delete da de baja lógica un producto y desactiva sus filas de inventario.
// Las colocaciones conservan su historia; al quedar inactivo el producto
// salen de todas las proyecciones.
func (uc *UseCase) Delete(actor string, id int64) error {
	product, err := uc.products.GetActiveByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return fmt.Errorf("producto %d: %w", id, domain.ErrNotFound)
	}
	if err := uc.products.SoftDelete(id, actor); err != nil {
		return err
	}
	return uc.inventory.DeactivateByProduct(id, actor)
}

// GetDetail arma la proyección de lectura de un producto activo: ficha,
// existencias por bodega, total y colocaciones. Devuelve (nil, nil) si el
// producto no existe o está inactivo.
func (uc *UseCase) GetDetail(id int64) (*dto.ProductDetailResponse, error) {
	product, err := uc.products.GetActiveByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	details, err := uc.buildDetails([]*entity.Product{product})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

// List devuelve la proyección de todos los productos activos. Las existencias
// y colocaciones se cargan en bloque, no por producto.
func (uc *UseCase) List() (*dto.ProductListResponse, error) {
	products, err := uc.products.ListActive()
	if err != nil {
		return nil, err
	}
	details, err := uc.buildDetails(products)
	if err != nil {
		return nil, err
	}
	return &dto.ProductListResponse{Items: details, Total: len(details)}, nil
}

// SearchByName busca productos activos por subcadena del nombre y devuelve
// sus proyecciones.
func (uc *UseCase) SearchByName(pattern string) (*dto.ProductListResponse, error) {
	products, err := uc.products.SearchByName(pattern)
	if err != nil {
		return nil, err
	}
	details, err := uc.buildDetails(products)
	if err != nil {
		return nil, err
	}
	return &dto.ProductListResponse{Items: details, Total: len(details)}, nil
}

// buildDetails resuelve categorías, inventario, colocaciones y nombres de
// bodega para el conjunto de productos con una consulta por tabla.
func (uc *UseCase) buildDetails(products []*entity.Product) ([]dto.ProductDetailResponse, error) {
	if len(products) == 0 {
		return []dto.ProductDetailResponse{}, nil
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
	placementsByProduct, err := uc.placements.ListActiveByProductIDs(productIDs)
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

	var batchIDs []int64
	seenBatch := make(map[int64]bool)
	for _, rows := range placementsByProduct {
		for _, pl := range rows {
			if !seenBatch[pl.BatchID] {
				seenBatch[pl.BatchID] = true
				batchIDs = append(batchIDs, pl.BatchID)
			}
		}
	}
	batchByID, err := uc.batches.ActiveByIDs(batchIDs)
	if err != nil {
		return nil, err
	}

	details := make([]dto.ProductDetailResponse, 0, len(products))
	for _, p := range products {
		detail := dto.ProductDetailResponse{
			Product:    toProductResponse(p, categoryNames[p.CategoryID]),
			Stock:      []dto.WarehouseStock{},
			TotalStock: decimal.Zero,
			Placements: []dto.PlacementResponse{},
		}
		for _, inv := range inventoryByProduct[p.ID] {
			detail.Stock = append(detail.Stock, dto.WarehouseStock{
				WarehouseID:       inv.WarehouseID,
				WarehouseName:     warehouseNames[inv.WarehouseID],
				QuantityAvailable: inv.QuantityAvailable,
			})
			detail.TotalStock = detail.TotalStock.Add(inv.QuantityAvailable)
		}
		for _, pl := range placementsByProduct[p.ID] {
			resp := dto.PlacementResponse{
				ID:          pl.ID,
				BatchID:     pl.BatchID,
				ProductID:   pl.ProductID,
				WarehouseID: pl.WarehouseID,
				Quantity:    pl.Quantity,
				Aisle:       pl.Aisle,
				Bin:         pl.Bin,
				CreatedAt:   pl.CreatedAt,
				UpdatedAt:   pl.UpdatedAt,
			}
			if b := batchByID[pl.BatchID]; b != nil {
				resp.Batch = &dto.BatchDetail{
					ID:              b.ID,
					LotCode:         b.LotCode,
					ManufactureDate: b.ManufactureDate,
					ExpiryDate:      b.ExpiryDate,
					Quantity:        b.Quantity,
				}
			}
			detail.Placements = append(detail.Placements, resp)
		}
		details = append(details, detail)
	}
	return details, nil
}

func toProductResponse(p *entity.Product, categoryName string) dto.ProductResponse {
	return dto.ProductResponse{
		ID:           p.ID,
		Code:         p.Code,
		QRCode:       p.QRCode,
		Name:         p.Name,
		Description:  p.Description,
		CategoryID:   p.CategoryID,
		CategoryName: categoryName,
		ReorderPoint: p.ReorderPoint,
		Brand:        p.Brand,
		Weight:       p.Weight,
		Dimensions:   p.Dimensions,
		Images:       p.Images,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
