package placement

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/ids-inventory-api/internal/application/dto"
	"github.com/jhoicas/ids-inventory-api/internal/domain"
	"github.com/jhoicas/ids-inventory-api/internal/domain/entity"
	"github.com/jhoicas/ids-inventory-api/internal/domain/repository"
)

// UseCase motor de colocaciones: recepción de stock (lote + colocaciones) y
// recálculo del inventario derivado. Toda escritura que toca colocaciones
// pasa por aquí para que quantity_available nunca quede desincronizado.
type UseCase struct {
	products   repository.ProductRepository
	warehouses repository.WarehouseRepository
	placements repository.PlacementRepository
	tx         TxRunner
}

// NewUseCase construye el motor.
func NewUseCase(
	products repository.ProductRepository,
	warehouses repository.WarehouseRepository,
	placements repository.PlacementRepository,
	tx TxRunner,
) *UseCase {
	return &UseCase{products: products, warehouses: warehouses, placements: placements, tx: tx}
}

// Create registra una recepción de stock: valida producto y bodegas por
// fuera, y dentro de una sola transacción crea el lote, sus colocaciones y
// recalcula el inventario de cada par (producto, bodega) tocado como la suma
// de TODAS sus colocaciones activas. Si cualquier paso falla no persiste
// nada.
func (uc *UseCase) Create(ctx context.Context, actor string, in dto.CreatePlacementRequest) (*dto.BatchResponse, error) {
	if len(in.Placements) == 0 {
		return nil, domain.ErrEmptyPlacementList
	}
	product, err := uc.products.GetActiveByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("producto %d: %w", in.ProductID, domain.ErrNotFound)
	}
	warehouseIDs := make([]int64, 0, len(in.Placements))
	seen := make(map[int64]bool, len(in.Placements))
	for _, p := range in.Placements {
		if p.Quantity <= 0 {
			return nil, fmt.Errorf("cantidad inválida en bodega %d: %w", p.WarehouseID, domain.ErrInvalidInput)
		}
		if seen[p.WarehouseID] {
			continue
		}
		seen[p.WarehouseID] = true
		warehouseIDs = append(warehouseIDs, p.WarehouseID)
	}
	for _, id := range warehouseIDs {
		wh, err := uc.warehouses.GetByID(id)
		if err != nil {
			return nil, err
		}
		if wh == nil || !wh.RowStatus {
			return nil, fmt.Errorf("bodega %d: %w", id, domain.ErrNotFound)
		}
	}

	lotCode := in.LotCode
	if lotCode == "" {
		lotCode = uuid.NewString()
	}
	now := time.Now()
	batch := &entity.Batch{
		ProductID:       product.ID,
		LotCode:         lotCode,
		ManufactureDate: in.ManufactureDate,
		ExpiryDate:      in.ExpiryDate,
		Quantity:        in.Quantity,
		CreatedBy:       actor,
		UpdatedBy:       actor,
		CreatedAt:       now,
		UpdatedAt:       now,
		RowStatus:       true,
	}

	var created []*entity.Placement
	err = uc.tx.Run(ctx, func(
		batchRepo repository.BatchRepository,
		placementRepo repository.PlacementRepository,
		inventoryRepo repository.InventoryRepository,
	) error {
		if _, err := batchRepo.Create(batch); err != nil {
			return err
		}
		for _, p := range in.Placements {
			row := &entity.Placement{
				BatchID:     batch.ID,
				ProductID:   product.ID,
				WarehouseID: p.WarehouseID,
				Quantity:    p.Quantity,
				Aisle:       p.Aisle,
				Bin:         p.Bin,
				CreatedBy:   actor,
				UpdatedBy:   actor,
				CreatedAt:   now,
				UpdatedAt:   now,
				RowStatus:   true,
			}
			if _, err := placementRepo.Create(row); err != nil {
				return err
			}
			created = append(created, row)
		}
		for _, warehouseID := range warehouseIDs {
			if err := recomputePair(placementRepo, inventoryRepo, product.ID, warehouseID, actor); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := &dto.BatchResponse{
		ID:              batch.ID,
		ProductID:       batch.ProductID,
		LotCode:         batch.LotCode,
		ManufactureDate: batch.ManufactureDate,
		ExpiryDate:      batch.ExpiryDate,
		Quantity:        batch.Quantity,
		CreatedAt:       batch.CreatedAt,
	}
	for _, p := range created {
		resp.Placements = append(resp.Placements, toPlacementResponse(p))
	}
	return resp, nil
}

// Update corrige una colocación (cantidad, pasillo, bin o bodega destino) y
// recalcula el inventario de los pares afectados. Si la colocación cambia de
// bodega se recalculan la bodega de origen y la de destino.
func (uc *UseCase) Update(ctx context.Context, actor string, id int64, in dto.UpdatePlacementRequest) (*dto.PlacementResponse, error) {
	current, err := uc.placements.GetActiveByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, fmt.Errorf("colocación %d: %w", id, domain.ErrNotFound)
	}
	oldWarehouseID := current.WarehouseID

	if in.WarehouseID != nil && *in.WarehouseID != oldWarehouseID {
		wh, err := uc.warehouses.GetByID(*in.WarehouseID)
		if err != nil {
			return nil, err
		}
		if wh == nil || !wh.RowStatus {
			return nil, fmt.Errorf("bodega %d: %w", *in.WarehouseID, domain.ErrNotFound)
		}
		current.WarehouseID = *in.WarehouseID
	}
	if in.Quantity != nil {
		if *in.Quantity <= 0 {
			return nil, fmt.Errorf("cantidad inválida: %w", domain.ErrInvalidInput)
		}
		current.Quantity = *in.Quantity
	}
	if in.Aisle != nil {
		current.Aisle = *in.Aisle
	}
	if in.Bin != nil {
		current.Bin = *in.Bin
	}
	current.UpdatedBy = actor
	current.UpdatedAt = time.Now()

	err = uc.tx.Run(ctx, func(
		_ repository.BatchRepository,
		placementRepo repository.PlacementRepository,
		inventoryRepo repository.InventoryRepository,
	) error {
		if err := placementRepo.Update(current); err != nil {
			return err
		}
		if err := recomputePair(placementRepo, inventoryRepo, current.ProductID, current.WarehouseID, actor); err != nil {
			return err
		}
		if current.WarehouseID != oldWarehouseID {
			return recomputePair(placementRepo, inventoryRepo, current.ProductID, oldWarehouseID, actor)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := toPlacementResponse(current)
	return &resp, nil
}

// Delete da de baja lógica una colocación y recalcula el inventario de su
// par. El lote queda intacto.
func (uc *UseCase) Delete(ctx context.Context, actor string, id int64) error {
	current, err := uc.placements.GetActiveByID(id)
	if err != nil {
		return err
	}
	if current == nil {
		return fmt.Errorf("colocación %d: %w", id, domain.ErrNotFound)
	}
	return uc.tx.Run(ctx, func(
		_ repository.BatchRepository,
		placementRepo repository.PlacementRepository,
		inventoryRepo repository.InventoryRepository,
	) error {
		if err := placementRepo.SoftDelete(id, actor); err != nil {
			return err
		}
		return recomputePair(placementRepo, inventoryRepo, current.ProductID, current.WarehouseID, actor)
	})
}

// GetByID obtiene una colocación activa; (nil, nil) si no existe o está
// inactiva.
func (uc *UseCase) GetByID(id int64) (*dto.PlacementResponse, error) {
	current, err := uc.placements.GetActiveByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, nil
	}
	resp := toPlacementResponse(current)
	return &resp, nil
}

// List lista todas las colocaciones activas.
func (uc *UseCase) List() ([]dto.PlacementResponse, error) {
	list, err := uc.placements.ListActive()
	if err != nil {
		return nil, err
	}
	out := make([]dto.PlacementResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toPlacementResponse(p))
	}
	return out, nil
}

// recomputePair bloquea la fila de inventario del par, suma todas sus
// colocaciones activas y sobreescribe quantity_available. El lock serializa
// recepciones concurrentes sobre el mismo par: la última en obtenerlo ve las
// colocaciones de las anteriores y deja la suma correcta. EnsurePair crea la
// fila en la primera recepción del par: sin ella el FOR UPDATE no tendría
// fila que bloquear y dos primeras recepciones concurrentes dejarían una
// suma parcial.
func recomputePair(
	placementRepo repository.PlacementRepository,
	inventoryRepo repository.InventoryRepository,
	productID, warehouseID int64,
	actor string,
) error {
	if err := inventoryRepo.EnsurePair(productID, warehouseID, actor); err != nil {
		return err
	}
	if _, err := inventoryRepo.LockPair(productID, warehouseID); err != nil {
		return err
	}
	total, err := placementRepo.SumActiveByPair(productID, warehouseID)
	if err != nil {
		return err
	}
	return inventoryRepo.UpsertQuantity(productID, warehouseID, total, actor)
}

func toPlacementResponse(p *entity.Placement) dto.PlacementResponse {
	return dto.PlacementResponse{
		ID:          p.ID,
		BatchID:     p.BatchID,
		ProductID:   p.ProductID,
		WarehouseID: p.WarehouseID,
		Quantity:    p.Quantity,
		Aisle:       p.Aisle,
		Bin:         p.Bin,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
