package usecase

import (
	"fmt"
	"time"

	"github.com/jhoicas/ids-inventory-api/internal/application/dto"
	"github.com/jhoicas/ids-inventory-api/internal/domain"
	"github.com/jhoicas/ids-inventory-api/internal/domain/entity"
	"github.com/jhoicas/ids-inventory-api/internal/domain/repository"
)

// WarehouseUseCase casos de uso para sedes y bodegas.
type WarehouseUseCase struct {
	locations  repository.LocationRepository
	warehouses repository.WarehouseRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(locations repository.LocationRepository, warehouses repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{locations: locations, warehouses: warehouses}
}

// CreateLocation crea una sede.
func (uc *WarehouseUseCase) CreateLocation(actor string, in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	now := time.Now()
	location := &entity.Location{
		Name:      in.Name,
		Address:   in.Address,
		CreatedBy: actor,
		UpdatedBy: actor,
		CreatedAt: now,
		UpdatedAt: now,
		RowStatus: true,
	}
	if _, err := uc.locations.Create(location); err != nil {
		return nil, err
	}
	return &dto.LocationResponse{ID: location.ID, Name: location.Name, Address: location.Address}, nil
}

// ListLocations lista las sedes activas.
func (uc *WarehouseUseCase) ListLocations() ([]dto.LocationResponse, error) {
	list, err := uc.locations.ListActive()
	if err != nil {
		return nil, err
	}
	out := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		out = append(out, dto.LocationResponse{ID: l.ID, Name: l.Name, Address: l.Address})
	}
	return out, nil
}

// GetLocation obtiene una sede activa; (nil, nil) si no existe.
func (uc *WarehouseUseCase) GetLocation(id int64) (*dto.LocationResponse, error) {
	location, err := uc.locations.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil || !location.RowStatus {
		return nil, nil
	}
	return &dto.LocationResponse{ID: location.ID, Name: location.Name, Address: location.Address}, nil
}

// CreateWarehouse crea una bodega dentro de una sede existente.
func (uc *WarehouseUseCase) CreateWarehouse(actor string, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	location, err := uc.locations.GetByID(in.LocationID)
	if err != nil {
		return nil, err
	}
	if location == nil || !location.RowStatus {
		return nil, fmt.Errorf("sede %d: %w", in.LocationID, domain.ErrNotFound)
	}
	now := time.Now()
	warehouse := &entity.Warehouse{
		LocationID: in.LocationID,
		Name:       in.Name,
		CreatedBy:  actor,
		UpdatedBy:  actor,
		CreatedAt:  now,
		UpdatedAt:  now,
		RowStatus:  true,
	}
	if _, err := uc.warehouses.Create(warehouse); err != nil {
		return nil, err
	}
	return &dto.WarehouseResponse{ID: warehouse.ID, LocationID: warehouse.LocationID, Name: warehouse.Name}, nil
}

// GetWarehouse obtiene una bodega activa; (nil, nil) si no existe.
func (uc *WarehouseUseCase) GetWarehouse(id int64) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.warehouses.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil || !warehouse.RowStatus {
		return nil, nil
	}
	return &dto.WarehouseResponse{ID: warehouse.ID, LocationID: warehouse.LocationID, Name: warehouse.Name}, nil
}

// ListWarehouses lista las bodegas activas.
func (uc *WarehouseUseCase) ListWarehouses() ([]dto.WarehouseResponse, error) {
	list, err := uc.warehouses.ListActive()
	if err != nil {
		return nil, err
	}
	out := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		out = append(out, dto.WarehouseResponse{ID: w.ID, LocationID: w.LocationID, Name: w.Name})
	}
	return out, nil
}
