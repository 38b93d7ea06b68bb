package repository

import "github.com/jhoicas/ids-inventory-api/internal/domain/entity"

// LocationRepository define el puerto de persistencia para Location.
type LocationRepository interface {
	Create(location *entity.Location) (int64, error)
	GetByID(id int64) (*entity.Location, error)
	ListActive() ([]*entity.Location, error)
}

// WarehouseRepository define el puerto de persistencia para Warehouse.
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) (int64, error)
	GetByID(id int64) (*entity.Warehouse, error)
	ListActive() ([]*entity.Warehouse, error)
	// NamesByIDs devuelve nombre por id para el conjunto dado (proyecciones).
	NamesByIDs(ids []int64) (map[int64]string, error)
}
