package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ids-inventory-api/internal/domain/entity"
)

// BatchRepository define el puerto de persistencia para Batch.
type BatchRepository interface {
	Create(batch *entity.Batch) (int64, error)
	GetByID(id int64) (*entity.Batch, error)
	// ActiveByIDs devuelve los lotes activos del conjunto, indexados por id.
	ActiveByIDs(ids []int64) (map[int64]*entity.Batch, error)
}

// PlacementRepository define el puerto de persistencia para Placement.
// SumActiveByPair se usa dentro de la transacción del motor: recalcula el
// total del par (producto, bodega) sobre TODAS las colocaciones activas.
type PlacementRepository interface {
	Create(placement *entity.Placement) (int64, error)
	GetActiveByID(id int64) (*entity.Placement, error)
	Update(placement *entity.Placement) error
	SoftDelete(id int64, updatedBy string) error
	SumActiveByPair(productID, warehouseID int64) (decimal.Decimal, error)
	ListActive() ([]*entity.Placement, error)
	ListActiveByProduct(productID int64) ([]*entity.Placement, error)
	// ListActiveByProductIDs carga en bloque las colocaciones activas de un
	// conjunto de productos (evita el N+1 del listado de catálogo).
	ListActiveByProductIDs(productIDs []int64) (map[int64][]*entity.Placement, error)
}

// InventoryRepository define el puerto para las filas derivadas de inventario
// por par (producto, bodega).
type InventoryRepository interface {
	GetByID(id int64) (*entity.Inventory, error)
	GetByPair(productID, warehouseID int64) (*entity.Inventory, error)
	// EnsurePair crea la fila del par con cantidad cero si aún no existe, sin
	// tocar una existente. Llamar antes de LockPair: un FOR UPDATE sobre una
	// fila inexistente no bloquea nada.
	EnsurePair(productID, warehouseID int64, actor string) error
	// LockPair bloquea la fila del par con SELECT ... FOR UPDATE y la
	// devuelve; (nil, nil) si aún no existe. Solo tiene sentido dentro de una
	// transacción: serializa los recálculos concurrentes del mismo par.
	LockPair(productID, warehouseID int64) (*entity.Inventory, error)
	// UpsertQuantity sobreescribe quantity_available del par dejando intactos
	// los umbrales; crea la fila si no existe.
	UpsertQuantity(productID, warehouseID int64, quantity decimal.Decimal, actor string) error
	Update(inventory *entity.Inventory) error
	UpsertThresholds(inventory *entity.Inventory) error
	ListActive() ([]*entity.Inventory, error)
	ListActiveByProduct(productID int64) ([]*entity.Inventory, error)
	ListActiveByProductIDs(productIDs []int64) (map[int64][]*entity.Inventory, error)
	// DeactivateByProduct propaga el borrado lógico del producto a sus filas
	// de inventario.
	DeactivateByProduct(productID int64, updatedBy string) error
}
