package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ids-inventory-api/internal/domain/entity"
	"github.com/jhoicas/ids-inventory-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

const inventoryColumns = `id, product_id, warehouse_id, quantity_available, min_stock_level, max_stock_level, reorder_point, created_by, updated_by, created_at, updated_at, row_status`

// InventoryRepo implementación del puerto InventoryRepository sobre
// PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de inventario. Pasar pool o
// tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// GetByID obtiene una fila de inventario por ID; (nil, nil) si no existe.
func (r *InventoryRepo) GetByID(id int64) (*entity.Inventory, error) {
	return r.get(`SELECT `+inventoryColumns+` FROM inventory WHERE id = $1`, id)
}

// GetByPair obtiene la fila de inventario del par (producto, bodega);
// (nil, nil) si no existe.
func (r *InventoryRepo) GetByPair(productID, warehouseID int64) (*entity.Inventory, error) {
	return r.get(
		`SELECT `+inventoryColumns+` FROM inventory WHERE product_id = $1 AND warehouse_id = $2`,
		productID, warehouseID,
	)
}

// EnsurePair crea la fila del par con cantidad cero si aún no existe. Dos
// primeras recepciones concurrentes del mismo par chocan aquí en el índice
// único: la segunda espera a que la primera confirme y su LockPair ya
// encuentra fila que bloquear.
func (r *InventoryRepo) EnsurePair(productID, warehouseID int64, actor string) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO inventory (product_id, warehouse_id, quantity_available, created_by, updated_by, created_at, updated_at, row_status)
		VALUES ($1, $2, 0, $3, $3, now(), now(), true)
		ON CONFLICT (product_id, warehouse_id) DO NOTHING`,
		productID, warehouseID, actor,
	)
	if err != nil {
		return fmt.Errorf("ensure inventory pair: %w", err)
	}
	return nil
}

// LockPair bloquea la fila del par con SELECT ... FOR UPDATE; (nil, nil) si
// aún no existe. Llamar solo dentro de una transacción: serializa los
// recálculos concurrentes del mismo par.
func (r *InventoryRepo) LockPair(productID, warehouseID int64) (*entity.Inventory, error) {
	return r.get(
		`SELECT `+inventoryColumns+` FROM inventory WHERE product_id = $1 AND warehouse_id = $2 FOR UPDATE`,
		productID, warehouseID,
	)
}

func (r *InventoryRepo) get(query string, args ...any) (*entity.Inventory, error) {
	var inv entity.Inventory
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&inv.ID, &inv.ProductID, &inv.WarehouseID, &inv.QuantityAvailable,
		&inv.MinStockLevel, &inv.MaxStockLevel, &inv.ReorderPoint,
		&inv.CreatedBy, &inv.UpdatedBy, &inv.CreatedAt, &inv.UpdatedAt, &inv.RowStatus,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &inv, nil
}

// UpsertQuantity sobreescribe quantity_available del par y reactiva la fila,
// dejando intactos los umbrales. Crea la fila si no existe (único punto de
// alta de inventario junto con UpsertThresholds).
func (r *InventoryRepo) UpsertQuantity(productID, warehouseID int64, quantity decimal.Decimal, actor string) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO inventory (product_id, warehouse_id, quantity_available, created_by, updated_by, created_at, updated_at, row_status)
		VALUES ($1, $2, $3, $4, $4, now(), now(), true)
		ON CONFLICT (product_id, warehouse_id) DO UPDATE
		SET quantity_available = EXCLUDED.quantity_available,
		    updated_by = EXCLUDED.updated_by,
		    updated_at = now(),
		    row_status = true`,
		productID, warehouseID, quantity, actor,
	)
	if err != nil {
		return fmt.Errorf("upsert inventory quantity: %w", err)
	}
	return nil
}

// Update actualiza la fila completa de inventario.
func (r *InventoryRepo) Update(inv *entity.Inventory) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE inventory
		SET quantity_available = $2, min_stock_level = $3, max_stock_level = $4,
		    reorder_point = $5, updated_by = $6, updated_at = $7, row_status = $8
		WHERE id = $1`,
		inv.ID, inv.QuantityAvailable, inv.MinStockLevel, inv.MaxStockLevel,
		inv.ReorderPoint, inv.UpdatedBy, inv.UpdatedAt, inv.RowStatus,
	)
	if err != nil {
		return fmt.Errorf("update inventory: %w", err)
	}
	return nil
}

// UpsertThresholds actualiza los umbrales del par sin tocar
// quantity_available existente; crea la fila con la cantidad dada si no
// existe.
func (r *InventoryRepo) UpsertThresholds(inv *entity.Inventory) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO inventory (product_id, warehouse_id, quantity_available, min_stock_level, max_stock_level, reorder_point, created_by, updated_by, created_at, updated_at, row_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now(), true)
		ON CONFLICT (product_id, warehouse_id) DO UPDATE
		SET min_stock_level = EXCLUDED.min_stock_level,
		    max_stock_level = EXCLUDED.max_stock_level,
		    reorder_point = EXCLUDED.reorder_point,
		    updated_by = EXCLUDED.updated_by,
		    updated_at = now(),
		    row_status = true`,
		inv.ProductID, inv.WarehouseID, inv.QuantityAvailable,
		inv.MinStockLevel, inv.MaxStockLevel, inv.ReorderPoint,
		inv.CreatedBy, inv.UpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("upsert inventory thresholds: %w", err)
	}
	return nil
}

// ListActive lista todas las filas activas de inventario.
func (r *InventoryRepo) ListActive() ([]*entity.Inventory, error) {
	return r.list(`SELECT ` + inventoryColumns + ` FROM inventory WHERE row_status = true ORDER BY product_id, warehouse_id`)
}

// ListActiveByProduct lista las filas activas de inventario de un producto.
func (r *InventoryRepo) ListActiveByProduct(productID int64) ([]*entity.Inventory, error) {
	return r.list(
		`SELECT `+inventoryColumns+` FROM inventory WHERE product_id = $1 AND row_status = true ORDER BY warehouse_id`,
		productID,
	)
}

// ListActiveByProductIDs carga en bloque el inventario activo de un conjunto
// de productos, agrupado por product_id.
func (r *InventoryRepo) ListActiveByProductIDs(productIDs []int64) (map[int64][]*entity.Inventory, error) {
	result := make(map[int64][]*entity.Inventory, len(productIDs))
	if len(productIDs) == 0 {
		return result, nil
	}
	list, err := r.list(
		`SELECT `+inventoryColumns+` FROM inventory WHERE product_id = ANY($1) AND row_status = true ORDER BY warehouse_id`,
		productIDs,
	)
	if err != nil {
		return nil, err
	}
	for _, inv := range list {
		result[inv.ProductID] = append(result[inv.ProductID], inv)
	}
	return result, nil
}

// DeactivateByProduct marca como inactivas todas las filas de inventario de
// un producto (propagación de borrado lógico).
func (r *InventoryRepo) DeactivateByProduct(productID int64, updatedBy string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE inventory SET row_status = false, updated_by = $2, updated_at = now() WHERE product_id = $1`,
		productID, updatedBy,
	)
	if err != nil {
		return fmt.Errorf("deactivate inventory: %w", err)
	}
	return nil
}

func (r *InventoryRepo) list(query string, args ...any) ([]*entity.Inventory, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	var list []*entity.Inventory
	for rows.Next() {
		var inv entity.Inventory
		if err := rows.Scan(
			&inv.ID, &inv.ProductID, &inv.WarehouseID, &inv.QuantityAvailable,
			&inv.MinStockLevel, &inv.MaxStockLevel, &inv.ReorderPoint,
			&inv.CreatedBy, &inv.UpdatedBy, &inv.CreatedAt, &inv.UpdatedAt, &inv.RowStatus,
		); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}
