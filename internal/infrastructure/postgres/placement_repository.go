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

var _ repository.PlacementRepository = (*PlacementRepo)(nil)

const placementColumns = `id, batch_id, product_id, warehouse_id, quantity, aisle, bin, created_by, updated_by, created_at, updated_at, row_status`

// PlacementRepo implementación del puerto PlacementRepository sobre
// PostgreSQL (usable con pool o tx).
type PlacementRepo struct {
	q Querier
}

// NewPlacementRepository construye el adaptador de colocaciones. Pasar pool o
// tx (Querier).
func NewPlacementRepository(q Querier) *PlacementRepo {
	return &PlacementRepo{q: q}
}

// Create persiste una colocación nueva y devuelve su id.
func (r *PlacementRepo) Create(p *entity.Placement) (int64, error) {
	err := r.q.QueryRow(context.Background(), `
		INSERT INTO placements (batch_id, product_id, warehouse_id, quantity, aisle, bin, created_by, updated_by, created_at, updated_at, row_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`,
		p.BatchID, p.ProductID, p.WarehouseID, p.Quantity, p.Aisle, p.Bin,
		p.CreatedBy, p.UpdatedBy, p.CreatedAt, p.UpdatedAt, p.RowStatus,
	).Scan(&p.ID)
	if err != nil {
		return 0, fmt.Errorf("insert placement: %w", err)
	}
	return p.ID, nil
}

// GetActiveByID obtiene una colocación activa por ID; (nil, nil) si no existe
// o está inactiva.
func (r *PlacementRepo) GetActiveByID(id int64) (*entity.Placement, error) {
	var p entity.Placement
	err := r.q.QueryRow(context.Background(),
		`SELECT `+placementColumns+` FROM placements WHERE id = $1 AND row_status = true`, id,
	).Scan(
		&p.ID, &p.BatchID, &p.ProductID, &p.WarehouseID, &p.Quantity, &p.Aisle, &p.Bin,
		&p.CreatedBy, &p.UpdatedBy, &p.CreatedAt, &p.UpdatedAt, &p.RowStatus,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get placement: %w", err)
	}
	return &p, nil
}

// Update actualiza cantidad/pasillo/bin/bodega de una colocación.
func (r *PlacementRepo) Update(p *entity.Placement) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE placements
		SET warehouse_id = $2, quantity = $3, aisle = $4, bin = $5, updated_by = $6, updated_at = $7
		WHERE id = $1`,
		p.ID, p.WarehouseID, p.Quantity, p.Aisle, p.Bin, p.UpdatedBy, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update placement: %w", err)
	}
	return nil
}

// SoftDelete marca la colocación como inactiva.
func (r *PlacementRepo) SoftDelete(id int64, updatedBy string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE placements SET row_status = false, updated_by = $2, updated_at = now() WHERE id = $1`,
		id, updatedBy,
	)
	if err != nil {
		return fmt.Errorf("soft delete placement: %w", err)
	}
	return nil
}

// SumActiveByPair suma la cantidad de TODAS las colocaciones activas del par
// (producto, bodega). Es el recálculo completo que usa el motor dentro de la
// transacción; devuelve cero si no hay colocaciones.
func (r *PlacementRepo) SumActiveByPair(productID, warehouseID int64) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(), `
		SELECT COALESCE(SUM(quantity), 0)
		FROM placements
		WHERE product_id = $1 AND warehouse_id = $2 AND row_status = true`,
		productID, warehouseID,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum placements: %w", err)
	}
	return total, nil
}

// ListActive lista todas las colocaciones activas.
func (r *PlacementRepo) ListActive() ([]*entity.Placement, error) {
	return r.list(`SELECT ` + placementColumns + ` FROM placements WHERE row_status = true ORDER BY id`)
}

// ListActiveByProduct lista las colocaciones activas de un producto.
func (r *PlacementRepo) ListActiveByProduct(productID int64) ([]*entity.Placement, error) {
	return r.list(
		`SELECT `+placementColumns+` FROM placements WHERE product_id = $1 AND row_status = true ORDER BY id`,
		productID,
	)
}

// ListActiveByProductIDs carga en bloque las colocaciones activas de un
// conjunto de productos, agrupadas por product_id.
func (r *PlacementRepo) ListActiveByProductIDs(productIDs []int64) (map[int64][]*entity.Placement, error) {
	result := make(map[int64][]*entity.Placement, len(productIDs))
	if len(productIDs) == 0 {
		return result, nil
	}
	list, err := r.list(
		`SELECT `+placementColumns+` FROM placements WHERE product_id = ANY($1) AND row_status = true ORDER BY id`,
		productIDs,
	)
	if err != nil {
		return nil, err
	}
	for _, p := range list {
		result[p.ProductID] = append(result[p.ProductID], p)
	}
	return result, nil
}

func (r *PlacementRepo) list(query string, args ...any) ([]*entity.Placement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list placements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Placement
	for rows.Next() {
		var p entity.Placement
		if err := rows.Scan(
			&p.ID, &p.BatchID, &p.ProductID, &p.WarehouseID, &p.Quantity, &p.Aisle, &p.Bin,
			&p.CreatedBy, &p.UpdatedBy, &p.CreatedAt, &p.UpdatedAt, &p.RowStatus,
		); err != nil {
			return nil, fmt.Errorf("scan placement: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
