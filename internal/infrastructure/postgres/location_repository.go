package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ids-inventory-api/internal/domain/entity"
	"github.com/jhoicas/ids-inventory-api/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)
var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// LocationRepo implementación del puerto LocationRepository sobre PostgreSQL.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador de sedes.
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// Create persiste una sede nueva y devuelve su id.
func (r *LocationRepo) Create(l *entity.Location) (int64, error) {
	err := r.q.QueryRow(context.Background(), `
		INSERT INTO locations (name, address, created_by, updated_by, created_at, updated_at, row_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		l.Name, l.Address, l.CreatedBy, l.UpdatedBy, l.CreatedAt, l.UpdatedAt, l.RowStatus,
	).Scan(&l.ID)
	if err != nil {
		return 0, fmt.Errorf("insert location: %w", err)
	}
	return l.ID, nil
}

// GetByID obtiene una sede por ID; (nil, nil) si no existe.
func (r *LocationRepo) GetByID(id int64) (*entity.Location, error) {
	var l entity.Location
	err := r.q.QueryRow(context.Background(), `
		SELECT id, name, address, created_by, updated_by, created_at, updated_at, row_status
		FROM locations WHERE id = $1`,
		id,
	).Scan(&l.ID, &l.Name, &l.Address, &l.CreatedBy, &l.UpdatedBy, &l.CreatedAt, &l.UpdatedAt, &l.RowStatus)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return &l, nil
}

// ListActive lista las sedes activas.
func (r *LocationRepo) ListActive() ([]*entity.Location, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, name, address, created_by, updated_by, created_at, updated_at, row_status
		FROM locations WHERE row_status = true ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Location
	for rows.Next() {
		var l entity.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.Address, &l.CreatedBy, &l.UpdatedBy, &l.CreatedAt, &l.UpdatedAt, &l.RowStatus); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// WarehouseRepo implementación del puerto WarehouseRepository sobre
// PostgreSQL.
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador de bodegas.
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

// Create persiste una bodega nueva y devuelve su id.
func (r *WarehouseRepo) Create(w *entity.Warehouse) (int64, error) {
	err := r.q.QueryRow(context.Background(), `
		INSERT INTO warehouses (location_id, name, created_by, updated_by, created_at, updated_at, row_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		w.LocationID, w.Name, w.CreatedBy, w.UpdatedBy, w.CreatedAt, w.UpdatedAt, w.RowStatus,
	).Scan(&w.ID)
	if err != nil {
		return 0, fmt.Errorf("insert warehouse: %w", err)
	}
	return w.ID, nil
}

// GetByID obtiene una bodega por ID; (nil, nil) si no existe.
func (r *WarehouseRepo) GetByID(id int64) (*entity.Warehouse, error) {
	var w entity.Warehouse
	err := r.q.QueryRow(context.Background(), `
		SELECT id, location_id, name, created_by, updated_by, created_at, updated_at, row_status
		FROM warehouses WHERE id = $1`,
		id,
	).Scan(&w.ID, &w.LocationID, &w.Name, &w.CreatedBy, &w.UpdatedBy, &w.CreatedAt, &w.UpdatedAt, &w.RowStatus)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return &w, nil
}

// ListActive lista las bodegas activas.
func (r *WarehouseRepo) ListActive() ([]*entity.Warehouse, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, location_id, name, created_by, updated_by, created_at, updated_at, row_status
		FROM warehouses WHERE row_status = true ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Warehouse
	for rows.Next() {
		var w entity.Warehouse
		if err := rows.Scan(&w.ID, &w.LocationID, &w.Name, &w.CreatedBy, &w.UpdatedBy, &w.CreatedAt, &w.UpdatedAt, &w.RowStatus); err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}

// NamesByIDs devuelve nombre por id para el conjunto dado.
func (r *WarehouseRepo) NamesByIDs(ids []int64) (map[int64]string, error) {
	names := make(map[int64]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name FROM warehouses WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("warehouse names: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("scan warehouse name: %w", err)
		}
		names[id] = name
	}
	return names, rows.Err()
}
