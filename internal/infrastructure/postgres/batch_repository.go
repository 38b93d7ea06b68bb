package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ids-inventory-api/internal/domain/entity"
	"github.com/jhoicas/ids-inventory-api/internal/domain/repository"
)

var _ repository.BatchRepository = (*BatchRepo)(nil)

const batchColumns = `id, product_id, lot_code, manufacture_date, expiry_date, quantity, created_by, updated_by, created_at, updated_at, row_status`

// BatchRepo implementación del puerto BatchRepository sobre PostgreSQL
// (usable con pool o tx).
type BatchRepo struct {
	q Querier
}

// NewBatchRepository construye el adaptador de lotes. Pasar pool o tx
// (Querier).
func NewBatchRepository(q Querier) *BatchRepo {
	return &BatchRepo{q: q}
}

// Create persiste un lote nuevo y devuelve su id.
func (r *BatchRepo) Create(b *entity.Batch) (int64, error) {
	err := r.q.QueryRow(context.Background(), `
		INSERT INTO batches (product_id, lot_code, manufacture_date, expiry_date, quantity, created_by, updated_by, created_at, updated_at, row_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		b.ProductID, b.LotCode, b.ManufactureDate, b.ExpiryDate, b.Quantity,
		b.CreatedBy, b.UpdatedBy, b.CreatedAt, b.UpdatedAt, b.RowStatus,
	).Scan(&b.ID)
	if err != nil {
		return 0, fmt.Errorf("insert batch: %w", err)
	}
	return b.ID, nil
}

// GetByID obtiene un lote por ID; (nil, nil) si no existe.
func (r *BatchRepo) GetByID(id int64) (*entity.Batch, error) {
	var b entity.Batch
	err := r.q.QueryRow(context.Background(),
		`SELECT `+batchColumns+` FROM batches WHERE id = $1`, id,
	).Scan(
		&b.ID, &b.ProductID, &b.LotCode, &b.ManufactureDate, &b.ExpiryDate,
		&b.Quantity, &b.CreatedBy, &b.UpdatedBy, &b.CreatedAt, &b.UpdatedAt, &b.RowStatus,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get batch: %w", err)
	}
	return &b, nil
}

// ActiveByIDs devuelve los lotes activos del conjunto, indexados por id.
func (r *BatchRepo) ActiveByIDs(ids []int64) (map[int64]*entity.Batch, error) {
	result := make(map[int64]*entity.Batch, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	rows, err := r.q.Query(context.Background(),
		`SELECT `+batchColumns+` FROM batches WHERE id = ANY($1) AND row_status = true`, ids)
	if err != nil {
		return nil, fmt.Errorf("batches by ids: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var b entity.Batch
		if err := rows.Scan(
			&b.ID, &b.ProductID, &b.LotCode, &b.ManufactureDate, &b.ExpiryDate,
			&b.Quantity, &b.CreatedBy, &b.UpdatedBy, &b.CreatedAt, &b.UpdatedAt, &b.RowStatus,
		); err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		result[b.ID] = &b
	}
	return result, rows.Err()
}
