package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/ids-inventory-api/internal/application/placement"
	"github.com/jhoicas/ids-inventory-api/internal/domain/repository"
)

// Ensure TxRunner implements placement.TxRunner.
var _ placement.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Es la unidad atómica del motor de colocaciones: lote,
// colocaciones y recálculo de inventario persisten todos o ninguno.
func (r *TxRunner) Run(ctx context.Context, fn func(
	batchRepo repository.BatchRepository,
	placementRepo repository.PlacementRepository,
	inventoryRepo repository.InventoryRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	batchRepo := NewBatchRepository(tx)
	placementRepo := NewPlacementRepository(tx)
	inventoryRepo := NewInventoryRepository(tx)

	if err := fn(batchRepo, placementRepo, inventoryRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
