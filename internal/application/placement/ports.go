package placement

import (
	"context"

	"github.com/jhoicas/ids-inventory-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción y le entrega repos atados a
// ella. Si fn devuelve error la transacción se revierte completa.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		batchRepo repository.BatchRepository,
		placementRepo repository.PlacementRepository,
		inventoryRepo repository.InventoryRepository,
	) error) error
}
