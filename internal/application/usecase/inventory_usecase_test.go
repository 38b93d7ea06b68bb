package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ids-inventory-api/internal/application/dto"
	"github.com/jhoicas/ids-inventory-api/internal/application/usecase"
	"github.com/jhoicas/ids-inventory-api/internal/domain"
	"github.com/jhoicas/ids-inventory-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeInvWarehouseRepo struct {
	warehouses map[int64]*entity.Warehouse
}

func (r *fakeInvWarehouseRepo) Create(*entity.Warehouse) (int64, error) { panic("no usado") }
func (r *fakeInvWarehouseRepo) GetByID(id int64) (*entity.Warehouse, error) {
	return r.warehouses[id], nil
}
func (r *fakeInvWarehouseRepo) ListActive() ([]*entity.Warehouse, error) { panic("no usado") }
func (r *fakeInvWarehouseRepo) NamesByIDs([]int64) (map[int64]string, error) {
	panic("no usado")
}

type fakeThresholdInventoryRepo struct {
	rows map[[2]int64]*entity.Inventory
}

func newFakeThresholdInventoryRepo() *fakeThresholdInventoryRepo {
	return &fakeThresholdInventoryRepo{rows: map[[2]int64]*entity.Inventory{}}
}

func (r *fakeThresholdInventoryRepo) GetByID(int64) (*entity.Inventory, error) { panic("no usado") }
func (r *fakeThresholdInventoryRepo) GetByPair(productID, warehouseID int64) (*entity.Inventory, error) {
	return r.rows[[2]int64{productID, warehouseID}], nil
}
func (r *fakeThresholdInventoryRepo) EnsurePair(int64, int64, string) error {
	panic("no usado")
}
func (r *fakeThresholdInventoryRepo) LockPair(int64, int64) (*entity.Inventory, error) {
	panic("no usado")
}
func (r *fakeThresholdInventoryRepo) UpsertQuantity(int64, int64, decimal.Decimal, string) error {
	panic("no usado")
}
func (r *fakeThresholdInventoryRepo) Update(*entity.Inventory) error { panic("no usado") }

// UpsertThresholds replica el contrato del adaptador real: crea la fila con
// cantidad cero o actualiza solo los umbrales dejando la cantidad intacta.
func (r *fakeThresholdInventoryRepo) UpsertThresholds(row *entity.Inventory) error {
	key := [2]int64{row.ProductID, row.WarehouseID}
	if existing, ok := r.rows[key]; ok {
		existing.MinStockLevel = row.MinStockLevel
		existing.MaxStockLevel = row.MaxStockLevel
		existing.ReorderPoint = row.ReorderPoint
		existing.UpdatedBy = row.UpdatedBy
		return nil
	}
	clone := *row
	r.rows[key] = &clone
	return nil
}

func (r *fakeThresholdInventoryRepo) ListActive() ([]*entity.Inventory, error) {
	var out []*entity.Inventory
	for _, row := range r.rows {
		if row.RowStatus {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *fakeThresholdInventoryRepo) ListActiveByProduct(productID int64) ([]*entity.Inventory, error) {
	var out []*entity.Inventory
	for _, row := range r.rows {
		if row.ProductID == productID && row.RowStatus {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *fakeThresholdInventoryRepo) ListActiveByProductIDs([]int64) (map[int64][]*entity.Inventory, error) {
	panic("no usado")
}

func (r *fakeThresholdInventoryRepo) DeactivateByProduct(int64, string) error {
	panic("no usado")
}

func newInventoryFixture() (*usecase.InventoryUseCase, *fakeThresholdInventoryRepo) {
	products := &fakeApprovalProductRepo{products: map[int64]*entity.Product{
		1: {ID: 1, Code: "P-001", Name: "Taladro", RowStatus: true},
	}}
	warehouses := &fakeInvWarehouseRepo{warehouses: map[int64]*entity.Warehouse{
		10: {ID: 10, Name: "Bodega Norte", RowStatus: true},
	}}
	repo := newFakeThresholdInventoryRepo()
	return usecase.NewInventoryUseCase(products, warehouses, repo), repo
}

func dec(n int64) *decimal.Decimal {
	d := decimal.NewFromInt(n)
	return &d
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestUpsertThresholds_CreaFilaConCantidadCero(t *testing.T) {
	uc, _ := newInventoryFixture()

	out, err := uc.UpsertThresholds("ana", dto.UpsertThresholdsRequest{
		ProductID: 1, WarehouseID: 10,
		MinStockLevel: dec(5), MaxStockLevel: dec(50),
	})
	require.NoError(t, err)
	assert.True(t, out.QuantityAvailable.IsZero())
	require.NotNil(t, out.MinStockLevel)
	assert.True(t, out.MinStockLevel.Equal(decimal.NewFromInt(5)))
}

func TestUpsertThresholds_NoTocaLaCantidadExistente(t *testing.T) {
	uc, repo := newInventoryFixture()

	// Fila ya recalculada por el motor de colocaciones.
	repo.rows[[2]int64{1, 10}] = &entity.Inventory{
		ProductID: 1, WarehouseID: 10,
		QuantityAvailable: decimal.NewFromInt(42), RowStatus: true,
	}

	out, err := uc.UpsertThresholds("ana", dto.UpsertThresholdsRequest{
		ProductID: 1, WarehouseID: 10, MinStockLevel: dec(5),
	})
	require.NoError(t, err)
	assert.True(t, out.QuantityAvailable.Equal(decimal.NewFromInt(42)),
		"los umbrales no pisan la cantidad del motor")
	require.NotNil(t, out.MinStockLevel)
	assert.True(t, out.MinStockLevel.Equal(decimal.NewFromInt(5)))
}

func TestUpsertThresholds_MinMayorQueMax(t *testing.T) {
	uc, _ := newInventoryFixture()

	_, err := uc.UpsertThresholds("ana", dto.UpsertThresholdsRequest{
		ProductID: 1, WarehouseID: 10,
		MinStockLevel: dec(100), MaxStockLevel: dec(10),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpsertThresholds_ProductoOBodegaInexistente(t *testing.T) {
	uc, _ := newInventoryFixture()

	_, err := uc.UpsertThresholds("ana", dto.UpsertThresholdsRequest{ProductID: 99, WarehouseID: 10})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.UpsertThresholds("ana", dto.UpsertThresholdsRequest{ProductID: 1, WarehouseID: 99})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetByPair_ParSinFilaDevuelveNil(t *testing.T) {
	uc, _ := newInventoryFixture()

	out, err := uc.GetByPair(1, 10)
	require.NoError(t, err)
	assert.Nil(t, out)
}
