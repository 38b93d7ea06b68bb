package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ids-inventory-api/internal/application/catalog"
	"github.com/jhoicas/ids-inventory-api/internal/application/dto"
	"github.com/jhoicas/ids-inventory-api/internal/domain"
	"github.com/jhoicas/ids-inventory-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type store struct {
	products    map[int64]*entity.Product
	categories  map[int64]*entity.Category
	inventory   map[int64][]*entity.Inventory // por producto
	placements  map[int64][]*entity.Placement // por producto
	batches     map[int64]*entity.Batch
	warehouses  map[int64]string
	nextID      int64
	deactivated []int64 // productos con inventario desactivado
}

func newStore() *store {
	return &store{
		products:   map[int64]*entity.Product{},
		categories: map[int64]*entity.Category{},
		inventory:  map[int64][]*entity.Inventory{},
		placements: map[int64][]*entity.Placement{},
		batches:    map[int64]*entity.Batch{},
		warehouses: map[int64]string{},
		nextID:     1,
	}
}

func (s *store) id() int64 {
	id := s.nextID
	s.nextID++
	return id
}

type productRepo struct{ s *store }

func (r *productRepo) Create(p *entity.Product) (int64, error) {
	p.ID = r.s.id()
	r.s.products[p.ID] = p
	return p.ID, nil
}
func (r *productRepo) GetByID(id int64) (*entity.Product, error) { return r.s.products[id], nil }
func (r *productRepo) GetActiveByID(id int64) (*entity.Product, error) {
	p := r.s.products[id]
	if p == nil || !p.RowStatus {
		return nil, nil
	}
	return p, nil
}
func (r *productRepo) Update(p *entity.Product) error {
	r.s.products[p.ID] = p
	return nil
}
func (r *productRepo) SoftDelete(id int64, updatedBy string) error {
	r.s.products[id].RowStatus = false
	r.s.products[id].UpdatedBy = updatedBy
	return nil
}
func (r *productRepo) ListActive() ([]*entity.Product, error) {
	var out []*entity.Product
	for id := int64(1); id < r.s.nextID; id++ {
		if p := r.s.products[id]; p != nil && p.RowStatus {
			out = append(out, p)
		}
	}
	return out, nil
}
func (r *productRepo) SearchByName(string) ([]*entity.Product, error) { panic("no usado") }

type categoryRepo struct{ s *store }

func (r *categoryRepo) Create(*entity.Category) (int64, error) { panic("no usado") }
func (r *categoryRepo) GetByID(id int64) (*entity.Category, error) {
	return r.s.categories[id], nil
}
func (r *categoryRepo) Update(*entity.Category) error               { panic("no usado") }
func (r *categoryRepo) SoftDelete(int64) error                      { panic("no usado") }
func (r *categoryRepo) ListActive() ([]*entity.Category, error)     { panic("no usado") }
func (r *categoryRepo) GetOrCreateByName(name string) (*entity.Category, error) {
	for _, c := range r.s.categories {
		if c.Name == name {
			return c, nil
		}
	}
	c := &entity.Category{ID: r.s.id(), Name: name, RowStatus: true}
	r.s.categories[c.ID] = c
	return c, nil
}
func (r *categoryRepo) NamesByIDs(ids []int64) (map[int64]string, error) {
	out := map[int64]string{}
	for _, id := range ids {
		if c := r.s.categories[id]; c != nil {
			out[id] = c.Name
		}
	}
	return out, nil
}

type warehouseRepo struct{ s *store }

func (r *warehouseRepo) Create(*entity.Warehouse) (int64, error) { panic("no usado") }
func (r *warehouseRepo) GetByID(id int64) (*entity.Warehouse, error) {
	name, ok := r.s.warehouses[id]
	if !ok {
		return nil, nil
	}
	return &entity.Warehouse{ID: id, Name: name, RowStatus: true}, nil
}
func (r *warehouseRepo) ListActive() ([]*entity.Warehouse, error) { panic("no usado") }
func (r *warehouseRepo) NamesByIDs(ids []int64) (map[int64]string, error) {
	out := map[int64]string{}
	for _, id := range ids {
		if name, ok := r.s.warehouses[id]; ok {
			out[id] = name
		}
	}
	return out, nil
}

type inventoryRepo struct{ s *store }

func (r *inventoryRepo) GetByID(int64) (*entity.Inventory, error)          { panic("no usado") }
func (r *inventoryRepo) GetByPair(int64, int64) (*entity.Inventory, error) { panic("no usado") }
func (r *inventoryRepo) EnsurePair(int64, int64, string) error             { panic("no usado") }
func (r *inventoryRepo) LockPair(int64, int64) (*entity.Inventory, error)  { panic("no usado") }
func (r *inventoryRepo) UpsertQuantity(int64, int64, decimal.Decimal, string) error {
	panic("no usado")
}
func (r *inventoryRepo) Update(*entity.Inventory) error { panic("no usado") }
func (r *inventoryRepo) UpsertThresholds(row *entity.Inventory) error {
	r.s.inventory[row.ProductID] = append(r.s.inventory[row.ProductID], row)
	return nil
}
func (r *inventoryRepo) ListActive() ([]*entity.Inventory, error) { panic("no usado") }
func (r *inventoryRepo) ListActiveByProduct(productID int64) ([]*entity.Inventory, error) {
	return r.s.inventory[productID], nil
}
func (r *inventoryRepo) ListActiveByProductIDs(ids []int64) (map[int64][]*entity.Inventory, error) {
	out := map[int64][]*entity.Inventory{}
	for _, id := range ids {
		if rows := r.s.inventory[id]; rows != nil {
			out[id] = rows
		}
	}
	return out, nil
}
func (r *inventoryRepo) DeactivateByProduct(productID int64, _ string) error {
	r.s.deactivated = append(r.s.deactivated, productID)
	return nil
}

type placementRepo struct{ s *store }

func (r *placementRepo) Create(*entity.Placement) (int64, error)          { panic("no usado") }
func (r *placementRepo) GetActiveByID(int64) (*entity.Placement, error)   { panic("no usado") }
func (r *placementRepo) Update(*entity.Placement) error                   { panic("no usado") }
func (r *placementRepo) SoftDelete(int64, string) error                   { panic("no usado") }
func (r *placementRepo) SumActiveByPair(int64, int64) (decimal.Decimal, error) {
	panic("no usado")
}
func (r *placementRepo) ListActive() ([]*entity.Placement, error) { panic("no usado") }
func (r *placementRepo) ListActiveByProduct(productID int64) ([]*entity.Placement, error) {
	return r.s.placements[productID], nil
}
func (r *placementRepo) ListActiveByProductIDs(ids []int64) (map[int64][]*entity.Placement, error) {
	out := map[int64][]*entity.Placement{}
	for _, id := range ids {
		if rows := r.s.placements[id]; rows != nil {
			out[id] = rows
		}
	}
	return out, nil
}

type batchRepo struct{ s *store }

func (r *batchRepo) Create(*entity.Batch) (int64, error)    { panic("no usado") }
func (r *batchRepo) GetByID(int64) (*entity.Batch, error)   { panic("no usado") }
func (r *batchRepo) ActiveByIDs(ids []int64) (map[int64]*entity.Batch, error) {
	out := map[int64]*entity.Batch{}
	for _, id := range ids {
		if b := r.s.batches[id]; b != nil && b.RowStatus {
			out[id] = b
		}
	}
	return out, nil
}

func newCatalog(s *store) *catalog.UseCase {
	return catalog.NewUseCase(
		&productRepo{s: s},
		&categoryRepo{s: s},
		&warehouseRepo{s: s},
		&inventoryRepo{s: s},
		&placementRepo{s: s},
		&batchRepo{s: s},
	)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_ResuelveCategoriaPorNombre(t *testing.T) {
	s := newStore()
	uc := newCatalog(s)

	out, err := uc.Create("ana", dto.CreateProductRequest{
		Code: "P-001", Name: "Taladro", NewCategoryName: "Herramientas",
	})
	require.NoError(t, err)
	assert.Equal(t, "Herramientas", out.CategoryName)

	// Mismo nombre de categoría: reutiliza la existente
	out2, err := uc.Create("ana", dto.CreateProductRequest{
		Code: "P-002", Name: "Martillo", NewCategoryName: "Herramientas",
	})
	require.NoError(t, err)
	assert.Equal(t, out.CategoryID, out2.CategoryID)
	assert.Len(t, s.categories, 1)
}

func TestCreate_ConUmbralesPorBodega(t *testing.T) {
	s := newStore()
	uc := newCatalog(s)
	s.warehouses[10] = "Bodega Norte"

	min := decimal.NewFromInt(5)
	out, err := uc.Create("ana", dto.CreateProductRequest{
		Code: "P-001", Name: "Taladro", NewCategoryName: "Herramientas",
		InventoryDetails: []dto.ProductInventoryInput{
			{WarehouseID: 10, MinStockLevel: &min},
		},
	})
	require.NoError(t, err)
	require.Len(t, s.inventory[out.ID], 1)
	row := s.inventory[out.ID][0]
	assert.Equal(t, int64(10), row.WarehouseID)
	assert.True(t, row.QuantityAvailable.IsZero(), "el alta de umbrales no inventa existencias")
	require.NotNil(t, row.MinStockLevel)
	assert.True(t, row.MinStockLevel.Equal(min))
}

func TestCreate_UmbralesConBodegaInexistente(t *testing.T) {
	s := newStore()
	uc := newCatalog(s)

	_, err := uc.Create("ana", dto.CreateProductRequest{
		Code: "P-001", Name: "Taladro", NewCategoryName: "Herramientas",
		InventoryDetails: []dto.ProductInventoryInput{{WarehouseID: 99}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_CategoriaPorIDExistente(t *testing.T) {
	s := newStore()
	uc := newCatalog(s)

	s.categories[1] = &entity.Category{ID: 1, Name: "Herramientas", RowStatus: true}
	s.nextID = 2

	catID := int64(1)
	out, err := uc.Create("ana", dto.CreateProductRequest{
		Code: "P-001", Name: "Taladro", CategoryID: &catID,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.CategoryID)
	assert.Equal(t, "Herramientas", out.CategoryName)
}

func TestCreate_CategoriaIDYNombreSonExcluyentes(t *testing.T) {
	s := newStore()
	uc := newCatalog(s)

	catID := int64(1)
	_, err := uc.Create("ana", dto.CreateProductRequest{
		Code: "P-001", Name: "Taladro", CategoryID: &catID, NewCategoryName: "Herramientas",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create("ana", dto.CreateProductRequest{Code: "P-001", Name: "Taladro"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin categoría tampoco es válido")
}

func TestCreate_CategoriaIDInexistente(t *testing.T) {
	s := newStore()
	uc := newCatalog(s)

	catID := int64(99)
	_, err := uc.Create("ana", dto.CreateProductRequest{
		Code: "P-001", Name: "Taladro", CategoryID: &catID,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetDetail_ProductoInexistenteDevuelveNil(t *testing.T) {
	s := newStore()
	uc := newCatalog(s)

	out, err := uc.GetDetail(99)
	require.NoError(t, err)
	assert.Nil(t, out, "producto ausente: nil sin error")
}

func TestGetDetail_AgregaExistenciasYTotal(t *testing.T) {
	s := newStore()
	uc := newCatalog(s)

	created, err := uc.Create("ana", dto.CreateProductRequest{
		Code: "P-001", Name: "Taladro", NewCategoryName: "Herramientas",
	})
	require.NoError(t, err)

	s.warehouses[10] = "Bodega Norte"
	s.warehouses[20] = "Bodega Sur"
	s.inventory[created.ID] = []*entity.Inventory{
		{ProductID: created.ID, WarehouseID: 10, QuantityAvailable: decimal.NewFromInt(7), RowStatus: true},
		{ProductID: created.ID, WarehouseID: 20, QuantityAvailable: decimal.NewFromInt(3), RowStatus: true},
	}
	s.batches[55] = &entity.Batch{
		ID: 55, ProductID: created.ID, LotCode: "L-55",
		Quantity: decimal.NewFromInt(7), RowStatus: true,
	}
	s.placements[created.ID] = []*entity.Placement{
		{ID: 100, BatchID: 55, ProductID: created.ID, WarehouseID: 10, Quantity: 7, RowStatus: true},
	}

	out, err := uc.GetDetail(created.ID)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Len(t, out.Stock, 2)
	assert.True(t, out.TotalStock.Equal(decimal.NewFromInt(10)), "total = suma de bodegas")
	assert.Equal(t, "Bodega Norte", out.Stock[0].WarehouseName)
	require.Len(t, out.Placements, 1)
	require.NotNil(t, out.Placements[0].Batch, "cada colocación lleva su lote")
	assert.Equal(t, "L-55", out.Placements[0].Batch.LotCode)

	// Leer no muta: una segunda lectura devuelve exactamente lo mismo.
	again, err := uc.GetDetail(created.ID)
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestList_ExcluyeInactivosYResuelveNombres(t *testing.T) {
	s := newStore()
	uc := newCatalog(s)

	activo, err := uc.Create("ana", dto.CreateProductRequest{
		Code: "P-001", Name: "Taladro", NewCategoryName: "Herramientas",
	})
	require.NoError(t, err)
	inactivo, err := uc.Create("ana", dto.CreateProductRequest{
		Code: "P-002", Name: "Martillo", NewCategoryName: "Herramientas",
	})
	require.NoError(t, err)
	require.NoError(t, uc.Delete("ana", inactivo.ID))

	out, err := uc.List()
	require.NoError(t, err)
	require.Equal(t, 1, out.Total)
	assert.Equal(t, activo.ID, out.Items[0].Product.ID)
	assert.Equal(t, "Herramientas", out.Items[0].Product.CategoryName)
}

func TestDelete_DesactivaInventarioDelProducto(t *testing.T) {
	s := newStore()
	uc := newCatalog(s)

	created, err := uc.Create("ana", dto.CreateProductRequest{
		Code: "P-001", Name: "Taladro", NewCategoryName: "Herramientas",
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete("luis", created.ID))

	assert.False(t, s.products[created.ID].RowStatus, "baja lógica del producto")
	assert.Equal(t, "luis", s.products[created.ID].UpdatedBy)
	assert.Contains(t, s.deactivated, created.ID, "el inventario del producto se desactiva")
}

func TestDelete_ProductoInexistente(t *testing.T) {
	s := newStore()
	uc := newCatalog(s)

	err := uc.Delete("ana", 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdate_CamposNilQuedanComoEstan(t *testing.T) {
	s := newStore()
	uc := newCatalog(s)

	created, err := uc.Create("ana", dto.CreateProductRequest{
		Code: "P-001", Name: "Taladro", Brand: "Bosch", NewCategoryName: "Herramientas",
	})
	require.NoError(t, err)

	nuevoNombre := "Taladro percutor"
	out, err := uc.Update("luis", created.ID, dto.UpdateProductRequest{Name: &nuevoNombre})
	require.NoError(t, err)

	assert.Equal(t, "Taladro percutor", out.Name)
	assert.Equal(t, "Bosch", out.Brand, "los campos no enviados no cambian")
	assert.Equal(t, "luis", s.products[created.ID].UpdatedBy)
}
