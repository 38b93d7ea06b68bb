package usecase_test

import (
	"testing"

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

type fakeApprovalRepo struct {
	deleteRequests  map[int64]*entity.DeleteRequest
	productRequests map[int64]*entity.ProductRequest
	nextID          int64
}

func newFakeApprovalRepo() *fakeApprovalRepo {
	return &fakeApprovalRepo{
		deleteRequests:  map[int64]*entity.DeleteRequest{},
		productRequests: map[int64]*entity.ProductRequest{},
		nextID:          1,
	}
}

func (r *fakeApprovalRepo) CreateDeleteRequest(req *entity.DeleteRequest) (int64, error) {
	req.ID = r.nextID
	r.nextID++
	r.deleteRequests[req.ID] = req
	return req.ID, nil
}

func (r *fakeApprovalRepo) GetDeleteRequest(id int64) (*entity.DeleteRequest, error) {
	return r.deleteRequests[id], nil
}

func (r *fakeApprovalRepo) UpdateDeleteRequestStatus(id int64, status string, approverID *int64) error {
	req := r.deleteRequests[id]
	req.Status = status
	req.ApproverID = approverID
	return nil
}

func (r *fakeApprovalRepo) ListDeleteRequests() ([]*entity.DeleteRequest, error) {
	var out []*entity.DeleteRequest
	for id := int64(1); id < r.nextID; id++ {
		if req := r.deleteRequests[id]; req != nil {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *fakeApprovalRepo) CreateProductRequest(req *entity.ProductRequest) (int64, error) {
	req.ID = r.nextID
	r.nextID++
	r.productRequests[req.ID] = req
	return req.ID, nil
}

func (r *fakeApprovalRepo) GetProductRequest(id int64) (*entity.ProductRequest, error) {
	return r.productRequests[id], nil
}

func (r *fakeApprovalRepo) UpdateProductRequestStatus(id int64, status string, managerID, adminID *int64) error {
	req := r.productRequests[id]
	req.Status = status
	req.ApprovedManagerID = managerID
	req.ApprovedAdminID = adminID
	return nil
}

func (r *fakeApprovalRepo) ListProductRequests() ([]*entity.ProductRequest, error) {
	var out []*entity.ProductRequest
	for id := int64(1); id < r.nextID; id++ {
		if req := r.productRequests[id]; req != nil {
			out = append(out, req)
		}
	}
	return out, nil
}

type fakeApprovalProductRepo struct {
	products map[int64]*entity.Product
}

func (r *fakeApprovalProductRepo) Create(*entity.Product) (int64, error)    { panic("no usado") }
func (r *fakeApprovalProductRepo) GetByID(int64) (*entity.Product, error)   { panic("no usado") }
func (r *fakeApprovalProductRepo) GetActiveByID(id int64) (*entity.Product, error) {
	p := r.products[id]
	if p == nil || !p.RowStatus {
		return nil, nil
	}
	return p, nil
}
func (r *fakeApprovalProductRepo) Update(*entity.Product) error             { panic("no usado") }
func (r *fakeApprovalProductRepo) SoftDelete(int64, string) error           { panic("no usado") }
func (r *fakeApprovalProductRepo) ListActive() ([]*entity.Product, error)   { panic("no usado") }
func (r *fakeApprovalProductRepo) SearchByName(string) ([]*entity.Product, error) {
	panic("no usado")
}

type fakeDeleter struct {
	calls []int64
	actor string
	err   error
}

func (d *fakeDeleter) Delete(actor string, id int64) error {
	if d.err != nil {
		return d.err
	}
	d.actor = actor
	d.calls = append(d.calls, id)
	return nil
}

func newApprovalFixture() (*usecase.ApprovalUseCase, *fakeApprovalRepo, *fakeDeleter) {
	repo := newFakeApprovalRepo()
	products := &fakeApprovalProductRepo{products: map[int64]*entity.Product{
		1: {ID: 1, Code: "P-001", Name: "Taladro", RowStatus: true},
	}}
	deleter := &fakeDeleter{}
	return usecase.NewApprovalUseCase(repo, products, deleter), repo, deleter
}

// ──────────────────────────────────────────────────────────────────────────────
// Solicitudes de baja
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateDeleteRequest_NaceEnPending(t *testing.T) {
	uc, _, _ := newApprovalFixture()

	out, err := uc.CreateDeleteRequest(7, dto.CreateDeleteRequestRequest{
		ProductID: 1, Message: "producto descontinuado",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, out.Status)
	assert.Nil(t, out.ApproverID)
}

func TestCreateDeleteRequest_ProductoInexistente(t *testing.T) {
	uc, _, _ := newApprovalFixture()

	_, err := uc.CreateDeleteRequest(7, dto.CreateDeleteRequestRequest{ProductID: 99})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResolveDeleteRequest_AprobarEjecutaLaBaja(t *testing.T) {
	uc, _, deleter := newApprovalFixture()

	created, err := uc.CreateDeleteRequest(7, dto.CreateDeleteRequestRequest{ProductID: 1})
	require.NoError(t, err)

	out, err := uc.ResolveDeleteRequest(9, "luis", created.ID, dto.ResolveRequestRequest{
		Status: entity.StatusApproved,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusApproved, out.Status)
	require.NotNil(t, out.ApproverID)
	assert.Equal(t, int64(9), *out.ApproverID)
	assert.Equal(t, []int64{1}, deleter.calls, "aprobar dispara la baja del producto")
	assert.Equal(t, "luis", deleter.actor, "el actor de la baja es quien aprueba")
}

func TestResolveDeleteRequest_RechazarNoTocaElProducto(t *testing.T) {
	uc, _, deleter := newApprovalFixture()

	created, err := uc.CreateDeleteRequest(7, dto.CreateDeleteRequestRequest{ProductID: 1})
	require.NoError(t, err)

	out, err := uc.ResolveDeleteRequest(9, "luis", created.ID, dto.ResolveRequestRequest{
		Status: entity.StatusRejected,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusRejected, out.Status)
	assert.Empty(t, deleter.calls)
}

func TestResolveDeleteRequest_EstadoDesconocido(t *testing.T) {
	uc, _, _ := newApprovalFixture()

	created, err := uc.CreateDeleteRequest(7, dto.CreateDeleteRequestRequest{ProductID: 1})
	require.NoError(t, err)

	_, err = uc.ResolveDeleteRequest(9, "luis", created.ID, dto.ResolveRequestRequest{
		Status: "archived",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestResolveDeleteRequest_EstadoTerminalEsInmutable(t *testing.T) {
	uc, _, _ := newApprovalFixture()

	created, err := uc.CreateDeleteRequest(7, dto.CreateDeleteRequestRequest{ProductID: 1})
	require.NoError(t, err)
	_, err = uc.ResolveDeleteRequest(9, "luis", created.ID, dto.ResolveRequestRequest{
		Status: entity.StatusRejected,
	})
	require.NoError(t, err)

	// Rechazada no puede volver a moverse, ni siquiera a approved.
	_, err = uc.ResolveDeleteRequest(9, "luis", created.ID, dto.ResolveRequestRequest{
		Status: entity.StatusApproved,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestResolveDeleteRequest_FalloDeBajaDejaPending(t *testing.T) {
	uc, repo, deleter := newApprovalFixture()
	deleter.err = domain.ErrConflict

	created, err := uc.CreateDeleteRequest(7, dto.CreateDeleteRequestRequest{ProductID: 1})
	require.NoError(t, err)

	_, err = uc.ResolveDeleteRequest(9, "luis", created.ID, dto.ResolveRequestRequest{
		Status: entity.StatusApproved,
	})
	require.Error(t, err)
	assert.Equal(t, entity.StatusPending, repo.deleteRequests[created.ID].Status,
		"si la baja falla la solicitud no cambia de estado")
}

// ──────────────────────────────────────────────────────────────────────────────
// Solicitudes de reposición
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateProductRequest_CantidadInvalida(t *testing.T) {
	uc, _, _ := newApprovalFixture()

	_, err := uc.CreateProductRequest(7, dto.CreateProductRequestRequest{ProductID: 1, Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestResolveProductRequest_AprobadorSegunRol(t *testing.T) {
	uc, _, _ := newApprovalFixture()

	created, err := uc.CreateProductRequest(7, dto.CreateProductRequestRequest{ProductID: 1, Quantity: 5})
	require.NoError(t, err)

	out, err := uc.ResolveProductRequest(9, true, created.ID, dto.ResolveRequestRequest{
		Status: entity.StatusApproved,
	})
	require.NoError(t, err)
	require.NotNil(t, out.ApprovedManagerID)
	assert.Equal(t, int64(9), *out.ApprovedManagerID)
	assert.Nil(t, out.ApprovedAdminID)

	// Como admin queda en la otra columna.
	created2, err := uc.CreateProductRequest(7, dto.CreateProductRequestRequest{ProductID: 1, Quantity: 3})
	require.NoError(t, err)
	out2, err := uc.ResolveProductRequest(11, false, created2.ID, dto.ResolveRequestRequest{
		Status: entity.StatusApproved,
	})
	require.NoError(t, err)
	assert.Nil(t, out2.ApprovedManagerID)
	require.NotNil(t, out2.ApprovedAdminID)
	assert.Equal(t, int64(11), *out2.ApprovedAdminID)
}

func TestResolveProductRequest_SoloSaleDePending(t *testing.T) {
	uc, _, _ := newApprovalFixture()

	created, err := uc.CreateProductRequest(7, dto.CreateProductRequestRequest{ProductID: 1, Quantity: 5})
	require.NoError(t, err)
	_, err = uc.ResolveProductRequest(9, true, created.ID, dto.ResolveRequestRequest{
		Status: entity.StatusApproved,
	})
	require.NoError(t, err)

	_, err = uc.ResolveProductRequest(9, true, created.ID, dto.ResolveRequestRequest{
		Status: entity.StatusRejected,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}
