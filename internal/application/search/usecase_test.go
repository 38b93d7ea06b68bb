package search_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ids-inventory-api/internal/application/dto"
	"github.com/jhoicas/ids-inventory-api/internal/application/search"
	"github.com/jhoicas/ids-inventory-api/internal/domain/entity"
	"github.com/jhoicas/ids-inventory-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeVision struct {
	labels []string
	err    error
}

func (v *fakeVision) DetectLabels(context.Context, string, string) ([]string, error) {
	return v.labels, v.err
}

type fakeSearchProductRepo struct {
	products []*entity.Product
}

func (r *fakeSearchProductRepo) Create(*entity.Product) (int64, error)    { panic("no usado") }
func (r *fakeSearchProductRepo) GetByID(int64) (*entity.Product, error)   { panic("no usado") }
func (r *fakeSearchProductRepo) GetActiveByID(int64) (*entity.Product, error) {
	panic("no usado")
}
func (r *fakeSearchProductRepo) Update(*entity.Product) error             { panic("no usado") }
func (r *fakeSearchProductRepo) SoftDelete(int64, string) error           { panic("no usado") }
func (r *fakeSearchProductRepo) ListActive() ([]*entity.Product, error) {
	return r.products, nil
}
func (r *fakeSearchProductRepo) SearchByName(string) ([]*entity.Product, error) {
	panic("no usado")
}

func newSearchUseCase(products []*entity.Product, vision *fakeVision) *search.UseCase {
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	return search.NewUseCase(&fakeSearchProductRepo{products: products}, vision, log)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fold
// ──────────────────────────────────────────────────────────────────────────────

func TestFold_IgnoraTildesYMayusculas(t *testing.T) {
	assert.Equal(t, "martillo", search.Fold("Martíllo"))
	assert.Equal(t, "camion", search.Fold("CAMIÓN"))
	assert.Equal(t, search.Fold("Ñandú"), search.Fold("ñandú"))
	assert.Equal(t, "sin cambios", search.Fold("sin cambios"))
}

// ──────────────────────────────────────────────────────────────────────────────
// ByImage
// ──────────────────────────────────────────────────────────────────────────────

func TestByImage_CruzaEtiquetasConNombreDescripcionYMarca(t *testing.T) {
	products := []*entity.Product{
		{ID: 1, Name: "Taladro percutor", Brand: "Bosch", RowStatus: true},
		{ID: 2, Name: "Martillo", Description: "mango de madera", RowStatus: true},
		{ID: 3, Name: "Sierra circular", RowStatus: true},
	}
	uc := newSearchUseCase(products, &fakeVision{labels: []string{"Taladro", "MADERA"}})

	out, err := uc.ByImage(context.Background(), dto.ImageSearchRequest{
		ImageBase64: "aW1n", MimeType: "image/jpeg",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Taladro", "MADERA"}, out.Labels)
	require.Len(t, out.Matches, 2)
	assert.Equal(t, int64(1), out.Matches[0].ID, "coincide por nombre")
	assert.Equal(t, int64(2), out.Matches[1].ID, "coincide por descripción")
}

func TestByImage_EtiquetasConTildesCoinciden(t *testing.T) {
	products := []*entity.Product{
		{ID: 1, Name: "Camión de juguete", RowStatus: true},
	}
	uc := newSearchUseCase(products, &fakeVision{labels: []string{"camion"}})

	out, err := uc.ByImage(context.Background(), dto.ImageSearchRequest{ImageBase64: "aW1n"})
	require.NoError(t, err)
	require.Len(t, out.Matches, 1)
	assert.Equal(t, int64(1), out.Matches[0].ID)
}

func TestByImage_SinCoincidencias(t *testing.T) {
	products := []*entity.Product{
		{ID: 1, Name: "Taladro", RowStatus: true},
	}
	uc := newSearchUseCase(products, &fakeVision{labels: []string{"bicicleta"}})

	out, err := uc.ByImage(context.Background(), dto.ImageSearchRequest{ImageBase64: "aW1n"})
	require.NoError(t, err)
	assert.Empty(t, out.Matches)
}

func TestByImage_FalloDeVisionDegradaAVacio(t *testing.T) {
	products := []*entity.Product{
		{ID: 1, Name: "Taladro", RowStatus: true},
	}
	uc := newSearchUseCase(products, &fakeVision{err: errors.New("cuota agotada")})

	out, err := uc.ByImage(context.Background(), dto.ImageSearchRequest{ImageBase64: "aW1n"})
	require.NoError(t, err, "la búsqueda es best-effort: no propaga el fallo de visión")
	assert.Empty(t, out.Labels)
	assert.Empty(t, out.Matches)
}

func TestByImage_EtiquetaVaciaNoCoincideConTodo(t *testing.T) {
	products := []*entity.Product{
		{ID: 1, Name: "Taladro", RowStatus: true},
		{ID: 2, Name: "Martillo", RowStatus: true},
	}
	uc := newSearchUseCase(products, &fakeVision{labels: []string{""}})

	out, err := uc.ByImage(context.Background(), dto.ImageSearchRequest{ImageBase64: "aW1n"})
	require.NoError(t, err)
	assert.Empty(t, out.Matches)
}
