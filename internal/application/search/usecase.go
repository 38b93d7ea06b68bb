package search

import (
	"context"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/ids-inventory-api/internal/application/dto"
	"github.com/jhoicas/ids-inventory-api/internal/application/ports"
	"github.com/jhoicas/ids-inventory-api/internal/domain/entity"
	"github.com/jhoicas/ids-inventory-api/internal/domain/repository"
	"github.com/jhoicas/ids-inventory-api/pkg/logger"
)

// UseCase búsqueda de productos por imagen: el servicio de visión etiqueta la
// imagen y las etiquetas se cruzan contra nombre, descripción y marca de los
// productos activos, sin distinguir tildes ni mayúsculas.
type UseCase struct {
	products repository.ProductRepository
	vision   ports.VisionService
	log      *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(products repository.ProductRepository, vision ports.VisionService, log *logger.Logger) *UseCase {
	return &UseCase{products: products, vision: vision, log: log}
}

// ByImage etiqueta la imagen y devuelve los productos activos que coinciden
// con alguna etiqueta. Si el servicio de visión falla degrada a respuesta
// vacía en lugar de propagar el error: la búsqueda es best-effort.
func (uc *UseCase) ByImage(ctx context.Context, in dto.ImageSearchRequest) (*dto.ImageSearchResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	labels, err := uc.vision.DetectLabels(ctx, in.ImageBase64, in.MimeType)
	if err != nil {
		uc.log.Warn().Err(err).Msg("búsqueda por imagen degradada")
		return &dto.ImageSearchResponse{Labels: []string{}, Matches: []dto.ProductResponse{}}, nil
	}

	products, err := uc.products.ListActive()
	if err != nil {
		return nil, err
	}

	folded := make([]string, 0, len(labels))
	for _, label := range labels {
		folded = append(folded, Fold(label))
	}

	resp := &dto.ImageSearchResponse{Labels: labels, Matches: []dto.ProductResponse{}}
	for _, p := range products {
		if matchesAny(p, folded) {
			resp.Matches = append(resp.Matches, dto.ProductResponse{
				ID:           p.ID,
				Code:         p.Code,
				QRCode:       p.QRCode,
				Name:         p.Name,
				Description:  p.Description,
				CategoryID:   p.CategoryID,
				ReorderPoint: p.ReorderPoint,
				Brand:        p.Brand,
				Weight:       p.Weight,
				Dimensions:   p.Dimensions,
				Images:       p.Images,
				CreatedAt:    p.CreatedAt,
				UpdatedAt:    p.UpdatedAt,
			})
		}
	}
	return resp, nil
}

func matchesAny(p *entity.Product, foldedLabels []string) bool {
	haystack := Fold(p.Name + " " + p.Description + " " + p.Brand)
	for _, label := range foldedLabels {
		if label != "" && strings.Contains(haystack, label) {
			return true
		}
	}
	return false
}

// foldTransformer descompone, elimina marcas diacríticas y recompone:
// "Martíllo" y "martillo" quedan iguales tras Fold.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold normaliza un texto para comparación: minúsculas y sin tildes.
func Fold(s string) string {
	out, _, err := transform.String(foldTransformer, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}
