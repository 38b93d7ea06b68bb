package http

import (
	"encoding/base64"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ids-inventory-api/internal/application/catalog"
	"github.com/jhoicas/ids-inventory-api/internal/application/dto"
	"github.com/jhoicas/ids-inventory-api/internal/application/search"
)

// SearchHandler maneja la búsqueda de productos por imagen y por palabra
// (protegido).
type SearchHandler struct {
	uc      *search.UseCase
	catalog *catalog.UseCase
}

// NewSearchHandler construye el handler.
func NewSearchHandler(uc *search.UseCase, catalogUC *catalog.UseCase) *SearchHandler {
	return &SearchHandler{uc: uc, catalog: catalogUC}
}

// ByWord godoc
// @Summary      Buscar productos por palabra
// @Tags         search
// @Security     Bearer
// @Produce      json
// @Param        word  query  string  true  "Subcadena del nombre"
// @Success      200   {object}  dto.ProductListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/search [get]
func (h *SearchHandler) ByWord(c *fiber.Ctx) error {
	word := c.Query("word")
	if word == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "word es requerido"})
	}
	out, err := h.catalog.SearchByName(word)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ByImage godoc
// @Summary      Buscar productos por imagen
// @Description  Acepta multipart (campo "image") o JSON con la imagen en base64. Etiqueta la imagen con el servicio de visión y cruza las etiquetas contra el catálogo; si la visión falla responde vacío.
// @Tags         search
// @Security     Bearer
// @Accept       mpfd
// @Accept       json
// @Produce      json
// @Param        image  formData  file  false  "Imagen a clasificar"
// @Param        body   body      dto.ImageSearchRequest  false  "Imagen en base64"
// @Success      200    {object}  dto.ImageSearchResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/search/image [post]
func (h *SearchHandler) ByImage(c *fiber.Ctx) error {
	in, err := parseImageRequest(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ImageBase64 == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "se requiere la imagen (multipart \"image\" o image_base64)"})
	}
	out, err := h.uc.ByImage(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// parseImageRequest admite las dos formas de envío: archivo multipart en el
// campo "image" o cuerpo JSON con image_base64.
func parseImageRequest(c *fiber.Ctx) (dto.ImageSearchRequest, error) {
	var in dto.ImageSearchRequest
	if file, err := c.FormFile("image"); err == nil && file != nil {
		f, err := file.Open()
		if err != nil {
			return in, err
		}
		defer func() { _ = f.Close() }()
		data, err := io.ReadAll(f)
		if err != nil {
			return in, err
		}
		in.ImageBase64 = base64.StdEncoding.EncodeToString(data)
		in.MimeType = file.Header.Get("Content-Type")
		return in, nil
	}
	if err := c.BodyParser(&in); err != nil {
		return in, err
	}
	return in, nil
}
