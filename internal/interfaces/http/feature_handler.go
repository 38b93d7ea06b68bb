package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ids-inventory-api/internal/application/dto"
	"github.com/jhoicas/ids-inventory-api/internal/application/usecase"
)

// FeatureHandler maneja el paquete de capacidades por usuario (protegido).
type FeatureHandler struct {
	uc *usecase.FeatureUseCase
}

// NewFeatureHandler construye el handler.
func NewFeatureHandler(uc *usecase.FeatureUseCase) *FeatureHandler {
	return &FeatureHandler{uc: uc}
}

// Upsert godoc
// @Summary      Reemplazar capacidades de un usuario
// @Tags         features
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del usuario"
// @Param        body  body  dto.FeatureSetRequest  true  "Paquete completo de capacidades"
// @Success      200   {object}  dto.FeatureSetResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/users/{id}/features [put]
func (h *FeatureHandler) Upsert(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	var in dto.FeatureSetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Upsert(int64(id), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByUser godoc
// @Summary      Capacidades de un usuario
// @Tags         features
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del usuario"
// @Success      200  {object}  dto.FeatureSetResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id}/features [get]
func (h *FeatureHandler) GetByUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	out, err := h.uc.GetByUser(int64(id))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
