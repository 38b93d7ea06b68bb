package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ids-inventory-api/internal/application/dto"
	"github.com/jhoicas/ids-inventory-api/internal/application/placement"
)

// PlacementHandler maneja las peticiones HTTP del motor de colocaciones
// (protegido).
type PlacementHandler struct {
	uc *placement.UseCase
}

// NewPlacementHandler construye el handler.
func NewPlacementHandler(uc *placement.UseCase) *PlacementHandler {
	return &PlacementHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar recepción de stock (lote + colocaciones)
// @Description  Crea el lote, sus colocaciones y recalcula el inventario de cada par (producto, bodega) en una sola transacción.
// @Tags         placements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePlacementRequest  true  "Lote y colocaciones"
// @Success      201   {object}  dto.BatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/placements [post]
func (h *PlacementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePlacementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), GetUsername(c), in)
	if err != nil {
		placementsFailed.Inc()
		return writeError(c, err)
	}
	placementsCreated.Add(float64(len(out.Placements)))
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar colocaciones activas
// @Tags         placements
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PlacementResponse
// @Router       /api/placements [get]
func (h *PlacementHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Colocación por id
// @Tags         placements
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la colocación"
// @Success      200  {object}  dto.PlacementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/placements/{id} [get]
func (h *PlacementHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	out, err := h.uc.GetByID(int64(id))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "colocación no encontrada"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Corregir colocación
// @Description  Mueve o corrige una colocación y recalcula el inventario de los pares afectados.
// @Tags         placements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la colocación"
// @Param        body  body  dto.UpdatePlacementRequest  true  "Campos a corregir"
// @Success      200   {object}  dto.PlacementResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/placements/{id} [put]
func (h *PlacementHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	var in dto.UpdatePlacementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), GetUsername(c), int64(id), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Dar de baja colocación
// @Description  Baja lógica de la colocación y recálculo del inventario de su par.
// @Tags         placements
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la colocación"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/placements/{id} [delete]
func (h *PlacementHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	if err := h.uc.Delete(c.UserContext(), GetUsername(c), int64(id)); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "colocación dada de baja"})
}
