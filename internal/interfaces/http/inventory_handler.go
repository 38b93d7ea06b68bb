package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ids-inventory-api/internal/application/dto"
	"github.com/jhoicas/ids-inventory-api/internal/application/usecase"
)

// InventoryHandler maneja la gestión de umbrales de inventario (protegido).
type InventoryHandler struct {
	uc *usecase.InventoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// UpsertThresholds godoc
// @Summary      Fijar umbrales del par (producto, bodega)
// @Description  No toca la cantidad recalculada por el motor; crea la fila con cantidad cero si no existe.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpsertThresholdsRequest  true  "Umbrales"
// @Success      200   {object}  dto.InventoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/thresholds [put]
func (h *InventoryHandler) UpsertThresholds(c *fiber.Ctx) error {
	var in dto.UpsertThresholdsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID == 0 || in.WarehouseID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id y warehouse_id son requeridos"})
	}
	out, err := h.uc.UpsertThresholds(GetUsername(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByPair godoc
// @Summary      Inventario activo, filtrable por par (producto, bodega)
// @Description  Sin parámetros lista todas las filas activas; con product_id y warehouse_id devuelve la fila del par.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id    query  int  false  "ID del producto"
// @Param        warehouse_id  query  int  false  "ID de la bodega"
// @Success      200  {object}  dto.InventoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) GetByPair(c *fiber.Ctx) error {
	productID := c.QueryInt("product_id")
	warehouseID := c.QueryInt("warehouse_id")
	if productID == 0 && warehouseID == 0 {
		out, err := h.uc.ListActive()
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(out)
	}
	if productID == 0 || warehouseID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id y warehouse_id van juntos"})
	}
	out, err := h.uc.GetByPair(int64(productID), int64(warehouseID))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "inventario no encontrado"})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Fila de inventario por id
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la fila"
// @Success      200  {object}  dto.InventoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [get]
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	out, err := h.uc.GetByID(int64(id))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "inventario no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar fila de inventario
// @Description  Campos opcionales; quantity_available admite corrección manual hasta el próximo recálculo del motor.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la fila"
// @Param        body  body  dto.UpdateInventoryRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.InventoryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	var in dto.UpdateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetUsername(c), int64(id), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListByProduct godoc
// @Summary      Inventario de un producto en todas las bodegas
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {array}  dto.InventoryResponse
// @Router       /api/inventory/product/{id} [get]
func (h *InventoryHandler) ListByProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	out, err := h.uc.ListByProduct(int64(id))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
