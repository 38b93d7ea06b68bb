package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ids-inventory-api/internal/application/dto"
	"github.com/jhoicas/ids-inventory-api/internal/application/report"
)

// ReportHandler maneja los reportes descargables (protegido).
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// InventoryWorkbook godoc
// @Summary      Descargar reporte de inventario en Excel
// @Description  Libro con todos los pares (producto, bodega) y una hoja aparte con los de stock bajo.
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/reports/inventory.xlsx [get]
func (h *ReportHandler) InventoryWorkbook(c *fiber.Ctx) error {
	data, err := h.uc.InventoryWorkbook()
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventario.xlsx"`)
	return c.Send(data)
}

// PlacementLabels godoc
// @Summary      Descargar etiquetas de colocación en PDF
// @Description  Una etiqueta con QR por cada colocación activa del producto.
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/products/{id}/labels.pdf [get]
func (h *ReportHandler) PlacementLabels(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	data, err := h.uc.PlacementLabels(int64(id))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="etiquetas.pdf"`)
	return c.Send(data)
}
