package report

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	appreport "github.com/jhoicas/ids-inventory-api/internal/application/report"
)

// Verificar en tiempo de compilación que ExcelGenerator implementa el puerto.
var _ appreport.ExcelGenerator = (*ExcelGenerator)(nil)

const (
	sheetInventory = "Inventario"
	sheetLowStock  = "Stock bajo"
)

// ExcelGenerator genera el libro de inventario con Excelize: una hoja con
// todos los pares (producto, bodega) y otra solo con los que están por debajo
// de su mínimo o punto de reorden.
type ExcelGenerator struct{}

// NewExcelGenerator construye el generador.
func NewExcelGenerator() *ExcelGenerator { return &ExcelGenerator{} }

// InventoryWorkbook genera el libro y devuelve sus bytes.
func (g *ExcelGenerator) InventoryWorkbook(rows []appreport.InventoryRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetInventory)
	if _, err := f.NewSheet(sheetLowStock); err != nil {
		return nil, fmt.Errorf("excel: crear hoja: %w", err)
	}

	header := []any{"Código", "Producto", "Categoría", "Bodega", "Cantidad", "Stock mínimo", "Punto de reorden"}
	for _, sheet := range []string{sheetInventory, sheetLowStock} {
		if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
			return nil, fmt.Errorf("excel: encabezado: %w", err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		_ = f.SetRowStyle(sheetInventory, 1, 1, bold)
		_ = f.SetRowStyle(sheetLowStock, 1, 1, bold)
	}

	invLine, lowLine := 2, 2
	for _, row := range rows {
		values := []any{
			row.ProductCode,
			row.ProductName,
			row.CategoryName,
			row.WarehouseName,
			row.Quantity.String(),
			minStockCell(row),
			reorderCell(row),
		}
		cell := fmt.Sprintf("A%d", invLine)
		if err := f.SetSheetRow(sheetInventory, cell, &values); err != nil {
			return nil, fmt.Errorf("excel: fila inventario: %w", err)
		}
		invLine++

		if isLowStock(row) {
			cell := fmt.Sprintf("A%d", lowLine)
			if err := f.SetSheetRow(sheetLowStock, cell, &values); err != nil {
				return nil, fmt.Errorf("excel: fila stock bajo: %w", err)
			}
			lowLine++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

// isLowStock marca la fila si la cantidad está bajo el mínimo del operador o
// bajo el punto de reorden. Sin umbrales configurados no hay alarma.
func isLowStock(row appreport.InventoryRow) bool {
	if row.MinStockLevel != nil && row.Quantity.LessThan(*row.MinStockLevel) {
		return true
	}
	if row.ReorderPoint != nil && row.Quantity.LessThan(decimal.NewFromInt(int64(*row.ReorderPoint))) {
		return true
	}
	return false
}

func minStockCell(row appreport.InventoryRow) string {
	if row.MinStockLevel == nil {
		return ""
	}
	return row.MinStockLevel.String()
}

func reorderCell(row appreport.InventoryRow) any {
	if row.ReorderPoint == nil {
		return ""
	}
	return *row.ReorderPoint
}
