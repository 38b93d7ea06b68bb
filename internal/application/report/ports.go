package report

import "github.com/shopspring/decimal"

// InventoryRow una línea del reporte de inventario: par (producto, bodega)
// con sus umbrales.
type InventoryRow struct {
	ProductCode   string
	ProductName   string
	CategoryName  string
	WarehouseName string
	Quantity      decimal.Decimal
	MinStockLevel *decimal.Decimal
	ReorderPoint  *int
}

// LabelRow una etiqueta de colocación para imprimir: código QR del producto y
// su ubicación física.
type LabelRow struct {
	ProductCode   string
	ProductName   string
	QRContent     string
	LotCode       string
	WarehouseName string
	Aisle         string
	Bin           string
	Quantity      int64
}

// ExcelGenerator genera el libro de inventario (hoja completa + hoja de
// stock bajo).
type ExcelGenerator interface {
	InventoryWorkbook(rows []InventoryRow) ([]byte, error)
}

// LabelPDFGenerator genera el PDF de etiquetas de colocación con QR.
type LabelPDFGenerator interface {
	PlacementLabels(rows []LabelRow) ([]byte, error)
}
