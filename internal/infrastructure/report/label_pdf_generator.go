package report

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appreport "github.com/jhoicas/ids-inventory-api/internal/application/report"
)

// Verificar en tiempo de compilación que LabelPDFGenerator implementa el puerto.
var _ appreport.LabelPDFGenerator = (*LabelPDFGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// LabelPDFGenerator genera etiquetas de colocación con Maroto v2: una
// etiqueta por colocación con el QR del producto y su ubicación física
// (bodega, pasillo, bin).
type LabelPDFGenerator struct{}

// NewLabelPDFGenerator construye el generador.
func NewLabelPDFGenerator() *LabelPDFGenerator { return &LabelPDFGenerator{} }

// PlacementLabels genera el PDF y devuelve sus bytes.
func (g *LabelPDFGenerator) PlacementLabels(rows []appreport.LabelRow) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		Build()

	m := maroto.New(cfg)

	for _, label := range rows {
		m.AddRows(labelRow(label))
		m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar etiquetas: %w", err)
	}
	return doc.GetBytes(), nil
}

// labelRow: QR (izq) y datos de la colocación (der).
func labelRow(label appreport.LabelRow) core.Row {
	ubicacion := label.WarehouseName
	if label.Aisle != "" {
		ubicacion += " · Pasillo " + label.Aisle
	}
	if label.Bin != "" {
		ubicacion += " · Bin " + label.Bin
	}

	return row.New(30).Add(
		col.New(3).Add(
			code.NewQr(label.QRContent, props.Rect{Percent: 90, Center: true}),
		),
		col.New(9).Add(
			text.New(label.ProductName, props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 2,
			}),
			text.New("Código: "+label.ProductCode, props.Text{Size: 9, Top: 9, Color: colorGray}),
			text.New("Lote: "+label.LotCode, props.Text{Size: 9, Top: 14, Color: colorGray}),
			text.New(ubicacion, props.Text{Size: 9, Top: 19}),
			text.New(fmt.Sprintf("Cantidad: %d", label.Quantity), props.Text{Size: 9, Top: 24}),
		),
	)
}
