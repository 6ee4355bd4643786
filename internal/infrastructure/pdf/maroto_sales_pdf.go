// Package pdf implementa la generación del PDF del registro de ventas.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Registro de Ventas + fecha de generación            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Por cada fecha (descendente):                               │
//	│    FECHA                                                     │
//	│    TABLA: # | Producto | Precio de venta                     │
//	│    Subtotal del día                                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL GENERAL                                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/dukastock/duka-stock-api/internal/application/report"
	"github.com/dukastock/duka-stock-api/internal/domain/inventory"
)

// Verificar en tiempo de compilación que el generador implementa el puerto.
var _ report.SalesPDFGenerator = (*MarotoSalesPDF)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoSalesPDF implementa report.SalesPDFGenerator usando Maroto v2.
type MarotoSalesPDF struct {
	appName string
}

// NewMarotoSalesPDF construye el generador. appName aparece en el encabezado.
func NewMarotoSalesPDF(appName string) *MarotoSalesPDF {
	return &MarotoSalesPDF{appName: appName}
}

// GenerateSalesPDF genera el PDF del registro de ventas y devuelve sus bytes.
func (g *MarotoSalesPDF) GenerateSalesPDF(_ context.Context, record inventory.SalesRecord, currency string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Registro de Ventas", true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.appName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if len(record.Groups) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Sin ventas registradas.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 3,
			}),
		)))
	}

	for _, group := range record.Groups {
		m.AddRows(dateHeaderRow(group.Date))
		m.AddRows(tableHeaderRow())
		for _, r := range itemRows(group.Items, currency) {
			m.AddRows(r)
		}
		m.AddRows(subtotalRow(group, currency))
		m.AddRows(line.NewRow(2))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(grandTotalRow(record, currency))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la app + título + fecha de generación.
func headerRow(appName string) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(appName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Registro de Ventas", props.Text{
				Size: 10, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+time.Now().Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// dateHeaderRow: encabezado de un grupo de ventas (una fecha calendario).
func dateHeaderRow(date string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(date, props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2,
		}),
	))
}

// tableHeaderRow: cabecera de la tabla de ítems de un día.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorGray, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		h("#", 1, align.Center),
		h("Producto", 7, align.Left),
		h("Precio de venta", 4, align.Right),
	)
}

// itemRows: una fila por ítem vendido del día.
func itemRows(items []inventory.SoldItem, currency string) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(6).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", it.ItemNumber),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(7).Add(text.New(
				fmt.Sprintf("%s #%d", it.Name, it.ItemNumber),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				currency+" "+it.SellingPrice.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// subtotalRow: subtotal del día alineado a la derecha.
func subtotalRow(group inventory.SalesGroup, currency string) core.Row {
	return row.New(7).Add(
		col.New(8).Add(text.New("Subtotal "+group.Date+":", props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 1,
		})),
		col.New(4).Add(text.New(currency+" "+group.Subtotal.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 1, Top: 1,
		})),
	)
}

// grandTotalRow: total general de todas las fechas.
func grandTotalRow(record inventory.SalesRecord, currency string) core.Row {
	return row.New(10).Add(
		col.New(8).Add(text.New("TOTAL GENERAL:", props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(4).Add(text.New(currency+" "+record.GrandTotal.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}
