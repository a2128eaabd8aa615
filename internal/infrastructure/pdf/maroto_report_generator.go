// Package pdf implementa la representación PDF del reporte de ventas.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la app │ Fecha de generación              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  MÉTRICAS: Ingreso total / Ingreso 30d / Ventas / Clientes  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOP PRODUCTOS: # | Producto | Ingreso                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  VENTAS RECIENTES: Fecha | Cliente | Estado | Monto          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	"github.com/jhoicas/salespulse-api/internal/application/dto"
	"github.com/jhoicas/salespulse-api/internal/application/ports"
)

var _ ports.SalesReportGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 79, Green: 70, Blue: 229}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa ports.SalesReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateSalesReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateSalesReport(_ context.Context, data dto.SalesReportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Sales Report", true).
		WithAuthor(data.AppName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(metricsRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Top productos
	m.AddRows(sectionTitleRow("TOP PRODUCTS BY REVENUE"))
	for i, p := range data.TopProducts {
		m.AddRows(productRow(i+1, p))
	}

	// Ventas recientes
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(sectionTitleRow("RECENT SALES"))
	m.AddRows(salesHeaderRow())
	for _, s := range data.RecentSales {
		m.AddRows(saleRow(s))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la app (izq) y fecha de generación (der).
func headerRow(data dto.SalesReportData) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(data.AppName, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Sales performance report", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generated: "+data.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

// metricsRow: las cuatro métricas del dashboard en una fila.
func metricsRow(data dto.SalesReportData) core.Row {
	return row.New(14).Add(
		metricCol("Total Revenue", "$"+data.TotalRevenue.StringFixed(2)),
		metricCol("Revenue (30d)", "$"+data.TrailingRevenue.StringFixed(2)),
		metricCol("Total Sales", fmt.Sprintf("%d", data.SalesCount)),
		metricCol("Customers", fmt.Sprintf("%d", data.CustomerCount)),
	)
}

func metricCol(label, value string) core.Col {
	return col.New(3).Add(
		text.New(label, props.Text{Size: 8, Color: colorGray, Top: 1}),
		text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 6}),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 3,
			}),
		),
	)
}

func productRow(rank int, p dto.RevenueEntryDTO) core.Row {
	return row.New(6).Add(
		col.New(1).Add(text.New(fmt.Sprintf("%d", rank), props.Text{Size: 8, Color: colorGray})),
		col.New(8).Add(text.New(p.Name, props.Text{Size: 9})),
		col.New(3).Add(text.New("$"+p.Revenue.StringFixed(2), props.Text{Size: 9, Align: align.Right})),
	)
}

func salesHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray}
	headerRight := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray, Align: align.Right}
	return row.New(6).Add(
		col.New(3).Add(text.New("Date", header)),
		col.New(4).Add(text.New("Customer", header)),
		col.New(2).Add(text.New("Status", header)),
		col.New(3).Add(text.New("Amount", headerRight)),
	)
}

func saleRow(s dto.ReportSaleRowDTO) core.Row {
	return row.New(6).Add(
		col.New(3).Add(text.New(s.Date.Format("02/01/2006"), props.Text{Size: 9})),
		col.New(4).Add(text.New(s.Customer, props.Text{Size: 9})),
		col.New(2).Add(text.New(s.Status, props.Text{Size: 9, Color: colorGray})),
		col.New(3).Add(text.New("$"+s.Amount.StringFixed(2), props.Text{Size: 9, Align: align.Right})),
	)
}
