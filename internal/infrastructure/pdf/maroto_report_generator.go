// Package pdf implementa la exportación del reporte de valorización de inventario
// como documento imprimible (una fila por bodega más una fila de totales).
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
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/inventory-control-api/internal/application/analytics"
	"github.com/jhoicas/inventory-control-api/internal/domain/repository"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ analytics.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa analytics.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	printer *message.Printer
}

// NewMarotoReportGenerator construye el generador con formato monetario en-US.
func NewMarotoReportGenerator() *MarotoReportGenerator {
	return &MarotoReportGenerator{printer: message.NewPrinter(language.AmericanEnglish)}
}

// GenerateInventoryValuePDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryValuePDF(
	_ context.Context,
	rows []repository.WarehouseValue,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Valorización de Inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range rows {
		m.AddRows(g.tableRow(r))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalsRow(rows))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título del reporte (izq) y fecha de generación (der).
func headerRow() core.Row {
	fecha := time.Now().Format("02/01/2006 15:04")
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Valorización de Inventario por Bodega", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+fecha, props.Text{
				Size: 9, Top: 3, Color: colorGray, Align: align.Right,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1}
	headerRight := header
	headerRight.Align = align.Right
	return row.New(8).Add(
		col.New(5).Add(text.New("Bodega", header)),
		col.New(2).Add(text.New("Productos", headerRight)),
		col.New(2).Add(text.New("Unidades", headerRight)),
		col.New(3).Add(text.New("Valor Total", headerRight)),
	)
}

func (g *MarotoReportGenerator) tableRow(r repository.WarehouseValue) core.Row {
	cell := props.Text{Size: 9, Top: 1}
	cellRight := cell
	cellRight.Align = align.Right
	return row.New(7).Add(
		col.New(5).Add(text.New(r.WarehouseName, cell)),
		col.New(2).Add(text.New(g.printer.Sprintf("%d", r.ProductCount), cellRight)),
		col.New(2).Add(text.New(g.printer.Sprintf("%d", r.TotalUnits), cellRight)),
		col.New(3).Add(text.New(g.formatMoney(r.TotalValue), cellRight)),
	)
}

func (g *MarotoReportGenerator) totalsRow(rows []repository.WarehouseValue) core.Row {
	var units int
	total := decimal.Zero
	for _, r := range rows {
		units += r.TotalUnits
		total = total.Add(r.TotalValue)
	}
	bold := props.Text{Style: fontstyle.Bold, Size: 10, Top: 1}
	boldRight := bold
	boldRight.Align = align.Right
	return row.New(9).Add(
		col.New(7).Add(text.New("TOTAL", bold)),
		col.New(2).Add(text.New(g.printer.Sprintf("%d", units), boldRight)),
		col.New(3).Add(text.New(g.formatMoney(total), boldRight)),
	)
}

// formatMoney formatea el monto con separador de miles y dos decimales ($1,234.50).
func (g *MarotoReportGenerator) formatMoney(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return g.printer.Sprintf("$%.2f", f)
}
