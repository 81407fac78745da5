// Package pdf genera el reporte de stock de una bodega en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Bodega (código + nombre)  │  Fecha de corte         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Código | Artículo | Cantidad | Días sin entrada      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: referencias / unidades                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
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

	appinventory "github.com/jhoicas/erp-inventario/internal/application/inventory"
	"github.com/jhoicas/erp-inventario/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 170, Green: 40, Blue: 40}
)

// staleDays a partir de cuántos días sin entrada se resalta la fila.
const staleDays = 90

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appinventory.StockReportPDFGenerator = (*StockReportGenerator)(nil)

// StockReportGenerator implementa inventory.StockReportPDFGenerator usando Maroto v2.
type StockReportGenerator struct{}

// NewStockReportGenerator construye el generador.
func NewStockReportGenerator() *StockReportGenerator { return &StockReportGenerator{} }

// GenerateStockReportPDF genera el PDF y devuelve sus bytes.
func (g *StockReportGenerator) GenerateStockReportPDF(
	_ context.Context,
	storage *entity.Storage,
	rows []entity.OverallStock,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de stock "+storage.Code, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(storage, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(rows)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(rows))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(storage *entity.Storage, generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("REPORTE DE STOCK", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(storage.Code+" · "+storage.Name, props.Text{
				Style: fontstyle.Bold, Size: 12, Top: 6,
			}),
		),
		col.New(4).Add(
			text.New("Corte: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Código", 2, align.Left),
		h("Artículo", 6, align.Left),
		h("Cantidad", 2, align.Right),
		h("Días sin entrada", 2, align.Right),
	)
}

func tableRows(rows []entity.OverallStock) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		days := "—"
		style := props.Text{Size: 8, Align: align.Right, Top: 1}
		if r.DaysSinceLastInbound != nil {
			days = strconv.FormatInt(*r.DaysSinceLastInbound, 10)
			if *r.DaysSinceLastInbound >= staleDays {
				style.Color = colorAlert
				style.Style = fontstyle.Bold
			}
		}
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(r.ItemCode, props.Text{Size: 8, Top: 1})),
			col.New(6).Add(text.New(r.ItemName, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(formatThousands(r.Quantity), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(days, style)),
		))
	}
	return result
}

func totalsRow(rows []entity.OverallStock) core.Row {
	var units int64
	for _, r := range rows {
		units += r.Quantity
	}
	return row.New(10).Add(
		col.New(8).Add(text.New(fmt.Sprintf("Referencias: %d", len(rows)), props.Text{
			Style: fontstyle.Bold, Size: 9, Top: 2,
		})),
		col.New(2).Add(text.New(formatThousands(units), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2, Color: colorPrimary,
		})),
		col.New(2),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatThousands inserta puntos de miles. Ej: 25000 → "25.000", -1200 → "-1.200".
func formatThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	sign := ""
	if n < 0 {
		sign, s = "-", s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}
	buf := make([]byte, 0, len(s)+len(s)/3)
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + string(buf)
}
