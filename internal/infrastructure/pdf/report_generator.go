// Package pdf genera el reporte PDF de una corrida de simulación con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte           │  Fecha de emisión   │
//	│  Descripción de la corrida (parámetros y semilla)           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  MÉTRICAS: tarjetas Etiqueta / Valor (2 por fila)            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: primeras N filas de resultados                       │
//	│  FOOTER: "Mostrando N de M filas"                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"math"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	appsim "github.com/jhoicas/Simulacion-api/internal/application/simulation"
	engine "github.com/jhoicas/Simulacion-api/internal/domain/simulation"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorLight   = &props.Color{Red: 235, Green: 241, Blue: 247}
)

// maroto reparte el ancho en 12 columnas.
const gridSize = 12

// ── Generator ─────────────────────────────────────────────────────────────────

// ReportGenerator implementa simulation.Exporter usando Maroto v2.
type ReportGenerator struct {
	printer *message.Printer
	now     func() time.Time
}

// NewReportGenerator construye el generador con formato numérico en español.
func NewReportGenerator() *ReportGenerator {
	return &ReportGenerator{
		printer: message.NewPrinter(language.Spanish),
		now:     time.Now,
	}
}

func (g *ReportGenerator) Format() string      { return "pdf" }
func (g *ReportGenerator) ContentType() string { return "application/pdf" }

// Export genera el PDF y devuelve sus bytes.
func (g *ReportGenerator) Export(ctx context.Context, doc appsim.Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(doc.Title, true).
		WithAuthor("Simulacion-api", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRows(doc)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if len(doc.Metrics) > 0 {
		m.AddRows(g.metricRows(doc.Metrics)...)
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	}

	preview := doc.Table
	if doc.PreviewRows > 0 {
		preview = preview.Head(doc.PreviewRows)
	}
	if len(preview.Columns) > 0 {
		m.AddRows(tableHeaderRow(preview.Columns))
		m.AddRows(g.tableRows(preview)...)
		m.AddRows(line.NewRow(3))
		m.AddRows(footerRow(g.printer.Sprintf("Mostrando %d de %d filas", len(preview.Rows), len(doc.Table.Rows))))
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRows: título (izq), fecha (der) y descripción a todo el ancho.
func (g *ReportGenerator) headerRows(doc appsim.Document) []core.Row {
	rows := []core.Row{
		row.New(12).Add(
			col.New(9).Add(text.New(doc.Title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			})),
			col.New(3).Add(text.New("Fecha: "+g.now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			})),
		),
	}
	if doc.Description != "" {
		rows = append(rows, row.New(8).Add(col.New(gridSize).Add(
			text.New(doc.Description, props.Text{Size: 8, Top: 1, Color: colorGray}),
		)))
	}
	return rows
}

// metricRows: tarjetas de métricas, dos por fila.
func (g *ReportGenerator) metricRows(metrics []appsim.Metric) []core.Row {
	card := func(m appsim.Metric) core.Col {
		return col.New(gridSize/2).Add(
			text.New(m.Label, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1, Left: 2,
			}),
			text.New(g.formatMetric(m), props.Text{
				Style: fontstyle.Bold, Size: 12, Top: 6, Left: 2,
			}),
		)
	}
	rows := make([]core.Row, 0, (len(metrics)+1)/2)
	for i := 0; i < len(metrics); i += 2 {
		r := row.New(14).Add(card(metrics[i]))
		if i+1 < len(metrics) {
			r.Add(card(metrics[i+1]))
		} else {
			r.Add(col.New(gridSize / 2))
		}
		rows = append(rows, r)
	}
	return rows
}

// tableHeaderRow: cabecera de la tabla con fondo claro.
func tableHeaderRow(columns []string) core.Row {
	cols := make([]core.Col, 0, len(columns))
	for i, c := range columns {
		cols = append(cols, col.New(colSize(i, len(columns))).Add(text.New(c, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 1,
		})))
	}
	return row.New(8).Add(cols...).WithStyle(&props.Cell{BackgroundColor: colorLight})
}

// tableRows: una fila por escenario o día.
func (g *ReportGenerator) tableRows(t engine.Table) []core.Row {
	result := make([]core.Row, 0, len(t.Rows))
	for _, r := range t.Rows {
		cols := make([]core.Col, 0, len(r))
		for i, v := range r {
			name := ""
			if i < len(t.Columns) {
				name = t.Columns[i]
			}
			cols = append(cols, col.New(colSize(i, len(r))).Add(text.New(
				g.formatCell(name, v),
				props.Text{Size: 7, Align: align.Right, Top: 1, Right: 1},
			)))
		}
		result = append(result, row.New(5).Add(cols...))
	}
	return result
}

func footerRow(s string) core.Row {
	return row.New(6).Add(col.New(gridSize).Add(
		text.New(s, props.Text{Size: 7, Color: colorGray, Align: align.Right}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func (g *ReportGenerator) formatMetric(m appsim.Metric) string {
	switch m.Kind {
	case appsim.MetricMoney:
		return g.printer.Sprintf("$%.2f", m.Value)
	case appsim.MetricPercent:
		return g.printer.Sprintf("%.2f%%", m.Value*100)
	default:
		return g.printer.Sprintf("%.2f", m.Value)
	}
}

// colSize reparte las 12 columnas de la grilla entre n columnas de datos.
// Las primeras reciben el sobrante; con más de 12 columnas cada una recibe 1.
// formatCell: conteos enteros sin decimales, el resto con dos.
func (g *ReportGenerator) formatCell(column string, v float64) string {
	if engine.IsCountColumn(column) && v == math.Trunc(v) {
		return g.printer.Sprintf("%.0f", v)
	}
	return g.printer.Sprintf("%.2f", v)
}

func colSize(i, n int) int {
	if n >= gridSize {
		return 1
	}
	size := gridSize / n
	if i < gridSize%n {
		size++
	}
	return size
}
