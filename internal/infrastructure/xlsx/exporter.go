// Package xlsx exporta las corridas a libros de Excel con excelize.
package xlsx

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	appsim "github.com/jhoicas/Simulacion-api/internal/application/simulation"
)

const (
	// SheetResults hoja con la tabla completa (encabezados + celdas numéricas).
	SheetResults = "Resultados"
	// SheetSummary hoja con las métricas clave de la corrida.
	SheetSummary = "Resumen"
)

// Exporter implementa simulation.Exporter para XLSX.
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter { return &Exporter{} }

func (e *Exporter) Format() string { return "xlsx" }
func (e *Exporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Export genera el libro en memoria.
func (e *Exporter) Export(ctx context.Context, doc appsim.Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f := excelize.NewFile()
	defer f.Close()

	// La hoja por defecto se renombra para que Resultados quede primera y activa.
	if err := f.SetSheetName("Sheet1", SheetResults); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}
	if err := writeTable(f, doc); err != nil {
		return nil, err
	}
	if len(doc.Metrics) > 0 {
		if err := writeSummary(f, doc); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: generar libro: %w", err)
	}
	return buf.Bytes(), nil
}

func writeTable(f *excelize.File, doc appsim.Document) error {
	for i, h := range doc.Table.Columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetResults, cell, h); err != nil {
			return fmt.Errorf("xlsx: encabezado %q: %w", h, err)
		}
	}
	for r, row := range doc.Table.Rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellFloat(SheetResults, cell, v, -1, 64); err != nil {
				return fmt.Errorf("xlsx: celda %s: %w", cell, err)
			}
		}
	}
	if len(doc.Table.Columns) > 0 {
		last, _ := excelize.ColumnNumberToName(len(doc.Table.Columns))
		if err := f.SetColWidth(SheetResults, "A", last, 20); err != nil {
			return fmt.Errorf("xlsx: ancho de columnas: %w", err)
		}
	}
	return nil
}

func writeSummary(f *excelize.File, doc appsim.Document) error {
	if _, err := f.NewSheet(SheetSummary); err != nil {
		return fmt.Errorf("xlsx: crear hoja resumen: %w", err)
	}
	values := [][]any{{doc.Title}, {doc.Description}, {}}
	for _, m := range doc.Metrics {
		values = append(values, []any{m.Label, m.Value})
	}
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(SheetSummary, cell, &v); err != nil {
			return fmt.Errorf("xlsx: fila resumen %d: %w", i+1, err)
		}
	}
	return f.SetColWidth(SheetSummary, "A", "A", 32)
}
