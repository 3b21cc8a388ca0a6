// Package csv serializa las tablas de resultados en CSV (coma, UTF-8, fila de encabezados,
// sin columna de índice) y las vuelve a leer.
package csv

import (
	"bytes"
	"context"
	stdcsv "encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	appsim "github.com/jhoicas/Simulacion-api/internal/application/simulation"
	engine "github.com/jhoicas/Simulacion-api/internal/domain/simulation"
)

// Exporter implementa simulation.Exporter para CSV.
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter { return &Exporter{} }

func (e *Exporter) Format() string      { return "csv" }
func (e *Exporter) ContentType() string { return "text/csv; charset=utf-8" }

// Export escribe solo la tabla; las métricas no forman parte del CSV.
func (e *Exporter) Export(ctx context.Context, doc appsim.Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := WriteTable(&buf, doc.Table); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTable escribe encabezados y filas. Los números van en la forma más corta que
// conserva el valor exacto al releerlos.
func WriteTable(w io.Writer, t engine.Table) error {
	cw := stdcsv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("csv: escribir encabezados: %w", err)
	}
	record := make([]string, len(t.Columns))
	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return fmt.Errorf("csv: fila %d tiene %d columnas, se esperaban %d", i, len(row), len(t.Columns))
		}
		for j, v := range row {
			record[j] = strconv.FormatFloat(v, 'f', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("csv: escribir fila %d: %w", i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("csv: flush: %w", err)
	}
	return nil
}

// ReadTable lee un CSV generado por WriteTable.
func ReadTable(r io.Reader) (engine.Table, error) {
	cr := stdcsv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return engine.Table{}, errors.New("csv: archivo vacío")
		}
		return engine.Table{}, fmt.Errorf("csv: leer encabezados: %w", err)
	}
	cr.FieldsPerRecord = len(header)

	t := engine.Table{Columns: header}
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return engine.Table{}, fmt.Errorf("csv: línea %d: %w", line, err)
		}
		row := make([]float64, len(rec))
		for j, s := range rec {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return engine.Table{}, fmt.Errorf("csv: línea %d columna %q: %w", line, header[j], err)
			}
			row[j] = v
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}
