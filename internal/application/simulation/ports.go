package simulation

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/Simulacion-api/internal/domain"
	engine "github.com/jhoicas/Simulacion-api/internal/domain/simulation"
)

// Exporter convierte el resultado de una corrida a un formato descargable (CSV, XLSX, PDF).
// Lo implementan los adaptadores de internal/infrastructure.
type Exporter interface {
	Format() string      // extensión sin punto: "csv"
	ContentType() string // MIME del archivo generado
	Export(ctx context.Context, doc Document) ([]byte, error)
}

// MetricKind indica cómo presentar una métrica.
type MetricKind int

const (
	MetricNumber MetricKind = iota
	MetricMoney
	MetricPercent // Value es una fracción en [0,1]
)

// Metric métrica clave de la corrida (las tarjetas del tablero).
type Metric struct {
	Label string
	Value float64
	Kind  MetricKind
}

// Document contenido exportable de una corrida.
// Los formatos tabulares usan solo Table; los de presentación también Title, Metrics y PreviewRows.
type Document struct {
	Title       string
	Description string
	Metrics     []Metric
	Table       engine.Table
	PreviewRows int // filas a mostrar en formatos de presentación; 0 = todas
}

// ExportFile archivo listo para descargar.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// exporterSet registro de exportadores por formato.
type exporterSet map[string]Exporter

func newExporterSet(exporters []Exporter) exporterSet {
	set := make(exporterSet, len(exporters))
	for _, e := range exporters {
		set[strings.ToLower(e.Format())] = e
	}
	return set
}

func (s exporterSet) get(format string) (Exporter, error) {
	e, ok := s[strings.ToLower(strings.TrimSpace(format))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (disponibles: %s)", domain.ErrUnsupportedFormat, format, strings.Join(s.formats(), ", "))
	}
	return e, nil
}

func (s exporterSet) formats() []string {
	out := make([]string, 0, len(s))
	for f := range s {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
