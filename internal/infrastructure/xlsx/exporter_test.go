package xlsx_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	appsim "github.com/jhoicas/Simulacion-api/internal/application/simulation"
	engine "github.com/jhoicas/Simulacion-api/internal/domain/simulation"
	"github.com/jhoicas/Simulacion-api/internal/infrastructure/xlsx"
)

func sampleDocument() appsim.Document {
	return appsim.Document{
		Title:       "Simulación de Inventario",
		Description: "prueba",
		Metrics: []appsim.Metric{
			{Label: "Costo Promedio Diario", Value: 435.5, Kind: appsim.MetricMoney},
		},
		Table: engine.Table{
			Columns: engine.InventoryColumns,
			Rows: [][]float64{
				{1, 600, 0, 0, 0, 0, 600, 600},
				{2, 0, 0, 50, 300, 0, 0, 300},
			},
		},
	}
}

func TestExporter_Tabla(t *testing.T) {
	exp := xlsx.NewExporter()
	assert.Equal(t, "xlsx", exp.Format())

	data, err := exp.Export(context.Background(), sampleDocument())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{xlsx.SheetResults, xlsx.SheetSummary}, f.GetSheetList())

	rows, err := f.GetRows(xlsx.SheetResults, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, engine.InventoryColumns, rows[0])
	assert.Equal(t, []string{"1", "600", "0", "0", "0", "0", "600", "600"}, rows[1])
	assert.Equal(t, "300", rows[2][4])
}

func TestExporter_Resumen(t *testing.T) {
	data, err := xlsx.NewExporter().Export(context.Background(), sampleDocument())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue(xlsx.SheetSummary, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Simulación de Inventario", title)

	label, err := f.GetCellValue(xlsx.SheetSummary, "A4")
	require.NoError(t, err)
	assert.Equal(t, "Costo Promedio Diario", label)

	value, err := f.GetCellValue(xlsx.SheetSummary, "B4", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "435.5", value)
}

func TestExporter_SinMetricas_UnaHoja(t *testing.T) {
	doc := sampleDocument()
	doc.Metrics = nil

	data, err := xlsx.NewExporter().Export(context.Background(), doc)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{xlsx.SheetResults}, f.GetSheetList())
}
