package simulation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Simulacion-api/internal/domain/simulation"
)

func TestNewsvendorTable_OrdenDeColumnas(t *testing.T) {
	cfg := freddyConfig()
	cfg.SampleCount = 1
	cfg.DemandStdDev = 0
	res, err := simulation.SimulateNewsvendor(cfg, simulation.NewSeededSource(1))
	require.NoError(t, err)

	tbl := simulation.NewsvendorTable(res)
	assert.Equal(t, []string{
		"demand", "sales", "surplus", "revenue_from_sales",
		"revenue_from_salvage", "total_cost", "net_profit",
	}, tbl.Columns)
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, []float64{60000, 60000, 0, 2_520_000, 0, 2_140_000, 380_000}, tbl.Rows[0])
}

func TestInventoryTable_UnaFilaPorDia(t *testing.T) {
	cfg := bodegaConfig()
	res, err := simulation.SimulateInventory(cfg, simulation.NewSeededSource(8))
	require.NoError(t, err)

	tbl := simulation.InventoryTable(res)
	assert.Equal(t, simulation.InventoryColumns, tbl.Columns)
	require.Len(t, tbl.Rows, cfg.HorizonDays)
	for i, row := range tbl.Rows {
		require.Len(t, row, len(tbl.Columns))
		assert.Equal(t, float64(i+1), row[0])
		assert.Equal(t, res.Days[i].TotalDailyCost, row[7])
	}
}

func TestTable_Head(t *testing.T) {
	tbl := simulation.Table{Columns: []string{"a"}, Rows: [][]float64{{1}, {2}, {3}}}
	assert.Len(t, tbl.Head(2).Rows, 2)
	assert.Len(t, tbl.Head(10).Rows, 3)
	assert.Len(t, tbl.Head(-1).Rows, 3)
}

func TestIsCountColumn(t *testing.T) {
	for _, c := range []string{"day", "demand", "sales", "surplus"} {
		assert.True(t, simulation.IsCountColumn(c), c)
	}
	assert.False(t, simulation.IsCountColumn("net_profit"))
	assert.False(t, simulation.IsCountColumn("ending_inventory"))
}
