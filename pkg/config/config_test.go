package config_test

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Simulacion-api/pkg/config"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.FromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Empty(t, cfg.JWT.Secret, "sin secret la API queda pública")

	nv := cfg.Newsvendor
	assert.Equal(t, 500, nv.SampleCount)
	assert.Equal(t, 100, nv.MinSampleCount)
	assert.Equal(t, 2000, nv.MaxSampleCount)
	assert.Equal(t, 60000.0, nv.ProductionQuantity)
	assert.Equal(t, []float64{50000, 60000, 70000}, nv.ProductionOptions)
	assert.Equal(t, 60000.0, nv.DemandMean)
	assert.Equal(t, 15000.0, nv.DemandStdDev)
	assert.Equal(t, 100000.0, nv.FixedCost)
	assert.Equal(t, 34.0, nv.VariableCost)
	assert.Equal(t, 42.0, nv.SalePrice)
	assert.Equal(t, 10.0, nv.SalvagePrice)
	assert.Equal(t, uint64(42), nv.Seed)

	inv := cfg.Inventory
	assert.Equal(t, 100.0, inv.MeanDailyDemand)
	assert.Equal(t, 700.0, inv.WarehouseCapacity)
	assert.Equal(t, 1000.0, inv.OrderCost)
	assert.Equal(t, 6.0, inv.ShortageCostPerUnit)
	assert.Equal(t, 1.0, inv.HoldingCostPerUnit)
	assert.Equal(t, 7, inv.ReviewPeriodDays)
	assert.Equal(t, 60, inv.HorizonDays)
}

// Las variables de entorno llegan como string.
func TestFromViper_SobrescrituraDesdeStrings(t *testing.T) {
	v := viper.New()
	v.Set("HTTP_PORT", "9090")
	v.Set("NEWSVENDOR_SAMPLE_COUNT", "1200")
	v.Set("NEWSVENDOR_DEMAND_STDDEV", "12500.5")
	v.Set("NEWSVENDOR_PRODUCTION_OPTIONS", "40000, 55000")
	v.Set("INVENTORY_HORIZON_DAYS", 90)

	cfg, err := config.FromViper(v)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 1200, cfg.Newsvendor.SampleCount)
	assert.Equal(t, 12500.5, cfg.Newsvendor.DemandStdDev)
	assert.Equal(t, []float64{40000, 55000}, cfg.Newsvendor.ProductionOptions)
	assert.Equal(t, 90, cfg.Inventory.HorizonDays)
}

func TestFromViper_OpcionesInvalidas(t *testing.T) {
	v := viper.New()
	v.Set("NEWSVENDOR_PRODUCTION_OPTIONS", "50000,abc")

	_, err := config.FromViper(v)
	assert.Error(t, err)
}

func TestFromViper_RangoMuestrasInvertido(t *testing.T) {
	v := viper.New()
	v.Set("NEWSVENDOR_MIN_SAMPLE_COUNT", "3000")

	_, err := config.FromViper(v)
	assert.Error(t, err)
}
