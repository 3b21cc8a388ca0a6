package simulation_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Simulacion-api/internal/application/dto"
	appsim "github.com/jhoicas/Simulacion-api/internal/application/simulation"
	"github.com/jhoicas/Simulacion-api/internal/domain"
	"github.com/jhoicas/Simulacion-api/internal/domain/entity"
	"github.com/jhoicas/Simulacion-api/pkg/config"
	"github.com/jhoicas/Simulacion-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// fakeExporter registra el documento recibido.
type fakeExporter struct {
	format string
	got    *appsim.Document
	err    error
}

func (f *fakeExporter) Format() string      { return f.format }
func (f *fakeExporter) ContentType() string { return "text/" + f.format }
func (f *fakeExporter) Export(_ context.Context, doc appsim.Document) ([]byte, error) {
	f.got = &doc
	if f.err != nil {
		return nil, f.err
	}
	return []byte("ok"), nil
}

func newsvendorSettings() appsim.NewsvendorSettings {
	return appsim.NewsvendorSettings{
		Defaults: entity.NewsvendorConfig{
			SampleCount:        500,
			ProductionQuantity: 60000,
			DemandMean:         60000,
			DemandStdDev:       15000,
			FixedCost:          100000,
			VariableCost:       34,
			SalePrice:          42,
			SalvagePrice:       10,
		},
		MinSampleCount:    100,
		MaxSampleCount:    2000,
		ProductionOptions: []float64{50000, 60000, 70000},
		Seed:              42,
	}
}

func inventorySettings(seed uint64) appsim.InventorySettings {
	return appsim.InventorySettings{
		Defaults: entity.InventoryConfig{
			MeanDailyDemand:     100,
			WarehouseCapacity:   700,
			OrderCost:           1000,
			ShortageCostPerUnit: 6,
			HoldingCostPerUnit:  1,
			ReviewPeriodDays:    7,
			HorizonDays:         60,
		},
		SeedFunc: func() uint64 { return seed },
	}
}

func ptr[T any](v T) *T { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Newsvendor
// ──────────────────────────────────────────────────────────────────────────────

func TestNewsvendorUseCase_Run_AplicaDefaults(t *testing.T) {
	uc := appsim.NewNewsvendorUseCase(newsvendorSettings(), logger.Nop())

	resp, err := uc.Run(context.Background(), dto.NewsvendorRequest{})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.RunID)
	assert.Equal(t, uint64(42), resp.Seed, "sin semilla se usa la fija por defecto")
	assert.Equal(t, 500, resp.Config.SampleCount)
	assert.Equal(t, 60000.0, resp.Config.ProductionQuantity)
	assert.Len(t, resp.Samples, 500)
	assert.Len(t, resp.Summary.ProfitHistogram, 30)
	assert.True(t, resp.Summary.MeanProfit.Equal(resp.Summary.MeanProfit.Round(2)))
}

func TestNewsvendorUseCase_Run_SobrescribeCampos(t *testing.T) {
	uc := appsim.NewNewsvendorUseCase(newsvendorSettings(), logger.Nop())

	resp, err := uc.Run(context.Background(), dto.NewsvendorRequest{
		SampleCount:        ptr(100),
		ProductionQuantity: ptr(60000.0),
		DemandStdDev:       ptr(0.0),
		Seed:               ptr(uint64(7)),
	})
	require.NoError(t, err)

	assert.Equal(t, uint64(7), resp.Seed)
	require.Len(t, resp.Samples, 100)
	for _, s := range resp.Samples {
		assert.Equal(t, 380_000.0, s.NetProfit)
	}
	assert.True(t, decimal.NewFromInt(380_000).Equal(resp.Summary.MeanProfit))
	assert.True(t, decimal.Zero.Equal(resp.Summary.StdDevProfit))
	assert.Equal(t, 0.0, resp.Summary.StockoutProbability)
}

func TestNewsvendorUseCase_Run_MismaSemillaMismoResultado(t *testing.T) {
	uc := appsim.NewNewsvendorUseCase(newsvendorSettings(), logger.Nop())

	r1, err := uc.Run(context.Background(), dto.NewsvendorRequest{})
	require.NoError(t, err)
	r2, err := uc.Run(context.Background(), dto.NewsvendorRequest{})
	require.NoError(t, err)

	assert.NotEqual(t, r1.RunID, r2.RunID)
	assert.Equal(t, r1.Samples, r2.Samples)
}

func TestNewsvendorUseCase_Run_FueraDeRango(t *testing.T) {
	uc := appsim.NewNewsvendorUseCase(newsvendorSettings(), logger.Nop())

	_, err := uc.Run(context.Background(), dto.NewsvendorRequest{SampleCount: ptr(50)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Run(context.Background(), dto.NewsvendorRequest{SampleCount: ptr(5000)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNewsvendorUseCase_Run_SinRango_PermiteUnaMuestra(t *testing.T) {
	settings := newsvendorSettings()
	settings.MinSampleCount = 0
	uc := appsim.NewNewsvendorUseCase(settings, logger.Nop())

	resp, err := uc.Run(context.Background(), dto.NewsvendorRequest{SampleCount: ptr(1)})
	require.NoError(t, err)
	assert.Len(t, resp.Samples, 1)

	_, err = uc.Run(context.Background(), dto.NewsvendorRequest{SampleCount: ptr(0)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el motor sigue exigiendo N >= 1")
}

func TestNewsvendorUseCase_Run_ContextoCancelado(t *testing.T) {
	uc := appsim.NewNewsvendorUseCase(newsvendorSettings(), logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.Run(ctx, dto.NewsvendorRequest{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewsvendorUseCase_Export_Documento(t *testing.T) {
	exp := &fakeExporter{format: "csv"}
	uc := appsim.NewNewsvendorUseCase(newsvendorSettings(), logger.Nop(), exp)

	file, err := uc.Export(context.Background(), dto.NewsvendorRequest{ProductionQuantity: ptr(70000.0)}, "CSV")
	require.NoError(t, err)

	assert.Equal(t, "resultados_simulacion_freddy_70000.csv", file.Filename)
	assert.Equal(t, "text/csv", file.ContentType)
	assert.Equal(t, []byte("ok"), file.Data)

	require.NotNil(t, exp.got)
	assert.Len(t, exp.got.Table.Rows, 500)
	assert.Equal(t, "demand", exp.got.Table.Columns[0])
	assert.Equal(t, 20, exp.got.PreviewRows)
	assert.NotEmpty(t, exp.got.Metrics)
	assert.Equal(t, appsim.MetricPercent, exp.got.Metrics[2].Kind)
}

func TestNewsvendorUseCase_Export_FormatoNoSoportado(t *testing.T) {
	exp := &fakeExporter{format: "csv"}
	uc := appsim.NewNewsvendorUseCase(newsvendorSettings(), logger.Nop(), exp)

	_, err := uc.Export(context.Background(), dto.NewsvendorRequest{}, "docx")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
	assert.Nil(t, exp.got, "no se debe simular ni exportar")
}

func TestNewsvendorUseCase_Export_ErrorDelExportador(t *testing.T) {
	boom := errors.New("disco lleno")
	uc := appsim.NewNewsvendorUseCase(newsvendorSettings(), logger.Nop(), &fakeExporter{format: "pdf", err: boom})

	_, err := uc.Export(context.Background(), dto.NewsvendorRequest{}, "pdf")
	assert.ErrorIs(t, err, boom)
}

// ──────────────────────────────────────────────────────────────────────────────
// Inventario
// ──────────────────────────────────────────────────────────────────────────────

func TestInventoryUseCase_Run_SemillaGeneradaSeDevuelve(t *testing.T) {
	uc := appsim.NewInventoryUseCase(inventorySettings(1234), logger.Nop())

	resp, err := uc.Run(context.Background(), dto.InventoryRequest{})
	require.NoError(t, err)

	assert.Equal(t, uint64(1234), resp.Seed)
	assert.Len(t, resp.Days, 60)
	assert.Equal(t, 1, resp.Days[0].Day)
	assert.Equal(t, 60, resp.Days[59].Day)

	// Repetir con la semilla devuelta reproduce la corrida.
	again, err := uc.Run(context.Background(), dto.InventoryRequest{Seed: ptr(resp.Seed)})
	require.NoError(t, err)
	assert.Equal(t, resp.Days, again.Days)
}

func TestInventoryUseCase_Run_Resumen(t *testing.T) {
	uc := appsim.NewInventoryUseCase(inventorySettings(5), logger.Nop())

	resp, err := uc.Run(context.Background(), dto.InventoryRequest{HorizonDays: ptr(28)})
	require.NoError(t, err)
	require.Len(t, resp.Days, 28)

	orders := 0
	for _, d := range resp.Days {
		if d.AmountOrdered > 0 {
			orders++
		}
	}
	assert.Equal(t, orders, resp.Summary.OrdersPlaced)
	assert.LessOrEqual(t, orders, 4, "solo se ordena en días 7, 14, 21 y 28")
}

func TestInventoryUseCase_Run_EntradaInvalida(t *testing.T) {
	uc := appsim.NewInventoryUseCase(inventorySettings(1), logger.Nop())

	_, err := uc.Run(context.Background(), dto.InventoryRequest{ReviewPeriodDays: ptr(0)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Run(context.Background(), dto.InventoryRequest{WarehouseCapacity: ptr(-5.0)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInventoryUseCase_Export_NombreDeArchivo(t *testing.T) {
	exp := &fakeExporter{format: "xlsx"}
	uc := appsim.NewInventoryUseCase(inventorySettings(1), logger.Nop(), exp)

	file, err := uc.Export(context.Background(), dto.InventoryRequest{}, "xlsx")
	require.NoError(t, err)
	assert.Equal(t, "resultados_inventario.xlsx", file.Filename)
	require.NotNil(t, exp.got)
	assert.Equal(t, 30, exp.got.PreviewRows)
	assert.Len(t, exp.got.Table.Rows, 60)
}

func TestBuildDefaults(t *testing.T) {
	nv := appsim.NewNewsvendorUseCase(newsvendorSettings(), logger.Nop(), &fakeExporter{format: "pdf"}, &fakeExporter{format: "csv"})
	inv := appsim.NewInventoryUseCase(inventorySettings(1), logger.Nop())

	d := appsim.BuildDefaults(nv, inv)
	assert.Equal(t, 500, d.Newsvendor.SampleCount)
	assert.Equal(t, uint64(42), d.NewsvendorSeed)
	assert.Equal(t, []float64{50000, 60000, 70000}, d.ProductionOptions)
	assert.Equal(t, dto.SampleCountRange{Min: 100, Max: 2000}, d.SampleCountRange)
	assert.Equal(t, 700.0, d.Inventory.WarehouseCapacity)
	assert.Equal(t, []string{"csv", "pdf"}, d.ExportFormats)
}

func TestSettingsFromConfig(t *testing.T) {
	nv := appsim.NewsvendorSettingsFromConfig(config.NewsvendorDefaults{
		SampleCount: 500, MinSampleCount: 100, MaxSampleCount: 2000,
		ProductionQuantity: 60000, ProductionOptions: []float64{50000, 60000},
		DemandMean: 60000, DemandStdDev: 15000, FixedCost: 100000,
		VariableCost: 34, SalePrice: 42, SalvagePrice: 10, Seed: 42,
	})
	assert.Equal(t, newsvendorSettings().Defaults, nv.Defaults)
	assert.Equal(t, uint64(42), nv.Seed)
	assert.Equal(t, 2000, nv.MaxSampleCount)

	inv := appsim.InventorySettingsFromConfig(config.InventoryDefaults{
		MeanDailyDemand: 100, WarehouseCapacity: 700, OrderCost: 1000,
		ShortageCostPerUnit: 6, HoldingCostPerUnit: 1, ReviewPeriodDays: 7, HorizonDays: 60,
	})
	assert.Equal(t, inventorySettings(0).Defaults, inv.Defaults)
	assert.Nil(t, inv.SeedFunc, "el caso de uso elige la semilla aleatoria")
}
