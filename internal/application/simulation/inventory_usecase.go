package simulation

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Simulacion-api/internal/application/dto"
	"github.com/jhoicas/Simulacion-api/internal/domain/entity"
	engine "github.com/jhoicas/Simulacion-api/internal/domain/simulation"
	"github.com/jhoicas/Simulacion-api/pkg/logger"
)

// InventorySettings valores por defecto del simulador de inventario.
type InventorySettings struct {
	Defaults entity.InventoryConfig
	SeedFunc func() uint64 // semilla para peticiones sin semilla; nil = aleatoria
}

// InventoryUseCase ejecuta corridas de la política de revisión periódica.
type InventoryUseCase struct {
	settings  InventorySettings
	log       *logger.Logger
	exporters exporterSet
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(settings InventorySettings, log *logger.Logger, exporters ...Exporter) *InventoryUseCase {
	if settings.SeedFunc == nil {
		settings.SeedFunc = rand.Uint64
	}
	return &InventoryUseCase{
		settings:  settings,
		log:       log.Named("simulation"),
		exporters: newExporterSet(exporters),
	}
}

type inventoryRun struct {
	id      string
	seed    uint64
	cfg     entity.InventoryConfig
	result  *entity.InventoryResult
	summary engine.InventorySummary
}

// Run ejecuta una corrida y devuelve los registros diarios con su resumen.
func (uc *InventoryUseCase) Run(ctx context.Context, in dto.InventoryRequest) (*dto.InventoryRunResponse, error) {
	run, err := uc.simulate(ctx, in)
	if err != nil {
		return nil, err
	}
	return toInventoryResponse(run), nil
}

// Export ejecuta una corrida y la serializa en el formato pedido.
func (uc *InventoryUseCase) Export(ctx context.Context, in dto.InventoryRequest, format string) (*ExportFile, error) {
	exp, err := uc.exporters.get(format)
	if err != nil {
		return nil, err
	}
	run, err := uc.simulate(ctx, in)
	if err != nil {
		return nil, err
	}
	data, err := exp.Export(ctx, inventoryDocument(run))
	if err != nil {
		return nil, fmt.Errorf("exportar %s: %w", exp.Format(), err)
	}
	return &ExportFile{
		Filename:    "resultados_inventario." + exp.Format(),
		ContentType: exp.ContentType(),
		Data:        data,
	}, nil
}

// Settings devuelve los valores por defecto vigentes.
func (uc *InventoryUseCase) Settings() InventorySettings {
	return uc.settings
}

func (uc *InventoryUseCase) simulate(ctx context.Context, in dto.InventoryRequest) (*inventoryRun, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := uc.settings.Defaults
	setFloat(&cfg.MeanDailyDemand, in.MeanDailyDemand)
	setFloat(&cfg.WarehouseCapacity, in.WarehouseCapacity)
	setFloat(&cfg.OrderCost, in.OrderCost)
	setFloat(&cfg.ShortageCostPerUnit, in.ShortageCostPerUnit)
	setFloat(&cfg.HoldingCostPerUnit, in.HoldingCostPerUnit)
	setInt(&cfg.ReviewPeriodDays, in.ReviewPeriodDays)
	setInt(&cfg.HorizonDays, in.HorizonDays)

	var seed uint64
	if in.Seed != nil {
		seed = *in.Seed
	} else {
		seed = uc.settings.SeedFunc()
	}
	run := &inventoryRun{id: uuid.New().String(), seed: seed, cfg: cfg}

	start := time.Now()
	res, err := engine.SimulateInventory(cfg, engine.NewSeededSource(seed))
	if err != nil {
		uc.log.Warn().Err(err).Str("run_id", run.id).Str("scenario", "inventory").Msg("simulación rechazada")
		return nil, err
	}
	run.result = res
	run.summary = engine.SummarizeInventory(res)

	uc.log.Info().
		Str("run_id", run.id).
		Str("scenario", "inventory").
		Uint64("seed", seed).
		Int("horizon_days", cfg.HorizonDays).
		Int("orders_placed", run.summary.OrdersPlaced).
		Float64("average_daily_cost", res.AverageDailyCost).
		Dur("duration", time.Since(start)).
		Msg("simulación completada")
	return run, nil
}

func inventoryDocument(run *inventoryRun) Document {
	s := run.summary
	return Document{
		Title: "Simulación de Inventario - Centro de Distribución",
		Description: fmt.Sprintf("Demanda exponencial diaria (media %g), revisión cada %d días, horizonte de %d días. Semilla %d.",
			run.cfg.MeanDailyDemand, run.cfg.ReviewPeriodDays, run.cfg.HorizonDays, run.seed),
		Metrics: []Metric{
			{Label: "Costo Promedio Diario", Value: s.AverageDailyCost, Kind: MetricMoney},
			{Label: "Costo Total", Value: s.TotalCost, Kind: MetricMoney},
			{Label: "Faltante Total", Value: s.TotalShortage, Kind: MetricNumber},
			{Label: "Días con Faltante", Value: float64(s.StockoutDays), Kind: MetricNumber},
			{Label: "Órdenes Emitidas", Value: float64(s.OrdersPlaced), Kind: MetricNumber},
			{Label: "Inventario Final Promedio", Value: s.MeanEndingInventory, Kind: MetricNumber},
		},
		Table:       engine.InventoryTable(run.result),
		PreviewRows: 30,
	}
}

func toInventoryResponse(run *inventoryRun) *dto.InventoryRunResponse {
	days := make([]dto.InventoryDayDTO, len(run.result.Days))
	for i, d := range run.result.Days {
		days[i] = dto.InventoryDayDTO{
			Day:              d.Day,
			EndingInventory:  d.EndingInventory,
			AmountOrdered:    d.AmountOrdered,
			ShortageQuantity: d.ShortageQuantity,
			ShortageCost:     d.ShortageCost,
			OrderCost:        d.OrderCost,
			HoldingCost:      d.HoldingCost,
			TotalDailyCost:   d.TotalDailyCost,
		}
	}
	s := run.summary
	return &dto.InventoryRunResponse{
		RunID:  run.id,
		Seed:   run.seed,
		Config: toInventoryConfigDTO(run.cfg),
		Summary: dto.InventorySummaryDTO{
			AverageDailyCost:    money(s.AverageDailyCost),
			TotalCost:           money(s.TotalCost),
			TotalShortage:       money(s.TotalShortage),
			StockoutDays:        s.StockoutDays,
			OrdersPlaced:        s.OrdersPlaced,
			MeanEndingInventory: money(s.MeanEndingInventory),
		},
		Days: days,
	}
}

func toInventoryConfigDTO(cfg entity.InventoryConfig) dto.InventoryConfigDTO {
	return dto.InventoryConfigDTO{
		MeanDailyDemand:     cfg.MeanDailyDemand,
		WarehouseCapacity:   cfg.WarehouseCapacity,
		OrderCost:           cfg.OrderCost,
		ShortageCostPerUnit: cfg.ShortageCostPerUnit,
		HoldingCostPerUnit:  cfg.HoldingCostPerUnit,
		ReviewPeriodDays:    cfg.ReviewPeriodDays,
		HorizonDays:         cfg.HorizonDays,
	}
}
