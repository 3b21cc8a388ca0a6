package simulation

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Simulacion-api/internal/application/dto"
	"github.com/jhoicas/Simulacion-api/internal/domain"
	"github.com/jhoicas/Simulacion-api/internal/domain/entity"
	engine "github.com/jhoicas/Simulacion-api/internal/domain/simulation"
	"github.com/jhoicas/Simulacion-api/pkg/logger"
)

// NewsvendorSettings valores por defecto y límites de los controles del simulador de producción.
type NewsvendorSettings struct {
	Defaults          entity.NewsvendorConfig
	MinSampleCount    int // 0 = sin límite inferior adicional
	MaxSampleCount    int // 0 = sin límite superior
	ProductionOptions []float64
	Seed              uint64 // semilla usada cuando la petición no trae una
	HistogramBins     int
}

// NewsvendorUseCase ejecuta corridas del modelo del vendedor de periódicos.
// No guarda estado entre corridas; es seguro para uso concurrente.
type NewsvendorUseCase struct {
	settings  NewsvendorSettings
	log       *logger.Logger
	exporters exporterSet
}

// NewNewsvendorUseCase construye el caso de uso.
func NewNewsvendorUseCase(settings NewsvendorSettings, log *logger.Logger, exporters ...Exporter) *NewsvendorUseCase {
	if settings.HistogramBins <= 0 {
		settings.HistogramBins = engine.DefaultHistogramBins
	}
	return &NewsvendorUseCase{
		settings:  settings,
		log:       log.Named("simulation"),
		exporters: newExporterSet(exporters),
	}
}

type newsvendorRun struct {
	id      string
	seed    uint64
	cfg     entity.NewsvendorConfig
	result  *entity.NewsvendorResult
	summary engine.NewsvendorSummary
}

// Run ejecuta una corrida y devuelve la tabla completa con su resumen.
func (uc *NewsvendorUseCase) Run(ctx context.Context, in dto.NewsvendorRequest) (*dto.NewsvendorRunResponse, error) {
	run, err := uc.simulate(ctx, in)
	if err != nil {
		return nil, err
	}
	return toNewsvendorResponse(run), nil
}

// Export ejecuta una corrida y la serializa en el formato pedido.
// El formato se valida antes de simular.
func (uc *NewsvendorUseCase) Export(ctx context.Context, in dto.NewsvendorRequest, format string) (*ExportFile, error) {
	exp, err := uc.exporters.get(format)
	if err != nil {
		return nil, err
	}
	run, err := uc.simulate(ctx, in)
	if err != nil {
		return nil, err
	}
	data, err := exp.Export(ctx, newsvendorDocument(run))
	if err != nil {
		return nil, fmt.Errorf("exportar %s: %w", exp.Format(), err)
	}
	return &ExportFile{
		Filename:    fmt.Sprintf("resultados_simulacion_freddy_%s.%s", strconv.FormatFloat(run.cfg.ProductionQuantity, 'f', -1, 64), exp.Format()),
		ContentType: exp.ContentType(),
		Data:        data,
	}, nil
}

// Settings devuelve los valores por defecto vigentes.
func (uc *NewsvendorUseCase) Settings() NewsvendorSettings {
	return uc.settings
}

func (uc *NewsvendorUseCase) simulate(ctx context.Context, in dto.NewsvendorRequest) (*newsvendorRun, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := uc.applyRequest(in)
	if err := uc.checkSampleRange(cfg.SampleCount); err != nil {
		uc.log.Warn().Err(err).Str("scenario", "newsvendor").Msg("simulación rechazada")
		return nil, err
	}

	seed := uc.settings.Seed
	if in.Seed != nil {
		seed = *in.Seed
	}
	run := &newsvendorRun{id: uuid.New().String(), seed: seed, cfg: cfg}

	start := time.Now()
	res, err := engine.SimulateNewsvendor(cfg, engine.NewSeededSource(seed))
	if err != nil {
		uc.log.Warn().Err(err).Str("run_id", run.id).Str("scenario", "newsvendor").Msg("simulación rechazada")
		return nil, err
	}
	run.result = res
	run.summary = engine.SummarizeNewsvendor(res, uc.settings.HistogramBins)

	uc.log.Info().
		Str("run_id", run.id).
		Str("scenario", "newsvendor").
		Uint64("seed", seed).
		Int("samples", cfg.SampleCount).
		Float64("production_quantity", cfg.ProductionQuantity).
		Float64("mean_profit", res.MeanProfit).
		Float64("stockout_probability", res.StockoutProbability).
		Dur("duration", time.Since(start)).
		Msg("simulación completada")
	return run, nil
}

func (uc *NewsvendorUseCase) applyRequest(in dto.NewsvendorRequest) entity.NewsvendorConfig {
	cfg := uc.settings.Defaults
	if in.SampleCount != nil {
		cfg.SampleCount = *in.SampleCount
	}
	setFloat(&cfg.ProductionQuantity, in.ProductionQuantity)
	setFloat(&cfg.DemandMean, in.DemandMean)
	setFloat(&cfg.DemandStdDev, in.DemandStdDev)
	setFloat(&cfg.FixedCost, in.FixedCost)
	setFloat(&cfg.VariableCost, in.VariableCost)
	setFloat(&cfg.SalePrice, in.SalePrice)
	setFloat(&cfg.SalvagePrice, in.SalvagePrice)
	return cfg
}

// checkSampleRange aplica el rango del control; el motor solo exige N >= 1.
func (uc *NewsvendorUseCase) checkSampleRange(n int) error {
	if uc.settings.MinSampleCount > 0 && n < uc.settings.MinSampleCount {
		return fmt.Errorf("%w: sample_count debe ser >= %d", domain.ErrInvalidInput, uc.settings.MinSampleCount)
	}
	if uc.settings.MaxSampleCount > 0 && n > uc.settings.MaxSampleCount {
		return fmt.Errorf("%w: sample_count debe ser <= %d", domain.ErrInvalidInput, uc.settings.MaxSampleCount)
	}
	return nil
}

func newsvendorDocument(run *newsvendorRun) Document {
	s := run.summary
	return Document{
		Title: fmt.Sprintf("Simulación Financiera - Producción Q=%s", strconv.FormatFloat(run.cfg.ProductionQuantity, 'f', -1, 64)),
		Description: fmt.Sprintf("Monte Carlo con %d escenarios de demanda Normal(%g, %g). Semilla %d.",
			run.cfg.SampleCount, run.cfg.DemandMean, run.cfg.DemandStdDev, run.seed),
		Metrics: []Metric{
			{Label: "Utilidad Promedio", Value: s.MeanProfit, Kind: MetricMoney},
			{Label: "Desviación Estándar", Value: s.StdDevProfit, Kind: MetricMoney},
			{Label: "% Quiebre de Inventario", Value: s.StockoutProbability, Kind: MetricPercent},
			{Label: "Demanda Media", Value: s.MeanDemand, Kind: MetricNumber},
			{Label: "Utilidad P5", Value: s.ProfitPercentiles.P5, Kind: MetricMoney},
			{Label: "Utilidad P95", Value: s.ProfitPercentiles.P95, Kind: MetricMoney},
		},
		Table:       engine.NewsvendorTable(run.result),
		PreviewRows: 20,
	}
}

func toNewsvendorResponse(run *newsvendorRun) *dto.NewsvendorRunResponse {
	samples := make([]dto.DemandSampleDTO, len(run.result.Samples))
	for i, s := range run.result.Samples {
		samples[i] = dto.DemandSampleDTO{
			Demand:         s.Demand,
			Sales:          s.Sales,
			Surplus:        s.Surplus,
			SalesRevenue:   s.SalesRevenue,
			SalvageRevenue: s.SalvageRevenue,
			TotalCost:      s.TotalCost,
			NetProfit:      s.NetProfit,
		}
	}
	hist := make([]dto.HistogramBinDTO, len(run.summary.ProfitHistogram))
	for i, b := range run.summary.ProfitHistogram {
		hist[i] = dto.HistogramBinDTO{Lower: b.Lower, Upper: b.Upper, Count: b.Count}
	}
	s := run.summary
	return &dto.NewsvendorRunResponse{
		RunID:  run.id,
		Seed:   run.seed,
		Config: toNewsvendorConfigDTO(run.cfg),
		Summary: dto.NewsvendorSummaryDTO{
			MeanProfit:          money(s.MeanProfit),
			StdDevProfit:        money(s.StdDevProfit),
			StockoutProbability: s.StockoutProbability,
			MeanDemand:          money(s.MeanDemand),
			MinProfit:           money(s.MinProfit),
			MaxProfit:           money(s.MaxProfit),
			ProfitPercentiles: dto.PercentilesDTO{
				P5:  money(s.ProfitPercentiles.P5),
				P25: money(s.ProfitPercentiles.P25),
				P50: money(s.ProfitPercentiles.P50),
				P75: money(s.ProfitPercentiles.P75),
				P95: money(s.ProfitPercentiles.P95),
			},
			ProfitHistogram: hist,
		},
		Samples: samples,
	}
}

func toNewsvendorConfigDTO(cfg entity.NewsvendorConfig) dto.NewsvendorConfigDTO {
	return dto.NewsvendorConfigDTO{
		SampleCount:        cfg.SampleCount,
		ProductionQuantity: cfg.ProductionQuantity,
		DemandMean:         cfg.DemandMean,
		DemandStdDev:       cfg.DemandStdDev,
		FixedCost:          cfg.FixedCost,
		VariableCost:       cfg.VariableCost,
		SalePrice:          cfg.SalePrice,
		SalvagePrice:       cfg.SalvagePrice,
	}
}
