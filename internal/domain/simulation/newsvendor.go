package simulation

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/jhoicas/Simulacion-api/internal/domain"
	"github.com/jhoicas/Simulacion-api/internal/domain/entity"
)

// SimulateNewsvendor genera cfg.SampleCount escenarios de demanda Normal(DemandMean, DemandStdDev)
// y calcula para cada uno ventas, excedentes, ingresos y utilidad neta.
//
// La demanda se redondea al entero más cercano (mitad a par) y se recorta a >= 0.
// El costo total es el mismo en todos los escenarios: la producción se decide antes de la demanda.
func SimulateNewsvendor(cfg entity.NewsvendorConfig, src RandomSource) (*entity.NewsvendorResult, error) {
	if err := validateNewsvendor(cfg); err != nil {
		return nil, err
	}

	n := cfg.SampleCount
	demand := make([]float64, n)
	for i := range demand {
		demand[i] = math.Max(math.RoundToEven(src.Normal(cfg.DemandMean, cfg.DemandStdDev)), 0)
		if math.IsInf(demand[i], 0) {
			return nil, fmt.Errorf("%w: la demanda simulada desborda float64; reduzca demand_mean o demand_stddev", domain.ErrInvalidInput)
		}
	}

	q := cfg.ProductionQuantity
	totalCost := cfg.FixedCost + q*cfg.VariableCost

	samples := make([]entity.DemandSample, n)
	profits := make([]float64, n)
	stockouts := 0
	for i, d := range demand {
		sales := math.Min(q, d)
		surplus := math.Max(q-d, 0)
		salesRevenue := sales * cfg.SalePrice
		salvageRevenue := surplus * cfg.SalvagePrice
		profit := salesRevenue + salvageRevenue - totalCost

		samples[i] = entity.DemandSample{
			Demand:         d,
			Sales:          sales,
			Surplus:        surplus,
			SalesRevenue:   salesRevenue,
			SalvageRevenue: salvageRevenue,
			TotalCost:      totalCost,
			NetProfit:      profit,
		}
		profits[i] = profit
		if d > q {
			stockouts++
		}
	}

	// Con una sola muestra la desviación muestral no está definida; se reporta 0.
	stdDev := 0.0
	if n > 1 {
		stdDev = stat.StdDev(profits, nil)
	}
	mean := stat.Mean(profits, nil)
	if err := finite("media/desviación de la utilidad", mean+stdDev); err != nil {
		return nil, err
	}

	return &entity.NewsvendorResult{
		Samples:             samples,
		MeanProfit:          mean,
		StdDevProfit:        stdDev,
		StockoutProbability: float64(stockouts) / float64(n),
	}, nil
}

func validateNewsvendor(cfg entity.NewsvendorConfig) error {
	if cfg.SampleCount < 1 {
		return fmt.Errorf("%w: sample_count debe ser >= 1 (recibido %d)", domain.ErrInvalidInput, cfg.SampleCount)
	}
	fields := []struct {
		name string
		v    float64
	}{
		{"production_quantity", cfg.ProductionQuantity},
		{"demand_mean", cfg.DemandMean},
		{"demand_stddev", cfg.DemandStdDev},
		{"fixed_cost", cfg.FixedCost},
		{"variable_cost", cfg.VariableCost},
		{"sale_price", cfg.SalePrice},
		{"salvage_price", cfg.SalvagePrice},
	}
	for _, f := range fields {
		if err := finite(f.name, f.v); err != nil {
			return err
		}
	}
	if cfg.DemandStdDev < 0 {
		return fmt.Errorf("%w: demand_stddev no puede ser negativa", domain.ErrInvalidInput)
	}

	// Montos derivados: cada campo puede ser finito y su producto desbordar.
	q := cfg.ProductionQuantity
	totalCost := cfg.FixedCost + q*cfg.VariableCost
	derived := []struct {
		name string
		v    float64
	}{
		{"fixed_cost + production_quantity*variable_cost", totalCost},
		{"production_quantity*sale_price", q * cfg.SalePrice},
		{"production_quantity*salvage_price", q * cfg.SalvagePrice},
		// Cota de |utilidad neta|: ventas + excedente = producción.
		{"utilidad neta", math.Abs(q*cfg.SalePrice) + math.Abs(q*cfg.SalvagePrice) + math.Abs(totalCost)},
	}
	for _, f := range derived {
		if err := finite(f.name, f.v); err != nil {
			return err
		}
	}
	return nil
}

func finite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s debe ser un número finito", domain.ErrInvalidInput, name)
	}
	return nil
}
