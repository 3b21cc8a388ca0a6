package simulation

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/jhoicas/Simulacion-api/internal/domain/entity"
)

// DefaultHistogramBins número de barras del histograma de utilidad.
const DefaultHistogramBins = 30

// Percentiles de la utilidad neta (rango más cercano).
type Percentiles struct {
	P5  float64
	P25 float64
	P50 float64
	P75 float64
	P95 float64
}

// HistogramBin intervalo [Lower, Upper) con su frecuencia.
type HistogramBin struct {
	Lower float64
	Upper float64
	Count int
}

// NewsvendorSummary métricas descriptivas de una corrida del vendedor de periódicos.
type NewsvendorSummary struct {
	MeanProfit          float64
	StdDevProfit        float64
	StockoutProbability float64
	MeanDemand          float64
	MinProfit           float64
	MaxProfit           float64
	ProfitPercentiles   Percentiles
	ProfitHistogram     []HistogramBin
}

// InventorySummary totales del horizonte simulado.
type InventorySummary struct {
	AverageDailyCost    float64
	TotalCost           float64
	TotalShortage       float64
	StockoutDays        int
	OrdersPlaced        int
	MeanEndingInventory float64
}

// SummarizeNewsvendor calcula las métricas que muestra el tablero: media, desviación,
// probabilidad de quiebre, percentiles e histograma de la utilidad neta.
func SummarizeNewsvendor(res *entity.NewsvendorResult, bins int) NewsvendorSummary {
	sum := NewsvendorSummary{
		MeanProfit:          res.MeanProfit,
		StdDevProfit:        res.StdDevProfit,
		StockoutProbability: res.StockoutProbability,
	}
	if len(res.Samples) == 0 {
		return sum
	}

	profits := make([]float64, len(res.Samples))
	demand := make([]float64, len(res.Samples))
	for i, s := range res.Samples {
		profits[i] = s.NetProfit
		demand[i] = s.Demand
	}

	sum.MeanDemand, _ = stats.Mean(demand)
	sum.MinProfit, _ = stats.Min(profits)
	sum.MaxProfit, _ = stats.Max(profits)
	sum.ProfitPercentiles = Percentiles{
		P5:  percentile(profits, 5),
		P25: percentile(profits, 25),
		P50: percentile(profits, 50),
		P75: percentile(profits, 75),
		P95: percentile(profits, 95),
	}
	sum.ProfitHistogram = Histogram(profits, bins)
	return sum
}

// SummarizeInventory agrega los registros diarios.
func SummarizeInventory(res *entity.InventoryResult) InventorySummary {
	sum := InventorySummary{AverageDailyCost: res.AverageDailyCost}
	if len(res.Days) == 0 {
		return sum
	}
	ending := make([]float64, len(res.Days))
	for i, d := range res.Days {
		sum.TotalCost += d.TotalDailyCost
		sum.TotalShortage += d.ShortageQuantity
		if d.ShortageQuantity > 0 {
			sum.StockoutDays++
		}
		if d.AmountOrdered > 0 {
			sum.OrdersPlaced++
		}
		ending[i] = d.EndingInventory
	}
	sum.MeanEndingInventory = stat.Mean(ending, nil)
	return sum
}

// Histogram reparte values en bins intervalos de igual ancho entre el mínimo y el máximo.
// Si todos los valores son iguales devuelve un único intervalo.
// NaN e Inf se descartan; si el rango desborda float64 no hay histograma.
func Histogram(values []float64, bins int) []HistogramBin {
	if bins < 1 {
		return nil
	}
	sorted := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			sorted = append(sorted, v)
		}
	}
	if len(sorted) == 0 {
		return nil
	}
	sort.Float64s(sorted)
	lo, hi := sorted[0], sorted[len(sorted)-1]
	if lo == hi {
		return []HistogramBin{{Lower: lo, Upper: hi, Count: len(sorted)}}
	}
	if math.IsInf(hi-lo, 0) {
		return nil
	}

	dividers := make([]float64, bins+1)
	floats.Span(dividers, lo, hi)
	// stat.Histogram exige x < último divisor.
	dividers[bins] = math.Nextafter(hi, math.Inf(1))

	counts := stat.Histogram(nil, dividers, sorted, nil)
	out := make([]HistogramBin, len(counts))
	for i, c := range counts {
		out[i] = HistogramBin{Lower: dividers[i], Upper: dividers[i+1], Count: int(c)}
	}
	return out
}

func percentile(values []float64, p float64) float64 {
	v, err := stats.PercentileNearestRank(values, p)
	if err != nil {
		return 0
	}
	return v
}
