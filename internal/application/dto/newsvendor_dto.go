package dto

import "github.com/shopspring/decimal"

// NewsvendorRequest body para POST /api/simulations/newsvendor.
// Los campos omitidos toman el valor por defecto configurado.
type NewsvendorRequest struct {
	SampleCount        *int     `json:"sample_count,omitempty"`
	ProductionQuantity *float64 `json:"production_quantity,omitempty"`
	DemandMean         *float64 `json:"demand_mean,omitempty"`
	DemandStdDev       *float64 `json:"demand_stddev,omitempty"`
	FixedCost          *float64 `json:"fixed_cost,omitempty"`
	VariableCost       *float64 `json:"variable_cost,omitempty"`
	SalePrice          *float64 `json:"sale_price,omitempty"`
	SalvagePrice       *float64 `json:"salvage_price,omitempty"`
	Seed               *uint64  `json:"seed,omitempty"`
}

// NewsvendorConfigDTO configuración efectiva de una corrida.
type NewsvendorConfigDTO struct {
	SampleCount        int     `json:"sample_count"`
	ProductionQuantity float64 `json:"production_quantity"`
	DemandMean         float64 `json:"demand_mean"`
	DemandStdDev       float64 `json:"demand_stddev"`
	FixedCost          float64 `json:"fixed_cost"`
	VariableCost       float64 `json:"variable_cost"`
	SalePrice          float64 `json:"sale_price"`
	SalvagePrice       float64 `json:"salvage_price"`
}

// DemandSampleDTO una fila de la tabla de escenarios.
type DemandSampleDTO struct {
	Demand         float64 `json:"demand"`
	Sales          float64 `json:"sales"`
	Surplus        float64 `json:"surplus"`
	SalesRevenue   float64 `json:"revenue_from_sales"`
	SalvageRevenue float64 `json:"revenue_from_salvage"`
	TotalCost      float64 `json:"total_cost"`
	NetProfit      float64 `json:"net_profit"`
}

// PercentilesDTO percentiles de la utilidad neta.
type PercentilesDTO struct {
	P5  decimal.Decimal `json:"p5"`
	P25 decimal.Decimal `json:"p25"`
	P50 decimal.Decimal `json:"p50"`
	P75 decimal.Decimal `json:"p75"`
	P95 decimal.Decimal `json:"p95"`
}

// HistogramBinDTO barra del histograma de utilidad.
type HistogramBinDTO struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Count int     `json:"count"`
}

// NewsvendorSummaryDTO métricas clave del tablero. Montos redondeados a 2 decimales.
type NewsvendorSummaryDTO struct {
	MeanProfit          decimal.Decimal   `json:"mean_profit"`
	StdDevProfit        decimal.Decimal   `json:"stddev_profit"`
	StockoutProbability float64           `json:"stockout_probability"`
	MeanDemand          decimal.Decimal   `json:"mean_demand"`
	MinProfit           decimal.Decimal   `json:"min_profit"`
	MaxProfit           decimal.Decimal   `json:"max_profit"`
	ProfitPercentiles   PercentilesDTO    `json:"profit_percentiles"`
	ProfitHistogram     []HistogramBinDTO `json:"profit_histogram"`
}

// NewsvendorRunResponse respuesta de una corrida completa.
type NewsvendorRunResponse struct {
	RunID   string               `json:"run_id"`
	Seed    uint64               `json:"seed"`
	Config  NewsvendorConfigDTO  `json:"config"`
	Summary NewsvendorSummaryDTO `json:"summary"`
	Samples []DemandSampleDTO    `json:"samples"`
}
