package entity

// NewsvendorConfig parámetros de una corrida del modelo del vendedor de periódicos
// (decisión de producción de un solo período). Inmutable durante la corrida.
type NewsvendorConfig struct {
	SampleCount        int     // número de escenarios de demanda (N)
	ProductionQuantity float64 // cantidad producida (Q), decidida antes de conocer la demanda
	DemandMean         float64
	DemandStdDev       float64
	FixedCost          float64
	VariableCost       float64 // costo unitario de producción
	SalePrice          float64
	SalvagePrice       float64 // precio de liquidación de excedentes
}

// DemandSample un escenario simulado. Todos los campos derivados son funciones puras
// de Demand y de la configuración.
type DemandSample struct {
	Demand         float64 // entero >= 0
	Sales          float64 // min(Q, Demand)
	Surplus        float64 // max(Q - Demand, 0)
	SalesRevenue   float64
	SalvageRevenue float64
	TotalCost      float64 // igual en todos los escenarios: FixedCost + Q*VariableCost
	NetProfit      float64
}

// NewsvendorResult resultado completo de una corrida: los N escenarios en orden de
// generación y los agregados sobre la utilidad neta.
type NewsvendorResult struct {
	Samples             []DemandSample
	MeanProfit          float64
	StdDevProfit        float64 // desviación estándar muestral (N-1)
	StockoutProbability float64 // fracción empírica de escenarios con Demand > Q
}
