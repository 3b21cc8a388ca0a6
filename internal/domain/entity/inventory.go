package entity

// InventoryConfig parámetros de la política de revisión periódica de un único material.
type InventoryConfig struct {
	MeanDailyDemand     float64 // media de la demanda exponencial diaria
	WarehouseCapacity   float64 // nivel al que se repone en cada revisión; inventario inicial
	OrderCost           float64 // costo fijo por orden emitida (no por unidad)
	ShortageCostPerUnit float64
	HoldingCostPerUnit  float64
	ReviewPeriodDays    int
	HorizonDays         int
}

// InventoryDayRecord resultado de un día simulado.
// EndingInventory es el nivel después de vender y antes de recibir la orden del día.
type InventoryDayRecord struct {
	Day              int // 1..HorizonDays
	EndingInventory  float64
	AmountOrdered    float64
	ShortageQuantity float64
	ShortageCost     float64
	OrderCost        float64
	HoldingCost      float64
	TotalDailyCost   float64
}

// InventoryResult secuencia ordenada de días (len == HorizonDays) y costo promedio diario.
type InventoryResult struct {
	Days             []InventoryDayRecord
	AverageDailyCost float64
}
