package dto

import "github.com/shopspring/decimal"

// InventoryRequest body para POST /api/simulations/inventory.
// Sin semilla se elige una nueva en cada corrida y se devuelve en la respuesta.
type InventoryRequest struct {
	MeanDailyDemand     *float64 `json:"mean_daily_demand,omitempty"`
	WarehouseCapacity   *float64 `json:"warehouse_capacity,omitempty"`
	OrderCost           *float64 `json:"order_cost,omitempty"`
	ShortageCostPerUnit *float64 `json:"shortage_cost_per_unit,omitempty"`
	HoldingCostPerUnit  *float64 `json:"holding_cost_per_unit,omitempty"`
	ReviewPeriodDays    *int     `json:"review_period_days,omitempty"`
	HorizonDays         *int     `json:"horizon_days,omitempty"`
	Seed                *uint64  `json:"seed,omitempty"`
}

// InventoryConfigDTO configuración efectiva de una corrida.
type InventoryConfigDTO struct {
	MeanDailyDemand     float64 `json:"mean_daily_demand"`
	WarehouseCapacity   float64 `json:"warehouse_capacity"`
	OrderCost           float64 `json:"order_cost"`
	ShortageCostPerUnit float64 `json:"shortage_cost_per_unit"`
	HoldingCostPerUnit  float64 `json:"holding_cost_per_unit"`
	ReviewPeriodDays    int     `json:"review_period_days"`
	HorizonDays         int     `json:"horizon_days"`
}

// InventoryDayDTO una fila de la tabla diaria.
type InventoryDayDTO struct {
	Day              int     `json:"day"`
	EndingInventory  float64 `json:"ending_inventory"`
	AmountOrdered    float64 `json:"amount_ordered"`
	ShortageQuantity float64 `json:"shortage_quantity"`
	ShortageCost     float64 `json:"shortage_cost"`
	OrderCost        float64 `json:"order_cost"`
	HoldingCost      float64 `json:"holding_cost"`
	TotalDailyCost   float64 `json:"total_daily_cost"`
}

// InventorySummaryDTO totales del horizonte. Montos redondeados a 2 decimales.
type InventorySummaryDTO struct {
	AverageDailyCost    decimal.Decimal `json:"average_daily_cost"`
	TotalCost           decimal.Decimal `json:"total_cost"`
	TotalShortage       decimal.Decimal `json:"total_shortage"`
	StockoutDays        int             `json:"stockout_days"`
	OrdersPlaced        int             `json:"orders_placed"`
	MeanEndingInventory decimal.Decimal `json:"mean_ending_inventory"`
}

// InventoryRunResponse respuesta de una corrida completa.
type InventoryRunResponse struct {
	RunID   string              `json:"run_id"`
	Seed    uint64              `json:"seed"`
	Config  InventoryConfigDTO  `json:"config"`
	Summary InventorySummaryDTO `json:"summary"`
	Days    []InventoryDayDTO   `json:"days"`
}
