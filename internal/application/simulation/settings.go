package simulation

import (
	"github.com/jhoicas/Simulacion-api/internal/domain/entity"
	"github.com/jhoicas/Simulacion-api/pkg/config"
)

// NewsvendorSettingsFromConfig traduce la sección NEWSVENDOR_* de la configuración.
func NewsvendorSettingsFromConfig(c config.NewsvendorDefaults) NewsvendorSettings {
	return NewsvendorSettings{
		Defaults: entity.NewsvendorConfig{
			SampleCount:        c.SampleCount,
			ProductionQuantity: c.ProductionQuantity,
			DemandMean:         c.DemandMean,
			DemandStdDev:       c.DemandStdDev,
			FixedCost:          c.FixedCost,
			VariableCost:       c.VariableCost,
			SalePrice:          c.SalePrice,
			SalvagePrice:       c.SalvagePrice,
		},
		MinSampleCount:    c.MinSampleCount,
		MaxSampleCount:    c.MaxSampleCount,
		ProductionOptions: c.ProductionOptions,
		Seed:              c.Seed,
	}
}

// InventorySettingsFromConfig traduce la sección INVENTORY_* de la configuración.
// La semilla queda aleatoria por corrida.
func InventorySettingsFromConfig(c config.InventoryDefaults) InventorySettings {
	return InventorySettings{
		Defaults: entity.InventoryConfig{
			MeanDailyDemand:     c.MeanDailyDemand,
			WarehouseCapacity:   c.WarehouseCapacity,
			OrderCost:           c.OrderCost,
			ShortageCostPerUnit: c.ShortageCostPerUnit,
			HoldingCostPerUnit:  c.HoldingCostPerUnit,
			ReviewPeriodDays:    c.ReviewPeriodDays,
			HorizonDays:         c.HorizonDays,
		},
	}
}
