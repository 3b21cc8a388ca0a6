package simulation

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Simulacion-api/internal/application/dto"
)

// BuildDefaults arma la respuesta de GET /api/simulations/defaults con los controles de ambos simuladores.
func BuildDefaults(nv *NewsvendorUseCase, inv *InventoryUseCase) dto.DefaultsResponse {
	ns := nv.Settings()
	options := ns.ProductionOptions
	if options == nil {
		options = []float64{}
	}
	return dto.DefaultsResponse{
		Newsvendor:        toNewsvendorConfigDTO(ns.Defaults),
		NewsvendorSeed:    ns.Seed,
		ProductionOptions: options,
		SampleCountRange:  dto.SampleCountRange{Min: ns.MinSampleCount, Max: ns.MaxSampleCount},
		Inventory:         toInventoryConfigDTO(inv.Settings().Defaults),
		ExportFormats:     nv.exporters.formats(),
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

// money redondea un monto a 2 decimales para las respuestas JSON.
func money(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v).Round(2)
}
