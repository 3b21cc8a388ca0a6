package simulation

import (
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"

	"github.com/jhoicas/Simulacion-api/internal/domain"
	"github.com/jhoicas/Simulacion-api/internal/domain/entity"
)

// SimulateInventory recorre el horizonte día a día con la política de revisión periódica.
// El inventario inicia lleno (WarehouseCapacity). Cada día:
//  1. demanda exponencial redondeada a 2 decimales;
//  2. venta hasta agotar existencias, el resto es faltante;
//  3. se registra el inventario final (post-venta, pre-orden);
//  4. en días de revisión se ordena exactamente lo necesario para volver a capacidad;
//  5. costos: faltante por unidad, orden como tarifa fija, almacenamiento sobre el inventario de (3).
//
// Los días dependen del estado del anterior; el recorrido es estrictamente secuencial.
func SimulateInventory(cfg entity.InventoryConfig, src RandomSource) (*entity.InventoryResult, error) {
	if err := validateInventory(cfg); err != nil {
		return nil, err
	}

	days := make([]entity.InventoryDayRecord, 0, cfg.HorizonDays)
	totals := make([]float64, 0, cfg.HorizonDays)
	onHand := cfg.WarehouseCapacity

	for day := 1; day <= cfg.HorizonDays; day++ {
		demand := round2(src.Exponential(cfg.MeanDailyDemand))

		shortage := 0.0
		if demand > onHand {
			shortage = demand - onHand
			onHand = 0
		} else {
			onHand -= demand
		}
		ending := onHand

		ordered := 0.0
		if day%cfg.ReviewPeriodDays == 0 {
			ordered = cfg.WarehouseCapacity - onHand
			onHand = cfg.WarehouseCapacity
		}

		rec := entity.InventoryDayRecord{
			Day:              day,
			EndingInventory:  ending,
			AmountOrdered:    ordered,
			ShortageQuantity: shortage,
			ShortageCost:     shortage * cfg.ShortageCostPerUnit,
			HoldingCost:      ending * cfg.HoldingCostPerUnit,
		}
		if ordered > 0 {
			rec.OrderCost = cfg.OrderCost
		}
		rec.TotalDailyCost = rec.ShortageCost + rec.OrderCost + rec.HoldingCost
		if err := finite(fmt.Sprintf("costo total del día %d", day), rec.TotalDailyCost); err != nil {
			return nil, err
		}

		days = append(days, rec)
		totals = append(totals, rec.TotalDailyCost)
	}

	avg := stat.Mean(totals, nil)
	if err := finite("costo promedio diario", avg); err != nil {
		return nil, err
	}

	return &entity.InventoryResult{
		Days:             days,
		AverageDailyCost: avg,
	}, nil
}

// round2 redondea a 2 decimales sobre el valor binario exacto de x, mitad a par.
// 2.675 se almacena como 2.67499999… y queda en 2.67; los empates exactos (0.125) van al par.
func round2(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	return exactDecimal(x).RoundBank(2).InexactFloat64()
}

// exactDecimal expande x = m·2^e sin pérdida: con e < 0, x = m·5^-e / 10^-e.
func exactDecimal(x float64) decimal.Decimal {
	frac, exp := math.Frexp(x)
	m := big.NewInt(int64(frac * (1 << 53)))
	e := exp - 53
	if e >= 0 {
		return decimal.NewFromBigInt(m.Lsh(m, uint(e)), 0)
	}
	pow := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(-e)), nil)
	return decimal.NewFromBigInt(m.Mul(m, pow), int32(e))
}

func validateInventory(cfg entity.InventoryConfig) error {
	if cfg.HorizonDays < 1 {
		return fmt.Errorf("%w: horizon_days debe ser >= 1 (recibido %d)", domain.ErrInvalidInput, cfg.HorizonDays)
	}
	if cfg.ReviewPeriodDays < 1 {
		return fmt.Errorf("%w: review_period_days debe ser >= 1 (recibido %d)", domain.ErrInvalidInput, cfg.ReviewPeriodDays)
	}
	fields := []struct {
		name string
		v    float64
	}{
		{"mean_daily_demand", cfg.MeanDailyDemand},
		{"warehouse_capacity", cfg.WarehouseCapacity},
		{"order_cost", cfg.OrderCost},
		{"shortage_cost_per_unit", cfg.ShortageCostPerUnit},
		{"holding_cost_per_unit", cfg.HoldingCostPerUnit},
	}
	for _, f := range fields {
		if err := finite(f.name, f.v); err != nil {
			return err
		}
	}
	if cfg.WarehouseCapacity < 0 {
		return fmt.Errorf("%w: warehouse_capacity no puede ser negativa", domain.ErrInvalidInput)
	}
	if cfg.MeanDailyDemand < 0 {
		return fmt.Errorf("%w: mean_daily_demand no puede ser negativa", domain.ErrInvalidInput)
	}

	// Costos derivados: cada campo puede ser finito y su producto desbordar.
	holding := cfg.WarehouseCapacity * cfg.HoldingCostPerUnit
	derived := []struct {
		name string
		v    float64
	}{
		{"warehouse_capacity*holding_cost_per_unit", holding},
		{"warehouse_capacity*shortage_cost_per_unit", cfg.WarehouseCapacity * cfg.ShortageCostPerUnit},
		{"mean_daily_demand*shortage_cost_per_unit", cfg.MeanDailyDemand * cfg.ShortageCostPerUnit},
		{"costo diario máximo", math.Abs(holding) + math.Abs(cfg.OrderCost)},
	}
	for _, f := range derived {
		if err := finite(f.name, f.v); err != nil {
			return err
		}
	}
	return nil
}
