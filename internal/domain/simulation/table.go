package simulation

import "github.com/jhoicas/Simulacion-api/internal/domain/entity"

// Columnas de exportación. El orden es parte del contrato con los consumidores del CSV.
var (
	NewsvendorColumns = []string{
		"demand",
		"sales",
		"surplus",
		"revenue_from_sales",
		"revenue_from_salvage",
		"total_cost",
		"net_profit",
	}
	InventoryColumns = []string{
		"day",
		"ending_inventory",
		"amount_ordered",
		"shortage_quantity",
		"shortage_cost",
		"order_cost",
		"holding_cost",
		"total_daily_cost",
	}
)

// countColumns columnas de conteo (días y unidades de demanda); se presentan sin decimales.
var countColumns = map[string]bool{"day": true, "demand": true, "sales": true, "surplus": true}

// IsCountColumn indica si la columna guarda conteos enteros.
func IsCountColumn(name string) bool { return countColumns[name] }

// Table vista tabular de un resultado: una fila por escenario o por día.
type Table struct {
	Columns []string
	Rows    [][]float64
}

// Head devuelve una copia con a lo sumo n filas.
func (t Table) Head(n int) Table {
	if n < 0 || n >= len(t.Rows) {
		return t
	}
	return Table{Columns: t.Columns, Rows: t.Rows[:n]}
}

// NewsvendorTable tabula los escenarios en el orden de NewsvendorColumns.
func NewsvendorTable(res *entity.NewsvendorResult) Table {
	rows := make([][]float64, len(res.Samples))
	for i, s := range res.Samples {
		rows[i] = []float64{
			s.Demand,
			s.Sales,
			s.Surplus,
			s.SalesRevenue,
			s.SalvageRevenue,
			s.TotalCost,
			s.NetProfit,
		}
	}
	return Table{Columns: NewsvendorColumns, Rows: rows}
}

// InventoryTable tabula los días en el orden de InventoryColumns.
func InventoryTable(res *entity.InventoryResult) Table {
	rows := make([][]float64, len(res.Days))
	for i, d := range res.Days {
		rows[i] = []float64{
			float64(d.Day),
			d.EndingInventory,
			d.AmountOrdered,
			d.ShortageQuantity,
			d.ShortageCost,
			d.OrderCost,
			d.HoldingCost,
			d.TotalDailyCost,
		}
	}
	return Table{Columns: InventoryColumns, Rows: rows}
}
