package inventory

import "github.com/shopspring/decimal"

// DailyRate calcula la velocidad de ventas (servicio de dominio).
// Tasa = TotalVendido / DíasVentana, como decimal sin truncar.
// Ventana no positiva o sin ventas => tasa cero (nunca división por cero).
func DailyRate(totalSold int64, windowDays int) decimal.Decimal {
	if windowDays <= 0 || totalSold <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(totalSold).Div(decimal.NewFromInt(int64(windowDays)))
}

// DaysUntilStockout proyecta los días restantes hasta quiebre de stock:
// floor(StockActual / TasaDiaria). ok=false cuando la tasa es cero: la
// proyección es indeterminada, no es un error ni son cero días.
func DaysUntilStockout(quantity int64, rate decimal.Decimal) (days int64, ok bool) {
	if rate.LessThanOrEqual(decimal.Zero) {
		return 0, false
	}
	return decimal.NewFromInt(quantity).Div(rate).Floor().IntPart(), true
}
