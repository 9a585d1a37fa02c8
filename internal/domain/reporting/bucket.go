// Package reporting contiene el motor de agregación por períodos: particiona
// registros (ventas o compras de stock) en buckets de tiempo alineados al
// período pedido, con buckets vacíos en cero para que el consumidor del
// reporte (gráficas) reciba siempre la serie completa.
package reporting

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cafeteria-api/internal/domain"
)

// Period período de agregación soportado.
type Period string

const (
	PeriodDaily   Period = "daily"   // 24 buckets de una hora del día de referencia
	PeriodWeekly  Period = "weekly"  // 7 buckets de un día, semana alineada a domingo
	PeriodMonthly Period = "monthly" // un bucket por día del mes calendario
)

// ParsePeriod valida el string del query param. ErrInvalidInput si no es
// daily, weekly ni monthly.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
		return Period(s), nil
	}
	return "", domain.ErrInvalidInput
}

// Record un registro con fecha y montos a agregar. Para compras de stock
// Revenue es cero y Cost el costo total de la compra.
type Record struct {
	Date    time.Time
	Revenue decimal.Decimal
	Cost    decimal.Decimal
}

// Bucket un intervalo del reporte con las sumas del período.
type Bucket struct {
	Start   time.Time
	Revenue decimal.Decimal
	Cost    decimal.Decimal
	Profit  decimal.Decimal
}

// Range devuelve el rango [start, end) que cubre el período que contiene la
// fecha de referencia. La semana se alinea a domingo.
func Range(p Period, ref time.Time) (start, end time.Time, err error) {
	loc := ref.Location()
	switch p {
	case PeriodDaily:
		start = time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, loc)
		end = start.AddDate(0, 0, 1)
	case PeriodWeekly:
		day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, loc)
		start = day.AddDate(0, 0, -int(day.Weekday())) // retrocede hasta el domingo
		end = start.AddDate(0, 0, 7)
	case PeriodMonthly:
		start = time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, loc)
		end = start.AddDate(0, 1, 0)
	default:
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	return start, end, nil
}

// Aggregate particiona los registros en buckets cronológicos del período que
// contiene ref. Registros fuera del rango se excluyen; los buckets sin
// registros quedan en cero. Nunca devuelve una secuencia vacía para un
// período válido.
func Aggregate(records []Record, p Period, ref time.Time) ([]Bucket, error) {
	start, end, err := Range(p, ref)
	if err != nil {
		return nil, err
	}

	var step func(time.Time) time.Time
	switch p {
	case PeriodDaily:
		step = func(t time.Time) time.Time { return t.Add(time.Hour) }
	default:
		step = func(t time.Time) time.Time { return t.AddDate(0, 0, 1) }
	}

	var buckets []Bucket
	for cursor := start; cursor.Before(end); cursor = step(cursor) {
		buckets = append(buckets, Bucket{
			Start:   cursor,
			Revenue: decimal.Zero,
			Cost:    decimal.Zero,
			Profit:  decimal.Zero,
		})
	}

	for _, rec := range records {
		if rec.Date.Before(start) || !rec.Date.Before(end) {
			continue
		}
		i := bucketIndex(p, start, rec.Date)
		if i < 0 || i >= len(buckets) {
			continue
		}
		buckets[i].Revenue = buckets[i].Revenue.Add(rec.Revenue)
		buckets[i].Cost = buckets[i].Cost.Add(rec.Cost)
		buckets[i].Profit = buckets[i].Profit.Add(rec.Revenue.Sub(rec.Cost))
	}
	return buckets, nil
}

// bucketIndex posición del registro dentro de la serie de buckets.
// Para buckets de un día se cuentan días calendario con AddDate, igual que al
// generar la serie; dividir la duración entre 24h corre los registros un día
// cuando el rango cruza un cambio de horario de verano.
func bucketIndex(p Period, start, date time.Time) int {
	if p == PeriodDaily {
		return int(date.Sub(start) / time.Hour)
	}
	local := date.In(start.Location())
	day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, start.Location())
	i := 0
	for cursor := start.AddDate(0, 0, 1); !cursor.After(day); cursor = cursor.AddDate(0, 0, 1) {
		i++
	}
	return i
}

// Totals suma revenue, cost y profit de una serie de buckets.
func Totals(buckets []Bucket) (revenue, cost, profit decimal.Decimal) {
	revenue, cost, profit = decimal.Zero, decimal.Zero, decimal.Zero
	for _, b := range buckets {
		revenue = revenue.Add(b.Revenue)
		cost = cost.Add(b.Cost)
		profit = profit.Add(b.Profit)
	}
	return revenue, cost, profit
}
