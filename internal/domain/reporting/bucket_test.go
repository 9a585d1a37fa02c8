package reporting_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/cafeteria-api/internal/domain"
	"github.com/tu-usuario/cafeteria-api/internal/domain/reporting"
)

func record(date time.Time, revenue, cost float64) reporting.Record {
	return reporting.Record{
		Date:    date,
		Revenue: decimal.NewFromFloat(revenue),
		Cost:    decimal.NewFromFloat(cost),
	}
}

func TestParsePeriod(t *testing.T) {
	for _, valid := range []string{"daily", "weekly", "monthly"} {
		p, err := reporting.ParsePeriod(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, string(p))
	}
	_, err := reporting.ParsePeriod("yearly")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRange_Semanal_AlineadaADomingo(t *testing.T) {
	// 2025-06-18 es miércoles; la semana arranca el domingo 15.
	ref := time.Date(2025, 6, 18, 14, 30, 0, 0, time.UTC)
	start, end, err := reporting.Range(reporting.PeriodWeekly, ref)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 6, 22, 0, 0, 0, 0, time.UTC), end)

	// Un domingo es el inicio de su propia semana.
	domingo := time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)
	start, _, err = reporting.Range(reporting.PeriodWeekly, domingo)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), start)
}

func TestAggregate_Diario_24BucketsVacios(t *testing.T) {
	ref := time.Date(2025, 6, 18, 10, 0, 0, 0, time.UTC)
	buckets, err := reporting.Aggregate(nil, reporting.PeriodDaily, ref)
	require.NoError(t, err)

	require.Len(t, buckets, 24, "el período diario siempre produce 24 buckets de una hora")
	for _, b := range buckets {
		assert.True(t, b.Revenue.IsZero())
		assert.True(t, b.Cost.IsZero())
		assert.True(t, b.Profit.IsZero())
	}
}

func TestAggregate_Semanal_7Buckets(t *testing.T) {
	ref := time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC)
	buckets, err := reporting.Aggregate(nil, reporting.PeriodWeekly, ref)
	require.NoError(t, err)
	assert.Len(t, buckets, 7)
}

func TestAggregate_Mensual_UnBucketPorDia(t *testing.T) {
	// Junio tiene 30 días; febrero 2024 (bisiesto) tiene 29.
	junio := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	buckets, err := reporting.Aggregate(nil, reporting.PeriodMonthly, junio)
	require.NoError(t, err)
	assert.Len(t, buckets, 30)

	febrero := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	buckets, err = reporting.Aggregate(nil, reporting.PeriodMonthly, febrero)
	require.NoError(t, err)
	assert.Len(t, buckets, 29)
}

func TestAggregate_AsignaAlBucketCorrecto(t *testing.T) {
	ref := time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC)
	records := []reporting.Record{
		record(time.Date(2025, 6, 18, 9, 15, 0, 0, time.UTC), 100, 40),
		record(time.Date(2025, 6, 18, 9, 45, 0, 0, time.UTC), 50, 20),
		record(time.Date(2025, 6, 18, 17, 5, 0, 0, time.UTC), 80, 30),
	}

	buckets, err := reporting.Aggregate(records, reporting.PeriodDaily, ref)
	require.NoError(t, err)
	require.Len(t, buckets, 24)

	assert.True(t, buckets[9].Revenue.Equal(decimal.NewFromInt(150)), "las 9:15 y 9:45 caen en el bucket de las 9")
	assert.True(t, buckets[9].Cost.Equal(decimal.NewFromInt(60)))
	assert.True(t, buckets[9].Profit.Equal(decimal.NewFromInt(90)))
	assert.True(t, buckets[17].Revenue.Equal(decimal.NewFromInt(80)))
	assert.True(t, buckets[10].Revenue.IsZero(), "los buckets sin registros quedan en cero")
}

func TestAggregate_ExcluyeFueraDeRango(t *testing.T) {
	ref := time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC)
	records := []reporting.Record{
		record(time.Date(2025, 6, 17, 23, 59, 0, 0, time.UTC), 999, 0), // día anterior
		record(time.Date(2025, 6, 19, 0, 0, 0, 0, time.UTC), 999, 0),   // día siguiente (end es exclusivo)
		record(time.Date(2025, 6, 18, 12, 0, 0, 0, time.UTC), 10, 5),
	}

	buckets, err := reporting.Aggregate(records, reporting.PeriodDaily, ref)
	require.NoError(t, err)

	revenue, cost, profit := reporting.Totals(buckets)
	assert.True(t, revenue.Equal(decimal.NewFromInt(10)), "solo cuenta el registro dentro del día")
	assert.True(t, cost.Equal(decimal.NewFromInt(5)))
	assert.True(t, profit.Equal(decimal.NewFromInt(5)))
}

func TestAggregate_OrdenCronologico(t *testing.T) {
	ref := time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC)
	buckets, err := reporting.Aggregate(nil, reporting.PeriodMonthly, ref)
	require.NoError(t, err)

	for i := 1; i < len(buckets); i++ {
		assert.True(t, buckets[i-1].Start.Before(buckets[i].Start), "los buckets deben venir en orden cronológico")
	}
}

func TestTotals_SumaTodosLosBuckets(t *testing.T) {
	ref := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC) // domingo
	records := []reporting.Record{
		record(time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC), 100, 30),
		record(time.Date(2025, 6, 17, 12, 0, 0, 0, time.UTC), 200, 70),
		record(time.Date(2025, 6, 21, 20, 0, 0, 0, time.UTC), 50, 10),
	}

	buckets, err := reporting.Aggregate(records, reporting.PeriodWeekly, ref)
	require.NoError(t, err)

	revenue, cost, profit := reporting.Totals(buckets)
	assert.True(t, revenue.Equal(decimal.NewFromInt(350)))
	assert.True(t, cost.Equal(decimal.NewFromInt(110)))
	assert.True(t, profit.Equal(decimal.NewFromInt(240)))
}

func TestAggregate_CambioDeHorario_AsignaAlDiaCalendario(t *testing.T) {
	// America/New_York adelanta el reloj el 8 de marzo de 2026; los días
	// posteriores tienen buckets correctos aunque el rango cruce el cambio.
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	ref := time.Date(2026, 3, 15, 12, 0, 0, 0, loc)
	records := []reporting.Record{
		record(time.Date(2026, 3, 10, 0, 30, 0, 0, loc), 100, 40),
	}

	buckets, err := reporting.Aggregate(records, reporting.PeriodMonthly, ref)
	require.NoError(t, err)
	require.Len(t, buckets, 31)

	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, loc), buckets[9].Start)
	assert.True(t, buckets[9].Revenue.Equal(decimal.NewFromInt(100)), "la venta del 10 de marzo va en el bucket del 10 de marzo")
	assert.True(t, buckets[8].Revenue.IsZero(), "el bucket del 9 de marzo queda en cero")

	// Semana del 8 al 14: la venta del martes 10 cae en el tercer bucket.
	semana, err := reporting.Aggregate(records, reporting.PeriodWeekly, time.Date(2026, 3, 11, 9, 0, 0, 0, loc))
	require.NoError(t, err)
	require.Len(t, semana, 7)
	assert.True(t, semana[2].Revenue.Equal(decimal.NewFromInt(100)))
	assert.True(t, semana[1].Revenue.IsZero())
}
