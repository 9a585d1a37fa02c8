// Package reports contiene los casos de uso de reportes de negocio: ventas y
// gastos agregados por período, resumen financiero acumulado y el resumen del
// dashboard.
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cafeteria-api/internal/application/dto"
	"github.com/tu-usuario/cafeteria-api/internal/domain/reporting"
	"github.com/tu-usuario/cafeteria-api/internal/domain/repository"
)

const dashboardTopProducts = 5 // productos en el widget del dashboard

// IngredientLister lo implementa el caso de uso de ingredientes; el dashboard
// solo necesita las alertas de stock bajo.
type IngredientLister interface {
	ListLowStock() ([]*dto.IngredientResponse, error)
}

// ReportUseCase genera los reportes por período y el resumen financiero.
type ReportUseCase struct {
	reportRepo      repository.ReportRepository
	ingredients     IngredientLister
	startingBalance decimal.Decimal
}

// NewReportUseCase construye el caso de uso. startingBalance es el saldo
// inicial de caja configurado (string decimal); un valor ilegible cuenta como
// cero.
func NewReportUseCase(reportRepo repository.ReportRepository, ingredients IngredientLister, startingBalance string) *ReportUseCase {
	balance, err := decimal.NewFromString(startingBalance)
	if err != nil {
		balance = decimal.Zero
	}
	return &ReportUseCase{reportRepo: reportRepo, ingredients: ingredients, startingBalance: balance}
}

// SalesReport agrega las ventas del período que contiene ref en buckets
// cronológicos (horas para daily, días para weekly y monthly) con totales.
func (uc *ReportUseCase) SalesReport(ctx context.Context, period string, ref time.Time) (*dto.PeriodReportDTO, error) {
	p, err := reporting.ParsePeriod(period)
	if err != nil {
		return nil, err
	}
	start, end, err := reporting.Range(p, ref)
	if err != nil {
		return nil, err
	}
	records, err := uc.reportRepo.ListSaleRecords(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("reporte de ventas: %w", err)
	}
	return uc.buildReport(p, ref, start, end, records)
}

// ExpensesReport agrega las compras de stock del período (revenue cero,
// cost = costo total de cada compra).
func (uc *ReportUseCase) ExpensesReport(ctx context.Context, period string, ref time.Time) (*dto.PeriodReportDTO, error) {
	p, err := reporting.ParsePeriod(period)
	if err != nil {
		return nil, err
	}
	start, end, err := reporting.Range(p, ref)
	if err != nil {
		return nil, err
	}
	records, err := uc.reportRepo.ListStockUpdateRecords(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("reporte de gastos: %w", err)
	}
	return uc.buildReport(p, ref, start, end, records)
}

func (uc *ReportUseCase) buildReport(p reporting.Period, ref time.Time, start, end time.Time, records []reporting.Record) (*dto.PeriodReportDTO, error) {
	buckets, err := reporting.Aggregate(records, p, ref)
	if err != nil {
		return nil, err
	}
	revenue, cost, profit := reporting.Totals(buckets)

	data := make([]dto.ReportBucketDTO, 0, len(buckets))
	for _, b := range buckets {
		data = append(data, dto.ReportBucketDTO{
			Start:   b.Start,
			Label:   bucketLabel(p, b.Start),
			Revenue: b.Revenue,
			Cost:    b.Cost,
			Profit:  b.Profit,
		})
	}
	return &dto.PeriodReportDTO{
		Period:       string(p),
		RangeStart:   start,
		RangeEnd:     end,
		TotalRevenue: revenue,
		TotalCost:    cost,
		TotalProfit:  profit,
		Data:         data,
	}, nil
}

// bucketLabel etiqueta legible para el eje del gráfico: hora para daily, día
// de la semana para weekly, día del mes para monthly.
func bucketLabel(p reporting.Period, start time.Time) string {
	switch p {
	case reporting.PeriodDaily:
		return start.Format("15:04")
	case reporting.PeriodWeekly:
		return start.Format("Mon")
	default:
		return start.Format("02")
	}
}

// FinanceOverview resumen financiero acumulado: saldo inicial + ingresos por
// ventas - gastos en compras de stock.
func (uc *ReportUseCase) FinanceOverview(ctx context.Context) (*dto.FinanceOverviewDTO, error) {
	income, expenses, err := uc.reportRepo.GetFinanceTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("resumen financiero: %w", err)
	}
	return &dto.FinanceOverviewDTO{
		StartingBalance: uc.startingBalance,
		TotalRevenue:    income,
		TotalExpenses:   expenses,
		TotalProfit:     income.Sub(expenses),
		CurrentBalance:  uc.startingBalance.Add(income).Sub(expenses),
	}, nil
}

// GetSummary construye el resumen del dashboard con tres consultas en paralelo:
// totales de hoy, productos más vendidos del mes y alertas de stock bajo.
func (uc *ReportUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.AddDate(0, 0, 1)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	type totalsResult struct {
		revenue decimal.Decimal
		cost    decimal.Decimal
		count   int64
		err     error
	}
	type topResult struct {
		products []repository.TopProductResult
		err      error
	}
	type lowStockResult struct {
		alerts []*dto.IngredientResponse
		err    error
	}

	totalsCh := make(chan totalsResult, 1)
	topCh := make(chan topResult, 1)
	lowCh := make(chan lowStockResult, 1)

	go func() {
		revenue, cost, err := uc.reportRepo.GetSalesTotals(ctx, todayStart, todayEnd)
		if err != nil {
			totalsCh <- totalsResult{err: err}
			return
		}
		records, err := uc.reportRepo.ListSaleRecords(ctx, todayStart, todayEnd)
		totalsCh <- totalsResult{revenue: revenue, cost: cost, count: int64(len(records)), err: err}
	}()
	go func() {
		products, err := uc.reportRepo.GetTopProducts(ctx, monthStart, todayEnd, dashboardTopProducts)
		topCh <- topResult{products, err}
	}()
	go func() {
		alerts, err := uc.ingredients.ListLowStock()
		lowCh <- lowStockResult{alerts, err}
	}()

	totals := <-totalsCh
	top := <-topCh
	low := <-lowCh

	if totals.err != nil {
		return nil, fmt.Errorf("dashboard: totales de hoy: %w", totals.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("dashboard: top productos: %w", top.err)
	}
	if low.err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", low.err)
	}

	alerts := toLowStockAlerts(low.alerts)
	topProducts := make([]dto.TopProductDTO, 0, len(top.products))
	for _, p := range top.products {
		topProducts = append(topProducts, dto.TopProductDTO{
			ProductID:    p.ProductID,
			ProductName:  p.ProductName,
			QuantitySold: p.QuantitySold.IntPart(),
			TotalRevenue: p.TotalRevenue,
			TotalProfit:  p.TotalProfit,
		})
	}

	return &dto.DashboardSummaryDTO{
		TodayRevenue:   totals.revenue.Round(2),
		TodayProfit:    totals.revenue.Sub(totals.cost).Round(2),
		TodaySales:     totals.count,
		LowStockAlerts: alerts,
		TopProducts:    topProducts,
	}, nil
}

// LowStockAlerts lista los ingredientes con stock en o por debajo del umbral.
func (uc *ReportUseCase) LowStockAlerts() ([]dto.LowStockAlertDTO, error) {
	items, err := uc.ingredients.ListLowStock()
	if err != nil {
		return nil, fmt.Errorf("alertas de stock bajo: %w", err)
	}
	return toLowStockAlerts(items), nil
}

func toLowStockAlerts(items []*dto.IngredientResponse) []dto.LowStockAlertDTO {
	alerts := make([]dto.LowStockAlertDTO, 0, len(items))
	for _, ing := range items {
		alerts = append(alerts, dto.LowStockAlertDTO{
			ID:            ing.ID,
			Name:          ing.Name,
			CurrentStock:  ing.CurrentStock,
			StockUnit:     ing.StockUnit,
			MinThreshold:  ing.MinThreshold,
			ThresholdUnit: ing.ThresholdUnit,
		})
	}
	return alerts
}
