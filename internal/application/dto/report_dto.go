package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportBucketDTO un cubo del reporte por período. Para el período diario los
// cubos son horas, para semanal días y para mensual días del mes.
type ReportBucketDTO struct {
	Start   time.Time       `json:"start"`
	Label   string          `json:"label"`
	Revenue decimal.Decimal `json:"revenue"`
	Cost    decimal.Decimal `json:"cost"`
	Profit  decimal.Decimal `json:"profit"`
}

// PeriodReportDTO reporte agregado por período con los totales del rango.
type PeriodReportDTO struct {
	Period       string            `json:"period"`
	RangeStart   time.Time         `json:"range_start"`
	RangeEnd     time.Time         `json:"range_end"`
	TotalRevenue decimal.Decimal   `json:"total_revenue"`
	TotalCost    decimal.Decimal   `json:"total_cost"`
	TotalProfit  decimal.Decimal   `json:"total_profit"`
	Data         []ReportBucketDTO `json:"data"`
}

// TopProductDTO producto más vendido en un rango.
type TopProductDTO struct {
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	QuantitySold int64           `json:"quantity_sold"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalProfit  decimal.Decimal `json:"total_profit"`
}

// FinanceOverviewDTO resumen financiero acumulado: balance inicial más ventas
// menos compras de stock.
type FinanceOverviewDTO struct {
	StartingBalance decimal.Decimal `json:"starting_balance"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	TotalExpenses   decimal.Decimal `json:"total_expenses"`
	TotalProfit     decimal.Decimal `json:"total_profit"`
	CurrentBalance  decimal.Decimal `json:"current_balance"`
}

// DashboardSummaryDTO resumen para la pantalla principal.
type DashboardSummaryDTO struct {
	TodayRevenue   decimal.Decimal    `json:"today_revenue"`
	TodayProfit    decimal.Decimal    `json:"today_profit"`
	TodaySales     int64              `json:"today_sales"`
	LowStockAlerts []LowStockAlertDTO `json:"low_stock_alerts"`
	TopProducts    []TopProductDTO    `json:"top_products"`
}
