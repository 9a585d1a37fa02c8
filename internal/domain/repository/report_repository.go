package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cafeteria-api/internal/domain/reporting"
)

// TopProductResult resultado crudo de la consulta de productos más vendidos.
type TopProductResult struct {
	ProductID    string
	ProductName  string
	QuantitySold decimal.Decimal
	TotalRevenue decimal.Decimal
	TotalProfit  decimal.Decimal
}

// ReportRepository define las consultas de lectura para reportes y dashboard.
// Las implementaciones son read-only (no modifican datos).
type ReportRepository interface {
	// ListSaleRecords devuelve las ventas del rango como registros agregables
	// (fecha, revenue, cost capturados al momento de la venta).
	ListSaleRecords(ctx context.Context, start, end time.Time) ([]reporting.Record, error)

	// ListStockUpdateRecords devuelve las compras de stock del rango como
	// registros agregables (revenue cero, cost = costo total de la compra).
	ListStockUpdateRecords(ctx context.Context, start, end time.Time) ([]reporting.Record, error)

	// GetSalesTotals devuelve revenue y cost totales de las ventas del rango.
	// Usa COALESCE para devolver cero si no hay ventas en el período.
	GetSalesTotals(ctx context.Context, start, end time.Time) (revenue, cost decimal.Decimal, err error)

	// GetTopProducts devuelve los `limit` productos con mayor ingreso en el rango.
	GetTopProducts(ctx context.Context, start, end time.Time, limit int) ([]TopProductResult, error)

	// GetFinanceTotals devuelve el ingreso acumulado (ventas) y el gasto
	// acumulado (compras de stock) de toda la historia.
	GetFinanceTotals(ctx context.Context) (income, expenses decimal.Decimal, err error)
}
