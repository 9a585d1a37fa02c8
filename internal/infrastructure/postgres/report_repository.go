package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cafeteria-api/internal/domain/reporting"
	"github.com/tu-usuario/cafeteria-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo implementación read-only del puerto ReportRepository sobre PostgreSQL.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de consultas de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// ListSaleRecords devuelve las ventas del rango [start, end) como registros agregables.
func (r *ReportRepo) ListSaleRecords(ctx context.Context, start, end time.Time) ([]reporting.Record, error) {
	query := `SELECT date, revenue, cost FROM sales WHERE date >= $1 AND date < $2 ORDER BY date`
	return r.listRecords(ctx, query, start, end, false)
}

// ListStockUpdateRecords devuelve las compras del rango como registros
// agregables: revenue cero y cost = costo total de la compra.
func (r *ReportRepo) ListStockUpdateRecords(ctx context.Context, start, end time.Time) ([]reporting.Record, error) {
	query := `SELECT date, total_cost FROM stock_updates WHERE date >= $1 AND date < $2 ORDER BY date`
	return r.listRecords(ctx, query, start, end, true)
}

func (r *ReportRepo) listRecords(ctx context.Context, query string, start, end time.Time, costOnly bool) ([]reporting.Record, error) {
	rows, err := r.q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	var records []reporting.Record
	for rows.Next() {
		var rec reporting.Record
		if costOnly {
			if err := rows.Scan(&rec.Date, &rec.Cost); err != nil {
				return nil, fmt.Errorf("scan record: %w", err)
			}
			rec.Revenue = decimal.Zero
		} else {
			if err := rows.Scan(&rec.Date, &rec.Revenue, &rec.Cost); err != nil {
				return nil, fmt.Errorf("scan record: %w", err)
			}
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// GetSalesTotals devuelve revenue y cost totales de las ventas del rango.
// COALESCE devuelve cero si no hay ventas en el período.
func (r *ReportRepo) GetSalesTotals(ctx context.Context, start, end time.Time) (revenue, cost decimal.Decimal, err error) {
	query := `
		SELECT COALESCE(SUM(revenue), 0), COALESCE(SUM(cost), 0)
		FROM sales WHERE date >= $1 AND date < $2`
	if err := r.q.QueryRow(ctx, query, start, end).Scan(&revenue, &cost); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("sales totals: %w", err)
	}
	return revenue, cost, nil
}

// GetTopProducts devuelve los productos con mayor ingreso en el rango.
func (r *ReportRepo) GetTopProducts(ctx context.Context, start, end time.Time, limit int) ([]repository.TopProductResult, error) {
	query := `
		SELECT s.product_id, COALESCE(p.name, ''), SUM(s.quantity), SUM(s.revenue), SUM(s.profit)
		FROM sales s
		LEFT JOIN products p ON p.id = s.product_id
		WHERE s.date >= $1 AND s.date < $2
		GROUP BY s.product_id, p.name
		ORDER BY SUM(s.revenue) DESC
		LIMIT $3`
	rows, err := r.q.Query(ctx, query, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	defer rows.Close()

	var out []repository.TopProductResult
	for rows.Next() {
		var t repository.TopProductResult
		if err := rows.Scan(&t.ProductID, &t.ProductName, &t.QuantitySold, &t.TotalRevenue, &t.TotalProfit); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// GetFinanceTotals devuelve el ingreso acumulado por ventas y el gasto
// acumulado en compras de stock de toda la historia.
func (r *ReportRepo) GetFinanceTotals(ctx context.Context) (income, expenses decimal.Decimal, err error) {
	query := `
		SELECT
			(SELECT COALESCE(SUM(revenue), 0) FROM sales),
			(SELECT COALESCE(SUM(total_cost), 0) FROM stock_updates)`
	if err := r.q.QueryRow(ctx, query).Scan(&income, &expenses); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("finance totals: %w", err)
	}
	return income, expenses, nil
}
