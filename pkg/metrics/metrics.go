package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Contadores de negocio expuestos en /metrics.
var (
	SalesRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cafeteria_sales_recorded_total",
		Help: "Ventas registradas con éxito.",
	})
	StockUpdatesRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cafeteria_stock_updates_recorded_total",
		Help: "Compras de stock registradas con éxito.",
	})
	InsufficientStockRejections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cafeteria_insufficient_stock_rejections_total",
		Help: "Ventas rechazadas por stock insuficiente.",
	})
)

// Handler adapta el handler estándar de Prometheus a Fiber (GET /metrics).
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
