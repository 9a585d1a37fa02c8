package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cafeteria-api/internal/application/dto"
	"github.com/tu-usuario/cafeteria-api/internal/application/reports"
)

// ReportHandler maneja las peticiones HTTP de reportes y dashboard (protegido).
type ReportHandler struct {
	uc *reports.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// periodRef lee period (daily|weekly|monthly, default daily) y la fecha de
// referencia opcional (date=YYYY-MM-DD, default hoy).
func periodRef(c *fiber.Ctx) (string, time.Time, error) {
	period := c.Query("period", "daily")
	ref := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return "", time.Time{}, err
		}
		ref = parsed
	}
	return period, ref, nil
}

// Sales godoc
// @Summary      Reporte de ventas por período
// @Description  Serie completa de buckets cronológicos (horas para daily, días
// @Description  para weekly y monthly) con totales; los buckets sin ventas van en cero.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        period  query  string  false  "daily | weekly | monthly (default daily)"
// @Param        date    query  string  false  "Fecha de referencia YYYY-MM-DD (default hoy)"
// @Success      200  {object}  dto.PeriodReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/sales [get]
func (h *ReportHandler) Sales(c *fiber.Ctx) error {
	period, ref, err := periodRef(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date debe ser YYYY-MM-DD"})
	}
	out, err := h.uc.SalesReport(c.Context(), period, ref)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// StockUpdates godoc
// @Summary      Reporte de gastos en compras de stock por período
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        period  query  string  false  "daily | weekly | monthly (default daily)"
// @Param        date    query  string  false  "Fecha de referencia YYYY-MM-DD (default hoy)"
// @Success      200  {object}  dto.PeriodReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/stock-updates [get]
func (h *ReportHandler) StockUpdates(c *fiber.Ctx) error {
	period, ref, err := periodRef(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date debe ser YYYY-MM-DD"})
	}
	out, err := h.uc.ExpensesReport(c.Context(), period, ref)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Finance godoc
// @Summary      Resumen financiero acumulado
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.FinanceOverviewDTO
// @Router       /api/finance/overview [get]
func (h *ReportHandler) Finance(c *fiber.Ctx) error {
	out, err := h.uc.FinanceOverview(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// LowStockAlerts godoc
// @Summary      Alertas de stock bajo
// @Description  Ingredientes cuyo stock está en o por debajo del umbral mínimo.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.LowStockAlertDTO
// @Router       /api/dashboard/low-stock-alerts [get]
func (h *ReportHandler) LowStockAlerts(c *fiber.Ctx) error {
	out, err := h.uc.LowStockAlerts()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Dashboard godoc
// @Summary      Resumen del dashboard
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard/summary [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
