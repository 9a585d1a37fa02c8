package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterSaleRequest entrada para registrar una venta. AllowNegativeStock
// permite completar la venta aunque el stock quede negativo.
type RegisterSaleRequest struct {
	ProductID          string     `json:"product_id" validate:"required,uuid"`
	Quantity           int        `json:"quantity" validate:"required,gt=0"`
	Date               *time.Time `json:"date"`
	AllowNegativeStock bool       `json:"allow_negative_stock"`
}

// SaleResponse venta con los valores congelados al momento del registro.
type SaleResponse struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	Quantity    int             `json:"quantity"`
	Revenue     decimal.Decimal `json:"revenue"`
	Cost        decimal.Decimal `json:"cost"`
	Profit      decimal.Decimal `json:"profit"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ListSalesRequest filtros para listar ventas.
type ListSalesRequest struct {
	From *time.Time
	To   *time.Time
	PageRequest
}
