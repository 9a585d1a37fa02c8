package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateStockUpdateRequest entrada para registrar una compra de stock.
// CostPerUnit es el costo por la unidad de compra, no por la unidad de stock.
type CreateStockUpdateRequest struct {
	IngredientID string          `json:"ingredient_id" validate:"required,uuid"`
	Quantity     decimal.Decimal `json:"quantity" validate:"required"`
	Unit         string          `json:"unit" validate:"required"`
	CostPerUnit  decimal.Decimal `json:"cost_per_unit"`
	Date         *time.Time      `json:"date"`
	Notes        string          `json:"notes" validate:"max=500"`
}

// StockUpdateResponse compra de stock registrada.
type StockUpdateResponse struct {
	ID             string          `json:"id"`
	IngredientID   string          `json:"ingredient_id"`
	IngredientName string          `json:"ingredient_name,omitempty"`
	Quantity       decimal.Decimal `json:"quantity"`
	Unit           string          `json:"unit"`
	CostPerUnit    decimal.Decimal `json:"cost_per_unit"`
	TotalCost      decimal.Decimal `json:"total_cost"`
	Date           time.Time       `json:"date"`
	Notes          string          `json:"notes"`
	CreatedAt      time.Time       `json:"created_at"`
}

// ListStockUpdatesRequest filtros para listar compras de stock.
type ListStockUpdatesRequest struct {
	From *time.Time
	To   *time.Time
	PageRequest
}
