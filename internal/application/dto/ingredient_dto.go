package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateIngredientRequest entrada para crear un ingrediente.
// ThresholdUnit puede diferir de StockUnit pero debe ser de la misma clase base.
type CreateIngredientRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	CategoryID    string          `json:"category_id" validate:"required,uuid"`
	CurrentStock  decimal.Decimal `json:"current_stock"`
	StockUnit     string          `json:"stock_unit" validate:"required"`
	MinThreshold  decimal.Decimal `json:"min_threshold"`
	ThresholdUnit string          `json:"threshold_unit" validate:"required"`
	CostPerUnit   decimal.Decimal `json:"cost_per_unit"`
}

// UpdateIngredientRequest entrada para actualizar un ingrediente.
type UpdateIngredientRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	CategoryID    *string          `json:"category_id" validate:"omitempty,uuid"`
	CurrentStock  *decimal.Decimal `json:"current_stock"`
	StockUnit     *string          `json:"stock_unit"`
	MinThreshold  *decimal.Decimal `json:"min_threshold"`
	ThresholdUnit *string          `json:"threshold_unit"`
	CostPerUnit   *decimal.Decimal `json:"cost_per_unit"`
}

// IngredientResponse salida de un ingrediente, con la categoría resuelta y el
// indicador de stock bajo (comparación en unidad base).
type IngredientResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	CategoryID    string          `json:"category_id"`
	CategoryName  string          `json:"category_name,omitempty"`
	CurrentStock  decimal.Decimal `json:"current_stock"`
	StockUnit     string          `json:"stock_unit"`
	MinThreshold  decimal.Decimal `json:"min_threshold"`
	ThresholdUnit string          `json:"threshold_unit"`
	CostPerUnit   decimal.Decimal `json:"cost_per_unit"`
	LowStock      bool            `json:"low_stock"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// LowStockAlertDTO alerta de stock bajo para el dashboard.
type LowStockAlertDTO struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	CurrentStock  decimal.Decimal `json:"current_stock"`
	StockUnit     string          `json:"stock_unit"`
	MinThreshold  decimal.Decimal `json:"min_threshold"`
	ThresholdUnit string          `json:"threshold_unit"`
}
