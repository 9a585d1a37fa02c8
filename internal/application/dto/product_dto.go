package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecipeLineRequest línea de receta: cantidad de un ingrediente en una unidad
// compatible con la unidad de stock del ingrediente.
type RecipeLineRequest struct {
	IngredientID string          `json:"ingredient_id" validate:"required,uuid"`
	Quantity     decimal.Decimal `json:"quantity" validate:"required"`
	Unit         string          `json:"unit" validate:"required"`
}

// CreateProductRequest entrada para crear un producto del menú.
type CreateProductRequest struct {
	Name         string              `json:"name" validate:"required,min=1,max=200"`
	Description  string              `json:"description" validate:"max=1000"`
	Category     string              `json:"category" validate:"required,min=1,max=100"`
	SellingPrice decimal.Decimal     `json:"selling_price"`
	IsActive     *bool               `json:"is_active"`
	Recipe       []RecipeLineRequest `json:"recipe" validate:"dive"`
}

// UpdateProductRequest entrada para actualizar un producto. Si Recipe viene
// presente se reemplaza la receta completa.
type UpdateProductRequest struct {
	Name         *string             `json:"name" validate:"omitempty,min=1,max=200"`
	Description  *string             `json:"description" validate:"omitempty,max=1000"`
	Category     *string             `json:"category" validate:"omitempty,min=1,max=100"`
	SellingPrice *decimal.Decimal    `json:"selling_price"`
	IsActive     *bool               `json:"is_active"`
	Recipe       []RecipeLineRequest `json:"recipe" validate:"omitempty,dive"`
}

// RecipeLineResponse línea de receta con el costo calculado al momento de la
// consulta.
type RecipeLineResponse struct {
	ID             string          `json:"id"`
	IngredientID   string          `json:"ingredient_id"`
	IngredientName string          `json:"ingredient_name"`
	Quantity       decimal.Decimal `json:"quantity"`
	Unit           string          `json:"unit"`
	Cost           decimal.Decimal `json:"cost"`
}

// ProfitDTO ganancia absoluta y porcentual sobre el precio de venta.
type ProfitDTO struct {
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"`
}

// ProductResponse producto con costo y ganancia recalculados con los costos
// actuales de los ingredientes.
type ProductResponse struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Description  string               `json:"description"`
	Category     string               `json:"category"`
	SellingPrice decimal.Decimal      `json:"selling_price"`
	IsActive     bool                 `json:"is_active"`
	Recipe       []RecipeLineResponse `json:"recipe"`
	TotalCost    decimal.Decimal      `json:"total_cost"`
	Profit       ProfitDTO            `json:"profit"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}
