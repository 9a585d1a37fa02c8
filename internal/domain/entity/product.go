package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un ítem del menú (producto vendible) con su receta.
// TotalCost y Profit NO se almacenan: se recalculan siempre desde la receta
// y el costo actual de los ingredientes al momento de leer el producto.
type Product struct {
	ID           string
	Name         string
	Description  string
	Category     string
	SellingPrice decimal.Decimal
	IsActive     bool
	Recipe       []RecipeLine
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RecipeLine una línea de receta: ingrediente, cantidad y unidad.
// La unidad debe ser compatible (misma clase base) con la unidad de stock
// del ingrediente referenciado.
type RecipeLine struct {
	ID           string
	ProductID    string
	IngredientID string
	Quantity     decimal.Decimal
	Unit         string
}
