// Package costing contiene el motor de costeo de recetas: costo total de un
// producto del menú, utilidad sobre el precio de venta y el costo promedio
// ponderado que se recalcula con cada compra de stock.
package costing

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cafeteria-api/internal/domain"
	"github.com/tu-usuario/cafeteria-api/internal/domain/entity"
	"github.com/tu-usuario/cafeteria-api/internal/domain/units"
)

var hundred = decimal.NewFromInt(100)

// Profit utilidad de un producto: monto y porcentaje sobre el precio de venta.
type Profit struct {
	Amount     decimal.Decimal
	Percentage decimal.Decimal
}

// LineCost calcula el costo de una línea de receta: la cantidad de la línea
// convertida a la unidad de stock del ingrediente, multiplicada por su costo
// por unidad de stock.
func LineCost(line entity.RecipeLine, ing *entity.Ingredient, table *units.Table) (decimal.Decimal, error) {
	if ing == nil {
		return decimal.Zero, domain.ErrUnknownIngredient
	}
	qty, err := table.Convert(line.Quantity, line.Unit, ing.StockUnit)
	if err != nil {
		return decimal.Zero, err
	}
	return qty.Mul(ing.CostPerUnit), nil
}

// RecipeCost suma el costo de todas las líneas de la receta del producto.
// ErrUnknownIngredient si una línea referencia un ingrediente que no está en
// el lookup; ErrIncompatibleUnits si la unidad de una línea no es compatible
// con la unidad de stock de su ingrediente.
func RecipeCost(p *entity.Product, ingredients map[string]*entity.Ingredient, table *units.Table) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, line := range p.Recipe {
		ing, ok := ingredients[line.IngredientID]
		if !ok || ing == nil {
			return decimal.Zero, domain.ErrUnknownIngredient
		}
		cost, err := LineCost(line, ing, table)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(cost)
	}
	return total, nil
}

// ProfitOf calcula la utilidad a partir del precio de venta y el costo total.
// Percentage = Amount / precio * 100, redondeado a 2 decimales; cero cuando el
// precio de venta es cero o negativo (nunca divide por cero).
func ProfitOf(sellingPrice, cost decimal.Decimal) Profit {
	amount := sellingPrice.Sub(cost)
	pct := decimal.Zero
	if sellingPrice.IsPositive() {
		pct = amount.Div(sellingPrice).Mul(hundred).Round(2)
	}
	return Profit{Amount: amount, Percentage: pct}
}

// WeightedAverageCost costo promedio ponderado tras una entrada de stock:
// ((StockActual * CostoActual) + (CantEntrada * CostoEntrada)) / (StockActual + CantEntrada)
// Cantidades y costos deben estar en la misma unidad (la de stock).
func WeightedAverageCost(stockQty, currentCost, addedQty, addedCost decimal.Decimal) decimal.Decimal {
	sum := stockQty.Add(addedQty)
	if sum.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	num := stockQty.Mul(currentCost).Add(addedQty.Mul(addedCost))
	return num.Div(sum)
}
