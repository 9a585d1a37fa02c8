package costing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/cafeteria-api/internal/domain"
	"github.com/tu-usuario/cafeteria-api/internal/domain/costing"
	"github.com/tu-usuario/cafeteria-api/internal/domain/entity"
	"github.com/tu-usuario/cafeteria-api/internal/domain/units"
)

func ingredient(id, stockUnit string, costPerUnit float64) *entity.Ingredient {
	return &entity.Ingredient{
		ID:          id,
		Name:        "ing-" + id,
		StockUnit:   stockUnit,
		CostPerUnit: decimal.NewFromFloat(costPerUnit),
	}
}

// Leche almacenada en litros a 50/l: una línea de 200 ml debe costar 10.
func TestLineCost_ConversionAUnidadDeStock(t *testing.T) {
	table := units.NewTable()
	milk := ingredient("milk", "l", 50)
	line := entity.RecipeLine{IngredientID: "milk", Quantity: decimal.NewFromInt(200), Unit: "ml"}

	cost, err := costing.LineCost(line, milk, table)
	require.NoError(t, err)
	assert.True(t, cost.Equal(decimal.NewFromInt(10)), "200 ml a 50/l deben costar 10, obtuvo %s", cost)
}

func TestLineCost_UnidadIncompatible(t *testing.T) {
	table := units.NewTable()
	beans := ingredient("beans", "g", 2)
	line := entity.RecipeLine{IngredientID: "beans", Quantity: decimal.NewFromInt(30), Unit: "ml"}

	_, err := costing.LineCost(line, beans, table)
	assert.ErrorIs(t, err, domain.ErrIncompatibleUnits)
}

func TestRecipeCost_SumaLineas(t *testing.T) {
	table := units.NewTable()
	ingredients := map[string]*entity.Ingredient{
		"milk":  ingredient("milk", "l", 50),
		"beans": ingredient("beans", "g", 0.5),
	}
	product := &entity.Product{
		Recipe: []entity.RecipeLine{
			{IngredientID: "milk", Quantity: decimal.NewFromInt(200), Unit: "ml"},  // 10
			{IngredientID: "beans", Quantity: decimal.NewFromInt(18), Unit: "g"},   // 9
		},
	}

	total, err := costing.RecipeCost(product, ingredients, table)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(19)), "10 + 9 = 19, obtuvo %s", total)
}

func TestRecipeCost_Linealidad(t *testing.T) {
	table := units.NewTable()
	ingredients := map[string]*entity.Ingredient{"milk": ingredient("milk", "l", 50)}
	simple := &entity.Product{Recipe: []entity.RecipeLine{
		{IngredientID: "milk", Quantity: decimal.NewFromInt(100), Unit: "ml"},
	}}
	doble := &entity.Product{Recipe: []entity.RecipeLine{
		{IngredientID: "milk", Quantity: decimal.NewFromInt(200), Unit: "ml"},
	}}

	costoSimple, err := costing.RecipeCost(simple, ingredients, table)
	require.NoError(t, err)
	costoDoble, err := costing.RecipeCost(doble, ingredients, table)
	require.NoError(t, err)
	assert.True(t, costoDoble.Equal(costoSimple.Mul(decimal.NewFromInt(2))), "doble cantidad, doble costo")
}

func TestRecipeCost_IngredienteDesconocido(t *testing.T) {
	table := units.NewTable()
	product := &entity.Product{Recipe: []entity.RecipeLine{
		{IngredientID: "fantasma", Quantity: decimal.NewFromInt(1), Unit: "g"},
	}}

	_, err := costing.RecipeCost(product, map[string]*entity.Ingredient{}, table)
	assert.ErrorIs(t, err, domain.ErrUnknownIngredient)
}

// Precio 60, costo 10: ganancia 50 y porcentaje 83.33 sobre el precio de venta.
func TestProfitOf_PorcentajeSobrePrecio(t *testing.T) {
	profit := costing.ProfitOf(decimal.NewFromInt(60), decimal.NewFromInt(10))

	assert.True(t, profit.Amount.Equal(decimal.NewFromInt(50)), "ganancia esperada 50, obtuvo %s", profit.Amount)
	assert.True(t, profit.Percentage.Equal(decimal.NewFromFloat(83.33)), "porcentaje esperado 83.33, obtuvo %s", profit.Percentage)
}

func TestProfitOf_PrecioCero(t *testing.T) {
	profit := costing.ProfitOf(decimal.Zero, decimal.NewFromInt(10))

	assert.True(t, profit.Amount.Equal(decimal.NewFromInt(-10)))
	assert.True(t, profit.Percentage.IsZero(), "sin precio de venta no hay porcentaje (nunca dividir por cero)")
}

func TestProfitOf_CostoCero(t *testing.T) {
	profit := costing.ProfitOf(decimal.NewFromInt(25), decimal.Zero)

	assert.True(t, profit.Amount.Equal(decimal.NewFromInt(25)))
	assert.True(t, profit.Percentage.Equal(decimal.NewFromInt(100)), "sin costo la ganancia es el 100%% del precio")
}

func TestWeightedAverageCost(t *testing.T) {
	// 1000 g a 5/g + 500 g a 8/g = (5000 + 4000) / 1500 = 6/g
	got := costing.WeightedAverageCost(
		decimal.NewFromInt(1000), decimal.NewFromInt(5),
		decimal.NewFromInt(500), decimal.NewFromInt(8),
	)
	assert.True(t, got.Equal(decimal.NewFromInt(6)), "promedio ponderado esperado 6, obtuvo %s", got)
}

func TestWeightedAverageCost_StockCero(t *testing.T) {
	// Sin stock previo el costo es el de la entrada.
	got := costing.WeightedAverageCost(
		decimal.Zero, decimal.Zero,
		decimal.NewFromInt(200), decimal.NewFromFloat(3.5),
	)
	assert.True(t, got.Equal(decimal.NewFromFloat(3.5)))
}

func TestWeightedAverageCost_TotalCero(t *testing.T) {
	got := costing.WeightedAverageCost(decimal.Zero, decimal.NewFromInt(5), decimal.Zero, decimal.NewFromInt(8))
	assert.True(t, got.IsZero(), "sin cantidades el promedio es cero, no división por cero")
}
