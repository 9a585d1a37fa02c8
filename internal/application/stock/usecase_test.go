package stock_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/cafeteria-api/internal/application/dto"
	"github.com/tu-usuario/cafeteria-api/internal/application/stock"
	"github.com/tu-usuario/cafeteria-api/internal/domain"
	"github.com/tu-usuario/cafeteria-api/internal/domain/entity"
	"github.com/tu-usuario/cafeteria-api/internal/domain/repository"
	"github.com/tu-usuario/cafeteria-api/internal/domain/units"
)

type fakeIngredientRepo struct {
	items map[string]*entity.Ingredient
}

func (f *fakeIngredientRepo) Create(ing *entity.Ingredient) error { f.items[ing.ID] = ing; return nil }
func (f *fakeIngredientRepo) GetByID(id string) (*entity.Ingredient, error) {
	ing, ok := f.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c := *ing
	return &c, nil
}
func (f *fakeIngredientRepo) GetForUpdate(id string) (*entity.Ingredient, error) {
	return f.GetByID(id)
}
func (f *fakeIngredientRepo) List() ([]*entity.Ingredient, error) { return nil, nil }
func (f *fakeIngredientRepo) GetByIDs(ids []string) (map[string]*entity.Ingredient, error) {
	return nil, nil
}
func (f *fakeIngredientRepo) Update(ing *entity.Ingredient) error {
	c := *ing
	f.items[ing.ID] = &c
	return nil
}
func (f *fakeIngredientRepo) UpdateStockAndCost(id string, stockQty, costPerUnit decimal.Decimal) error {
	ing, ok := f.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	ing.CurrentStock = stockQty
	ing.CostPerUnit = costPerUnit
	return nil
}
func (f *fakeIngredientRepo) Delete(id string) error { delete(f.items, id); return nil }

type fakeStockUpdateRepo struct {
	items map[string]*entity.StockUpdate
}

func (f *fakeStockUpdateRepo) Create(u *entity.StockUpdate) error { f.items[u.ID] = u; return nil }
func (f *fakeStockUpdateRepo) GetByID(id string) (*entity.StockUpdate, error) {
	u, ok := f.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}
func (f *fakeStockUpdateRepo) List(from, to *time.Time, limit, offset int) ([]*entity.StockUpdate, error) {
	return nil, nil
}
func (f *fakeStockUpdateRepo) Delete(id string) error { delete(f.items, id); return nil }

type fakeTxRunner struct {
	ingredients *fakeIngredientRepo
	updates     *fakeStockUpdateRepo
}

func (f *fakeTxRunner) RunStock(ctx context.Context, fn func(
	ingredientRepo repository.IngredientRepository,
	stockUpdateRepo repository.StockUpdateRepository,
) error) error {
	snapshot := make(map[string]*entity.Ingredient, len(f.ingredients.items))
	for id, ing := range f.ingredients.items {
		c := *ing
		snapshot[id] = &c
	}
	if err := fn(f.ingredients, f.updates); err != nil {
		f.ingredients.items = snapshot
		return err
	}
	return nil
}

// Escenario base: café en grano almacenado en gramos.
func newFixture(stockGrams, costPerGram float64) (*stock.StockUseCase, *fakeIngredientRepo, *fakeStockUpdateRepo) {
	beans := &entity.Ingredient{
		ID:           "beans",
		Name:         "Café en grano",
		CurrentStock: decimal.NewFromFloat(stockGrams),
		StockUnit:    "g",
		CostPerUnit:  decimal.NewFromFloat(costPerGram),
	}
	ingRepo := &fakeIngredientRepo{items: map[string]*entity.Ingredient{"beans": beans}}
	updateRepo := &fakeStockUpdateRepo{items: map[string]*entity.StockUpdate{}}
	runner := &fakeTxRunner{ingredients: ingRepo, updates: updateRepo}
	uc := stock.NewStockUseCase(runner, ingRepo, updateRepo, units.NewTable())
	return uc, ingRepo, updateRepo
}

func TestCreate_SumaStockYPromediaCosto(t *testing.T) {
	// 1000 g a 5/g en stock; compra de 0.5 kg a 8000/kg (= 8/g).
	uc, ingRepo, _ := newFixture(1000, 5)

	out, err := uc.Create(context.Background(), "user-1", dto.CreateStockUpdateRequest{
		IngredientID: "beans",
		Quantity:     decimal.NewFromFloat(0.5),
		Unit:         "kg",
		CostPerUnit:  decimal.NewFromInt(8000),
	})
	require.NoError(t, err)

	beans, _ := ingRepo.GetByID("beans")
	assert.True(t, beans.CurrentStock.Equal(decimal.NewFromInt(1500)), "1000 g + 500 g, obtuvo %s", beans.CurrentStock)
	// promedio: (1000*5 + 500*8) / 1500 = 6
	assert.True(t, beans.CostPerUnit.Equal(decimal.NewFromInt(6)), "costo promedio esperado 6/g, obtuvo %s", beans.CostPerUnit)
	assert.True(t, out.TotalCost.Equal(decimal.NewFromInt(4000)), "0.5 kg * 8000/kg = 4000")
}

func TestCreate_UnidadIncompatible(t *testing.T) {
	uc, ingRepo, _ := newFixture(1000, 5)

	_, err := uc.Create(context.Background(), "user-1", dto.CreateStockUpdateRequest{
		IngredientID: "beans",
		Quantity:     decimal.NewFromInt(2),
		Unit:         "l", // volumen contra stock en gramos
		CostPerUnit:  decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrIncompatibleUnits)

	beans, _ := ingRepo.GetByID("beans")
	assert.True(t, beans.CurrentStock.Equal(decimal.NewFromInt(1000)), "rollback: el stock no cambia")
}

func TestCreate_CantidadInvalida(t *testing.T) {
	uc, _, _ := newFixture(1000, 5)

	_, err := uc.Create(context.Background(), "user-1", dto.CreateStockUpdateRequest{
		IngredientID: "beans",
		Quantity:     decimal.NewFromInt(-5),
		Unit:         "g",
		CostPerUnit:  decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestDelete_RevierteStockYCosto(t *testing.T) {
	uc, ingRepo, _ := newFixture(1000, 5)

	out, err := uc.Create(context.Background(), "user-1", dto.CreateStockUpdateRequest{
		IngredientID: "beans",
		Quantity:     decimal.NewFromInt(500),
		Unit:         "g",
		CostPerUnit:  decimal.NewFromInt(8),
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), out.ID))

	beans, _ := ingRepo.GetByID("beans")
	assert.True(t, beans.CurrentStock.Equal(decimal.NewFromInt(1000)), "la resta compensatoria devuelve el stock original")
	assert.True(t, beans.CostPerUnit.Equal(decimal.NewFromInt(5)), "el costo promedio vuelve al previo, obtuvo %s", beans.CostPerUnit)
}

func TestDelete_RechazaSiDejaStockNegativo(t *testing.T) {
	uc, ingRepo, _ := newFixture(0, 0)

	out, err := uc.Create(context.Background(), "user-1", dto.CreateStockUpdateRequest{
		IngredientID: "beans",
		Quantity:     decimal.NewFromInt(500),
		Unit:         "g",
		CostPerUnit:  decimal.NewFromInt(8),
	})
	require.NoError(t, err)

	// Se consume parte de la compra antes de intentar borrarla.
	require.NoError(t, ingRepo.UpdateStockAndCost("beans", decimal.NewFromInt(100), decimal.NewFromInt(8)))

	err = uc.Delete(context.Background(), out.ID)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	beans, _ := ingRepo.GetByID("beans")
	assert.True(t, beans.CurrentStock.Equal(decimal.NewFromInt(100)), "la compra no se borra y el stock queda como estaba")
}
