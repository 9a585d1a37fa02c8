package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/cafeteria-api/internal/application/dto"
	"github.com/tu-usuario/cafeteria-api/internal/application/sales"
	"github.com/tu-usuario/cafeteria-api/internal/domain"
	"github.com/tu-usuario/cafeteria-api/internal/domain/entity"
	"github.com/tu-usuario/cafeteria-api/internal/domain/repository"
	"github.com/tu-usuario/cafeteria-api/internal/domain/units"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: repos respaldados por mapas y un TxRunner que emula el
// rollback restaurando el estado previo cuando el callback falla.
// ──────────────────────────────────────────────────────────────────────────────

type fakeIngredientRepo struct {
	items map[string]*entity.Ingredient
}

func (f *fakeIngredientRepo) Create(ing *entity.Ingredient) error {
	f.items[ing.ID] = ing
	return nil
}

func (f *fakeIngredientRepo) GetByID(id string) (*entity.Ingredient, error) {
	ing, ok := f.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copy := *ing
	return &copy, nil
}

func (f *fakeIngredientRepo) GetForUpdate(id string) (*entity.Ingredient, error) {
	return f.GetByID(id)
}

func (f *fakeIngredientRepo) List() ([]*entity.Ingredient, error) {
	out := make([]*entity.Ingredient, 0, len(f.items))
	for _, ing := range f.items {
		copy := *ing
		out = append(out, &copy)
	}
	return out, nil
}

func (f *fakeIngredientRepo) GetByIDs(ids []string) (map[string]*entity.Ingredient, error) {
	out := make(map[string]*entity.Ingredient, len(ids))
	for _, id := range ids {
		if ing, ok := f.items[id]; ok {
			copy := *ing
			out[id] = &copy
		}
	}
	return out, nil
}

func (f *fakeIngredientRepo) Update(ing *entity.Ingredient) error {
	if _, ok := f.items[ing.ID]; !ok {
		return domain.ErrNotFound
	}
	copy := *ing
	f.items[ing.ID] = &copy
	return nil
}

func (f *fakeIngredientRepo) UpdateStockAndCost(id string, stock, costPerUnit decimal.Decimal) error {
	ing, ok := f.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	ing.CurrentStock = stock
	ing.CostPerUnit = costPerUnit
	return nil
}

func (f *fakeIngredientRepo) Delete(id string) error {
	delete(f.items, id)
	return nil
}

type fakeProductRepo struct {
	items map[string]*entity.Product
}

func (f *fakeProductRepo) Create(p *entity.Product) error { f.items[p.ID] = p; return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := f.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}
func (f *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) ListCategories() ([]string, error)                 { return nil, nil }
func (f *fakeProductRepo) Update(p *entity.Product) error                    { f.items[p.ID] = p; return nil }
func (f *fakeProductRepo) Delete(id string) error                            { delete(f.items, id); return nil }

type fakeSaleRepo struct {
	items map[string]*entity.Sale
}

func (f *fakeSaleRepo) Create(s *entity.Sale) error { f.items[s.ID] = s; return nil }
func (f *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	s, ok := f.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}
func (f *fakeSaleRepo) List(from, to *time.Time, limit, offset int) ([]*entity.Sale, error) {
	out := make([]*entity.Sale, 0, len(f.items))
	for _, s := range f.items {
		out = append(out, s)
	}
	return out, nil
}
func (f *fakeSaleRepo) Delete(id string) error { delete(f.items, id); return nil }

// fakeTxRunner restaura los ingredientes y ventas previos si fn falla.
type fakeTxRunner struct {
	ingredients *fakeIngredientRepo
	sales       *fakeSaleRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	ingredientRepo repository.IngredientRepository,
	saleRepo repository.SaleRepository,
) error) error {
	ingSnapshot := make(map[string]*entity.Ingredient, len(f.ingredients.items))
	for id, ing := range f.ingredients.items {
		copy := *ing
		ingSnapshot[id] = &copy
	}
	saleSnapshot := make(map[string]*entity.Sale, len(f.sales.items))
	for id, s := range f.sales.items {
		saleSnapshot[id] = s
	}
	if err := fn(f.ingredients, f.sales); err != nil {
		f.ingredients.items = ingSnapshot
		f.sales.items = saleSnapshot
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario base: latte con 200 ml de leche; la leche se almacena en litros.
// ──────────────────────────────────────────────────────────────────────────────

func newFixture(milkStockLiters float64) (*sales.SaleUseCase, *fakeIngredientRepo, *fakeSaleRepo) {
	milk := &entity.Ingredient{
		ID:           "milk",
		Name:         "Leche entera",
		CurrentStock: decimal.NewFromFloat(milkStockLiters),
		StockUnit:    "l",
		CostPerUnit:  decimal.NewFromInt(50), // 50 por litro
	}
	latte := &entity.Product{
		ID:           "latte",
		Name:         "Latte",
		SellingPrice: decimal.NewFromInt(60),
		IsActive:     true,
		Recipe: []entity.RecipeLine{
			{ID: "line-1", ProductID: "latte", IngredientID: "milk", Quantity: decimal.NewFromInt(200), Unit: "ml"},
		},
	}

	ingRepo := &fakeIngredientRepo{items: map[string]*entity.Ingredient{"milk": milk}}
	productRepo := &fakeProductRepo{items: map[string]*entity.Product{"latte": latte}}
	saleRepo := &fakeSaleRepo{items: map[string]*entity.Sale{}}
	runner := &fakeTxRunner{ingredients: ingRepo, sales: saleRepo}

	uc := sales.NewSaleUseCase(runner, productRepo, saleRepo, units.NewTable())
	return uc, ingRepo, saleRepo
}

func TestRegister_DescuentaStockConvertido(t *testing.T) {
	uc, ingRepo, _ := newFixture(2) // 2 litros

	// 3 lattes x 200 ml = 600 ml = 0.6 l
	out, err := uc.Register(context.Background(), "user-1", dto.RegisterSaleRequest{
		ProductID: "latte",
		Quantity:  3,
	})
	require.NoError(t, err)

	milk, _ := ingRepo.GetByID("milk")
	assert.True(t, milk.CurrentStock.Equal(decimal.NewFromFloat(1.4)), "2 l - 0.6 l = 1.4 l, obtuvo %s", milk.CurrentStock)

	// Montos congelados: revenue 3*60=180, costo 3*(0.2l*50)=30, profit 150.
	assert.True(t, out.Revenue.Equal(decimal.NewFromInt(180)), "revenue %s", out.Revenue)
	assert.True(t, out.Cost.Equal(decimal.NewFromInt(30)), "cost %s", out.Cost)
	assert.True(t, out.Profit.Equal(decimal.NewFromInt(150)), "profit %s", out.Profit)
}

func TestRegister_StockInsuficiente(t *testing.T) {
	uc, ingRepo, saleRepo := newFixture(0.5) // solo 0.5 l

	_, err := uc.Register(context.Background(), "user-1", dto.RegisterSaleRequest{
		ProductID: "latte",
		Quantity:  3, // necesita 0.6 l
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Rollback: nada descontado, nada vendido.
	milk, _ := ingRepo.GetByID("milk")
	assert.True(t, milk.CurrentStock.Equal(decimal.NewFromFloat(0.5)), "el stock no debe cambiar si la venta falla")
	assert.Empty(t, saleRepo.items)
}

func TestRegister_PermiteStockNegativoConOverride(t *testing.T) {
	uc, ingRepo, _ := newFixture(0.5)

	_, err := uc.Register(context.Background(), "user-1", dto.RegisterSaleRequest{
		ProductID:          "latte",
		Quantity:           3,
		AllowNegativeStock: true,
	})
	require.NoError(t, err)

	milk, _ := ingRepo.GetByID("milk")
	assert.True(t, milk.CurrentStock.Equal(decimal.NewFromFloat(-0.1)), "con override el stock puede quedar negativo, obtuvo %s", milk.CurrentStock)
}

func TestRegister_CantidadInvalida(t *testing.T) {
	uc, _, _ := newFixture(2)

	_, err := uc.Register(context.Background(), "user-1", dto.RegisterSaleRequest{ProductID: "latte", Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = uc.Register(context.Background(), "user-1", dto.RegisterSaleRequest{ProductID: "latte", Quantity: -2})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestRegister_ProductoInexistente(t *testing.T) {
	uc, _, _ := newFixture(2)

	_, err := uc.Register(context.Background(), "user-1", dto.RegisterSaleRequest{ProductID: "fantasma", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_NoReponeStock(t *testing.T) {
	uc, ingRepo, _ := newFixture(2)

	out, err := uc.Register(context.Background(), "user-1", dto.RegisterSaleRequest{ProductID: "latte", Quantity: 3})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(out.ID))

	// Eliminar la venta no devuelve los ingredientes consumidos.
	milk, _ := ingRepo.GetByID("milk")
	assert.True(t, milk.CurrentStock.Equal(decimal.NewFromFloat(1.4)), "el stock consumido no se repone al borrar la venta")

	_, err = uc.GetByID(out.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
