package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/cafeteria-api/internal/application/usecase"
	"github.com/tu-usuario/cafeteria-api/internal/domain"
	"github.com/tu-usuario/cafeteria-api/internal/domain/entity"
	"github.com/tu-usuario/cafeteria-api/internal/domain/units"
)

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
	return ing, nil
}

func (f *fakeIngredientRepo) GetForUpdate(id string) (*entity.Ingredient, error) {
	return f.GetByID(id)
}

func (f *fakeIngredientRepo) List() ([]*entity.Ingredient, error) {
	out := make([]*entity.Ingredient, 0, len(f.items))
	for _, ing := range f.items {
		out = append(out, ing)
	}
	return out, nil
}

func (f *fakeIngredientRepo) GetByIDs(ids []string) (map[string]*entity.Ingredient, error) {
	out := make(map[string]*entity.Ingredient)
	for _, id := range ids {
		if ing, ok := f.items[id]; ok {
			out[id] = ing
		}
	}
	return out, nil
}

func (f *fakeIngredientRepo) Update(ing *entity.Ingredient) error {
	if _, ok := f.items[ing.ID]; !ok {
		return domain.ErrNotFound
	}
	f.items[ing.ID] = ing
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

type fakeCategoryRepo struct {
	items map[string]*entity.IngredientCategory
}

func (f *fakeCategoryRepo) Create(c *entity.IngredientCategory) error {
	f.items[c.ID] = c
	return nil
}

func (f *fakeCategoryRepo) GetByID(id string) (*entity.IngredientCategory, error) {
	c, ok := f.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (f *fakeCategoryRepo) GetByName(name string) (*entity.IngredientCategory, error) {
	for _, c := range f.items {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCategoryRepo) List() ([]*entity.IngredientCategory, error) {
	out := make([]*entity.IngredientCategory, 0, len(f.items))
	for _, c := range f.items {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCategoryRepo) Update(c *entity.IngredientCategory) error {
	f.items[c.ID] = c
	return nil
}

func (f *fakeCategoryRepo) CountIngredients(id string) (int, error) { return 0, nil }

func (f *fakeCategoryRepo) Delete(id string) error {
	delete(f.items, id)
	return nil
}

func newIngredientUseCase(t *testing.T) (*usecase.IngredientUseCase, *fakeIngredientRepo) {
	t.Helper()
	repo := &fakeIngredientRepo{items: map[string]*entity.Ingredient{}}
	categories := &fakeCategoryRepo{items: map[string]*entity.IngredientCategory{
		"cat-1": {ID: "cat-1", Name: "Milk & Dairy"},
	}}
	return usecase.NewIngredientUseCase(repo, categories, units.NewTable()), repo
}

func seedIngredient(repo *fakeIngredientRepo, id string, stock, threshold decimal.Decimal, stockUnit, thresholdUnit string) {
	now := time.Now()
	repo.items[id] = &entity.Ingredient{
		ID:            id,
		Name:          "Leche " + id,
		CategoryID:    "cat-1",
		CurrentStock:  stock,
		StockUnit:     stockUnit,
		MinThreshold:  threshold,
		ThresholdUnit: thresholdUnit,
		CostPerUnit:   decimal.NewFromInt(50),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestListLowStock_AlertaConStockIgualAlUmbral(t *testing.T) {
	uc, repo := newIngredientUseCase(t)
	// Stock exactamente en el umbral: 2 l contra un umbral de 2000 ml.
	seedIngredient(repo, "ing-limite", decimal.NewFromInt(2), decimal.NewFromInt(2000), "l", "ml")

	out, err := uc.ListLowStock()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "ing-limite", out[0].ID)
	assert.True(t, out[0].LowStock)
}

func TestListLowStock_SoloIncluyeLosQueEstanEnOBajoElUmbral(t *testing.T) {
	uc, repo := newIngredientUseCase(t)
	seedIngredient(repo, "ing-bajo", decimal.NewFromInt(500), decimal.NewFromInt(1), "g", "kg")
	seedIngredient(repo, "ing-sobrado", decimal.NewFromInt(5000), decimal.NewFromInt(1), "g", "kg")

	out, err := uc.ListLowStock()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "ing-bajo", out[0].ID)
	assert.Equal(t, "Milk & Dairy", out[0].CategoryName)
}
