package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/cafeteria-api/internal/application/dto"
	"github.com/tu-usuario/cafeteria-api/internal/domain"
	"github.com/tu-usuario/cafeteria-api/internal/domain/costing"
	"github.com/tu-usuario/cafeteria-api/internal/domain/entity"
	"github.com/tu-usuario/cafeteria-api/internal/domain/repository"
	"github.com/tu-usuario/cafeteria-api/internal/domain/units"
)

// ProductUseCase casos de uso CRUD para productos del menú. El costo y la
// ganancia nunca se persisten: se recalculan en cada lectura con los costos
// vigentes de los ingredientes.
type ProductUseCase struct {
	repo           repository.ProductRepository
	ingredientRepo repository.IngredientRepository
	units          *units.Table
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, ingredientRepo repository.IngredientRepository, table *units.Table) *ProductUseCase {
	return &ProductUseCase{repo: repo, ingredientRepo: ingredientRepo, units: table}
}

// Create crea un producto con su receta. Valida cada línea: el ingrediente
// debe existir, la cantidad ser positiva y la unidad compatible con la unidad
// de stock del ingrediente.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.SellingPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Description:  in.Description,
		Category:     in.Category,
		SellingPrice: in.SellingPrice,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}
	recipe, err := uc.buildRecipe(product.ID, in.Recipe)
	if err != nil {
		return nil, err
	}
	product.Recipe = recipe
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return uc.toResponse(product)
}

// GetByID obtiene un producto por ID con costo y ganancia recalculados.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(product)
}

// List lista productos con paginación, recalculando costos por producto.
func (uc *ProductUseCase) List(limit, offset int) ([]*dto.ProductResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		resp, err := uc.toResponse(p)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

// ListCategories devuelve las categorías de menú en uso.
func (uc *ProductUseCase) ListCategories() ([]string, error) {
	return uc.repo.ListCategories()
}

// Update actualiza un producto. Si viene receta, se reemplaza completa tras
// validar cada línea.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.SellingPrice != nil {
		if in.SellingPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.SellingPrice = *in.SellingPrice
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}
	if in.Recipe != nil {
		recipe, err := uc.buildRecipe(product.ID, in.Recipe)
		if err != nil {
			return nil, err
		}
		product.Recipe = recipe
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return uc.toResponse(product)
}

// Delete elimina un producto y su receta.
func (uc *ProductUseCase) Delete(id string) error {
	if _, err := uc.repo.GetByID(id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

// buildRecipe valida y materializa las líneas de receta.
func (uc *ProductUseCase) buildRecipe(productID string, lines []dto.RecipeLineRequest) ([]entity.RecipeLine, error) {
	if len(lines) == 0 {
		return nil, nil
	}
	ids := make([]string, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.IngredientID)
	}
	ingredients, err := uc.ingredientRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	recipe := make([]entity.RecipeLine, 0, len(lines))
	for _, l := range lines {
		ing, ok := ingredients[l.IngredientID]
		if !ok || ing == nil {
			return nil, domain.ErrUnknownIngredient
		}
		if !l.Quantity.IsPositive() {
			return nil, domain.ErrInvalidQuantity
		}
		if err := uc.units.Compatible(l.Unit, ing.StockUnit); err != nil {
			return nil, err
		}
		recipe = append(recipe, entity.RecipeLine{
			ID:           uuid.New().String(),
			ProductID:    productID,
			IngredientID: l.IngredientID,
			Quantity:     l.Quantity,
			Unit:         l.Unit,
		})
	}
	return recipe, nil
}

// toResponse arma la respuesta recalculando costo por línea, costo total y
// ganancia con los ingredientes vigentes.
func (uc *ProductUseCase) toResponse(p *entity.Product) (*dto.ProductResponse, error) {
	ids := make([]string, 0, len(p.Recipe))
	for _, l := range p.Recipe {
		ids = append(ids, l.IngredientID)
	}
	ingredients, err := uc.ingredientRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}

	lines := make([]dto.RecipeLineResponse, 0, len(p.Recipe))
	for _, l := range p.Recipe {
		ing := ingredients[l.IngredientID]
		if ing == nil {
			return nil, domain.ErrUnknownIngredient
		}
		cost, err := costing.LineCost(l, ing, uc.units)
		if err != nil {
			return nil, err
		}
		lines = append(lines, dto.RecipeLineResponse{
			ID:             l.ID,
			IngredientID:   l.IngredientID,
			IngredientName: ing.Name,
			Quantity:       l.Quantity,
			Unit:           l.Unit,
			Cost:           cost,
		})
	}

	total, err := costing.RecipeCost(p, ingredients, uc.units)
	if err != nil {
		return nil, err
	}
	profit := costing.ProfitOf(p.SellingPrice, total)

	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Category:     p.Category,
		SellingPrice: p.SellingPrice,
		IsActive:     p.IsActive,
		Recipe:       lines,
		TotalCost:    total,
		Profit:       dto.ProfitDTO{Amount: profit.Amount, Percentage: profit.Percentage},
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}, nil
}
