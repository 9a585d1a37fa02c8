package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/cafeteria-api/internal/application/dto"
	"github.com/tu-usuario/cafeteria-api/internal/domain"
	"github.com/tu-usuario/cafeteria-api/internal/domain/entity"
	"github.com/tu-usuario/cafeteria-api/internal/domain/repository"
	"github.com/tu-usuario/cafeteria-api/internal/domain/units"
)

// IngredientUseCase casos de uso CRUD para ingredientes. El indicador de stock
// bajo se calcula convirtiendo el umbral a la unidad de stock.
type IngredientUseCase struct {
	repo         repository.IngredientRepository
	categoryRepo repository.CategoryRepository
	units        *units.Table
}

// NewIngredientUseCase construye el caso de uso.
func NewIngredientUseCase(repo repository.IngredientRepository, categoryRepo repository.CategoryRepository, table *units.Table) *IngredientUseCase {
	return &IngredientUseCase{repo: repo, categoryRepo: categoryRepo, units: table}
}

// Create crea un ingrediente. Valida que la unidad de stock exista, que la
// unidad del umbral sea compatible y que la categoría exista.
func (uc *IngredientUseCase) Create(in dto.CreateIngredientRequest) (*dto.IngredientResponse, error) {
	if _, err := uc.units.Get(in.StockUnit); err != nil {
		return nil, err
	}
	if err := uc.units.Compatible(in.ThresholdUnit, in.StockUnit); err != nil {
		return nil, err
	}
	if in.CurrentStock.IsNegative() || in.MinThreshold.IsNegative() || in.CostPerUnit.IsNegative() {
		return nil, domain.ErrInvalidQuantity
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	ing := &entity.Ingredient{
		ID:            uuid.New().String(),
		Name:          in.Name,
		CategoryID:    in.CategoryID,
		CurrentStock:  in.CurrentStock,
		StockUnit:     in.StockUnit,
		MinThreshold:  in.MinThreshold,
		ThresholdUnit: in.ThresholdUnit,
		CostPerUnit:   in.CostPerUnit,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ing); err != nil {
		return nil, err
	}
	return uc.toResponse(ing, category.Name), nil
}

// GetByID obtiene un ingrediente por ID.
func (uc *IngredientUseCase) GetByID(id string) (*dto.IngredientResponse, error) {
	ing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(ing, uc.categoryName(ing.CategoryID)), nil
}

// List lista todos los ingredientes.
func (uc *IngredientUseCase) List() ([]*dto.IngredientResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	names := uc.categoryNames()
	out := make([]*dto.IngredientResponse, 0, len(list))
	for _, ing := range list {
		out = append(out, uc.toResponse(ing, names[ing.CategoryID]))
	}
	return out, nil
}

// ListLowStock lista los ingredientes cuyo stock está en o por debajo del umbral.
func (uc *IngredientUseCase) ListLowStock() ([]*dto.IngredientResponse, error) {
	all, err := uc.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.IngredientResponse, 0)
	for _, ing := range all {
		if ing.LowStock {
			out = append(out, ing)
		}
	}
	return out, nil
}

// Update actualiza un ingrediente. Si cambian las unidades se revalida la
// compatibilidad entre unidad de stock y unidad del umbral.
func (uc *IngredientUseCase) Update(id string, in dto.UpdateIngredientRequest) (*dto.IngredientResponse, error) {
	ing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		ing.Name = *in.Name
	}
	if in.CategoryID != nil {
		if _, err := uc.categoryRepo.GetByID(*in.CategoryID); err != nil {
			return nil, err
		}
		ing.CategoryID = *in.CategoryID
	}
	if in.StockUnit != nil {
		ing.StockUnit = *in.StockUnit
	}
	if in.ThresholdUnit != nil {
		ing.ThresholdUnit = *in.ThresholdUnit
	}
	if _, err := uc.units.Get(ing.StockUnit); err != nil {
		return nil, err
	}
	if err := uc.units.Compatible(ing.ThresholdUnit, ing.StockUnit); err != nil {
		return nil, err
	}
	if in.CurrentStock != nil {
		if in.CurrentStock.IsNegative() {
			return nil, domain.ErrInvalidQuantity
		}
		ing.CurrentStock = *in.CurrentStock
	}
	if in.MinThreshold != nil {
		if in.MinThreshold.IsNegative() {
			return nil, domain.ErrInvalidQuantity
		}
		ing.MinThreshold = *in.MinThreshold
	}
	if in.CostPerUnit != nil {
		if in.CostPerUnit.IsNegative() {
			return nil, domain.ErrInvalidQuantity
		}
		ing.CostPerUnit = *in.CostPerUnit
	}
	ing.UpdatedAt = time.Now()
	if err := uc.repo.Update(ing); err != nil {
		return nil, err
	}
	return uc.toResponse(ing, uc.categoryName(ing.CategoryID)), nil
}

// Delete elimina un ingrediente.
func (uc *IngredientUseCase) Delete(id string) error {
	if _, err := uc.repo.GetByID(id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

// isLowStock compara stock y umbral en la unidad de stock. Un stock igual al
// umbral también dispara la alerta. Si el umbral usa una unidad que se volvió
// incompatible, se considera que no hay alerta.
func (uc *IngredientUseCase) isLowStock(ing *entity.Ingredient) bool {
	threshold, err := uc.units.Convert(ing.MinThreshold, ing.ThresholdUnit, ing.StockUnit)
	if err != nil {
		return false
	}
	return ing.CurrentStock.LessThanOrEqual(threshold)
}

func (uc *IngredientUseCase) toResponse(ing *entity.Ingredient, categoryName string) *dto.IngredientResponse {
	return &dto.IngredientResponse{
		ID:            ing.ID,
		Name:          ing.Name,
		CategoryID:    ing.CategoryID,
		CategoryName:  categoryName,
		CurrentStock:  ing.CurrentStock,
		StockUnit:     ing.StockUnit,
		MinThreshold:  ing.MinThreshold,
		ThresholdUnit: ing.ThresholdUnit,
		CostPerUnit:   ing.CostPerUnit,
		LowStock:      uc.isLowStock(ing),
		CreatedAt:     ing.CreatedAt,
		UpdatedAt:     ing.UpdatedAt,
	}
}

func (uc *IngredientUseCase) categoryName(id string) string {
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return ""
	}
	return category.Name
}

func (uc *IngredientUseCase) categoryNames() map[string]string {
	names := make(map[string]string)
	categories, err := uc.categoryRepo.List()
	if err != nil {
		return names
	}
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	return names
}
