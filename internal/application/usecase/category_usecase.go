package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/cafeteria-api/internal/application/dto"
	"github.com/tu-usuario/cafeteria-api/internal/domain"
	"github.com/tu-usuario/cafeteria-api/internal/domain/entity"
	"github.com/tu-usuario/cafeteria-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías de ingredientes.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría. ErrDuplicate si el nombre ya existe.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	existing, _ := uc.repo.GetByName(in.Name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	category := &entity.IngredientCategory{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return uc.toResponse(category), nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(category), nil
}

// List lista todas las categorías con su conteo de ingredientes.
func (uc *CategoryUseCase) List() ([]*dto.CategoryResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, uc.toResponse(c))
	}
	return out, nil
}

// Update renombra una categoría. ErrDuplicate si otra categoría ya usa el nombre.
func (uc *CategoryUseCase) Update(id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing, _ := uc.repo.GetByName(in.Name); existing != nil && existing.ID != id {
		return nil, domain.ErrDuplicate
	}
	category.Name = in.Name
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return uc.toResponse(category), nil
}

// Delete elimina una categoría. ErrConflict si tiene ingredientes asociados.
func (uc *CategoryUseCase) Delete(id string) error {
	if _, err := uc.repo.GetByID(id); err != nil {
		return err
	}
	count, err := uc.repo.CountIngredients(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrConflict
	}
	return uc.repo.Delete(id)
}

func (uc *CategoryUseCase) toResponse(c *entity.IngredientCategory) *dto.CategoryResponse {
	count, _ := uc.repo.CountIngredients(c.ID)
	return &dto.CategoryResponse{
		ID:              c.ID,
		Name:            c.Name,
		IngredientCount: count,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

// SeedDefaults crea las categorías por defecto que aún no existan.
func (uc *CategoryUseCase) SeedDefaults() error {
	for _, name := range entity.DefaultCategories {
		if existing, _ := uc.repo.GetByName(name); existing != nil {
			continue
		}
		now := time.Now()
		category := &entity.IngredientCategory{
			ID:        uuid.New().String(),
			Name:      name,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uc.repo.Create(category); err != nil {
			return err
		}
	}
	return nil
}
