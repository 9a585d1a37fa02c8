package repository

import "github.com/tu-usuario/cafeteria-api/internal/domain/entity"

// CategoryRepository puerto de persistencia para IngredientCategory.
type CategoryRepository interface {
	Create(category *entity.IngredientCategory) error
	GetByID(id string) (*entity.IngredientCategory, error)
	GetByName(name string) (*entity.IngredientCategory, error)
	List() ([]*entity.IngredientCategory, error)
	Update(category *entity.IngredientCategory) error
	// CountIngredients devuelve cuántos ingredientes referencian la categoría
	// (no se puede eliminar una categoría con ingredientes).
	CountIngredients(id string) (int, error)
	Delete(id string) error
}
