package repository

import "github.com/tu-usuario/cafeteria-api/internal/domain/entity"

// ProductRepository puerto de persistencia para Product y sus líneas de receta.
// Create y Update persisten el producto junto con su receta completa (las
// líneas se reemplazan en bloque al actualizar).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
	ListCategories() ([]string, error)
	Update(product *entity.Product) error
	Delete(id string) error
}
