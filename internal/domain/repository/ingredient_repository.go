package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cafeteria-api/internal/domain/entity"
)

// IngredientRepository define el puerto de persistencia para Ingredient (DIP).
// GetForUpdate bloquea la fila (SELECT FOR UPDATE) y solo tiene sentido dentro
// de una transacción: las mutaciones de stock deben ser read-modify-write
// atómicas para no perder actualizaciones concurrentes.
type IngredientRepository interface {
	Create(ingredient *entity.Ingredient) error
	GetByID(id string) (*entity.Ingredient, error)
	GetForUpdate(id string) (*entity.Ingredient, error)
	List() ([]*entity.Ingredient, error)
	GetByIDs(ids []string) (map[string]*entity.Ingredient, error)
	Update(ingredient *entity.Ingredient) error
	UpdateStockAndCost(id string, stock, costPerUnit decimal.Decimal) error
	Delete(id string) error
}
