package entity

import "time"

// IngredientCategory agrupa ingredientes (ej. "Coffee Beans", "Milk & Dairy").
// El nombre es único; no puede eliminarse una categoría con ingredientes asociados.
type IngredientCategory struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultCategories categorías sembradas al arrancar si no existen.
var DefaultCategories = []string{"Coffee Beans", "Milk & Dairy", "Syrups", "Tea", "Other"}
