package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría de ingredientes.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// UpdateCategoryRequest entrada para renombrar una categoría.
type UpdateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// CategoryResponse salida de una categoría con el conteo de ingredientes.
type CategoryResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	IngredientCount int       `json:"ingredient_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
