package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockUpdate registra una compra de stock de un ingrediente.
// Quantity y CostPerUnit se guardan en la unidad de la compra (Unit), que debe
// ser compatible con la unidad de stock del ingrediente. Al crearse suma stock
// (convertido) y recalcula el costo promedio; al eliminarse se revierte esa
// suma con una resta compensatoria explícita.
type StockUpdate struct {
	ID           string
	IngredientID string
	Quantity     decimal.Decimal
	Unit         string
	CostPerUnit  decimal.Decimal // costo por unidad de compra
	TotalCost    decimal.Decimal // Quantity * CostPerUnit
	Date         time.Time
	Notes        string
	CreatedAt    time.Time
	CreatedBy    string
}
