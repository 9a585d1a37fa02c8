package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ingredient representa un insumo del inventario de la cafetería.
// CurrentStock se expresa en StockUnit; MinThreshold puede usar otra unidad
// de la misma clase base (ej. stock en "g", umbral en "kg").
// CostPerUnit es el costo promedio ponderado por unidad de stock; se recalcula
// con cada compra registrada.
type Ingredient struct {
	ID            string
	Name          string
	CategoryID    string
	CurrentStock  decimal.Decimal
	StockUnit     string
	MinThreshold  decimal.Decimal
	ThresholdUnit string
	CostPerUnit   decimal.Decimal // costo por unidad de stock (promedio ponderado)
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
