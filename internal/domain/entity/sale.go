package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale registra una venta de un producto del menú.
// Revenue, Cost y Profit son una foto al momento de la venta (precio y costo
// de receta vigentes); no se recalculan si el producto cambia después.
type Sale struct {
	ID        string
	Date      time.Time
	ProductID string
	Quantity  decimal.Decimal
	Revenue   decimal.Decimal // Quantity * precio de venta vigente
	Cost      decimal.Decimal // Quantity * costo de receta vigente
	Profit    decimal.Decimal // Revenue - Cost
	CreatedAt time.Time
	CreatedBy string
}
