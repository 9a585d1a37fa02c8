// Package stock casos de uso de compras de stock: cada compra suma inventario
// (convertido a la unidad de stock del ingrediente) y recalcula el costo
// promedio ponderado; eliminar una compra revierte esa suma con una resta
// compensatoria explícita.
package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cafeteria-api/internal/application/dto"
	"github.com/tu-usuario/cafeteria-api/internal/domain"
	"github.com/tu-usuario/cafeteria-api/internal/domain/costing"
	"github.com/tu-usuario/cafeteria-api/internal/domain/entity"
	"github.com/tu-usuario/cafeteria-api/internal/domain/repository"
	"github.com/tu-usuario/cafeteria-api/internal/domain/units"
	"github.com/tu-usuario/cafeteria-api/pkg/metrics"
)

// TxRunner ejecuta fn dentro de una transacción con repos atados a la tx.
type TxRunner interface {
	RunStock(ctx context.Context, fn func(
		ingredientRepo repository.IngredientRepository,
		stockUpdateRepo repository.StockUpdateRepository,
	) error) error
}

// StockUseCase registra, lista y elimina compras de stock.
type StockUseCase struct {
	txRunner        TxRunner
	ingredientRepo  repository.IngredientRepository
	stockUpdateRepo repository.StockUpdateRepository
	units           *units.Table
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(txRunner TxRunner, ingredientRepo repository.IngredientRepository, stockUpdateRepo repository.StockUpdateRepository, table *units.Table) *StockUseCase {
	return &StockUseCase{txRunner: txRunner, ingredientRepo: ingredientRepo, stockUpdateRepo: stockUpdateRepo, units: table}
}

// Create registra una compra: bloquea el ingrediente, suma la cantidad
// convertida a su unidad de stock y recalcula el costo promedio ponderado.
// CostPerUnit viene en la unidad de la compra; para promediar se convierte a
// costo por unidad de stock (ej. 5000/kg equivale a 5/g).
func (uc *StockUseCase) Create(ctx context.Context, userID string, in dto.CreateStockUpdateRequest) (*dto.StockUpdateResponse, error) {
	if !in.Quantity.IsPositive() {
		return nil, domain.ErrInvalidQuantity
	}
	if in.CostPerUnit.IsNegative() {
		return nil, domain.ErrInvalidQuantity
	}
	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}

	var update *entity.StockUpdate
	var ingredientName string
	err := uc.txRunner.RunStock(ctx, func(ingredientRepo repository.IngredientRepository, stockUpdateRepo repository.StockUpdateRepository) error {
		ing, err := ingredientRepo.GetForUpdate(in.IngredientID)
		if err != nil {
			return err
		}
		ingredientName = ing.Name

		added, err := uc.units.Convert(in.Quantity, in.Unit, ing.StockUnit)
		if err != nil {
			return err
		}
		// costo por unidad de stock: una unidad de compra equivale a
		// Convert(1, unidad compra, unidad stock) unidades de stock
		perStockUnit, err := uc.units.Convert(decimal.NewFromInt(1), in.Unit, ing.StockUnit)
		if err != nil {
			return err
		}
		costInStockUnit := decimal.Zero
		if perStockUnit.IsPositive() {
			costInStockUnit = in.CostPerUnit.Div(perStockUnit)
		}

		newCost := costing.WeightedAverageCost(ing.CurrentStock, ing.CostPerUnit, added, costInStockUnit)
		newStock := ing.CurrentStock.Add(added)
		if err := ingredientRepo.UpdateStockAndCost(ing.ID, newStock, newCost); err != nil {
			return err
		}

		update = &entity.StockUpdate{
			ID:           uuid.New().String(),
			IngredientID: in.IngredientID,
			Quantity:     in.Quantity,
			Unit:         in.Unit,
			CostPerUnit:  in.CostPerUnit,
			TotalCost:    in.Quantity.Mul(in.CostPerUnit),
			Date:         date,
			Notes:        in.Notes,
			CreatedAt:    time.Now(),
			CreatedBy:    userID,
		}
		return stockUpdateRepo.Create(update)
	})
	if err != nil {
		return nil, err
	}

	metrics.StockUpdatesRecorded.Inc()
	return uc.toResponse(update, ingredientName), nil
}

// GetByID obtiene una compra por ID.
func (uc *StockUseCase) GetByID(id string) (*dto.StockUpdateResponse, error) {
	update, err := uc.stockUpdateRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(update, uc.ingredientName(update.IngredientID)), nil
}

// List lista compras con filtro opcional de fechas y paginación.
func (uc *StockUseCase) List(in dto.ListStockUpdatesRequest) ([]*dto.StockUpdateResponse, error) {
	in.DefaultPage()
	list, err := uc.stockUpdateRepo.List(in.From, in.To, in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string)
	out := make([]*dto.StockUpdateResponse, 0, len(list))
	for _, u := range list {
		name, ok := names[u.IngredientID]
		if !ok {
			name = uc.ingredientName(u.IngredientID)
			names[u.IngredientID] = name
		}
		out = append(out, uc.toResponse(u, name))
	}
	return out, nil
}

// Delete elimina una compra revirtiendo su efecto: resta del stock la cantidad
// que sumó y deshace su aporte al costo promedio. ErrInsufficientStock si la
// resta dejaría el stock negativo (parte de la compra ya se consumió).
func (uc *StockUseCase) Delete(ctx context.Context, id string) error {
	update, err := uc.stockUpdateRepo.GetByID(id)
	if err != nil {
		return err
	}
	return uc.txRunner.RunStock(ctx, func(ingredientRepo repository.IngredientRepository, stockUpdateRepo repository.StockUpdateRepository) error {
		ing, err := ingredientRepo.GetForUpdate(update.IngredientID)
		if err != nil {
			return err
		}
		added, err := uc.units.Convert(update.Quantity, update.Unit, ing.StockUnit)
		if err != nil {
			return err
		}
		remaining := ing.CurrentStock.Sub(added)
		if remaining.IsNegative() {
			return domain.ErrInsufficientStock
		}

		perStockUnit, err := uc.units.Convert(decimal.NewFromInt(1), update.Unit, ing.StockUnit)
		if err != nil {
			return err
		}
		costInStockUnit := decimal.Zero
		if perStockUnit.IsPositive() {
			costInStockUnit = update.CostPerUnit.Div(perStockUnit)
		}

		// deshacer el promedio ponderado: el costo previo a la compra es
		// (stock*costo - añadido*costoAñadido) / (stock - añadido)
		newCost := ing.CostPerUnit
		if remaining.IsPositive() {
			num := ing.CurrentStock.Mul(ing.CostPerUnit).Sub(added.Mul(costInStockUnit))
			if num.IsNegative() {
				num = decimal.Zero
			}
			newCost = num.Div(remaining)
		}
		if err := ingredientRepo.UpdateStockAndCost(ing.ID, remaining, newCost); err != nil {
			return err
		}
		return stockUpdateRepo.Delete(id)
	})
}

func (uc *StockUseCase) toResponse(u *entity.StockUpdate, ingredientName string) *dto.StockUpdateResponse {
	return &dto.StockUpdateResponse{
		ID:             u.ID,
		IngredientID:   u.IngredientID,
		IngredientName: ingredientName,
		Quantity:       u.Quantity,
		Unit:           u.Unit,
		CostPerUnit:    u.CostPerUnit,
		TotalCost:      u.TotalCost,
		Date:           u.Date,
		Notes:          u.Notes,
		CreatedAt:      u.CreatedAt,
	}
}

func (uc *StockUseCase) ingredientName(id string) string {
	ing, err := uc.ingredientRepo.GetByID(id)
	if err != nil {
		return ""
	}
	return ing.Name
}
