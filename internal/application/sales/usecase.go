// Package sales casos de uso de ventas: registrar una venta descuenta del
// inventario las cantidades de la receta (convertidas a la unidad de stock de
// cada ingrediente) dentro de una única transacción.
package sales

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
	Run(ctx context.Context, fn func(
		ingredientRepo repository.IngredientRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// SaleUseCase registra, lista y elimina ventas.
type SaleUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
	units       *units.Table
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(txRunner TxRunner, productRepo repository.ProductRepository, saleRepo repository.SaleRepository, table *units.Table) *SaleUseCase {
	return &SaleUseCase{txRunner: txRunner, productRepo: productRepo, saleRepo: saleRepo, units: table}
}

// Register registra una venta: bloquea cada ingrediente de la receta
// (SELECT FOR UPDATE), descuenta la cantidad convertida a su unidad de stock
// y persiste la venta con revenue, cost y profit congelados al momento.
// Si algún ingrediente no alcanza devuelve ErrInsufficientStock y no descuenta
// nada, salvo que AllowNegativeStock esté activo (el stock puede quedar
// negativo; la decisión es del llamador).
func (uc *SaleUseCase) Register(ctx context.Context, userID string, in dto.RegisterSaleRequest) (*dto.SaleResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, domain.ErrConflict
	}

	qty := decimal.NewFromInt(int64(in.Quantity))
	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}

	var sale *entity.Sale
	err = uc.txRunner.Run(ctx, func(ingredientRepo repository.IngredientRepository, saleRepo repository.SaleRepository) error {
		unitCost := decimal.Zero
		for _, line := range product.Recipe {
			ing, err := ingredientRepo.GetForUpdate(line.IngredientID)
			if err != nil {
				return err
			}
			lineCost, err := costing.LineCost(line, ing, uc.units)
			if err != nil {
				return err
			}
			unitCost = unitCost.Add(lineCost)

			needed, err := uc.units.Convert(line.Quantity.Mul(qty), line.Unit, ing.StockUnit)
			if err != nil {
				return err
			}
			remaining := ing.CurrentStock.Sub(needed)
			if remaining.IsNegative() && !in.AllowNegativeStock {
				metrics.InsufficientStockRejections.Inc()
				return domain.ErrInsufficientStock
			}
			if err := ingredientRepo.UpdateStockAndCost(ing.ID, remaining, ing.CostPerUnit); err != nil {
				return err
			}
		}

		revenue := product.SellingPrice.Mul(qty)
		cost := unitCost.Mul(qty)
		sale = &entity.Sale{
			ID:        uuid.New().String(),
			Date:      date,
			ProductID: product.ID,
			Quantity:  qty,
			Revenue:   revenue,
			Cost:      cost,
			Profit:    revenue.Sub(cost),
			CreatedAt: time.Now(),
			CreatedBy: userID,
		}
		return saleRepo.Create(sale)
	})
	if err != nil {
		return nil, err
	}

	metrics.SalesRecorded.Inc()
	return uc.toResponse(sale, product.Name), nil
}

// GetByID obtiene una venta por ID.
func (uc *SaleUseCase) GetByID(id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(sale, uc.productName(sale.ProductID)), nil
}

// List lista ventas con filtro opcional de fechas y paginación.
func (uc *SaleUseCase) List(in dto.ListSalesRequest) ([]*dto.SaleResponse, error) {
	in.DefaultPage()
	list, err := uc.saleRepo.List(in.From, in.To, in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string)
	out := make([]*dto.SaleResponse, 0, len(list))
	for _, s := range list {
		name, ok := names[s.ProductID]
		if !ok {
			name = uc.productName(s.ProductID)
			names[s.ProductID] = name
		}
		out = append(out, uc.toResponse(s, name))
	}
	return out, nil
}

// Delete elimina una venta. No repone el stock descontado: los ingredientes
// ya se consumieron; la corrección de inventario se hace con una compra de
// stock explícita si corresponde.
func (uc *SaleUseCase) Delete(id string) error {
	if _, err := uc.saleRepo.GetByID(id); err != nil {
		return err
	}
	return uc.saleRepo.Delete(id)
}

func (uc *SaleUseCase) toResponse(s *entity.Sale, productName string) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:          s.ID,
		Date:        s.Date,
		ProductID:   s.ProductID,
		ProductName: productName,
		Quantity:    int(s.Quantity.IntPart()),
		Revenue:     s.Revenue,
		Cost:        s.Cost,
		Profit:      s.Profit,
		CreatedAt:   s.CreatedAt,
	}
}

func (uc *SaleUseCase) productName(id string) string {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return ""
	}
	return product.Name
}
