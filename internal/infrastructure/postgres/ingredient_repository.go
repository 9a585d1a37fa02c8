package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cafeteria-api/internal/domain"
	"github.com/tu-usuario/cafeteria-api/internal/domain/entity"
	"github.com/tu-usuario/cafeteria-api/internal/domain/repository"
)

var _ repository.IngredientRepository = (*IngredientRepo)(nil)

const ingredientColumns = `id, name, category_id, current_stock, stock_unit, min_threshold, threshold_unit, cost_per_unit, created_at, updated_at`

// IngredientRepo implementación del puerto IngredientRepository sobre PostgreSQL (usable con pool o tx).
type IngredientRepo struct {
	q Querier
}

// NewIngredientRepository construye el adaptador de persistencia para ingredientes. Pasar pool o tx (Querier).
func NewIngredientRepository(q Querier) *IngredientRepo {
	return &IngredientRepo{q: q}
}

// Create persiste un nuevo ingrediente.
func (r *IngredientRepo) Create(ing *entity.Ingredient) error {
	query := `
		INSERT INTO ingredients (id, name, category_id, current_stock, stock_unit, min_threshold, threshold_unit, cost_per_unit, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		ing.ID, ing.Name, ing.CategoryID, ing.CurrentStock, ing.StockUnit,
		ing.MinThreshold, ing.ThresholdUnit, ing.CostPerUnit, ing.CreatedAt, ing.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert ingredient: %w", err)
	}
	return nil
}

// GetByID obtiene un ingrediente por ID. ErrNotFound si no existe.
func (r *IngredientRepo) GetByID(id string) (*entity.Ingredient, error) {
	query := `SELECT ` + ingredientColumns + ` FROM ingredients WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate obtiene un ingrediente bloqueando su fila (SELECT FOR UPDATE).
// Solo tiene sentido dentro de una transacción.
func (r *IngredientRepo) GetForUpdate(id string) (*entity.Ingredient, error) {
	query := `SELECT ` + ingredientColumns + ` FROM ingredients WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// List lista todos los ingredientes ordenados por nombre.
func (r *IngredientRepo) List() ([]*entity.Ingredient, error) {
	query := `SELECT ` + ingredientColumns + ` FROM ingredients ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	defer rows.Close()

	var list []*entity.Ingredient
	for rows.Next() {
		ing, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, ing)
	}
	return list, rows.Err()
}

// GetByIDs devuelve un mapa id -> ingrediente para los IDs dados.
func (r *IngredientRepo) GetByIDs(ids []string) (map[string]*entity.Ingredient, error) {
	out := make(map[string]*entity.Ingredient, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	query := `SELECT ` + ingredientColumns + ` FROM ingredients WHERE id = ANY($1)`
	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return nil, fmt.Errorf("get ingredients by ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		ing, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		out[ing.ID] = ing
	}
	return out, rows.Err()
}

// Update actualiza los campos editables de un ingrediente.
func (r *IngredientRepo) Update(ing *entity.Ingredient) error {
	query := `
		UPDATE ingredients
		SET name = $2, category_id = $3, current_stock = $4, stock_unit = $5,
		    min_threshold = $6, threshold_unit = $7, cost_per_unit = $8, updated_at = $9
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		ing.ID, ing.Name, ing.CategoryID, ing.CurrentStock, ing.StockUnit,
		ing.MinThreshold, ing.ThresholdUnit, ing.CostPerUnit, ing.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update ingredient: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStockAndCost actualiza stock y costo promedio en una sola sentencia
// (se usa dentro de las transacciones de ventas y compras).
func (r *IngredientRepo) UpdateStockAndCost(id string, stock, costPerUnit decimal.Decimal) error {
	query := `UPDATE ingredients SET current_stock = $2, cost_per_unit = $3, updated_at = NOW() WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, id, stock, costPerUnit)
	if err != nil {
		return fmt.Errorf("update ingredient stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un ingrediente.
func (r *IngredientRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM ingredients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ingredient: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *IngredientRepo) scanOne(row pgx.Row) (*entity.Ingredient, error) {
	var ing entity.Ingredient
	err := row.Scan(
		&ing.ID, &ing.Name, &ing.CategoryID, &ing.CurrentStock, &ing.StockUnit,
		&ing.MinThreshold, &ing.ThresholdUnit, &ing.CostPerUnit, &ing.CreatedAt, &ing.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get ingredient: %w", err)
	}
	return &ing, nil
}

func (r *IngredientRepo) scanRow(rows pgx.Rows) (*entity.Ingredient, error) {
	var ing entity.Ingredient
	err := rows.Scan(
		&ing.ID, &ing.Name, &ing.CategoryID, &ing.CurrentStock, &ing.StockUnit,
		&ing.MinThreshold, &ing.ThresholdUnit, &ing.CostPerUnit, &ing.CreatedAt, &ing.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scan ingredient: %w", err)
	}
	return &ing, nil
}
