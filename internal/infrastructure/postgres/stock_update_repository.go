package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/cafeteria-api/internal/domain"
	"github.com/tu-usuario/cafeteria-api/internal/domain/entity"
	"github.com/tu-usuario/cafeteria-api/internal/domain/repository"
)

var _ repository.StockUpdateRepository = (*StockUpdateRepo)(nil)

// StockUpdateRepo implementación del puerto StockUpdateRepository sobre PostgreSQL.
type StockUpdateRepo struct {
	q Querier
}

// NewStockUpdateRepository construye el adaptador de persistencia para compras de stock.
func NewStockUpdateRepository(q Querier) *StockUpdateRepo {
	return &StockUpdateRepo{q: q}
}

// Create persiste una compra de stock.
func (r *StockUpdateRepo) Create(u *entity.StockUpdate) error {
	query := `
		INSERT INTO stock_updates (id, ingredient_id, quantity, unit, cost_per_unit, total_cost, date, notes, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.IngredientID, u.Quantity, u.Unit, u.CostPerUnit, u.TotalCost, u.Date, u.Notes, u.CreatedAt, u.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert stock update: %w", err)
	}
	return nil
}

// GetByID obtiene una compra por ID. ErrNotFound si no existe.
func (r *StockUpdateRepo) GetByID(id string) (*entity.StockUpdate, error) {
	query := `
		SELECT id, ingredient_id, quantity, unit, cost_per_unit, total_cost, date, notes, created_at, created_by
		FROM stock_updates WHERE id = $1`
	var u entity.StockUpdate
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&u.ID, &u.IngredientID, &u.Quantity, &u.Unit, &u.CostPerUnit, &u.TotalCost, &u.Date, &u.Notes, &u.CreatedAt, &u.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get stock update: %w", err)
	}
	return &u, nil
}

// List lista compras con filtro opcional de fechas (más recientes primero).
func (r *StockUpdateRepo) List(from, to *time.Time, limit, offset int) ([]*entity.StockUpdate, error) {
	query := `
		SELECT id, ingredient_id, quantity, unit, cost_per_unit, total_cost, date, notes, created_at, created_by
		FROM stock_updates
		WHERE ($1::timestamptz IS NULL OR date >= $1)
		  AND ($2::timestamptz IS NULL OR date < $2)
		ORDER BY date DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock updates: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockUpdate
	for rows.Next() {
		var u entity.StockUpdate
		if err := rows.Scan(&u.ID, &u.IngredientID, &u.Quantity, &u.Unit, &u.CostPerUnit, &u.TotalCost, &u.Date, &u.Notes, &u.CreatedAt, &u.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan stock update: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Delete elimina una compra de stock.
func (r *StockUpdateRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM stock_updates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock update: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
