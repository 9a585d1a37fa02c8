package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/cafeteria-api/internal/domain"
	"github.com/tu-usuario/cafeteria-api/internal/domain/entity"
	"github.com/tu-usuario/cafeteria-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
// Las líneas de receta viven en recipe_lines y se reemplazan en bloque al
// actualizar el producto.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto con su receta.
func (r *ProductRepo) Create(p *entity.Product) error {
	ctx := context.Background()
	query := `
		INSERT INTO products (id, name, description, category, selling_price, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Description, p.Category, p.SellingPrice, p.IsActive, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return r.insertRecipe(ctx, p)
}

// GetByID obtiene un producto con su receta. ErrNotFound si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	ctx := context.Background()
	query := `
		SELECT id, name, description, category, selling_price, is_active, created_at, updated_at
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Category, &p.SellingPrice, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	recipe, err := r.loadRecipe(ctx, []string{p.ID})
	if err != nil {
		return nil, err
	}
	p.Recipe = recipe[p.ID]
	return &p, nil
}

// List lista productos ordenados por nombre, con sus recetas, y paginación.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	ctx := context.Background()
	query := `
		SELECT id, name, description, category, selling_price, is_active, created_at, updated_at
		FROM products ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	var ids []string
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.SellingPrice, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	recipes, err := r.loadRecipe(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, p := range list {
		p.Recipe = recipes[p.ID]
	}
	return list, nil
}

// ListCategories devuelve las categorías de menú distintas en uso.
func (r *ProductRepo) ListCategories() ([]string, error) {
	rows, err := r.q.Query(context.Background(), `SELECT DISTINCT category FROM products ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("list product categories: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan product category: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Update actualiza el producto y reemplaza su receta completa.
func (r *ProductRepo) Update(p *entity.Product) error {
	ctx := context.Background()
	query := `
		UPDATE products
		SET name = $2, description = $3, category = $4, selling_price = $5, is_active = $6, updated_at = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Description, p.Category, p.SellingPrice, p.IsActive, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM recipe_lines WHERE product_id = $1`, p.ID); err != nil {
		return fmt.Errorf("delete recipe lines: %w", err)
	}
	return r.insertRecipe(ctx, p)
}

// Delete elimina un producto y su receta.
func (r *ProductRepo) Delete(id string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM recipe_lines WHERE product_id = $1`, id); err != nil {
		return fmt.Errorf("delete recipe lines: %w", err)
	}
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductRepo) insertRecipe(ctx context.Context, p *entity.Product) error {
	for _, line := range p.Recipe {
		query := `
			INSERT INTO recipe_lines (id, product_id, ingredient_id, quantity, unit)
			VALUES ($1, $2, $3, $4, $5)`
		if _, err := r.q.Exec(ctx, query, line.ID, line.ProductID, line.IngredientID, line.Quantity, line.Unit); err != nil {
			return fmt.Errorf("insert recipe line: %w", err)
		}
	}
	return nil
}

// loadRecipe carga las líneas de receta de varios productos en una sola consulta.
func (r *ProductRepo) loadRecipe(ctx context.Context, productIDs []string) (map[string][]entity.RecipeLine, error) {
	out := make(map[string][]entity.RecipeLine, len(productIDs))
	if len(productIDs) == 0 {
		return out, nil
	}
	query := `
		SELECT id, product_id, ingredient_id, quantity, unit
		FROM recipe_lines WHERE product_id = ANY($1) ORDER BY id`
	rows, err := r.q.Query(ctx, query, productIDs)
	if err != nil {
		return nil, fmt.Errorf("load recipe lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var l entity.RecipeLine
		if err := rows.Scan(&l.ID, &l.ProductID, &l.IngredientID, &l.Quantity, &l.Unit); err != nil {
			return nil, fmt.Errorf("scan recipe line: %w", err)
		}
		out[l.ProductID] = append(out[l.ProductID], l)
	}
	return out, rows.Err()
}
