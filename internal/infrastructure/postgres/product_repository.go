package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventory-control-api/internal/domain"
	"github.com/jhoicas/inventory-control-api/internal/domain/entity"
	"github.com/jhoicas/inventory-control-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productViewColumns = `
	p.id, p.code, p.name, COALESCE(p.description, ''), p.category_id, p.supplier_id,
	p.unit_price, p.reorder_level, COALESCE(p.image_url, ''), p.is_active, p.created_at, p.updated_at,
	COALESCE(c.name, ''), COALESCE(s.name, ''),
	COALESCE(SUM(l.quantity), 0)::int`

const productViewGroupBy = `
	GROUP BY p.id, p.code, p.name, p.description, p.category_id, p.supplier_id,
	         p.unit_price, p.reorder_level, p.image_url, p.is_active, p.created_at, p.updated_at,
	         c.name, s.name`

// Create persiste un nuevo producto y asigna su ID.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (code, name, description, category_id, supplier_id, unit_price, reorder_level, image_url, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		product.Code, product.Name, product.Description, product.CategoryID, product.SupplierID,
		product.UnitPrice, product.ReorderLevel, product.ImageURL, product.IsActive,
		product.CreatedAt, product.UpdatedAt,
	).Scan(&product.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: code ya existe", domain.ErrDuplicate)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: categoría o proveedor inexistente", domain.ErrNotFound)
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID con nombres desnormalizados y stock total.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*repository.ProductView, error) {
	query := `
		SELECT ` + productViewColumns + `
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		LEFT JOIN suppliers s ON s.id = p.supplier_id
		LEFT JOIN stock_levels l ON l.product_id = p.id
		WHERE p.id = $1` + productViewGroupBy
	var v repository.ProductView
	err := r.q.QueryRow(ctx, query, id).Scan(
		&v.Product.ID, &v.Product.Code, &v.Product.Name, &v.Product.Description,
		&v.Product.CategoryID, &v.Product.SupplierID, &v.Product.UnitPrice,
		&v.Product.ReorderLevel, &v.Product.ImageURL, &v.Product.IsActive,
		&v.Product.CreatedAt, &v.Product.UpdatedAt,
		&v.CategoryName, &v.SupplierName, &v.TotalStock,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &v, nil
}

// Update actualiza un producto existente.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET code = $2, name = $3, description = $4, category_id = $5, supplier_id = $6,
		    unit_price = $7, reorder_level = $8, image_url = $9, is_active = $10, updated_at = $11
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		product.ID, product.Code, product.Name, product.Description,
		product.CategoryID, product.SupplierID, product.UnitPrice,
		product.ReorderLevel, product.ImageURL, product.IsActive, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: code ya existe", domain.ErrDuplicate)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: categoría o proveedor inexistente", domain.ErrNotFound)
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve los productos activos con nombres y stock total, ordenados por nombre.
func (r *ProductRepo) List(ctx context.Context) ([]*repository.ProductView, error) {
	query := `
		SELECT ` + productViewColumns + `
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		LEFT JOIN suppliers s ON s.id = p.supplier_id
		LEFT JOIN stock_levels l ON l.product_id = p.id
		WHERE p.is_active = TRUE` + productViewGroupBy + `
		ORDER BY p.name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*repository.ProductView
	for rows.Next() {
		var v repository.ProductView
		if err := rows.Scan(
			&v.Product.ID, &v.Product.Code, &v.Product.Name, &v.Product.Description,
			&v.Product.CategoryID, &v.Product.SupplierID, &v.Product.UnitPrice,
			&v.Product.ReorderLevel, &v.Product.ImageURL, &v.Product.IsActive,
			&v.Product.CreatedAt, &v.Product.UpdatedAt,
			&v.CategoryName, &v.SupplierName, &v.TotalStock,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// Deactivate marca el producto como inactivo (soft delete).
func (r *ProductRepo) Deactivate(ctx context.Context, id int64) error {
	query := `UPDATE products SET is_active = FALSE, updated_at = now() WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deactivate product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
