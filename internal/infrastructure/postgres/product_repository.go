package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"stockpanel/internal/domain"
	"stockpanel/internal/domain/entity"
	"stockpanel/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productCols = `p.id, p.name, COALESCE(p.description, ''), p.sku, COALESCE(p.barcode, ''),
		COALESCE(p.category_id::text, ''), COALESCE(p.supplier_id::text, ''),
		p.purchase_price, p.sale_price, p.current_stock, p.min_stock, p.max_stock,
		p.unit, COALESCE(p.image_url, ''), p.is_active, p.created_at, p.updated_at`

func scanProduct(row pgx.Row, p *entity.Product) error {
	return row.Scan(
		&p.ID, &p.Name, &p.Description, &p.SKU, &p.Barcode,
		&p.CategoryID, &p.SupplierID,
		&p.PurchasePrice, &p.SalePrice, &p.CurrentStock, &p.MinStock, &p.MaxStock,
		&p.Unit, &p.ImageURL, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
}

// Create persiste un nuevo producto. SKU duplicado devuelve domain.ErrDuplicate.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (id, name, description, sku, barcode, category_id, supplier_id,
			purchase_price, sale_price, current_stock, min_stock, max_stock, unit, image_url,
			is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Description, p.SKU, p.Barcode,
		nullIfEmpty(p.CategoryID), nullIfEmpty(p.SupplierID),
		p.PurchasePrice, p.SalePrice, p.CurrentStock, p.MinStock, p.MaxStock,
		p.Unit, p.ImageURL, p.IsActive, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productCols + ` FROM products p WHERE p.id = $1`
	var p entity.Product
	if err := scanProduct(r.q.QueryRow(ctx, query, id), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// GetBySKU obtiene un producto por su SKU.
func (r *ProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	query := `SELECT ` + productCols + ` FROM products p WHERE p.sku = $1`
	var p entity.Product
	if err := scanProduct(r.q.QueryRow(ctx, query, sku), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by sku: %w", err)
	}
	return &p, nil
}

// Update actualiza un producto existente con el payload completo del formulario.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, sku = $4, barcode = $5,
			category_id = $6, supplier_id = $7, purchase_price = $8, sale_price = $9,
			current_stock = $10, min_stock = $11, max_stock = $12, unit = $13,
			image_url = $14, is_active = $15, updated_at = $16
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Description, p.SKU, p.Barcode,
		nullIfEmpty(p.CategoryID), nullIfEmpty(p.SupplierID),
		p.PurchasePrice, p.SalePrice, p.CurrentStock, p.MinStock, p.MaxStock,
		p.Unit, p.ImageURL, p.IsActive, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID (movimientos y alertas caen en cascada).
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// List lista todos los productos con nombres de categoría y proveedor resueltos,
// más recientes primero.
func (r *ProductRepo) List(ctx context.Context) ([]repository.ProductWithRefs, error) {
	query := `
		SELECT ` + productCols + `,
			COALESCE(c.name, '') AS category_name,
			COALESCE(s.name, '') AS supplier_name
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		LEFT JOIN suppliers s ON s.id = p.supplier_id
		ORDER BY p.created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []repository.ProductWithRefs
	for rows.Next() {
		var p repository.ProductWithRefs
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.SKU, &p.Barcode,
			&p.CategoryID, &p.SupplierID,
			&p.PurchasePrice, &p.SalePrice, &p.CurrentStock, &p.MinStock, &p.MaxStock,
			&p.Unit, &p.ImageURL, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
			&p.CategoryName, &p.SupplierName,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// ListActive lista los productos activos ordenados por nombre.
func (r *ProductRepo) ListActive(ctx context.Context) ([]*entity.Product, error) {
	query := `SELECT ` + productCols + ` FROM products p WHERE p.is_active ORDER BY p.name ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list active products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
