package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ids-inventory-api/internal/domain"
	"github.com/jhoicas/ids-inventory-api/internal/domain/entity"
	"github.com/jhoicas/ids-inventory-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, code, qr_code, name, description, category_id, reorder_point, brand, weight, dimensions, images, created_by, updated_by, created_at, updated_at, row_status`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
// Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto y devuelve su id.
func (r *ProductRepo) Create(p *entity.Product) (int64, error) {
	query := `
		INSERT INTO products (code, qr_code, name, description, category_id, reorder_point, brand, weight, dimensions, images, created_by, updated_by, created_at, updated_at, row_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		p.Code, p.QRCode, p.Name, p.Description, p.CategoryID, p.ReorderPoint,
		p.Brand, p.Weight, p.Dimensions, p.Images,
		p.CreatedBy, p.UpdatedBy, p.CreatedAt, p.UpdatedAt, p.RowStatus,
	).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("insert product: %w", err)
	}
	return p.ID, nil
}

// GetByID obtiene un producto por ID sin importar row_status.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	return r.get(`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
}

// GetActiveByID obtiene un producto activo por ID; (nil, nil) si no existe o
// está inactivo.
func (r *ProductRepo) GetActiveByID(id int64) (*entity.Product, error) {
	return r.get(`SELECT `+productColumns+` FROM products WHERE id = $1 AND row_status = true`, id)
}

func (r *ProductRepo) get(query string, args ...any) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&p.ID, &p.Code, &p.QRCode, &p.Name, &p.Description, &p.CategoryID,
		&p.ReorderPoint, &p.Brand, &p.Weight, &p.Dimensions, &p.Images,
		&p.CreatedBy, &p.UpdatedBy, &p.CreatedAt, &p.UpdatedAt, &p.RowStatus,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update actualiza un producto existente (incluye updated_by/updated_at).
func (r *ProductRepo) Update(p *entity.Product) error {
	query := `
		UPDATE products
		SET code = $2, qr_code = $3, name = $4, description = $5, category_id = $6,
		    reorder_point = $7, brand = $8, weight = $9, dimensions = $10, images = $11,
		    updated_by = $12, updated_at = $13
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Code, p.QRCode, p.Name, p.Description, p.CategoryID,
		p.ReorderPoint, p.Brand, p.Weight, p.Dimensions, p.Images,
		p.UpdatedBy, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// SoftDelete marca el producto como inactivo.
func (r *ProductRepo) SoftDelete(id int64, updatedBy string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET row_status = false, updated_by = $2, updated_at = now() WHERE id = $1`,
		id, updatedBy,
	)
	if err != nil {
		return fmt.Errorf("soft delete product: %w", err)
	}
	return nil
}

// ListActive lista los productos activos.
func (r *ProductRepo) ListActive() ([]*entity.Product, error) {
	return r.list(`SELECT ` + productColumns + ` FROM products WHERE row_status = true ORDER BY id`)
}

// SearchByName busca productos activos por subcadena del nombre
// (case-insensitive).
func (r *ProductRepo) SearchByName(pattern string) ([]*entity.Product, error) {
	return r.list(
		`SELECT `+productColumns+` FROM products WHERE row_status = true AND name ILIKE '%' || $1 || '%' ORDER BY id`,
		pattern,
	)
}

func (r *ProductRepo) list(query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.Code, &p.QRCode, &p.Name, &p.Description, &p.CategoryID,
			&p.ReorderPoint, &p.Brand, &p.Weight, &p.Dimensions, &p.Images,
			&p.CreatedBy, &p.UpdatedBy, &p.CreatedAt, &p.UpdatedAt, &p.RowStatus,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
