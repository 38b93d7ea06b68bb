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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una categoría nueva. Name es único.
func (r *CategoryRepo) Create(c *entity.Category) (int64, error) {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO categories (name, image, row_status) VALUES ($1, $2, $3) RETURNING id`,
		c.Name, c.Image, c.RowStatus,
	).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("insert category: %w", err)
	}
	return c.ID, nil
}

// GetByID obtiene una categoría activa por ID; (nil, nil) si no existe.
func (r *CategoryRepo) GetByID(id int64) (*entity.Category, error) {
	var c entity.Category
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, image, row_status FROM categories WHERE id = $1 AND row_status = true`,
		id,
	).Scan(&c.ID, &c.Name, &c.Image, &c.RowStatus)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// GetOrCreateByName devuelve la categoría con ese nombre, creándola si no
// existe. ON CONFLICT resuelve la carrera entre dos altas simultáneas del
// mismo nombre.
func (r *CategoryRepo) GetOrCreateByName(name string) (*entity.Category, error) {
	var c entity.Category
	err := r.q.QueryRow(context.Background(), `
		INSERT INTO categories (name, image, row_status)
		VALUES ($1, '', true)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, name, image, row_status`,
		name,
	).Scan(&c.ID, &c.Name, &c.Image, &c.RowStatus)
	if err != nil {
		return nil, fmt.Errorf("get or create category: %w", err)
	}
	return &c, nil
}

// Update actualiza nombre/imagen/row_status de una categoría.
func (r *CategoryRepo) Update(c *entity.Category) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE categories SET name = $2, image = $3, row_status = $4 WHERE id = $1`,
		c.ID, c.Name, c.Image, c.RowStatus,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// SoftDelete marca la categoría como inactiva.
func (r *CategoryRepo) SoftDelete(id int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE categories SET row_status = false WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete category: %w", err)
	}
	return nil
}

// ListActive lista las categorías activas.
func (r *CategoryRepo) ListActive() ([]*entity.Category, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, image, row_status FROM categories WHERE row_status = true ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Image, &c.RowStatus); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// NamesByIDs devuelve nombre por id para el conjunto dado.
func (r *CategoryRepo) NamesByIDs(ids []int64) (map[int64]string, error) {
	names := make(map[int64]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name FROM categories WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("category names: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("scan category name: %w", err)
		}
		names[id] = name
	}
	return names, rows.Err()
}
