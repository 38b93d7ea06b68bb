package repository

import "github.com/jhoicas/ids-inventory-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product.
// Los Get devuelven (nil, nil) cuando la fila no existe.
type ProductRepository interface {
	Create(product *entity.Product) (int64, error)
	GetByID(id int64) (*entity.Product, error)
	// GetActiveByID devuelve el producto solo si row_status=true.
	GetActiveByID(id int64) (*entity.Product, error)
	Update(product *entity.Product) error
	// SoftDelete marca el producto como inactivo (row_status=false).
	SoftDelete(id int64, updatedBy string) error
	ListActive() ([]*entity.Product, error)
	// SearchByName busca productos activos cuyo nombre contenga el patrón
	// (case-insensitive).
	SearchByName(pattern string) ([]*entity.Product, error)
}
