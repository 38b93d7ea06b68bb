package repository

import "github.com/jhoicas/ids-inventory-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category.
type CategoryRepository interface {
	Create(category *entity.Category) (int64, error)
	GetByID(id int64) (*entity.Category, error)
	// GetOrCreateByName devuelve la categoría con ese nombre, creándola si no
	// existe (alta implícita al crear productos con categoría nueva).
	GetOrCreateByName(name string) (*entity.Category, error)
	Update(category *entity.Category) error
	SoftDelete(id int64) error
	ListActive() ([]*entity.Category, error)
	// NamesByIDs devuelve nombre por id para el conjunto dado (proyecciones).
	NamesByIDs(ids []int64) (map[int64]string, error)
}
