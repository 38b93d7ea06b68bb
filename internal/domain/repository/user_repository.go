package repository

import "github.com/jhoicas/ids-inventory-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para las cuentas de acceso.
type UserRepository interface {
	Create(user *entity.User) (int64, error)
	GetByID(id int64) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	Update(user *entity.User) error
	List() ([]*entity.User, error)
}

// FeatureRepository define el puerto para el paquete de capacidades por
// usuario (una fila por usuario).
type FeatureRepository interface {
	Upsert(features *entity.FeatureSet) (int64, error)
	GetByUser(userID int64) (*entity.FeatureSet, error)
}
