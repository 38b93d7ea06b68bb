package repository

import "github.com/jhoicas/ids-inventory-api/internal/domain/entity"

// ApprovalRepository define el puerto para los registros de aprobación
// (solicitudes de baja y de reposición de producto).
type ApprovalRepository interface {
	CreateDeleteRequest(request *entity.DeleteRequest) (int64, error)
	GetDeleteRequest(id int64) (*entity.DeleteRequest, error)
	UpdateDeleteRequestStatus(id int64, status string, approverID *int64) error
	ListDeleteRequests() ([]*entity.DeleteRequest, error)

	CreateProductRequest(request *entity.ProductRequest) (int64, error)
	GetProductRequest(id int64) (*entity.ProductRequest, error)
	UpdateProductRequestStatus(id int64, status string, managerID, adminID *int64) error
	ListProductRequests() ([]*entity.ProductRequest, error)
}
