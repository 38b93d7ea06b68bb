package dto

import "time"

// CreateDeleteRequestRequest entrada para solicitar la baja de un producto.
type CreateDeleteRequestRequest struct {
	ProductID int64  `json:"product_id" validate:"required"`
	Message   string `json:"message"`
}

// ResolveRequestRequest entrada para resolver una solicitud pendiente.
// Status solo admite approved o rejected.
type ResolveRequestRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

// DeleteRequestResponse salida de una solicitud de baja.
type DeleteRequestResponse struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	ProductID  int64     `json:"product_id"`
	Message    string    `json:"message"`
	ApproverID *int64    `json:"approver_id"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateProductRequestRequest entrada para solicitar reposición de producto.
type CreateProductRequestRequest struct {
	ProductID int64 `json:"product_id" validate:"required"`
	Quantity  int   `json:"quantity" validate:"required,min=1"`
}

// ProductRequestResponse salida de una solicitud de reposición.
type ProductRequestResponse struct {
	ID                int64     `json:"id"`
	UserID            int64     `json:"user_id"`
	ProductID         int64     `json:"product_id"`
	Quantity          int       `json:"quantity"`
	ApprovedManagerID *int64    `json:"approved_manager_id"`
	ApprovedAdminID   *int64    `json:"approved_admin_id"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
