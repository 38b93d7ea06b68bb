package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ids-inventory-api/internal/domain/entity"
	"github.com/jhoicas/ids-inventory-api/internal/domain/repository"
)

var _ repository.ApprovalRepository = (*ApprovalRepo)(nil)

// ApprovalRepo implementación del puerto ApprovalRepository sobre PostgreSQL.
type ApprovalRepo struct {
	q Querier
}

// NewApprovalRepository construye el adaptador de registros de aprobación.
func NewApprovalRepository(q Querier) *ApprovalRepo {
	return &ApprovalRepo{q: q}
}

// CreateDeleteRequest persiste una solicitud de baja y devuelve su id.
func (r *ApprovalRepo) CreateDeleteRequest(req *entity.DeleteRequest) (int64, error) {
	err := r.q.QueryRow(context.Background(), `
		INSERT INTO delete_requests (user_id, product_id, message, approver_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		req.UserID, req.ProductID, req.Message, req.ApproverID, req.Status,
		req.CreatedAt, req.UpdatedAt,
	).Scan(&req.ID)
	if err != nil {
		return 0, fmt.Errorf("insert delete request: %w", err)
	}
	return req.ID, nil
}

// GetDeleteRequest obtiene una solicitud de baja; (nil, nil) si no existe.
func (r *ApprovalRepo) GetDeleteRequest(id int64) (*entity.DeleteRequest, error) {
	var req entity.DeleteRequest
	err := r.q.QueryRow(context.Background(), `
		SELECT id, user_id, product_id, message, approver_id, status, created_at, updated_at
		FROM delete_requests WHERE id = $1`, id,
	).Scan(&req.ID, &req.UserID, &req.ProductID, &req.Message, &req.ApproverID,
		&req.Status, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get delete request: %w", err)
	}
	return &req, nil
}

// UpdateDeleteRequestStatus mueve la solicitud de baja al estado dado y
// registra quién la resolvió.
func (r *ApprovalRepo) UpdateDeleteRequestStatus(id int64, status string, approverID *int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE delete_requests SET status = $2, approver_id = $3, updated_at = now() WHERE id = $1`,
		id, status, approverID,
	)
	if err != nil {
		return fmt.Errorf("update delete request: %w", err)
	}
	return nil
}

// ListDeleteRequests lista todas las solicitudes de baja.
func (r *ApprovalRepo) ListDeleteRequests() ([]*entity.DeleteRequest, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, user_id, product_id, message, approver_id, status, created_at, updated_at
		FROM delete_requests ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list delete requests: %w", err)
	}
	defer rows.Close()
	var list []*entity.DeleteRequest
	for rows.Next() {
		var req entity.DeleteRequest
		if err := rows.Scan(&req.ID, &req.UserID, &req.ProductID, &req.Message,
			&req.ApproverID, &req.Status, &req.CreatedAt, &req.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan delete request: %w", err)
		}
		list = append(list, &req)
	}
	return list, rows.Err()
}

// CreateProductRequest persiste una solicitud de reposición y devuelve su id.
func (r *ApprovalRepo) CreateProductRequest(req *entity.ProductRequest) (int64, error) {
	err := r.q.QueryRow(context.Background(), `
		INSERT INTO product_requests (user_id, product_id, quantity, approved_manager_id, approved_admin_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		req.UserID, req.ProductID, req.Quantity, req.ApprovedManagerID,
		req.ApprovedAdminID, req.Status, req.CreatedAt, req.UpdatedAt,
	).Scan(&req.ID)
	if err != nil {
		return 0, fmt.Errorf("insert product request: %w", err)
	}
	return req.ID, nil
}

// GetProductRequest obtiene una solicitud de reposición; (nil, nil) si no
// existe.
func (r *ApprovalRepo) GetProductRequest(id int64) (*entity.ProductRequest, error) {
	var req entity.ProductRequest
	err := r.q.QueryRow(context.Background(), `
		SELECT id, user_id, product_id, quantity, approved_manager_id, approved_admin_id, status, created_at, updated_at
		FROM product_requests WHERE id = $1`, id,
	).Scan(&req.ID, &req.UserID, &req.ProductID, &req.Quantity,
		&req.ApprovedManagerID, &req.ApprovedAdminID, &req.Status,
		&req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product request: %w", err)
	}
	return &req, nil
}

// UpdateProductRequestStatus mueve la solicitud de reposición al estado dado
// y registra los aprobadores.
func (r *ApprovalRepo) UpdateProductRequestStatus(id int64, status string, managerID, adminID *int64) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE product_requests
		SET status = $2, approved_manager_id = $3, approved_admin_id = $4, updated_at = now()
		WHERE id = $1`,
		id, status, managerID, adminID,
	)
	if err != nil {
		return fmt.Errorf("update product request: %w", err)
	}
	return nil
}

// ListProductRequests lista todas las solicitudes de reposición.
func (r *ApprovalRepo) ListProductRequests() ([]*entity.ProductRequest, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, user_id, product_id, quantity, approved_manager_id, approved_admin_id, status, created_at, updated_at
		FROM product_requests ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list product requests: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductRequest
	for rows.Next() {
		var req entity.ProductRequest
		if err := rows.Scan(&req.ID, &req.UserID, &req.ProductID, &req.Quantity,
			&req.ApprovedManagerID, &req.ApprovedAdminID, &req.Status,
			&req.CreatedAt, &req.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product request: %w", err)
		}
		list = append(list, &req)
	}
	return list, rows.Err()
}
