package usecase

import (
	"fmt"
	"time"

	"github.com/jhoicas/ids-inventory-api/internal/application/dto"
	"github.com/jhoicas/ids-inventory-api/internal/domain"
	"github.com/jhoicas/ids-inventory-api/internal/domain/entity"
	"github.com/jhoicas/ids-inventory-api/internal/domain/repository"
)

// ProductDeleter baja de producto ejecutada al aprobar una solicitud.
type ProductDeleter interface {
	Delete(actor string, id int64) error
}

// ApprovalUseCase flujo de aprobaciones: solicitudes de baja y de reposición
// de producto. Los estados son un enum cerrado (pending/approved/rejected) y
// las transiciones solo salen de pending.
type ApprovalUseCase struct {
	approvals repository.ApprovalRepository
	products  repository.ProductRepository
	deleter   ProductDeleter
}

// NewApprovalUseCase construye el caso de uso.
func NewApprovalUseCase(
	approvals repository.ApprovalRepository,
	products repository.ProductRepository,
	deleter ProductDeleter,
) *ApprovalUseCase {
	return &ApprovalUseCase{approvals: approvals, products: products, deleter: deleter}
}

// CreateDeleteRequest registra una solicitud de baja en estado pending.
func (uc *ApprovalUseCase) CreateDeleteRequest(userID int64, in dto.CreateDeleteRequestRequest) (*dto.DeleteRequestResponse, error) {
	product, err := uc.products.GetActiveByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("producto %d: %w", in.ProductID, domain.ErrNotFound)
	}
	now := time.Now()
	req := &entity.DeleteRequest{
		UserID:    userID,
		ProductID: in.ProductID,
		Message:   in.Message,
		Status:    entity.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := uc.approvals.CreateDeleteRequest(req); err != nil {
		return nil, err
	}
	return toDeleteRequestResponse(req), nil
}

// ResolveDeleteRequest mueve una solicitud de baja a approved o rejected. Al
// aprobar ejecuta la baja lógica del producto; si falla, la solicitud queda
// en pending.
func (uc *ApprovalUseCase) ResolveDeleteRequest(approverID int64, approverName string, id int64, in dto.ResolveRequestRequest) (*dto.DeleteRequestResponse, error) {
	if !entity.ValidStatus(in.Status) {
		return nil, fmt.Errorf("estado %q: %w", in.Status, domain.ErrInvalidStatus)
	}
	req, err := uc.approvals.GetDeleteRequest(id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, fmt.Errorf("solicitud %d: %w", id, domain.ErrNotFound)
	}
	if !entity.CanTransition(req.Status, in.Status) {
		return nil, fmt.Errorf("de %s a %s: %w", req.Status, in.Status, domain.ErrInvalidTransition)
	}
	if in.Status == entity.StatusApproved {
		if err := uc.deleter.Delete(approverName, req.ProductID); err != nil {
			return nil, err
		}
	}
	if err := uc.approvals.UpdateDeleteRequestStatus(id, in.Status, &approverID); err != nil {
		return nil, err
	}
	req.Status = in.Status
	req.ApproverID = &approverID
	req.UpdatedAt = time.Now()
	return toDeleteRequestResponse(req), nil
}

// ListDeleteRequests lista todas las solicitudes de baja.
func (uc *ApprovalUseCase) ListDeleteRequests() ([]dto.DeleteRequestResponse, error) {
	list, err := uc.approvals.ListDeleteRequests()
	if err != nil {
		return nil, err
	}
	out := make([]dto.DeleteRequestResponse, 0, len(list))
	for _, req := range list {
		out = append(out, *toDeleteRequestResponse(req))
	}
	return out, nil
}

// CreateProductRequest registra una solicitud de reposición en estado
// pending.
func (uc *ApprovalUseCase) CreateProductRequest(userID int64, in dto.CreateProductRequestRequest) (*dto.ProductRequestResponse, error) {
	product, err := uc.products.GetActiveByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("producto %d: %w", in.ProductID, domain.ErrNotFound)
	}
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("cantidad inválida: %w", domain.ErrInvalidInput)
	}
	now := time.Now()
	req := &entity.ProductRequest{
		UserID:    userID,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Status:    entity.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := uc.approvals.CreateProductRequest(req); err != nil {
		return nil, err
	}
	return toProductRequestResponse(req), nil
}

// ResolveProductRequest mueve una solicitud de reposición a approved o
// rejected. asManager decide qué columna de aprobador se registra.
func (uc *ApprovalUseCase) ResolveProductRequest(approverID int64, asManager bool, id int64, in dto.ResolveRequestRequest) (*dto.ProductRequestResponse, error) {
	if !entity.ValidStatus(in.Status) {
		return nil, fmt.Errorf("estado %q: %w", in.Status, domain.ErrInvalidStatus)
	}
	req, err := uc.approvals.GetProductRequest(id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, fmt.Errorf("solicitud %d: %w", id, domain.ErrNotFound)
	}
	if !entity.CanTransition(req.Status, in.Status) {
		return nil, fmt.Errorf("de %s a %s: %w", req.Status, in.Status, domain.ErrInvalidTransition)
	}
	if asManager {
		req.ApprovedManagerID = &approverID
	} else {
		req.ApprovedAdminID = &approverID
	}
	if err := uc.approvals.UpdateProductRequestStatus(id, in.Status, req.ApprovedManagerID, req.ApprovedAdminID); err != nil {
		return nil, err
	}
	req.Status = in.Status
	req.UpdatedAt = time.Now()
	return toProductRequestResponse(req), nil
}

// ListProductRequests lista todas las solicitudes de reposición.
func (uc *ApprovalUseCase) ListProductRequests() ([]dto.ProductRequestResponse, error) {
	list, err := uc.approvals.ListProductRequests()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductRequestResponse, 0, len(list))
	for _, req := range list {
		out = append(out, *toProductRequestResponse(req))
	}
	return out, nil
}

func toDeleteRequestResponse(req *entity.DeleteRequest) *dto.DeleteRequestResponse {
	return &dto.DeleteRequestResponse{
		ID:         req.ID,
		UserID:     req.UserID,
		ProductID:  req.ProductID,
		Message:    req.Message,
		ApproverID: req.ApproverID,
		Status:     req.Status,
		CreatedAt:  req.CreatedAt,
		UpdatedAt:  req.UpdatedAt,
	}
}

func toProductRequestResponse(req *entity.ProductRequest) *dto.ProductRequestResponse {
	return &dto.ProductRequestResponse{
		ID:                req.ID,
		UserID:            req.UserID,
		ProductID:         req.ProductID,
		Quantity:          req.Quantity,
		ApprovedManagerID: req.ApprovedManagerID,
		ApprovedAdminID:   req.ApprovedAdminID,
		Status:            req.Status,
		CreatedAt:         req.CreatedAt,
		UpdatedAt:         req.UpdatedAt,
	}
}
