package usecase

import (
	"fmt"

	"github.com/jhoicas/ids-inventory-api/internal/application/dto"
	"github.com/jhoicas/ids-inventory-api/internal/domain"
	"github.com/jhoicas/ids-inventory-api/internal/domain/entity"
	"github.com/jhoicas/ids-inventory-api/internal/domain/repository"
)

// FeatureUseCase paquete de capacidades por usuario. El upsert reemplaza la
// fila completa: no hay defaults calculados ni merges parciales.
type FeatureUseCase struct {
	features repository.FeatureRepository
	users    repository.UserRepository
}

// NewFeatureUseCase construye el caso de uso.
func NewFeatureUseCase(features repository.FeatureRepository, users repository.UserRepository) *FeatureUseCase {
	return &FeatureUseCase{features: features, users: users}
}

// Upsert crea o reemplaza el paquete de capacidades del usuario.
func (uc *FeatureUseCase) Upsert(userID int64, in dto.FeatureSetRequest) (*dto.FeatureSetResponse, error) {
	if _, err := uc.users.GetByID(userID); err != nil {
		return nil, err
	}
	row := &entity.FeatureSet{
		UserID:                  userID,
		StockControl:            in.StockControl,
		OverrideManagerApproval: in.OverrideManagerApproval,
		ViewProductDetails:      in.ViewProductDetails,
		UpdateStock:             in.UpdateStock,
		DeleteProduct:           in.DeleteProduct,
		ImageSearch:             in.ImageSearch,
		QRScan:                  in.QRScan,
		QRGeneration:            in.QRGeneration,
		AddProduct:              in.AddProduct,
		Approval:                in.Approval,
		RequestProduct:          in.RequestProduct,
		Notifications:           in.Notifications,
		RaiseRequest:            in.RaiseRequest,
		LowStockItems:           in.LowStockItems,
		ExpiryDateItems:         in.ExpiryDateItems,
	}
	if _, err := uc.features.Upsert(row); err != nil {
		return nil, err
	}
	return toFeatureSetResponse(row), nil
}

// GetByUser obtiene el paquete de capacidades del usuario;
// domain.ErrNotFound si aún no tiene fila.
func (uc *FeatureUseCase) GetByUser(userID int64) (*dto.FeatureSetResponse, error) {
	row, err := uc.features.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, fmt.Errorf("capacidades del usuario %d: %w", userID, domain.ErrNotFound)
	}
	return toFeatureSetResponse(row), nil
}

func toFeatureSetResponse(f *entity.FeatureSet) *dto.FeatureSetResponse {
	return &dto.FeatureSetResponse{
		UserID:                  f.UserID,
		StockControl:            f.StockControl,
		OverrideManagerApproval: f.OverrideManagerApproval,
		ViewProductDetails:      f.ViewProductDetails,
		UpdateStock:             f.UpdateStock,
		DeleteProduct:           f.DeleteProduct,
		ImageSearch:             f.ImageSearch,
		QRScan:                  f.QRScan,
		QRGeneration:            f.QRGeneration,
		AddProduct:              f.AddProduct,
		Approval:                f.Approval,
		RequestProduct:          f.RequestProduct,
		Notifications:           f.Notifications,
		RaiseRequest:            f.RaiseRequest,
		LowStockItems:           f.LowStockItems,
		ExpiryDateItems:         f.ExpiryDateItems,
	}
}
