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

var _ repository.UserRepository = (*UserRepo)(nil)
var _ repository.FeatureRepository = (*FeatureRepo)(nil)

const userColumns = `id, username, phone, designation, location, business_unit, role, email, status, password_hash`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de cuentas de acceso.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste una cuenta nueva; domain.ErrDuplicate si username, phone o
// email ya existen.
func (r *UserRepo) Create(u *entity.User) (int64, error) {
	err := r.q.QueryRow(context.Background(), `
		INSERT INTO logins (username, phone, designation, location, business_unit, role, email, status, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		u.Username, u.Phone, u.Designation, u.Location, u.BusinessUnit,
		u.Role, u.Email, u.Status, u.PasswordHash,
	).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return u.ID, nil
}

// GetByID obtiene una cuenta por ID; domain.ErrUserNotFound si no existe.
func (r *UserRepo) GetByID(id int64) (*entity.User, error) {
	return r.get(`SELECT `+userColumns+` FROM logins WHERE id = $1`, id)
}

// GetByUsername obtiene una cuenta por username; domain.ErrUserNotFound si no
// existe.
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	return r.get(`SELECT `+userColumns+` FROM logins WHERE username = $1`, username)
}

func (r *UserRepo) get(query string, args ...any) (*entity.User, error) {
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&u.ID, &u.Username, &u.Phone, &u.Designation, &u.Location,
		&u.BusinessUnit, &u.Role, &u.Email, &u.Status, &u.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// Update actualiza los metadatos y credenciales de una cuenta.
func (r *UserRepo) Update(u *entity.User) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE logins
		SET username = $2, phone = $3, designation = $4, location = $5,
		    business_unit = $6, role = $7, email = $8, status = $9, password_hash = $10
		WHERE id = $1`,
		u.ID, u.Username, u.Phone, u.Designation, u.Location,
		u.BusinessUnit, u.Role, u.Email, u.Status, u.PasswordHash,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// List lista todas las cuentas.
func (r *UserRepo) List() ([]*entity.User, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+userColumns+` FROM logins ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(
			&u.ID, &u.Username, &u.Phone, &u.Designation, &u.Location,
			&u.BusinessUnit, &u.Role, &u.Email, &u.Status, &u.PasswordHash,
		); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// FeatureRepo implementación del puerto FeatureRepository sobre PostgreSQL.
type FeatureRepo struct {
	q Querier
}

// NewFeatureRepository construye el adaptador de capacidades por usuario.
func NewFeatureRepository(q Querier) *FeatureRepo {
	return &FeatureRepo{q: q}
}

const featureColumns = `id, user_id, stock_control, override_manager_approval, view_product_details, update_stock, delete_product, image_search, qr_scan, qr_generation, add_product, approval, request_product, notifications, raise_request, low_stock_items, expiry_date_items`

// Upsert crea o reemplaza el paquete de capacidades del usuario (una fila por
// usuario).
func (r *FeatureRepo) Upsert(f *entity.FeatureSet) (int64, error) {
	err := r.q.QueryRow(context.Background(), `
		INSERT INTO features (user_id, stock_control, override_manager_approval, view_product_details, update_stock, delete_product, image_search, qr_scan, qr_generation, add_product, approval, request_product, notifications, raise_request, low_stock_items, expiry_date_items)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (user_id) DO UPDATE
		SET stock_control = EXCLUDED.stock_control,
		    override_manager_approval = EXCLUDED.override_manager_approval,
		    view_product_details = EXCLUDED.view_product_details,
		    update_stock = EXCLUDED.update_stock,
		    delete_product = EXCLUDED.delete_product,
		    image_search = EXCLUDED.image_search,
		    qr_scan = EXCLUDED.qr_scan,
		    qr_generation = EXCLUDED.qr_generation,
		    add_product = EXCLUDED.add_product,
		    approval = EXCLUDED.approval,
		    request_product = EXCLUDED.request_product,
		    notifications = EXCLUDED.notifications,
		    raise_request = EXCLUDED.raise_request,
		    low_stock_items = EXCLUDED.low_stock_items,
		    expiry_date_items = EXCLUDED.expiry_date_items
		RETURNING id`,
		f.UserID, f.StockControl, f.OverrideManagerApproval, f.ViewProductDetails,
		f.UpdateStock, f.DeleteProduct, f.ImageSearch, f.QRScan, f.QRGeneration,
		f.AddProduct, f.Approval, f.RequestProduct, f.Notifications,
		f.RaiseRequest, f.LowStockItems, f.ExpiryDateItems,
	).Scan(&f.ID)
	if err != nil {
		return 0, fmt.Errorf("upsert features: %w", err)
	}
	return f.ID, nil
}

// GetByUser obtiene el paquete de capacidades del usuario; (nil, nil) si aún
// no tiene fila.
func (r *FeatureRepo) GetByUser(userID int64) (*entity.FeatureSet, error) {
	var f entity.FeatureSet
	err := r.q.QueryRow(context.Background(),
		`SELECT `+featureColumns+` FROM features WHERE user_id = $1`, userID,
	).Scan(
		&f.ID, &f.UserID, &f.StockControl, &f.OverrideManagerApproval,
		&f.ViewProductDetails, &f.UpdateStock, &f.DeleteProduct, &f.ImageSearch,
		&f.QRScan, &f.QRGeneration, &f.AddProduct, &f.Approval, &f.RequestProduct,
		&f.Notifications, &f.RaiseRequest, &f.LowStockItems, &f.ExpiryDateItems,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get features: %w", err)
	}
	return &f, nil
}
