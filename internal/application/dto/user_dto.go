package dto

// RegisterRequest entrada para registrar una cuenta de acceso.
type RegisterRequest struct {
	Username     string `json:"username" validate:"required,min=3,max=100"`
	Password     string `json:"password" validate:"required,min=8"`
	Phone        string `json:"phone"`
	Designation  string `json:"designation"`
	Location     string `json:"location"`
	BusinessUnit string `json:"business_unit"`
	Role         string `json:"role"`
	Email        string `json:"email" validate:"omitempty,email"`
	Status       string `json:"status"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token emitido tras autenticarse.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UpdateUserRequest entrada para actualizar una cuenta (campos opcionales).
type UpdateUserRequest struct {
	Phone        *string `json:"phone"`
	Designation  *string `json:"designation"`
	Location     *string `json:"location"`
	BusinessUnit *string `json:"business_unit"`
	Role         *string `json:"role"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Status       *string `json:"status"`
	Password     *string `json:"password" validate:"omitempty,min=8"`
}

// UserResponse salida de una cuenta (sin hash).
type UserResponse struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Phone        string `json:"phone"`
	Designation  string `json:"designation"`
	Location     string `json:"location"`
	BusinessUnit string `json:"business_unit"`
	Role         string `json:"role"`
	Email        string `json:"email"`
	Status       string `json:"status"`
}

// FeatureSetRequest paquete completo de capacidades de un usuario; el upsert
// reemplaza la fila entera.
type FeatureSetRequest struct {
	StockControl            bool `json:"stock_control"`
	OverrideManagerApproval bool `json:"override_manager_approval"`
	ViewProductDetails      bool `json:"view_product_details"`
	UpdateStock             bool `json:"update_stock"`
	DeleteProduct           bool `json:"delete_product"`
	ImageSearch             bool `json:"image_search"`
	QRScan                  bool `json:"qr_scan"`
	QRGeneration            bool `json:"qr_generation"`
	AddProduct              bool `json:"add_product"`
	Approval                bool `json:"approval"`
	RequestProduct          bool `json:"request_product"`
	Notifications           bool `json:"notifications"`
	RaiseRequest            bool `json:"raise_request"`
	LowStockItems           bool `json:"low_stock_items"`
	ExpiryDateItems         bool `json:"expiry_date_items"`
}

// FeatureSetResponse salida del paquete de capacidades.
type FeatureSetResponse struct {
	UserID                  int64 `json:"user_id"`
	StockControl            bool  `json:"stock_control"`
	OverrideManagerApproval bool  `json:"override_manager_approval"`
	ViewProductDetails      bool  `json:"view_product_details"`
	UpdateStock             bool  `json:"update_stock"`
	DeleteProduct           bool  `json:"delete_product"`
	ImageSearch             bool  `json:"image_search"`
	QRScan                  bool  `json:"qr_scan"`
	QRGeneration            bool  `json:"qr_generation"`
	AddProduct              bool  `json:"add_product"`
	Approval                bool  `json:"approval"`
	RequestProduct          bool  `json:"request_product"`
	Notifications           bool  `json:"notifications"`
	RaiseRequest            bool  `json:"raise_request"`
	LowStockItems           bool  `json:"low_stock_items"`
	ExpiryDateItems         bool  `json:"expiry_date_items"`
}
