package entity

// User representa una cuenta de acceso (tabla logins). Username, Phone y
// Email son únicos; Role/Designation/Location/BusinessUnit son metadatos
// organizacionales sin semántica en el núcleo.
type User struct {
	ID           int64
	Username     string
	Phone        string
	Designation  string
	Location     string
	BusinessUnit string
	Role         string
	Email        string
	Status       string
	PasswordHash string
}

// FeatureSet es el paquete de capacidades booleanas de un usuario
// (una fila por usuario, sin defaults calculados).
type FeatureSet struct {
	ID                      int64
	UserID                  int64
	StockControl            bool
	OverrideManagerApproval bool
	ViewProductDetails      bool
	UpdateStock             bool
	DeleteProduct           bool
	ImageSearch             bool
	QRScan                  bool
	QRGeneration            bool
	AddProduct              bool
	Approval                bool
	RequestProduct          bool
	Notifications           bool
	RaiseRequest            bool
	LowStockItems           bool
	ExpiryDateItems         bool
}
