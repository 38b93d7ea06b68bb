package entity

import "time"

// Product representa un producto del catálogo IDS.
// La categoría se referencia por ID; Images guarda las URLs de las fotos del
// producto. RowStatus=false marca el borrado lógico (nunca se borra físico).
type Product struct {
	ID           int64
	Code         string
	QRCode       string
	Name         string
	Description  string
	CategoryID   int64
	ReorderPoint int
	Brand        string
	Weight       string
	Dimensions   string
	Images       []string
	CreatedBy    string
	UpdatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	RowStatus    bool
}
