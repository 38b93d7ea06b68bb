package entity

import "time"

// Location representa una sede física; una sede puede tener varias bodegas.
type Location struct {
	ID        int64
	Name      string
	Address   string
	CreatedBy string
	UpdatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
	RowStatus bool
}

// Warehouse representa una bodega dentro de una sede.
type Warehouse struct {
	ID         int64
	LocationID int64
	Name       string
	CreatedBy  string
	UpdatedBy  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	RowStatus  bool
}
