package dto

// CreateLocationRequest entrada para crear una sede.
type CreateLocationRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Address string `json:"address"`
}

// LocationResponse salida de una sede.
type LocationResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// CreateWarehouseRequest entrada para crear una bodega dentro de una sede.
type CreateWarehouseRequest struct {
	LocationID int64  `json:"location_id" validate:"required"`
	Name       string `json:"name" validate:"required,min=1,max=200"`
}

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	ID         int64  `json:"id"`
	LocationID int64  `json:"location_id"`
	Name       string `json:"name"`
}
