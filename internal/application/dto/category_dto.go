package dto

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Image string `json:"image"`
}

// UpdateCategoryRequest entrada para actualizar una categoría.
type UpdateCategoryRequest struct {
	Name  *string `json:"name"`
	Image *string `json:"image"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}
