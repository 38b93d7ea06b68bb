package dto

// ImageSearchRequest entrada de la búsqueda por imagen: contenido en base64 y
// tipo MIME.
type ImageSearchRequest struct {
	ImageBase64 string `json:"image_base64" validate:"required"`
	MimeType    string `json:"mime_type"`
}

// ImageSearchResponse etiquetas detectadas y productos que coinciden.
type ImageSearchResponse struct {
	Labels  []string          `json:"labels"`
	Matches []ProductResponse `json:"matches"`
}
