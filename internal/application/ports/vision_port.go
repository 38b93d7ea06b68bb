package ports

import "context"

// VisionService puerto para el reconocimiento de imágenes: recibe el
// contenido en base64 y su tipo MIME, y devuelve las etiquetas detectadas.
type VisionService interface {
	DetectLabels(ctx context.Context, imageBase64, mimeType string) ([]string, error)
}
