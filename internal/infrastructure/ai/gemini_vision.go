package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/ids-inventory-api/internal/application/ports"
)

// Verificar en tiempo de compilación que GeminiVisionService implementa VisionService.
var _ ports.VisionService = (*GeminiVisionService)(nil)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"

	// visionPrompt pide etiquetas planas separadas por coma; sin JSON para
	// mantener el parseo trivial.
	visionPrompt = `Identifica los objetos principales de la imagen.
Devuelve ÚNICAMENTE una lista de etiquetas en español separadas por coma, sin texto adicional.
Ejemplo: martillo, herramienta, metal`
)

// GeminiVisionService adaptador que implementa VisionService llamando a la
// API REST de Google Gemini con la imagen inline. Usa net/http de la librería
// estándar; no requiere el SDK oficial.
type GeminiVisionService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewGeminiVisionService construye el adaptador. model suele ser
// "gemini-1.5-flash". Si apiKey está vacío las llamadas devuelven error
// descriptivo en lugar de panic.
func NewGeminiVisionService(apiKey, model string) *GeminiVisionService {
	return &GeminiVisionService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: 20 * time.Second, // timeout de red; el caller también pone WithTimeout
		},
	}
}

// ── Estructuras internas para la API de Gemini ────────────────────────────────

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig genConfig       `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"` // base64
}

type genConfig struct {
	Temperature     float32 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// DetectLabels envía la imagen a Gemini y devuelve las etiquetas detectadas.
func (s *GeminiVisionService) DetectLabels(ctx context.Context, imageBase64, mimeType string) ([]string, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("AI: GEMINI_API_KEY no configurado")
	}
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	payload := geminiRequest{
		Contents: []geminiContent{
			{
				Role: "user",
				Parts: []geminiPart{
					{Text: visionPrompt},
					{InlineData: &geminiInlineData{MimeType: mimeType, Data: imageBase64}},
				},
			},
		},
		GenerationConfig: genConfig{
			Temperature:     0.2, // baja temperatura para etiquetas estables
			MaxOutputTokens: 128,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("AI: serializar request: %w", err)
	}

	url := fmt.Sprintf(geminiBaseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("AI: crear request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("AI: llamada a Gemini: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("AI: leer respuesta: %w", err)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("AI: deserializar respuesta: %w", err)
	}
	if parsed.Error != nil {
		return nil, fmt.Errorf("AI: Gemini error %d: %s", parsed.Error.Code, parsed.Error.Message)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("AI: respuesta vacía de Gemini")
	}

	raw := parsed.Candidates[0].Content.Parts[0].Text
	var labels []string
	for _, piece := range strings.Split(raw, ",") {
		label := strings.TrimSpace(strings.ToLower(piece))
		if label != "" {
			labels = append(labels, label)
		}
	}
	return labels, nil
}
