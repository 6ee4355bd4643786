package ports

import "context"

// LLMService define el puerto de salida hacia el servicio de generación de
// texto. Cualquier adaptador (Anthropic, Gemini, mock) debe implementar esta
// interfaz; la aplicación solo conoce este contrato, no la implementación.
type LLMService interface {
	// GenerateInsight recibe un prompt y devuelve el texto generado.
	// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
	GenerateInsight(ctx context.Context, prompt string) (string, error)
}
