package dto

// ErrorResponse é o corpo de resposta para erros de domínio
// (404, 409, 500)
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse é o corpo de resposta para falhas de
// validação de schema (400), com uma mensagem por campo inválido
type ValidationErrorResponse struct {
	Message string            `json:"message"`
	Issues  map[string]string `json:"issues"`
}

// MessageResponse é o corpo de confirmação de operações sem retorno
// de entidade (ex: exclusão)
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse é o corpo da verificação de saúde do serviço
type HealthResponse struct {
	Status string `json:"status"`
}

// NewErrorResponse cria uma nova resposta de erro de domínio
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// NewValidationErrorResponse cria uma nova resposta de erro de validação
func NewValidationErrorResponse(issues map[string]string) ValidationErrorResponse {
	return ValidationErrorResponse{
		Message: "Validation error",
		Issues:  issues,
	}
}
