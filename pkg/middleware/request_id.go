package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader é o cabeçalho que transporta o identificador da
// requisição
const RequestIDHeader = "X-Request-ID"

// RequestID garante que toda requisição carregue um identificador
// único, reaproveitando o do chamador quando presente. O identificador
// é propagado na resposta e fica disponível no contexto para logging.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set("request_id", id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}
