package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/cadastro-clientes/internal/adapter/api/dto"
)

// Health verifica a disponibilidade do serviço
// @Summary Health check
// @Description Retorna ok quando o serviço está no ar
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}
