package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/cadastro-clientes/internal/adapter/api/controller"
)

// RegisterClientRoutes registra as rotas do módulo de clientes
func RegisterClientRoutes(r *gin.RouterGroup, clientController *controller.ClientController) {
	clients := r.Group("/clientes")
	{
		clients.GET("", clientController.List)
		clients.POST("", clientController.Create)
		clients.PUT("/:id", clientController.Update)
		clients.DELETE("/:id", clientController.Delete)
	}
}
