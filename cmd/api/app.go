package main

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/hugohenrick/cadastro-clientes/internal/adapter/api/controller"
	"github.com/hugohenrick/cadastro-clientes/internal/adapter/api/route"
	"github.com/hugohenrick/cadastro-clientes/internal/adapter/repository"
	"github.com/hugohenrick/cadastro-clientes/internal/infrastructure/database"
	"github.com/hugohenrick/cadastro-clientes/pkg/logger"
	"github.com/hugohenrick/cadastro-clientes/pkg/middleware"

	_ "github.com/hugohenrick/cadastro-clientes/docs"
)

// App representa a aplicação e suas dependências
type App struct {
	router           *gin.Engine
	db               *pgxpool.Pool
	logger           logger.Logger
	clientController *controller.ClientController
}

// NewApp cria uma nova instância do aplicativo
func NewApp() (*App, error) {
	log := logger.NewLogger()

	// Configurar banco de dados
	config := database.NewPostgresConfigFromEnv()
	db, err := database.NewPostgresDB(config)
	if err != nil {
		return nil, err
	}

	// Criar repositórios e controllers
	clientRepo := repository.NewClientRepository(db)
	clientController := controller.NewClientController(clientRepo, log)

	// Configurar router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(cors.Default())

	return &App{
		router:           router,
		db:               db,
		logger:           log,
		clientController: clientController,
	}, nil
}

// SetupRoutes configura as rotas da aplicação
func (a *App) SetupRoutes(basePath string) {
	// Health check na raiz, fora do prefixo da API
	a.router.GET("/health", controller.Health)

	api := a.router.Group(basePath)
	route.RegisterClientRoutes(api, a.clientController)

	// Documentação Swagger
	a.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// Start inicia o servidor HTTP na porta configurada
func (a *App) Start() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	a.logger.Info("Servidor iniciado", "port", port)
	return a.router.Run(":" + port)
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
