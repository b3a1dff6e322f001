package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/hugohenrick/cadastro-clientes/internal/infrastructure/database"
)

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	config := database.NewPostgresConfigFromEnv()

	// Executar as migrações
	if err := database.RunMigrations("file://migrations", config.MigrationURL()); err != nil {
		log.Fatalf("Erro ao executar migrações: %v", err)
	}

	log.Println("Migrações executadas com sucesso!")
}
