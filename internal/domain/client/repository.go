package client

import (
	"context"
)

// Repository define a interface para operações de persistência de clientes
type Repository interface {
	// List retorna todos os clientes cadastrados
	List(ctx context.Context) ([]*Client, error)

	// FindByID busca um cliente pelo ID
	FindByID(ctx context.Context, id int64) (*Client, error)

	// Create insere um novo cliente e preenche o ID gerado
	Create(ctx context.Context, c *Client) error

	// Update atualiza os dados de um cliente existente
	Update(ctx context.Context, c *Client) error

	// Delete remove um cliente
	Delete(ctx context.Context, id int64) error
}
