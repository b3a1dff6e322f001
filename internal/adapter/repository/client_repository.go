package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/cadastro-clientes/internal/domain/client"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrClientNotFound      = errors.New("cliente não encontrado")
	ErrClientDuplicateCNPJ = errors.New("CNPJ já cadastrado")
)

// pgUniqueViolation é o SQLSTATE de violação de constraint de unicidade
const pgUniqueViolation = "23505"

const clientColumns = `id, cnpj, nome, nome_fantasia, cep, logradouro,
	bairro, cidade, uf, complemento, email, telefone`

// ClientRepository implementa a interface client.Repository sobre PostgreSQL
type ClientRepository struct {
	db *pgxpool.Pool
}

// NewClientRepository cria uma nova instância de ClientRepository
func NewClientRepository(db *pgxpool.Pool) client.Repository {
	return &ClientRepository{
		db: db,
	}
}

// List implementa client.Repository.List
func (r *ClientRepository) List(ctx context.Context) ([]*client.Client, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+clientColumns+` FROM clientes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar clientes: %w", err)
	}
	defer rows.Close()

	clients := make([]*client.Client, 0)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler cliente: %w", err)
		}
		clients = append(clients, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return clients, nil
}

// FindByID implementa client.Repository.FindByID
func (r *ClientRepository) FindByID(ctx context.Context, id int64) (*client.Client, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+clientColumns+` FROM clientes WHERE id = $1`, id)

	c, err := scanClient(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("erro ao buscar cliente: %w", err)
	}

	return c, nil
}

// Create implementa client.Repository.Create
func (r *ClientRepository) Create(ctx context.Context, c *client.Client) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO clientes (
			cnpj, nome, nome_fantasia, cep, logradouro, bairro,
			cidade, uf, complemento, email, telefone
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		) RETURNING id`,
		c.CNPJ, c.Name, c.TradeName, c.ZipCode, c.Street, c.District,
		c.City, c.State, c.Complement, c.Email, c.Phone).Scan(&c.ID)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrClientDuplicateCNPJ
		}
		return fmt.Errorf("erro ao criar cliente: %w", err)
	}

	return nil
}

// Update implementa client.Repository.Update
func (r *ClientRepository) Update(ctx context.Context, c *client.Client) error {
	result, err := r.db.Exec(ctx,
		`UPDATE clientes SET
			cnpj = $1, nome = $2, nome_fantasia = $3, cep = $4,
			logradouro = $5, bairro = $6, cidade = $7, uf = $8,
			complemento = $9, email = $10, telefone = $11
		WHERE id = $12`,
		c.CNPJ, c.Name, c.TradeName, c.ZipCode, c.Street, c.District,
		c.City, c.State, c.Complement, c.Email, c.Phone, c.ID)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrClientDuplicateCNPJ
		}
		return fmt.Errorf("erro ao atualizar cliente: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrClientNotFound
	}

	return nil
}

// Delete implementa client.Repository.Delete
func (r *ClientRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, "DELETE FROM clientes WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir cliente: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrClientNotFound
	}

	return nil
}

// scanClient lê uma linha da tabela clientes
func scanClient(row pgx.Row) (*client.Client, error) {
	var c client.Client
	err := row.Scan(
		&c.ID, &c.CNPJ, &c.Name, &c.TradeName, &c.ZipCode, &c.Street,
		&c.District, &c.City, &c.State, &c.Complement, &c.Email, &c.Phone)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// isUniqueViolation verifica se o erro é uma violação de unicidade
// (CNPJ duplicado) para traduzi-la em erro de domínio
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
