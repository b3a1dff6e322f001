package repository

import (
	"context"
	"sync"

	"github.com/hugohenrick/cadastro-clientes/internal/domain/client"
)

// MemoryClientRepository é uma implementação em memória de
// client.Repository, usada em testes e como substituto do banco em
// ambientes sem PostgreSQL. Mantém as mesmas regras de erro do
// repositório real (CNPJ duplicado, registro inexistente).
type MemoryClientRepository struct {
	mu      sync.RWMutex
	clients map[int64]*client.Client
	nextID  int64
}

// NewMemoryClientRepository cria um repositório em memória vazio
func NewMemoryClientRepository() *MemoryClientRepository {
	return &MemoryClientRepository{
		clients: make(map[int64]*client.Client),
		nextID:  1,
	}
}

// List implementa client.Repository.List
func (r *MemoryClientRepository) List(ctx context.Context) ([]*client.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	clients := make([]*client.Client, 0, len(r.clients))
	for id := int64(1); id < r.nextID; id++ {
		if c, ok := r.clients[id]; ok {
			clients = append(clients, copyClient(c))
		}
	}
	return clients, nil
}

// FindByID implementa client.Repository.FindByID
func (r *MemoryClientRepository) FindByID(ctx context.Context, id int64) (*client.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.clients[id]
	if !ok {
		return nil, ErrClientNotFound
	}
	return copyClient(c), nil
}

// Create implementa client.Repository.Create
func (r *MemoryClientRepository) Create(ctx context.Context, c *client.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.clients {
		if existing.CNPJ == c.CNPJ {
			return ErrClientDuplicateCNPJ
		}
	}

	c.ID = r.nextID
	r.nextID++
	r.clients[c.ID] = copyClient(c)
	return nil
}

// Update implementa client.Repository.Update
func (r *MemoryClientRepository) Update(ctx context.Context, c *client.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.clients[c.ID]; !ok {
		return ErrClientNotFound
	}

	for id, existing := range r.clients {
		if id != c.ID && existing.CNPJ == c.CNPJ {
			return ErrClientDuplicateCNPJ
		}
	}

	r.clients[c.ID] = copyClient(c)
	return nil
}

// Delete implementa client.Repository.Delete
func (r *MemoryClientRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.clients[id]; !ok {
		return ErrClientNotFound
	}
	delete(r.clients, id)
	return nil
}

// copyClient devolve uma cópia desacoplada para o chamador não
// compartilhar ponteiros com o armazenamento interno
func copyClient(c *client.Client) *client.Client {
	clone := *c
	clone.TradeName = copyString(c.TradeName)
	clone.ZipCode = copyString(c.ZipCode)
	clone.Street = copyString(c.Street)
	clone.District = copyString(c.District)
	clone.City = copyString(c.City)
	clone.State = copyString(c.State)
	clone.Complement = copyString(c.Complement)
	clone.Email = copyString(c.Email)
	clone.Phone = copyString(c.Phone)
	return &clone
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
