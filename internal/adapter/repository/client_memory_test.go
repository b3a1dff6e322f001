package repository

import (
	"context"
	"testing"

	"github.com/hugohenrick/cadastro-clientes/internal/domain/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryClientRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create gera id sequencial", func(t *testing.T) {
		repo := NewMemoryClientRepository()

		a := &client.Client{CNPJ: "11222333000181", Name: "Empresa A"}
		require.NoError(t, repo.Create(ctx, a))
		assert.Equal(t, int64(1), a.ID)

		b := &client.Client{CNPJ: "00000000000191", Name: "Empresa B"}
		require.NoError(t, repo.Create(ctx, b))
		assert.Equal(t, int64(2), b.ID)
	})

	t.Run("cnpj duplicado retorna conflito e preserva o primeiro", func(t *testing.T) {
		repo := NewMemoryClientRepository()

		first := &client.Client{CNPJ: "11222333000181", Name: "Primeira"}
		require.NoError(t, repo.Create(ctx, first))

		second := &client.Client{CNPJ: "11222333000181", Name: "Segunda"}
		err := repo.Create(ctx, second)
		assert.ErrorIs(t, err, ErrClientDuplicateCNPJ)

		stored, err := repo.FindByID(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, "Primeira", stored.Name)
	})

	t.Run("find inexistente", func(t *testing.T) {
		repo := NewMemoryClientRepository()
		_, err := repo.FindByID(ctx, 99)
		assert.ErrorIs(t, err, ErrClientNotFound)
	})

	t.Run("update inexistente", func(t *testing.T) {
		repo := NewMemoryClientRepository()
		err := repo.Update(ctx, &client.Client{ID: 99, CNPJ: "11222333000181", Name: "X"})
		assert.ErrorIs(t, err, ErrClientNotFound)
	})

	t.Run("update para cnpj de outro cliente retorna conflito", func(t *testing.T) {
		repo := NewMemoryClientRepository()

		a := &client.Client{CNPJ: "11222333000181", Name: "Empresa A"}
		require.NoError(t, repo.Create(ctx, a))
		b := &client.Client{CNPJ: "00000000000191", Name: "Empresa B"}
		require.NoError(t, repo.Create(ctx, b))

		b.CNPJ = a.CNPJ
		assert.ErrorIs(t, repo.Update(ctx, b), ErrClientDuplicateCNPJ)
	})

	t.Run("delete remove e delete repetido retorna not found", func(t *testing.T) {
		repo := NewMemoryClientRepository()

		c := &client.Client{CNPJ: "11222333000181", Name: "Empresa"}
		require.NoError(t, repo.Create(ctx, c))

		require.NoError(t, repo.Delete(ctx, c.ID))
		assert.ErrorIs(t, repo.Delete(ctx, c.ID), ErrClientNotFound)

		list, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("list devolve cópias", func(t *testing.T) {
		repo := NewMemoryClientRepository()

		trade := "Fantasia"
		c := &client.Client{CNPJ: "11222333000181", Name: "Empresa", TradeName: &trade}
		require.NoError(t, repo.Create(ctx, c))

		list, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)

		*list[0].TradeName = "Alterado"
		stored, err := repo.FindByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "Fantasia", *stored.TradeName)
	})
}
