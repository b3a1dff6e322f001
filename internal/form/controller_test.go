package form

import (
	"context"
	"errors"
	"testing"

	"github.com/hugohenrick/cadastro-clientes/internal/adapter/lookup"
	"github.com/hugohenrick/cadastro-clientes/internal/domain/client"
	"github.com/hugohenrick/cadastro-clientes/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCompanyLookup struct {
	data *lookup.CNPJData
	err  error
}

func (s *stubCompanyLookup) FetchCNPJ(ctx context.Context, cnpj string) (*lookup.CNPJData, error) {
	return s.data, s.err
}

type stubAddressLookup struct {
	data *lookup.CEPData
	err  error
}

func (s *stubAddressLookup) FetchCEP(ctx context.Context, cep string) (*lookup.CEPData, error) {
	return s.data, s.err
}

func newController(company *stubCompanyLookup, address *stubAddressLookup) *Controller {
	if company == nil {
		company = &stubCompanyLookup{}
	}
	if address == nil {
		address = &stubAddressLookup{}
	}
	return NewController(company, address, logger.NewLogger())
}

func TestControllerCNPJBlur(t *testing.T) {
	ctx := context.Background()

	t.Run("preenche campos vazios com dados da consulta", func(t *testing.T) {
		c := newController(&stubCompanyLookup{data: &lookup.CNPJData{
			LegalName: "EMPRESA EXEMPLO LTDA",
			TradeName: "EXEMPLO",
			Street:    "RUA DAS FLORES DO CAMPO",
			City:      "SAO PAULO",
			State:     "SP",
			ZipCode:   "01001-000",
			Phone:     "(11) 99999-9999",
		}}, nil)

		c.SetCNPJ("11.222.333/0001-81")
		c.OnCNPJBlur(ctx)

		f := c.Fields()
		assert.Equal(t, "EMPRESA EXEMPLO LTDA", f.Name)
		assert.Equal(t, "EXEMPLO", f.TradeName)
		// Logradouro respeita o limite de 10 caracteres da coluna
		assert.Equal(t, "RUA DAS FL", f.Street)
		assert.Equal(t, "01001000", f.ZipCode)
		assert.Equal(t, "11999999999", f.Phone)
	})

	t.Run("campo sem dado na consulta preserva o valor digitado", func(t *testing.T) {
		c := newController(&stubCompanyLookup{data: &lookup.CNPJData{
			LegalName: "EMPRESA EXEMPLO LTDA",
		}}, nil)

		c.SetCNPJ("11222333000181")
		c.SetEmail("contato@exemplo.com.br")
		c.OnCNPJBlur(ctx)

		f := c.Fields()
		assert.Equal(t, "EMPRESA EXEMPLO LTDA", f.Name)
		assert.Equal(t, "contato@exemplo.com.br", f.Email)
	})

	t.Run("falha na consulta deixa o formulário intacto", func(t *testing.T) {
		c := newController(&stubCompanyLookup{err: errors.New("timeout")}, nil)

		c.SetCNPJ("11222333000181")
		c.SetName("Digitado Pelo Usuário")
		c.OnCNPJBlur(ctx)

		assert.Equal(t, "Digitado Pelo Usuário", c.Fields().Name)
	})

	t.Run("cnpj incompleto não dispara consulta", func(t *testing.T) {
		company := &stubCompanyLookup{data: &lookup.CNPJData{LegalName: "NÃO DEVERIA"}}
		c := newController(company, nil)

		c.SetCNPJ("112223330001")
		c.OnCNPJBlur(ctx)

		assert.Empty(t, c.Fields().Name)
	})
}

func TestControllerZipCodeBlur(t *testing.T) {
	ctx := context.Background()

	t.Run("preenche endereço e preserva campos já editados", func(t *testing.T) {
		c := newController(nil, &stubAddressLookup{data: &lookup.CEPData{
			Street:   "Praça da Sé",
			District: "Sé",
			City:     "São Paulo",
			State:    "SP",
		}})

		c.SetZipCode("01001-000")
		c.SetCity("Cidade Digitada")
		c.OnZipCodeBlur(ctx)

		f := c.Fields()
		assert.Equal(t, "Praça da S", f.Street)
		assert.Equal(t, "Sé", f.District)
		// Valor da consulta vence quando presente
		assert.Equal(t, "São Paulo", f.City)
		assert.Equal(t, "SP", f.State)
	})

	t.Run("cep inexistente deixa o formulário intacto", func(t *testing.T) {
		c := newController(nil, &stubAddressLookup{data: nil})

		c.SetZipCode("99999999")
		c.SetStreet("Rua Minha")
		c.OnZipCodeBlur(ctx)

		assert.Equal(t, "Rua Minha", c.Fields().Street)
	})
}

func TestControllerEditMode(t *testing.T) {
	trade := "Fantasia"
	c := newController(nil, nil)
	c.Load(&client.Client{
		ID:        1,
		CNPJ:      "11222333000181",
		Name:      "Empresa Exemplo LTDA",
		TradeName: &trade,
	})

	// CNPJ fica congelado durante a edição, como o campo desabilitado da UI
	c.SetCNPJ("00000000000191")
	assert.Equal(t, "11222333000181", c.Fields().CNPJ)

	c.SetName("Novo Nome")
	assert.Equal(t, "Novo Nome", c.Fields().Name)

	c.Reset()
	c.SetCNPJ("00000000000191")
	assert.Equal(t, "00000000000191", c.Fields().CNPJ)
}

func TestControllerValidate(t *testing.T) {
	c := newController(nil, nil)
	c.SetCNPJ("11.222.333/0001-81")
	c.SetName("Empresa Exemplo LTDA")
	c.SetState("")

	in, issues := c.Validate()
	require.Empty(t, issues)
	assert.Equal(t, "11222333000181", in.CNPJ)

	c.SetState("sp")
	_, issues = c.Validate()
	assert.Equal(t, "UF deve conter 2 letras maiúsculas (ex: SP)", issues["uf"])
}
