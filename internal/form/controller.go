// Package form implementa o espelho do controlador de formulário do
// front-end: mantém o estado dos campos, revalida com as mesmas regras
// do servidor antes da submissão e dispara as consultas externas de
// pré-preenchimento. A validação aqui é apenas consultiva; a fronteira
// da API revalida de forma autoritativa.
package form

import (
	"context"

	"github.com/hugohenrick/cadastro-clientes/internal/adapter/lookup"
	"github.com/hugohenrick/cadastro-clientes/internal/domain/client"
	"github.com/hugohenrick/cadastro-clientes/pkg/document"
	"github.com/hugohenrick/cadastro-clientes/pkg/logger"
)

// CompanyLookup consulta dados cadastrais de empresa por CNPJ
type CompanyLookup interface {
	FetchCNPJ(ctx context.Context, cnpj string) (*lookup.CNPJData, error)
}

// AddressLookup consulta endereço por CEP
type AddressLookup interface {
	FetchCEP(ctx context.Context, cep string) (*lookup.CEPData, error)
}

// Fields é o estado em memória do formulário de cliente
type Fields struct {
	CNPJ       string
	Name       string
	TradeName  string
	ZipCode    string
	Street     string
	District   string
	City       string
	State      string
	Complement string
	Email      string
	Phone      string
}

// Controller coordena o formulário de cadastro/edição de cliente
type Controller struct {
	fields  Fields
	editing bool
	company CompanyLookup
	address AddressLookup
	logger  logger.Logger
}

// NewController cria um controlador de formulário vazio em modo de
// criação
func NewController(company CompanyLookup, address AddressLookup, log logger.Logger) *Controller {
	return &Controller{
		company: company,
		address: address,
		logger:  log,
	}
}

// Load carrega um cliente existente para edição. Em modo de edição o
// campo CNPJ fica congelado, espelhando o campo desabilitado da UI.
func (c *Controller) Load(cl *client.Client) {
	c.fields = Fields{
		CNPJ:       cl.CNPJ,
		Name:       cl.Name,
		TradeName:  deref(cl.TradeName),
		ZipCode:    deref(cl.ZipCode),
		Street:     deref(cl.Street),
		District:   deref(cl.District),
		City:       deref(cl.City),
		State:      deref(cl.State),
		Complement: deref(cl.Complement),
		Email:      deref(cl.Email),
		Phone:      deref(cl.Phone),
	}
	c.editing = true
}

// Reset limpa o formulário e volta ao modo de criação
func (c *Controller) Reset() {
	c.fields = Fields{}
	c.editing = false
}

// Fields retorna uma cópia do estado atual do formulário
func (c *Controller) Fields() Fields {
	return c.fields
}

// SetCNPJ altera o campo CNPJ; em modo de edição a alteração é
// recusada
func (c *Controller) SetCNPJ(v string) {
	if c.editing {
		return
	}
	c.fields.CNPJ = v
}

// SetName altera a razão social
func (c *Controller) SetName(v string) { c.fields.Name = v }

// SetTradeName altera o nome fantasia
func (c *Controller) SetTradeName(v string) { c.fields.TradeName = v }

// SetZipCode altera o CEP
func (c *Controller) SetZipCode(v string) { c.fields.ZipCode = v }

// SetStreet altera o logradouro
func (c *Controller) SetStreet(v string) { c.fields.Street = v }

// SetDistrict altera o bairro
func (c *Controller) SetDistrict(v string) { c.fields.District = v }

// SetCity altera a cidade
func (c *Controller) SetCity(v string) { c.fields.City = v }

// SetState altera a UF
func (c *Controller) SetState(v string) { c.fields.State = v }

// SetComplement altera o complemento
func (c *Controller) SetComplement(v string) { c.fields.Complement = v }

// SetEmail altera o email
func (c *Controller) SetEmail(v string) { c.fields.Email = v }

// SetPhone altera o telefone
func (c *Controller) SetPhone(v string) { c.fields.Phone = v }

// OnCNPJBlur dispara a consulta de empresa quando o campo CNPJ perde o
// foco com exatamente 14 dígitos. Falha ou resultado vazio deixam o
// formulário intacto; a consulta nunca bloqueia a submissão.
func (c *Controller) OnCNPJBlur(ctx context.Context) {
	cnpj := document.OnlyDigits(c.fields.CNPJ)
	if len(cnpj) != 14 {
		return
	}

	data, err := c.company.FetchCNPJ(ctx, cnpj)
	if err != nil {
		c.logger.Warn("consulta de CNPJ falhou", "cnpj", cnpj, "error", err)
		return
	}
	if data == nil {
		return
	}

	f := &c.fields
	f.Name = pick(data.LegalName, f.Name)
	f.TradeName = pick(data.TradeName, f.TradeName)
	f.Street = pick(truncate(data.Street, 10), f.Street)
	f.District = pick(data.District, f.District)
	f.City = pick(data.City, f.City)
	f.State = pick(data.State, f.State)
	f.ZipCode = pick(document.OnlyDigits(data.ZipCode), f.ZipCode)
	f.Complement = pick(data.Complement, f.Complement)
	f.Email = pick(data.Email, f.Email)
	f.Phone = pick(document.OnlyDigits(data.Phone), f.Phone)
}

// OnZipCodeBlur dispara a consulta de endereço quando o campo CEP perde
// o foco com exatamente 8 dígitos; mesma política de melhor esforço da
// consulta de CNPJ
func (c *Controller) OnZipCodeBlur(ctx context.Context) {
	cep := document.OnlyDigits(c.fields.ZipCode)
	if len(cep) != 8 {
		return
	}

	data, err := c.address.FetchCEP(ctx, cep)
	if err != nil {
		c.logger.Warn("consulta de CEP falhou", "cep", cep, "error", err)
		return
	}
	if data == nil {
		return
	}

	f := &c.fields
	f.Street = pick(truncate(data.Street, 10), f.Street)
	f.District = pick(data.District, f.District)
	f.City = pick(data.City, f.City)
	f.State = pick(data.State, f.State)
	f.Complement = pick(data.Complement, f.Complement)
}

// Validate monta o payload de criação a partir do formulário e executa
// as mesmas regras da fronteira da API
func (c *Controller) Validate() (client.CreateInput, map[string]string) {
	in := client.CreateInput{
		CNPJ:       c.fields.CNPJ,
		Name:       c.fields.Name,
		TradeName:  c.fields.TradeName,
		ZipCode:    c.fields.ZipCode,
		Street:     c.fields.Street,
		District:   c.fields.District,
		City:       c.fields.City,
		State:      c.fields.State,
		Complement: c.fields.Complement,
		Email:      c.fields.Email,
		Phone:      c.fields.Phone,
	}
	issues := in.Validate()
	return in, issues
}

// pick usa o valor da consulta apenas quando não vazio; caso contrário
// o valor atual do formulário permanece
func pick(fetched, current string) string {
	if fetched != "" {
		return fetched
	}
	return current
}

// truncate corta a string em max runas, respeitando o limite da coluna
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
