package dto

import (
	"github.com/hugohenrick/cadastro-clientes/internal/domain/client"
)

// ClientResponse representa a resposta de cliente no formato de fio do
// serviço original (chaves em português). Campos opcionais ausentes são
// serializados como null.
type ClientResponse struct {
	ID         int64   `json:"id"`
	CNPJ       string  `json:"cnpj"`
	Name       string  `json:"nome"`
	TradeName  *string `json:"nomeFantasia"`
	ZipCode    *string `json:"cep"`
	Street     *string `json:"logradouro"`
	District   *string `json:"bairro"`
	City       *string `json:"cidade"`
	State      *string `json:"uf"`
	Complement *string `json:"complemento"`
	Email      *string `json:"email"`
	Phone      *string `json:"telefone"`
}

// ToClientResponse converte um cliente do domínio para DTO
func ToClientResponse(c *client.Client) ClientResponse {
	return ClientResponse{
		ID:         c.ID,
		CNPJ:       c.CNPJ,
		Name:       c.Name,
		TradeName:  c.TradeName,
		ZipCode:    c.ZipCode,
		Street:     c.Street,
		District:   c.District,
		City:       c.City,
		State:      c.State,
		Complement: c.Complement,
		Email:      c.Email,
		Phone:      c.Phone,
	}
}

// ToClientListResponse converte uma lista de clientes do domínio
func ToClientListResponse(clients []*client.Client) []ClientResponse {
	out := make([]ClientResponse, len(clients))
	for i, c := range clients {
		out[i] = ToClientResponse(c)
	}
	return out
}
