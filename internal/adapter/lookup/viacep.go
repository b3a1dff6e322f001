package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/hugohenrick/cadastro-clientes/pkg/document"
)

// DefaultViaCEPBaseURL é o endpoint público do ViaCEP
const DefaultViaCEPBaseURL = "https://viacep.com.br"

// CEPData é o subconjunto da resposta do ViaCEP usado para
// pré-preencher os campos de endereço
type CEPData struct {
	Street     string `json:"logradouro"`
	District   string `json:"bairro"`
	City       string `json:"localidade"`
	State      string `json:"uf"`
	Complement string `json:"complemento"`
	// O ViaCEP sinaliza CEP inexistente com {"erro": true} e status 200
	NotFound bool `json:"erro"`
}

// ViaCEPClient consulta endereços por CEP. Assim como a consulta de
// CNPJ, é melhor esforço e nunca bloqueia a submissão do formulário.
type ViaCEPClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewViaCEPClient cria um cliente do ViaCEP. baseURL vazia usa o
// endpoint público.
func NewViaCEPClient(baseURL string, httpClient *http.Client) *ViaCEPClient {
	if baseURL == "" {
		baseURL = DefaultViaCEPBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	return &ViaCEPClient{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// FetchCEP busca o endereço do CEP informado. Retorna (nil, nil) quando
// o CEP não tem 8 dígitos após a normalização ou quando o ViaCEP
// responde com a flag de inexistente.
func (c *ViaCEPClient) FetchCEP(ctx context.Context, cep string) (*CEPData, error) {
	cep = document.OnlyDigits(cep)
	if len(cep) != 8 {
		return nil, nil
	}

	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, cep)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao montar requisição: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar ViaCEP: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ViaCEP retornou status %d", resp.StatusCode)
	}

	var data CEPData
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta do ViaCEP: %w", err)
	}

	if data.NotFound {
		return nil, nil
	}

	return &data, nil
}
