package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/hugohenrick/cadastro-clientes/pkg/document"
)

// DefaultBrasilAPIBaseURL é o endpoint público da BrasilAPI
const DefaultBrasilAPIBaseURL = "https://brasilapi.com.br"

// CNPJData é o subconjunto da resposta da BrasilAPI usado para
// pré-preencher o formulário de cliente
type CNPJData struct {
	LegalName  string `json:"razao_social"`
	TradeName  string `json:"nome_fantasia"`
	Street     string `json:"logradouro"`
	District   string `json:"bairro"`
	City       string `json:"municipio"`
	State      string `json:"uf"`
	ZipCode    string `json:"cep"`
	Complement string `json:"complemento"`
	Email      string `json:"email"`
	Phone      string `json:"ddd_telefone_1"`
}

// BrasilAPIClient consulta dados cadastrais de empresas por CNPJ.
// A consulta é melhor esforço: falhas nunca bloqueiam a submissão do
// formulário, cabe ao chamador tratá-las como "sem dados".
type BrasilAPIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewBrasilAPIClient cria um cliente da BrasilAPI. baseURL vazia usa o
// endpoint público.
func NewBrasilAPIClient(baseURL string, httpClient *http.Client) *BrasilAPIClient {
	if baseURL == "" {
		baseURL = DefaultBrasilAPIBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	return &BrasilAPIClient{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// FetchCNPJ busca os dados cadastrais do CNPJ informado. Retorna
// (nil, nil) quando o identificador não tem 14 dígitos após a
// normalização.
func (c *BrasilAPIClient) FetchCNPJ(ctx context.Context, cnpj string) (*CNPJData, error) {
	cnpj = document.OnlyDigits(cnpj)
	if len(cnpj) != 14 {
		return nil, nil
	}

	url := fmt.Sprintf("%s/api/cnpj/v1/%s", c.baseURL, cnpj)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao montar requisição: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar BrasilAPI: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("BrasilAPI retornou status %d", resp.StatusCode)
	}

	var data CNPJData
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta da BrasilAPI: %w", err)
	}

	return &data, nil
}
