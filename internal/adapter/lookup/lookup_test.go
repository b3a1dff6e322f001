package lookup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrasilAPIClientFetchCNPJ(t *testing.T) {
	t.Run("resposta válida é decodificada", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/cnpj/v1/11222333000181", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"razao_social": "EMPRESA EXEMPLO LTDA",
				"nome_fantasia": "EXEMPLO",
				"logradouro": "RUA DAS FLORES",
				"bairro": "CENTRO",
				"municipio": "SAO PAULO",
				"uf": "SP",
				"cep": "01001-000",
				"ddd_telefone_1": "(11) 99999-9999"
			}`))
		}))
		defer srv.Close()

		c := NewBrasilAPIClient(srv.URL, srv.Client())
		data, err := c.FetchCNPJ(context.Background(), "11.222.333/0001-81")
		require.NoError(t, err)
		require.NotNil(t, data)
		assert.Equal(t, "EMPRESA EXEMPLO LTDA", data.LegalName)
		assert.Equal(t, "SP", data.State)
		assert.Equal(t, "01001-000", data.ZipCode)
	})

	t.Run("cnpj incompleto não consulta", func(t *testing.T) {
		c := NewBrasilAPIClient("http://127.0.0.1:0", nil)
		data, err := c.FetchCNPJ(context.Background(), "123")
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("status não-2xx vira erro", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		c := NewBrasilAPIClient(srv.URL, srv.Client())
		data, err := c.FetchCNPJ(context.Background(), "11222333000181")
		assert.Error(t, err)
		assert.Nil(t, data)
	})
}

func TestViaCEPClientFetchCEP(t *testing.T) {
	t.Run("resposta válida é decodificada", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/ws/01001000/json/", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"logradouro": "Praça da Sé",
				"bairro": "Sé",
				"localidade": "São Paulo",
				"uf": "SP"
			}`))
		}))
		defer srv.Close()

		c := NewViaCEPClient(srv.URL, srv.Client())
		data, err := c.FetchCEP(context.Background(), "01001-000")
		require.NoError(t, err)
		require.NotNil(t, data)
		assert.Equal(t, "Praça da Sé", data.Street)
		assert.Equal(t, "São Paulo", data.City)
	})

	t.Run("flag erro do ViaCEP vira sem dados", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"erro": true}`))
		}))
		defer srv.Close()

		c := NewViaCEPClient(srv.URL, srv.Client())
		data, err := c.FetchCEP(context.Background(), "99999999")
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("cep incompleto não consulta", func(t *testing.T) {
		c := NewViaCEPClient("http://127.0.0.1:0", nil)
		data, err := c.FetchCEP(context.Background(), "0100")
		require.NoError(t, err)
		assert.Nil(t, data)
	})
}
