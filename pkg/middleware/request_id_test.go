package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequestIDServer() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func TestRequestID(t *testing.T) {
	t.Run("gera identificador quando ausente", func(t *testing.T) {
		r := newRequestIDServer()

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		id := w.Header().Get(RequestIDHeader)
		require.NotEmpty(t, id)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
	})

	t.Run("ecoa o identificador enviado pelo chamador", func(t *testing.T) {
		r := newRequestIDServer()

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "id-do-chamador")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "id-do-chamador", w.Header().Get(RequestIDHeader))
	})

	t.Run("requisições distintas recebem identificadores distintos", func(t *testing.T) {
		r := newRequestIDServer()

		ids := map[string]bool{}
		for i := 0; i < 3; i++ {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			ids[w.Header().Get(RequestIDHeader)] = true
		}
		assert.Len(t, ids, 3)
	})
}
