package logger

import (
	"bytes"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newBufferLogger(buf *bytes.Buffer) *stdLogger {
	l := log.New(buf, "", 0)
	return &stdLogger{info: l, err: l, debug: l, warn: l}
}

func TestLoggerFormatPairs(t *testing.T) {
	t.Run("múltiplos pares saem como chave=valor", func(t *testing.T) {
		var buf bytes.Buffer
		l := newBufferLogger(&buf)

		l.Error("erro ao criar cliente", "error", errors.New("boom"), "cnpj", "11222333000181")

		assert.Equal(t, "erro ao criar cliente error=boom cnpj=11222333000181\n", buf.String())
	})

	t.Run("sem pares imprime só a mensagem", func(t *testing.T) {
		var buf bytes.Buffer
		l := newBufferLogger(&buf)

		l.Info("servidor iniciado")

		assert.Equal(t, "servidor iniciado\n", buf.String())
	})

	t.Run("valor final sem chave é impresso sozinho", func(t *testing.T) {
		var buf bytes.Buffer
		l := newBufferLogger(&buf)

		l.Warn("consulta falhou", "sobrando")

		assert.Equal(t, "consulta falhou sobrando\n", buf.String())
	})
}
