package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// Logger é a interface para logging em pares chave-valor
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// stdLogger é a implementação padrão de Logger sobre a biblioteca log
type stdLogger struct {
	info  *log.Logger
	err   *log.Logger
	debug *log.Logger
	warn  *log.Logger
}

// NewLogger cria uma nova instância de Logger escrevendo em
// stdout/stderr
func NewLogger() Logger {
	flags := log.Ldate | log.Ltime | log.Lshortfile
	return &stdLogger{
		info:  log.New(os.Stdout, "INFO: ", flags),
		err:   log.New(os.Stderr, "ERROR: ", flags),
		debug: log.New(os.Stdout, "DEBUG: ", flags),
		warn:  log.New(os.Stdout, "WARN: ", flags),
	}
}

// Info registra uma mensagem de informação
func (l *stdLogger) Info(msg string, keysAndValues ...interface{}) {
	l.info.Print(msg + formatPairs(keysAndValues))
}

// Error registra uma mensagem de erro
func (l *stdLogger) Error(msg string, keysAndValues ...interface{}) {
	l.err.Print(msg + formatPairs(keysAndValues))
}

// Debug registra uma mensagem de debug
func (l *stdLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.debug.Print(msg + formatPairs(keysAndValues))
}

// Warn registra uma mensagem de aviso
func (l *stdLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.warn.Print(msg + formatPairs(keysAndValues))
}

// formatPairs formata os pares chave-valor como " chave=valor"; um
// valor final sem chave é impresso sozinho
func formatPairs(keysAndValues []interface{}) string {
	var b strings.Builder
	for i := 0; i < len(keysAndValues); i += 2 {
		if i+1 < len(keysAndValues) {
			fmt.Fprintf(&b, " %v=%v", keysAndValues[i], keysAndValues[i+1])
		} else {
			fmt.Fprintf(&b, " %v", keysAndValues[i])
		}
	}
	return b.String()
}
