package document

import "strings"

// Pesos oficiais para o cálculo dos dígitos verificadores do CNPJ
var (
	cnpjWeightsFirst  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeightsSecond = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// OnlyDigits remove todo caractere que não seja dígito (pontuação de
// formatação como ".", "/", "-" e espaços)
func OnlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// StripPunctuation remove apenas a pontuação de formatação usada em
// documentos e telefones (".", "/", "-", parênteses e espaços),
// preservando qualquer outro caractere para que a validação de
// "apenas números" continue detectando entradas inválidas
func StripPunctuation(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '.', '/', '-', '(', ')', ' ':
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsDigits informa se a string não vazia contém somente dígitos
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// NormalizeCNPJ normaliza um CNPJ removendo a formatação
func NormalizeCNPJ(cnpj string) string {
	return OnlyDigits(cnpj)
}

// IsValidCNPJ valida os dígitos verificadores de um CNPJ.
// Espera os 14 dígitos já normalizados (sem formatação).
func IsValidCNPJ(cnpj string) bool {
	if len(cnpj) != 14 {
		return false
	}

	allSame := true
	for i := 0; i < 14; i++ {
		d := cnpj[i]
		if d < '0' || d > '9' {
			return false
		}
		if d != cnpj[0] {
			allSame = false
		}
	}
	// Sequências repetidas (ex: 00000000000000) passam no checksum mas são inválidas
	if allSame {
		return false
	}

	digit1 := cnpjCheckDigit(cnpj, cnpjWeightsFirst)
	digit2 := cnpjCheckDigit(cnpj, cnpjWeightsSecond)

	return int(cnpj[12]-'0') == digit1 && int(cnpj[13]-'0') == digit2
}

// cnpjCheckDigit calcula um dígito verificador: soma ponderada dos
// primeiros len(weights) dígitos módulo 11; resto < 2 resulta em 0,
// caso contrário 11 - resto
func cnpjCheckDigit(digits string, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += int(digits[i]-'0') * w
	}
	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}
