package client

import (
	"fmt"
	"net/mail"
	"unicode/utf8"

	"github.com/hugohenrick/cadastro-clientes/pkg/document"
)

// Limites de tamanho conforme as colunas da tabela clientes.
// O limite de 10 caracteres do logradouro é mantido da versão original
// do sistema, ainda que trunque a maioria dos endereços reais.
const (
	maxNameLen       = 100
	maxTradeNameLen  = 100
	maxStreetLen     = 10
	maxDistrictLen   = 100
	maxCityLen       = 100
	maxComplementLen = 100
	maxEmailLen      = 100
	minPhoneDigits   = 10
	maxPhoneDigits   = 15
)

// CreateInput é o payload de criação de cliente. Os campos chegam como
// strings cruas do formulário ou da requisição; Validate normaliza e
// valida todos de uma vez.
type CreateInput struct {
	CNPJ       string `json:"cnpj"`
	Name       string `json:"nome"`
	TradeName  string `json:"nomeFantasia"`
	ZipCode    string `json:"cep"`
	Street     string `json:"logradouro"`
	District   string `json:"bairro"`
	City       string `json:"cidade"`
	State      string `json:"uf"`
	Complement string `json:"complemento"`
	Email      string `json:"email"`
	Phone      string `json:"telefone"`
}

// UpdateInput é o payload parcial de atualização. Ponteiros distinguem
// "omitido" (nil, campo não muda) de "informado"; string vazia limpa o
// campo opcional.
type UpdateInput struct {
	CNPJ       *string `json:"cnpj"`
	Name       *string `json:"nome"`
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

// Validate normaliza o payload de criação e valida todos os campos.
// Retorna um mapa campo → mensagem; campos são validados de forma
// independente e apenas a primeira mensagem de cada campo é mantida,
// para que uma única submissão reporte todos os campos inválidos.
func (in *CreateInput) Validate() map[string]string {
	issues := map[string]string{}

	in.CNPJ = document.StripPunctuation(in.CNPJ)
	if msg := validateCNPJ(in.CNPJ, true); msg != "" {
		setIssue(issues, "cnpj", msg)
	}

	if msg := validateName(in.Name, true); msg != "" {
		setIssue(issues, "nome", msg)
	}

	// Campos opcionais: string vazia é ausência e nunca falha em
	// verificação de formato; presença torna o formato obrigatório
	if msg := validateMaxLen(in.TradeName, maxTradeNameLen, "Nome fantasia"); msg != "" {
		setIssue(issues, "nomeFantasia", msg)
	}

	in.ZipCode = document.StripPunctuation(in.ZipCode)
	if msg := validateZipCode(in.ZipCode); msg != "" {
		setIssue(issues, "cep", msg)
	}

	if msg := validateMaxLen(in.Street, maxStreetLen, "Logradouro"); msg != "" {
		setIssue(issues, "logradouro", msg)
	}

	if msg := validateMaxLen(in.District, maxDistrictLen, "Bairro"); msg != "" {
		setIssue(issues, "bairro", msg)
	}

	if msg := validateMaxLen(in.City, maxCityLen, "Cidade"); msg != "" {
		setIssue(issues, "cidade", msg)
	}

	if msg := validateState(in.State); msg != "" {
		setIssue(issues, "uf", msg)
	}

	if msg := validateMaxLen(in.Complement, maxComplementLen, "Complemento"); msg != "" {
		setIssue(issues, "complemento", msg)
	}

	if msg := validateEmail(in.Email); msg != "" {
		setIssue(issues, "email", msg)
	}

	in.Phone = document.StripPunctuation(in.Phone)
	if msg := validatePhone(in.Phone); msg != "" {
		setIssue(issues, "telefone", msg)
	}

	return issues
}

// ToClient converte o payload validado em entidade, normalizando
// opcionais vazios para ausência (NULL)
func (in *CreateInput) ToClient() *Client {
	return &Client{
		CNPJ:       in.CNPJ,
		Name:       in.Name,
		TradeName:  optional(in.TradeName),
		ZipCode:    optional(in.ZipCode),
		Street:     optional(in.Street),
		District:   optional(in.District),
		City:       optional(in.City),
		State:      optional(in.State),
		Complement: optional(in.Complement),
		Email:      optional(in.Email),
		Phone:      optional(in.Phone),
	}
}

// Validate normaliza o payload parcial e valida somente os campos
// informados; campos omitidos não são tocados
func (in *UpdateInput) Validate() map[string]string {
	issues := map[string]string{}

	if in.CNPJ != nil {
		*in.CNPJ = document.StripPunctuation(*in.CNPJ)
		if msg := validateCNPJ(*in.CNPJ, true); msg != "" {
			setIssue(issues, "cnpj", msg)
		}
	}

	if in.Name != nil {
		if msg := validateName(*in.Name, true); msg != "" {
			setIssue(issues, "nome", msg)
		}
	}

	if in.TradeName != nil {
		if msg := validateMaxLen(*in.TradeName, maxTradeNameLen, "Nome fantasia"); msg != "" {
			setIssue(issues, "nomeFantasia", msg)
		}
	}

	if in.ZipCode != nil {
		*in.ZipCode = document.StripPunctuation(*in.ZipCode)
		if msg := validateZipCode(*in.ZipCode); msg != "" {
			setIssue(issues, "cep", msg)
		}
	}

	if in.Street != nil {
		if msg := validateMaxLen(*in.Street, maxStreetLen, "Logradouro"); msg != "" {
			setIssue(issues, "logradouro", msg)
		}
	}

	if in.District != nil {
		if msg := validateMaxLen(*in.District, maxDistrictLen, "Bairro"); msg != "" {
			setIssue(issues, "bairro", msg)
		}
	}

	if in.City != nil {
		if msg := validateMaxLen(*in.City, maxCityLen, "Cidade"); msg != "" {
			setIssue(issues, "cidade", msg)
		}
	}

	if in.State != nil {
		if msg := validateState(*in.State); msg != "" {
			setIssue(issues, "uf", msg)
		}
	}

	if in.Complement != nil {
		if msg := validateMaxLen(*in.Complement, maxComplementLen, "Complemento"); msg != "" {
			setIssue(issues, "complemento", msg)
		}
	}

	if in.Email != nil {
		if msg := validateEmail(*in.Email); msg != "" {
			setIssue(issues, "email", msg)
		}
	}

	if in.Phone != nil {
		*in.Phone = document.StripPunctuation(*in.Phone)
		if msg := validatePhone(*in.Phone); msg != "" {
			setIssue(issues, "telefone", msg)
		}
	}

	return issues
}

// Apply copia para a entidade somente os campos informados. Valores
// opcionais normalizados para vazio limpam a coluna correspondente.
func (in *UpdateInput) Apply(c *Client) {
	if in.CNPJ != nil {
		c.CNPJ = *in.CNPJ
	}
	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.TradeName != nil {
		c.TradeName = optional(*in.TradeName)
	}
	if in.ZipCode != nil {
		c.ZipCode = optional(*in.ZipCode)
	}
	if in.Street != nil {
		c.Street = optional(*in.Street)
	}
	if in.District != nil {
		c.District = optional(*in.District)
	}
	if in.City != nil {
		c.City = optional(*in.City)
	}
	if in.State != nil {
		c.State = optional(*in.State)
	}
	if in.Complement != nil {
		c.Complement = optional(*in.Complement)
	}
	if in.Email != nil {
		c.Email = optional(*in.Email)
	}
	if in.Phone != nil {
		c.Phone = optional(*in.Phone)
	}
}

// setIssue registra a primeira mensagem de cada campo; mensagens
// posteriores para o mesmo campo são descartadas
func setIssue(issues map[string]string, field, msg string) {
	if _, ok := issues[field]; !ok {
		issues[field] = msg
	}
}

// optional normaliza string vazia para ausência
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func validateCNPJ(cnpj string, required bool) string {
	if cnpj == "" {
		if required {
			return "CNPJ é obrigatório"
		}
		return ""
	}
	if utf8.RuneCountInString(cnpj) != 14 {
		return "CNPJ deve ter 14 dígitos"
	}
	if !document.IsDigits(cnpj) {
		return "CNPJ deve conter apenas números"
	}
	if !document.IsValidCNPJ(cnpj) {
		return "CNPJ inválido (dígito verificador incorreto)"
	}
	return ""
}

func validateName(name string, required bool) string {
	if name == "" {
		if required {
			return "Nome é obrigatório"
		}
		return ""
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return "Nome deve ter no máximo 100 caracteres"
	}
	return ""
}

func validateMaxLen(value string, max int, label string) string {
	if value == "" {
		return ""
	}
	if utf8.RuneCountInString(value) > max {
		return fmt.Sprintf("%s deve ter no máximo %d caracteres", label, max)
	}
	return ""
}

func validateZipCode(cep string) string {
	if cep == "" {
		return ""
	}
	if !document.IsDigits(cep) {
		return "CEP deve conter apenas números"
	}
	if len(cep) != 8 {
		return "CEP deve ter 8 dígitos"
	}
	return ""
}

func validateState(uf string) string {
	if uf == "" {
		return ""
	}
	if utf8.RuneCountInString(uf) != 2 {
		return "UF deve ter 2 caracteres"
	}
	for _, r := range uf {
		if r < 'A' || r > 'Z' {
			return "UF deve conter 2 letras maiúsculas (ex: SP)"
		}
	}
	return ""
}

func validateEmail(email string) string {
	if email == "" {
		return ""
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "Email inválido"
	}
	if utf8.RuneCountInString(email) > maxEmailLen {
		return "Email deve ter no máximo 100 caracteres"
	}
	return ""
}

func validatePhone(phone string) string {
	if phone == "" {
		return ""
	}
	if !document.IsDigits(phone) {
		return "Telefone deve conter apenas números"
	}
	if len(phone) < minPhoneDigits {
		return "Telefone deve ter no mínimo 10 dígitos"
	}
	if len(phone) > maxPhoneDigits {
		return "Telefone deve ter no máximo 15 dígitos"
	}
	return ""
}
