package client

// Client representa um cliente pessoa jurídica cadastrado no sistema.
// Campos opcionais são ponteiros: ausência é armazenada como NULL,
// nunca como string vazia.
type Client struct {
	ID         int64   `json:"id"`           // ID gerado pelo banco
	CNPJ       string  `json:"cnpj"`         // CNPJ (14 dígitos, único)
	Name       string  `json:"nome"`         // Razão Social
	TradeName  *string `json:"nomeFantasia"` // Nome Fantasia
	ZipCode    *string `json:"cep"`          // CEP
	Street     *string `json:"logradouro"`   // Logradouro
	District   *string `json:"bairro"`       // Bairro
	City       *string `json:"cidade"`       // Cidade
	State      *string `json:"uf"`           // UF
	Complement *string `json:"complemento"`  // Complemento
	Email      *string `json:"email"`        // Email
	Phone      *string `json:"telefone"`     // Telefone
}
