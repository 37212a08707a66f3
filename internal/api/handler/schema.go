package handler

// Request and response schemas for the MeetPoint REST contract. Wire field
// names are Portuguese, matching the deployed backend.

type loginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required"`
}

type customerRegisterRequest struct {
	Nome     string `json:"nome" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Senha    string `json:"senha" validate:"required,min=6"`
	Telefone string `json:"telefone"`
	CPF      string `json:"cpf"`
}

type businessRegisterRequest struct {
	Nome      string `json:"nome" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Senha     string `json:"senha" validate:"required,min=6"`
	Telefone  string `json:"telefone"`
	CNPJ      string `json:"cnpj" validate:"required"`
	Endereco  string `json:"endereco" validate:"required"`
	Descricao string `json:"descricao"`
	TipoID    int    `json:"tipo_id" validate:"required,gt=0"`
	Categoria string `json:"categoria"`
}

type customerUpdateRequest struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
	CPF      string `json:"cpf"`
}

type establishmentUpdateRequest struct {
	Nome      string `json:"nome"`
	Endereco  string `json:"endereco"`
	Descricao string `json:"descricao"`
	Telefone  string `json:"telefone"`
	Imagem    string `json:"imagem"`
}

type ratingCreateRequest struct {
	EstabelecimentoID string `json:"estabelecimento_id" validate:"required"`
	ClienteID         string `json:"cliente_id" validate:"required"`
	Nota              int    `json:"nota" validate:"required,min=1,max=5"`
	Comentario        string `json:"comentario"`
}

type ratingUpdateRequest struct {
	Nota       int    `json:"nota" validate:"required,min=1,max=5"`
	Comentario string `json:"comentario"`
}

type customerResponse struct {
	ID       string `json:"id"`
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone,omitempty"`
	CPF      string `json:"cpf,omitempty"`
}

type establishmentResponse struct {
	ID            string  `json:"id"`
	Nome          string  `json:"nome"`
	Email         string  `json:"email,omitempty"`
	Endereco      string  `json:"endereco"`
	Descricao     string  `json:"descricao,omitempty"`
	Telefone      string  `json:"telefone,omitempty"`
	CNPJ          string  `json:"cnpj,omitempty"`
	TipoID        int     `json:"tipo_id"`
	Categoria     string  `json:"categoria,omitempty"`
	Imagem        string  `json:"imagem,omitempty"`
	AverageRating float64 `json:"averageRating"`
	NumRatings    int     `json:"numRatings"`
}

type customerAuthResponse struct {
	Cliente customerResponse `json:"cliente"`
	Token   string           `json:"token"`
}

type businessAuthResponse struct {
	Estabelecimento establishmentResponse `json:"estabelecimento"`
	Token           string                `json:"token"`
}

type ratingResponse struct {
	ID                string `json:"id"`
	EstabelecimentoID string `json:"estabelecimento_id"`
	ClienteID         string `json:"cliente_id"`
	Nota              int    `json:"nota"`
	Comentario        string `json:"comentario,omitempty"`
	Data              string `json:"data"`
}

type categoryResponse struct {
	ID        int    `json:"id"`
	Nome      string `json:"nome"`
	Descricao string `json:"descricao,omitempty"`
}
