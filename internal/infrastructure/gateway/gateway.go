package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/meetpoint/meetpoint-client/internal/core/domain"
	"github.com/meetpoint/meetpoint-client/internal/core/ports"
)

// Request bodies follow the Portuguese backend contract.

type loginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type customerRegisterRequest struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Senha    string `json:"senha"`
	Telefone string `json:"telefone,omitempty"`
	CPF      string `json:"cpf,omitempty"`
}

type businessRegisterRequest struct {
	Nome      string `json:"nome"`
	Email     string `json:"email"`
	Senha     string `json:"senha"`
	Telefone  string `json:"telefone,omitempty"`
	CNPJ      string `json:"cnpj"`
	Endereco  string `json:"endereco"`
	Descricao string `json:"descricao,omitempty"`
	TipoID    int    `json:"tipo_id"`
	Categoria string `json:"categoria,omitempty"`
}

type customerUpdateRequest struct {
	Nome     string `json:"nome,omitempty"`
	Email    string `json:"email,omitempty"`
	Telefone string `json:"telefone,omitempty"`
	CPF      string `json:"cpf,omitempty"`
}

type establishmentUpdateRequest struct {
	Nome      string `json:"nome,omitempty"`
	Endereco  string `json:"endereco,omitempty"`
	Descricao string `json:"descricao,omitempty"`
	Telefone  string `json:"telefone,omitempty"`
	Imagem    string `json:"imagem,omitempty"`
}

type ratingCreateRequest struct {
	EstabelecimentoID string `json:"estabelecimento_id"`
	ClienteID         string `json:"cliente_id"`
	Nota              int    `json:"nota"`
	Comentario        string `json:"comentario,omitempty"`
}

type ratingUpdateRequest struct {
	Nota       int    `json:"nota"`
	Comentario string `json:"comentario,omitempty"`
}

// LoginCustomer authenticates a customer account and persists the returned
// bearer token.
func (c *Client) LoginCustomer(ctx context.Context, email, password string) (ports.AuthResult, error) {
	var resp customerAuthResponse
	if err := c.do(ctx, http.MethodPost, "/clientes/login", loginRequest{Email: email, Senha: password}, &resp); err != nil {
		return ports.AuthResult{}, err
	}
	c.persistToken(resp.Token)
	return ports.AuthResult{User: resp.Cliente.toDomain(domain.AccountCustomer), Token: resp.Token}, nil
}

// LoginBusiness authenticates a business account and persists the returned
// bearer token.
func (c *Client) LoginBusiness(ctx context.Context, email, password string) (ports.AuthResult, error) {
	var resp businessAuthResponse
	if err := c.do(ctx, http.MethodPost, "/estabelecimentos/login", loginRequest{Email: email, Senha: password}, &resp); err != nil {
		return ports.AuthResult{}, err
	}
	c.persistToken(resp.Token)
	return ports.AuthResult{User: resp.Estabelecimento.toDomain(domain.AccountBusiness), Token: resp.Token}, nil
}

func (c *Client) RegisterCustomer(ctx context.Context, in ports.CustomerRegistrationInput) (ports.AuthResult, error) {
	body := customerRegisterRequest{
		Nome:     in.Name,
		Email:    in.Email,
		Senha:    in.Password,
		Telefone: in.Phone,
		CPF:      in.CPF,
	}
	var resp customerAuthResponse
	if err := c.do(ctx, http.MethodPost, "/clientes", body, &resp); err != nil {
		return ports.AuthResult{}, err
	}
	c.persistToken(resp.Token)
	return ports.AuthResult{User: resp.Cliente.toDomain(domain.AccountCustomer), Token: resp.Token}, nil
}

func (c *Client) RegisterBusiness(ctx context.Context, in ports.BusinessRegistrationInput) (ports.AuthResult, error) {
	body := businessRegisterRequest{
		Nome:      in.Name,
		Email:     in.Email,
		Senha:     in.Password,
		Telefone:  in.Phone,
		CNPJ:      in.CNPJ,
		Endereco:  in.Address,
		Descricao: in.Description,
		TipoID:    in.TipoID,
		Categoria: in.Category,
	}
	var resp businessAuthResponse
	if err := c.do(ctx, http.MethodPost, "/estabelecimentos", body, &resp); err != nil {
		return ports.AuthResult{}, err
	}
	c.persistToken(resp.Token)
	return ports.AuthResult{User: resp.Estabelecimento.toDomain(domain.AccountBusiness), Token: resp.Token}, nil
}

// Logout destroys the stored credential. The backend keeps no server-side
// session, so nothing is sent over the wire.
func (c *Client) Logout(_ context.Context) error {
	return c.tokens.Clear()
}

func (c *Client) Categories(ctx context.Context) ([]domain.Category, error) {
	var payload []categoryPayload
	if err := c.do(ctx, http.MethodGet, "/tipos", nil, &payload); err != nil {
		return nil, err
	}
	categories := make([]domain.Category, 0, len(payload))
	for _, p := range payload {
		categories = append(categories, p.toDomain())
	}
	return categories, nil
}

func (c *Client) CategoryByID(ctx context.Context, id int) (domain.Category, error) {
	var p categoryPayload
	if err := c.do(ctx, http.MethodGet, "/tipos/"+strInt(id), nil, &p); err != nil {
		return domain.Category{}, err
	}
	return p.toDomain(), nil
}

func (c *Client) Establishments(ctx context.Context, q ports.EstablishmentQuery) ([]domain.Establishment, error) {
	params := url.Values{}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.Tipo != "" && q.Tipo != "Todos" {
		params.Set("tipo", q.Tipo)
	}
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}

	endpoint := "/estabelecimentos"
	if encoded := params.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	var payload []establishmentPayload
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &payload); err != nil {
		return nil, err
	}
	establishments := make([]domain.Establishment, 0, len(payload))
	for _, p := range payload {
		establishments = append(establishments, p.toDomain())
	}
	return establishments, nil
}

func (c *Client) EstablishmentByID(ctx context.Context, id string) (domain.Establishment, error) {
	var p establishmentPayload
	if err := c.do(ctx, http.MethodGet, "/estabelecimentos/"+url.PathEscape(id), nil, &p); err != nil {
		return domain.Establishment{}, err
	}
	return p.toDomain(), nil
}

func (c *Client) UpdateEstablishment(ctx context.Context, id string, in ports.EstablishmentUpdateInput) (domain.Establishment, error) {
	body := establishmentUpdateRequest{
		Nome:      in.Name,
		Endereco:  in.Address,
		Descricao: in.Description,
		Telefone:  in.Phone,
		Imagem:    in.ImageURL,
	}
	var p establishmentPayload
	if err := c.do(ctx, http.MethodPut, "/estabelecimentos/"+url.PathEscape(id), body, &p); err != nil {
		return domain.Establishment{}, err
	}
	return p.toDomain(), nil
}

func (c *Client) RatingsByEstablishment(ctx context.Context, establishmentID string) ([]domain.Rating, error) {
	return c.ratings(ctx, "/estabelecimentos/"+url.PathEscape(establishmentID)+"/avaliacoes")
}

func (c *Client) RatingsByCustomer(ctx context.Context, customerID string) ([]domain.Rating, error) {
	return c.ratings(ctx, "/clientes/"+url.PathEscape(customerID)+"/avaliacoes")
}

func (c *Client) ratings(ctx context.Context, endpoint string) ([]domain.Rating, error) {
	var payload []ratingPayload
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &payload); err != nil {
		return nil, err
	}
	ratings := make([]domain.Rating, 0, len(payload))
	for _, p := range payload {
		ratings = append(ratings, p.toDomain())
	}
	return ratings, nil
}

func (c *Client) CreateRating(ctx context.Context, in ports.RatingInput) (domain.Rating, error) {
	body := ratingCreateRequest{
		EstabelecimentoID: in.EstablishmentID,
		ClienteID:         in.CustomerID,
		Nota:              in.Score,
		Comentario:        in.Comment,
	}
	var p ratingPayload
	if err := c.do(ctx, http.MethodPost, "/avaliacoes", body, &p); err != nil {
		return domain.Rating{}, err
	}
	return p.toDomain(), nil
}

func (c *Client) UpdateRating(ctx context.Context, ratingID string, in ports.RatingUpdateInput) (domain.Rating, error) {
	body := ratingUpdateRequest{Nota: in.Score, Comentario: in.Comment}
	var p ratingPayload
	if err := c.do(ctx, http.MethodPut, "/avaliacoes/"+url.PathEscape(ratingID), body, &p); err != nil {
		return domain.Rating{}, err
	}
	return p.toDomain(), nil
}

func (c *Client) DeleteRating(ctx context.Context, ratingID string) error {
	return c.do(ctx, http.MethodDelete, "/avaliacoes/"+url.PathEscape(ratingID), nil, nil)
}

func (c *Client) CustomerByID(ctx context.Context, id string) (domain.User, error) {
	var p userPayload
	if err := c.do(ctx, http.MethodGet, "/clientes/"+url.PathEscape(id), nil, &p); err != nil {
		return domain.User{}, err
	}
	return p.toDomain(domain.AccountCustomer), nil
}

func (c *Client) UpdateCustomer(ctx context.Context, id string, in ports.CustomerUpdateInput) (domain.User, error) {
	body := customerUpdateRequest{
		Nome:     in.Name,
		Email:    in.Email,
		Telefone: in.Phone,
		CPF:      in.CPF,
	}
	var p userPayload
	if err := c.do(ctx, http.MethodPut, "/clientes/"+url.PathEscape(id), body, &p); err != nil {
		return domain.User{}, err
	}
	return p.toDomain(domain.AccountCustomer), nil
}

// persistToken stores the credential returned by an auth call. A storage
// failure is logged and otherwise ignored: the login itself succeeded and the
// in-memory session remains usable for this process.
func (c *Client) persistToken(token string) {
	if token == "" {
		return
	}
	if err := c.tokens.Save(token); err != nil {
		c.log.Warn().Err(err).Msg("failed to persist auth token")
	}
}
