package handler

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/meetpoint/meetpoint-client/internal/api/metrics"
	"github.com/meetpoint/meetpoint-client/internal/api/store"
)

const tokenTTL = 24 * time.Hour

// AuthHandler implements the clientes/estabelecimentos auth endpoints.
type AuthHandler struct {
	store     *store.Memory
	jwtSecret string
	log       zerolog.Logger
}

func NewAuthHandler(db *store.Memory, jwtSecret string, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{store: db, jwtSecret: jwtSecret, log: log}
}

// RegisterCustomer creates a customer account.
//
// @Summary      Register a customer
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      customerRegisterRequest  true  "Customer registration"
// @Success      201   {object}  customerAuthResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /clientes [post]
func (h *AuthHandler) RegisterCustomer(c echo.Context) error {
	var req customerRegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "payload inválido")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Senha), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	created, err := h.store.CreateCustomer(store.Customer{
		Nome:      req.Nome,
		Email:     req.Email,
		SenhaHash: string(hash),
		Telefone:  req.Telefone,
		CPF:       req.CPF,
	})
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("customer", "rejected").Inc()
		return err
	}

	token, err := h.signToken(created.ID, "customer")
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("customer", "ok").Inc()
	h.log.Info().Str("cliente_id", created.ID).Msg("customer registered")
	return c.JSON(http.StatusCreated, customerAuthResponse{
		Cliente: toCustomerResponse(created),
		Token:   token,
	})
}

// LoginCustomer authenticates a customer account.
//
// @Summary      Customer login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  customerAuthResponse
// @Failure      401   {object}  map[string]string
// @Router       /clientes/login [post]
func (h *AuthHandler) LoginCustomer(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "payload inválido")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	customer, err := h.store.CustomerByEmail(req.Email)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("customer", "rejected").Inc()
		return store.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(customer.SenhaHash), []byte(req.Senha)) != nil {
		metrics.LoginsTotal.WithLabelValues("customer", "rejected").Inc()
		return store.ErrInvalidCredentials
	}

	token, err := h.signToken(customer.ID, "customer")
	if err != nil {
		return err
	}

	metrics.LoginsTotal.WithLabelValues("customer", "ok").Inc()
	return c.JSON(http.StatusOK, customerAuthResponse{
		Cliente: toCustomerResponse(customer),
		Token:   token,
	})
}

// RegisterBusiness creates a business account (which is also the
// establishment entity).
//
// @Summary      Register a business
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      businessRegisterRequest  true  "Business registration"
// @Success      201   {object}  businessAuthResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /estabelecimentos [post]
func (h *AuthHandler) RegisterBusiness(c echo.Context) error {
	var req businessRegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "payload inválido")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Senha), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	created, err := h.store.CreateEstablishment(store.Establishment{
		Nome:      req.Nome,
		Email:     req.Email,
		SenhaHash: string(hash),
		Telefone:  req.Telefone,
		CNPJ:      req.CNPJ,
		Endereco:  req.Endereco,
		Descricao: req.Descricao,
		TipoID:    req.TipoID,
	})
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("business", "rejected").Inc()
		return err
	}

	token, err := h.signToken(created.ID, "business")
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("business", "ok").Inc()
	h.log.Info().Str("estabelecimento_id", created.ID).Msg("business registered")
	return c.JSON(http.StatusCreated, businessAuthResponse{
		Estabelecimento: toEstablishmentResponse(created, h.store.CategoryName(created.TipoID), 0, 0),
		Token:           token,
	})
}

// LoginBusiness authenticates a business account.
//
// @Summary      Business login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  businessAuthResponse
// @Failure      401   {object}  map[string]string
// @Router       /estabelecimentos/login [post]
func (h *AuthHandler) LoginBusiness(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "payload inválido")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	business, err := h.store.EstablishmentByEmail(req.Email)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("business", "rejected").Inc()
		return store.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(business.SenhaHash), []byte(req.Senha)) != nil {
		metrics.LoginsTotal.WithLabelValues("business", "rejected").Inc()
		return store.ErrInvalidCredentials
	}

	token, err := h.signToken(business.ID, "business")
	if err != nil {
		return err
	}

	avg, count := h.store.Aggregate(business.ID)
	metrics.LoginsTotal.WithLabelValues("business", "ok").Inc()
	return c.JSON(http.StatusOK, businessAuthResponse{
		Estabelecimento: toEstablishmentResponse(business, h.store.CategoryName(business.TipoID), avg, count),
		Token:           token,
	})
}

func (h *AuthHandler) signToken(subject, kind string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  subject,
		"kind": kind,
		"exp":  time.Now().Add(tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(h.jwtSecret))
}
