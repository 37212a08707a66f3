package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/meetpoint/meetpoint-client/internal/api/store"
)

// CustomerHandler serves the customer profile endpoints.
type CustomerHandler struct {
	store *store.Memory
	log   zerolog.Logger
}

func NewCustomerHandler(db *store.Memory, log zerolog.Logger) *CustomerHandler {
	return &CustomerHandler{store: db, log: log}
}

// Get handles GET /clientes/:id.
func (h *CustomerHandler) Get(c echo.Context) error {
	customer, err := h.store.CustomerByID(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCustomerResponse(customer))
}

// Update handles PUT /clientes/:id. Customers may only update themselves.
func (h *CustomerHandler) Update(c echo.Context) error {
	id := c.Param("id")
	if uid, _ := c.Get("user_id").(string); uid != id {
		return echo.NewHTTPError(http.StatusForbidden, "acesso negado")
	}

	var req customerUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "payload inválido")
	}

	updated, err := h.store.UpdateCustomer(id, store.CustomerUpdate{
		Nome:     req.Nome,
		Email:    req.Email,
		Telefone: req.Telefone,
		CPF:      req.CPF,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCustomerResponse(updated))
}
