package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/meetpoint/meetpoint-client/internal/api/store"
)

// EstablishmentHandler serves the establishment listing, detail and profile
// update endpoints.
type EstablishmentHandler struct {
	store *store.Memory
	log   zerolog.Logger
}

func NewEstablishmentHandler(db *store.Memory, log zerolog.Logger) *EstablishmentHandler {
	return &EstablishmentHandler{store: db, log: log}
}

// List handles GET /estabelecimentos?search=&tipo=&page=&limit=.
func (h *EstablishmentHandler) List(c echo.Context) error {
	search := c.QueryParam("search")
	tipo := c.QueryParam("tipo")

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}

	all := h.store.Establishments(search, tipo)
	if limit > 0 {
		start := (page - 1) * limit
		if start >= len(all) {
			all = nil
		} else {
			end := start + limit
			if end > len(all) {
				end = len(all)
			}
			all = all[start:end]
		}
	}

	out := make([]establishmentResponse, 0, len(all))
	for _, e := range all {
		avg, count := h.store.Aggregate(e.ID)
		out = append(out, toEstablishmentResponse(e, h.store.CategoryName(e.TipoID), avg, count))
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /estabelecimentos/:id.
func (h *EstablishmentHandler) Get(c echo.Context) error {
	e, err := h.store.EstablishmentByID(c.Param("id"))
	if err != nil {
		return err
	}
	avg, count := h.store.Aggregate(e.ID)
	return c.JSON(http.StatusOK, toEstablishmentResponse(e, h.store.CategoryName(e.TipoID), avg, count))
}

// Update handles PUT /estabelecimentos/:id. Only the owning business account
// may update its profile.
func (h *EstablishmentHandler) Update(c echo.Context) error {
	id := c.Param("id")
	if uid, _ := c.Get("user_id").(string); uid != id {
		return echo.NewHTTPError(http.StatusForbidden, "acesso negado")
	}

	var req establishmentUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "payload inválido")
	}

	updated, err := h.store.UpdateEstablishment(id, store.EstablishmentUpdate{
		Nome:      req.Nome,
		Endereco:  req.Endereco,
		Descricao: req.Descricao,
		Telefone:  req.Telefone,
		Imagem:    req.Imagem,
	})
	if err != nil {
		return err
	}

	avg, count := h.store.Aggregate(updated.ID)
	return c.JSON(http.StatusOK, toEstablishmentResponse(updated, h.store.CategoryName(updated.TipoID), avg, count))
}
