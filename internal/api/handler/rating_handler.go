package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/meetpoint/meetpoint-client/internal/api/metrics"
	"github.com/meetpoint/meetpoint-client/internal/api/store"
)

// RatingHandler serves the avaliações endpoints.
type RatingHandler struct {
	store *store.Memory
	log   zerolog.Logger
}

func NewRatingHandler(db *store.Memory, log zerolog.Logger) *RatingHandler {
	return &RatingHandler{store: db, log: log}
}

// ByEstablishment handles GET /estabelecimentos/:id/avaliacoes.
func (h *RatingHandler) ByEstablishment(c echo.Context) error {
	if _, err := h.store.EstablishmentByID(c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRatingResponses(h.store.RatingsByEstablishment(c.Param("id"))))
}

// ByCustomer handles GET /clientes/:id/avaliacoes.
func (h *RatingHandler) ByCustomer(c echo.Context) error {
	if _, err := h.store.CustomerByID(c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRatingResponses(h.store.RatingsByCustomer(c.Param("id"))))
}

// Create handles POST /avaliacoes. The authenticated customer may only rate
// on their own behalf.
func (h *RatingHandler) Create(c echo.Context) error {
	var req ratingCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "payload inválido")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if uid, _ := c.Get("user_id").(string); uid != req.ClienteID {
		return echo.NewHTTPError(http.StatusForbidden, "acesso negado")
	}

	created, err := h.store.CreateRating(store.Rating{
		EstabelecimentoID: req.EstabelecimentoID,
		ClienteID:         req.ClienteID,
		Nota:              req.Nota,
		Comentario:        req.Comentario,
	})
	if err != nil {
		return err
	}

	metrics.RatingsCreatedTotal.WithLabelValues(strconv.Itoa(created.Nota)).Inc()
	h.log.Info().
		Str("avaliacao_id", created.ID).
		Str("estabelecimento_id", created.EstabelecimentoID).
		Int("nota", created.Nota).
		Msg("rating created")
	return c.JSON(http.StatusCreated, toRatingResponse(created))
}

// Update handles PUT /avaliacoes/:id.
func (h *RatingHandler) Update(c echo.Context) error {
	var req ratingUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "payload inválido")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.store.UpdateRating(c.Param("id"), req.Nota, req.Comentario)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRatingResponse(updated))
}

// Delete handles DELETE /avaliacoes/:id.
func (h *RatingHandler) Delete(c echo.Context) error {
	if err := h.store.DeleteRating(c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func toRatingResponses(ratings []store.Rating) []ratingResponse {
	out := make([]ratingResponse, 0, len(ratings))
	for _, r := range ratings {
		out = append(out, toRatingResponse(r))
	}
	return out
}
