package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/meetpoint/meetpoint-client/internal/api/store"
)

// CategoryHandler serves the tipos endpoints.
type CategoryHandler struct {
	store *store.Memory
}

func NewCategoryHandler(db *store.Memory) *CategoryHandler {
	return &CategoryHandler{store: db}
}

// List handles GET /tipos.
func (h *CategoryHandler) List(c echo.Context) error {
	categories := h.store.Categories()
	out := make([]categoryResponse, 0, len(categories))
	for _, cat := range categories {
		out = append(out, toCategoryResponse(cat))
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /tipos/:id.
func (h *CategoryHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id inválido")
	}
	cat, err := h.store.CategoryByID(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCategoryResponse(cat))
}
