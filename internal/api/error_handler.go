// Package api wires the development server: an in-memory implementation of
// the MeetPoint REST contract used to exercise the client without real
// infrastructure.
package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/meetpoint/meetpoint-client/internal/api/store"
)

// errorResponse is the canonical error envelope: {"message": "<text>"}.
// Clients also accept an "error" key; this server standardises on "message".
type errorResponse struct {
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known store errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known store errors → deterministic HTTP codes. Conflict messages keep
	// the field name in the text: clients refine 409s by substring.
	switch {
	case errors.Is(err, store.ErrInvalidCredentials):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, store.ErrEmailTaken),
		errors.Is(err, store.ErrCPFTaken),
		errors.Is(err, store.ErrCNPJTaken):
		return http.StatusConflict, err.Error()
	case errors.Is(err, store.ErrCustomerNotFound),
		errors.Is(err, store.ErrEstablishmentNotFound),
		errors.Is(err, store.ErrRatingNotFound),
		errors.Is(err, store.ErrCategoryNotFound):
		return http.StatusNotFound, err.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "erro interno do servidor"
}
