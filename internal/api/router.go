package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/meetpoint/meetpoint-client/internal/api/handler"
	"github.com/meetpoint/meetpoint-client/internal/api/middleware"
	"github.com/meetpoint/meetpoint-client/internal/api/store"
)

// Options configures the dev server router.
type Options struct {
	Store     *store.Memory
	JWTSecret string
	// BasePath is the prefix all API routes live under, e.g. "/api".
	BasePath string
	Log      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("meetpoint_api"))

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(opts.Store, opts.JWTSecret, opts.Log)
	establishmentHandler := handler.NewEstablishmentHandler(opts.Store, opts.Log)
	ratingHandler := handler.NewRatingHandler(opts.Store, opts.Log)
	customerHandler := handler.NewCustomerHandler(opts.Store, opts.Log)
	categoryHandler := handler.NewCategoryHandler(opts.Store)
	authRequired := middleware.Auth(opts.JWTSecret)

	// --- Probes and metrics (outside the API base path) ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/metrics", echoprometheus.NewHandler())

	g := e.Group(opts.BasePath)

	// --- Auth ---
	g.POST("/clientes", authHandler.RegisterCustomer)
	g.POST("/clientes/login", authHandler.LoginCustomer)
	g.POST("/estabelecimentos", authHandler.RegisterBusiness)
	g.POST("/estabelecimentos/login", authHandler.LoginBusiness)

	// --- Categories ---
	g.GET("/tipos", categoryHandler.List)
	g.GET("/tipos/:id", categoryHandler.Get)

	// --- Establishments ---
	g.GET("/estabelecimentos", establishmentHandler.List)
	g.GET("/estabelecimentos/:id", establishmentHandler.Get)
	g.PUT("/estabelecimentos/:id", establishmentHandler.Update, authRequired)
	g.GET("/estabelecimentos/:id/avaliacoes", ratingHandler.ByEstablishment)

	// --- Customers ---
	g.GET("/clientes/:id", customerHandler.Get)
	g.PUT("/clientes/:id", customerHandler.Update, authRequired)
	g.GET("/clientes/:id/avaliacoes", ratingHandler.ByCustomer)

	// --- Ratings ---
	g.POST("/avaliacoes", ratingHandler.Create, authRequired)
	g.PUT("/avaliacoes/:id", ratingHandler.Update, authRequired)
	g.DELETE("/avaliacoes/:id", ratingHandler.Delete, authRequired)

	return e
}
