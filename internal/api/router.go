package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/99minutos/auction-marketplace/docs"
	"github.com/99minutos/auction-marketplace/internal/api/handler"
	"github.com/99minutos/auction-marketplace/internal/api/middleware"
	"github.com/99minutos/auction-marketplace/internal/core/ports"
	"github.com/99minutos/auction-marketplace/internal/infrastructure/http/handlers"
)

// Dependencies are the collaborators the HTTP layer needs.
type Dependencies struct {
	Products ports.ProductService
	Bids     ports.BidService
	Users    ports.UserService
	Auth     ports.AuthService
	Activity ports.ActivityService
	Verifier ports.TokenVerifier

	Logger         zerolog.Logger
	Checks         []handlers.DependencyCheck
	MaxPictureSize int64

	// Metrics receives the request metrics and backs /metrics. Nil means the
	// default Prometheus registry.
	Metrics *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Logger))
	e.Use(echomiddleware.CORS())

	promConfig := echoprometheus.MiddlewareConfig{Subsystem: "marketplace"}
	metricsHandler := echoprometheus.NewHandler()
	if deps.Metrics != nil {
		promConfig.Registerer = deps.Metrics
		metricsHandler = echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: deps.Metrics})
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(promConfig))

	// --- Handlers ---
	productHandler := handler.NewProductHandler(deps.Products, deps.MaxPictureSize)
	bidHandler := handler.NewBidHandler(deps.Bids)
	userHandler := handler.NewUserHandler(deps.Users)
	authHandler := handler.NewAuthHandler(deps.Auth)
	activityHandler := handler.NewActivityHandler(deps.Activity)
	authMiddleware := middleware.Auth(deps.Verifier)

	api := e.Group("/api")

	// --- Auth routes ---
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// --- Products ---
	api.GET("/products", productHandler.List)
	api.GET("/products/:productId", productHandler.Get)
	api.POST("/products", productHandler.Create, authMiddleware)
	api.PUT("/products/:productId", productHandler.Update, authMiddleware)
	api.DELETE("/products/:productId", productHandler.Delete, authMiddleware)
	api.PUT("/products/:productId/picture", productHandler.UploadPicture, authMiddleware)

	// --- Bids ---
	api.POST("/products/:productId/bids", bidHandler.Place, authMiddleware)
	api.DELETE("/bids/:bidId", bidHandler.Delete, authMiddleware)

	// --- Users ---
	api.GET("/users/:userId", userHandler.Get)

	// --- Activity trail (admins only) ---
	api.GET("/activity", activityHandler.List, authMiddleware, middleware.RequireAdmin())

	// --- Health checks (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.Checks...)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	e.GET("/metrics", metricsHandler)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// requestLogger writes one structured line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			event := log.Info()
			if v.Status >= 500 {
				event = log.Error()
			}
			event.
				Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}
