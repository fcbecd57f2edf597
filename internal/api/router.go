package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/fix4home/admin-gateway/internal/api/handler"
	"github.com/fix4home/admin-gateway/internal/api/middleware"
	"github.com/fix4home/admin-gateway/internal/core/ports"
	"github.com/fix4home/admin-gateway/internal/pkg/config"
	"github.com/fix4home/admin-gateway/pkg/logger"
)

// Services bundles the upstream-facing dependencies the router wires into
// handlers.
type Services struct {
	Sessions ports.SessionManager
	Articles ports.ArticleService
	Bookings ports.BookingService
	Images   ports.ImageService
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, svc Services) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("fix4home_admin"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Component("http"))

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(svc.Sessions)
	loginLimit := middleware.RateLimit(cfg.Login.RateRPS, cfg.Login.RateBurst, logger.Component("ratelimit"))

	e.POST("/login", authHandler.Login, loginLimit)
	e.POST("/logout", authHandler.Logout)
	e.GET("/me", authHandler.Me)

	// --- Admin area: token + ADMIN role on every request ---
	admin := e.Group("/admin", middleware.Guard(svc.Sessions, "/login"))

	articleHandler := handler.NewArticleHandler(svc.Articles)
	admin.GET("/articles", articleHandler.List)
	admin.GET("/articles/published", articleHandler.ListPublished)
	admin.GET("/articles/search", articleHandler.Search)
	admin.GET("/articles/:id", articleHandler.Get)
	admin.POST("/articles", articleHandler.Create)
	admin.PUT("/articles/:id", articleHandler.Update)
	admin.POST("/articles/:id/publish", articleHandler.Publish)
	admin.POST("/articles/:id/unpublish", articleHandler.Unpublish)
	admin.DELETE("/articles/:id", articleHandler.Delete)

	bookingHandler := handler.NewBookingHandler(svc.Bookings)
	admin.GET("/bookings", bookingHandler.List)
	admin.GET("/bookings/:id", bookingHandler.Get)
	admin.PATCH("/bookings/:id/status", bookingHandler.UpdateStatus)

	imageHandler := handler.NewImageHandler(svc.Images)
	admin.POST("/images", imageHandler.Upload)
	admin.GET("/images", imageHandler.List)
	admin.GET("/images/:id", imageHandler.Get)
	admin.PUT("/images/:id", imageHandler.Update)
	admin.DELETE("/images/:id", imageHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(cfg.Upstream.BaseURL)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – is the upstream reachable?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
