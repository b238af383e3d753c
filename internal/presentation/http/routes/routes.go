package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Amankewlld/swift-register/internal/config"
	"github.com/Amankewlld/swift-register/internal/presentation/http/handler"
	"github.com/Amankewlld/swift-register/internal/presentation/http/middleware"
	"github.com/Amankewlld/swift-register/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Session  *handler.SessionHandler
	Catalog  *handler.CatalogHandler
	Cart     *handler.CartHandler
	Checkout *handler.CheckoutHandler
	Day      *handler.DayHandler
	Printer  *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		v1.POST("/auth/sign-in", h.Auth.SignIn)

		// Protected routes (session token required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-cashier rate limiter
		rateLimiter := middleware.NewCashierRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Session
	protected.GET("/session", h.Session.GetSession)

	// Catalog
	catalog := protected.Group("/catalog")
	{
		catalog.GET("/products", h.Catalog.List)
		catalog.GET("/categories", h.Catalog.Categories)
	}

	// Cart
	cart := protected.Group("/cart")
	{
		cart.GET("", h.Cart.Get)
		cart.POST("/items", h.Cart.AddItem)
		cart.POST("/custom-items", h.Cart.AddCustomItem)
		cart.PATCH("/items/:id", h.Cart.UpdateQuantity)
		cart.DELETE("/items/:id", h.Cart.RemoveItem)
		cart.DELETE("", h.Cart.Clear)
	}

	// Checkout
	checkout := protected.Group("/checkout")
	{
		checkout.POST("", h.Checkout.Proceed)
		checkout.GET("", h.Checkout.GetTotals)
		checkout.POST("/back", h.Checkout.Back)
		checkout.PUT("/discount", h.Checkout.SetDiscount)
		checkout.PUT("/payment-method", h.Checkout.SetPaymentMethod)
		checkout.PUT("/tender", h.Checkout.SetTender)
		checkout.POST("/receipt", h.Checkout.Receipt)
		checkout.POST("/complete", h.Checkout.Complete)
	}

	// Daily sales
	day := protected.Group("/day")
	{
		day.GET("", h.Day.Summary)
		day.POST("/reset", h.Day.Reset)
	}

	// Printer
	printerGroup := protected.Group("/printer")
	{
		printerGroup.GET("/status", h.Printer.GetStatus)
		printerGroup.POST("/test", h.Printer.TestPrint)
	}
}
