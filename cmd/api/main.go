package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/Amankewlld/swift-register/internal/application/service"
	"github.com/Amankewlld/swift-register/internal/config"
	"github.com/Amankewlld/swift-register/internal/domain/entity"
	"github.com/Amankewlld/swift-register/internal/infrastructure/repository"
	"github.com/Amankewlld/swift-register/internal/presentation/http/handler"
	"github.com/Amankewlld/swift-register/internal/presentation/http/routes"
	"github.com/Amankewlld/swift-register/pkg/printer"
	"github.com/Amankewlld/swift-register/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Load the product catalog
	products := repository.DefaultProducts()
	if cfg.Register.CatalogPath != "" {
		loaded, err := repository.LoadCatalogFile(cfg.Register.CatalogPath)
		if err != nil {
			log.Fatalf("Failed to load catalog from %s: %v", cfg.Register.CatalogPath, err)
		}
		products = loaded
	}
	catalogRepo, err := repository.NewCatalogRepository(products)
	if err != nil {
		log.Fatalf("Invalid product catalog: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Initialize services
	registerService := service.NewRegisterService(catalogRepo, cfg.Register.TransitionGrace)
	catalogService := service.NewCatalogService(catalogRepo)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	printerService := service.NewPrinterService(thermalPrinter, cfg.Printer.Type, entity.ReceiptHeader{
		StoreName: cfg.Store.Name,
		Address:   cfg.Store.Address,
		Phone:     cfg.Store.Phone,
	})

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(registerService, jwtManager),
		Session:  handler.NewSessionHandler(registerService),
		Catalog:  handler.NewCatalogHandler(catalogService),
		Cart:     handler.NewCartHandler(registerService),
		Checkout: handler.NewCheckoutHandler(registerService, printerService),
		Day:      handler.NewDayHandler(registerService),
		Printer:  handler.NewPrinterHandler(printerService),
	}

	// Setup router and start the server
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	addr := ":" + cfg.App.Port
	log.Printf("Starting %s on %s (env: %s)", cfg.App.Name, addr, cfg.App.Env)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
