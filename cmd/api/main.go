package main

import (
	"log"
	"os"

	"github.com/fogonlabs/comanda/internal/application/service"
	"github.com/fogonlabs/comanda/internal/config"
	"github.com/fogonlabs/comanda/internal/infrastructure/database"
	"github.com/fogonlabs/comanda/internal/infrastructure/repository"
	"github.com/fogonlabs/comanda/internal/presentation/http/handler"
	"github.com/fogonlabs/comanda/internal/presentation/http/routes"
	"github.com/fogonlabs/comanda/pkg/printer"
	"github.com/fogonlabs/comanda/pkg/utils"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	waiterRepo := repository.NewWaiterRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	tableRepo := repository.NewTableRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	counterRepo := repository.NewCounterRepository(db)
	shiftRepo := repository.NewShiftRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	txManager := repository.NewTxManager(db)

	// Initialize services
	authService := service.NewAuthService(waiterRepo, jwtManager)
	waiterService := service.NewWaiterService(waiterRepo, shiftRepo)
	customerService := service.NewCustomerService(customerRepo)
	menuService := service.NewMenuService(menuRepo, inventoryRepo)
	inventoryService := service.NewInventoryService(inventoryRepo)
	tableService := service.NewTableService(tableRepo, orderRepo)
	orderService := service.NewOrderService(orderRepo, counterRepo, customerRepo, menuRepo, inventoryRepo, tableRepo, settingsRepo)
	paymentService := service.NewPaymentService(orderRepo, shiftRepo, customerRepo, settingsRepo, txManager)
	shiftService := service.NewShiftService(shiftRepo, orderRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	reportService := service.NewReportService(analyticsRepo)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.Address,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	printerService := service.NewPrinterService(thermalPrinter, orderRepo, settingsRepo, cfg.Printer.Type, cfg.Printer.Width)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService, waiterService),
		Order:     handler.NewOrderHandler(orderService, printerService),
		Payment:   handler.NewPaymentHandler(paymentService, printerService),
		Shift:     handler.NewShiftHandler(shiftService),
		Customer:  handler.NewCustomerHandler(customerService),
		Menu:      handler.NewMenuHandler(menuService),
		Inventory: handler.NewInventoryHandler(inventoryService),
		Table:     handler.NewTableHandler(tableService),
		Settings:  handler.NewSettingsHandler(settingsService),
		Report:    handler.NewReportHandler(reportService),
		Waiter:    handler.NewWaiterHandler(waiterService),
		Printer:   handler.NewPrinterHandler(printerService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
