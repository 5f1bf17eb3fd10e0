package routes

import (
	"time"

	"github.com/fogonlabs/comanda/internal/config"
	domainRepo "github.com/fogonlabs/comanda/internal/domain/repository"
	"github.com/fogonlabs/comanda/internal/presentation/http/handler"
	"github.com/fogonlabs/comanda/internal/presentation/http/middleware"
	"github.com/fogonlabs/comanda/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Order     *handler.OrderHandler
	Payment   *handler.PaymentHandler
	Shift     *handler.ShiftHandler
	Customer  *handler.CustomerHandler
	Menu      *handler.MenuHandler
	Inventory *handler.InventoryHandler
	Table     *handler.TableHandler
	Settings  *handler.SettingsHandler
	Report    *handler.ReportHandler
	Waiter    *handler.WaiterHandler
	Printer   *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
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
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-waiter rate limiter
		rateLimiter := middleware.NewWaiterRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		// Retried checkout and order mutations replay their stored response
		protected.Use(middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}))

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Profile routes
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile/pin", h.Auth.ChangePIN)

	// Settings
	protected.GET("/settings", h.Settings.GetSettings)
	protected.PUT("/settings", middleware.RequireManager(), h.Settings.UpdateSettings)

	registerOrderRoutes(protected, h)
	registerShiftRoutes(protected, h)
	registerCustomerRoutes(protected, h)
	registerMenuRoutes(protected, h)
	registerInventoryRoutes(protected, h)
	registerTableRoutes(protected, h)
	registerReportRoutes(protected, h)
	registerWaiterRoutes(protected, h)
	registerPrinterRoutes(protected, h)
}

func registerOrderRoutes(protected *gin.RouterGroup, h *Handlers) {
	orders := protected.Group("/orders")
	{
		orders.GET("", h.Order.List)
		orders.GET("/open", h.Order.ListOpen)
		orders.POST("", h.Order.Create)
		orders.GET("/:id", h.Order.Get)
		orders.POST("/:id/items", h.Order.AddItem)
		orders.PUT("/:id/items/:menu_item_id", h.Order.SetItemQuantity)
		orders.POST("/:id/discount", h.Order.ApplyDiscount)
		orders.DELETE("/:id/discount", h.Order.RemoveDiscount)
		orders.PUT("/:id/customer", h.Order.AssignCustomer)
		orders.POST("/:id/kitchen-ticket", h.Order.KitchenTicket)
		orders.POST("/:id/payments", h.Payment.Reconcile)
		// Cancelling a tab voids sold items, so it takes a manager
		orders.POST("/:id/cancel", middleware.RequireManager(), h.Order.Cancel)
	}
}

func registerShiftRoutes(protected *gin.RouterGroup, h *Handlers) {
	shifts := protected.Group("/shifts")
	{
		shifts.GET("", h.Shift.List)
		shifts.POST("", h.Shift.Open)
		shifts.GET("/current", h.Shift.Current)
		shifts.POST("/current/movements", h.Shift.RecordMovement)
		shifts.POST("/current/close", h.Shift.Close)
		shifts.GET("/:id", h.Shift.Get)
	}
}

func registerCustomerRoutes(protected *gin.RouterGroup, h *Handlers) {
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
		customers.POST("/:id/credit-payments", h.Customer.CreditPayment)
	}
}

func registerMenuRoutes(protected *gin.RouterGroup, h *Handlers) {
	menu := protected.Group("/menu")
	{
		menu.GET("/categories", h.Menu.ListCategories)
		menu.GET("/items", h.Menu.ListItems)
		menu.GET("/items/:id", h.Menu.GetItem)

		admin := menu.Group("")
		admin.Use(middleware.RequireManager())
		{
			admin.POST("/categories", h.Menu.CreateCategory)
			admin.PUT("/categories/:id", h.Menu.UpdateCategory)
			admin.DELETE("/categories/:id", h.Menu.DeleteCategory)
			admin.POST("/items", h.Menu.CreateItem)
			admin.PUT("/items/:id", h.Menu.UpdateItem)
			admin.DELETE("/items/:id", h.Menu.DeleteItem)
		}
	}
}

func registerInventoryRoutes(protected *gin.RouterGroup, h *Handlers) {
	inventory := protected.Group("/inventory")
	inventory.Use(middleware.RequireManager())
	{
		inventory.GET("", h.Inventory.List)
		inventory.GET("/low-stock", h.Inventory.ListLowStock)
		inventory.POST("", h.Inventory.Create)
		inventory.GET("/:id", h.Inventory.Get)
		inventory.PUT("/:id", h.Inventory.Update)
		inventory.POST("/:id/adjust", h.Inventory.Adjust)
		inventory.DELETE("/:id", h.Inventory.Delete)
	}
}

func registerTableRoutes(protected *gin.RouterGroup, h *Handlers) {
	areas := protected.Group("/areas")
	{
		areas.GET("", h.Table.ListAreas)

		admin := areas.Group("")
		admin.Use(middleware.RequireManager())
		{
			admin.POST("", h.Table.CreateArea)
			admin.PUT("/:id", h.Table.UpdateArea)
			admin.DELETE("/:id", h.Table.DeleteArea)
		}
	}

	tables := protected.Group("/tables")
	tables.Use(middleware.RequireManager())
	{
		tables.POST("", h.Table.CreateTable)
		tables.PUT("/:id", h.Table.UpdateTable)
		tables.DELETE("/:id", h.Table.DeleteTable)
	}
}

func registerReportRoutes(protected *gin.RouterGroup, h *Handlers) {
	reports := protected.Group("/reports")
	reports.Use(middleware.RequireManager())
	{
		reports.GET("/sales", h.Report.GetSalesReport)
		reports.GET("/sales/daily", h.Report.GetDailySales)
	}
}

func registerWaiterRoutes(protected *gin.RouterGroup, h *Handlers) {
	waiters := protected.Group("/waiters")
	waiters.Use(middleware.RequireRole("ADMIN"))
	{
		waiters.GET("", h.Waiter.List)
		waiters.POST("", h.Waiter.Create)
		waiters.GET("/:id", h.Waiter.Get)
		waiters.PUT("/:id", h.Waiter.Update)
		waiters.DELETE("/:id", h.Waiter.Delete)
	}
}

func registerPrinterRoutes(protected *gin.RouterGroup, h *Handlers) {
	printerGroup := protected.Group("/printer")
	{
		printerGroup.GET("/status", h.Printer.GetStatus)
		printerGroup.POST("/test", h.Printer.TestPrint)
		printerGroup.POST("/kick", h.Printer.KickDrawer)
		printerGroup.POST("/receipt", h.Printer.PrintReceipt)
	}
}
