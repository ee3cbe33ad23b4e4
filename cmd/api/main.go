package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/artsemyn/toko-agung-computer-inventory-management/internal/config"
	"github.com/artsemyn/toko-agung-computer-inventory-management/internal/handler"
	"github.com/artsemyn/toko-agung-computer-inventory-management/internal/middleware"
	"github.com/artsemyn/toko-agung-computer-inventory-management/internal/model"
	"github.com/artsemyn/toko-agung-computer-inventory-management/internal/repository"
	"github.com/artsemyn/toko-agung-computer-inventory-management/internal/service"
	"github.com/artsemyn/toko-agung-computer-inventory-management/internal/ws"
	"github.com/artsemyn/toko-agung-computer-inventory-management/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}

	db := database.Connect(cfg)
	// Auto migrate. For production, prefer a dedicated migration tool.
	db.AutoMigrate(&model.User{}, &model.Product{}, &model.StockLog{}, &model.Transaction{})

	seedDefaultOwner(db)

	wsHub := ws.NewHub()
	go wsHub.Run()

	// Dependency injection (wiring layers)
	productRepo := repository.NewProductRepo(db)
	stockLogRepo := repository.NewStockLogRepo(db)
	transactionRepo := repository.NewTransactionRepo(db)
	userRepo := repository.NewUserRepo(db)
	txManager := repository.NewTxManager(db)

	productService := service.NewProductService(productRepo, transactionRepo)
	stockService := service.NewStockService(productRepo, stockLogRepo, txManager, wsHub)
	transactionService := service.NewTransactionService(transactionRepo, productRepo, txManager, wsHub)
	userService := service.NewUserService(userRepo)
	authService := service.NewAuthService(userRepo)

	productHandler := handler.NewProductHandler(productService)
	stockHandler := handler.NewStockHandler(stockService)
	transactionHandler := handler.NewTransactionHandler(transactionService)
	userHandler := handler.NewUserHandler(userService)
	authHandler := handler.NewAuthHandler(authService)

	app := fiber.New(fiber.Config{
		AppName: "Toko Agung Computer Inventory v1.0",
	})

	app.Use(logger.New())  // Request logging
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/reset-password", authHandler.ResetPassword)

	// ============ PROTECTED ROUTES ============
	// Authentication happens here; role checks live inside the services.
	protected := api.Group("", middleware.RequireAuth(userRepo))

	protected.Get("/products", productHandler.GetProducts)
	protected.Get("/products/:id", productHandler.GetProduct)
	protected.Post("/products", productHandler.CreateProduct)
	protected.Put("/products/:id", productHandler.UpdateProduct)
	protected.Delete("/products/:id", productHandler.DeleteProduct)

	protected.Get("/stock/low", stockHandler.GetLowStock)
	protected.Get("/stock/logs", stockHandler.GetStockLogs)
	protected.Post("/stock/add", stockHandler.AddStock)
	protected.Post("/stock/reduce", stockHandler.ReduceStock)
	protected.Post("/stock/adjust", stockHandler.AdjustStock)

	protected.Post("/checkout", transactionHandler.Checkout)
	protected.Post("/checkout/validate", transactionHandler.ValidateStock)
	protected.Get("/transactions", transactionHandler.GetTransactions)
	protected.Get("/transactions/stats/today", transactionHandler.GetTodayStats)

	protected.Get("/users", userHandler.GetUsers)
	protected.Get("/users/:id", userHandler.GetUser)
	protected.Post("/users", userHandler.CreateUser)
	protected.Put("/users/:id", userHandler.UpdateUser)
	protected.Patch("/users/:id/toggle-active", userHandler.ToggleUserActive)
	protected.Delete("/users/:id", userHandler.DeleteUser)

	// WebSocket route for live stock-update notifications
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// Graceful shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			logrus.WithError(err).Fatal("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("shutting down server...")
	if err := app.Shutdown(); err != nil {
		logrus.WithError(err).Fatal("server forced to shutdown")
	}
	logrus.Info("server exited")
}

// seedDefaultOwner creates the initial owner account if no user exists yet,
// so a fresh install can log in.
func seedDefaultOwner(db *gorm.DB) {
	var count int64
	db.Model(&model.User{}).Count(&count)
	if count > 0 {
		return
	}

	owner := &model.User{
		Name:     "Admin Owner",
		Email:    "owner@techstore.com",
		Role:     model.RoleOwner,
		IsActive: true,
	}
	if err := owner.SetPassword("password123"); err != nil {
		logrus.WithError(err).Warn("failed to hash default owner password")
		return
	}
	if err := repository.NewUserRepo(db).Create(owner); err != nil {
		logrus.WithError(err).Warn("failed to seed default owner")
		return
	}
	logrus.Info("default owner created: owner@techstore.com / password123")
}
