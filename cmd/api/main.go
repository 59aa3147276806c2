package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-store-api/internal/config"
	"go-store-api/internal/handler"
	"go-store-api/internal/model"
	"go-store-api/internal/repository"
	"go-store-api/internal/service"
	"go-store-api/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

func main() {
	// 1. Load configuration
	cfg := config.Load()

	// 2. Setup database
	db := database.Connect(cfg)
	if err := db.AutoMigrate(&model.User{}, &model.Product{}); err != nil {
		log.Fatal("Failed to migrate schema: ", err)
	}

	// 3. Dependency injection (wiring layers)
	userRepo := repository.NewUserRepo(db)
	productRepo := repository.NewProductRepo(db)

	userService := service.NewUserService(userRepo)
	productService := service.NewProductService(productRepo)

	statusHandler := handler.NewStatusHandler(config.Version)
	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(productService)

	// 4. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: config.AppName,
	})

	// Middleware
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		// Credentials cannot be combined with a wildcard origin.
		AllowCredentials: cfg.CORSOrigins != "*",
	}))

	// 5. Routes
	handler.SetupRoutes(app, statusHandler, userHandler, productHandler)

	// 6. Graceful shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
