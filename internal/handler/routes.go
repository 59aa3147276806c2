package handler

import "github.com/gofiber/fiber/v2"

// SetupRoutes registers the public API routes.
func SetupRoutes(app *fiber.App, statusHandler *StatusHandler, userHandler *UserHandler, productHandler *ProductHandler) {
	app.Get("/", statusHandler.Root)
	app.Get("/health", statusHandler.Health)

	api := app.Group("/api")
	api.Get("/data", statusHandler.Data)

	api.Post("/users", userHandler.CreateUser)
	api.Get("/users", userHandler.GetUsers)
	api.Get("/users/:id", userHandler.GetUser)

	api.Post("/products", productHandler.CreateProduct)
	api.Get("/products", productHandler.GetProducts)
	api.Get("/products/:id", productHandler.GetProduct)
	api.Put("/products/:id", productHandler.UpdateProduct)
	api.Delete("/products/:id", productHandler.DeleteProduct)
}
