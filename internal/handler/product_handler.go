package handler

import (
	"errors"
	"log"

	"go-store-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	productService service.ProductService
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// CreateProduct handles product creation
// POST /api/products
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req service.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"detail": "JSON inválido"})
	}

	product, err := h.productService.CreateProduct(&req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return c.Status(400).JSON(fiber.Map{"detail": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"detail": "Error interno del servidor"})
	}

	log.Printf("Producto creado: %s", product.Name)
	return c.JSON(product.ToResponse())
}

// GetProducts returns all available products
// GET /api/products
func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.productService.GetAvailableProducts()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"detail": "Error interno del servidor"})
	}
	return c.JSON(products)
}

// GetProduct returns a single product by ID
// GET /api/products/:id
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"detail": "ID inválido"})
	}

	product, err := h.productService.GetProductByID(id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return c.Status(404).JSON(fiber.Map{"detail": "Producto no encontrado"})
		}
		return c.Status(500).JSON(fiber.Map{"detail": "Error interno del servidor"})
	}

	return c.JSON(product)
}

// UpdateProduct replaces every client-settable field of a product
// PUT /api/products/:id
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"detail": "ID inválido"})
	}

	var req service.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"detail": "JSON inválido"})
	}

	product, err := h.productService.UpdateProduct(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			return c.Status(404).JSON(fiber.Map{"detail": "Producto no encontrado"})
		case errors.Is(err, service.ErrValidation):
			return c.Status(400).JSON(fiber.Map{"detail": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"detail": "Error interno del servidor"})
	}

	log.Printf("Producto actualizado: %d", id)
	return c.JSON(product.ToResponse())
}

// DeleteProduct soft-deletes a product
// DELETE /api/products/:id
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"detail": "ID inválido"})
	}

	if err := h.productService.DeleteProduct(id); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return c.Status(404).JSON(fiber.Map{"detail": "Producto no encontrado"})
		}
		return c.Status(500).JSON(fiber.Map{"detail": "Error interno del servidor"})
	}

	log.Printf("Producto eliminado: %d", id)
	return c.JSON(fiber.Map{"message": "Producto eliminado correctamente"})
}
