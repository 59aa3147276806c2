package handler

import (
	"errors"
	"log"

	"go-store-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUser handles user creation
// POST /api/users
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req service.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"detail": "JSON inválido"})
	}

	user, err := h.userService.CreateUser(&req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserExists):
			return c.Status(400).JSON(fiber.Map{"detail": "Usuario o email ya existe"})
		case errors.Is(err, service.ErrValidation):
			return c.Status(400).JSON(fiber.Map{"detail": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"detail": "Error interno del servidor"})
	}

	log.Printf("Usuario creado: %s", user.Username)
	return c.JSON(user.ToResponse())
}

// GetUsers returns all users
// GET /api/users
func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	users, err := h.userService.GetAllUsers()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"detail": "Error interno del servidor"})
	}
	return c.JSON(users)
}

// GetUser returns a single user by ID
// GET /api/users/:id
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"detail": "ID inválido"})
	}

	user, err := h.userService.GetUserByID(id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return c.Status(404).JSON(fiber.Map{"detail": "Usuario no encontrado"})
		}
		return c.Status(500).JSON(fiber.Map{"detail": "Error interno del servidor"})
	}

	return c.JSON(user)
}
