package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"gestioncursos/config"
	"gestioncursos/middleware"
	"gestioncursos/utils"
)

type AuthController struct {
	Cfg *config.Config

	// bcrypt hash of the configured admin password, computed once so every
	// login goes through a constant-time comparison.
	passwordHash []byte
}

func NewAuthController(cfg *config.Config) *AuthController {
	hash, _ := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	return &AuthController{Cfg: cfg, passwordHash: hash}
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	var input LoginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	// Same response whichever field is wrong.
	passwordErr := bcrypt.CompareHashAndPassword(ac.passwordHash, []byte(input.Password))
	if input.Username != ac.Cfg.AdminUser || passwordErr != nil {
		return utils.Unauthorized(c, "Invalid credentials")
	}

	token, err := utils.GenerateToken(input.Username, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"username": input.Username,
			"role":     utils.AdminRole,
		},
		"message": "Login successful",
	})
}

func (ac *AuthController) Verify(c *fiber.Ctx) error {
	claims, ok := c.Locals(middleware.PrincipalKey).(jwt.MapClaims)
	if !ok {
		return utils.Unauthorized(c, "Missing authorization token")
	}

	return c.JSON(fiber.Map{
		"valid": true,
		"user": fiber.Map{
			"username": claims["username"],
			"role":     claims["role"],
		},
	})
}
