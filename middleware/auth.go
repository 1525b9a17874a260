package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"gestioncursos/config"
	"gestioncursos/utils"
)

// PrincipalKey is the ctx local under which the decoded token claims are
// stored for downstream handlers.
const PrincipalKey = "principal"

// AuthMiddleware gates every data route. A missing token is 401, a
// malformed, unsigned or expired one is 403.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return utils.Unauthorized(c, "Missing authorization token")
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		claims, err := utils.ParseToken(tokenString, cfg)
		if err != nil {
			return utils.Forbidden(c, "Invalid or expired token")
		}

		c.Locals(PrincipalKey, claims)
		return c.Next()
	}
}
