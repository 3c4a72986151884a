package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/rfq-tracker/internal/application/auth"
	"github.com/tu-usuario/rfq-tracker/internal/application/dto"
	"github.com/tu-usuario/rfq-tracker/internal/domain"
)

// LocalUser clave de c.Locals para el usuario resuelto (identidad + rol).
const LocalUser = "current_user"

// CookieAccessToken nombre de la cookie HTTP-only con la credencial de sesión.
const CookieAccessToken = "access_token"

// AuthMiddleware extrae la credencial (cookie access_token o header Authorization),
// la resuelve una sola vez a identidad + rol y la deja en c.Locals. Los handlers
// leen el resultado con CurrentUser y nunca re-derivan la autorización.
func AuthMiddleware(resolver *auth.Resolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := resolver.Resolve(c.Context(), extractToken(c))
		if err != nil {
			if errors.Is(err, domain.ErrUnauthenticated) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "credencial ausente o inválida"})
			}
			// Fallo del lookup de rol: interno, mensaje fijo.
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
		}
		c.Locals(LocalUser, user)
		return c.Next()
	}
}

// RequireRole autoriza por rol. Sin argumentos significa "cualquier usuario
// autenticado". Si el rol del caller no está en el conjunto, responde 403
// identificando el rol y el conjunto requerido.
func RequireRole(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "credencial ausente o inválida"})
		}
		if len(allowed) == 0 {
			return c.Next()
		}
		for _, role := range allowed {
			if user.Role == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: fmt.Sprintf("rol %q no está en %v", user.Role, allowed),
		})
	}
}

// CurrentUser devuelve el usuario resuelto por AuthMiddleware, o nil.
func CurrentUser(c *fiber.Ctx) *auth.User {
	v := c.Locals(LocalUser)
	if v == nil {
		return nil
	}
	u, _ := v.(*auth.User)
	return u
}

// extractToken busca la credencial primero en la cookie de sesión y después en
// el header Authorization (Bearer).
func extractToken(c *fiber.Ctx) string {
	if tok := c.Cookies(CookieAccessToken); tok != "" {
		return tok
	}
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
