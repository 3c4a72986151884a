package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/rfq-tracker/internal/application/dto"
	"github.com/tu-usuario/rfq-tracker/pkg/csrf"
)

// CookieCSRFToken nombre de la cookie legible con el token anti-forgery.
const CookieCSRFToken = "csrf_token"

// HeaderCSRFToken header donde el cliente repite el token (double-submit cookie).
const HeaderCSRFToken = "X-CSRF-Token"

// CSRFMiddleware valida el token anti-forgery en peticiones mutantes. Solo se
// monta cuando hay secret configurado. El token debe venir en el header: el
// navegador adjunta las cookies solo en peticiones cross-site, así que una
// cookie sin header repetido no prueba nada. Si la cookie está presente,
// además debe coincidir con el header (double-submit).
func CSRFMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get(HeaderCSRFToken)
		if token == "" {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "CSRF_MISSING", Message: "token anti-forgery requerido en el header " + HeaderCSRFToken})
		}
		if cookie := c.Cookies(CookieCSRFToken); cookie != "" && cookie != token {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "CSRF_INVALID", Message: "token anti-forgery inválido o expirado"})
		}
		if err := csrf.Verify(secret, token); err != nil {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "CSRF_INVALID", Message: "token anti-forgery inválido o expirado"})
		}
		return c.Next()
	}
}
