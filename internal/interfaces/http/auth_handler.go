package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/rfq-tracker/internal/application/auth"
	"github.com/tu-usuario/rfq-tracker/internal/application/dto"
	"github.com/tu-usuario/rfq-tracker/internal/domain"
	"github.com/tu-usuario/rfq-tracker/pkg/csrf"
	"github.com/tu-usuario/rfq-tracker/pkg/logger"
)

// AuthHandler maneja login, signup y emisión de token CSRF.
type AuthHandler struct {
	uc         *auth.AuthUseCase
	csrfSecret string
	csrfExpMin int
	log        *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, csrfSecret string, csrfExpMin int, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, csrfSecret: csrfSecret, csrfExpMin: csrfExpMin, log: log}
}

// Login godoc
// @Summary      Iniciar sesión contra el proveedor de identidad
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	session, user, err := h.uc.Login(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
		}
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: "credenciales inválidas"})
		}
		h.log.Error().Err(err).Msg("login")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}

	// Credencial de sesión: HTTP-only. Token CSRF: legible por el cliente.
	c.Cookie(&fiber.Cookie{
		Name:     CookieAccessToken,
		Value:    session.AccessToken,
		HTTPOnly: true,
		SameSite: "Lax",
		MaxAge:   session.ExpiresIn,
	})
	if h.csrfSecret != "" {
		if token, err := csrf.Generate(h.csrfSecret, user.ID, h.csrfExpMin); err == nil {
			c.Cookie(&fiber.Cookie{
				Name:     CookieCSRFToken,
				Value:    token,
				HTTPOnly: false,
				SameSite: "Lax",
				MaxAge:   h.csrfExpMin * 60,
			})
		}
	}

	return c.JSON(dto.LoginResponse{AccessToken: session.AccessToken, User: *user})
}

// Signup godoc
// @Summary      Crear cuenta y perfil con rol
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignupRequest  true  "email, password, nombre, rol"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var in dto.SignupRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	user, err := h.uc.Signup(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email, password (mínimo 8) y rol válido son requeridos"})
		}
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
		}
		h.log.Error().Err(err).Msg("signup")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// CSRFToken godoc
// @Summary      Emitir token anti-forgery
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.CSRFTokenResponse
// @Router       /api/csrf-token [get]
func (h *AuthHandler) CSRFToken(c *fiber.Ctx) error {
	if h.csrfSecret == "" {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "CSRF no configurado"})
	}
	token, err := csrf.Generate(h.csrfSecret, "", h.csrfExpMin)
	if err != nil {
		h.log.Error().Err(err).Msg("emitir token csrf")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	c.Cookie(&fiber.Cookie{
		Name:     CookieCSRFToken,
		Value:    token,
		HTTPOnly: false,
		SameSite: "Lax",
		MaxAge:   h.csrfExpMin * 60,
	})
	return c.JSON(dto.CSRFTokenResponse{CSRFToken: token})
}
