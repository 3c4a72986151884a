// Package identity implementa el cliente hacia el proveedor remoto de identidad
// (API compatible con GoTrue: password grant, lectura de usuario y alta administrativa).
// Los errores del proveedor se clasifican por código HTTP y error_code, nunca por
// coincidencia de substrings en el mensaje.
package identity

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tu-usuario/rfq-tracker/internal/application/auth"
	"github.com/tu-usuario/rfq-tracker/internal/domain"
	"github.com/tu-usuario/rfq-tracker/internal/domain/entity"
	"github.com/tu-usuario/rfq-tracker/pkg/logger"
)

var _ auth.IdentityProvider = (*Client)(nil)

// Client cliente HTTP del proveedor de identidad. Se construye una vez en el
// arranque y se reutiliza de solo lectura entre peticiones.
type Client struct {
	http     *resty.Client
	anonKey  string
	adminKey string
	log      *logger.Logger
}

// NewClient construye el cliente. adminKey es la clave de servicio para las
// operaciones administrativas (puede coincidir con anonKey, con sus límites).
func NewClient(baseURL, anonKey, adminKey string, log *logger.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(15 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		http:     httpClient,
		anonKey:  anonKey,
		adminKey: adminKey,
		log:      log,
	}
}

// providerUser forma del usuario en las respuestas del proveedor.
type providerUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// providerError cuerpo de error del proveedor. Según la versión, el código viene
// en error_code o en error; el mensaje en msg, message o error_description.
type providerError struct {
	ErrorCode   string `json:"error_code"`
	Error       string `json:"error"`
	Msg         string `json:"msg"`
	Message     string `json:"message"`
	Description string `json:"error_description"`
}

func (e *providerError) code() string {
	if e.ErrorCode != "" {
		return e.ErrorCode
	}
	return e.Error
}

type tokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int          `json:"expires_in"`
	User        providerUser `json:"user"`
}

// Authenticate intercambia el access token por la identidad. Cualquier fallo del
// proveedor se reporta como ErrUnauthenticated; el detalle queda solo en el log.
func (c *Client) Authenticate(ctx context.Context, accessToken string) (*entity.Identity, error) {
	if accessToken == "" {
		return nil, domain.ErrUnauthenticated
	}

	var user providerUser
	var provErr providerError
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("apikey", c.anonKey).
		SetHeader("Authorization", "Bearer "+accessToken).
		SetResult(&user).
		SetError(&provErr).
		Get("/user")
	if err != nil {
		c.log.Warn().Err(err).Msg("proveedor de identidad inaccesible en authenticate")
		return nil, domain.ErrUnauthenticated
	}
	if resp.IsError() || user.ID == "" {
		c.log.Debug().
			Int("status", resp.StatusCode()).
			Str("code", provErr.code()).
			Msg("token rechazado por el proveedor")
		return nil, domain.ErrUnauthenticated
	}
	return &entity.Identity{ID: user.ID, Email: user.Email}, nil
}

// SignInWithPassword ejecuta el password grant.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*auth.Session, *entity.Identity, error) {
	var out tokenResponse
	var provErr providerError
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("apikey", c.anonKey).
		SetQueryParam("grant_type", "password").
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&out).
		SetError(&provErr).
		Post("/token")
	if err != nil {
		return nil, nil, fmt.Errorf("identity: sign in: %w", err)
	}
	if resp.IsError() {
		switch resp.StatusCode() {
		case http.StatusBadRequest, http.StatusUnauthorized, http.StatusUnprocessableEntity:
			return nil, nil, domain.ErrInvalidCredentials
		}
		c.log.Warn().
			Int("status", resp.StatusCode()).
			Str("code", provErr.code()).
			Msg("fallo inesperado del proveedor en sign in")
		return nil, nil, fmt.Errorf("identity: sign in: estado %d", resp.StatusCode())
	}
	if out.AccessToken == "" || out.User.ID == "" {
		return nil, nil, domain.ErrInvalidCredentials
	}
	session := &auth.Session{AccessToken: out.AccessToken, ExpiresIn: out.ExpiresIn}
	ident := &entity.Identity{ID: out.User.ID, Email: out.User.Email}
	return session, ident, nil
}

// CreateUser da de alta la cuenta vía la API administrativa (email confirmado).
func (c *Client) CreateUser(ctx context.Context, email, password string) (*entity.Identity, error) {
	var user providerUser
	var provErr providerError
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("apikey", c.adminKey).
		SetHeader("Authorization", "Bearer "+c.adminKey).
		SetBody(map[string]any{
			"email":         email,
			"password":      password,
			"email_confirm": true,
		}).
		SetResult(&user).
		SetError(&provErr).
		Post("/admin/users")
	if err != nil {
		return nil, fmt.Errorf("identity: create user: %w", err)
	}
	if resp.IsError() {
		if isEmailTaken(resp.StatusCode(), provErr.code()) {
			return nil, domain.ErrEmailAlreadyExists
		}
		c.log.Warn().
			Int("status", resp.StatusCode()).
			Str("code", provErr.code()).
			Msg("fallo inesperado del proveedor en create user")
		return nil, fmt.Errorf("identity: create user: estado %d", resp.StatusCode())
	}
	if user.ID == "" {
		return nil, fmt.Errorf("identity: create user: respuesta sin id")
	}
	return &entity.Identity{ID: user.ID, Email: user.Email}, nil
}

// isEmailTaken clasifica el duplicado de email por error_code del proveedor,
// con el 422 como respaldo para versiones que no envían código.
func isEmailTaken(status int, code string) bool {
	switch code {
	case "email_exists", "user_already_exists", "email_address_taken":
		return true
	}
	return status == http.StatusUnprocessableEntity
}
