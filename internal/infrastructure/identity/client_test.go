package identity_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/rfq-tracker/internal/domain"
	"github.com/tu-usuario/rfq-tracker/internal/infrastructure/identity"
	"github.com/tu-usuario/rfq-tracker/pkg/logger"
)

const (
	testAnonKey  = "anon-key"
	testAdminKey = "service-key"
	validToken   = "token-valido"
	testUserID   = "00000000-0000-0000-0000-0000000000aa"
)

// newProviderServer simula la API del proveedor de identidad: GET /user,
// POST /token (password grant) y POST /admin/users.
func newProviderServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("GET /user", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("apikey") != testAnonKey {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.Header.Get("Authorization") != "Bearer "+validToken {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error_code": "bad_jwt", "msg": "invalid JWT"})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"id": testUserID, "email": "laura@example.com"})
	})

	mux.HandleFunc("POST /token", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("grant_type") != "password" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		var in map[string]string
		_ = json.NewDecoder(r.Body).Decode(&in)
		if in["email"] != "laura@example.com" || in["password"] != "contraseña-correcta" {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"error_code":        "invalid_credentials",
				"error_description": "Invalid login credentials",
			})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": validToken,
			"token_type":   "bearer",
			"expires_in":   3600,
			"user":         map[string]string{"id": testUserID, "email": "laura@example.com"},
		})
	})

	mux.HandleFunc("POST /admin/users", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+testAdminKey {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		var in map[string]any
		_ = json.NewDecoder(r.Body).Decode(&in)
		if in["email"] == "ocupado@example.com" {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"error_code": "email_exists",
				"msg":        "A user with this email address has already been registered",
			})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"id": testUserID, "email": in["email"]})
	})

	return httptest.NewServer(mux)
}

func newTestClient(t *testing.T, baseURL string) *identity.Client {
	t.Helper()
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	return identity.NewClient(baseURL, testAnonKey, testAdminKey, log)
}

// ──────────────────────────────────────────────────────────────────────────────
// Authenticate
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthenticate_TokenValido(t *testing.T) {
	srv := newProviderServer(t)
	defer srv.Close()
	client := newTestClient(t, srv.URL)

	ident, err := client.Authenticate(context.Background(), validToken)
	require.NoError(t, err)
	assert.Equal(t, testUserID, ident.ID)
	assert.Equal(t, "laura@example.com", ident.Email)
}

// Token rechazado, token vacío y proveedor caído colapsan todos en ErrUnauthenticated:
// el caller nunca ve el detalle del proveedor.
func TestAuthenticate_FallosColapsanEnUnauthenticated(t *testing.T) {
	srv := newProviderServer(t)
	client := newTestClient(t, srv.URL)

	_, err := client.Authenticate(context.Background(), "token-rechazado")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	_, err = client.Authenticate(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	srv.Close() // proveedor inaccesible
	_, err = client.Authenticate(context.Background(), validToken)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

// ──────────────────────────────────────────────────────────────────────────────
// SignInWithPassword
// ──────────────────────────────────────────────────────────────────────────────

func TestSignIn_CredencialesCorrectas(t *testing.T) {
	srv := newProviderServer(t)
	defer srv.Close()
	client := newTestClient(t, srv.URL)

	session, ident, err := client.SignInWithPassword(context.Background(), "laura@example.com", "contraseña-correcta")
	require.NoError(t, err)
	assert.Equal(t, validToken, session.AccessToken)
	assert.Equal(t, 3600, session.ExpiresIn)
	assert.Equal(t, testUserID, ident.ID)
}

// El rechazo se clasifica por el código HTTP del proveedor, nunca por el texto
// del mensaje de error.
func TestSignIn_CredencialesIncorrectas_ErrorTipado(t *testing.T) {
	srv := newProviderServer(t)
	defer srv.Close()
	client := newTestClient(t, srv.URL)

	_, _, err := client.SignInWithPassword(context.Background(), "laura@example.com", "contraseña-mala")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateUser
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateUser_AltaCorrecta(t *testing.T) {
	srv := newProviderServer(t)
	defer srv.Close()
	client := newTestClient(t, srv.URL)

	ident, err := client.CreateUser(context.Background(), "nuevo@example.com", "contraseña-segura")
	require.NoError(t, err)
	assert.Equal(t, testUserID, ident.ID)
	assert.Equal(t, "nuevo@example.com", ident.Email)
}

// Email duplicado: clasificado por error_code del proveedor → ErrEmailAlreadyExists.
func TestCreateUser_EmailOcupado_ErrorTipado(t *testing.T) {
	srv := newProviderServer(t)
	defer srv.Close()
	client := newTestClient(t, srv.URL)

	_, err := client.CreateUser(context.Background(), "ocupado@example.com", "contraseña-segura")
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}
