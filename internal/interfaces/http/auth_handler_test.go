package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/rfq-tracker/internal/application/dto"
	"github.com/tu-usuario/rfq-tracker/internal/domain/entity"
	apphttp "github.com/tu-usuario/rfq-tracker/internal/interfaces/http"
)

func cookieByName(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Login correcto: cuerpo con access_token + rol resuelto, cookie de sesión
// HTTP-only y cookie CSRF legible.
func TestLogin_CredencialesCorrectas(t *testing.T) {
	app := buildAPIApp("csrf-secret-de-test")

	in := dto.LoginRequest{Email: "sales@example.com", Password: "contraseña-correcta"}
	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/login", in, ""), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, tokenSales, out.AccessToken)
	assert.Equal(t, salesUserID, out.User.ID)
	assert.Equal(t, entity.RoleSales, out.User.Role, "el rol viene del perfil, no del proveedor")

	session := cookieByName(resp, apphttp.CookieAccessToken)
	require.NotNil(t, session, "debe fijarse la cookie de sesión")
	assert.True(t, session.HttpOnly, "la cookie de sesión no debe ser legible por scripts")
	assert.Equal(t, tokenSales, session.Value)

	csrfCookie := cookieByName(resp, apphttp.CookieCSRFToken)
	require.NotNil(t, csrfCookie, "debe fijarse la cookie CSRF")
	assert.False(t, csrfCookie.HttpOnly, "la cookie CSRF debe ser legible para el doble envío")
}

// Credenciales incorrectas: 401 con código tipado, sin detalle del proveedor.
func TestLogin_CredencialesIncorrectas(t *testing.T) {
	app := buildAPIApp("")

	in := dto.LoginRequest{Email: "sales@example.com", Password: "contraseña-mala"}
	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/login", in, ""), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_CREDENTIALS")
}

// Campos ausentes: 400 antes de tocar el proveedor.
func TestLogin_CamposAusentes(t *testing.T) {
	app := buildAPIApp("")

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/login", dto.LoginRequest{Email: "sales@example.com"}, ""), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// Signup correcto: alta en el proveedor + perfil con rol; el login posterior funciona.
func TestSignup_CreaCuentaYPerfil(t *testing.T) {
	app := buildAPIApp("")

	in := dto.SignupRequest{
		Email:     "nueva@example.com",
		Password:  "contraseña-larga",
		FirstName: "Ana",
		LastName:  "Pérez",
		Role:      entity.RolePricing,
	}
	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/signup", in, ""), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var user dto.UserResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&user))
	assert.Equal(t, "nueva@example.com", user.Email)
	assert.Equal(t, entity.RolePricing, user.Role)

	login, err := app.Test(jsonRequest(t, http.MethodPost, "/api/login",
		dto.LoginRequest{Email: "nueva@example.com", Password: "contraseña-larga"}, ""), -1)
	require.NoError(t, err)
	defer login.Body.Close()
	assert.Equal(t, http.StatusOK, login.StatusCode)
}

// Email ya registrado: 409 EMAIL_EXISTS.
func TestSignup_EmailDuplicado(t *testing.T) {
	app := buildAPIApp("")

	in := dto.SignupRequest{Email: "sales@example.com", Password: "contraseña-larga"}
	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/signup", in, ""), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "EMAIL_EXISTS")
}

// Validación de signup: contraseña corta y rol desconocido.
func TestSignup_Validacion(t *testing.T) {
	app := buildAPIApp("")

	corta := dto.SignupRequest{Email: "x@example.com", Password: "corta"}
	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/signup", corta, ""), -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	rolMalo := dto.SignupRequest{Email: "x@example.com", Password: "contraseña-larga", Role: "superuser"}
	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/api/signup", rolMalo, ""), -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// Escenario: admin cambia el rol de un perfil y la siguiente lectura ya llega
// sin enmascarar (la resolución de rol ocurre en cada petición).
func TestAPI_CambioDeRolAfectaLaSiguienteLectura(t *testing.T) {
	app := buildAPIApp("")

	in := entryRequest("PN-A")
	in.Items[0].UnitPriceUSD = decimalFromString(t, "42.00")
	id := createEntry(t, app, tokenSales, in)

	// Antes del cambio: sales ve el placeholder.
	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/get-rfq/"+id, nil, tokenSales), -1)
	require.NoError(t, err)
	var got dto.GetRFQResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	resp.Body.Close()
	require.Equal(t, "---", got.Data.Items[0].UnitPriceUSD)

	// Admin promueve el perfil a pricing.
	role := entity.RolePricing
	resp, err = app.Test(jsonRequest(t, http.MethodPut, "/api/update-user/"+salesUserID,
		dto.UpdateProfileRequest{Role: &role}, tokenAdmin), -1)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Después del cambio: el mismo token ya resuelve rol pricing y ve el valor.
	resp, err = app.Test(jsonRequest(t, http.MethodGet, "/api/get-rfq/"+id, nil, tokenSales), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "42", got.Data.Items[0].UnitPriceUSD)
}
