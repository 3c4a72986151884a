package auth

import (
	"context"

	"github.com/tu-usuario/rfq-tracker/internal/domain/entity"
)

// Session credencial de sesión emitida por el proveedor de identidad.
type Session struct {
	AccessToken string
	ExpiresIn   int // segundos
}

// IdentityProvider puerto de salida hacia el proveedor remoto de identidad.
// Las implementaciones devuelven categorías de error tipadas del dominio
// (ErrUnauthenticated, ErrInvalidCredentials, ErrEmailAlreadyExists) en lugar
// de exponer los mensajes crudos del proveedor.
type IdentityProvider interface {
	// Authenticate intercambia un access token por la identidad autenticada.
	// Token vacío, inválido o cualquier fallo del proveedor -> domain.ErrUnauthenticated.
	Authenticate(ctx context.Context, accessToken string) (*entity.Identity, error)
	// SignInWithPassword ejecuta el password grant y devuelve sesión + identidad.
	// Credenciales incorrectas -> domain.ErrInvalidCredentials.
	SignInWithPassword(ctx context.Context, email, password string) (*Session, *entity.Identity, error)
	// CreateUser da de alta una cuenta vía la API administrativa del proveedor.
	// Email ya registrado -> domain.ErrEmailAlreadyExists.
	CreateUser(ctx context.Context, email, password string) (*entity.Identity, error)
}
