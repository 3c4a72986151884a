package auth

import (
	"context"
	"fmt"

	"github.com/tu-usuario/rfq-tracker/internal/domain"
	"github.com/tu-usuario/rfq-tracker/internal/domain/entity"
	"github.com/tu-usuario/rfq-tracker/internal/domain/repository"
)

// User identidad autenticada con su rol resuelto. Se construye una sola vez por
// petición en el middleware; los handlers lo leen de ahí y nunca lo re-derivan,
// para que no existan dos decisiones de autorización distintas en una petición.
type User struct {
	Identity entity.Identity
	Role     string
}

// IsAdmin indica si el caller tiene el rol admin.
func (u *User) IsAdmin() bool {
	return u.Role == entity.RoleAdmin
}

// Resolver valida el token contra el proveedor y resuelve el rol desde el perfil.
type Resolver struct {
	provider IdentityProvider
	profiles repository.ProfileRepository
}

// NewResolver construye el resolver.
func NewResolver(provider IdentityProvider, profiles repository.ProfileRepository) *Resolver {
	return &Resolver{provider: provider, profiles: profiles}
}

// Resolve intercambia el token por la identidad y busca el perfil para el rol.
// Token vacío o rechazado -> ErrUnauthenticated. Perfil ausente -> rol "user"
// (no es un error). Un fallo del lookup de perfil sí es un error interno,
// distinto de "sin perfil".
func (r *Resolver) Resolve(ctx context.Context, token string) (*User, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}
	ident, err := r.provider.Authenticate(ctx, token)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}

	role := entity.RoleUser
	profile, err := r.profiles.GetByUserID(ident.ID)
	if err != nil {
		return nil, fmt.Errorf("resolver rol: %w", err)
	}
	if profile != nil && profile.Role != "" {
		role = profile.Role
	}
	return &User{Identity: *ident, Role: role}, nil
}
