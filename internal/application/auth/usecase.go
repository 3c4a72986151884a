package auth

import (
	"context"
	"time"

	"github.com/tu-usuario/rfq-tracker/internal/application/dto"
	"github.com/tu-usuario/rfq-tracker/internal/domain"
	"github.com/tu-usuario/rfq-tracker/internal/domain/entity"
	"github.com/tu-usuario/rfq-tracker/internal/domain/repository"
)

// AuthUseCase casos de uso de autenticación: login y signup contra el proveedor.
type AuthUseCase struct {
	provider IdentityProvider
	profiles repository.ProfileRepository
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(provider IdentityProvider, profiles repository.ProfileRepository) *AuthUseCase {
	return &AuthUseCase{provider: provider, profiles: profiles}
}

// Login ejecuta el password grant y resuelve el rol del perfil para la respuesta.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*Session, *dto.UserResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, nil, domain.ErrInvalidInput
	}
	session, ident, err := uc.provider.SignInWithPassword(ctx, in.Email, in.Password)
	if err != nil {
		return nil, nil, err
	}

	role := entity.RoleUser
	profile, err := uc.profiles.GetByUserID(ident.ID)
	if err != nil {
		return nil, nil, err
	}
	if profile != nil && profile.Role != "" {
		role = profile.Role
	}
	return session, &dto.UserResponse{ID: ident.ID, Email: ident.Email, Role: role}, nil
}

// Signup da de alta la cuenta en el proveedor y crea el perfil con su rol.
// El perfil se crea después de la cuenta: si el alta remota falla no queda
// perfil huérfano. Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *AuthUseCase) Signup(ctx context.Context, in dto.SignupRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Password) < 8 {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	if !entity.ValidRole(role) {
		return nil, domain.ErrInvalidInput
	}

	ident, err := uc.provider.CreateUser(ctx, in.Email, in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	profile := &entity.Profile{
		UserID:    ident.ID,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.profiles.Create(profile); err != nil {
		return nil, err
	}
	return &dto.UserResponse{ID: ident.ID, Email: ident.Email, Role: role}, nil
}
