package dto

import "time"

// LoginRequest entrada para login contra el proveedor de identidad.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse salida de login. El token también viaja en la cookie HTTP-only
// access_token; se incluye en el cuerpo para clientes no-navegador.
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

// SignupRequest entrada para alta de cuenta + perfil.
type SignupRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
}

// UserResponse identidad + rol resuelto del caller.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// ProfileResponse salida de un perfil (administración de usuarios).
type ProfileResponse struct {
	UserID    string    `json:"user_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateProfileRequest entrada para actualizar nombre y/o rol. Campos nil no se tocan.
type UpdateProfileRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Role      *string `json:"role"`
}

// CSRFTokenResponse salida del endpoint de emisión de token anti-forgery.
type CSRFTokenResponse struct {
	CSRFToken string `json:"csrf_token"`
}
