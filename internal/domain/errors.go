package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los handlers HTTP los mapean
// a códigos de estado; cualquier otro error se responde como interno con mensaje fijo
// para no filtrar detalles del store ni del proveedor de identidad.
var (
	ErrUnauthenticated    = errors.New("credencial ausente o inválida")
	ErrForbidden          = errors.New("acceso denegado")
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrRFQNoAlreadyExists = errors.New("el número de RFQ ya existe")
)
