package repository

import "github.com/tu-usuario/rfq-tracker/internal/domain/entity"

// ProfileRepository puerto de persistencia para perfiles de usuario.
type ProfileRepository interface {
	// Create persiste un perfil nuevo.
	Create(profile *entity.Profile) error
	// GetByUserID devuelve el perfil de una identidad, o nil si no existe
	// (la ausencia no es un error; implica rol "user").
	GetByUserID(userID string) (*entity.Profile, error)
	// List devuelve todos los perfiles ordenados por fecha de creación.
	List() ([]*entity.Profile, error)
	// Update actualiza nombre y rol de un perfil.
	Update(profile *entity.Profile) error
	// Delete elimina el perfil de una identidad.
	Delete(userID string) error
}
