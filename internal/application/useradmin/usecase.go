// Package useradmin contiene los casos de uso de administración de perfiles,
// restringidos al rol admin en el router.
package useradmin

import (
	"time"

	"github.com/tu-usuario/rfq-tracker/internal/application/dto"
	"github.com/tu-usuario/rfq-tracker/internal/domain"
	"github.com/tu-usuario/rfq-tracker/internal/domain/entity"
	"github.com/tu-usuario/rfq-tracker/internal/domain/repository"
)

// UserAdminUseCase listado, actualización y borrado de perfiles.
type UserAdminUseCase struct {
	profiles repository.ProfileRepository
}

// NewUserAdminUseCase construye el caso de uso con el puerto de persistencia.
func NewUserAdminUseCase(profiles repository.ProfileRepository) *UserAdminUseCase {
	return &UserAdminUseCase{profiles: profiles}
}

// List devuelve todos los perfiles.
func (uc *UserAdminUseCase) List() ([]dto.ProfileResponse, error) {
	list, err := uc.profiles.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProfileResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProfileResponse(p))
	}
	return out, nil
}

// Update modifica nombre y/o rol de un perfil. Los campos nil no se tocan.
// Un rol desconocido es entrada inválida.
func (uc *UserAdminUseCase) Update(userID string, in dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	if userID == "" {
		return nil, domain.ErrInvalidInput
	}
	profile, err := uc.profiles.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}
	if in.FirstName != nil {
		profile.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		profile.LastName = *in.LastName
	}
	if in.Role != nil {
		if !entity.ValidRole(*in.Role) {
			return nil, domain.ErrInvalidInput
		}
		profile.Role = *in.Role
	}
	profile.UpdatedAt = time.Now()
	if err := uc.profiles.Update(profile); err != nil {
		return nil, err
	}
	resp := toProfileResponse(profile)
	return &resp, nil
}

// Delete elimina el perfil de una identidad. La cuenta del proveedor se deja a
// su propio ciclo de vida.
func (uc *UserAdminUseCase) Delete(userID string) error {
	if userID == "" {
		return domain.ErrInvalidInput
	}
	return uc.profiles.Delete(userID)
}

func toProfileResponse(p *entity.Profile) dto.ProfileResponse {
	return dto.ProfileResponse{
		UserID:    p.UserID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Role:      p.Role,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
