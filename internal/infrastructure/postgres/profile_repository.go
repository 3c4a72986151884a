package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/rfq-tracker/internal/domain"
	"github.com/tu-usuario/rfq-tracker/internal/domain/entity"
	"github.com/tu-usuario/rfq-tracker/internal/domain/repository"
)

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

// ProfileRepo implementación del puerto ProfileRepository sobre PostgreSQL.
type ProfileRepo struct {
	q Querier
}

// NewProfileRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProfileRepository(q Querier) *ProfileRepo {
	return &ProfileRepo{q: q}
}

// Create persiste un perfil nuevo. user_id es la PK: una identidad, un perfil.
func (r *ProfileRepo) Create(profile *entity.Profile) error {
	query := `
		INSERT INTO profiles (user_id, first_name, last_name, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		profile.UserID, profile.FirstName, profile.LastName, profile.Role,
		profile.CreatedAt, profile.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

// GetByUserID devuelve el perfil, o nil si la identidad no tiene uno.
func (r *ProfileRepo) GetByUserID(userID string) (*entity.Profile, error) {
	query := `
		SELECT user_id, first_name, last_name, role, created_at, updated_at
		FROM profiles WHERE user_id = $1`
	var p entity.Profile
	err := r.q.QueryRow(context.Background(), query, userID).Scan(
		&p.UserID, &p.FirstName, &p.LastName, &p.Role, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}

// List devuelve todos los perfiles, más recientes primero.
func (r *ProfileRepo) List() ([]*entity.Profile, error) {
	query := `
		SELECT user_id, first_name, last_name, role, created_at, updated_at
		FROM profiles ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Profile
	for rows.Next() {
		var p entity.Profile
		if err := rows.Scan(&p.UserID, &p.FirstName, &p.LastName, &p.Role, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza nombre y rol.
func (r *ProfileRepo) Update(profile *entity.Profile) error {
	query := `
		UPDATE profiles SET first_name = $2, last_name = $3, role = $4, updated_at = $5
		WHERE user_id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		profile.UserID, profile.FirstName, profile.LastName, profile.Role, profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el perfil de una identidad.
func (r *ProfileRepo) Delete(userID string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM profiles WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
